package parsec

// ParseString runs p against the runes of input, wrapping it in a
// string-backed Source. This is the entry point for Parser[rune, A]
// grammars built over character sequences.
func ParseString[A any](p Parser[rune, A], input string) ParseResult[rune, A] {
	return p.Run(NewStringSource("<input>", input))
}

// ParseSlice runs p against a slice of tokens, wrapping it in a
// slice-backed Source. This is the entry point for Parser[T, A]
// grammars built over an arbitrary token type, including a fixed-size
// array passed as arr[:].
func ParseSlice[T, A any](p Parser[T, A], input []T) ParseResult[T, A] {
	return p.Run(NewSliceSource("<input>", input))
}
