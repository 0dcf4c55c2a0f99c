// Package parsec implements a small, composable parser combinator
// algebra: a Parser[T, A] is a pure function from a Source[T] to a
// four-variant ParseResult[T, A] (Success, Failure, Error, and the
// NoSuccess union of the latter two). Failure is recoverable and may be
// retried by Choice; Error is a committed, non-recoverable outcome that
// propagates through every combinator unchanged.
//
// The package has no notion of what a token is: T is never inspected by
// the core. Concrete literal parsers for runes (digits, identifiers,
// whitespace, ...) live in the sibling token package; a generic
// string-to-token-stream lexer lives in the sibling lex package.
package parsec
