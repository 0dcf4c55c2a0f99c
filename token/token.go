// Package token supplies concrete rune-level literal parsers — digits,
// letters, whitespace, identifiers, numbers, quoted strings — built
// atop the core parsec.Parser[rune, A] algebra. Nothing here is part
// of the core: it is the first layer of a grammar author builds on
// top of Satisfy, Many, and Choice.
package token

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/stntngo/parsec"
)

// Rune accepts r and returns it.
func Rune(r rune) parsec.Parser[rune, rune] {
	return parsec.Satisfy[rune](strconv.QuoteRune(r), func(o rune) bool { return o == r })
}

// NotRune accepts any rune other than r.
func NotRune(r rune) parsec.Parser[rune, rune] {
	return parsec.Satisfy[rune]("not "+strconv.QuoteRune(r), func(o rune) bool { return o != r })
}

// RuneRange accepts any rune between lo and hi, inclusive.
func RuneRange(lo, hi rune) parsec.Parser[rune, rune] {
	desc := strconv.QuoteRune(lo) + ".." + strconv.QuoteRune(hi)
	return parsec.Satisfy[rune](desc, func(r rune) bool { return lo <= r && r <= hi })
}

// OneOf accepts any rune present in set.
func OneOf(set string) parsec.Parser[rune, rune] {
	return parsec.Satisfy[rune]("one of "+strconv.Quote(set), func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// AnyRune accepts and returns any single rune.
var AnyRune = parsec.Satisfy[rune]("any rune", func(rune) bool { return true })

// Digit accepts a single decimal digit, returning its integer value.
var Digit = parsec.MapParser(
	parsec.Satisfy[rune]("digit", unicode.IsDigit),
	func(r rune) int { return int(r - '0') },
)

// Letter accepts a single unicode letter.
var Letter = parsec.Satisfy[rune]("letter", unicode.IsLetter)

// Space accepts a single unicode whitespace rune.
var Space = parsec.Satisfy[rune]("space", unicode.IsSpace)

// SkipWS discards zero or more leading and trailing whitespace runes
// around p's match.
func SkipWS[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	skip := discard(parsec.Many(Space))
	return parsec.Zip3(skip, p, skip, func(_ parsec.Unit, v A, _ parsec.Unit) A { return v })
}

// TrailingWS requires p's match to be followed by at least one
// whitespace rune, which is discarded.
func TrailingWS[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	return parsec.Zip(p, discard(parsec.ManyOne(Space)), func(v A, _ parsec.Unit) A { return v })
}

// PrecedingWS requires p's match to be preceded by at least one
// whitespace rune, which is discarded.
func PrecedingWS[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, A] {
	return parsec.Zip(discard(parsec.ManyOne(Space)), p, func(_ parsec.Unit, v A) A { return v })
}

func discard[A any](p parsec.Parser[rune, A]) parsec.Parser[rune, parsec.Unit] {
	return parsec.MapParser(p, func(A) parsec.Unit { return parsec.Unit{} })
}

// TakeWhile consumes runes while pred holds and returns them as a
// string. It never fails — zero matching runes yields "".
func TakeWhile(pred func(rune) bool) parsec.Parser[rune, string] {
	return parsec.MapParser(parsec.Many(parsec.Satisfy[rune]("takeWhile", pred)), runesToString)
}

// TakeWhile1 is TakeWhile, requiring at least one matching rune.
func TakeWhile1(pred func(rune) bool) parsec.Parser[rune, string] {
	return parsec.MapParser(parsec.ManyOne(parsec.Satisfy[rune]("takeWhile1", pred)), runesToString)
}

func runesToString(rs []rune) string {
	return string(rs)
}

// Identifier accepts a letter or underscore followed by zero or more
// letters, digits, or underscores, and returns the matched text.
var Identifier = parsec.Zip(
	parsec.Satisfy[rune]("identifier start", isIdentStart),
	TakeWhile(isIdentPart),
	func(first rune, rest string) string { return string(first) + rest },
)

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Integer accepts an optionally-signed run of decimal digits and
// parses it as an int.
var Integer = parsec.Chain(
	parsec.MapParser(parsec.OrNot(parsec.Satisfy[rune]("-", func(r rune) bool { return r == '-' })), func(sign *rune) bool { return sign != nil }),
	func(negative bool) parsec.Parser[rune, int] {
		return parsec.MapParser(parsec.ManyOne(Digit), func(digits []int) int {
			n := 0
			for _, d := range digits {
				n = n*10 + d
			}

			if negative {
				n = -n
			}

			return n
		})
	},
)

// Decimal accepts an optionally-signed run of digits, optionally
// followed by a '.' and more digits, and parses it as a float64.
var Decimal = parsec.MapParser(
	parsec.Zip3(
		parsec.OrElse(parsec.MapParser(Rune('-'), func(rune) string { return "-" }), ""),
		TakeWhile1(unicode.IsDigit),
		parsec.OrElse(
			parsec.Zip(Rune('.'), TakeWhile1(unicode.IsDigit), func(_ rune, frac string) string { return "." + frac }),
			"",
		),
		func(sign, whole, frac string) string { return sign + whole + frac },
	),
	mustParseFloat,
)

func mustParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Decimal's grammar only ever builds strings strconv can parse;
		// a failure here means the grammar above has drifted from what
		// ParseFloat accepts.
		panic(err)
	}

	return f
}

// QuotedString accepts a double-quoted string and returns the unescaped
// contents (without the quotes). A backslash escapes whichever rune
// follows it, which is kept literally (so \" yields " and \\ yields \);
// no escape is rejected. Once the opening quote has matched, an
// unterminated string is a committed Error rather than a recoverable
// Failure.
var QuotedString = parsec.Chain(Rune('"'), func(rune) parsec.Parser[rune, string] {
	return parsec.Must(parsec.Zip(
		parsec.MapParser(parsec.Many(stringChar), runesToString),
		Rune('"'),
		func(body string, _ rune) string { return body },
	))
})

var stringChar = parsec.Chain(
	NotRune('"'),
	func(r rune) parsec.Parser[rune, rune] {
		if r != '\\' {
			return parsec.Return[rune, rune](r)
		}

		return AnyRune
	},
)
