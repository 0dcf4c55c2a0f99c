package lex

import "github.com/stntngo/parsec"

// Drain receives every Token l produces, in order, until its channel
// closes, discarding any token for which skip reports true (skip may
// be nil to keep everything). It blocks until lexing finishes and
// returns l.Err() if the lexer function terminated with an error.
func Drain[K any](l *Lexer[K], skip func(Token[K]) bool) ([]Token[K], error) {
	var out []Token[K]

	for {
		tok, ok := l.Next()
		if !ok {
			break
		}

		if skip != nil && skip(tok) {
			continue
		}

		out = append(out, tok)
	}

	return out, l.Err()
}

// Source drains l and wraps the resulting token slice in an immutable
// parsec.Source, ready to be run through Parser[Token[K], A] values.
// Core combinators never see the lexer's goroutine or channel — once
// Source returns, the token stream is a plain, comparable value.
//
// Unlike parsec.NewSliceSource, the returned Source reports each
// token's own Line/Start as its Location rather than a bare slice
// index, so a Failure/Error raised against this Source (At, Location)
// points at a real position in the original source text. Once every
// token has been consumed, the Source reports the position just past
// the last token.
func Source[K any](origin string, l *Lexer[K], skip func(Token[K]) bool) (parsec.Source[Token[K]], error) {
	toks, err := Drain(l, skip)
	if err != nil {
		return parsec.Source[Token[K]]{}, err
	}

	var end parsec.Location
	if len(toks) > 0 {
		end = toks[len(toks)-1].end()
	}

	return parsec.NewPositionedSliceSource(origin, toks, Token[K].Location, end), nil
}
