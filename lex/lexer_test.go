package lex_test

import (
	"testing"
	"unicode"

	"github.com/stntngo/parsec"
	"github.com/stntngo/parsec/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordType int

const (
	word wordType = iota
	space
)

func lexWords(l *lex.Lexer[wordType]) (lex.LexerFunc[wordType], error) {
	r := l.Read()

	switch {
	case r == lex.EOF:
		return nil, nil
	case unicode.IsSpace(r):
		for unicode.IsSpace(l.Read()) {
		}

		l.Backup()
		l.Emit(space)

		return lexWords, nil
	default:
		for {
			r := l.Read()
			if r == lex.EOF || unicode.IsSpace(r) {
				l.Backup()
				break
			}
		}

		l.Emit(word)

		return lexWords, nil
	}
}

func TestDrainCollectsTokensInOrder(t *testing.T) {
	l := lex.NewLexer(lexWords, "the quick fox")

	toks, err := lex.Drain(l, nil)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, "the", toks[0].Body)
	assert.Equal(t, word, toks[0].Type)
	assert.Equal(t, space, toks[1].Type)
	assert.Equal(t, "quick", toks[2].Body)
	assert.Equal(t, "fox", toks[4].Body)
}

func TestDrainAppliesSkip(t *testing.T) {
	l := lex.NewLexer(lexWords, "the quick fox")

	toks, err := lex.Drain(l, func(tok lex.Token[wordType]) bool { return tok.Type == space })
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for _, tok := range toks {
		assert.Equal(t, word, tok.Type)
	}
}

func TestSourceFeedsParsecCombinators(t *testing.T) {
	l := lex.NewLexer(lexWords, "red green blue")

	src, err := lex.Source[wordType]("<test>", l, func(tok lex.Token[wordType]) bool { return tok.Type == space })
	require.NoError(t, err)

	matchWord := func(body string) parsec.Parser[lex.Token[wordType], lex.Token[wordType]] {
		return parsec.Satisfy[lex.Token[wordType]](body, func(tok lex.Token[wordType]) bool {
			return tok.Type == word && tok.Body == body
		})
	}

	p := parsec.Zip3(
		matchWord("red"),
		matchWord("green"),
		matchWord("blue"),
		func(a, b, c lex.Token[wordType]) string { return a.Body + b.Body + c.Body },
	)

	r := p.Run(src)
	require.True(t, r.IsSuccess())
	assert.Equal(t, "redgreenblue", r.Value())
}

func TestSourceReportsTokenPositionsNotSliceIndex(t *testing.T) {
	l := lex.NewLexer(lexWords, "red green blue")

	src, err := lex.Source[wordType]("<test>", l, func(tok lex.Token[wordType]) bool { return tok.Type == space })
	require.NoError(t, err)

	// "green" is the second surviving token after whitespace is
	// skipped, but it starts at byte offset 4 in the original text —
	// a slice-index Source would report 1 here instead.
	assert.Equal(t, 4, src.Advance().Location().Offset())

	matchWord := func(body string) parsec.Parser[lex.Token[wordType], lex.Token[wordType]] {
		return parsec.Satisfy[lex.Token[wordType]](body, func(tok lex.Token[wordType]) bool {
			return tok.Type == word && tok.Body == body
		})
	}

	r2 := matchWord("nope").Run(src)
	require.True(t, r2.IsFailure())
	assert.Equal(t, 0, r2.At().Offset())
}
