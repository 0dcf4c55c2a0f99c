package parsec_test

import (
	"testing"

	. "github.com/stntngo/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operatorChar(c rune) Parser[rune, rune] {
	return Satisfy[rune](string(c), func(r rune) bool { return r == c })
}

// arithmeticExpr builds its parenthesized sub-expression with Defer
// rather than Recursive: the atom needs to embed the *full*
// table.Build() result, which does not exist yet while the table's
// own base atom is under construction. Defer's thunk is only invoked
// on first parse, by which point expr has been assigned.
func arithmeticExpr() Parser[rune, int] {
	var expr Parser[rune, int]

	paren := Zip3(
		operatorChar('('),
		Defer(func() Parser[rune, int] { return expr }),
		operatorChar(')'),
		func(_ rune, v int, _ rune) int { return v },
	)

	atom := Choice(paren, digit)

	table := NewTable[rune, rune, int](atom)
	table.InfixL(operatorChar('*'), func(a int, _ rune, b int) int { return a * b }, 8)
	table.InfixL(operatorChar('/'), func(a int, _ rune, b int) int { return a / b }, 8)
	table.InfixL(operatorChar('+'), func(a int, _ rune, b int) int { return a + b }, 7)
	table.InfixL(operatorChar('-'), func(a int, _ rune, b int) int { return a - b }, 7)

	expr = table.Build()

	return expr
}

// S6: "1+2*3" with * binding tighter than + yields 1+(2*3)=7.
func TestOperatorTablePriority(t *testing.T) {
	r := ParseString(arithmeticExpr(), "1+2*3")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 7, r.Value())
}

// A parenthesized sub-expression must itself run the full operator
// table, not just the table's base atom.
func TestOperatorTableParenthesizedSubExpression(t *testing.T) {
	r := ParseString(arithmeticExpr(), "(1+2)*3")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 9, r.Value())

	nested := ParseString(arithmeticExpr(), "2*(3+(4-1))")
	require.True(t, nested.IsSuccess())
	assert.Equal(t, 12, nested.Value())
}

// S7: committing after "+" converts a dangling operator into an Error
// rather than a recoverable Failure.
func TestOperatorTableMustCommit(t *testing.T) {
	p := Zip(operatorChar('+'), Must(digit), func(_ rune, v int) int { return v })

	r := ParseString(p, "+")
	require.True(t, r.IsError())
	assert.Equal(t, 1, r.At().Offset())
}

func TestOperatorTableLeftAssociativity(t *testing.T) {
	r := ParseString(arithmeticExpr(), "9-3-2")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 4, r.Value()) // (9-3)-2
}

func TestOperatorTableRightAssociativity(t *testing.T) {
	assign := Satisfy[rune]("=", func(r rune) bool { return r == '=' })

	table := NewTable[rune, rune, int](digit)
	table.InfixR(assign, func(a int, _ rune, b int) int { return a - b }, 5)

	// a = b = c right-associates: a - (b - c)
	r := ParseString(table.Build(), "9=3=2")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 8, r.Value())
}

func TestOperatorTableNonAssociative(t *testing.T) {
	eq := Satisfy[rune]("=", func(r rune) bool { return r == '=' })

	table := NewTable[rune, rune, int](digit)
	table.InfixN(eq, func(a int, _ rune, b int) int {
		if a == b {
			return 1
		}

		return 0
	}, 5)

	single := ParseString(table.Build(), "3=3")
	require.True(t, single.IsSuccess())
	assert.Equal(t, 1, single.Value())

	// a single occurrence of "=" is accepted, but it does not chain:
	// the second "=5" is left unconsumed.
	chained := ParseString(table.Build(), "3=3=5")
	require.True(t, chained.IsSuccess())
	assert.Equal(t, 1, chained.Value())
	assert.Equal(t, 3, chained.Rest().Location().Offset())
}

func TestOperatorTablePrefixUnary(t *testing.T) {
	neg := Satisfy[rune]("-", func(r rune) bool { return r == '-' })

	table := NewTable[rune, rune, int](digit)
	table.Prefix(neg, func(x int, _ rune) int { return -x }, 9)

	r := ParseString(table.Build(), "--5")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Value()) // double negation
}

func TestOperatorTablePostfixUnary(t *testing.T) {
	bang := Satisfy[rune]("!", func(r rune) bool { return r == '!' })

	table := NewTable[rune, rune, int](digit)
	table.Postfix(bang, func(x int, _ rune) int { return x * 2 }, 9)

	r := ParseString(table.Build(), "3!!")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 12, r.Value()) // (3*2)*2
}

func TestOperatorTableEmptyReturnsBase(t *testing.T) {
	table := NewTable[rune, rune, int](digit)
	r := ParseString(table.Build(), "5")
	require.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Value())
}

func TestOperatorTableMixedAssocSamePriority(t *testing.T) {
	// Two entries at the same priority but different associativities:
	// LEFT is layered closer to the atom (ascending Assoc order),
	// so it binds tighter than the RIGHT layer built on top of it.
	plus := Satisfy[rune]("+", func(r rune) bool { return r == '+' })
	assign := Satisfy[rune]("=", func(r rune) bool { return r == '=' })

	table := NewTable[rune, rune, int](digit)
	table.InfixL(plus, func(a int, _ rune, b int) int { return a + b }, 7)
	table.InfixR(assign, func(a int, _ rune, b int) int { return a - b }, 7)

	r := ParseString(table.Build(), "1+2=3+4")
	require.True(t, r.IsSuccess())
	// LEFT layer (plus) groups first: "1+2" and "3+4" become atoms for
	// the RIGHT layer (assign): 3 = (3+4)... i.e. (1+2) - (3+4) under
	// right-assoc with a single occurrence here.
	assert.Equal(t, (1+2)-(3+4), r.Value())
}
