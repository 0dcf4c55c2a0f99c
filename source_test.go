package parsec_test

import (
	"testing"

	. "github.com/stntngo/parsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labeled struct {
	body   string
	offset int
}

func TestNewPositionedSliceSource(t *testing.T) {
	tokens := []labeled{
		{body: "ab", offset: 0},
		{body: "cd", offset: 10},
	}

	locate := func(l labeled) Location { return NewLocation(l.offset, 1, 1) }
	end := NewLocation(20, 1, 1)

	src := NewPositionedSliceSource("<test>", tokens, locate, end)

	assert.Equal(t, 0, src.Location().Offset())

	next := src.Advance()
	assert.Equal(t, 10, next.Location().Offset())

	exhausted := next.Advance()
	head, ok := exhausted.Head()
	require.False(t, ok)
	assert.Equal(t, labeled{}, head)
	assert.Equal(t, 20, exhausted.Location().Offset())

	// Advancing past exhaustion is a no-op, matching sliceStream.
	assert.Equal(t, 20, exhausted.Advance().Location().Offset())
}
