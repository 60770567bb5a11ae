package saccharin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	t.Parallel()
	p := MakePair("a", 1)
	assert.Equal(t, Pair[string, int]{Head: "a", Tail: 1}, p)
	assert.Equal(t, Pair[int, string]{Head: 1, Tail: "a"}, p.Swap())
	assert.Equal(t, "(a, 1)", p.String())

	head, tail := p.Split()
	assert.Equal(t, "a", head)
	assert.Equal(t, 1, tail)
}
