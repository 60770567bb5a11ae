package saccharin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/seq"
)

func TestCount(t *testing.T) {
	t.Parallel()
	t.Run("Steps", func(t *testing.T) {
		assert.Equal(t, []int{5, 7, 9}, seq.Take[int](Count(5, 2), 3))
		assert.Equal(t, []float64{1, 0.5, 0}, seq.Take[float64](Count(1.0, -0.5), 3))
	})
	t.Run("Independent", func(t *testing.T) {
		a, b := Count(0, 1), Count(0, 1)
		seq.Take[int](a, 5)
		assert.Equal(t, []int{0}, seq.Take[int](b, 1))
	})
}

func TestRange(t *testing.T) {
	t.Parallel()
	t.Run("Up", func(t *testing.T) {
		assert.Equal(t, []int{0, 3, 6, 9}, collect(t, Range(0, 10, 3)))
	})
	t.Run("Down", func(t *testing.T) {
		assert.Equal(t, []int{3, 2, 1}, collect(t, Range(3, 0, -1)))
	})
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, collect(t, Range(5, 5, 1)))
		assert.Empty(t, collect(t, Range(5, 0, 1)))
		assert.Empty(t, collect(t, Range(0, 5, -1)))
	})
	t.Run("Unsigned", func(t *testing.T) {
		assert.Equal(t, []uint8{250, 252, 254}, collect(t, Range[uint8](250, 255, 2)))
	})
	t.Run("NoOverflow", func(t *testing.T) {
		assert.Equal(t, []int8{120, 125}, collect(t, Range[int8](120, math.MaxInt8, 5)))
		assert.Equal(t, []uint8{254}, collect(t, Range[uint8](254, math.MaxUint8, 3)))
	})
	t.Run("ZeroStep", func(t *testing.T) {
		defer func() { assert.True(t, ers.IsInvariantViolation(recover())) }()
		Range(0, 1, 0)
		t.Fatal("expected panic")
	})
}

func TestZip(t *testing.T) {
	t.Parallel()
	t.Run("Lockstep", func(t *testing.T) {
		out := collect(t, Zip(seq.Of(1, 2, 3), seq.Of("a", "b")))
		assert.Equal(t, []Pair[int, string]{MakePair(1, "a"), MakePair(2, "b")}, out)
	})
	t.Run("WithInfinite", func(t *testing.T) {
		out := collect(t, Zip(seq.Of("a", "b"), Count(0, 1)))
		assert.Equal(t, []Pair[string, int]{MakePair("a", 0), MakePair("b", 1)}, out)
	})
}

func TestUntil(t *testing.T) {
	t.Parallel()
	lines := []string{"one", "two", "", "three"}
	idx := 0
	read := func() string { idx++; return lines[idx-1] }
	assert.Equal(t, []string{"one", "two"}, collect(t, Until(read, "")))
	assert.Equal(t, 3, idx)
}
