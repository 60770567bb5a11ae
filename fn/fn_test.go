package fn

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/seq"
)

func even(v int) bool { return v%2 == 0 }

func TestPredicate(t *testing.T) {
	t.Parallel()
	t.Run("TestAndNegate", func(t *testing.T) {
		p := MakePredicate(even)
		assert.True(t, p.Test(2))
		assert.False(t, p.Test(3))
		assert.True(t, p.Negate().Test(3))
		assert.False(t, p.Negate().Negate().Test(3))
	})
	t.Run("AndOr", func(t *testing.T) {
		positive := MakePredicate(func(v int) bool { return v > 0 })
		p := MakePredicate(even)
		assert.True(t, p.And(positive).Test(4))
		assert.False(t, p.And(positive).Test(-4))
		assert.True(t, p.Or(positive).Test(3))
		assert.False(t, p.Or(positive).Test(-3))
		assert.True(t, p.And(nil).Test(2))
	})
	t.Run("Filter", func(t *testing.T) {
		out, err := seq.Collect(MakePredicate(even).Filter(seq.Of(1, 2, 3, 4, 5, 6)))
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, out)
	})
	t.Run("FilterLongRejectedRun", func(t *testing.T) {
		items := make([]int, 100000)
		items[len(items)-1] = 1
		out, err := seq.Collect(MakePredicate(func(v int) bool { return v == 1 }).Filter(seq.FromSlice(items)))
		require.NoError(t, err)
		assert.Equal(t, []int{1}, out)
	})
	t.Run("FilterNothing", func(t *testing.T) {
		out, err := seq.Collect(MakePredicate(even).Filter(seq.Of(1, 3)))
		require.NoError(t, err)
		assert.Empty(t, out)
	})
	t.Run("FilterPropagatesFailure", func(t *testing.T) {
		boom := errors.New("boom")
		src := seq.NewLookahead(func() (int, error) { return 0, boom })
		_, err := seq.Collect(MakePredicate(even).Filter(src))
		assert.ErrorIs(t, err, boom)
	})
}

func TestFunction(t *testing.T) {
	t.Parallel()
	t.Run("Apply", func(t *testing.T) {
		assert.Equal(t, "42", MakeFunction(strconv.Itoa).Apply(42))
		assert.Equal(t, 7, Identity[int]().Apply(7))
	})
	t.Run("If", func(t *testing.T) {
		f := MakeFunction(strconv.Itoa).If(even)
		assert.Equal(t, "2", f(2))
		assert.Equal(t, "", f(3))
	})
	t.Run("PreHook", func(t *testing.T) {
		count := 0
		f := Identity[int]().PreHook(func() { count++ })
		f(1)
		f(2)
		assert.Equal(t, 2, count)
	})
	t.Run("Lock", func(t *testing.T) {
		total := 0
		f := MakeFunction(func(v int) int { total += v; return total }).Lock()
		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() { defer wg.Done(); f(1) }()
		}
		wg.Wait()
		assert.Equal(t, 100, total)
	})
	t.Run("Map", func(t *testing.T) {
		out, err := seq.Collect(MakeFunction(strconv.Itoa).Map(seq.Of(1, 2, 3)))
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, out)
	})
	t.Run("Compose", func(t *testing.T) {
		double := MakeFunction(func(v int) int { return v * 2 })
		assert.Equal(t, "8", Compose(double, MakeFunction(strconv.Itoa)).Apply(4))
	})
}

func TestHandler(t *testing.T) {
	t.Parallel()
	t.Run("Drain", func(t *testing.T) {
		var seen []int
		h := MakeHandler(func(v int) { seen = append(seen, v) })
		require.NoError(t, h.Drain(seq.Of(1, 2, 3)))
		assert.Equal(t, []int{1, 2, 3}, seen)
	})
	t.Run("SkipAndJoin", func(t *testing.T) {
		var all, odd []int
		h := MakeHandler(func(v int) { all = append(all, v) }).
			Join(MakeHandler(func(v int) { odd = append(odd, v) }).Skip(even))
		require.NoError(t, h.Drain(seq.Of(1, 2, 3)))
		assert.Equal(t, []int{1, 2, 3}, all)
		assert.Equal(t, []int{1, 3}, odd)
	})
	t.Run("Panic", func(t *testing.T) {
		h := MakeHandler(func(int) { panic("nope") })
		assert.ErrorIs(t, h.RecoverPanic(1), ers.ErrRecoveredPanic)
		assert.ErrorIs(t, h.Drain(seq.Of(1)), ers.ErrRecoveredPanic)
	})
}
