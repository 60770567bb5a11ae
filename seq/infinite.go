package seq

// Infinite is a sequence that never runs out: HasNext is always true
// and Next never fails. Callers must bound it themselves, with Take,
// a TakeWhile or an ISlice.
type Infinite[T any] struct{ next func() T }

var _ Sequence[int] = (*Infinite[int])(nil)

// NewInfinite constructs an Infinite sequence that calls next for
// every element.
func NewInfinite[T any](next func() T) *Infinite[T] { return &Infinite[T]{next: next} }

func (*Infinite[T]) HasNext() bool      { return true }
func (i *Infinite[T]) Next() (T, error) { return i.next(), nil }
func (*Infinite[T]) Remove() error      { return unsupported() }
func (*Infinite[T]) Close() error       { return nil }
