package saccharin

import "fmt"

// Pair holds two values, as produced by LexCart, ColexCart and Zip.
type Pair[A, B any] struct {
	Head A
	Tail B
}

// MakePair constructs a pair. This is identical to using the literal
// constructor but lets the compiler infer the types.
func MakePair[A, B any](head A, tail B) Pair[A, B] { return Pair[A, B]{Head: head, Tail: tail} }

// Swap returns the pair with its elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] { return MakePair(p.Tail, p.Head) }

// Split returns the elements of the pair.
func (p Pair[A, B]) Split() (A, B) { return p.Head, p.Tail }

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.Head, p.Tail) }
