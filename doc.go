// Package saccharin provides lazy, pull-based sequence combinators.
//
// Sequences follow the seq.Iterator contract: HasNext reports whether
// an element is available and Next returns it, or io.EOF once the
// sequence is exhausted. Nothing is computed until a consumer pulls.
//
// Some combinators are plain adapters that do their work on the
// consumer's goroutine (Repeat, RepeatN, Compress, TakeWhile, Count,
// Range, Zip, Until). The rest are written as generator bodies and
// return a *gen.Iterator: their logic runs on a pooled worker
// goroutine that hands over one element at a time. Close a
// *gen.Iterator when done with it, or range over it with seq.All,
// which closes it when the loop ends.
//
// Combinators take ownership of the sequences passed to them and
// close those that implement io.Closer when they finish. An input
// that fails ends the combined sequence with the same failure.
package saccharin
