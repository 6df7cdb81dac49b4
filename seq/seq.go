package seq

import "iter"

// empty is the exhausted sequence.
type empty[T any] struct{}

func (empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Empty returns a sequence with no elements.
func Empty[T any]() Seq[T] { return empty[T]{} }

// sliceSeq walks a slice without copying it.
type sliceSeq[T any] struct {
	vals []T
	pos  int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.pos >= len(s.vals) {
		var zero T
		return zero, false
	}
	v := s.vals[s.pos]
	s.pos++

	return v, true
}

// FromSlice returns a finite sequence over vals. The slice is not copied;
// callers must not mutate it while the sequence is being consumed.
//
// Complexity: O(1) per element.
func FromSlice[T any](vals []T) Seq[T] {
	return &sliceSeq[T]{vals: vals}
}

// Of returns a finite sequence over the given values.
func Of[T any](vals ...T) Seq[T] {
	return FromSlice(vals)
}

// repeatSeq yields the same value forever.
type repeatSeq[T any] struct{ v T }

func (r repeatSeq[T]) Next() (T, bool) { return r.v, true }

// Repeat returns an infinite sequence of v.
func Repeat[T any](v T) Seq[T] { return repeatSeq[T]{v: v} }

// takeSeq truncates src after n elements.
type takeSeq[T any] struct {
	src  Seq[T]
	left int
}

func (t *takeSeq[T]) Next() (T, bool) {
	if t.left <= 0 {
		var zero T
		return zero, false
	}
	v, ok := t.src.Next()
	if !ok {
		t.left = 0
		return v, false
	}
	t.left--

	return v, true
}

// Take returns a sequence of at most n leading elements of s.
// The source is never pulled past the n-th element.
func Take[T any](s Seq[T], n int) Seq[T] {
	return &takeSeq[T]{src: s, left: n}
}

// mapSeq applies fn to each element of src.
type mapSeq[T, R any] struct {
	src Seq[T]
	fn  func(T) R
}

func (m mapSeq[T, R]) Next() (R, bool) {
	v, ok := m.src.Next()
	if !ok {
		var zero R
		return zero, false
	}

	return m.fn(v), true
}

// Map returns a sequence of fn applied to each element of s, lazily.
func Map[T, R any](s Seq[T], fn func(T) R) Seq[R] {
	return mapSeq[T, R]{src: s, fn: fn}
}

// Collect drains s into a slice. It never returns for infinite sequences;
// bound them with Take first.
func Collect[T any](s Seq[T]) []T {
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}

	return out
}

// CollectN pulls at most n elements of s into a slice pre-sized to n.
func CollectN[T any](s Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// All bridges s into a range-over-func iterator. Breaking out of the loop
// leaves the remaining elements of s unconsumed.
//
//	for v := range seq.All(s) { ... }
func All[T any](s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// pullSeq adapts an iter.Pull pair.
type pullSeq[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (p *pullSeq[T]) Next() (T, bool) {
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.next()
	if !ok {
		p.done = true
		p.stop()
	}

	return v, ok
}

// FromIter converts a push iterator into a Seq. The returned stop function
// releases the iterator early; it is called automatically on exhaustion and
// is safe to call more than once.
func FromIter[T any](it iter.Seq[T]) (Seq[T], func()) {
	next, stop := iter.Pull(it)
	p := &pullSeq[T]{next: next, stop: stop}

	return p, func() {
		p.done = true
		stop()
	}
}
