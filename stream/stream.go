// SPDX-License-Identifier: MIT
// Package: lvseq/stream
//
// stream.go - lock-free shared cursor over a lazy sequence.

package stream

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvseq/seq"
)

// cell is one position of the remaining tail. Its element is realized on
// first demand by pulling the shared source; next is the tail after it.
type cell[T any] struct {
	once sync.Once
	src  seq.Seq[T]
	val  T
	ok   bool
	next *cell[T]
}

// realize pulls the source exactly once for this position. Cell k+1 only
// exists after cell k is realized, so calls into src are never concurrent.
func (c *cell[T]) realize() {
	c.once.Do(func() {
		c.val, c.ok = c.src.Next()
		if c.ok {
			c.next = &cell[T]{src: c.src}
		}
		c.src = nil
	})
}

// Stream is a concurrency-safe pull cursor over a seq.Seq.
// The zero value is not usable; construct with New.
//
// The cursor advances by compare-and-swap only. Realizing an element is
// different: the source is stateful and must be pulled exactly once per
// element, so callers that reach the same unrealized head wait on that
// cell's sync.Once while one of them pulls the source. Already realized
// elements are handed out without waiting.
type Stream[T any] struct {
	cur atomic.Pointer[cell[T]]
}

// New returns a Stream positioned at the first element of s.
// s must not be pulled by anyone else afterwards.
func New[T any](s seq.Seq[T]) *Stream[T] {
	if s == nil {
		s = seq.Empty[T]()
	}
	st := &Stream[T]{}
	st.cur.Store(&cell[T]{src: s})

	return st
}

// Next delivers the next element to this caller only. It returns the zero
// value and false once the source is exhausted, and keeps doing so.
// Safe for concurrent use.
func (st *Stream[T]) Next() (T, bool) {
	for {
		head := st.cur.Load()
		head.realize()
		if !head.ok {
			var zero T
			return zero, false
		}
		if st.cur.CompareAndSwap(head, head.next) {
			return head.val, true
		}
		// another caller took head; retry against the new tail
	}
}

// Exhausted reports whether the stream has delivered its last element.
// It may pull the source once to find out.
func (st *Stream[T]) Exhausted() bool {
	head := st.cur.Load()
	head.realize()

	return !head.ok
}

// FromSeq wraps s in a Stream and returns its pull operation.
//
//	next := stream.FromSeq(seq.Of(1, 2))
//	next() // 1 true
//	next() // 2 true
//	next() // 0 false, forever
func FromSeq[T any](s seq.Seq[T]) func() (T, bool) {
	return New(s).Next
}
