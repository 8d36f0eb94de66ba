// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package fixvec implements a fixed-capacity vector.
//
// A Vec behaves like a dynamic array with push/pop semantics,
// except that its capacity is chosen once at construction and
// never changes: pushing past the capacity is an error rather
// than a reallocation. Because a Vec never grows, it can wrap
// caller-provided storage (see Of) and be used without any
// heap allocation at all.
//
// Elements are duplicated by ordinary assignment. Removing an
// element never finalizes or zeroes the slot it occupied; the
// slot simply stops being live. Callers that store pointers in
// a Vec and care about garbage retention should overwrite the
// slots explicitly before discarding the vector.
package fixvec

import "errors"

// ErrFull is returned by [Vec.TryPush] when the
// vector has no room for another element.
var ErrFull = errors.New("fixvec: vector at capacity")

// Vec is a fixed-capacity vector of elements of type T.
//
// The zero value of Vec is a usable vector with capacity
// zero; every push on it fails. Vec is a plain value type
// with no internal synchronization, so concurrent mutation
// requires external locking, exactly like a local slice.
type Vec[T any] struct {
	// buf is the backing storage; len(buf) is the capacity
	// and never changes after construction. Slots at index
	// >= n hold stale values and must never escape through
	// any exported accessor.
	buf []T
	n   int
}

// New returns an empty Vec that can hold up
// to [capacity] elements. The backing storage
// is allocated once, here, and never again.
//
// New panics if capacity is negative.
func New[T any](capacity int) Vec[T] {
	if capacity < 0 {
		panic("fixvec.New: negative capacity")
	}
	return Vec[T]{buf: make([]T, capacity)}
}

// Of returns an empty Vec that uses [buf] as its backing
// storage; the capacity is len(buf) and the existing
// contents of buf become stale slots. Of performs no
// allocation, so a Vec over a local array stays entirely
// on the stack.
//
// The Vec assumes exclusive ownership of buf: the caller
// must not read or write it afterwards except through
// the Vec itself (bulk writes finalized with SetLen are
// the one sanctioned exception).
func Of[T any](buf []T) Vec[T] {
	return Vec[T]{buf: buf}
}

// live returns the initialized prefix of the backing
// storage. All typed reads go through here so that the
// stale suffix can never be observed.
func (v *Vec[T]) live() []T {
	return v.buf[:v.n]
}

// slots returns the entire backing region, stale
// slots included. Write path only.
func (v *Vec[T]) slots() []T {
	return v.buf
}

// Len returns the number of elements currently in [v].
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the capacity of [v]. The capacity is
// fixed at construction and never changes.
func (v *Vec[T]) Cap() int {
	return len(v.buf)
}

// Empty returns whether [v] holds no elements.
func (v *Vec[T]) Empty() bool {
	return v.n == 0
}

// NotEmpty is the negation of Empty.
func (v *Vec[T]) NotEmpty() bool {
	return v.n != 0
}

// Full returns whether [v] has reached its capacity
// and has no room for another element.
func (v *Vec[T]) Full() bool {
	return v.n == len(v.buf)
}

// NotFull is the negation of Full.
func (v *Vec[T]) NotFull() bool {
	return v.n < len(v.buf)
}

// TryPush appends x to [v] if there is room for it.
// If the vector is full, TryPush returns ErrFull and
// the vector is left unchanged; the caller still holds
// x and can decide what to do with it. TryPush never
// panics.
func (v *Vec[T]) TryPush(x T) error {
	if v.Full() {
		return ErrFull
	}
	v.PushUnchecked(x)
	return nil
}

// Push appends x to [v].
//
// Push panics if the vector is already at capacity;
// callers that have not already established there is
// room should use TryPush instead.
func (v *Vec[T]) Push(x T) {
	if err := v.TryPush(x); err != nil {
		panic("fixvec.Push: vector already at capacity")
	}
}

// PushUnchecked appends x to [v] without checking
// for room. The caller must guarantee v.NotFull();
// there is no runtime check except in builds with
// the fixvecdebug tag.
func (v *Vec[T]) PushUnchecked(x T) {
	if debugAsserts && v.Full() {
		panic("fixvec.PushUnchecked: vector at capacity")
	}
	v.slots()[v.n] = x
	v.n++
}

// Pop removes and returns the most recently pushed
// element of [v]. The second result is false when
// the vector is empty, in which case the vector is
// left unchanged. The vacated slot keeps its old
// contents; it is simply no longer live.
func (v *Vec[T]) Pop() (T, bool) {
	if v.Empty() {
		var zero T
		return zero, false
	}
	return v.PopUnchecked(), true
}

// PopUnchecked removes and returns the most recently
// pushed element of [v] without checking for emptiness.
// The caller must guarantee v.NotEmpty(); there is no
// runtime check except in builds with the fixvecdebug
// tag.
func (v *Vec[T]) PopUnchecked() T {
	if debugAsserts && v.Empty() {
		panic("fixvec.PopUnchecked: vector is empty")
	}
	live := v.live()
	x := live[len(live)-1]
	v.n--
	return x
}

// Clear removes all elements from [v]. The backing
// storage is not zeroed; every slot becomes stale.
// Clearing an already-empty vector is a no-op.
func (v *Vec[T]) Clear() {
	v.n = 0
}

// SetLen sets the length of [v] to n directly.
//
// The caller must guarantee 0 <= n <= v.Cap() and that
// the first n slots of the backing storage actually hold
// values it intends to expose, e.g. after a bulk write
// through the slice handed to Of. There is no runtime
// check except in builds with the fixvecdebug tag;
// violating the contract silently exposes stale slots.
func (v *Vec[T]) SetLen(n int) {
	if debugAsserts && (n < 0 || n > len(v.buf)) {
		panic("fixvec.SetLen: length out of range")
	}
	v.n = n
}
