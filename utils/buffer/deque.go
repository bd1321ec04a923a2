// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

// Deque is an ordered collection that supports pushing and popping from
// either end.
type Deque[T any] interface {
	// Place an element at the leftmost end of the deque.
	PushLeft(T)
	// Place an element at the rightmost end of the deque.
	PushRight(T)
	// Remove and return the leftmost element of the deque.
	// Returns false if the deque is empty.
	PopLeft() (T, bool)
	// Remove and return the rightmost element of the deque.
	// Returns false if the deque is empty.
	PopRight() (T, bool)
	// Return the leftmost element of the deque without removing it.
	// Returns false if the deque is empty.
	PeekLeft() (T, bool)
	// Return the rightmost element of the deque without removing it.
	// Returns false if the deque is empty.
	PeekRight() (T, bool)
	// Return the element at index [i], where 0 is the leftmost element.
	// Returns false if [i] is out of bounds.
	Index(i int) (T, bool)
	// Returns the elements of the deque from left to right.
	List() []T
	// Returns the number of elements in the deque.
	Len() int
}
