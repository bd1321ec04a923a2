// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnboundedDequeEmpty(t *testing.T) {
	require := require.New(t)

	deque := NewUnboundedDeque[int](2)
	require.Zero(deque.Len())
	require.Empty(deque.List())

	_, ok := deque.PopLeft()
	require.False(ok)
	_, ok = deque.PopRight()
	require.False(ok)
	_, ok = deque.PeekLeft()
	require.False(ok)
	_, ok = deque.PeekRight()
	require.False(ok)
	_, ok = deque.Index(0)
	require.False(ok)
}

func TestUnboundedDequeFIFO(t *testing.T) {
	require := require.New(t)

	deque := NewUnboundedDeque[int](2)
	for i := 0; i < 100; i++ {
		deque.PushRight(i)
		require.Equal(i+1, deque.Len())

		got, ok := deque.PeekRight()
		require.True(ok)
		require.Equal(i, got)
	}

	for i := 0; i < 100; i++ {
		got, ok := deque.PeekLeft()
		require.True(ok)
		require.Equal(i, got)

		got, ok = deque.PopLeft()
		require.True(ok)
		require.Equal(i, got)
	}
	require.Zero(deque.Len())
}

func TestUnboundedDequeLIFO(t *testing.T) {
	require := require.New(t)

	deque := NewUnboundedDeque[int](2)
	for i := 0; i < 10; i++ {
		deque.PushLeft(i)
	}
	for i := 0; i < 10; i++ {
		got, ok := deque.PopLeft()
		require.True(ok)
		require.Equal(9-i, got)
	}

	for i := 0; i < 10; i++ {
		deque.PushRight(i)
	}
	for i := 0; i < 10; i++ {
		got, ok := deque.PopRight()
		require.True(ok)
		require.Equal(9-i, got)
	}
}

func TestUnboundedDequeWrapAround(t *testing.T) {
	require := require.New(t)

	deque := NewUnboundedDeque[int](4)

	// Walk the window around the underlying slice several times.
	next := 0
	for i := 0; i < 2; i++ {
		deque.PushRight(next)
		next++
	}
	for i := 0; i < 20; i++ {
		deque.PushRight(next)
		next++
		_, ok := deque.PopLeft()
		require.True(ok)

		require.Equal([]int{next - 2, next - 1}, deque.List())

		first, ok := deque.Index(0)
		require.True(ok)
		require.Equal(next-2, first)

		second, ok := deque.Index(1)
		require.True(ok)
		require.Equal(next-1, second)

		_, ok = deque.Index(2)
		require.False(ok)
	}
}

func TestUnboundedDequeMixed(t *testing.T) {
	require := require.New(t)

	deque := NewUnboundedDeque[int](2)
	deque.PushRight(2)
	deque.PushLeft(1)
	deque.PushRight(3)
	deque.PushLeft(0)
	require.Equal([]int{0, 1, 2, 3}, deque.List())

	got, ok := deque.PopRight()
	require.True(ok)
	require.Equal(3, got)
	require.Equal([]int{0, 1, 2}, deque.List())

	got, ok = deque.PopLeft()
	require.True(ok)
	require.Equal(0, got)
	require.Equal([]int{1, 2}, deque.List())
}
