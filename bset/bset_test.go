package bset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBSet(t *testing.T) {
	var s BSet
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Len())

	s.Add(1)
	s.Add(101)
	s.Add(10001)
	s.Add(101)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(101))
	assert.True(t, s.Contains(10001))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(-3))
	assert.False(t, s.Contains(20000))
	assert.Equal(t, []int{1, 101, 10001}, s.Members())
	assert.GreaterOrEqual(t, s.Width(), 10002)

	assert.True(t, s.Remove(10001))
	assert.False(t, s.Remove(10001))
	assert.False(t, s.Remove(55555))
	assert.Equal(t, []int{1, 101}, s.Members())
	// Trailing empty words are dropped.
	assert.Len(t, s.Words(), 2)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Members())
}

func TestBSet_Words(t *testing.T) {
	s := New(128)
	s.Add(0)
	s.Add(3)
	s.Add(64)

	words := s.Words()
	require.Len(t, words, 2)
	assert.Equal(t, uint64(0b1001), words[0])
	assert.Equal(t, uint64(1), words[1])
}

func TestBSet_AddNegativePanics(t *testing.T) {
	var s BSet
	assert.Panics(t, func() { s.Add(-1) })
}

func TestBSet_WordBoundaries(t *testing.T) {
	s := New(256)
	require.True(t, s.IsEmpty())

	members := []int{0, 63, 64, 127, 128, 200}
	for i := len(members) - 1; i >= 0; i-- {
		s.Add(members[i])
	}
	assert.Equal(t, members, s.Members())
	assert.Equal(t, len(members), s.Len())

	words := s.Words()
	require.Len(t, words, 4)
	assert.Equal(t, uint64(1)|uint64(1)<<63, words[0])
	assert.Equal(t, uint64(1)|uint64(1)<<63, words[1])
}

func TestBSet_RemoveLastMember(t *testing.T) {
	var s BSet
	s.Add(10001)
	require.Equal(t, []int{10001}, s.Members())

	require.True(t, s.Remove(10001))
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Words())
	assert.Zero(t, s.Width())

	// The set stays usable after shrinking to nothing.
	s.Add(5)
	assert.Equal(t, []int{5}, s.Members())
}
