package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewThenBorrow(t *testing.T) {
	s := NewStore[string]()
	id := s.New("hello")

	obj, version, err := s.Borrow(id)
	require.NoError(t, err)
	require.Equal(t, "hello", obj)
	require.Equal(t, uint64(0), version)
}

func TestCASAdvancesVersion(t *testing.T) {
	s := NewStore[int]()
	id := s.New(1)

	require.NoError(t, s.CAS(id, 2, 0))

	obj, version, err := s.Borrow(id)
	require.NoError(t, err)
	require.Equal(t, 2, obj)
	require.Equal(t, uint64(1), version)
}

func TestCASRejectsStaleVersion(t *testing.T) {
	s := NewStore[int]()
	id := s.New(1)

	require.NoError(t, s.CAS(id, 2, 0))
	err := s.CAS(id, 3, 0)
	require.ErrorIs(t, err, ErrStaleVersion)
}

func TestCASOnMissingObject(t *testing.T) {
	s := NewStore[int]()
	err := s.CAS(ID(999), 1, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBorrowMissingObject(t *testing.T) {
	s := NewStore[int]()
	_, _, err := s.Borrow(ID(999))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesObject(t *testing.T) {
	s := NewStore[int]()
	id := s.New(1)

	require.NoError(t, s.Delete(id, 0))

	_, _, err := s.Borrow(id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRejectsStaleVersion(t *testing.T) {
	s := NewStore[int]()
	id := s.New(1)
	require.NoError(t, s.CAS(id, 2, 0))

	err := s.Delete(id, 0)
	require.ErrorIs(t, err, ErrStaleVersion)
}

func TestShareAndIsShared(t *testing.T) {
	s := NewStore[int]()
	id := s.New(1)

	shared, err := s.IsShared(id)
	require.NoError(t, err)
	require.False(t, shared)

	require.NoError(t, s.Share(id))

	shared, err = s.IsShared(id)
	require.NoError(t, err)
	require.True(t, shared)
}

func TestConcurrentCASOnlyOneWinnerPerVersion(t *testing.T) {
	s := NewStore[int]()
	id := s.New(0)

	const attempts = 50
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func(v int) {
			results <- s.CAS(id, v, 0)
		}(i)
	}

	successes := 0
	for i := 0; i < attempts; i++ {
		if err := <-results; err == nil {
			successes++
		}
	}
	require.Equal(t, 1, successes, "exactly one CAS against version 0 should win")
}
