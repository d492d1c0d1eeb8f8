package ledger

import (
	"errors"
	"sync"
)

// ID addresses a single object within a Store.
type ID uint64

// ErrStaleVersion is returned by CAS and Delete when the caller's expected
// version no longer matches the stored one: another transaction committed
// first and the caller observed a stale read. Per spec.md §5, the core does
// not retry internally — the caller must re-Borrow and resubmit.
var ErrStaleVersion = errors.New("ledger: stale object version")

// ErrNotFound is returned when id does not name a live object in the store.
var ErrNotFound = errors.New("ledger: object not found")

type record[T any] struct {
	obj     T
	version uint64
	shared  bool
}

// Store is a generic, version-CAS object store: the Go realization of the
// host's "object store" contract (spec.md §6), narrowed to a single object
// type T. Each settlement-core object type (Wallet, EscrowSrc, EscrowDst)
// gets its own Store instance, the way a channeldb-style store partitions
// state by record kind rather than sharing one untyped bucket.
//
// There is no background goroutine and no lock held across a caller's
// critical section: every method takes the mutex, does O(1) map work, and
// releases it, matching spec.md §5's "the core does not spawn threads or
// manage its own lock table" — the mutex here stands in for the host's own
// object-version serialisation, not for this core inventing concurrency
// control of its own.
type Store[T any] struct {
	mu      sync.Mutex
	objects map[ID]*record[T]
	nextID  uint64
}

// NewStore constructs an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{objects: make(map[ID]*record[T])}
}

// New mints a fresh object at version 0 and returns its ID.
func (s *Store[T]) New(obj T) ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := ID(s.nextID)
	s.objects[id] = &record[T]{obj: obj, version: 0}
	return id
}

// Share marks an object as shared, mirroring the host's share(obj)
// primitive. It is idempotent and purely advisory: Borrow/CAS already work
// on any live object regardless of this flag, but tests use it to assert
// that create_wallet actually publishes its Wallet instead of leaving it
// addressed-only.
func (s *Store[T]) Share(id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.objects[id]
	if !ok {
		return ErrNotFound
	}
	r.shared = true
	return nil
}

// IsShared reports whether id has been marked shared.
func (s *Store[T]) IsShared(id ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.objects[id]
	if !ok {
		return false, ErrNotFound
	}
	return r.shared, nil
}

// Borrow returns a copy of the object and its current version. Callers
// mutate the copy and call CAS with the version they borrowed; a concurrent
// winner bumps the version first and the loser's CAS fails with
// ErrStaleVersion.
func (s *Store[T]) Borrow(id ID) (T, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.objects[id]
	if !ok {
		var zero T
		return zero, 0, ErrNotFound
	}
	return r.obj, r.version, nil
}

// CAS commits obj as the new value for id if expectedVersion still matches
// the stored version, bumping the version on success.
func (s *Store[T]) CAS(id ID, obj T, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.objects[id]
	if !ok {
		return ErrNotFound
	}
	if r.version != expectedVersion {
		return ErrStaleVersion
	}
	r.obj = obj
	r.version++
	return nil
}

// Delete removes id from the store if expectedVersion still matches,
// the Go realization of the host's destroy-with-storage-refund primitive.
// The actual refund (returning a deposit to the caller) is the host's job;
// this method only removes the object so it can no longer be addressed.
func (s *Store[T]) Delete(id ID, expectedVersion uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.objects[id]
	if !ok {
		return ErrNotFound
	}
	if r.version != expectedVersion {
		return ErrStaleVersion
	}
	delete(s.objects, id)
	return nil
}
