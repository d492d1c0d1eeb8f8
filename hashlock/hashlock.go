// Package hashlock implements the hashing and Merkle-tree primitives the
// settlement core uses to bind secrets to fills (spec.md §4.1 / component
// C1). Every hash in this package is a 32-byte keccak-256 digest, the same
// primitive the destination-chain side of the swap is expected to use when
// it checks a revealed secret.
package hashlock

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

// Size is the fixed length, in bytes, of every hash this package produces
// and consumes.
const Size = 32

// Hash is a 32-byte keccak-256 digest.
type Hash [Size]byte

// MinSecretLen is the minimum length a preimage must have before it is
// hashed into a leaf or checked against a hashlock (spec.md §4.1).
const MinSecretLen = 32

// Keccak256 hashes data and returns the 32-byte digest.
func Keccak256(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out Hash
	h.Sum(out[:0])
	return out
}

// LeafHash returns the Merkle leaf for a partial-fill secret: keccak(secret).
func LeafHash(secret []byte) Hash {
	return Keccak256(secret)
}

// HashPair combines two node hashes the way the Merkle producer and verifier
// must: lexicographically ordered before concatenation, so that hash_pair(a,
// b) and hash_pair(b, a) always agree. A reimplementation that sorts
// differently will silently reject every proof the canonical builder
// produces (spec.md §9).
func HashPair(a, b Hash) Hash {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return Keccak256(append(append([]byte{}, a[:]...), b[:]...))
	}
	return Keccak256(append(append([]byte{}, b[:]...), a[:]...))
}

// Verify folds proof upward from leaf using HashPair at every step and
// reports whether the result equals root.
func Verify(leaf Hash, proof []Hash, root Hash) bool {
	cur := leaf
	for _, sibling := range proof {
		cur = HashPair(cur, sibling)
	}
	return cur == root
}

// BuildRoot computes the Merkle root over an ordered list of leaves using
// the same lexicographic pair-hashing rule Verify checks against. Unlike the
// off-chain reference builder in the original protocol — which is a stub
// that concatenates leaves and hashes the blob — this builder produces a
// tree the on-chain verifier actually accepts (spec.md §9, Open Questions).
//
// leaves must be non-empty; a single leaf is its own root.
func BuildRoot(leaves []Hash) Hash {
	level := make([]Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// Odd node out carries forward unhashed to the
				// next level, where it will pair normally.
				next = append(next, level[i])
				continue
			}
			next = append(next, HashPair(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

// BuildProof returns the sibling path from leaves[index] up to the root
// BuildRoot(leaves) would produce.
func BuildProof(leaves []Hash, index int) ([]Hash, error) {
	if index < 0 || index >= len(leaves) {
		return nil, errIndexRange
	}

	level := make([]Hash, len(leaves))
	copy(level, leaves)
	proof := make([]Hash, 0)

	idx := index
	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				if idx == i {
					idx = len(next) - 1
				}
				continue
			}

			pairHash := HashPair(level[i], level[i+1])
			next = append(next, pairHash)

			if idx == i {
				proof = append(proof, level[i+1])
				idx = len(next) - 1
			} else if idx == i+1 {
				proof = append(proof, level[i])
				idx = len(next) - 1
			}
		}
		level = next
	}

	return proof, nil
}
