package escrow

import (
	"encoding/binary"
	"math/big"

	"github.com/crossswap/escrowcore/hashlock"
)

// OrderTerms is the set of order fields a maker may want bound into a
// derived order hash, so two orders with the same terms can't collide by
// coincidence of a caller picking the same opaque order_hash twice.
// create_wallet does not require callers to use this derivation — it
// accepts any caller-supplied 32 bytes — this is a convenience the core
// ships for callers who want one (SPEC_FULL.md §3.1).
type OrderTerms struct {
	Maker        Address
	MakerAsset   Asset
	TakerAsset   Asset
	MakingAmount uint64
	TakingAmount uint64
	Salt         *big.Int
	Hashlock     hashlock.Hash
}

// DeriveOrderHash hashes the serialized order terms with the same
// keccak256 primitive used for hashlocks and Merkle leaves, so a maker can
// produce a collision-resistant order_hash deterministically from the
// order's actual terms instead of picking an arbitrary 32 bytes.
func DeriveOrderHash(t OrderTerms) hashlock.Hash {
	buf := make([]byte, 0, 128)
	buf = append(buf, []byte(t.Maker)...)
	buf = append(buf, []byte(t.MakerAsset)...)
	buf = append(buf, []byte(t.TakerAsset)...)

	var amt [16]byte
	binary.BigEndian.PutUint64(amt[0:8], t.MakingAmount)
	binary.BigEndian.PutUint64(amt[8:16], t.TakingAmount)
	buf = append(buf, amt[:]...)

	if t.Salt != nil {
		buf = append(buf, t.Salt.Bytes()...)
	}
	buf = append(buf, t.Hashlock[:]...)

	return hashlock.Keccak256(buf)
}
