package core

import (
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/sha3"
)

// Derive computes the address of a contract created by creator at the given
// nonce: the 160 low-order bits of Keccak256(RLP([creator, nonce])). It is
// pure, total and deterministic (§4.1, §8 "Address determinism").
func Derive(creator Address, nonce uint64) Address {
	encoded, err := rlp.EncodeToBytes([]interface{}{creator, nonce})
	if err != nil {
		// rlp.EncodeToBytes only fails on unsupported types; Address and
		// uint64 are both directly supported, so this cannot happen.
		panic(err)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(encoded)
	digest := h.Sum(nil)

	var addr Address
	copy(addr[:], digest[12:])
	return addr
}
