package executive

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sgkim126/txexec/core"
)

// testSigningKey is a fixed, well-known test private key (Hardhat/Anvil's
// first default account), used so tests can produce a real, recoverable
// ECDSA signature deterministically.
const testSigningKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// sign builds a Signature over hash using testSigningKey and returns it
// alongside the address it recovers to.
func sign(hash core.Hash) (core.Address, core.Signature) {
	priv, err := crypto.HexToECDSA(testSigningKey)
	if err != nil {
		panic(err)
	}
	sig, err := crypto.Sign(hash[:], priv)
	if err != nil {
		panic(err)
	}

	var s core.Signature
	copy(s.R[:], sig[0:32])
	copy(s.S[:], sig[32:64])
	s.V = sig[64]

	return core.Address(crypto.PubkeyToAddress(priv.PublicKey)), s
}
