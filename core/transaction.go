package core

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Action is the transaction's dispatch target: contract creation, or a
// message call to an existing address.
type Action struct {
	to *Address // nil means Create
}

// CreateAction builds the Action for a contract-creation transaction.
func CreateAction() Action { return Action{} }

// CallAction builds the Action for a message call to the given address.
func CallAction(to Address) Action { return Action{to: &to} }

// IsCreate reports whether this action creates a new contract.
func (a Action) IsCreate() bool { return a.to == nil }

// To returns the call recipient and true, or the zero address and false for
// a Create action.
func (a Action) To() (Address, bool) {
	if a.to == nil {
		return Address{}, false
	}
	return *a.to, true
}

// Signature is a recoverable ECDSA signature over the transaction's signing
// hash, in the (R, S, V) form go-ethereum's secp256k1 recovery expects.
type Signature struct {
	R, S [32]byte
	V    byte
}

// Transaction is the signed, immutable transaction record consumed by
// Executive.Transact. Signature recovery and RLP decoding of the wire
// format are collaborators' concerns (§6); this type only needs to expose
// Sender and GasRequired.
type Transaction struct {
	Nonce    uint64
	GasPrice *uint256.Int
	Gas      Gas
	Action   Action
	Value    *uint256.Int
	Data     []byte

	// SigningHash is the hash that Signature was produced over. Signed is
	// false for deliberately unsigned transactions (used to exercise the
	// InvalidSignature path, §8 scenario 3).
	SigningHash Hash
	Signature   Signature
	Signed      bool
}

// Sender recovers the transaction's sender address from its signature.
// It fails with *InvalidSignatureError when the transaction is unsigned or
// the signature does not recover to a valid public key.
func (t *Transaction) Sender() (Address, *InvalidSignatureError) {
	if !t.Signed {
		return Address{}, &InvalidSignatureError{}
	}

	sig := make([]byte, 65)
	copy(sig[0:32], t.Signature.R[:])
	copy(sig[32:64], t.Signature.S[:])
	sig[64] = t.Signature.V

	pub, err := crypto.SigToPub(t.SigningHash[:], sig)
	if err != nil {
		return Address{}, &InvalidSignatureError{Cause: err}
	}

	return Address(crypto.PubkeyToAddress(*pub)), nil
}

// GasRequired computes the transaction's intrinsic (base) gas cost: a fixed
// per-action constant plus a per-byte charge over Data, per schedule.
func (t *Transaction) GasRequired(schedule Schedule) Gas {
	var gas Gas
	if t.Action.IsCreate() {
		gas = schedule.TxGasContractCreation
	} else {
		gas = schedule.TxGas
	}

	for _, b := range t.Data {
		if b == 0 {
			gas += schedule.TxDataZeroGas
		} else {
			gas += schedule.TxDataNonZeroGas
		}
	}
	return gas
}
