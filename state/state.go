// Package state provides the world-state collaborator the executive package
// operates against: account balances, nonces, code and storage, plus a
// checkpoint/rollback primitive strong enough to back the snapshot-based
// revert semantics of §4.3/§5.
package state

import (
	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
)

//go:generate mockgen -source state.go -destination state_mock.go -package state

// State is the external interface consumed by the executive (§6). It is
// intentionally narrow: everything the executive needs to read or mutate a
// single account, plus a total checkpoint/rollback primitive.
type State interface {
	AccountExists(addr core.Address) bool

	Nonce(addr core.Address) uint64
	IncNonce(addr core.Address)

	Balance(addr core.Address) *uint256.Int
	AddBalance(addr core.Address, v *uint256.Int)
	SubBalance(addr core.Address, v *uint256.Int)
	TransferBalance(from, to core.Address, v *uint256.Int) error

	Code(addr core.Address) []byte
	CodeHash(addr core.Address) core.Hash
	InitCode(addr core.Address, code []byte)

	// NewContract marks addr as a freshly created contract account: zero
	// nonce, empty code, empty storage. It must be called before the
	// constructor's value transfer (§4.3 create, step 3 before step 4).
	NewContract(addr core.Address)

	KillAccount(addr core.Address)

	StorageAt(addr core.Address, key core.Key) core.Word
	SetStorage(addr core.Address, key core.Key, value core.Word) core.StorageStatus

	// Checkpoint takes a snapshot of the entire state that Revert can later
	// restore wholesale. Checkpoints nest: Revert(s) undoes every mutation
	// performed since s was taken, regardless of how many further
	// checkpoints were taken and discarded in between.
	Checkpoint() core.Snapshot
	Revert(core.Snapshot)
}
