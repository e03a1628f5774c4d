// Package core defines the data types shared by the state, vm and executive
// packages: addresses, transactions, the substate accumulator and the
// transaction receipt.
package core

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Hash represents a 256-bit (32 bytes) hash, code hash or log topic.
type Hash [32]byte

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Key represents the 256-bit key of a storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit value stored in a storage slot.
type Word [32]byte

// Code is the byte-code of an account.
type Code []byte

// Gas is the unit transactions and VM executions are metered in.
type Gas uint64

// Data is the input or output of a contract invocation.
type Data []byte

// U256 constructs a *uint256.Int from a uint64, the common shorthand used
// throughout the worked examples.
func U256(v uint64) *uint256.Int {
	return new(uint256.Int).SetUint64(v)
}

// ToUint256 widens g to a 256-bit unsigned integer for arithmetic against
// balances and prices.
func (g Gas) ToUint256() *uint256.Int {
	return new(uint256.Int).SetUint64(uint64(g))
}

// CallKind enumerates the ways in which a message call or contract creation
// can be dispatched.
type CallKind int

const (
	Call CallKind = iota
	CallCode
	DelegateCall
	StaticCall
	Create
	Create2
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case CallCode:
		return "call_code"
	case DelegateCall:
		return "delegate_call"
	case StaticCall:
		return "static_call"
	case Create:
		return "create"
	case Create2:
		return "create2"
	default:
		return "unknown"
	}
}

// IsCreate reports whether the call kind creates a new contract.
func (k CallKind) IsCreate() bool {
	return k == Create || k == Create2
}

// StorageStatus classifies the effect a SetStorage call had on a slot.
// MemState classifies each write against the slot's value immediately
// before that write and only ever reports StorageAssigned, StorageAdded,
// StorageDeleted or StorageModified. The finalizer's refund is driven by
// Substate.RefundsCount, not by this status.
type StorageStatus int

const (
	StorageAssigned StorageStatus = iota
	StorageAdded
	StorageDeleted
	StorageModified
	StorageDeletedAdded
	StorageModifiedDeleted
	StorageDeletedRestored
	StorageAddedDeleted
	StorageModifiedRestored
)

func (s StorageStatus) String() string {
	switch s {
	case StorageAssigned:
		return "StorageAssigned"
	case StorageAdded:
		return "StorageAdded"
	case StorageDeleted:
		return "StorageDeleted"
	case StorageModified:
		return "StorageModified"
	case StorageDeletedAdded:
		return "StorageDeletedAdded"
	case StorageModifiedDeleted:
		return "StorageModifiedDeleted"
	case StorageDeletedRestored:
		return "StorageDeletedRestored"
	case StorageAddedDeleted:
		return "StorageAddedDeleted"
	case StorageModifiedRestored:
		return "StorageModifiedRestored"
	default:
		return fmt.Sprintf("StorageStatus(%d)", int(s))
	}
}

// Log is a log entry emitted as a side effect of a contract execution.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// Snapshot identifies a checkpoint of the world state that a transaction or
// a recursive call can be reverted to.
type Snapshot int
