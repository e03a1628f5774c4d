package core

import (
	"fmt"
	"math/big"
)

// Error is the transaction-level error taxonomy returned by
// Executive.Transact. Every variant except Internal is raised before any
// state mutation has taken place.
type Error interface {
	error
	txError()
}

// InvalidSignatureError is returned when the transaction's signature does
// not recover to a valid sender address.
type InvalidSignatureError struct {
	Cause error
}

func (e *InvalidSignatureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid signature: %v", e.Cause)
	}
	return "invalid signature"
}
func (*InvalidSignatureError) txError() {}

// InvalidNonceError is returned when the transaction's nonce does not match
// the sender account's current nonce.
type InvalidNonceError struct {
	Expected uint64
	Got      uint64
}

func (e *InvalidNonceError) Error() string {
	return fmt.Sprintf("invalid nonce: expected %d, got %d", e.Expected, e.Got)
}
func (*InvalidNonceError) txError() {}

// NotEnoughBaseGasError is returned when the transaction's gas limit is
// below the intrinsic gas required for its data and action kind.
type NotEnoughBaseGasError struct {
	Required Gas
	Got      Gas
}

func (e *NotEnoughBaseGasError) Error() string {
	return fmt.Sprintf("not enough base gas: required %d, got %d", e.Required, e.Got)
}
func (*NotEnoughBaseGasError) txError() {}

// BlockGasLimitReachedError is returned when admitting the transaction would
// push the block's cumulative gas usage past its gas limit.
type BlockGasLimitReachedError struct {
	GasLimit Gas
	GasUsed  Gas
	Gas      Gas
}

func (e *BlockGasLimitReachedError) Error() string {
	return fmt.Sprintf("block gas limit reached: limit %d, used %d, tx gas %d", e.GasLimit, e.GasUsed, e.Gas)
}
func (*BlockGasLimitReachedError) txError() {}

// NotEnoughCashError is returned when the sender's balance cannot cover
// value + gas*gas_price. Both operands are carried widened (512-bit) per
// §3/§9 of the numeric-widening design note.
type NotEnoughCashError struct {
	Required *big.Int
	Got      *big.Int
}

func (e *NotEnoughCashError) Error() string {
	return fmt.Sprintf("not enough cash: required %s, got %s", e.Required, e.Got)
}
func (*NotEnoughCashError) txError() {}

// InternalError wraps a host-side VM infrastructure failure. Unlike every
// other transaction-level error it occurs *after* the up-front gas charge
// has already been committed, so the sender's nonce and balance reflect
// that charge even though no receipt is produced.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}
func (*InternalError) txError() {}

// VMErrorKind enumerates the VM-level fault classes propagated through
// call/create and consumed by the finalizer (§7).
type VMErrorKind int

const (
	// VMInternal signals a host-side VM bug, not a fault observable from the
	// executed bytecode; it does not trigger a state revert at the frame
	// level (see enact_result) but aborts finalization as InternalError.
	VMInternal VMErrorKind = iota
	VMOutOfGas
	VMBadJumpDestination
	VMBadInstruction
	VMStackUnderflow
	VMOutOfStack
)

func (k VMErrorKind) String() string {
	switch k {
	case VMInternal:
		return "Internal"
	case VMOutOfGas:
		return "OutOfGas"
	case VMBadJumpDestination:
		return "BadJumpDestination"
	case VMBadInstruction:
		return "BadInstruction"
	case VMStackUnderflow:
		return "StackUnderflow"
	case VMOutOfStack:
		return "OutOfStack"
	default:
		return fmt.Sprintf("VMErrorKind(%d)", int(k))
	}
}

// IsReverting reports whether this fault class triggers a state revert and
// full-gas consumption (every kind but VMInternal).
func (k VMErrorKind) IsReverting() bool {
	return k != VMInternal
}

// VMError is a VM-level fault returned alongside a VmResult.
type VMError struct {
	Kind  VMErrorKind
	Cause error
}

func (e *VMError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
	return e.Kind.String()
}
