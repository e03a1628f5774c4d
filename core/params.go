package core

import "github.com/holiman/uint256"

// ActionParams is the per-frame call descriptor Executive.Call/Create build
// and hand to the VM. CodeAddress is where code is fetched from, Address is
// the frame's "this" — they differ only for DELEGATECALL/CALLCODE-style
// dispatch, which this core does not itself distinguish beyond exposing the
// fields for an Engine/VM to interpret.
type ActionParams struct {
	CodeAddress Address
	Address     Address
	Sender      Address
	Origin      Address
	Gas         Gas
	GasPrice    *uint256.Int
	Value       *uint256.Int
	Code        []byte // nil means "no code at this address"
	Data        []byte // nil for contract-creation frames
}

// Receipt is the Executed record produced by a successful (or
// gas-exhausted) transact call.
type Receipt struct {
	Gas               Gas
	GasUsed           Gas
	Refunded          Gas
	CumulativeGasUsed Gas
	Logs              []Log
	ContractsCreated  []Address
}
