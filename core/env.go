package core

import "github.com/holiman/uint256"

// EnvInfo is the block context a transaction executes within: the
// beneficiary of fees, the block's gas limit, the cumulative gas used by
// transactions already applied in this block, and the fields a VM may
// query (BLOCKHASH/NUMBER/TIMESTAMP/DIFFICULTY et al).
type EnvInfo struct {
	Author      Address
	GasLimit    Gas
	GasUsed     Gas
	BlockNumber uint64
	Timestamp   uint64
	Difficulty  *uint256.Int
}
