package core

// Schedule collects the gas constants and recursion limit a transaction is
// executed under. It is the configuration surface of the executive: callers
// pick a Schedule the way the original engine picked a hard-fork ruleset.
type Schedule struct {
	// Intrinsic / base gas.
	TxGas                 Gas
	TxGasContractCreation  Gas
	TxDataZeroGas          Gas
	TxDataNonZeroGas       Gas

	// Refund accounting, EIP-2200/Frontier style: a portion of the gas spent
	// clearing storage slots or self-destructing accounts is returned to the
	// caller, capped at a fraction of the gas actually consumed.
	SstoreRefundGas       Gas
	SelfdestructRefundGas Gas
	RefundQuotient        Gas // gas_used is divided by this to obtain the refund cap

	// MaxDepth bounds the recursion depth of nested calls/creates (§5).
	MaxDepth int
}

// FrontierSchedule returns the constants exercised by the worked examples in
// this repository's test suite and by the original Parity engine's own
// "frontier" test schedule.
func FrontierSchedule() Schedule {
	return Schedule{
		TxGas:                 21_000,
		TxGasContractCreation: 21_000,
		TxDataZeroGas:         4,
		TxDataNonZeroGas:      68,

		SstoreRefundGas:       15_000,
		SelfdestructRefundGas: 24_000,
		RefundQuotient:        2,

		MaxDepth: 1024,
	}
}
