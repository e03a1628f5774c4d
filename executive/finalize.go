package executive

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/vm"
)

// finalize converts the top-level VM outcome plus the accumulated substate
// into a receipt, applying the refund cap, paying the sender and the block
// author, and executing scheduled self-destructions (§4.4).
func (e *Executive) finalize(
	tx *core.Transaction,
	schedule core.Schedule,
	sender core.Address,
	s *core.Substate,
	result vm.VmResult,
) (*core.Receipt, error) {
	// 1. Extract gas_left: zero on any VM error, including Internal -- the
	// sender/author payments below run unconditionally regardless of the
	// VM outcome (original_source's finalize() computes and pays refunds
	// before ever matching on result).
	gasLeft := result.GasLeft
	if result.Err != nil {
		gasLeft = 0
	}

	// 2. Refund computation.
	sstoreRefunds := schedule.SstoreRefundGas * core.Gas(s.RefundsCount)
	suicideRefunds := schedule.SelfdestructRefundGas * core.Gas(len(s.Suicides))
	gasConsumed := tx.Gas - gasLeft
	cap := gasConsumed / schedule.RefundQuotient
	earned := sstoreRefunds + suicideRefunds
	if earned > cap {
		earned = cap
	}
	refund := earned + gasLeft

	log.Debug("finalizing transaction", "gasConsumed", gasConsumed, "earnedRefund", earned, "refund", refund)

	// 3. Pay sender.
	refundValue := new(uint256.Int).Mul(refund.ToUint256(), tx.GasPrice)
	e.state.AddBalance(sender, refundValue)

	// 4. Pay author.
	fees := tx.Gas - refund
	feeValue := new(uint256.Int).Mul(fees.ToUint256(), tx.GasPrice)
	e.state.AddBalance(e.env.Author, feeValue)

	// 5. Execute self-destructions; balances were already redirected by the
	// VM before scheduling the suicide.
	for addr := range s.Suicides {
		e.state.KillAccount(addr)
	}

	// 6. Assemble receipt by VM outcome. Internal is reported as a host-level
	// error rather than a receipt, but only here, after the payments and
	// self-destructions above have already run unconditionally.
	if result.Err != nil && result.Err.Kind == core.VMInternal {
		return nil, &core.InternalError{Cause: result.Err}
	}
	if result.Err != nil {
		return &core.Receipt{
			Gas:               tx.Gas,
			GasUsed:           tx.Gas,
			Refunded:          0,
			CumulativeGasUsed: e.env.GasUsed + tx.Gas,
			Logs:              nil,
			ContractsCreated:  nil,
		}, nil
	}

	gasUsed := tx.Gas - gasLeft
	return &core.Receipt{
		Gas:               tx.Gas,
		GasUsed:           gasUsed,
		Refunded:          refund,
		CumulativeGasUsed: e.env.GasUsed + gasUsed,
		Logs:              s.Logs,
		ContractsCreated:  s.ContractsCreated,
	}, nil
}
