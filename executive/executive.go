// Package executive implements the frame driver described in §4.3: the
// Executive owns a state handle, a block environment and an engine, and
// exposes Transact, Call and Create. It recurses into child frames by
// constructing a deeper-depth Executive, mirroring the recursive dispatch
// of the teacher's floria processor (processor.go/run_context.go) adapted
// to the Parity-style Executive/Substate/ActionParams vocabulary.
package executive

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/state"
	"github.com/sgkim126/txexec/vm"
)

// Executive drives a single call/create frame (or, at depth 0, an entire
// transaction) against a mutable state handle.
type Executive struct {
	state  state.State
	env    *core.EnvInfo
	engine vm.Engine
	depth  int
}

// New constructs the root (depth 0) executive for a transaction.
func New(st state.State, env *core.EnvInfo, engine vm.Engine) *Executive {
	return &Executive{state: st, env: env, engine: engine}
}

// child returns an executive for a nested frame, one depth deeper.
func (e *Executive) child() *Executive {
	return &Executive{state: e.state, env: e.env, engine: e.engine, depth: e.depth + 1}
}

// Transact validates tx, charges the up-front gas cost, dispatches to
// Create or Call, and finalizes the result into a receipt (§4.3).
func (e *Executive) Transact(tx *core.Transaction) (*core.Receipt, error) {
	schedule := e.engine.Schedule(e.env)

	// 1. Signature recovery.
	sender, errSig := tx.Sender()
	if errSig != nil {
		return nil, errSig
	}

	// 2. Nonce match.
	stateNonce := e.state.Nonce(sender)
	if tx.Nonce != stateNonce {
		return nil, &core.InvalidNonceError{Expected: stateNonce, Got: tx.Nonce}
	}

	// 3. Base-gas floor.
	base := tx.GasRequired(schedule)
	if tx.Gas < base {
		return nil, &core.NotEnoughBaseGasError{Required: base, Got: tx.Gas}
	}

	// 4. Block-gas fit.
	if e.env.GasUsed+tx.Gas > e.env.GasLimit {
		return nil, &core.BlockGasLimitReachedError{
			GasLimit: e.env.GasLimit,
			GasUsed:  e.env.GasUsed,
			Gas:      tx.Gas,
		}
	}

	// 5. Affordability, widened to 512 bits (§3, §9).
	cost512 := new(big.Int).Mul(bigFromGas(tx.Gas), bigFromUint256(tx.GasPrice))
	total512 := new(big.Int).Add(cost512, bigFromUint256(tx.Value))
	balance512 := bigFromUint256(e.state.Balance(sender))
	if balance512.Cmp(total512) < 0 {
		return nil, &core.NotEnoughCashError{Required: total512, Got: balance512}
	}

	// Commit the up-front charge unconditionally.
	e.state.IncNonce(sender)
	gasCost := new(uint256.Int).Mul(tx.Gas.ToUint256(), tx.GasPrice)
	e.state.SubBalance(sender, gasCost)

	remainingGas := tx.Gas - base
	substate := core.NewSubstate()

	var result vm.VmResult
	var vmErr error

	if tx.Action.IsCreate() {
		newAddress := core.Derive(sender, tx.Nonce)
		params := core.ActionParams{
			CodeAddress: newAddress,
			Address:     newAddress,
			Sender:      sender,
			Origin:      sender,
			Gas:         remainingGas,
			GasPrice:    tx.GasPrice,
			Value:       tx.Value,
			Code:        tx.Data,
		}
		result, vmErr = e.Create(params, substate)
	} else {
		to, _ := tx.Action.To()
		params := core.ActionParams{
			CodeAddress: to,
			Address:     to,
			Sender:      sender,
			Origin:      sender,
			Gas:         remainingGas,
			GasPrice:    tx.GasPrice,
			Value:       tx.Value,
			Code:        e.state.Code(to),
			Data:        tx.Data,
		}
		var output []byte
		result, vmErr = e.Call(params, substate, &output)
	}

	if vmErr != nil {
		return nil, &core.InternalError{Cause: vmErr}
	}

	return e.finalize(tx, schedule, sender, substate, result)
}

func bigFromGas(g core.Gas) *big.Int {
	return new(big.Int).SetUint64(uint64(g))
}

func bigFromUint256(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v.ToBig()
}
