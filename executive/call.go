package executive

import (
	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/vm"
)

// Call dispatches a single message-call frame (§4.3 "call"): it snapshots
// state, transfers value unconditionally, then dispatches on the code at
// params.CodeAddress between a builtin precompile, a contract with code,
// and an empty recipient.
func (e *Executive) Call(params core.ActionParams, substate *core.Substate, output *[]byte) (vm.VmResult, error) {
	schedule := e.engine.Schedule(e.env)
	if e.depth > schedule.MaxDepth {
		return vm.VmResult{}, nil
	}

	backup := e.state.Checkpoint()
	if err := e.state.TransferBalance(params.Sender, params.Address, params.Value); err != nil {
		e.state.Revert(backup)
		return vm.VmResult{Err: &core.VMError{Kind: core.VMOutOfGas, Cause: err}}, nil
	}

	if e.engine.IsBuiltin(params.CodeAddress) {
		cost := e.engine.CostOfBuiltin(params.CodeAddress, params.Data)
		if cost.Cmp(params.Gas.ToUint256()) > 0 {
			e.state.Revert(backup)
			return vm.VmResult{Err: &core.VMError{Kind: core.VMOutOfGas}}, nil
		}
		if err := e.engine.ExecuteBuiltin(params.CodeAddress, params.Data, output); err != nil {
			e.state.Revert(backup)
			return vm.VmResult{Err: &core.VMError{Kind: core.VMOutOfGas, Cause: err}}, nil
		}
		return vm.VmResult{GasLeft: params.Gas - core.Gas(cost.Uint64()), Output: *output}, nil
	}

	if params.Code != nil {
		child := core.NewSubstate()
		ext := e.newExternalities(params, child, vm.OutputReturn)
		result, err := e.runVM(params, ext)
		e.enactResult(result, err, substate, child, backup)
		return result, err
	}

	// Empty recipient: value transfer has already occurred, no VM invoked.
	return vm.VmResult{GasLeft: params.Gas}, nil
}

// Create dispatches a single contract-creation frame (§4.3 "create"). The
// order new_contract -> transfer -> execute is deliberate: the constructor
// observes the value on its own balance, and the snapshot predates the new
// account marker so a reverting constructor leaves no residue.
func (e *Executive) Create(params core.ActionParams, substate *core.Substate) (vm.VmResult, error) {
	schedule := e.engine.Schedule(e.env)
	if e.depth > schedule.MaxDepth {
		return vm.VmResult{}, nil
	}

	backup := e.state.Checkpoint()
	e.state.NewContract(params.Address)
	if err := e.state.TransferBalance(params.Sender, params.Address, params.Value); err != nil {
		e.state.Revert(backup)
		return vm.VmResult{Err: &core.VMError{Kind: core.VMOutOfGas, Cause: err}}, nil
	}

	child := core.NewSubstate()
	ext := e.newExternalities(params, child, vm.OutputInitContract)
	result, err := e.runVM(params, ext)

	if err == nil && result.Ok() {
		e.state.InitCode(params.Address, result.Output)
	}

	e.enactResult(result, err, substate, child, backup)
	return result, err
}

func (e *Executive) newExternalities(params core.ActionParams, child *core.Substate, policy vm.OutputPolicy) *vm.Externalities {
	ext := &vm.Externalities{
		State:    e.state,
		Env:      e.env,
		Depth:    e.depth,
		Params:   params,
		Substate: child,
		Policy:   policy,
	}
	childExecutive := e.child()
	ext.Call = func(kind core.CallKind, callParams core.ActionParams) (vm.VmResult, error) {
		if kind.IsCreate() {
			// contracts_created records nested creates only (§3): the address
			// is attributed to the substate of the frame whose code issued
			// the create, never self-appended by Create itself.
			result, err := childExecutive.Create(callParams, child)
			if err == nil && result.Ok() {
				child.ContractsCreated = append(child.ContractsCreated, callParams.Address)
			}
			return result, err
		}
		var out []byte
		return childExecutive.Call(callParams, child, &out)
	}
	return ext
}

func (e *Executive) runVM(params core.ActionParams, ext *vm.Externalities) (vm.VmResult, error) {
	return e.engine.VMFactory().NewVM().Exec(params, ext)
}

// enactResult implements §4.3's enact_result table: an Ok or Internal VM
// outcome keeps the state mutations made during the frame and merges the
// child substate into the parent; any other VM-level fault restores the
// pre-frame snapshot and discards the child substate entirely.
func (e *Executive) enactResult(result vm.VmResult, err error, parent, child *core.Substate, backup core.Snapshot) {
	if err != nil {
		// Host-side infrastructure failure: propagated as InternalError by
		// the caller, without touching state beyond what was already
		// committed (§9 "Internal vs. VM errors").
		return
	}
	if result.Ok() || result.Err.Kind == core.VMInternal {
		parent.Accrue(child)
		return
	}
	e.state.Revert(backup)
}
