// Package vm defines the Engine and VM collaborator interfaces consumed by
// the executive (§6), an Engine implementation whose precompile catalog is
// backed by go-ethereum's builtin contracts, and the externalities handle
// the executive constructs for each frame.
package vm

import (
	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/state"
)

// VmResult is the outcome of running a frame to completion.
type VmResult struct {
	GasLeft core.Gas
	Output  []byte
	Err     *core.VMError // nil on success
}

// Ok reports whether the frame completed without a VM-level fault.
func (r VmResult) Ok() bool { return r.Err == nil }

// OutputPolicy tells a VM run where to write its top-level return data: a
// message call writes into a caller-provided buffer, a contract creation's
// output instead becomes the new account's code.
type OutputPolicy int

const (
	OutputReturn OutputPolicy = iota
	OutputInitContract
)

// Externalities is the capability surface the executive grants a VM run
// for a single frame: state access scoped to the frame's substate, the
// frame's parameters, the current depth, where to route the frame's
// output, and a callback through which the VM dispatches nested
// CALL/CREATE-style sub-calls back into the executive.
type Externalities struct {
	State    state.State
	Env      *core.EnvInfo
	Depth    int
	Params   core.ActionParams
	Substate *core.Substate
	Policy   OutputPolicy

	// Call recurses into a child frame via the executive that constructed
	// this Externalities. It is how a VM implements CALL/CREATE-family
	// opcodes; a VM that never issues sub-calls may leave it unused.
	Call func(kind core.CallKind, params core.ActionParams) (VmResult, error)
}

// VM executes a single frame of EVM-like byte-code. A full interpreter is
// an external collaborator (§1 out-of-scope); this interface is the seam
// the executive depends on.
type VM interface {
	Exec(params core.ActionParams, ext *Externalities) (VmResult, error)
}

// Factory produces VM instances, one per Engine, as a unit of
// configuration (e.g. selecting a revision/ruleset).
type Factory interface {
	NewVM() VM
}

// Engine is the protocol-engine collaborator (§6): it supplies the gas
// schedule and the builtin (precompile) catalog, and produces VM instances.
type Engine interface {
	Schedule(env *core.EnvInfo) core.Schedule
	IsBuiltin(addr core.Address) bool
	CostOfBuiltin(addr core.Address, data []byte) *uint256.Int
	ExecuteBuiltin(addr core.Address, data []byte, output *[]byte) error
	VMFactory() Factory
}
