package vm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
)

// PrecompileSet selects which go-ethereum precompile catalog a BuiltinEngine
// draws its builtins from, mirroring the revision switch in the teacher's
// own precompile dispatch.
type PrecompileSet int

const (
	PrecompilesIstanbul PrecompileSet = iota
	PrecompilesBerlin
	PrecompilesCancun
)

func catalog(set PrecompileSet) map[common.Address]geth.PrecompiledContract {
	switch set {
	case PrecompilesCancun:
		return geth.PrecompiledContractsCancun
	case PrecompilesBerlin:
		return geth.PrecompiledContractsBerlin
	default:
		return geth.PrecompiledContractsIstanbul
	}
}

// BuiltinEngine is an Engine whose precompile catalog is sourced directly
// from go-ethereum's core/vm package (the "builtin" collaborator of §6),
// and whose VM factory produces a caller-supplied VM implementation (a real
// bytecode interpreter is an external collaborator, out of scope per §1).
type BuiltinEngine struct {
	schedule    core.Schedule
	precompiles PrecompileSet
	factory     Factory
}

// NewBuiltinEngine builds an Engine using the given schedule, precompile
// catalog and VM factory.
func NewBuiltinEngine(schedule core.Schedule, precompiles PrecompileSet, factory Factory) *BuiltinEngine {
	return &BuiltinEngine{schedule: schedule, precompiles: precompiles, factory: factory}
}

func (e *BuiltinEngine) Schedule(_ *core.EnvInfo) core.Schedule {
	return e.schedule
}

func (e *BuiltinEngine) contract(addr core.Address) (geth.PrecompiledContract, bool) {
	c, ok := catalog(e.precompiles)[common.Address(addr)]
	return c, ok
}

func (e *BuiltinEngine) IsBuiltin(addr core.Address) bool {
	_, ok := e.contract(addr)
	return ok
}

func (e *BuiltinEngine) CostOfBuiltin(addr core.Address, data []byte) *uint256.Int {
	c, ok := e.contract(addr)
	if !ok {
		return new(uint256.Int)
	}
	return new(uint256.Int).SetUint64(c.RequiredGas(data))
}

func (e *BuiltinEngine) ExecuteBuiltin(addr core.Address, data []byte, output *[]byte) error {
	c, ok := e.contract(addr)
	if !ok {
		return fmt.Errorf("vm: %s is not a builtin", addr)
	}
	result, err := c.Run(data)
	if err != nil {
		return err
	}
	*output = append((*output)[:0], result...)
	return nil
}

func (e *BuiltinEngine) VMFactory() Factory {
	return e.factory
}
