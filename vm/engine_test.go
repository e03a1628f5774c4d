package vm

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sgkim126/txexec/core"
)

// identityPrecompile is go-ethereum's address 0x04 (the "identity"/datacopy
// contract): it is present in every revision and simply echoes its input,
// which makes it a convenient, version-independent fixture for exercising
// BuiltinEngine's dispatch without pinning to any one precompile's exact
// historical gas cost.
var identityPrecompile = core.Address(common.HexToAddress("0x0000000000000000000000000000000000000004"))

func TestBuiltinEngine_IsBuiltin(t *testing.T) {
	e := NewBuiltinEngine(core.FrontierSchedule(), PrecompilesIstanbul, nil)

	if !e.IsBuiltin(identityPrecompile) {
		t.Fatalf("expected 0x04 to be recognized as a builtin")
	}
	if e.IsBuiltin(core.Address{0x42}) {
		t.Fatalf("did not expect an arbitrary address to be a builtin")
	}
}

func TestBuiltinEngine_CostAndExecute(t *testing.T) {
	e := NewBuiltinEngine(core.FrontierSchedule(), PrecompilesIstanbul, nil)
	input := []byte("hello world")

	cost := e.CostOfBuiltin(identityPrecompile, input)
	if cost.IsZero() {
		t.Fatalf("expected a non-zero cost for the identity precompile")
	}

	var output []byte
	if err := e.ExecuteBuiltin(identityPrecompile, input, &output); err != nil {
		t.Fatalf("ExecuteBuiltin returned an error: %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Fatalf("identity precompile returned %x, want %x", output, input)
	}
}

func TestBuiltinEngine_ExecuteNonBuiltin(t *testing.T) {
	e := NewBuiltinEngine(core.FrontierSchedule(), PrecompilesIstanbul, nil)
	var output []byte
	if err := e.ExecuteBuiltin(core.Address{0x99}, nil, &output); err == nil {
		t.Fatalf("expected an error executing a non-builtin address")
	}
}
