package executive

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
	"github.com/sgkim126/txexec/state"
	"github.com/sgkim126/txexec/vm"
)

func newEnv(gasLimit, gasUsed core.Gas) *core.EnvInfo {
	return &core.EnvInfo{Author: core.Address{0xaa}, GasLimit: gasLimit, GasUsed: gasUsed}
}

// TestTransact_SimpleCreate reproduces the worked example of a contract
// creation: sender balance 18, value 17, gas 100000, gas_price 0,
// max_depth 0. The constructor is stood in by a script (a real bytecode
// interpreter is an external collaborator, §1) that performs the documented
// storage write and reports the documented gas_left, letting the test
// verify the finalizer's arithmetic end to end.
func TestTransact_SimpleCreate(t *testing.T) {
	hash := core.Hash{0x01}
	sender, signature := sign(hash)

	st := state.NewMemState()
	st.SeedAccount(sender, uint256.NewInt(18), 0)

	newAddress := core.Derive(sender, 0)

	scripted := vm.NewScriptedVM()
	scripted.Register(newAddress, func(ext *vm.Externalities) (vm.VmResult, error) {
		ext.State.SetStorage(ext.Params.Address, core.Key{}, core.Word{1})
		return vm.VmResult{GasLeft: 58699}, nil
	})

	schedule := core.FrontierSchedule()
	schedule.MaxDepth = 0
	engine := vm.NewBuiltinEngine(schedule, vm.PrecompilesIstanbul, &vm.ScriptedFactory{VM: scripted})

	env := newEnv(100000, 0)
	exec := New(st, env, engine)

	tx := &core.Transaction{
		Nonce:       0,
		GasPrice:    uint256.NewInt(0),
		Gas:         100000,
		Action:      core.CreateAction(),
		Value:       uint256.NewInt(17),
		Data:        []byte{0x33, 0x31, 0x60, 0x00, 0x55},
		SigningHash: hash,
		Signature:   signature,
		Signed:      true,
	}

	receipt, err := exec.Transact(tx)
	if err != nil {
		t.Fatalf("Transact returned an error: %v", err)
	}

	if receipt.Gas != 100000 {
		t.Errorf("Gas = %d, want 100000", receipt.Gas)
	}
	if receipt.GasUsed != 41301 {
		t.Errorf("GasUsed = %d, want 41301", receipt.GasUsed)
	}
	if receipt.Refunded != 58699 {
		t.Errorf("Refunded = %d, want 58699", receipt.Refunded)
	}
	if receipt.CumulativeGasUsed != 41301 {
		t.Errorf("CumulativeGasUsed = %d, want 41301", receipt.CumulativeGasUsed)
	}
	if len(receipt.Logs) != 0 {
		t.Errorf("Logs = %v, want empty", receipt.Logs)
	}
	if len(receipt.ContractsCreated) != 0 {
		t.Errorf("ContractsCreated = %v, want empty (constructor did not itself CREATE)", receipt.ContractsCreated)
	}

	if got := st.Balance(sender); got.Cmp(uint256.NewInt(1)) != 0 {
		t.Errorf("sender balance = %s, want 1", got)
	}
	if got := st.Balance(newAddress); got.Cmp(uint256.NewInt(17)) != 0 {
		t.Errorf("contract balance = %s, want 17", got)
	}
	if got := st.Nonce(sender); got != 1 {
		t.Errorf("sender nonce = %d, want 1", got)
	}
	if got := st.StorageAt(newAddress, core.Key{}); got != (core.Word{1}) {
		t.Errorf("storage slot 0 = %x, want 1", got)
	}
}

func TestTransact_InvalidSignature(t *testing.T) {
	st := state.NewMemState()
	engine := vm.NewBuiltinEngine(core.FrontierSchedule(), vm.PrecompilesIstanbul, nil)
	exec := New(st, newEnv(100000, 0), engine)

	tx := &core.Transaction{
		Nonce:  0,
		Gas:    100000,
		Action: core.CallAction(core.Address{0x55}),
		Value:  new(uint256.Int),
		Signed: false, // deliberately unsigned
	}

	_, err := exec.Transact(tx)
	if _, ok := err.(*core.InvalidSignatureError); !ok {
		t.Fatalf("err = %v (%T), want *core.InvalidSignatureError", err, err)
	}
}

func TestTransact_InvalidNonce(t *testing.T) {
	hash := core.Hash{0x02}
	sender, signature := sign(hash)

	st := state.NewMemState()
	st.SeedAccount(sender, uint256.NewInt(1_000_000), 0)
	engine := vm.NewBuiltinEngine(core.FrontierSchedule(), vm.PrecompilesIstanbul, nil)
	exec := New(st, newEnv(1_000_000, 0), engine)

	tx := &core.Transaction{
		Nonce:       1,
		GasPrice:    new(uint256.Int),
		Gas:         100000,
		Action:      core.CallAction(core.Address{0x55}),
		Value:       new(uint256.Int),
		SigningHash: hash,
		Signature:   signature,
		Signed:      true,
	}

	_, err := exec.Transact(tx)
	nonceErr, ok := err.(*core.InvalidNonceError)
	if !ok {
		t.Fatalf("err = %v (%T), want *core.InvalidNonceError", err, err)
	}
	if nonceErr.Expected != 0 || nonceErr.Got != 1 {
		t.Fatalf("got InvalidNonceError{%d, %d}, want {0, 1}", nonceErr.Expected, nonceErr.Got)
	}
}

func TestTransact_BlockGasLimitReached(t *testing.T) {
	hash := core.Hash{0x03}
	sender, signature := sign(hash)

	st := state.NewMemState()
	st.SeedAccount(sender, uint256.NewInt(1_000_000_000), 0)
	engine := vm.NewBuiltinEngine(core.FrontierSchedule(), vm.PrecompilesIstanbul, nil)
	exec := New(st, newEnv(100000, 20000), engine)

	tx := &core.Transaction{
		Nonce:       0,
		GasPrice:    new(uint256.Int),
		Gas:         80001,
		Action:      core.CallAction(core.Address{0x55}),
		Value:       new(uint256.Int),
		SigningHash: hash,
		Signature:   signature,
		Signed:      true,
	}

	_, err := exec.Transact(tx)
	gasErr, ok := err.(*core.BlockGasLimitReachedError)
	if !ok {
		t.Fatalf("err = %v (%T), want *core.BlockGasLimitReachedError", err, err)
	}
	if gasErr.GasLimit != 100000 || gasErr.GasUsed != 20000 || gasErr.Gas != 80001 {
		t.Fatalf("got %+v, want {100000, 20000, 80001}", gasErr)
	}
}

func TestTransact_NotEnoughCash(t *testing.T) {
	hash := core.Hash{0x04}
	sender, signature := sign(hash)

	st := state.NewMemState()
	st.SeedAccount(sender, uint256.NewInt(100017), 0)
	engine := vm.NewBuiltinEngine(core.FrontierSchedule(), vm.PrecompilesIstanbul, nil)
	exec := New(st, newEnv(1_000_000, 0), engine)

	tx := &core.Transaction{
		Nonce:       0,
		GasPrice:    uint256.NewInt(1),
		Gas:         100000,
		Action:      core.CallAction(core.Address{0x55}),
		Value:       uint256.NewInt(18),
		SigningHash: hash,
		Signature:   signature,
		Signed:      true,
	}

	_, err := exec.Transact(tx)
	cashErr, ok := err.(*core.NotEnoughCashError)
	if !ok {
		t.Fatalf("err = %v (%T), want *core.NotEnoughCashError", err, err)
	}
	if cashErr.Required.Uint64() != 100018 || cashErr.Got.Uint64() != 100017 {
		t.Fatalf("got NotEnoughCashError{%s, %s}, want {100018, 100017}", cashErr.Required, cashErr.Got)
	}
}

// TestTransact_PreflightErrorLeavesStateUntouched checks the §8 pre-flight
// invariant for one case, a nonce mismatch: the sender's nonce and balance
// are unchanged after the error.
func TestTransact_PreflightErrorLeavesStateUntouched(t *testing.T) {
	hash := core.Hash{0x05}
	sender, signature := sign(hash)

	st := state.NewMemState()
	st.SeedAccount(sender, uint256.NewInt(1_000_000), 0)
	engine := vm.NewBuiltinEngine(core.FrontierSchedule(), vm.PrecompilesIstanbul, nil)
	exec := New(st, newEnv(1_000_000, 0), engine)

	tx := &core.Transaction{
		Nonce:       5, // mismatched on purpose
		GasPrice:    new(uint256.Int),
		Gas:         100000,
		Action:      core.CallAction(core.Address{0x55}),
		Value:       new(uint256.Int),
		SigningHash: hash,
		Signature:   signature,
		Signed:      true,
	}

	_, err := exec.Transact(tx)
	if err == nil {
		t.Fatalf("expected a pre-flight error")
	}
	if got := st.Nonce(sender); got != 0 {
		t.Fatalf("pre-flight error mutated sender nonce to %d", got)
	}
	if got := st.Balance(sender); got.Cmp(uint256.NewInt(1_000_000)) != 0 {
		t.Fatalf("pre-flight error mutated sender balance to %s", got)
	}
}
