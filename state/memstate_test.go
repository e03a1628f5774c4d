package state

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/sgkim126/txexec/core"
)

func TestMemState_RevertUndoesBalanceAndNonce(t *testing.T) {
	s := NewMemState()
	addr := core.Address{1}
	s.SeedAccount(addr, uint256.NewInt(100), 3)

	snap := s.Checkpoint()
	s.AddBalance(addr, uint256.NewInt(50))
	s.IncNonce(addr)

	if got := s.Balance(addr); got.Cmp(uint256.NewInt(150)) != 0 {
		t.Fatalf("balance after mutation = %s, want 150", got)
	}

	s.Revert(snap)

	if got := s.Balance(addr); got.Cmp(uint256.NewInt(100)) != 0 {
		t.Fatalf("balance after revert = %s, want 100", got)
	}
	if got := s.Nonce(addr); got != 3 {
		t.Fatalf("nonce after revert = %d, want 3", got)
	}
}

func TestMemState_NestedCheckpointsRevertInOrder(t *testing.T) {
	s := NewMemState()
	addr := core.Address{2}
	s.SeedAccount(addr, new(uint256.Int), 0)

	outer := s.Checkpoint()
	s.AddBalance(addr, uint256.NewInt(1))
	inner := s.Checkpoint()
	s.AddBalance(addr, uint256.NewInt(2))

	s.Revert(inner)
	if got := s.Balance(addr); got.Cmp(uint256.NewInt(1)) != 0 {
		t.Fatalf("balance after inner revert = %s, want 1", got)
	}

	s.Revert(outer)
	if got := s.Balance(addr); !got.IsZero() {
		t.Fatalf("balance after outer revert = %s, want 0", got)
	}
}

func TestMemState_TransferBalance_InsufficientFunds(t *testing.T) {
	s := NewMemState()
	from, to := core.Address{3}, core.Address{4}
	s.SeedAccount(from, uint256.NewInt(5), 0)

	if err := s.TransferBalance(from, to, uint256.NewInt(10)); err == nil {
		t.Fatalf("expected an error transferring more than the sender's balance")
	}
	if got := s.Balance(from); got.Cmp(uint256.NewInt(5)) != 0 {
		t.Fatalf("failed transfer mutated sender balance: %s", got)
	}
}

func TestMemState_NewContractThenRevertRestoresPriorAccount(t *testing.T) {
	s := NewMemState()
	addr := core.Address{5}
	s.SeedAccount(addr, uint256.NewInt(7), 2)
	s.SeedCode(addr, []byte{0x60, 0x00})

	snap := s.Checkpoint()
	s.NewContract(addr)

	if got := s.Nonce(addr); got != 0 {
		t.Fatalf("new contract should reset nonce, got %d", got)
	}
	if code := s.Code(addr); code != nil {
		t.Fatalf("new contract should have no code, got %x", code)
	}

	s.Revert(snap)

	if got := s.Nonce(addr); got != 2 {
		t.Fatalf("revert should restore prior nonce, got %d", got)
	}
	if code := s.Code(addr); len(code) != 2 {
		t.Fatalf("revert should restore prior code, got %x", code)
	}
}

func TestMemState_SetStorage_ClassifiesTransitions(t *testing.T) {
	s := NewMemState()
	addr := core.Address{6}
	key := core.Key{1}

	zero := core.Word{}
	one := core.Word{1}
	two := core.Word{2}

	if status := s.SetStorage(addr, key, one); status != core.StorageAdded {
		t.Fatalf("0 -> 1 classified as %s, want StorageAdded", status)
	}
	if status := s.SetStorage(addr, key, two); status != core.StorageModified {
		t.Fatalf("1 -> 2 classified as %s, want StorageModified", status)
	}
	if status := s.SetStorage(addr, key, two); status != core.StorageAssigned {
		t.Fatalf("2 -> 2 classified as %s, want StorageAssigned", status)
	}
	if status := s.SetStorage(addr, key, zero); status != core.StorageDeleted {
		t.Fatalf("2 -> 0 classified as %s, want StorageDeleted", status)
	}
}
