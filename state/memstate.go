package state

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/sgkim126/txexec/core"
)

// codeCacheSize bounds the shared code-by-hash cache. Sized generously
// relative to the handful of distinct contracts a single block realistically
// deploys; eviction only trades memory for a cache miss, never correctness,
// because every account additionally root-holds its own code hash.
const codeCacheSize = 4096

type account struct {
	nonce    uint64
	balance  *uint256.Int
	codeHash core.Hash
	storage  map[core.Key]core.Word
}

func newAccount() *account {
	return &account{balance: new(uint256.Int), storage: make(map[core.Key]core.Word)}
}

func (a *account) clone() *account {
	cp := &account{
		nonce:    a.nonce,
		balance:  new(uint256.Int).Set(a.balance),
		codeHash: a.codeHash,
		storage:  make(map[core.Key]core.Word, len(a.storage)),
	}
	for k, v := range a.storage {
		cp.storage[k] = v
	}
	return cp
}

// undo is a journal entry: applying it restores the state to what it was
// immediately before the mutation it accompanies.
type undo func(*MemState)

// MemState is an in-memory, journaled implementation of State. Every
// mutating method pushes an undo closure onto the journal; Checkpoint
// records the journal's length and Revert replays undo entries back down to
// that length, giving O(1) checkpoints and O(mutations-since-checkpoint)
// rollback without a deep copy of the account set (§5 "Memory").
type MemState struct {
	accounts map[core.Address]*account
	journal  []undo
	codes    *lru.Cache[core.Hash, []byte]
}

// NewMemState returns an empty world state with no accounts.
func NewMemState() *MemState {
	codes, err := lru.New[core.Hash, []byte](codeCacheSize)
	if err != nil {
		panic(fmt.Sprintf("state: failed to build code cache: %v", err))
	}
	return &MemState{
		accounts: make(map[core.Address]*account),
		codes:    codes,
	}
}

// SeedAccount installs an account with the given balance and nonce,
// bypassing the journal. Used by tests to construct the pre-state of a
// scenario; must not be called once a transaction is in flight.
func (s *MemState) SeedAccount(addr core.Address, balance *uint256.Int, nonce uint64) {
	a := newAccount()
	a.balance = balance
	a.nonce = nonce
	s.accounts[addr] = a
}

// SeedCode installs code for addr, bypassing the journal.
func (s *MemState) SeedCode(addr core.Address, code []byte) {
	a, ok := s.accounts[addr]
	if !ok {
		a = newAccount()
		s.accounts[addr] = a
	}
	hash := hashCode(code)
	a.codeHash = hash
	s.codes.Add(hash, code)
}

func hashCode(code []byte) core.Hash {
	if len(code) == 0 {
		return core.Hash{}
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(code)
	var out core.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// getOrCreate returns addr's account, materializing an empty one on first
// touch. The materialization itself is journaled: an absent account that
// only came into existence to serve this mutation must vanish again on
// revert, the same way NewContract/KillAccount journal existence, or
// AccountExists would flip false->true across a reverted frame.
func (s *MemState) getOrCreate(addr core.Address) *account {
	a, ok := s.accounts[addr]
	if !ok {
		a = newAccount()
		s.accounts[addr] = a
		s.push(func(s *MemState) { delete(s.accounts, addr) })
	}
	return a
}

func (s *MemState) push(u undo) {
	s.journal = append(s.journal, u)
}

func (s *MemState) AccountExists(addr core.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

func (s *MemState) Nonce(addr core.Address) uint64 {
	if a, ok := s.accounts[addr]; ok {
		return a.nonce
	}
	return 0
}

func (s *MemState) IncNonce(addr core.Address) {
	a := s.getOrCreate(addr)
	prev := a.nonce
	a.nonce++
	s.push(func(s *MemState) { s.accounts[addr].nonce = prev })
}

func (s *MemState) Balance(addr core.Address) *uint256.Int {
	if a, ok := s.accounts[addr]; ok {
		return new(uint256.Int).Set(a.balance)
	}
	return new(uint256.Int)
}

func (s *MemState) AddBalance(addr core.Address, v *uint256.Int) {
	a := s.getOrCreate(addr)
	prev := new(uint256.Int).Set(a.balance)
	a.balance.Add(a.balance, v)
	s.push(func(s *MemState) { s.accounts[addr].balance = prev })
}

func (s *MemState) SubBalance(addr core.Address, v *uint256.Int) {
	a := s.getOrCreate(addr)
	prev := new(uint256.Int).Set(a.balance)
	a.balance.Sub(a.balance, v)
	s.push(func(s *MemState) { s.accounts[addr].balance = prev })
}

func (s *MemState) TransferBalance(from, to core.Address, v *uint256.Int) error {
	if v.IsZero() {
		return nil
	}
	if s.Balance(from).Cmp(v) < 0 {
		return fmt.Errorf("state: insufficient balance: %s < %s", s.Balance(from), v)
	}
	s.SubBalance(from, v)
	s.AddBalance(to, v)
	return nil
}

func (s *MemState) Code(addr core.Address) []byte {
	a, ok := s.accounts[addr]
	if !ok || a.codeHash == (core.Hash{}) {
		return nil
	}
	code, _ := s.codes.Get(a.codeHash)
	return code
}

func (s *MemState) CodeHash(addr core.Address) core.Hash {
	if a, ok := s.accounts[addr]; ok {
		return a.codeHash
	}
	return core.Hash{}
}

func (s *MemState) InitCode(addr core.Address, code []byte) {
	a := s.getOrCreate(addr)
	prev := a.codeHash
	hash := hashCode(code)
	a.codeHash = hash
	s.codes.Add(hash, code)
	s.push(func(s *MemState) { s.accounts[addr].codeHash = prev })
}

func (s *MemState) NewContract(addr core.Address) {
	_, existed := s.accounts[addr]
	var prev *account
	if existed {
		prev = s.accounts[addr].clone()
	}
	s.accounts[addr] = newAccount()
	s.push(func(s *MemState) {
		if existed {
			s.accounts[addr] = prev
		} else {
			delete(s.accounts, addr)
		}
	})
}

func (s *MemState) KillAccount(addr core.Address) {
	prev, existed := s.accounts[addr]
	var prevCopy *account
	if existed {
		prevCopy = prev.clone()
	}
	delete(s.accounts, addr)
	s.push(func(s *MemState) {
		if existed {
			s.accounts[addr] = prevCopy
		}
	})
}

func (s *MemState) StorageAt(addr core.Address, key core.Key) core.Word {
	if a, ok := s.accounts[addr]; ok {
		return a.storage[key]
	}
	return core.Word{}
}

func (s *MemState) SetStorage(addr core.Address, key core.Key, value core.Word) core.StorageStatus {
	a := s.getOrCreate(addr)
	original := a.storage[key]
	status := classifyStorageTransition(original, value)

	prev := original
	a.storage[key] = value
	s.push(func(s *MemState) {
		if prev == (core.Word{}) {
			delete(s.accounts[addr].storage, key)
		} else {
			s.accounts[addr].storage[key] = prev
		}
	})
	return status
}

func classifyStorageTransition(original, value core.Word) core.StorageStatus {
	zero := core.Word{}
	switch {
	case original == value:
		return core.StorageAssigned
	case original == zero:
		return core.StorageAdded
	case value == zero:
		return core.StorageDeleted
	default:
		return core.StorageModified
	}
}

// Checkpoint returns the current journal length, used by Revert to replay
// undo entries back to this point.
func (s *MemState) Checkpoint() core.Snapshot {
	return core.Snapshot(len(s.journal))
}

// Revert undoes every mutation performed since snap was taken, in reverse
// order, and truncates the journal. Reverting to a snapshot discards any
// later snapshot as well, matching the "total snapshot/restore" semantics
// of §3 and §5.
func (s *MemState) Revert(snap core.Snapshot) {
	for i := len(s.journal) - 1; i >= int(snap); i-- {
		s.journal[i](s)
	}
	s.journal = s.journal[:snap]
}
