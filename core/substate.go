package core

// Substate accumulates the side effects produced by a single call/create
// frame: emitted logs, addresses scheduled for self-destruction, addresses
// of contracts whose constructors completed successfully, and a count of
// storage-slot-clearing events (which drive the SSTORE refund in §4.4).
//
// Substates are created fresh per frame and merged into the parent only on
// a successful enact_result; a reverted frame's substate is simply dropped.
type Substate struct {
	Suicides         map[Address]struct{}
	Logs             []Log
	ContractsCreated []Address
	RefundsCount     uint64
}

// NewSubstate returns the empty substate, the two-sided identity of Accrue.
func NewSubstate() *Substate {
	return &Substate{Suicides: make(map[Address]struct{})}
}

// Accrue merges child's fields into s: set union for suicides, append for
// logs and contracts_created (preserving order, innermost first), and
// summation for refunds_count.
func (s *Substate) Accrue(child *Substate) {
	if child == nil {
		return
	}
	if s.Suicides == nil {
		s.Suicides = make(map[Address]struct{})
	}
	for addr := range child.Suicides {
		s.Suicides[addr] = struct{}{}
	}
	s.Logs = append(s.Logs, child.Logs...)
	s.ContractsCreated = append(s.ContractsCreated, child.ContractsCreated...)
	s.RefundsCount += child.RefundsCount
}
