// Hand-written in the shape MockGen produces for the go:generate directive
// in state.go.
// Source: state.go

package state

import (
	reflect "reflect"

	uint256 "github.com/holiman/uint256"
	gomock "go.uber.org/mock/gomock"

	core "github.com/sgkim126/txexec/core"
)

// MockState is a mock of the State interface.
type MockState struct {
	ctrl     *gomock.Controller
	recorder *MockStateMockRecorder
}

// MockStateMockRecorder is the mock recorder for MockState.
type MockStateMockRecorder struct {
	mock *MockState
}

// NewMockState creates a new mock instance.
func NewMockState(ctrl *gomock.Controller) *MockState {
	mock := &MockState{ctrl: ctrl}
	mock.recorder = &MockStateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockState) EXPECT() *MockStateMockRecorder {
	return m.recorder
}

func (m *MockState) AccountExists(addr core.Address) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountExists", addr)
	return ret[0].(bool)
}

func (mr *MockStateMockRecorder) AccountExists(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountExists", reflect.TypeOf((*MockState)(nil).AccountExists), addr)
}

func (m *MockState) Nonce(addr core.Address) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", addr)
	return ret[0].(uint64)
}

func (mr *MockStateMockRecorder) Nonce(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockState)(nil).Nonce), addr)
}

func (m *MockState) IncNonce(addr core.Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncNonce", addr)
}

func (mr *MockStateMockRecorder) IncNonce(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncNonce", reflect.TypeOf((*MockState)(nil).IncNonce), addr)
}

func (m *MockState) Balance(addr core.Address) *uint256.Int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", addr)
	return ret[0].(*uint256.Int)
}

func (mr *MockStateMockRecorder) Balance(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockState)(nil).Balance), addr)
}

func (m *MockState) AddBalance(addr core.Address, v *uint256.Int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddBalance", addr, v)
}

func (mr *MockStateMockRecorder) AddBalance(addr, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddBalance", reflect.TypeOf((*MockState)(nil).AddBalance), addr, v)
}

func (m *MockState) SubBalance(addr core.Address, v *uint256.Int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SubBalance", addr, v)
}

func (mr *MockStateMockRecorder) SubBalance(addr, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubBalance", reflect.TypeOf((*MockState)(nil).SubBalance), addr, v)
}

func (m *MockState) TransferBalance(from, to core.Address, v *uint256.Int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferBalance", from, to, v)
	return ret[0].(error)
}

func (mr *MockStateMockRecorder) TransferBalance(from, to, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferBalance", reflect.TypeOf((*MockState)(nil).TransferBalance), from, to, v)
}

func (m *MockState) Code(addr core.Address) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Code", addr)
	return ret[0].([]byte)
}

func (mr *MockStateMockRecorder) Code(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Code", reflect.TypeOf((*MockState)(nil).Code), addr)
}

func (m *MockState) CodeHash(addr core.Address) core.Hash {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeHash", addr)
	return ret[0].(core.Hash)
}

func (mr *MockStateMockRecorder) CodeHash(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeHash", reflect.TypeOf((*MockState)(nil).CodeHash), addr)
}

func (m *MockState) InitCode(addr core.Address, code []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InitCode", addr, code)
}

func (mr *MockStateMockRecorder) InitCode(addr, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitCode", reflect.TypeOf((*MockState)(nil).InitCode), addr, code)
}

func (m *MockState) NewContract(addr core.Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "NewContract", addr)
}

func (mr *MockStateMockRecorder) NewContract(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewContract", reflect.TypeOf((*MockState)(nil).NewContract), addr)
}

func (m *MockState) KillAccount(addr core.Address) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "KillAccount", addr)
}

func (mr *MockStateMockRecorder) KillAccount(addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "KillAccount", reflect.TypeOf((*MockState)(nil).KillAccount), addr)
}

func (m *MockState) StorageAt(addr core.Address, key core.Key) core.Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StorageAt", addr, key)
	return ret[0].(core.Word)
}

func (mr *MockStateMockRecorder) StorageAt(addr, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StorageAt", reflect.TypeOf((*MockState)(nil).StorageAt), addr, key)
}

func (m *MockState) SetStorage(addr core.Address, key core.Key, value core.Word) core.StorageStatus {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStorage", addr, key, value)
	return ret[0].(core.StorageStatus)
}

func (mr *MockStateMockRecorder) SetStorage(addr, key, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockState)(nil).SetStorage), addr, key, value)
}

func (m *MockState) Checkpoint() core.Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Checkpoint")
	return ret[0].(core.Snapshot)
}

func (mr *MockStateMockRecorder) Checkpoint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Checkpoint", reflect.TypeOf((*MockState)(nil).Checkpoint))
}

func (m *MockState) Revert(snap core.Snapshot) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Revert", snap)
}

func (mr *MockStateMockRecorder) Revert(snap any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revert", reflect.TypeOf((*MockState)(nil).Revert), snap)
}
