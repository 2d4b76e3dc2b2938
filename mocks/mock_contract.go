// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	contract "storysplit/contract"
	domain "storysplit/domain"
	event "storysplit/domain/event"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.DomainEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockIRegistry is a mock of IRegistry interface.
type MockIRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockIRegistryMockRecorder
	isgomock struct{}
}

// MockIRegistryMockRecorder is the mock recorder for MockIRegistry.
type MockIRegistryMockRecorder struct {
	mock *MockIRegistry
}

// NewMockIRegistry creates a new mock instance.
func NewMockIRegistry(ctrl *gomock.Controller) *MockIRegistry {
	mock := &MockIRegistry{ctrl: ctrl}
	mock.recorder = &MockIRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIRegistry) EXPECT() *MockIRegistryMockRecorder {
	return m.recorder
}

// GetSinksForBoard mocks base method.
func (m *MockIRegistry) GetSinksForBoard(board domain.BoardID) []contract.EventSink {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSinksForBoard", board)
	ret0, _ := ret[0].([]contract.EventSink)
	return ret0
}

// GetSinksForBoard indicates an expected call of GetSinksForBoard.
func (mr *MockIRegistryMockRecorder) GetSinksForBoard(board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSinksForBoard", reflect.TypeOf((*MockIRegistry)(nil).GetSinksForBoard), board)
}

// Members mocks base method.
func (m *MockIRegistry) Members(board domain.BoardID) []domain.Presence {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Members", board)
	ret0, _ := ret[0].([]domain.Presence)
	return ret0
}

// Members indicates an expected call of Members.
func (mr *MockIRegistryMockRecorder) Members(board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Members", reflect.TypeOf((*MockIRegistry)(nil).Members), board)
}

// Subscribe mocks base method.
func (m *MockIRegistry) Subscribe(p domain.Presence, board domain.BoardID, sink contract.EventSink) []domain.Presence {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Subscribe", p, board, sink)
	ret0, _ := ret[0].([]domain.Presence)
	return ret0
}

// Subscribe indicates an expected call of Subscribe.
func (mr *MockIRegistryMockRecorder) Subscribe(p, board, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Subscribe", reflect.TypeOf((*MockIRegistry)(nil).Subscribe), p, board, sink)
}

// Unsubscribe mocks base method.
func (m *MockIRegistry) Unsubscribe(userID string, board domain.BoardID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unsubscribe", userID, board)
}

// Unsubscribe indicates an expected call of Unsubscribe.
func (mr *MockIRegistryMockRecorder) Unsubscribe(userID, board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unsubscribe", reflect.TypeOf((*MockIRegistry)(nil).Unsubscribe), userID, board)
}

// MockIOrchestrator is a mock of IOrchestrator interface.
type MockIOrchestrator struct {
	ctrl     *gomock.Controller
	recorder *MockIOrchestratorMockRecorder
	isgomock struct{}
}

// MockIOrchestratorMockRecorder is the mock recorder for MockIOrchestrator.
type MockIOrchestratorMockRecorder struct {
	mock *MockIOrchestrator
}

// NewMockIOrchestrator creates a new mock instance.
func NewMockIOrchestrator(ctrl *gomock.Controller) *MockIOrchestrator {
	mock := &MockIOrchestrator{ctrl: ctrl}
	mock.recorder = &MockIOrchestratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIOrchestrator) EXPECT() *MockIOrchestratorMockRecorder {
	return m.recorder
}

// Dispatch mocks base method.
func (m *MockIOrchestrator) Dispatch(cmd domain.Command) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Dispatch", cmd)
}

// Dispatch indicates an expected call of Dispatch.
func (mr *MockIOrchestratorMockRecorder) Dispatch(cmd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Dispatch", reflect.TypeOf((*MockIOrchestrator)(nil).Dispatch), cmd)
}

// Publish mocks base method.
func (m *MockIOrchestrator) Publish(e event.DomainEvent) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Publish", e)
}

// Publish indicates an expected call of Publish.
func (mr *MockIOrchestratorMockRecorder) Publish(e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockIOrchestrator)(nil).Publish), e)
}

// RegisterParticipant mocks base method.
func (m *MockIOrchestrator) RegisterParticipant(p domain.Presence, board domain.BoardID, sink contract.EventSink) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RegisterParticipant", p, board, sink)
}

// RegisterParticipant indicates an expected call of RegisterParticipant.
func (mr *MockIOrchestratorMockRecorder) RegisterParticipant(p, board, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterParticipant", reflect.TypeOf((*MockIOrchestrator)(nil).RegisterParticipant), p, board, sink)
}

// RegisterSinks mocks base method.
func (m *MockIOrchestrator) RegisterSinks(sink ...contract.EventSink) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range sink {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "RegisterSinks", varargs...)
}

// RegisterSinks indicates an expected call of RegisterSinks.
func (mr *MockIOrchestratorMockRecorder) RegisterSinks(sink ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterSinks", reflect.TypeOf((*MockIOrchestrator)(nil).RegisterSinks), sink...)
}

// Start mocks base method.
func (m *MockIOrchestrator) Start(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Start indicates an expected call of Start.
func (mr *MockIOrchestratorMockRecorder) Start(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockIOrchestrator)(nil).Start), ctx)
}

// Stop mocks base method.
func (m *MockIOrchestrator) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockIOrchestratorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockIOrchestrator)(nil).Stop))
}

// Typing mocks base method.
func (m *MockIOrchestrator) Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Typing", board, storyID, p, stopped)
}

// Typing indicates an expected call of Typing.
func (mr *MockIOrchestratorMockRecorder) Typing(board, storyID, p, stopped any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Typing", reflect.TypeOf((*MockIOrchestrator)(nil).Typing), board, storyID, p, stopped)
}

// UnregisterParticipant mocks base method.
func (m *MockIOrchestrator) UnregisterParticipant(p domain.Presence, board domain.BoardID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UnregisterParticipant", p, board)
}

// UnregisterParticipant indicates an expected call of UnregisterParticipant.
func (mr *MockIOrchestratorMockRecorder) UnregisterParticipant(p, board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnregisterParticipant", reflect.TypeOf((*MockIOrchestrator)(nil).UnregisterParticipant), p, board)
}
