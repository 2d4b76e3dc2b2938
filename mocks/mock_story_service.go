// Code generated by MockGen. DO NOT EDIT.
// Source: story_service.go
//
// Generated by this command:
//
//	mockgen -source=story_service.go -destination=../mocks/mock_story_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	contract "storysplit/contract"
	domain "storysplit/domain"
	services "storysplit/services"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIStoryService is a mock of IStoryService interface.
type MockIStoryService struct {
	ctrl     *gomock.Controller
	recorder *MockIStoryServiceMockRecorder
	isgomock struct{}
}

// MockIStoryServiceMockRecorder is the mock recorder for MockIStoryService.
type MockIStoryServiceMockRecorder struct {
	mock *MockIStoryService
}

// NewMockIStoryService creates a new mock instance.
func NewMockIStoryService(ctrl *gomock.Controller) *MockIStoryService {
	mock := &MockIStoryService{ctrl: ctrl}
	mock.recorder = &MockIStoryServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIStoryService) EXPECT() *MockIStoryServiceMockRecorder {
	return m.recorder
}

// AnalyzeStory mocks base method.
func (m *MockIStoryService) AnalyzeStory(storyID uuid.UUID, persona string) (domain.Feedback, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AnalyzeStory", storyID, persona)
	ret0, _ := ret[0].(domain.Feedback)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AnalyzeStory indicates an expected call of AnalyzeStory.
func (mr *MockIStoryServiceMockRecorder) AnalyzeStory(storyID, persona any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AnalyzeStory", reflect.TypeOf((*MockIStoryService)(nil).AnalyzeStory), storyID, persona)
}

// ApplySplit mocks base method.
func (m *MockIStoryService) ApplySplit(ctx context.Context, splitter domain.Presence, storyID uuid.UUID, drafts []domain.StoryDraft) ([]uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplySplit", ctx, splitter, storyID, drafts)
	ret0, _ := ret[0].([]uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplySplit indicates an expected call of ApplySplit.
func (mr *MockIStoryServiceMockRecorder) ApplySplit(ctx, splitter, storyID, drafts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplySplit", reflect.TypeOf((*MockIStoryService)(nil).ApplySplit), ctx, splitter, storyID, drafts)
}

// CreateEpic mocks base method.
func (m *MockIStoryService) CreateEpic(name, description, color string) (domain.Epic, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEpic", name, description, color)
	ret0, _ := ret[0].(domain.Epic)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateEpic indicates an expected call of CreateEpic.
func (mr *MockIStoryServiceMockRecorder) CreateEpic(name, description, color any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEpic", reflect.TypeOf((*MockIStoryService)(nil).CreateEpic), name, description, color)
}

// CreateStory mocks base method.
func (m *MockIStoryService) CreateStory(ctx context.Context, author domain.Presence, payload services.StoryPayload) (domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateStory", ctx, author, payload)
	ret0, _ := ret[0].(domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateStory indicates an expected call of CreateStory.
func (mr *MockIStoryServiceMockRecorder) CreateStory(ctx, author, payload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateStory", reflect.TypeOf((*MockIStoryService)(nil).CreateStory), ctx, author, payload)
}

// DeleteEpic mocks base method.
func (m *MockIStoryService) DeleteEpic(board domain.BoardID) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteEpic", board)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteEpic indicates an expected call of DeleteEpic.
func (mr *MockIStoryServiceMockRecorder) DeleteEpic(board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteEpic", reflect.TypeOf((*MockIStoryService)(nil).DeleteEpic), board)
}

// DeleteStory mocks base method.
func (m *MockIStoryService) DeleteStory(ctx context.Context, remover domain.Presence, storyID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteStory", ctx, remover, storyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteStory indicates an expected call of DeleteStory.
func (mr *MockIStoryServiceMockRecorder) DeleteStory(ctx, remover, storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteStory", reflect.TypeOf((*MockIStoryService)(nil).DeleteStory), ctx, remover, storyID)
}

// GetBoard mocks base method.
func (m *MockIStoryService) GetBoard(board domain.BoardID) (map[domain.Status][]domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBoard", board)
	ret0, _ := ret[0].(map[domain.Status][]domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBoard indicates an expected call of GetBoard.
func (mr *MockIStoryServiceMockRecorder) GetBoard(board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBoard", reflect.TypeOf((*MockIStoryService)(nil).GetBoard), board)
}

// GetFeedback mocks base method.
func (m *MockIStoryService) GetFeedback(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFeedback", storyID, cursor)
	ret0, _ := ret[0].([]domain.Feedback)
	ret1, _ := ret[1].(*string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetFeedback indicates an expected call of GetFeedback.
func (mr *MockIStoryServiceMockRecorder) GetFeedback(storyID, cursor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFeedback", reflect.TypeOf((*MockIStoryService)(nil).GetFeedback), storyID, cursor)
}

// GetStory mocks base method.
func (m *MockIStoryService) GetStory(storyID uuid.UUID) (domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStory", storyID)
	ret0, _ := ret[0].(domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStory indicates an expected call of GetStory.
func (mr *MockIStoryServiceMockRecorder) GetStory(storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStory", reflect.TypeOf((*MockIStoryService)(nil).GetStory), storyID)
}

// JoinBoard mocks base method.
func (m *MockIStoryService) JoinBoard(p domain.Presence, board domain.BoardID, sink contract.EventSink) domain.BoardID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "JoinBoard", p, board, sink)
	ret0, _ := ret[0].(domain.BoardID)
	return ret0
}

// JoinBoard indicates an expected call of JoinBoard.
func (mr *MockIStoryServiceMockRecorder) JoinBoard(p, board, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "JoinBoard", reflect.TypeOf((*MockIStoryService)(nil).JoinBoard), p, board, sink)
}

// LeaveBoard mocks base method.
func (m *MockIStoryService) LeaveBoard(p domain.Presence, board domain.BoardID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LeaveBoard", p, board)
}

// LeaveBoard indicates an expected call of LeaveBoard.
func (mr *MockIStoryServiceMockRecorder) LeaveBoard(p, board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LeaveBoard", reflect.TypeOf((*MockIStoryService)(nil).LeaveBoard), p, board)
}

// ListEpics mocks base method.
func (m *MockIStoryService) ListEpics() ([]domain.Epic, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEpics")
	ret0, _ := ret[0].([]domain.Epic)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListEpics indicates an expected call of ListEpics.
func (mr *MockIStoryServiceMockRecorder) ListEpics() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEpics", reflect.TypeOf((*MockIStoryService)(nil).ListEpics))
}

// MoveStory mocks base method.
func (m *MockIStoryService) MoveStory(ctx context.Context, mover domain.Presence, storyID uuid.UUID, to string) (domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MoveStory", ctx, mover, storyID, to)
	ret0, _ := ret[0].(domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MoveStory indicates an expected call of MoveStory.
func (mr *MockIStoryServiceMockRecorder) MoveStory(ctx, mover, storyID, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MoveStory", reflect.TypeOf((*MockIStoryService)(nil).MoveStory), ctx, mover, storyID, to)
}

// ProposeSplit mocks base method.
func (m *MockIStoryService) ProposeSplit(storyID uuid.UUID) ([]domain.StoryDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProposeSplit", storyID)
	ret0, _ := ret[0].([]domain.StoryDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProposeSplit indicates an expected call of ProposeSplit.
func (mr *MockIStoryServiceMockRecorder) ProposeSplit(storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProposeSplit", reflect.TypeOf((*MockIStoryService)(nil).ProposeSplit), storyID)
}

// SearchStories mocks base method.
func (m *MockIStoryService) SearchStories(ctx context.Context, rawQuery string) ([]domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchStories", ctx, rawQuery)
	ret0, _ := ret[0].([]domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchStories indicates an expected call of SearchStories.
func (mr *MockIStoryServiceMockRecorder) SearchStories(ctx, rawQuery any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchStories", reflect.TypeOf((*MockIStoryService)(nil).SearchStories), ctx, rawQuery)
}

// Typing mocks base method.
func (m *MockIStoryService) Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Typing", board, storyID, p, stopped)
}

// Typing indicates an expected call of Typing.
func (mr *MockIStoryServiceMockRecorder) Typing(board, storyID, p, stopped any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Typing", reflect.TypeOf((*MockIStoryService)(nil).Typing), board, storyID, p, stopped)
}

// UpdateStory mocks base method.
func (m *MockIStoryService) UpdateStory(ctx context.Context, editor domain.Presence, storyID uuid.UUID, payload services.StoryPayload) (domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStory", ctx, editor, storyID, payload)
	ret0, _ := ret[0].(domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStory indicates an expected call of UpdateStory.
func (mr *MockIStoryServiceMockRecorder) UpdateStory(ctx, editor, storyID, payload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStory", reflect.TypeOf((*MockIStoryService)(nil).UpdateStory), ctx, editor, storyID, payload)
}
