// Code generated by MockGen. DO NOT EDIT.
// Source: story.go
//
// Generated by this command:
//
//	mockgen -source=story.go -destination=../mocks/mock_story_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "storysplit/domain"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIStoryRepository is a mock of IStoryRepository interface.
type MockIStoryRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIStoryRepositoryMockRecorder
	isgomock struct{}
}

// MockIStoryRepositoryMockRecorder is the mock recorder for MockIStoryRepository.
type MockIStoryRepositoryMockRecorder struct {
	mock *MockIStoryRepository
}

// NewMockIStoryRepository creates a new mock instance.
func NewMockIStoryRepository(ctrl *gomock.Controller) *MockIStoryRepository {
	mock := &MockIStoryRepository{ctrl: ctrl}
	mock.recorder = &MockIStoryRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIStoryRepository) EXPECT() *MockIStoryRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockIStoryRepository) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockIStoryRepositoryMockRecorder) Delete(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockIStoryRepository)(nil).Delete), id)
}

// Get mocks base method.
func (m *MockIStoryRepository) Get(id uuid.UUID) (domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIStoryRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIStoryRepository)(nil).Get), id)
}

// ListAll mocks base method.
func (m *MockIStoryRepository) ListAll() ([]domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAll")
	ret0, _ := ret[0].([]domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAll indicates an expected call of ListAll.
func (mr *MockIStoryRepositoryMockRecorder) ListAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAll", reflect.TypeOf((*MockIStoryRepository)(nil).ListAll))
}

// ListByEpic mocks base method.
func (m *MockIStoryRepository) ListByEpic(epic domain.BoardID) ([]domain.Story, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByEpic", epic)
	ret0, _ := ret[0].([]domain.Story)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByEpic indicates an expected call of ListByEpic.
func (mr *MockIStoryRepositoryMockRecorder) ListByEpic(epic any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByEpic", reflect.TypeOf((*MockIStoryRepository)(nil).ListByEpic), epic)
}

// Save mocks base method.
func (m *MockIStoryRepository) Save(story domain.Story) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", story)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockIStoryRepositoryMockRecorder) Save(story any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockIStoryRepository)(nil).Save), story)
}
