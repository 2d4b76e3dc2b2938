// Code generated by MockGen. DO NOT EDIT.
// Source: epic.go
//
// Generated by this command:
//
//	mockgen -source=epic.go -destination=../mocks/mock_epic_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "storysplit/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockIEpicRepository is a mock of IEpicRepository interface.
type MockIEpicRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIEpicRepositoryMockRecorder
	isgomock struct{}
}

// MockIEpicRepositoryMockRecorder is the mock recorder for MockIEpicRepository.
type MockIEpicRepositoryMockRecorder struct {
	mock *MockIEpicRepository
}

// NewMockIEpicRepository creates a new mock instance.
func NewMockIEpicRepository(ctrl *gomock.Controller) *MockIEpicRepository {
	mock := &MockIEpicRepository{ctrl: ctrl}
	mock.recorder = &MockIEpicRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIEpicRepository) EXPECT() *MockIEpicRepositoryMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockIEpicRepository) Delete(id domain.BoardID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockIEpicRepositoryMockRecorder) Delete(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockIEpicRepository)(nil).Delete), id)
}

// Get mocks base method.
func (m *MockIEpicRepository) Get(id domain.BoardID) (domain.Epic, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Epic)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIEpicRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIEpicRepository)(nil).Get), id)
}

// List mocks base method.
func (m *MockIEpicRepository) List() ([]domain.Epic, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List")
	ret0, _ := ret[0].([]domain.Epic)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockIEpicRepositoryMockRecorder) List() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockIEpicRepository)(nil).List))
}

// Save mocks base method.
func (m *MockIEpicRepository) Save(epic domain.Epic) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", epic)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockIEpicRepositoryMockRecorder) Save(epic any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockIEpicRepository)(nil).Save), epic)
}
