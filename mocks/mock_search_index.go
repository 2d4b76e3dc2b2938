// Code generated by MockGen. DO NOT EDIT.
// Source: search.go
//
// Generated by this command:
//
//	mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	domain "storysplit/domain"
	search "storysplit/domain/search"

	gomock "go.uber.org/mock/gomock"
)

// MockISearchIndex is a mock of ISearchIndex interface.
type MockISearchIndex struct {
	ctrl     *gomock.Controller
	recorder *MockISearchIndexMockRecorder
	isgomock struct{}
}

// MockISearchIndexMockRecorder is the mock recorder for MockISearchIndex.
type MockISearchIndexMockRecorder struct {
	mock *MockISearchIndex
}

// NewMockISearchIndex creates a new mock instance.
func NewMockISearchIndex(ctrl *gomock.Controller) *MockISearchIndex {
	mock := &MockISearchIndex{ctrl: ctrl}
	mock.recorder = &MockISearchIndexMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISearchIndex) EXPECT() *MockISearchIndexMockRecorder {
	return m.recorder
}

// Index mocks base method.
func (m *MockISearchIndex) Index(story domain.Story) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Index", story)
	ret0, _ := ret[0].(error)
	return ret0
}

// Index indicates an expected call of Index.
func (mr *MockISearchIndexMockRecorder) Index(story any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Index", reflect.TypeOf((*MockISearchIndex)(nil).Index), story)
}

// Remove mocks base method.
func (m *MockISearchIndex) Remove(storyID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", storyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockISearchIndexMockRecorder) Remove(storyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockISearchIndex)(nil).Remove), storyID)
}

// Search mocks base method.
func (m *MockISearchIndex) Search(ctx context.Context, query *search.Query) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, query)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockISearchIndexMockRecorder) Search(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockISearchIndex)(nil).Search), ctx, query)
}
