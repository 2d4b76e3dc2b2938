// Code generated by MockGen. DO NOT EDIT.
// Source: feedback.go
//
// Generated by this command:
//
//	mockgen -source=feedback.go -destination=../mocks/mock_feedback_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "storysplit/domain"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockIFeedbackRepository is a mock of IFeedbackRepository interface.
type MockIFeedbackRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIFeedbackRepositoryMockRecorder
	isgomock struct{}
}

// MockIFeedbackRepositoryMockRecorder is the mock recorder for MockIFeedbackRepository.
type MockIFeedbackRepositoryMockRecorder struct {
	mock *MockIFeedbackRepository
}

// NewMockIFeedbackRepository creates a new mock instance.
func NewMockIFeedbackRepository(ctrl *gomock.Controller) *MockIFeedbackRepository {
	mock := &MockIFeedbackRepository{ctrl: ctrl}
	mock.recorder = &MockIFeedbackRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIFeedbackRepository) EXPECT() *MockIFeedbackRepositoryMockRecorder {
	return m.recorder
}

// GetByStory mocks base method.
func (m *MockIFeedbackRepository) GetByStory(storyID uuid.UUID, cursor *string) ([]domain.Feedback, *string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByStory", storyID, cursor)
	ret0, _ := ret[0].([]domain.Feedback)
	ret1, _ := ret[1].(*string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByStory indicates an expected call of GetByStory.
func (mr *MockIFeedbackRepositoryMockRecorder) GetByStory(storyID, cursor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByStory", reflect.TypeOf((*MockIFeedbackRepository)(nil).GetByStory), storyID, cursor)
}

// Store mocks base method.
func (m *MockIFeedbackRepository) Store(fb domain.Feedback) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Store", fb)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockIFeedbackRepositoryMockRecorder) Store(fb any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockIFeedbackRepository)(nil).Store), fb)
}
