package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	history "github.com/zjrosen/xroot/internal/history"
)

// MockRecorder is a mock type for the history.Recorder type
type MockRecorder struct {
	mock.Mock
}

type MockRecorder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRecorder) EXPECT() *MockRecorder_Expecter {
	return &MockRecorder_Expecter{mock: &_m.Mock}
}

// Record provides a mock function with given fields: ctx, e
func (_m *MockRecorder) Record(ctx context.Context, e history.Entry) error {
	ret := _m.Called(ctx, e)

	if rf, ok := ret.Get(0).(func(context.Context, history.Entry) error); ok {
		return rf(ctx, e)
	}
	return ret.Error(0)
}

// MockRecorder_Record_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Record'
type MockRecorder_Record_Call struct {
	*mock.Call
}

// Record is a helper method to define mock.On call
func (_e *MockRecorder_Expecter) Record(ctx interface{}, e interface{}) *MockRecorder_Record_Call {
	return &MockRecorder_Record_Call{Call: _e.mock.On("Record", ctx, e)}
}

func (_c *MockRecorder_Record_Call) Run(run func(ctx context.Context, e history.Entry)) *MockRecorder_Record_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(history.Entry))
	})
	return _c
}

func (_c *MockRecorder_Record_Call) Return(_a0 error) *MockRecorder_Record_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockRecorder creates a new instance of MockRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecorder {
	m := &MockRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
