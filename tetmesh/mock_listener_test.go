// Code generated by hand in the style of mockgen for tetmesh.Listener.
// Source: new.go (Listener = meshkit.Listener[Event])

package tetmesh_test

import (
	"reflect"

	gomock "github.com/golang/mock/gomock"

	"github.com/dhale/delaunay/tetmesh"
)

// MockListener is a mock of the tetmesh.Listener interface.
type MockListener struct {
	ctrl     *gomock.Controller
	recorder *MockListenerMockRecorder
}

// MockListenerMockRecorder is the mock recorder for MockListener.
type MockListenerMockRecorder struct {
	mock *MockListener
}

// NewMockListener creates a new mock instance.
func NewMockListener(ctrl *gomock.Controller) *MockListener {
	mock := &MockListener{ctrl: ctrl}
	mock.recorder = &MockListenerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockListener) EXPECT() *MockListenerMockRecorder {
	return m.recorder
}

// OnEvent mocks base method.
func (m *MockListener) OnEvent(e tetmesh.Event) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnEvent", e)
}

// OnEvent indicates an expected call of OnEvent.
func (mr *MockListenerMockRecorder) OnEvent(e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnEvent", reflect.TypeOf((*MockListener)(nil).OnEvent), e)
}
