package mocks

import (
	"context"
	"reflect"

	"github.com/betacom-hq/backoffice/internal/domain"
	"github.com/golang/mock/gomock"
)

// MockUserServiceInterface is a mock of UserServiceInterface interface
type MockUserServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceInterfaceMockRecorder
}

// MockUserServiceInterfaceMockRecorder is the mock recorder for MockUserServiceInterface
type MockUserServiceInterfaceMockRecorder struct {
	mock *MockUserServiceInterface
}

// NewMockUserServiceInterface creates a new mock instance
func NewMockUserServiceInterface(ctrl *gomock.Controller) *MockUserServiceInterface {
	mock := &MockUserServiceInterface{ctrl: ctrl}
	mock.recorder = &MockUserServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockUserServiceInterface) EXPECT() *MockUserServiceInterfaceMockRecorder {
	return m.recorder
}

// GetProfileByID mocks base method
func (m *MockUserServiceInterface) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProfileByID", ctx, id)
	ret0, _ := ret[0].(*domain.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProfileByID indicates an expected call of GetProfileByID
func (mr *MockUserServiceInterfaceMockRecorder) GetProfileByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProfileByID", reflect.TypeOf((*MockUserServiceInterface)(nil).GetProfileByID), ctx, id)
}

// ListUsers mocks base method
func (m *MockUserServiceInterface) ListUsers(ctx context.Context, filter domain.ProfileFilter) (*domain.ProfileListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsers", ctx, filter)
	ret0, _ := ret[0].(*domain.ProfileListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUsers indicates an expected call of ListUsers
func (mr *MockUserServiceInterfaceMockRecorder) ListUsers(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsers", reflect.TypeOf((*MockUserServiceInterface)(nil).ListUsers), ctx, filter)
}

// CreateUser mocks base method
func (m *MockUserServiceInterface) CreateUser(ctx context.Context, input domain.CreateUserInput) (*domain.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, input)
	ret0, _ := ret[0].(*domain.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser
func (mr *MockUserServiceInterfaceMockRecorder) CreateUser(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockUserServiceInterface)(nil).CreateUser), ctx, input)
}

// UpdateUser mocks base method
func (m *MockUserServiceInterface) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUser", ctx, id, input)
	ret0, _ := ret[0].(*domain.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateUser indicates an expected call of UpdateUser
func (mr *MockUserServiceInterfaceMockRecorder) UpdateUser(ctx, id, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUser", reflect.TypeOf((*MockUserServiceInterface)(nil).UpdateUser), ctx, id, input)
}

// DeleteUser mocks base method
func (m *MockUserServiceInterface) DeleteUser(ctx context.Context, id string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteUser", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteUser indicates an expected call of DeleteUser
func (mr *MockUserServiceInterfaceMockRecorder) DeleteUser(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteUser", reflect.TypeOf((*MockUserServiceInterface)(nil).DeleteUser), ctx, id)
}

// BulkCreateUsers mocks base method
func (m *MockUserServiceInterface) BulkCreateUsers(ctx context.Context, inputs []domain.CreateUserInput) (*domain.BulkCreateResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkCreateUsers", ctx, inputs)
	ret0, _ := ret[0].(*domain.BulkCreateResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BulkCreateUsers indicates an expected call of BulkCreateUsers
func (mr *MockUserServiceInterfaceMockRecorder) BulkCreateUsers(ctx, inputs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkCreateUsers", reflect.TypeOf((*MockUserServiceInterface)(nil).BulkCreateUsers), ctx, inputs)
}
