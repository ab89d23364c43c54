// this package provide "mock" implementation of the assignment store for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	kassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db"
)

type MockAssignmentInterface struct {
	Impl struct {
		Create     func(ctx context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error)
		Get        func(ctx context.Context, taskId int, userId int) (domain.Assignment, error)
		Reassign   func(ctx context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error)
		Remove     func(ctx context.Context, taskId int, userId int) (bool, error)
		ListByUser func(ctx context.Context, userId int) ([]domain.Task, error)
	}
}

var _ kassign.Interface = &MockAssignmentInterface{}

func NewMockAssignmentInterface() *MockAssignmentInterface {
	return &MockAssignmentInterface{}
}

func (m *MockAssignmentInterface) Create(ctx context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error) {
	if m.Impl.Create == nil {
		return domain.Assignment{}, domain.StatusUpdate{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Create(ctx, taskId, userId)
}

func (m *MockAssignmentInterface) Get(ctx context.Context, taskId int, userId int) (domain.Assignment, error) {
	if m.Impl.Get == nil {
		return domain.Assignment{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Get(ctx, taskId, userId)
}

func (m *MockAssignmentInterface) Reassign(ctx context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error) {
	if m.Impl.Reassign == nil {
		return domain.Assignment{}, domain.StatusUpdate{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Reassign(ctx, taskId, oldUserId, newUserId)
}

func (m *MockAssignmentInterface) Remove(ctx context.Context, taskId int, userId int) (bool, error) {
	if m.Impl.Remove == nil {
		return false, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Remove(ctx, taskId, userId)
}

func (m *MockAssignmentInterface) ListByUser(ctx context.Context, userId int) ([]domain.Task, error) {
	if m.Impl.ListByUser == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.ListByUser(ctx, userId)
}
