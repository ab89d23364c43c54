// this package provide "mock" implementation of the status ledger for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
)

type MockHistoryInterface struct {
	Impl struct {
		Append      func(ctx context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error)
		EditInPlace func(ctx context.Context, id int, status domain.TaskStatus) (domain.StatusUpdate, error)
		ListByUser  func(ctx context.Context, userId int) ([]khistory.Entry, error)
		ListAll     func(ctx context.Context) ([]khistory.Entry, error)
	}
}

var _ khistory.Interface = &MockHistoryInterface{}

func NewMockHistoryInterface() *MockHistoryInterface {
	return &MockHistoryInterface{}
}

func (m *MockHistoryInterface) Append(ctx context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error) {
	if m.Impl.Append == nil {
		return domain.StatusUpdate{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Append(ctx, taskId, updatedBy, status)
}

func (m *MockHistoryInterface) EditInPlace(ctx context.Context, id int, status domain.TaskStatus) (domain.StatusUpdate, error) {
	if m.Impl.EditInPlace == nil {
		return domain.StatusUpdate{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.EditInPlace(ctx, id, status)
}

func (m *MockHistoryInterface) ListByUser(ctx context.Context, userId int) ([]khistory.Entry, error) {
	if m.Impl.ListByUser == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.ListByUser(ctx, userId)
}

func (m *MockHistoryInterface) ListAll(ctx context.Context) ([]khistory.Entry, error) {
	if m.Impl.ListAll == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.ListAll(ctx)
}
