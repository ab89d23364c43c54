// this package provide "mock" implementation of the task store for testing.
package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
)

type MockTaskInterface struct {
	Impl struct {
		Get            func(ctx context.Context, taskId int) (domain.Task, error)
		UpdateOnSubmit func(ctx context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time) (domain.Task, error)
		ListByProject  func(ctx context.Context, projectId int) ([]domain.Task, error)
	}
}

var _ ktasks.Interface = &MockTaskInterface{}

func NewMockTaskInterface() *MockTaskInterface {
	return &MockTaskInterface{}
}

func (m *MockTaskInterface) Get(ctx context.Context, taskId int) (domain.Task, error) {
	if m.Impl.Get == nil {
		return domain.Task{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Get(ctx, taskId)
}

func (m *MockTaskInterface) UpdateOnSubmit(
	ctx context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time,
) (domain.Task, error) {
	if m.Impl.UpdateOnSubmit == nil {
		return domain.Task{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.UpdateOnSubmit(ctx, taskId, status, fileUrl, at)
}

func (m *MockTaskInterface) ListByProject(ctx context.Context, projectId int) ([]domain.Task, error) {
	if m.Impl.ListByProject == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.ListByProject(ctx, projectId)
}
