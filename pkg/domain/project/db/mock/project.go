// this package provide "mock" implementation of the project store for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
)

type MockProjectInterface struct {
	Impl struct {
		Get    func(ctx context.Context, projectId int) (domain.Project, error)
		GetAll func(ctx context.Context) ([]domain.Project, error)
		Create func(ctx context.Context, spec kproject.NewProject) (domain.Project, error)
		Update func(ctx context.Context, projectId int, change kproject.ProjectChange) (domain.Project, error)
		Delete func(ctx context.Context, projectId int) (bool, error)
	}
}

var _ kproject.Interface = &MockProjectInterface{}

func NewMockProjectInterface() *MockProjectInterface {
	return &MockProjectInterface{}
}

func (m *MockProjectInterface) Get(ctx context.Context, projectId int) (domain.Project, error) {
	if m.Impl.Get == nil {
		return domain.Project{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Get(ctx, projectId)
}

func (m *MockProjectInterface) GetAll(ctx context.Context) ([]domain.Project, error) {
	if m.Impl.GetAll == nil {
		return nil, errors.New("[MOCK] not implemented")
	}
	return m.Impl.GetAll(ctx)
}

func (m *MockProjectInterface) Create(ctx context.Context, spec kproject.NewProject) (domain.Project, error) {
	if m.Impl.Create == nil {
		return domain.Project{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Create(ctx, spec)
}

func (m *MockProjectInterface) Update(ctx context.Context, projectId int, change kproject.ProjectChange) (domain.Project, error) {
	if m.Impl.Update == nil {
		return domain.Project{}, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Update(ctx, projectId, change)
}

func (m *MockProjectInterface) Delete(ctx context.Context, projectId int) (bool, error) {
	if m.Impl.Delete == nil {
		return false, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Delete(ctx, projectId)
}
