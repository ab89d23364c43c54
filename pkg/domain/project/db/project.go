package db

import (
	"context"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// NewProject is the specification of a project to be created.
type NewProject struct {
	Name         string
	Description  string
	Deadline     time.Time
	CreatedBy    int
	Status       domain.ProjectStatus
	Priority     domain.ProjectPriority
	Progress     int
	ProjectImage *string
}

// ProjectChange carries the mutable attributes of a project.
// nil fields are left as they are.
type ProjectChange struct {
	Name         *string
	Description  *string
	Deadline     *time.Time
	Status       *domain.ProjectStatus
	Priority     *domain.ProjectPriority
	Progress     *int
	ProjectImage *string
}

type Interface interface {
	// Error: ErrMissing (when no project is found for given projectId)
	Get(ctx context.Context, projectId int) (domain.Project, error)

	GetAll(ctx context.Context) ([]domain.Project, error)

	Create(ctx context.Context, spec NewProject) (domain.Project, error)

	// Error: ErrMissing (when no project is found for given projectId)
	Update(ctx context.Context, projectId int, change ProjectChange) (domain.Project, error)

	// Return: whether a row was deleted.
	Delete(ctx context.Context, projectId int) (bool, error)
}
