package db

import (
	"context"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// Tasks are created and removed by the task CRUD surface.
// This interface covers only what assignment and submission need.
type Interface interface {
	// Get returns the task.
	//
	// Error: ErrMissing (when no task is found for given taskId)
	Get(ctx context.Context, taskId int) (domain.Task, error)

	// UpdateOnSubmit rewrites status, artifact URL and updated_at of the task.
	//
	// Error: ErrMissing (when no task is found for given taskId)
	UpdateOnSubmit(ctx context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time) (domain.Task, error)

	// ListByProject returns the project's tasks.
	ListByProject(ctx context.Context, projectId int) ([]domain.Task, error)
}
