package report

import (
	"context"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// Reporter notifies the analytics endpoint about a status transition.
//
// Fire-and-forget: no retry, no queue, no acknowledgment. Callers run it off
// the request path and only log failures.
type Reporter interface {
	Track(ctx context.Context, userId int, elapsedMinutes int, status domain.TaskStatus) error
}
