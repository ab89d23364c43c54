package db

import (
	"context"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// Interface owns the task-user assignment relation and the seeding of the
// status ledger that goes with it.
//
// NOTE: there is no uniqueness constraint over (task_id, user_id). Repeated
// Create calls with the same pair each insert a fresh row. Known gap,
// kept as-is until the schema grows a constraint.
type Interface interface {
	// Create inserts an assignment row and the assignee's "To Do" seed entry
	// in the status ledger. Both writes happen in one local transaction;
	// remote validation of userId is the caller's job and must be done
	// before calling.
	//
	// Error: ErrMissing (when the task does not exist)
	Create(ctx context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error)

	// Get returns the assignment row for the pair.
	//
	// Error: ErrMissing (when no such pair is assigned)
	Get(ctx context.Context, taskId int, userId int) (domain.Assignment, error)

	// Reassign moves the assignment row at (taskId, oldUserId) to newUserId
	// and seeds a "To Do" ledger entry for the new assignee, in one local
	// transaction. Prior ledger entries are preserved: the ledger keeps the
	// full task history across reassignment.
	//
	// Error: ErrMissing (when no row matches (taskId, oldUserId))
	Reassign(ctx context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error)

	// Remove deletes the assignment row for the pair if present.
	//
	// Return: whether a row was deleted.
	Remove(ctx context.Context, taskId int, userId int) (bool, error)

	// ListByUser returns tasks assigned to the user, with display attributes.
	ListByUser(ctx context.Context, userId int) ([]domain.Task, error)
}
