package db

import (
	"context"
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// TaskDigest carries the task display attributes joined onto ledger listings.
type TaskDigest struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    string
	Deadline    *time.Time
	CreatedAt   time.Time
}

// Entry is one ledger row with its task attached.
type Entry struct {
	domain.StatusUpdate
	Task TaskDigest
}

// Interface owns the task status ledger.
//
// The ledger is descriptive, not prescriptive: any status may follow
// any other, no transition graph is enforced here.
type Interface interface {
	// Append records a status transition: it finds the task's most recent
	// entry, derives time-taken since it (null metrics when there is none)
	// and inserts a new entry. The read and the insert run in one
	// transaction holding the task row, so concurrent appends on the same
	// task serialize instead of computing against the same prior entry.
	//
	// Error: ErrMissing (when the task does not exist)
	Append(ctx context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error)

	// EditInPlace rewrites status and updated_at of an existing entry.
	//
	// This edits history, it does not advance it: time-taken metrics of the
	// entry (and of every other entry) stay untouched. Not interchangeable
	// with Append.
	//
	// Error: ErrMissing (when no entry is found for given id)
	EditInPlace(ctx context.Context, id int, status domain.TaskStatus) (domain.StatusUpdate, error)

	// ListByUser returns the user's ledger entries, newest first.
	ListByUser(ctx context.Context, userId int) ([]Entry, error)

	// ListAll returns all ledger entries, newest first.
	ListAll(ctx context.Context) ([]Entry, error)
}
