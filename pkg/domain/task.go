package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	// The assignee has not started working yet.
	ToDo TaskStatus = "To Do"

	// The assignee is working on the task.
	InProgress TaskStatus = "In Progress"

	// The task's deliverable is waiting for review.
	Review TaskStatus = "Review"

	// The task is done.
	Completed TaskStatus = "Completed"
)

func (ts TaskStatus) String() string {
	return string(ts)
}

func AsTaskStatus(status string) (TaskStatus, error) {
	switch status {
	case string(ToDo):
		return ToDo, nil
	case string(InProgress):
		return InProgress, nil
	case string(Review):
		return Review, nil
	case string(Completed):
		return Completed, nil
	default:
		return "", fmt.Errorf("'%s' is not TaskStatus", status)
	}
}

// Task is a work item. Tasks are created by the task CRUD surface;
// the assignment core only reads them and rewrites status/file_url on submit.
type Task struct {
	Id             int
	Title          string
	Description    string
	ProjectId      int
	Status         TaskStatus
	Priority       string
	Deadline       *time.Time
	EstimatedHours *int
	FileUrl        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assignment links a task with the user responsible for it.
//
// There is no uniqueness constraint over (TaskId, UserId):
// a task can hold several assignment rows at once.
type Assignment struct {
	Id     int
	TaskId int
	UserId int
}

// StatusUpdate is one entry of a task's status ledger.
//
// TimeTakenInHours/TimeTakenInMinutes record wall-clock time elapsed since
// the previous entry for the same task. Both are nil on a task's first entry.
type StatusUpdate struct {
	Id                 int
	TaskId             int
	UpdatedBy          int
	Status             TaskStatus
	UpdatedAt          time.Time
	TimeTakenInHours   *int
	TimeTakenInMinutes *int
}

// ElapsedMinutes flattens the time-taken pair into total minutes.
// It returns 0 when the entry has no prior entry to measure against.
func (su StatusUpdate) ElapsedMinutes() int {
	if su.TimeTakenInHours == nil || su.TimeTakenInMinutes == nil {
		return 0
	}
	return *su.TimeTakenInHours*60 + *su.TimeTakenInMinutes
}

// TimeTakenBetween derives the ledger's time-taken pair from two instants:
// whole hours and a 0-59 minute remainder, truncated to minutes.
//
// `from` after `now` yields (0, 0); the ledger never records negative time.
func TimeTakenBetween(from time.Time, now time.Time) (hours int, minutes int) {
	d := now.Sub(from)
	if d < 0 {
		return 0, 0
	}
	total := int(d.Minutes())
	return total / 60, total % 60
}
