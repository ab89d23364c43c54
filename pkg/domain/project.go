package domain

import (
	"fmt"
	"time"
)

type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "Pending"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

func AsProjectStatus(status string) (ProjectStatus, error) {
	switch status {
	case string(ProjectPending):
		return ProjectPending, nil
	case string(ProjectInProgress):
		return ProjectInProgress, nil
	case string(ProjectCompleted):
		return ProjectCompleted, nil
	case string(ProjectOnHold):
		return ProjectOnHold, nil
	default:
		return "", fmt.Errorf("'%s' is not ProjectStatus", status)
	}
}

type ProjectPriority string

const (
	PriorityHigh   ProjectPriority = "High"
	PriorityMedium ProjectPriority = "Medium"
	PriorityLow    ProjectPriority = "Low"
)

func AsProjectPriority(priority string) (ProjectPriority, error) {
	switch priority {
	case string(PriorityHigh):
		return PriorityHigh, nil
	case string(PriorityMedium):
		return PriorityMedium, nil
	case string(PriorityLow):
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("'%s' is not ProjectPriority", priority)
	}
}

// Project groups tasks. Its listing and detail reads are cached,
// so every mutation on it participates in cache invalidation.
type Project struct {
	Id           int
	Name         string
	Description  string
	Deadline     time.Time
	CreatedBy    int
	Status       ProjectStatus
	Priority     ProjectPriority
	Progress     int
	ProjectImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
