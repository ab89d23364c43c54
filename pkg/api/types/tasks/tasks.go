package tasks

import (
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

type Task struct {
	Id             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ProjectId      int        `json:"project_id"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Deadline       *time.Time `json:"deadline"`
	EstimatedHours *int       `json:"estimated_hours"`
	FileUrl        *string    `json:"file_url"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ComposeTask(t domain.Task) Task {
	return Task{
		Id:             t.Id,
		Title:          t.Title,
		Description:    t.Description,
		ProjectId:      t.ProjectId,
		Status:         string(t.Status),
		Priority:       t.Priority,
		Deadline:       t.Deadline,
		EstimatedHours: t.EstimatedHours,
		FileUrl:        t.FileUrl,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type Assignment struct {
	Id     int `json:"id"`
	TaskId int `json:"task_id"`
	UserId int `json:"user_id"`
}

func ComposeAssignment(a domain.Assignment) Assignment {
	return Assignment{Id: a.Id, TaskId: a.TaskId, UserId: a.UserId}
}

type StatusUpdate struct {
	Id                 int       `json:"id"`
	TaskId             int       `json:"task_id"`
	UpdatedBy          int       `json:"updated_by"`
	Status             string    `json:"status"`
	UpdatedAt          time.Time `json:"updated_at"`
	TimeTakenInHours   *int      `json:"time_taken_in_hours"`
	TimeTakenInMinutes *int      `json:"time_taken_in_minutes"`
}

func ComposeStatusUpdate(su domain.StatusUpdate) StatusUpdate {
	return StatusUpdate{
		Id:                 su.Id,
		TaskId:             su.TaskId,
		UpdatedBy:          su.UpdatedBy,
		Status:             string(su.Status),
		UpdatedAt:          su.UpdatedAt,
		TimeTakenInHours:   su.TimeTakenInHours,
		TimeTakenInMinutes: su.TimeTakenInMinutes,
	}
}

// AssignmentSpec is the request body of assignment creation.
type AssignmentSpec struct {
	TaskId int `json:"task_id"`
	UserId int `json:"user_id"`
}

// ReassignSpec is the request body of assignment transfer.
type ReassignSpec struct {
	NewUserId int `json:"new_user_id"`
}

// StatusChange is the request body of a ledger entry edit.
type StatusChange struct {
	Status string `json:"status"`
}
