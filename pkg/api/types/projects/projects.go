package projects

import (
	"time"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

type Project struct {
	Id           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Deadline     time.Time `json:"deadline"`
	CreatedBy    int       `json:"created_by"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Progress     int       `json:"progress"`
	ProjectImage *string   `json:"project_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ComposeProject(p domain.Project) Project {
	return Project{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Deadline:     p.Deadline,
		CreatedBy:    p.CreatedBy,
		Status:       string(p.Status),
		Priority:     string(p.Priority),
		Progress:     p.Progress,
		ProjectImage: p.ProjectImage,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ProjectSpec is the request body of project creation.
type ProjectSpec struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	CreatedBy    int        `json:"created_by"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Progress     *int       `json:"progress"`
	ProjectImage *string    `json:"project_image"`
}

// ProjectChange is the request body of a project update.
// Absent fields are left as they are.
type ProjectChange struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	Progress     *int       `json:"progress"`
	ProjectImage *string    `json:"project_image"`
}
