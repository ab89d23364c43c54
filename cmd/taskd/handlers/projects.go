package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/errors"
	apiprojects "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/projects"
	apitasks "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/tasks"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils"
)

func CreateProjectHandler(svc *project.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apiprojects.ProjectSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest("request body is not a valid project", err)
		}

		in := project.NewProjectSpec{
			Name:         spec.Name,
			Description:  spec.Description,
			CreatedBy:    spec.CreatedBy,
			Status:       spec.Status,
			Priority:     spec.Priority,
			Progress:     spec.Progress,
			ProjectImage: spec.ProjectImage,
		}
		if spec.Deadline != nil {
			in.Deadline = *spec.Deadline
		}

		created, err := svc.Create(ctx, in)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusCreated, apiprojects.ComposeProject(created))
	}
}

func GetProjectsHandler(svc *project.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		details, err := svc.GetAll(ctx)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, details)
	}
}

func GetProjectHandler(svc *project.Service, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		projectId, herr := pathId(c, idParam)
		if herr != nil {
			return herr
		}

		detail, err := svc.Get(ctx, projectId)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, detail)
	}
}

func UpdateProjectHandler(svc *project.Service, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		projectId, herr := pathId(c, idParam)
		if herr != nil {
			return herr
		}

		body := apiprojects.ProjectChange{}
		if err := c.Bind(&body); err != nil {
			return apierr.BadRequest("request body is not a valid project change", err)
		}

		updated, err := svc.Update(ctx, projectId, composeChange(body))
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, apiprojects.ComposeProject(updated))
	}
}

func DeleteProjectHandler(svc *project.Service, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		projectId, herr := pathId(c, idParam)
		if herr != nil {
			return herr
		}

		if err := svc.Delete(ctx, projectId); err != nil {
			return apierr.FromError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func GetProjectTasksHandler(tasks ktasks.Interface, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		projectId, herr := pathId(c, idParam)
		if herr != nil {
			return herr
		}

		found, err := tasks.ListByProject(ctx, projectId)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, utils.Map(found, apitasks.ComposeTask))
	}
}

func composeChange(body apiprojects.ProjectChange) kproject.ProjectChange {
	change := kproject.ProjectChange{
		Name:         body.Name,
		Description:  body.Description,
		Progress:     body.Progress,
		ProjectImage: body.ProjectImage,
	}
	if body.Deadline != nil {
		deadline := *body.Deadline
		change.Deadline = &deadline
	}
	if body.Status != nil {
		status := domain.ProjectStatus(*body.Status)
		change.Status = &status
	}
	if body.Priority != nil {
		priority := domain.ProjectPriority(*body.Priority)
		change.Priority = &priority
	}
	return change
}
