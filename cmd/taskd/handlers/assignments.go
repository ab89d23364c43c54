package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/errors"
	apitasks "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/tasks"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/coordinator"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils"
)

// parse a path parameter as a positive integer id.
func pathId(c echo.Context, name string) (int, *echo.HTTPError) {
	id, err := parseId(c.Param(name))
	if err != nil {
		return 0, apierr.BadRequest(name+" should be a positive integer", err)
	}
	return id, nil
}

func parseId(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

type assignmentResponse struct {
	Assignment   apitasks.Assignment   `json:"assignment"`
	StatusUpdate apitasks.StatusUpdate `json:"status_update"`
}

func CreateAssignmentHandler(coord *coordinator.Coordinator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := apitasks.AssignmentSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`format request body as {"task_id": number, "user_id": number}`, err)
		}
		if spec.TaskId <= 0 || spec.UserId <= 0 {
			return apierr.BadRequest("task_id and user_id are required", nil)
		}

		assignment, seed, err := coord.CreateAssignment(ctx, spec.TaskId, spec.UserId)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusCreated, assignmentResponse{
			Assignment:   apitasks.ComposeAssignment(assignment),
			StatusUpdate: apitasks.ComposeStatusUpdate(seed),
		})
	}
}

func GetAssignmentHandler(coord *coordinator.Coordinator, taskIdParam string, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		taskId, herr := pathId(c, taskIdParam)
		if herr != nil {
			return herr
		}
		userId, herr := pathId(c, userIdParam)
		if herr != nil {
			return herr
		}

		assignment, err := coord.GetAssignment(ctx, taskId, userId)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, apitasks.ComposeAssignment(assignment))
	}
}

func DeleteAssignmentHandler(coord *coordinator.Coordinator, taskIdParam string, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		taskId, herr := pathId(c, taskIdParam)
		if herr != nil {
			return herr
		}
		userId, herr := pathId(c, userIdParam)
		if herr != nil {
			return herr
		}

		if err := coord.DeleteAssignment(ctx, taskId, userId); err != nil {
			return apierr.FromError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func ReassignHandler(coord *coordinator.Coordinator, taskIdParam string, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		taskId, herr := pathId(c, taskIdParam)
		if herr != nil {
			return herr
		}
		oldUserId, herr := pathId(c, userIdParam)
		if herr != nil {
			return herr
		}

		spec := apitasks.ReassignSpec{}
		if err := c.Bind(&spec); err != nil {
			return apierr.BadRequest(`format request body as {"new_user_id": number}`, err)
		}
		if spec.NewUserId <= 0 {
			return apierr.BadRequest("new_user_id is required", nil)
		}

		assignment, seed, err := coord.Reassign(ctx, taskId, oldUserId, spec.NewUserId)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, assignmentResponse{
			Assignment:   apitasks.ComposeAssignment(assignment),
			StatusUpdate: apitasks.ComposeStatusUpdate(seed),
		})
	}
}

func GetUserAssignmentsHandler(coord *coordinator.Coordinator, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userId, herr := pathId(c, userIdParam)
		if herr != nil {
			return herr
		}

		tasks, err := coord.ListUserAssignments(ctx, userId)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, utils.Map(tasks, apitasks.ComposeTask))
	}
}
