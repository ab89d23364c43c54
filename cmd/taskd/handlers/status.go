package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/errors"
	apitasks "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/tasks"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/auth"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/coordinator"
)

type submitResponse struct {
	Task         apitasks.Task         `json:"task"`
	StatusUpdate apitasks.StatusUpdate `json:"status_update"`
}

// SubmitTaskHandler accepts a multipart form with the deliverable under
// "file_url" and the fields "updated_by" and "status". When "updated_by"
// is omitted the authenticated user set by auth.Middleware is used.
func SubmitTaskHandler(coord *coordinator.Coordinator, taskIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		taskId, herr := pathId(c, taskIdParam)
		if herr != nil {
			return herr
		}

		header, err := c.FormFile("file_url")
		if err != nil {
			return apierr.BadRequest(`attach the deliverable as multipart field "file_url"`, err)
		}
		file, err := header.Open()
		if err != nil {
			return apierr.InternalServerError(err)
		}
		defer file.Close()

		req := coordinator.SubmitRequest{
			TaskId:   taskId,
			Status:   c.FormValue("status"),
			Filename: header.Filename,
			Content:  file,
		}
		if updatedBy := c.FormValue("updated_by"); updatedBy != "" {
			id, err := parseId(updatedBy)
			if err != nil {
				return apierr.BadRequest("updated_by should be a positive integer", err)
			}
			req.UpdatedBy = id
		} else if id, ok := c.Get(auth.ContextKeyUserId).(int); ok {
			// no explicit submitter: whoever the bearer token identifies.
			req.UpdatedBy = id
		} else {
			return apierr.BadRequest("updated_by is required", nil)
		}

		task, entry, err := coord.SubmitTask(ctx, req)
		if err != nil {
			return apierr.FromError(err)
		}

		return c.JSON(http.StatusOK, submitResponse{
			Task:         apitasks.ComposeTask(task),
			StatusUpdate: apitasks.ComposeStatusUpdate(entry),
		})
	}
}

func EditStatusUpdateHandler(coord *coordinator.Coordinator, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, herr := pathId(c, idParam)
		if herr != nil {
			return herr
		}

		change := apitasks.StatusChange{}
		if err := c.Bind(&change); err != nil {
			return apierr.BadRequest(`format request body as {"status": string}`, err)
		}

		entry, err := coord.EditStatusUpdate(ctx, id, change.Status)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, apitasks.ComposeStatusUpdate(entry))
	}
}

func GetUserStatusUpdatesHandler(coord *coordinator.Coordinator, userIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userId, herr := pathId(c, userIdParam)
		if herr != nil {
			return herr
		}

		views, err := coord.ListUserStatusUpdates(ctx, userId)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, views)
	}
}

func GetAllStatusUpdatesHandler(coord *coordinator.Coordinator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		views, err := coord.ListAllStatusUpdates(ctx)
		if err != nil {
			return apierr.FromError(err)
		}
		return c.JSON(http.StatusOK, views)
	}
}
