package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Nucmaan/Task-Manager-Backend/cmd/taskd/handlers"
	httptestutil "github.com/Nucmaan/Task-Manager-Backend/internal/testutils/http"
	apiprojects "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/projects"
	cachemocks "github.com/Nucmaan/Task-Manager-Backend/pkg/cache/mock"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	domerr "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	projmocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db/mock"
	taskmocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db/mock"
	usermocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user/mock"
)

func projectService(store *projmocks.MockProjectInterface, validator *usermocks.MockValidator) *project.Service {
	return project.New(
		store, cachemocks.NewInMemory(), validator,
		log.New(io.Discard, "", 0),
	)
}

func TestCreateProjectHandler(t *testing.T) {
	t.Run("when the project is valid, it responds 201", func(t *testing.T) {
		store := projmocks.NewMockProjectInterface()
		store.Impl.Create = func(_ context.Context, spec kproject.NewProject) (domain.Project, error) {
			return domain.Project{
				Id: 1, Name: spec.Name, Status: spec.Status, Priority: spec.Priority, CreatedBy: spec.CreatedBy,
			}, nil
		}
		validator := usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/projects",
			strings.NewReader(`{
				"name": "website relaunch",
				"description": "rebuild the landing pages",
				"deadline": "2024-06-01T00:00:00Z",
				"created_by": 7
			}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateProjectHandler(projectService(store, validator))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
		actual := apiprojects.Project{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Name != "website relaunch" || actual.Status != "Pending" || actual.Priority != "Medium" {
			t.Errorf("unexpected project: %+v", actual)
		}
	})

	t.Run("when required fields are missing, it responds 400", func(t *testing.T) {
		testee := handlers.CreateProjectHandler(
			projectService(projmocks.NewMockProjectInterface(), usermocks.NewMockValidator()),
		)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/projects",
			strings.NewReader(`{"name": "website relaunch"}`),
			httptestutil.ContentType("application/json"),
		)

		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})

	t.Run("when the creator is absent, it responds 404", func(t *testing.T) {
		testee := handlers.CreateProjectHandler(
			projectService(projmocks.NewMockProjectInterface(), usermocks.Fixed()),
		)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/projects",
			strings.NewReader(`{
				"name": "website relaunch",
				"description": "rebuild the landing pages",
				"deadline": "2024-06-01T00:00:00Z",
				"created_by": 7
			}`),
			httptestutil.ContentType("application/json"),
		)

		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %v", err)
		}
	})
}

func TestGetProjectHandler(t *testing.T) {
	t.Run("when the project exists, it responds 200 with creator attributes", func(t *testing.T) {
		store := projmocks.NewMockProjectInterface()
		store.Impl.Get = func(_ context.Context, projectId int) (domain.Project, error) {
			return domain.Project{Id: projectId, Name: "website relaunch", CreatedBy: 7}, nil
		}
		validator := usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/projects/1")
		c.SetPath("/api/projects/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		testee := handlers.GetProjectHandler(projectService(store, validator), "id")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := project.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Id != 1 || actual.CreatorName != "John Doe" {
			t.Errorf("unexpected detail: %+v", actual)
		}
	})

	t.Run("when the project does not exist, it responds 404", func(t *testing.T) {
		store := projmocks.NewMockProjectInterface()
		store.Impl.Get = func(_ context.Context, projectId int) (domain.Project, error) {
			return domain.Project{}, domerr.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/projects/99")
		c.SetPath("/api/projects/:id")
		c.SetParamNames("id")
		c.SetParamValues("99")

		testee := handlers.GetProjectHandler(projectService(store, usermocks.NewMockValidator()), "id")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %v", err)
		}
	})
}

func TestGetProjectTasksHandler(t *testing.T) {
	t.Run("it responds 200 with the project's tasks", func(t *testing.T) {
		tasks := taskmocks.NewMockTaskInterface()
		tasks.Impl.ListByProject = func(_ context.Context, projectId int) ([]domain.Task, error) {
			return []domain.Task{
				{Id: 3, Title: "write report", ProjectId: projectId, Status: domain.InProgress},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/projects/1/tasks")
		c.SetPath("/api/projects/:id/tasks")
		c.SetParamNames("id")
		c.SetParamValues("1")

		testee := handlers.GetProjectTasksHandler(tasks, "id")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if respRec.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
	})
}
