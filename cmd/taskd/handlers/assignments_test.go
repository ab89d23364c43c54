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
	apitasks "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/tasks"
	cachemocks "github.com/Nucmaan/Task-Manager-Backend/pkg/cache/mock"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/coordinator"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	assignmocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db/mock"
	domerr "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors"
	historymocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db/mock"
	taskmocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db/mock"
	usermocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user/mock"
	filemocks "github.com/Nucmaan/Task-Manager-Backend/pkg/files/mock"
	reportmocks "github.com/Nucmaan/Task-Manager-Backend/pkg/report/mock"
)

// mocked dependencies behind a coordinator, for driving handlers.
type fixture struct {
	tasks       *taskmocks.MockTaskInterface
	assignments *assignmocks.MockAssignmentInterface
	history     *historymocks.MockHistoryInterface
	validator   *usermocks.MockValidator
	cache       *cachemocks.InMemory
	reporter    *reportmocks.MockReporter
	artifacts   *filemocks.MockStore
}

func newFixture() *fixture {
	return &fixture{
		tasks:       taskmocks.NewMockTaskInterface(),
		assignments: assignmocks.NewMockAssignmentInterface(),
		history:     historymocks.NewMockHistoryInterface(),
		validator:   usermocks.NewMockValidator(),
		cache:       cachemocks.NewInMemory(),
		reporter:    reportmocks.NewMockReporter(),
		artifacts:   filemocks.NewMockStore(),
	}
}

func (f *fixture) coordinator(options ...coordinator.Option) *coordinator.Coordinator {
	return coordinator.New(
		f.tasks, f.assignments, f.history,
		f.validator, f.cache, f.reporter, f.artifacts,
		log.New(io.Discard, "", 0),
		options...,
	)
}

func TestCreateAssignmentHandler(t *testing.T) {
	t.Run("when the assignment is created, it responds 201 with the seed entry", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{Id: taskId}, nil
		}
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})
		f.assignments.Impl.Create = func(_ context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error) {
			return domain.Assignment{Id: 1, TaskId: taskId, UserId: userId},
				domain.StatusUpdate{Id: 10, TaskId: taskId, UpdatedBy: userId, Status: domain.ToDo},
				nil
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/assignments",
			strings.NewReader(`{"task_id": 3, "user_id": 7}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateAssignmentHandler(f.coordinator())
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
		actual := struct {
			Assignment   apitasks.Assignment   `json:"assignment"`
			StatusUpdate apitasks.StatusUpdate `json:"status_update"`
		}{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Assignment.TaskId != 3 || actual.Assignment.UserId != 7 {
			t.Errorf("unexpected assignment: %+v", actual.Assignment)
		}
		if actual.StatusUpdate.Status != "To Do" {
			t.Errorf("unexpected seed status: %s", actual.StatusUpdate.Status)
		}
		if actual.StatusUpdate.TimeTakenInHours != nil {
			t.Errorf("seed entry should carry no metrics: %+v", actual.StatusUpdate)
		}
	})

	t.Run("when ids are not given, it responds 400", func(t *testing.T) {
		f := newFixture()

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/assignments",
			strings.NewReader(`{"task_id": 3}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateAssignmentHandler(f.coordinator())
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})

	t.Run("when the task does not exist, it responds 404", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{}, domerr.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/assignments",
			strings.NewReader(`{"task_id": 3, "user_id": 7}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateAssignmentHandler(f.coordinator())
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %v", err)
		}
	})

	t.Run("when the user directory is down, it responds 503", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{Id: taskId}, nil
		}
		// validator is unset: lookups answer Unknown.

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/assignments",
			strings.NewReader(`{"task_id": 3, "user_id": 7}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateAssignmentHandler(f.coordinator())
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %v", err)
		}
	})
}

func TestGetUserAssignmentsHandler(t *testing.T) {
	t.Run("when the user exists, it responds 200 with their tasks", func(t *testing.T) {
		f := newFixture()
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7})
		f.assignments.Impl.ListByUser = func(_ context.Context, userId int) ([]domain.Task, error) {
			return []domain.Task{
				{Id: 3, Title: "write report", Status: domain.InProgress},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/users/7/assignments")
		c.SetPath("/api/users/:userId/assignments")
		c.SetParamNames("userId")
		c.SetParamValues("7")

		testee := handlers.GetUserAssignmentsHandler(f.coordinator(), "userId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := []apitasks.Task{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}

		if len(actual) != 1 || actual[0].Title != "write report" {
			t.Errorf("unexpected tasks: %+v", actual)
		}
	})

	t.Run("when the user id is not a number, it responds 400", func(t *testing.T) {
		f := newFixture()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/users/seven/assignments")
		c.SetPath("/api/users/:userId/assignments")
		c.SetParamNames("userId")
		c.SetParamValues("seven")

		testee := handlers.GetUserAssignmentsHandler(f.coordinator(), "userId")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})
}

func TestDeleteAssignmentHandler(t *testing.T) {
	t.Run("when the assignment exists, it responds 204", func(t *testing.T) {
		f := newFixture()
		f.assignments.Impl.Remove = func(_ context.Context, taskId int, userId int) (bool, error) {
			return true, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/assignments/3/7")
		c.SetPath("/api/assignments/:taskId/:userId")
		c.SetParamNames("taskId", "userId")
		c.SetParamValues("3", "7")

		testee := handlers.DeleteAssignmentHandler(f.coordinator(), "taskId", "userId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if respRec.Code != http.StatusNoContent {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
	})

	t.Run("when the assignment does not exist, it responds 404", func(t *testing.T) {
		f := newFixture()
		f.assignments.Impl.Remove = func(_ context.Context, taskId int, userId int) (bool, error) {
			return false, nil
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/assignments/3/7")
		c.SetPath("/api/assignments/:taskId/:userId")
		c.SetParamNames("taskId", "userId")
		c.SetParamValues("3", "7")

		testee := handlers.DeleteAssignmentHandler(f.coordinator(), "taskId", "userId")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %v", err)
		}
	})
}

func TestReassignHandler(t *testing.T) {
	t.Run("when the new user exists, it responds 200 with the new assignment", func(t *testing.T) {
		f := newFixture()
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 9, Name: "Jane Doe"})
		f.assignments.Impl.Reassign = func(_ context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error) {
			return domain.Assignment{Id: 2, TaskId: taskId, UserId: newUserId},
				domain.StatusUpdate{Id: 12, TaskId: taskId, UpdatedBy: newUserId, Status: domain.ToDo},
				nil
		}

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/assignments/3/7",
			strings.NewReader(`{"new_user_id": 9}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/assignments/:taskId/:userId")
		c.SetParamNames("taskId", "userId")
		c.SetParamValues("3", "7")

		testee := handlers.ReassignHandler(f.coordinator(), "taskId", "userId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
		actual := struct {
			Assignment apitasks.Assignment `json:"assignment"`
		}{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Assignment.UserId != 9 {
			t.Errorf("unexpected assignee: %+v", actual.Assignment)
		}
	})
}
