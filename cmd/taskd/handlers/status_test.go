package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Nucmaan/Task-Manager-Backend/cmd/taskd/handlers"
	httptestutil "github.com/Nucmaan/Task-Manager-Backend/internal/testutils/http"
	apitasks "github.com/Nucmaan/Task-Manager-Backend/pkg/api/types/tasks"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/auth"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/coordinator"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
	usermocks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user/mock"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils/pointer"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/utils/try"
)

// build a multipart submission body with a file and form fields.
func submissionBody(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()

	buf := bytes.NewBuffer(nil)
	w := multipart.NewWriter(buf)

	file := try.To(w.CreateFormFile("file_url", "report.pdf")).OrFatal(t)
	if _, err := file.Write([]byte("fake pdf content")); err != nil {
		t.Fatal(err)
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, w.FormDataContentType()
}

func TestSubmitTaskHandler(t *testing.T) {
	t.Run("when a deliverable is sent, it responds 200 with the task and the new ledger entry", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{Id: taskId, Status: domain.Review}, nil
		}
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})
		f.artifacts.Impl.Save = func(filename string, _ io.Reader) (string, error) {
			return "http://localhost:8000/public/fresh-" + filename, nil
		}
		f.tasks.Impl.UpdateOnSubmit = func(_ context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time) (domain.Task, error) {
			return domain.Task{Id: taskId, Status: status, FileUrl: &fileUrl, UpdatedAt: at}, nil
		}
		f.history.Impl.Append = func(_ context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error) {
			return domain.StatusUpdate{
				Id: 42, TaskId: taskId, UpdatedBy: updatedBy, Status: status,
				TimeTakenInHours: pointer.Ref(1), TimeTakenInMinutes: pointer.Ref(30),
			}, nil
		}
		f.reporter.Impl.Track = func(_ context.Context, _ int, _ int, _ domain.TaskStatus) error { return nil }

		body, ctype := submissionBody(t, map[string]string{
			"updated_by": "7",
			"status":     "Completed",
		})
		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/tasks/3/submit", body, httptestutil.ContentType(ctype),
		)
		c.SetPath("/api/tasks/:taskId/submit")
		c.SetParamNames("taskId")
		c.SetParamValues("3")

		testee := handlers.SubmitTaskHandler(f.coordinator(), "taskId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
		actual := struct {
			Task         apitasks.Task         `json:"task"`
			StatusUpdate apitasks.StatusUpdate `json:"status_update"`
		}{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Task.Status != "Completed" {
			t.Errorf("unexpected task status: %s", actual.Task.Status)
		}
		if actual.Task.FileUrl == nil || !strings.HasPrefix(*actual.Task.FileUrl, "http://localhost:8000/public/fresh-") {
			t.Errorf("unexpected file url: %v", actual.Task.FileUrl)
		}
		if actual.StatusUpdate.TimeTakenInHours == nil || *actual.StatusUpdate.TimeTakenInHours != 1 {
			t.Errorf("unexpected metrics: %+v", actual.StatusUpdate)
		}
	})

	t.Run("when the deliverable is sent under a field other than file_url, it responds 400", func(t *testing.T) {
		f := newFixture()

		buf := bytes.NewBuffer(nil)
		w := multipart.NewWriter(buf)
		file := try.To(w.CreateFormFile("file", "report.pdf")).OrFatal(t)
		if _, err := file.Write([]byte("fake pdf content")); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteField("updated_by", "7"); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteField("status", "Completed"); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/tasks/3/submit", buf, httptestutil.ContentType(w.FormDataContentType()),
		)
		c.SetPath("/api/tasks/:taskId/submit")
		c.SetParamNames("taskId")
		c.SetParamValues("3")

		testee := handlers.SubmitTaskHandler(f.coordinator(), "taskId")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})

	t.Run("when updated_by is omitted, the authenticated user is the submitter", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{Id: taskId, Status: domain.Review}, nil
		}
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})
		f.artifacts.Impl.Save = func(filename string, _ io.Reader) (string, error) {
			return "http://localhost:8000/public/fresh-" + filename, nil
		}
		f.tasks.Impl.UpdateOnSubmit = func(_ context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time) (domain.Task, error) {
			return domain.Task{Id: taskId, Status: status, FileUrl: &fileUrl, UpdatedAt: at}, nil
		}
		f.history.Impl.Append = func(_ context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error) {
			return domain.StatusUpdate{Id: 43, TaskId: taskId, UpdatedBy: updatedBy, Status: status}, nil
		}
		f.reporter.Impl.Track = func(_ context.Context, _ int, _ int, _ domain.TaskStatus) error { return nil }

		body, ctype := submissionBody(t, map[string]string{"status": "Completed"})
		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/tasks/3/submit", body, httptestutil.ContentType(ctype),
		)
		c.SetPath("/api/tasks/:taskId/submit")
		c.SetParamNames("taskId")
		c.SetParamValues("3")
		c.Set(auth.ContextKeyUserId, 7)

		testee := handlers.SubmitTaskHandler(f.coordinator(), "taskId")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", respRec.Code)
		}
		actual := struct {
			StatusUpdate apitasks.StatusUpdate `json:"status_update"`
		}{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.StatusUpdate.UpdatedBy != 7 {
			t.Errorf("unexpected submitter: %d", actual.StatusUpdate.UpdatedBy)
		}
	})

	t.Run("when no file is attached, it responds 400", func(t *testing.T) {
		f := newFixture()

		buf := bytes.NewBuffer(nil)
		w := multipart.NewWriter(buf)
		if err := w.WriteField("updated_by", "7"); err != nil {
			t.Fatal(err)
		}
		if err := w.WriteField("status", "Completed"); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/tasks/3/submit", buf, httptestutil.ContentType(w.FormDataContentType()),
		)
		c.SetPath("/api/tasks/:taskId/submit")
		c.SetParamNames("taskId")
		c.SetParamValues("3")

		testee := handlers.SubmitTaskHandler(f.coordinator(), "taskId")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})

	t.Run("when the status is not allowed, it responds 400", func(t *testing.T) {
		f := newFixture()
		f.tasks.Impl.Get = func(_ context.Context, taskId int) (domain.Task, error) {
			return domain.Task{Id: taskId}, nil
		}
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7})

		body, ctype := submissionBody(t, map[string]string{
			"updated_by": "7",
			"status":     "Done",
		})
		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/tasks/3/submit", body, httptestutil.ContentType(ctype),
		)
		c.SetPath("/api/tasks/:taskId/submit")
		c.SetParamNames("taskId")
		c.SetParamValues("3")

		testee := handlers.SubmitTaskHandler(f.coordinator(), "taskId")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})
}

func TestEditStatusUpdateHandler(t *testing.T) {
	t.Run("when the entry exists, it responds 200 with untouched metrics", func(t *testing.T) {
		f := newFixture()
		f.history.Impl.EditInPlace = func(_ context.Context, id int, status domain.TaskStatus) (domain.StatusUpdate, error) {
			return domain.StatusUpdate{
				Id: id, TaskId: 3, UpdatedBy: 7, Status: status,
				TimeTakenInHours: pointer.Ref(2), TimeTakenInMinutes: pointer.Ref(15),
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/status-updates/42",
			strings.NewReader(`{"status": "Review"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/status-updates/:id")
		c.SetParamNames("id")
		c.SetParamValues("42")

		testee := handlers.EditStatusUpdateHandler(f.coordinator(), "id")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := apitasks.StatusUpdate{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Status != "Review" {
			t.Errorf("unexpected status: %s", actual.Status)
		}
		if actual.TimeTakenInHours == nil || *actual.TimeTakenInHours != 2 {
			t.Errorf("metrics should stay untouched: %+v", actual)
		}
	})

	t.Run("when the status is not allowed, it responds 400", func(t *testing.T) {
		f := newFixture()

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/status-updates/42",
			strings.NewReader(`{"status": "Cancelled"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/status-updates/:id")
		c.SetParamNames("id")
		c.SetParamValues("42")

		testee := handlers.EditStatusUpdateHandler(f.coordinator(), "id")
		err := testee(c)
		if herr, ok := err.(*echo.HTTPError); !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %v", err)
		}
	})
}

func TestGetAllStatusUpdatesHandler(t *testing.T) {
	t.Run("it responds 200 with enriched ledger rows", func(t *testing.T) {
		f := newFixture()
		f.validator = usermocks.Fixed(domain.UserProfile{Id: 7, Name: "John Doe"})
		f.history.Impl.ListAll = func(_ context.Context) ([]khistory.Entry, error) {
			return []khistory.Entry{
				{
					StatusUpdate: domain.StatusUpdate{Id: 42, TaskId: 3, UpdatedBy: 7, Status: domain.Completed},
					Task:         khistory.TaskDigest{Title: "write report", Status: domain.Completed, Priority: "High"},
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/status-updates")

		testee := handlers.GetAllStatusUpdatesHandler(f.coordinator())
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := []coordinator.StatusView{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if len(actual) != 1 || actual[0].AssignedUser != "John Doe" || actual[0].Task.Title != "write report" {
			t.Errorf("unexpected views: %+v", actual)
		}
	})
}
