// Package coordinator orchestrates assignment, status ledger, cache and
// side-effect components into the operation surface of the service.
//
// Ordering discipline shared by every operation:
//
//  1. input validation, then local existence checks, then remote validation.
//     Remote calls cannot be rolled back, so nothing is written before all
//     checks pass.
//  2. store writes.
//  3. synchronous cache invalidation, before the response is returned.
//  4. fire-and-forget side effects (artifact cleanup, performance report):
//     failures are logged, never surfaced.
package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	kcache "github.com/Nucmaan/Task-Manager-Backend/pkg/cache"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	kassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db"
	domerr "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/files"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/report"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
)

type Coordinator struct {
	tasks       ktasks.Interface
	assignments kassign.Interface
	history     khistory.Interface
	validator   user.Validator
	cache       kcache.Client
	reporter    report.Reporter
	artifacts   files.Store
	logger      *log.Logger
	clock       func() time.Time
}

type Option func(*Coordinator) *Coordinator

// WithClock fixes "now" for the task row's updated_at. For testing.
func WithClock(clock func() time.Time) Option {
	return func(c *Coordinator) *Coordinator {
		c.clock = clock
		return c
	}
}

func New(
	tasks ktasks.Interface,
	assignments kassign.Interface,
	history khistory.Interface,
	validator user.Validator,
	cache kcache.Client,
	reporter report.Reporter,
	artifacts files.Store,
	logger *log.Logger,
	options ...Option,
) *Coordinator {
	c := &Coordinator{
		tasks:       tasks,
		assignments: assignments,
		history:     history,
		validator:   validator,
		cache:       cache,
		reporter:    reporter,
		artifacts:   artifacts,
		logger:      logger,
		clock:       time.Now,
	}
	for _, opt := range options {
		c = opt(c)
	}
	return c
}

// requireUser is the validation gate for writes: the operation may proceed
// only on Present. At most one Lookup per distinct user id per operation.
func (c *Coordinator) requireUser(ctx context.Context, userId int) (domain.UserProfile, error) {
	profile, outcome, err := c.validator.Lookup(ctx, userId)
	switch outcome {
	case user.Present:
		return profile, nil
	case user.Absent:
		return domain.UserProfile{}, fmt.Errorf("user %d: %w", userId, domerr.ErrMissing)
	default:
		if err != nil {
			c.logger.Printf("user lookup failed for user %d: %s", userId, err)
		}
		return domain.UserProfile{}, fmt.Errorf("user %d: %w", userId, domerr.ErrUnavailable)
	}
}

// invalidateStatus drops the ledger snapshots an operation can stale.
// Runs synchronously: a response must not race its own invalidation.
func (c *Coordinator) invalidateStatus(ctx context.Context, userIds ...int) error {
	keys := []string{kcache.KeyStatusUpdates()}
	for _, id := range userIds {
		keys = append(keys, kcache.KeyUserStatusUpdates(id))
	}
	if err := c.cache.Del(ctx, keys...); err != nil {
		return xe.WrapWithNote("cache invalidation failed", err)
	}
	return nil
}

func (c *Coordinator) CreateAssignment(ctx context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error) {
	if _, err := c.tasks.Get(ctx, taskId); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}
	if _, err := c.requireUser(ctx, userId); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}

	assignment, seed, err := c.assignments.Create(ctx, taskId, userId)
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}

	if err := c.invalidateStatus(ctx, userId); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}
	return assignment, seed, nil
}

func (c *Coordinator) GetAssignment(ctx context.Context, taskId int, userId int) (domain.Assignment, error) {
	return c.assignments.Get(ctx, taskId, userId)
}

func (c *Coordinator) DeleteAssignment(ctx context.Context, taskId int, userId int) error {
	removed, err := c.assignments.Remove(ctx, taskId, userId)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("assignment (task %d, user %d): %w", taskId, userId, domerr.ErrMissing)
	}
	return c.invalidateStatus(ctx, userId)
}

func (c *Coordinator) Reassign(ctx context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error) {
	if _, err := c.requireUser(ctx, newUserId); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}

	assignment, seed, err := c.assignments.Reassign(ctx, taskId, oldUserId, newUserId)
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}

	if err := c.invalidateStatus(ctx, newUserId); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, err
	}
	return assignment, seed, nil
}

func (c *Coordinator) ListUserAssignments(ctx context.Context, userId int) ([]domain.Task, error) {
	if _, err := c.requireUser(ctx, userId); err != nil {
		return nil, err
	}
	return c.assignments.ListByUser(ctx, userId)
}

// SubmitRequest carries the inputs of a task submission.
type SubmitRequest struct {
	TaskId    int
	UpdatedBy int
	Status    string

	// the uploaded artifact.
	Filename string
	Content  io.Reader
}

// SubmitTask records a deliverable: it stores the artifact, moves the task
// to the submitted status and appends the transition to the ledger.
func (c *Coordinator) SubmitTask(ctx context.Context, req SubmitRequest) (domain.Task, domain.StatusUpdate, error) {
	if req.Content == nil || req.Filename == "" {
		return domain.Task{}, domain.StatusUpdate{}, fmt.Errorf("%w: file is required", domerr.ErrInvalid)
	}
	if req.Status == "" {
		return domain.Task{}, domain.StatusUpdate{}, fmt.Errorf("%w: status is required", domerr.ErrInvalid)
	}
	status, err := domain.AsTaskStatus(req.Status)
	if err != nil {
		return domain.Task{}, domain.StatusUpdate{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
	}

	task, err := c.tasks.Get(ctx, req.TaskId)
	if err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}
	if _, err := c.requireUser(ctx, req.UpdatedBy); err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}

	fileUrl, err := c.artifacts.Save(req.Filename, req.Content)
	if err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}

	// the previous deliverable is replaced; losing the cleanup is acceptable,
	// losing the submission is not.
	if task.FileUrl != nil {
		if err := c.artifacts.Remove(*task.FileUrl); err != nil {
			c.logger.Printf("cannot delete old artifact %s of task %d: %s", *task.FileUrl, task.Id, err)
		}
	}

	updated, err := c.tasks.UpdateOnSubmit(ctx, req.TaskId, status, fileUrl, c.clock())
	if err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}

	entry, err := c.history.Append(ctx, req.TaskId, req.UpdatedBy, status)
	if err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}

	if err := c.invalidateStatus(ctx, req.UpdatedBy); err != nil {
		return domain.Task{}, domain.StatusUpdate{}, err
	}

	go func(userId int, elapsed int, status domain.TaskStatus) {
		// detached from the request: the report outlives (and never blocks) it.
		if err := c.reporter.Track(context.Background(), userId, elapsed, status); err != nil {
			c.logger.Printf("performance report failed for user %d: %s", userId, err)
		}
	}(req.UpdatedBy, entry.ElapsedMinutes(), status)

	return updated, entry, nil
}

func (c *Coordinator) EditStatusUpdate(ctx context.Context, id int, status string) (domain.StatusUpdate, error) {
	st, err := domain.AsTaskStatus(status)
	if err != nil {
		return domain.StatusUpdate{}, fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
	}

	entry, err := c.history.EditInPlace(ctx, id, st)
	if err != nil {
		return domain.StatusUpdate{}, err
	}

	if err := c.invalidateStatus(ctx, entry.UpdatedBy); err != nil {
		return domain.StatusUpdate{}, err
	}
	return entry, nil
}

// TaskView is the task digest attached to a ledger listing row.
type TaskView struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
}

// StatusView is one ledger row as listed: the entry, its task, and the
// live display attributes of whoever updated it. This is the shape cached
// under "status_updates" / "status_updates:user:{id}".
type StatusView struct {
	Id                 int        `json:"id"`
	TaskId             int        `json:"task_id"`
	UpdatedBy          int        `json:"updated_by"`
	Status             string     `json:"status"`
	UpdatedAt          time.Time  `json:"updated_at"`
	TimeTakenInHours   *int       `json:"time_taken_in_hours"`
	TimeTakenInMinutes *int       `json:"time_taken_in_minutes"`
	Task               TaskView   `json:"task"`
	AssignedUser       string     `json:"assigned_user"`
	ProfileImage       *string    `json:"profile_image"`
}

func (c *Coordinator) ListUserStatusUpdates(ctx context.Context, userId int) ([]StatusView, error) {
	profile, err := c.requireUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	key := kcache.KeyUserStatusUpdates(userId)
	if views, ok := c.cachedViews(ctx, key); ok {
		return views, nil
	}

	entries, err := c.history.ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	// the gate already fetched this user. Do not look them up twice.
	views := c.composeViews(ctx, entries, map[int]domain.UserProfile{userId: profile})
	c.populateViews(ctx, key, views)
	return views, nil
}

func (c *Coordinator) ListAllStatusUpdates(ctx context.Context) ([]StatusView, error) {
	key := kcache.KeyStatusUpdates()
	if views, ok := c.cachedViews(ctx, key); ok {
		return views, nil
	}

	entries, err := c.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := c.composeViews(ctx, entries, nil)
	c.populateViews(ctx, key, views)
	return views, nil
}

func (c *Coordinator) cachedViews(ctx context.Context, key string) ([]StatusView, bool) {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Printf("cache read failed for %s: %s", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	views := []StatusView{}
	if err := json.Unmarshal(raw, &views); err != nil {
		c.logger.Printf("broken cache entry for %s, falling back to store", key)
		return nil, false
	}
	return views, true
}

// composeViews joins the live user directory onto ledger entries.
// One lookup per distinct updated_by; non-Present users show a placeholder,
// reads never fail on enrichment. Profiles in known are trusted as Present.
func (c *Coordinator) composeViews(ctx context.Context, entries []khistory.Entry, known map[int]domain.UserProfile) []StatusView {
	type looked struct {
		profile domain.UserProfile
		ok      bool
	}
	profiles := map[int]looked{}
	for id, p := range known {
		profiles[id] = looked{profile: p, ok: true}
	}

	views := make([]StatusView, 0, len(entries))
	for _, e := range entries {
		view := StatusView{
			Id:                 e.Id,
			TaskId:             e.TaskId,
			UpdatedBy:          e.UpdatedBy,
			Status:             string(e.Status),
			UpdatedAt:          e.UpdatedAt,
			TimeTakenInHours:   e.TimeTakenInHours,
			TimeTakenInMinutes: e.TimeTakenInMinutes,
			Task: TaskView{
				Title:       e.Task.Title,
				Description: e.Task.Description,
				Status:      string(e.Task.Status),
				Priority:    e.Task.Priority,
				Deadline:    e.Task.Deadline,
				CreatedAt:   e.Task.CreatedAt,
			},
			AssignedUser: "Unknown User",
		}

		l, ok := profiles[e.UpdatedBy]
		if !ok {
			profile, outcome, err := c.validator.Lookup(ctx, e.UpdatedBy)
			if err != nil {
				c.logger.Printf("user lookup failed for user %d: %s", e.UpdatedBy, err)
			}
			l = looked{profile: profile, ok: outcome == user.Present}
			profiles[e.UpdatedBy] = l
		}
		if l.ok {
			view.AssignedUser = l.profile.Name
			view.ProfileImage = l.profile.ProfileImage
		}

		views = append(views, view)
	}
	return views
}

func (c *Coordinator) populateViews(ctx context.Context, key string, views []StatusView) {
	raw, err := json.Marshal(views)
	if err != nil {
		c.logger.Printf("cannot serialize cache entry for %s: %s", key, err)
		return
	}
	if err := c.cache.Set(ctx, key, raw); err != nil {
		c.logger.Printf("cache populate failed for %s: %s", key, err)
	}
}
