package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	kpool "github.com/Nucmaan/Task-Manager-Backend/pkg/conn/db/postgres/pool"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	dberrs "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors/dberrors/postgres"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/jackc/pgx/v4"
)

type pgHistory struct {
	pool  kpool.Pool
	clock func() time.Time
}

var _ khistory.Interface = &pgHistory{}

type Option func(*pgHistory) *pgHistory

// WithClock fixes "now" for appended entries. For testing.
func WithClock(clock func() time.Time) Option {
	return func(p *pgHistory) *pgHistory {
		p.clock = clock
		return p
	}
}

func New(pool kpool.Pool, options ...Option) khistory.Interface {
	p := &pgHistory{pool: pool, clock: time.Now}
	for _, opt := range options {
		p = opt(p)
	}
	return p
}

func (p *pgHistory) Append(ctx context.Context, taskId int, updatedBy int, status domain.TaskStatus) (domain.StatusUpdate, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.StatusUpdate{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	// hold the task row: concurrent appends for the same task queue up here,
	// so each one reads a committed "most recent" entry.
	var lockedTaskId int
	err = tx.QueryRow(
		ctx, `select "id" from "tasks" where "id" = $1 for update`, taskId,
	).Scan(&lockedTaskId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StatusUpdate{}, dberrs.Missing{Table: "tasks", Identity: strconv.Itoa(taskId)}
		}
		return domain.StatusUpdate{}, xe.Wrap(err)
	}

	now := p.clock()

	var hours, minutes *int
	var lastUpdatedAt time.Time
	err = tx.QueryRow(
		ctx,
		`
		select "updated_at" from "task_status_updates"
		where "task_id" = $1
		order by "updated_at" desc
		limit 1
		`,
		taskId,
	).Scan(&lastUpdatedAt)
	switch {
	case err == nil:
		h, m := domain.TimeTakenBetween(lastUpdatedAt, now)
		hours, minutes = &h, &m
	case errors.Is(err, pgx.ErrNoRows):
		// first entry of the task: metrics stay null
	default:
		return domain.StatusUpdate{}, xe.Wrap(err)
	}

	entry := domain.StatusUpdate{
		TaskId:             taskId,
		UpdatedBy:          updatedBy,
		Status:             status,
		TimeTakenInHours:   hours,
		TimeTakenInMinutes: minutes,
	}
	err = tx.QueryRow(
		ctx,
		`
		insert into "task_status_updates"
			("task_id", "updated_by", "status", "updated_at", "time_taken_in_hours", "time_taken_in_minutes")
		values ($1, $2, $3, $4, $5, $6)
		returning "id", "updated_at"
		`,
		taskId, updatedBy, string(status), now, hours, minutes,
	).Scan(&entry.Id, &entry.UpdatedAt)
	if err != nil {
		return domain.StatusUpdate{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.StatusUpdate{}, xe.Wrap(err)
	}
	return entry, nil
}

func (p *pgHistory) EditInPlace(ctx context.Context, id int, status domain.TaskStatus) (domain.StatusUpdate, error) {
	entry := domain.StatusUpdate{}
	var statusStr string
	err := p.pool.QueryRow(
		ctx,
		`
		update "task_status_updates"
		set "status" = $2, "updated_at" = $3
		where "id" = $1
		returning
			"id", "task_id", "updated_by", "status", "updated_at",
			"time_taken_in_hours", "time_taken_in_minutes"
		`,
		id, string(status), p.clock(),
	).Scan(
		&entry.Id, &entry.TaskId, &entry.UpdatedBy, &statusStr, &entry.UpdatedAt,
		&entry.TimeTakenInHours, &entry.TimeTakenInMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StatusUpdate{}, dberrs.Missing{
				Table: "task_status_updates", Identity: strconv.Itoa(id),
			}
		}
		return domain.StatusUpdate{}, xe.Wrap(err)
	}
	entry.Status = domain.TaskStatus(statusStr)
	return entry, nil
}

const entryColumns = `
	"su"."id", "su"."task_id", "su"."updated_by", "su"."status", "su"."updated_at",
	"su"."time_taken_in_hours", "su"."time_taken_in_minutes",
	"t"."title", "t"."description", "t"."status", "t"."priority", "t"."deadline", "t"."created_at"
`

func scanEntries(rows pgx.Rows) ([]khistory.Entry, error) {
	entries := []khistory.Entry{}
	for rows.Next() {
		e := khistory.Entry{}
		var entryStatus, taskStatus string
		if err := rows.Scan(
			&e.Id, &e.TaskId, &e.UpdatedBy, &entryStatus, &e.UpdatedAt,
			&e.TimeTakenInHours, &e.TimeTakenInMinutes,
			&e.Task.Title, &e.Task.Description, &taskStatus, &e.Task.Priority,
			&e.Task.Deadline, &e.Task.CreatedAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		e.Status = domain.TaskStatus(entryStatus)
		e.Task.Status = domain.TaskStatus(taskStatus)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return entries, nil
}

func (p *pgHistory) ListByUser(ctx context.Context, userId int) ([]khistory.Entry, error) {
	rows, err := p.pool.Query(
		ctx,
		`
		select `+entryColumns+`
		from "task_status_updates" as "su"
		inner join "tasks" as "t" on "t"."id" = "su"."task_id"
		where "su"."updated_by" = $1
		order by "su"."updated_at" desc
		`,
		userId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (p *pgHistory) ListAll(ctx context.Context) ([]khistory.Entry, error) {
	rows, err := p.pool.Query(
		ctx,
		`
		select `+entryColumns+`
		from "task_status_updates" as "su"
		inner join "tasks" as "t" on "t"."id" = "su"."task_id"
		order by "su"."updated_at" desc
		`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()
	return scanEntries(rows)
}
