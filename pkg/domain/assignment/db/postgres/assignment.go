package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	kpool "github.com/Nucmaan/Task-Manager-Backend/pkg/conn/db/postgres/pool"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	kassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db"
	dberrs "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors/dberrors/postgres"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/jackc/pgx/v4"
)

type pgAssignment struct {
	pool  kpool.Pool
	clock func() time.Time
}

var _ kassign.Interface = &pgAssignment{}

type Option func(*pgAssignment) *pgAssignment

// WithClock fixes "now" for seeded ledger entries. For testing.
func WithClock(clock func() time.Time) Option {
	return func(p *pgAssignment) *pgAssignment {
		p.clock = clock
		return p
	}
}

func New(pool kpool.Pool, options ...Option) kassign.Interface {
	p := &pgAssignment{pool: pool, clock: time.Now}
	for _, opt := range options {
		p = opt(p)
	}
	return p
}

// insert the "To Do" seed entry for a (re)assigned task.
// time-taken metrics stay null: the seed opens history, it does not advance it.
func seedStatus(ctx context.Context, tx kpool.Tx, taskId int, userId int, at time.Time) (domain.StatusUpdate, error) {
	seed := domain.StatusUpdate{TaskId: taskId, UpdatedBy: userId, Status: domain.ToDo}
	err := tx.QueryRow(
		ctx,
		`
		insert into "task_status_updates" ("task_id", "updated_by", "status", "updated_at")
		values ($1, $2, $3, $4)
		returning "id", "updated_at"
		`,
		taskId, userId, string(domain.ToDo), at,
	).Scan(&seed.Id, &seed.UpdatedAt)
	if err != nil {
		return domain.StatusUpdate{}, err
	}
	return seed, nil
}

func (p *pgAssignment) Create(ctx context.Context, taskId int, userId int) (domain.Assignment, domain.StatusUpdate, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	assignment := domain.Assignment{TaskId: taskId, UserId: userId}
	err = tx.QueryRow(
		ctx,
		`
		insert into "task_assignments" ("task_id", "user_id")
		values ($1, $2)
		returning "id"
		`,
		taskId, userId,
	).Scan(&assignment.Id)
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{},
			dberrs.AsMissingReference(xe.Wrap(err), "tasks", strconv.Itoa(taskId))
	}

	seed, err := seedStatus(ctx, tx, taskId, userId, p.clock())
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}
	return assignment, seed, nil
}

func (p *pgAssignment) Get(ctx context.Context, taskId int, userId int) (domain.Assignment, error) {
	assignment := domain.Assignment{}
	err := p.pool.QueryRow(
		ctx,
		`
		select "id", "task_id", "user_id" from "task_assignments"
		where "task_id" = $1 and "user_id" = $2
		limit 1
		`,
		taskId, userId,
	).Scan(&assignment.Id, &assignment.TaskId, &assignment.UserId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assignment{}, dberrs.Missing{
				Table:    "task_assignments",
				Identity: fmt.Sprintf("(task %d, user %d)", taskId, userId),
			}
		}
		return domain.Assignment{}, xe.Wrap(err)
	}
	return assignment, nil
}

func (p *pgAssignment) Reassign(ctx context.Context, taskId int, oldUserId int, newUserId int) (domain.Assignment, domain.StatusUpdate, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	assignment := domain.Assignment{TaskId: taskId, UserId: newUserId}
	err = tx.QueryRow(
		ctx,
		`
		update "task_assignments" set "user_id" = $3
		where "id" in (
			select "id" from "task_assignments"
			where "task_id" = $1 and "user_id" = $2
			limit 1
		)
		returning "id"
		`,
		taskId, oldUserId, newUserId,
	).Scan(&assignment.Id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assignment{}, domain.StatusUpdate{}, dberrs.Missing{
				Table:    "task_assignments",
				Identity: fmt.Sprintf("(task %d, user %d)", taskId, oldUserId),
			}
		}
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}

	seed, err := seedStatus(ctx, tx, taskId, newUserId, p.clock())
	if err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Assignment{}, domain.StatusUpdate{}, xe.Wrap(err)
	}
	return assignment, seed, nil
}

func (p *pgAssignment) Remove(ctx context.Context, taskId int, userId int) (bool, error) {
	tag, err := p.pool.Exec(
		ctx,
		`delete from "task_assignments" where "task_id" = $1 and "user_id" = $2`,
		taskId, userId,
	)
	if err != nil {
		return false, xe.Wrap(err)
	}
	return 0 < tag.RowsAffected(), nil
}

func (p *pgAssignment) ListByUser(ctx context.Context, userId int) ([]domain.Task, error) {
	rows, err := p.pool.Query(
		ctx,
		`
		select
			"t"."id", "t"."title", "t"."description", "t"."project_id",
			"t"."status", "t"."priority", "t"."deadline", "t"."estimated_hours",
			"t"."file_url", "t"."created_at", "t"."updated_at"
		from "task_assignments" as "a"
		inner join "tasks" as "t" on "t"."id" = "a"."task_id"
		where "a"."user_id" = $1
		`,
		userId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t := domain.Task{}
		var status string
		if err := rows.Scan(
			&t.Id, &t.Title, &t.Description, &t.ProjectId, &status, &t.Priority,
			&t.Deadline, &t.EstimatedHours, &t.FileUrl, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		t.Status = domain.TaskStatus(status)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return tasks, nil
}
