package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	kpool "github.com/Nucmaan/Task-Manager-Backend/pkg/conn/db/postgres/pool"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	dberrs "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors/dberrors/postgres"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/jackc/pgx/v4"
)

type pgTasks struct {
	pool kpool.Pool
}

var _ ktasks.Interface = &pgTasks{}

func New(pool kpool.Pool) ktasks.Interface {
	return &pgTasks{pool: pool}
}

const taskColumns = `
	"id", "title", "description", "project_id", "status", "priority",
	"deadline", "estimated_hours", "file_url", "created_at", "updated_at"
`

func scanTask(row pgx.Row) (domain.Task, error) {
	t := domain.Task{}
	var status string
	err := row.Scan(
		&t.Id, &t.Title, &t.Description, &t.ProjectId, &status, &t.Priority,
		&t.Deadline, &t.EstimatedHours, &t.FileUrl, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.TaskStatus(status)
	return t, nil
}

func (p *pgTasks) Get(ctx context.Context, taskId int) (domain.Task, error) {
	task, err := scanTask(p.pool.QueryRow(
		ctx,
		`select `+taskColumns+` from "tasks" where "id" = $1`,
		taskId,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, dberrs.Missing{Table: "tasks", Identity: strconv.Itoa(taskId)}
		}
		return domain.Task{}, xe.Wrap(err)
	}
	return task, nil
}

func (p *pgTasks) UpdateOnSubmit(
	ctx context.Context, taskId int, status domain.TaskStatus, fileUrl string, at time.Time,
) (domain.Task, error) {
	task, err := scanTask(p.pool.QueryRow(
		ctx,
		`
		update "tasks"
		set "status" = $2, "file_url" = $3, "updated_at" = $4
		where "id" = $1
		returning `+taskColumns,
		taskId, string(status), fileUrl, at,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, dberrs.Missing{Table: "tasks", Identity: strconv.Itoa(taskId)}
		}
		return domain.Task{}, xe.Wrap(err)
	}
	return task, nil
}

func (p *pgTasks) ListByProject(ctx context.Context, projectId int) ([]domain.Task, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+taskColumns+` from "tasks" where "project_id" = $1 order by "created_at" desc`,
		projectId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return tasks, nil
}
