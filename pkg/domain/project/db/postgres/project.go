package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	kpool "github.com/Nucmaan/Task-Manager-Backend/pkg/conn/db/postgres/pool"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	dberrs "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors/dberrors/postgres"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/jackc/pgx/v4"
)

type pgProject struct {
	pool  kpool.Pool
	clock func() time.Time
}

var _ kproject.Interface = &pgProject{}

type Option func(*pgProject) *pgProject

// WithClock fixes "now" for updated_at. For testing.
func WithClock(clock func() time.Time) Option {
	return func(p *pgProject) *pgProject {
		p.clock = clock
		return p
	}
}

func New(pool kpool.Pool, options ...Option) kproject.Interface {
	p := &pgProject{pool: pool, clock: time.Now}
	for _, opt := range options {
		p = opt(p)
	}
	return p
}

const projectColumns = `
	"id", "name", "description", "deadline", "created_by", "status",
	"priority", "progress", "project_image", "created_at", "updated_at"
`

func scanProject(row pgx.Row) (domain.Project, error) {
	p := domain.Project{}
	var status, priority string
	err := row.Scan(
		&p.Id, &p.Name, &p.Description, &p.Deadline, &p.CreatedBy, &status,
		&priority, &p.Progress, &p.ProjectImage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}
	p.Status = domain.ProjectStatus(status)
	p.Priority = domain.ProjectPriority(priority)
	return p, nil
}

func (p *pgProject) Get(ctx context.Context, projectId int) (domain.Project, error) {
	project, err := scanProject(p.pool.QueryRow(
		ctx,
		`select `+projectColumns+` from "projects" where "id" = $1`,
		projectId,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, dberrs.Missing{Table: "projects", Identity: strconv.Itoa(projectId)}
		}
		return domain.Project{}, xe.Wrap(err)
	}
	return project, nil
}

func (p *pgProject) GetAll(ctx context.Context) ([]domain.Project, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+projectColumns+` from "projects" order by "created_at" desc`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	return projects, nil
}

func (p *pgProject) Create(ctx context.Context, spec kproject.NewProject) (domain.Project, error) {
	project, err := scanProject(p.pool.QueryRow(
		ctx,
		`
		insert into "projects"
			("name", "description", "deadline", "created_by", "status", "priority", "progress", "project_image")
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning `+projectColumns,
		spec.Name, spec.Description, spec.Deadline, spec.CreatedBy,
		string(spec.Status), string(spec.Priority), spec.Progress, spec.ProjectImage,
	))
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	return project, nil
}

func (p *pgProject) Update(ctx context.Context, projectId int, change kproject.ProjectChange) (domain.Project, error) {
	project, err := scanProject(p.pool.QueryRow(
		ctx,
		`
		update "projects" set
			"name" = coalesce($2, "name"),
			"description" = coalesce($3, "description"),
			"deadline" = coalesce($4, "deadline"),
			"status" = coalesce($5, "status"),
			"priority" = coalesce($6, "priority"),
			"progress" = coalesce($7, "progress"),
			"project_image" = coalesce($8, "project_image"),
			"updated_at" = $9
		where "id" = $1
		returning `+projectColumns,
		projectId,
		change.Name, change.Description, change.Deadline,
		statusOrNil(change.Status), priorityOrNil(change.Priority),
		change.Progress, change.ProjectImage, p.clock(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, dberrs.Missing{Table: "projects", Identity: strconv.Itoa(projectId)}
		}
		return domain.Project{}, xe.Wrap(err)
	}
	return project, nil
}

func (p *pgProject) Delete(ctx context.Context, projectId int) (bool, error) {
	tag, err := p.pool.Exec(
		ctx, `delete from "projects" where "id" = $1`, projectId,
	)
	if err != nil {
		return false, xe.Wrap(err)
	}
	return 0 < tag.RowsAffected(), nil
}

func statusOrNil(s *domain.ProjectStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func priorityOrNil(p *domain.ProjectPriority) *string {
	if p == nil {
		return nil
	}
	v := string(*p)
	return &v
}
