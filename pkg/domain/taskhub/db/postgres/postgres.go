package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kpool "github.com/Nucmaan/Task-Manager-Backend/pkg/conn/db/postgres/pool"
	kassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db"
	kpgassign "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/assignment/db/postgres"
	khistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db"
	kpghistory "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/history/db/postgres"
	kproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db"
	kpgproject "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/project/db/postgres"
	dbInterface "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/taskhub/db"
	ktasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db"
	kpgtasks "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/tasks/db/postgres"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
)

type taskDBPostgres struct {
	pool        *pgxpool.Pool
	tasks       ktasks.Interface
	assignments kassign.Interface
	history     khistory.Interface
	projects    kproject.Interface
}

func New(ctx context.Context, url string) (dbInterface.TaskDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	p := kpool.Wrap(pool)
	return &taskDBPostgres{
		pool:        pool,
		tasks:       kpgtasks.New(p),
		assignments: kpgassign.New(p),
		history:     kpghistory.New(p),
		projects:    kpgproject.New(p),
	}, nil
}

func (t *taskDBPostgres) Tasks() ktasks.Interface {
	return t.tasks
}

func (t *taskDBPostgres) Assignments() kassign.Interface {
	return t.assignments
}

func (t *taskDBPostgres) History() khistory.Interface {
	return t.history
}

func (t *taskDBPostgres) Projects() kproject.Interface {
	return t.projects
}

func (t *taskDBPostgres) Close() error {
	t.pool.Close()
	return nil
}
