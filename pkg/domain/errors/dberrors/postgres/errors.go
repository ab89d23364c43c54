package postgres

import (
	"errors"
	"fmt"

	domerr "github.com/Nucmaan/Task-Manager-Backend/pkg/domain/errors"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

// requested data is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s ", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return domerr.ErrMissing
}

// requested data is found too much.
type TooMuch struct {
	Table    string
	Identity string
	Expected int
}

var _ error = TooMuch{}

func (t TooMuch) Error() string {
	return fmt.Sprintf(
		"%s is found in %s more than %d times",
		t.Identity, t.Table, t.Expected,
	)
}

func (t TooMuch) Unwrap() error {
	return domerr.ErrTooMuch
}

// AsMissingReference converts a foreign key violation into Missing
// against the referenced table.
//
// `task_assignments` and `task_status_updates` reference `tasks(id)`;
// an insert rejected by that constraint means the task does not exist.
func AsMissingReference(err error, table string, identity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return Missing{Table: table, Identity: identity}
	}
	return err
}
