package user

import (
	"context"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
)

// Outcome of a remote existence check.
type Outcome int

const (
	// the user service confirmed the user exists.
	Present Outcome = iota

	// the user service confirmed the user does not exist.
	Absent

	// the user service could not be consulted (unreachable, timeout,
	// malformed response). NOT the same as Absent: the caller may retry,
	// but must not proceed as if the user existed.
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Validator confirms existence of a user owned by the user service.
//
// No local copy of users is authoritative; display fields in the returned
// profile are a live snapshot, valid only for the enclosing operation.
type Validator interface {
	// Lookup performs one bounded remote call.
	//
	// On Present, the profile is populated. On Unknown, err explains why
	// the dependency could not answer. Callers must issue at most one
	// Lookup per distinct user id per logical operation.
	Lookup(ctx context.Context, userId int) (domain.UserProfile, Outcome, error)
}
