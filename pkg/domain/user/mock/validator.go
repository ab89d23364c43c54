// this package provide "mock" implementation of the user validator for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain/user"
)

type MockValidator struct {
	Calls []int
	Impl  struct {
		Lookup func(ctx context.Context, userId int) (domain.UserProfile, user.Outcome, error)
	}
}

var _ user.Validator = &MockValidator{}

func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

func (m *MockValidator) Lookup(ctx context.Context, userId int) (domain.UserProfile, user.Outcome, error) {
	m.Calls = append(m.Calls, userId)
	if m.Impl.Lookup == nil {
		return domain.UserProfile{}, user.Unknown, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Lookup(ctx, userId)
}

// Fixed returns a validator answering Present with the given profiles,
// Absent for any other id.
func Fixed(profiles ...domain.UserProfile) *MockValidator {
	m := NewMockValidator()
	m.Impl.Lookup = func(_ context.Context, userId int) (domain.UserProfile, user.Outcome, error) {
		for _, p := range profiles {
			if p.Id == userId {
				return p, user.Present, nil
			}
		}
		return domain.UserProfile{}, user.Absent, nil
	}
	return m
}
