// this package provide "mock" implementation of the performance reporter for testing.
package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/domain"
	"github.com/Nucmaan/Task-Manager-Backend/pkg/report"
)

type TrackCall struct {
	UserId         int
	ElapsedMinutes int
	Status         domain.TaskStatus
}

type MockReporter struct {
	mu    sync.Mutex
	Calls []TrackCall
	Impl  struct {
		Track func(ctx context.Context, userId int, elapsedMinutes int, status domain.TaskStatus) error
	}
}

var _ report.Reporter = &MockReporter{}

func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

func (m *MockReporter) Track(ctx context.Context, userId int, elapsedMinutes int, status domain.TaskStatus) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, TrackCall{UserId: userId, ElapsedMinutes: elapsedMinutes, Status: status})
	m.mu.Unlock()
	if m.Impl.Track == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Track(ctx, userId, elapsedMinutes, status)
}

// Tracked returns a copy of recorded calls. Safe against the coordinator's
// asynchronous Track goroutine.
func (m *MockReporter) Tracked() []TrackCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TrackCall{}, m.Calls...)
}
