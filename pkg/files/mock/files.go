// this package provide "mock" implementation of the artifact store for testing.
package mocks

import (
	"errors"
	"io"
	"sync"

	"github.com/Nucmaan/Task-Manager-Backend/pkg/files"
)

type MockStore struct {
	mu      sync.Mutex
	Saved   []string
	Removed []string
	Impl    struct {
		Save   func(filename string, content io.Reader) (string, error)
		Remove func(url string) error
	}
}

var _ files.Store = &MockStore{}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(filename string, content io.Reader) (string, error) {
	m.mu.Lock()
	m.Saved = append(m.Saved, filename)
	m.mu.Unlock()
	if m.Impl.Save == nil {
		return "", errors.New("[MOCK] not implemented")
	}
	return m.Impl.Save(filename, content)
}

func (m *MockStore) Remove(url string) error {
	m.mu.Lock()
	m.Removed = append(m.Removed, url)
	m.mu.Unlock()
	if m.Impl.Remove == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Remove(url)
}
