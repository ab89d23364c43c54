// this package provide "mock" implementation of cache client for testing.
package mocks

import (
	"context"
	"errors"

	kcache "github.com/Nucmaan/Task-Manager-Backend/pkg/cache"
)

type MockCacheClient struct {
	Impl struct {
		Get func(ctx context.Context, key string) ([]byte, bool, error)
		Set func(ctx context.Context, key string, val []byte) error
		Del func(ctx context.Context, keys ...string) error
	}
}

var _ kcache.Client = &MockCacheClient{}

func NewMockCacheClient() *MockCacheClient {
	return &MockCacheClient{}
}

func (m *MockCacheClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.Impl.Get == nil {
		return nil, false, errors.New("[MOCK] not implemented")
	}
	return m.Impl.Get(ctx, key)
}

func (m *MockCacheClient) Set(ctx context.Context, key string, val []byte) error {
	if m.Impl.Set == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Set(ctx, key, val)
}

func (m *MockCacheClient) Del(ctx context.Context, keys ...string) error {
	if m.Impl.Del == nil {
		return errors.New("[MOCK] not implemented")
	}
	return m.Impl.Del(ctx, keys...)
}

// InMemory is a map-backed Client for tests that need real get/set behavior.
type InMemory struct {
	Entries map[string][]byte
}

var _ kcache.Client = &InMemory{}

func NewInMemory() *InMemory {
	return &InMemory{Entries: map[string][]byte{}}
}

func (c *InMemory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, ok := c.Entries[key]
	return val, ok, nil
}

func (c *InMemory) Set(ctx context.Context, key string, val []byte) error {
	c.Entries[key] = val
	return nil
}

func (c *InMemory) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.Entries, k)
	}
	return nil
}
