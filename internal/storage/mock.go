package storage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/noshow/internal/domain"
)

// MockStore is a testify mock implementation of Store.
//
// Example usage:
//
//	store := new(MockStore)
//	store.On("Add", mock.Anything, mock.AnythingOfType("domain.Record")).Return(int64(1), nil)
//
//	id, err := store.Add(ctx, record)
//	store.AssertExpectations(t)
type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

// Add returns a mocked record ID.
func (m *MockStore) Add(ctx context.Context, r domain.Record) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

// List returns mocked records.
func (m *MockStore) List(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.Record)
	return records, args.Error(1)
}

// Get returns a mocked record.
func (m *MockStore) Get(ctx context.Context, id int64) (domain.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Record), args.Error(1)
}

// Delete returns a mocked error.
func (m *MockStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Clear returns a mocked count of removed records.
func (m *MockStore) Clear(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Close returns a mocked error.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
