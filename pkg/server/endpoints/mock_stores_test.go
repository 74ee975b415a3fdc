package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/eczemahub/pkg/model"
)

// MockResourceStore implements store.ResourceStore for testing using testify/mock
type MockResourceStore struct {
	mock.Mock
}

func NewMockResourceStore() *MockResourceStore {
	return &MockResourceStore{}
}

func (m *MockResourceStore) Create(title, description string, category model.Category) (*model.Resource, error) {
	args := m.Called(title, description, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceStore) Get(id uint64) (*model.Resource, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceStore) List() []model.Resource {
	args := m.Called()
	return args.Get(0).([]model.Resource)
}

func (m *MockResourceStore) ListByCategory(category model.Category) []model.Resource {
	args := m.Called(category)
	return args.Get(0).([]model.Resource)
}

func (m *MockResourceStore) Search(query string) []model.Resource {
	args := m.Called(query)
	return args.Get(0).([]model.Resource)
}

func (m *MockResourceStore) Update(id uint64, title, description string, category model.Category) (*model.Resource, error) {
	args := m.Called(id, title, description, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceStore) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockResourceStore) Verify(id uint64, caller string) (*model.Resource, error) {
	args := m.Called(id, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceStore) SetAdmin(caller string) {
	m.Called(caller)
}

func (m *MockResourceStore) Admin() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockResourceStore) Snapshot() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockResourceStore) Restore(blob []byte) error {
	args := m.Called(blob)
	return args.Error(0)
}
