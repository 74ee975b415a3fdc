package memory

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/doodlesbykumbi/eczemahub/pkg/model"
	"github.com/doodlesbykumbi/eczemahub/pkg/store"
)

// Store is an in-process resource store. Safe for concurrent use; a
// single RWMutex serializes all operations. Returned resources are
// copies, so callers cannot mutate store state out-of-band.
type Store struct {
	mu        sync.RWMutex
	resources map[uint64]model.Resource
	nextID    uint64
	admin     string // caller login; empty means no admin set
	now       func() uint64
}

var _ store.ResourceStore = (*Store)(nil)

// NewStore constructs an empty store with the id counter at 1 and no
// admin set.
func NewStore() *Store {
	return &Store{
		resources: make(map[uint64]model.Resource),
		nextID:    1,
		now: func() uint64 {
			return uint64(time.Now().Unix())
		},
	}
}

// validate checks the title and description length bounds, in runes.
// It runs before any lookup or mutation in Create and Update.
func validate(title, description string) error {
	if n := utf8.RuneCountInString(title); n < model.TitleMinLen || n > model.TitleMaxLen {
		return &store.ValidationError{
			Field:   "title",
			Message: "Title must be 1-100 characters long.",
		}
	}
	if n := utf8.RuneCountInString(description); n < model.DescriptionMinLen || n > model.DescriptionMaxLen {
		return &store.ValidationError{
			Field:   "description",
			Message: "Description must be 1-500 characters long.",
		}
	}
	return nil
}

// Create validates the payload and stores a new unverified resource
// under the next id. Failed validation consumes no id.
func (s *Store) Create(title, description string, category model.Category) (*model.Resource, error) {
	if err := validate(title, description); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now()
	resource := model.Resource{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Category:    category,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
		Verified:    false,
	}

	s.resources[resource.ID] = resource
	s.nextID++

	return &resource, nil
}

// Get retrieves a single resource by id.
func (s *Store) Get(id uint64) (*model.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &resource, nil
}

// List returns all resources ordered by id.
func (s *Store) List() []model.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(model.Resource) bool { return true })
}

// ListByCategory returns the resources of one category, ordered by id.
func (s *Store) ListByCategory(category model.Category) []model.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(r model.Resource) bool { return r.Category == category })
}

// Search returns the resources whose title or description contains
// query, case-insensitively. The empty query matches every resource;
// that is intentional, not an edge case.
func (s *Store) Search(query string) []model.Resource {
	query = strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(r model.Resource) bool {
		return strings.Contains(strings.ToLower(r.Title), query) ||
			strings.Contains(strings.ToLower(r.Description), query)
	})
}

// Update overwrites title, description and category and refreshes
// updated_at. Validation runs before the lookup, so a bad payload on
// a missing id reports the validation error, not ErrNotFound.
func (s *Store) Update(id uint64, title, description string, category model.Category) (*model.Resource, error) {
	if err := validate(title, description); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	resource.Title = title
	resource.Description = description
	resource.Category = category
	resource.UpdatedAt = s.now()
	s.resources[id] = resource

	return &resource, nil
}

// Delete removes a resource permanently. The id counter is not
// decremented; deleted ids are never reused.
func (s *Store) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.resources, id)
	return nil
}

// Verify marks a resource verified and refreshes updated_at. The
// authorization check precedes the lookup: a non-admin caller gets
// ErrUnauthorized even for ids that do not exist.
func (s *Store) Verify(id uint64, caller string) (*model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == "" || caller != s.admin {
		return nil, store.ErrUnauthorized
	}

	resource, ok := s.resources[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	resource.Verified = true
	resource.UpdatedAt = s.now()
	s.resources[id] = resource

	return &resource, nil
}

// SetAdmin unconditionally overwrites the admin identity. There is no
// prior-admin check; the latest call wins.
func (s *Store) SetAdmin(caller string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = caller
}

// Admin returns the current admin identity, if one is set.
func (s *Store) Admin() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin, s.admin != ""
}

// collect gathers the resources matching keep, ordered by id. Caller
// must hold at least the read lock.
func (s *Store) collect(keep func(model.Resource) bool) []model.Resource {
	out := make([]model.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		if keep(resource) {
			out = append(out, resource)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
