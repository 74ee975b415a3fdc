package memory

import (
	"encoding/json"
	"fmt"

	"github.com/doodlesbykumbi/eczemahub/pkg/model"
)

// snapshotVersion tags the serialized layout. Bump it when the
// snapshot schema changes and handle the old tag in Restore; schema
// changes are a deliberate migration step, never implicit.
const snapshotVersion = 1

// snapshot is the serialized representation of the whole store state.
// Resources are stored as a list ordered by id; the map is rebuilt on
// restore so the key-equals-id invariant holds by construction.
type snapshot struct {
	Version   int              `json:"version"`
	Resources []model.Resource `json:"resources"`
	NextID    uint64           `json:"next_id"`
	Admin     string           `json:"admin,omitempty"`
}

// Snapshot serializes the entire store state, admin included, into a
// versioned JSON blob.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		Version:   snapshotVersion,
		Resources: s.collect(func(model.Resource) bool { return true }),
		NextID:    s.nextID,
		Admin:     s.admin,
	}
	return json.Marshal(snap)
}

// Restore atomically replaces the entire store state from a blob
// produced by Snapshot. Nothing is applied unless the whole blob
// decodes and passes the invariant checks: persistence is
// all-or-nothing, with no partial recovery.
func (s *Store) Restore(blob []byte) error {
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("malformed snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.NextID == 0 {
		return fmt.Errorf("malformed snapshot: next_id must be at least 1")
	}

	resources := make(map[uint64]model.Resource, len(snap.Resources))
	for _, resource := range snap.Resources {
		if _, dup := resources[resource.ID]; dup {
			return fmt.Errorf("malformed snapshot: duplicate resource id %d", resource.ID)
		}
		if !resource.Category.IsACategory() {
			return fmt.Errorf("malformed snapshot: resource %d has unknown category", resource.ID)
		}
		if resource.ID >= snap.NextID {
			return fmt.Errorf(
				"malformed snapshot: next_id %d does not exceed resource id %d",
				snap.NextID, resource.ID,
			)
		}
		resources[resource.ID] = resource
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resources = resources
	s.nextID = snap.NextID
	s.admin = snap.Admin
	return nil
}
