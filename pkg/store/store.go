package store

import "github.com/doodlesbykumbi/eczemahub/pkg/model"

// ResourceStore abstracts resource storage operations.
//
// Mutations return the stored value after the change so callers never
// have to re-read. Snapshot and Restore are lifecycle hooks invoked by
// the host process around a suspend/resume boundary; they are not part
// of the externally callable surface.
type ResourceStore interface {
	// Create validates the payload, allocates the next id and stores
	// a new unverified resource. A validation failure consumes no id.
	Create(title, description string, category model.Category) (*model.Resource, error)

	// Get retrieves a single resource by id.
	Get(id uint64) (*model.Resource, error)

	// List returns all resources, ordered by id.
	List() []model.Resource

	// ListByCategory returns the resources of one category, ordered
	// by id.
	ListByCategory(category model.Category) []model.Resource

	// Search returns the resources whose title or description
	// contains query, case-insensitively. An empty query matches
	// everything.
	Search(query string) []model.Resource

	// Update validates the payload first and looks the id up second,
	// so a validation failure on a missing id reports the validation
	// error. Id, created_at and verified are untouched.
	Update(id uint64, title, description string, category model.Category) (*model.Resource, error)

	// Delete removes a resource permanently. Its id is never reused.
	Delete(id uint64) error

	// Verify marks a resource verified. The caller must equal the
	// current admin; while no admin is set every caller is
	// unauthorized. The authorization check precedes the lookup.
	Verify(id uint64, caller string) (*model.Resource, error)

	// SetAdmin unconditionally overwrites the admin identity.
	SetAdmin(caller string)

	// Admin returns the current admin identity, if one is set.
	Admin() (string, bool)

	// Snapshot serializes the entire store state into an opaque blob
	// sufficient to reconstruct it with Restore.
	Snapshot() ([]byte, error)

	// Restore atomically replaces the entire store state from a blob
	// produced by Snapshot. A malformed blob is an error; the host
	// treats restore failure as fatal.
	Restore(blob []byte) error
}
