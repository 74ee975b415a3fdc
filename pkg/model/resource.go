package model

// Title and description length bounds, in runes.
const (
	TitleMinLen       = 1
	TitleMaxLen       = 100
	DescriptionMinLen = 1
	DescriptionMaxLen = 500
)

// Resource represents one stored informational entry.
//
// The ID is assigned by the store and never reused, even after the
// resource is deleted. CreatedAt and UpdatedAt are Unix timestamps in
// seconds; UpdatedAt is refreshed on every mutation, including
// verification. Verified defaults to false and is settable only
// through the store's Verify operation.
type Resource struct {
	ID          uint64   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	CreatedAt   uint64   `json:"created_at" yaml:"created_at"`
	UpdatedAt   uint64   `json:"updated_at" yaml:"updated_at"`
	Verified    bool     `json:"verified" yaml:"verified"`
}
