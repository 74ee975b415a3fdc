package memory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/eczemahub/pkg/model"
	"github.com/doodlesbykumbi/eczemahub/pkg/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	original := newTestStore()

	first, err := original.Create("Moisturize daily", "Apply emollient after bathing.", model.CategoryTreatment)
	require.NoError(t, err)
	_, err = original.Create("Elimination diet", "Track flare-ups against foods.", model.CategoryDietAdvice)
	require.NoError(t, err)
	original.SetAdmin("dr-lee")
	_, err = original.Verify(first.ID, "dr-lee")
	require.NoError(t, err)
	require.NoError(t, original.Delete(2))

	blob, err := original.Snapshot()
	require.NoError(t, err)

	restored := NewStore()
	require.NoError(t, restored.Restore(blob))

	assert.Equal(t, original.List(), restored.List())

	admin, ok := restored.Admin()
	assert.True(t, ok)
	assert.Equal(t, "dr-lee", admin)

	// The id counter survives: deleted id 2 is not reused
	created, err := restored.Create("Phototherapy", "UVB under supervision.", model.CategoryMedicalAdvice)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), created.ID)
}

func TestSnapshotEmptyStore(t *testing.T) {
	blob, err := NewStore().Snapshot()
	require.NoError(t, err)

	restored := NewStore()
	require.NoError(t, restored.Restore(blob))
	assert.Empty(t, restored.List())

	_, ok := restored.Admin()
	assert.False(t, ok)

	created, err := restored.Create("First", "ok", model.CategoryTreatment)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)
}

func TestSnapshotOmitsUnsetAdmin(t *testing.T) {
	blob, err := NewStore().Snapshot()
	require.NoError(t, err)
	assert.NotContains(t, string(blob), `"admin"`)
}

func TestRestoreRejectsBadBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{
			name: "malformed json",
			blob: `{"version": 1,`,
		},
		{
			name: "unsupported version",
			blob: `{"version": 2, "resources": [], "next_id": 1}`,
		},
		{
			name: "zero next_id",
			blob: `{"version": 1, "resources": [], "next_id": 0}`,
		},
		{
			name: "duplicate resource id",
			blob: `{"version": 1, "next_id": 3, "resources": [
				{"id": 1, "title": "a", "description": "b", "category": "Treatment", "created_at": 1, "updated_at": 1, "verified": false},
				{"id": 1, "title": "c", "description": "d", "category": "Research", "created_at": 1, "updated_at": 1, "verified": false}
			]}`,
		},
		{
			name: "unknown category",
			blob: `{"version": 1, "next_id": 2, "resources": [
				{"id": 1, "title": "a", "description": "b", "category": "Homeopathy", "created_at": 1, "updated_at": 1, "verified": false}
			]}`,
		},
		{
			name: "next_id does not exceed highest id",
			blob: `{"version": 1, "next_id": 2, "resources": [
				{"id": 2, "title": "a", "description": "b", "category": "Treatment", "created_at": 1, "updated_at": 1, "verified": false}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			_, err := s.Create("Survivor", "Must remain after a failed restore.", model.CategoryPrevention)
			require.NoError(t, err)

			require.Error(t, s.Restore([]byte(tt.blob)))

			// A failed restore leaves the store untouched
			all := s.List()
			require.Len(t, all, 1)
			assert.Equal(t, "Survivor", all[0].Title)
		})
	}
}

func TestSnapshotShape(t *testing.T) {
	s := newTestStore()
	_, err := s.Create("Title", "Description", model.CategoryTestimonial)
	require.NoError(t, err)
	s.SetAdmin("alice")

	blob, err := s.Snapshot()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &decoded))
	assert.Contains(t, decoded, "version")
	assert.Contains(t, decoded, "resources")
	assert.Contains(t, decoded, "next_id")
	assert.Contains(t, decoded, "admin")
	assert.Equal(t, `"Testimonial"`, extractCategory(t, decoded["resources"]))
}

func extractCategory(t *testing.T, resources json.RawMessage) string {
	t.Helper()
	var rs []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resources, &rs))
	require.Len(t, rs, 1)
	return string(rs[0]["category"])
}

func TestRestoreReplacesExistingState(t *testing.T) {
	donor := newTestStore()
	_, err := donor.Create("Donor resource", "From the donor store.", model.CategoryResearch)
	require.NoError(t, err)
	blob, err := donor.Snapshot()
	require.NoError(t, err)

	s := newTestStore()
	for i := 0; i < 5; i++ {
		_, err := s.Create("Old resource", "Stale state to be replaced.", model.CategoryTreatment)
		require.NoError(t, err)
	}
	s.SetAdmin("old-admin")

	require.NoError(t, s.Restore(blob))

	all := s.List()
	require.Len(t, all, 1)
	assert.Equal(t, "Donor resource", all[0].Title)

	_, ok := s.Admin()
	assert.False(t, ok)

	_, err = s.Get(3)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
