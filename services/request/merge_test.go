package request

import (
	"testing"
	"time"

	"fixify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqAt(id string, at time.Time) models.ServiceRequest {
	return models.ServiceRequest{ID: id, RequestedAt: at}
}

func TestMergeRequestsDeduplicatesByID(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	pending := []models.ServiceRequest{
		reqAt("a", base.Add(2*time.Hour)),
		reqAt("b", base.Add(1*time.Hour)),
	}
	assigned := []models.ServiceRequest{
		reqAt("b", base.Add(4*time.Hour)), // duplicate, first list wins
		reqAt("c", base.Add(3*time.Hour)),
	}

	merged := MergeRequests(pending, assigned)
	require.Len(t, merged, 3)

	ids := make([]string, 0, len(merged))
	for _, r := range merged {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)

	// The kept "b" is the one from the first list.
	for _, r := range merged {
		if r.ID == "b" {
			assert.Equal(t, base.Add(1*time.Hour), r.RequestedAt)
		}
	}
}

func TestMergeRequestsSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	merged := MergeRequests(
		[]models.ServiceRequest{reqAt("old", base), reqAt("newest", base.Add(6*time.Hour))},
		[]models.ServiceRequest{reqAt("mid", base.Add(3*time.Hour))},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, "newest", merged[0].ID)
	assert.Equal(t, "mid", merged[1].ID)
	assert.Equal(t, "old", merged[2].ID)
}

func TestMergeRequestsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeRequests(nil, nil))

	only := []models.ServiceRequest{reqAt("a", time.Now())}
	merged := MergeRequests(only, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, "a", merged[0].ID)
}
