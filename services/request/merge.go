package request

import (
	"sort"

	"fixify/models"
)

// MergeRequests unions two request lists, deduplicating by identifier and
// sorting descending by requested time. The first list wins on duplicate
// IDs. Pure function; both inputs are left untouched.
func MergeRequests(a, b []models.ServiceRequest) []models.ServiceRequest {
	seen := make(map[string]struct{}, len(a)+len(b))
	merged := make([]models.ServiceRequest, 0, len(a)+len(b))

	for _, list := range [][]models.ServiceRequest{a, b} {
		for _, req := range list {
			if _, dup := seen[req.ID]; dup {
				continue
			}
			seen[req.ID] = struct{}{}
			merged = append(merged, req)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RequestedAt.After(merged[j].RequestedAt)
	})
	return merged
}
