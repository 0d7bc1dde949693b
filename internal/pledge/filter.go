package pledge

import (
	"strings"

	"github.com/jmylchreest/vow/internal/model"
)

// FilterOptions specifies criteria for narrowing a commitment list.
type FilterOptions struct {
	Category string // Exact match on category (empty = any)
	Remind   string // Exact match on reminder frequency (empty = any)
	Limit    int    // Maximum results (0 = unlimited)
}

// Filter returns the commitments matching the provided options,
// preserving their original order.
func Filter(commitments []model.Commitment, opts FilterOptions) []model.Commitment {
	result := make([]model.Commitment, 0, len(commitments))

	for _, c := range commitments {
		if opts.Category != "" && !strings.EqualFold(c.Category, opts.Category) {
			continue
		}
		if opts.Remind != "" && !strings.EqualFold(c.Remind, opts.Remind) {
			continue
		}
		result = append(result, c)
	}

	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}

	return result
}

// Search returns the commitments whose text or category contains the
// query, case-insensitively.
func Search(commitments []model.Commitment, query string) []model.Commitment {
	if query == "" {
		return commitments
	}

	q := strings.ToLower(query)
	result := make([]model.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if strings.Contains(strings.ToLower(c.Text), q) ||
			strings.Contains(strings.ToLower(c.Category), q) {
			result = append(result, c)
		}
	}
	return result
}
