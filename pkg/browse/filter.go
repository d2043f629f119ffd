package browse

import (
	"strings"

	"github.com/antoniocali/wollama/pkg/catalog"
)

// Criteria holds the user-chosen filters for one render pass. It is
// rebuilt wholesale on every input change; zero-valued fields impose no
// constraint.
type Criteria struct {
	// Search is a case-insensitive substring query matched against the
	// record's name, display name, provider, notes and recommended-for
	// entries.
	Search string
	// Purpose, when non-empty, must equal the record's purpose exactly.
	Purpose catalog.Purpose
	// Tools, when non-nil, must equal the record's tools-support flag.
	Tools *bool
}

// IsZero reports whether the criteria impose no constraint at all.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Purpose == "" && c.Tools == nil
}

// Filter returns the records satisfying every set criterion. The
// filters are conjunctive and commutative, so application order does
// not matter. The input slice is never mutated; matching records keep
// their catalog order.
func Filter(records []catalog.ModelRecord, c Criteria) []catalog.ModelRecord {
	needle := strings.ToLower(c.Search)

	out := make([]catalog.ModelRecord, 0, len(records))
	for _, r := range records {
		if c.Purpose != "" && r.Purpose != c.Purpose {
			continue
		}
		if c.Tools != nil && r.SupportsTools != *c.Tools {
			continue
		}
		if needle != "" && !strings.Contains(searchHaystack(r), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// searchHaystack concatenates the record's searchable text fields,
// lower-cased.
func searchHaystack(r catalog.ModelRecord) string {
	parts := []string{r.ModelName, r.DisplayName, r.Provider, r.Notes}
	parts = append(parts, r.RecommendedFor...)
	return strings.ToLower(strings.Join(parts, " "))
}
