package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antoniocali/wollama/pkg/catalog"
)

func boolPtr(b bool) *bool { return &b }

func seedRecords() []catalog.ModelRecord {
	return []catalog.ModelRecord{
		{
			ID: "llama", ModelName: "llama3.1:8b", DisplayName: "Llama 3.1 8B",
			Provider: "Meta", Purpose: catalog.PurposeGeneral, SupportsTools: true,
			RecommendedFor: []string{"RTX 3060 12GB"},
			Notes:          "Solid all-rounder",
		},
		{
			ID: "qwen", ModelName: "qwen2.5-coder:7b", DisplayName: "Qwen 2.5 Coder",
			Provider: "Alibaba", Purpose: catalog.PurposeCoding, SupportsTools: true,
			RecommendedFor: []string{"Apple M2 16GB"},
		},
		{
			ID: "starcoder", ModelName: "starcoder2:7b",
			Provider: "BigCode", Purpose: catalog.PurposeCoding, SupportsTools: false,
			Notes: "Permissively licensed training set",
		},
		{
			ID: "llava", ModelName: "llava:13b",
			Provider: "LLaVA team", Purpose: catalog.Purpose("vision"), SupportsTools: false,
		},
	}
}

func TestFilter_EmptyCriteriaImposesNoConstraint(t *testing.T) {
	records := seedRecords()
	got := Filter(records, Criteria{})

	assert.Equal(t, records, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := seedRecords()
	Filter(records, Criteria{Purpose: catalog.PurposeCoding})

	assert.Equal(t, seedRecords(), records)
}

func TestFilter_Purpose(t *testing.T) {
	records := seedRecords()

	t.Run("known purpose matches exactly", func(t *testing.T) {
		got := Filter(records, Criteria{Purpose: catalog.PurposeCoding})
		require.Len(t, got, 2)
		assert.Equal(t, "qwen", got[0].ID)
		assert.Equal(t, "starcoder", got[1].ID)
	})

	t.Run("unrecognized purpose is opaque and matches only equal values", func(t *testing.T) {
		got := Filter(records, Criteria{Purpose: catalog.Purpose("vision")})
		require.Len(t, got, 1)
		assert.Equal(t, "llava", got[0].ID)

		assert.Empty(t, Filter(records, Criteria{Purpose: catalog.Purpose("audio")}))
	})
}

func TestFilter_Tools(t *testing.T) {
	records := seedRecords()

	withTools := Filter(records, Criteria{Tools: boolPtr(true)})
	require.Len(t, withTools, 2)
	assert.Equal(t, "llama", withTools[0].ID)

	withoutTools := Filter(records, Criteria{Tools: boolPtr(false)})
	require.Len(t, withoutTools, 2)
	assert.Equal(t, "starcoder", withoutTools[0].ID)
}

func TestFilter_Search(t *testing.T) {
	records := seedRecords()

	t.Run("case-insensitive over model name", func(t *testing.T) {
		// "llava" is close but never contains the substring "llama".
		got := Filter(records, Criteria{Search: "LLAMA"})
		require.Len(t, got, 1)
		assert.Equal(t, "llama", got[0].ID)
	})

	t.Run("matches provider", func(t *testing.T) {
		got := Filter(records, Criteria{Search: "bigcode"})
		require.Len(t, got, 1)
		assert.Equal(t, "starcoder", got[0].ID)
	})

	t.Run("matches notes", func(t *testing.T) {
		got := Filter(records, Criteria{Search: "all-rounder"})
		require.Len(t, got, 1)
		assert.Equal(t, "llama", got[0].ID)
	})

	t.Run("matches recommended-for entries", func(t *testing.T) {
		got := Filter(records, Criteria{Search: "3060"})
		require.Len(t, got, 1)
		assert.Equal(t, "llama", got[0].ID)
	})

	t.Run("no hits yields empty, not error", func(t *testing.T) {
		assert.Empty(t, Filter(records, Criteria{Search: "nonexistent"}))
	})
}

// Filters are conjunctive; applying them one at a time in any order
// must equal applying them all at once.
func TestFilter_Commutative(t *testing.T) {
	records := seedRecords()
	full := Criteria{Search: "coder", Purpose: catalog.PurposeCoding, Tools: boolPtr(true)}

	combined := Filter(records, full)

	orders := [][]Criteria{
		{{Search: full.Search}, {Purpose: full.Purpose}, {Tools: full.Tools}},
		{{Purpose: full.Purpose}, {Tools: full.Tools}, {Search: full.Search}},
		{{Tools: full.Tools}, {Search: full.Search}, {Purpose: full.Purpose}},
	}

	for _, order := range orders {
		got := records
		for _, c := range order {
			got = Filter(got, c)
		}
		assert.Equal(t, combined, got)
	}

	require.Len(t, combined, 1)
	assert.Equal(t, "qwen", combined[0].ID)
}
