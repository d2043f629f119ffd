package browse

import (
	"sort"

	"github.com/antoniocali/wollama/pkg/catalog"
	"github.com/antoniocali/wollama/pkg/hardware"
)

// ScoredRecord pairs a catalog record with its affinity score. Scored
// records are produced fresh on every render pass, never cached across
// filter changes.
type ScoredRecord struct {
	Record    catalog.ModelRecord `json:"record"`
	Score     int                 `json:"score"`
	BestMatch bool                `json:"best_match,omitempty"`
}

// ResultSet is the ordered outcome of filtering and scoring: records
// sorted by descending score, ties keeping their catalog order.
type ResultSet struct {
	Records  []ScoredRecord `json:"records"`
	TopScore int            `json:"top_score"`
}

// Len returns the number of ranked records.
func (rs ResultSet) Len() int {
	return len(rs.Records)
}

// Rank scores every record against the profile and sorts descending
// with a stable sort, so equal-score records retain their relative
// input order. Every record at the top score is flagged best-match,
// but only when that score is strictly positive; a neutral or negative
// top score flags nothing.
func Rank(records []catalog.ModelRecord, hw *hardware.Profile) ResultSet {
	if len(records) == 0 {
		return ResultSet{}
	}

	scored := make([]ScoredRecord, len(records))
	for i, r := range records {
		scored[i] = ScoredRecord{Record: r, Score: Score(r, hw)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[0].Score
	if top > 0 {
		for i := range scored {
			if scored[i].Score != top {
				break
			}
			scored[i].BestMatch = true
		}
	}

	return ResultSet{Records: scored, TopScore: top}
}
