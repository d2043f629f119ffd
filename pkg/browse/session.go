package browse

import (
	"github.com/google/uuid"

	"github.com/antoniocali/wollama/pkg/catalog"
	"github.com/antoniocali/wollama/pkg/hardware"
	"github.com/antoniocali/wollama/pkg/infra/logger"
)

// Window is the view model handed to a rendering consumer: the revealed
// prefix of the ranked records plus enough bookkeeping to draw the
// pagination affordance. Only the full ranked set carries best-match
// flags; reveal batches never re-flag records.
type Window struct {
	Records   []ScoredRecord `json:"records"`
	TopScore  int            `json:"top_score"`
	Total     int            `json:"total"`
	Revealed  int            `json:"revealed"`
	Remaining int            `json:"remaining"`
}

// Session ties one catalog snapshot and one hardware profile to the
// current filter criteria, ranked results and pagination cursor. The
// snapshot and profile are immutable for the session's lifetime;
// setting criteria rebuilds the result set and cursor together, while
// revealing more only advances the cursor.
type Session struct {
	id       string
	records  []catalog.ModelRecord
	profile  *hardware.Profile
	pageSize int

	criteria Criteria
	result   ResultSet
	pager    *Pager
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize overrides the reveal step size.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// NewSession snapshots the records and profile and starts with empty
// criteria, so the whole catalog is ranked up front. A nil profile is
// valid and yields neutral scores everywhere.
func NewSession(records []catalog.ModelRecord, profile *hardware.Profile, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		records:  append([]catalog.ModelRecord(nil), records...),
		profile:  profile,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rebuild()
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Criteria returns the currently applied filter criteria.
func (s *Session) Criteria() Criteria {
	return s.criteria
}

// Result returns the full ranked result set for the current criteria.
func (s *Session) Result() ResultSet {
	return s.result
}

// SetCriteria applies new filter criteria, recomputing the ranked set
// and resetting the pagination cursor. Any prior reveal progress is
// invalidated.
func (s *Session) SetCriteria(c Criteria) {
	s.criteria = c
	s.rebuild()

	logger.Default().Debug("criteria applied",
		"session_id", s.id,
		"search", c.Search,
		"purpose", string(c.Purpose),
		"matches", s.result.Len(),
	)
}

func (s *Session) rebuild() {
	filtered := Filter(s.records, s.criteria)
	s.result = Rank(filtered, s.profile)
	s.pager = NewPagerSize(s.result.Len(), s.pageSize)
}

// RevealMore advances the cursor and returns only the newly revealed
// records. Returns nil when everything is already revealed; that is a
// no-op, not an error. The returned records carry no best-match flags
// regardless of score, since the flag belongs to the head of the full
// ranking.
func (s *Session) RevealMore() []ScoredRecord {
	start, end, ok := s.pager.RevealMore()
	if !ok {
		return nil
	}

	batch := make([]ScoredRecord, end-start)
	copy(batch, s.result.Records[start:end])
	for i := range batch {
		batch[i].BestMatch = false
	}
	return batch
}

// Remaining returns how many ranked records are still hidden.
func (s *Session) Remaining() int {
	return s.pager.Remaining()
}

// Window returns the currently revealed prefix as a view model.
func (s *Session) Window() Window {
	revealed := s.pager.Revealed()
	records := make([]ScoredRecord, revealed)
	copy(records, s.result.Records[:revealed])

	return Window{
		Records:   records,
		TopScore:  s.result.TopScore,
		Total:     s.result.Len(),
		Revealed:  revealed,
		Remaining: s.pager.Remaining(),
	}
}
