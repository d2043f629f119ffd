package browse

// DefaultPageSize is the number of records revealed per step.
const DefaultPageSize = 10

// Pager tracks how much of a ranked result set has been revealed.
// The revealed count only grows within one filter session; a new
// result set gets a new Pager.
type Pager struct {
	pageSize int
	total    int
	revealed int
}

// NewPager creates a cursor over total records with the default page
// size, with the first page already revealed.
func NewPager(total int) *Pager {
	return NewPagerSize(total, DefaultPageSize)
}

// NewPagerSize is NewPager with an explicit page size. Sizes below 1
// fall back to the default.
func NewPagerSize(total, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	return &Pager{
		pageSize: pageSize,
		total:    total,
		revealed: min(pageSize, total),
	}
}

// Revealed returns how many records are currently visible.
func (p *Pager) Revealed() int {
	return p.revealed
}

// Total returns the size of the underlying result set.
func (p *Pager) Total() int {
	return p.total
}

// Remaining returns how many records are still hidden. Consumers drop
// the "reveal more" affordance when this reaches zero.
func (p *Pager) Remaining() int {
	return p.total - p.revealed
}

// RevealMore advances the cursor by one page and returns the newly
// revealed half-open range [start, end). When everything is already
// revealed it reports ok=false and changes nothing.
func (p *Pager) RevealMore() (start, end int, ok bool) {
	if p.revealed >= p.total {
		return p.revealed, p.revealed, false
	}
	start = p.revealed
	p.revealed = min(p.revealed+p.pageSize, p.total)
	return start, p.revealed, true
}
