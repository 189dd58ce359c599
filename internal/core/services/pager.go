package services

import (
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ensure Pager implements the interface.
var _ driving.RowPager = (*Pager)(nil)

// Pager yields successive windows of raw rows from a table.
// Each call to Next advances the offset by the page size and shows
// at most viewer.Shown() rows of that page.
type Pager struct {
	table  *domain.TripTable
	step   int
	shown  int
	offset int
}

// NewPager creates a pager over table positioned at the first row.
func NewPager(table *domain.TripTable, viewer domain.ViewerSettings) *Pager {
	if viewer.PageSize < 1 {
		viewer.PageSize = domain.DefaultPageSize
	}
	return &Pager{
		table: table,
		step:  viewer.PageSize,
		shown: viewer.Shown(),
	}
}

// Next returns the next page and true, or false once the table is exhausted.
func (p *Pager) Next() (domain.RowWindow, bool) {
	total := p.table.Len()
	if p.offset >= total {
		return domain.RowWindow{Offset: p.offset, Total: total}, false
	}

	end := min(p.offset+p.shown, total)
	w := domain.RowWindow{
		Offset:  p.offset,
		Records: p.table.Records[p.offset:end],
		Total:   total,
	}
	p.offset += p.step
	return w, true
}

// HasNext reports whether another page remains.
func (p *Pager) HasNext() bool {
	return p.offset < p.table.Len()
}

// Reset rewinds to the first page.
func (p *Pager) Reset() {
	p.offset = 0
}
