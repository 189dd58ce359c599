package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// RowPager walks a trip table one page at a time.
type RowPager interface {
	// Next returns the next page and true, or false once the table is exhausted.
	Next() (domain.RowWindow, bool)

	// HasNext reports whether another page remains.
	HasNext() bool

	// Reset rewinds to the first page.
	Reset()
}
