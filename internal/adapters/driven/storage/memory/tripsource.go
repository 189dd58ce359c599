package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
)

// Ensure TripSource implements the interfaces.
var (
	_ driven.TripSource = (*TripSource)(nil)
	_ driven.TripStore  = (*TripSource)(nil)
)

// TripSource is an in-memory implementation of driven.TripStore.
type TripSource struct {
	mu     sync.RWMutex
	tables map[domain.City]*domain.TripTable
}

// NewTripSource creates a new in-memory trip source.
func NewTripSource() *TripSource {
	return &TripSource{
		tables: make(map[domain.City]*domain.TripTable),
	}
}

// Put stores the table for its city, replacing any previous table.
func (s *TripSource) Put(table *domain.TripTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table.City] = cloneTable(table)
}

// Save stores the table for its city, replacing any previous table.
func (s *TripSource) Save(ctx context.Context, table *domain.TripTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if table == nil || !table.City.IsValid() {
		return fmt.Errorf("%w: table without a supported city", domain.ErrInvalidInput)
	}
	s.Put(table)
	return nil
}

// Load returns a fresh copy of the stored table with calendar fields derived.
func (s *TripSource) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatasetUnavailable, city, domain.ErrNotFound)
	}

	out := cloneTable(table)
	for i := range out.Records {
		out.Records[i].Derive()
	}
	return out, nil
}

func cloneTable(t *domain.TripTable) *domain.TripTable {
	out := &domain.TripTable{
		City:    t.City,
		Schema:  t.Schema,
		Records: make([]domain.TripRecord, len(t.Records)),
	}
	out.Schema.Columns = append([]string(nil), t.Schema.Columns...)
	copy(out.Records, t.Records)
	return out
}
