package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func TestTripSource_Load_DerivesFields(t *testing.T) {
	source := NewTripSource()
	source.Put(&domain.TripTable{
		City: domain.CityChicago,
		Records: []domain.TripRecord{
			{StartTime: time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC), UserType: "Subscriber"},
		},
	})

	table, err := source.Load(context.Background(), domain.CityChicago)

	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, time.June, table.Records[0].Month)
	assert.Equal(t, time.Friday, table.Records[0].Weekday)
	assert.Equal(t, 15, table.Records[0].Hour)
}

func TestTripSource_Load_ReturnsFreshTable(t *testing.T) {
	source := NewTripSource()
	source.Put(&domain.TripTable{
		City:    domain.CityWashington,
		Schema:  domain.Schema{Columns: []string{"Start Time"}},
		Records: []domain.TripRecord{{UserType: "Customer"}},
	})
	ctx := context.Background()

	first, err := source.Load(ctx, domain.CityWashington)
	require.NoError(t, err)
	first.Records[0].UserType = "changed"
	first.Schema.Columns[0] = "changed"

	second, err := source.Load(ctx, domain.CityWashington)
	require.NoError(t, err)
	assert.Equal(t, "Customer", second.Records[0].UserType)
	assert.Equal(t, "Start Time", second.Schema.Columns[0])
}

func TestTripSource_Load_UnknownCity(t *testing.T) {
	source := NewTripSource()

	_, err := source.Load(context.Background(), domain.CityNewYork)

	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripSource_Load_CancelledContext(t *testing.T) {
	source := NewTripSource()
	source.Put(&domain.TripTable{City: domain.CityChicago})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx, domain.CityChicago)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestTripSource_Save(t *testing.T) {
	source := NewTripSource()
	ctx := context.Background()

	require.NoError(t, source.Save(ctx, &domain.TripTable{
		City:    domain.CityWashington,
		Records: []domain.TripRecord{{UserType: "Customer"}},
	}))

	table, err := source.Load(ctx, domain.CityWashington)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestTripSource_Save_InvalidTable(t *testing.T) {
	source := NewTripSource()

	assert.ErrorIs(t, source.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, source.Save(context.Background(), &domain.TripTable{City: "boston"}), domain.ErrInvalidInput)
}
