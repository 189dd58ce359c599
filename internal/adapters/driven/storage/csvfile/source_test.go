package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func writeCity(t *testing.T, dir string, city domain.City, body string) string {
	t.Helper()
	path := filepath.Join(dir, city.FileName())
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSource_Load_Chicago(t *testing.T) {
	dir := t.TempDir()
	writeCity(t, dir, domain.CityChicago, chicagoCSV)
	source := NewSource(domain.DataSettings{Dir: dir})

	table, err := source.Load(context.Background(), domain.CityChicago)

	require.NoError(t, err)
	assert.Equal(t, domain.CityChicago, table.City)
	assert.True(t, table.Schema.HasGender)
	assert.True(t, table.Schema.HasBirthYear)
	require.Equal(t, 3, table.Len())

	first := table.Records[0]
	assert.Equal(t, time.June, first.Month)
	assert.Equal(t, time.Friday, first.Weekday)
	assert.Equal(t, 15, first.Hour)
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, 321.0, first.Duration)
	assert.Equal(t, "Subscriber", first.UserType)
	assert.Equal(t, "Male", first.Gender)
	require.NotNil(t, first.BirthYear)
	assert.Equal(t, 1992, *first.BirthYear)
	assert.Len(t, first.Raw, 9)

	last := table.Records[2]
	assert.Equal(t, "", last.Gender)
	assert.Nil(t, last.BirthYear)
}

func TestSource_Load_WithoutOptionalColumns(t *testing.T) {
	dir := t.TempDir()
	writeCity(t, dir, domain.CityWashington, washingtonCSV)
	source := NewSource(domain.DataSettings{Dir: dir})

	table, err := source.Load(context.Background(), domain.CityWashington)

	require.NoError(t, err)
	assert.False(t, table.Schema.HasGender)
	assert.False(t, table.Schema.HasBirthYear)
	require.Equal(t, 2, table.Len())
	assert.InDelta(t, 489.066, table.Records[0].Duration, 1e-9)
	assert.Nil(t, table.Records[0].BirthYear)
}

func TestSource_Load_FileOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "divvy.csv"), []byte(chicagoCSV), 0o600))
	source := NewSource(domain.DataSettings{Dir: dir, Files: map[domain.City]string{domain.CityChicago: "divvy.csv"}})

	assert.Equal(t, filepath.Join(dir, "divvy.csv"), source.Path(domain.CityChicago))

	table, err := source.Load(context.Background(), domain.CityChicago)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}

func TestSource_Load_MissingFile(t *testing.T) {
	source := NewSource(domain.DataSettings{Dir: t.TempDir()})

	_, err := source.Load(context.Background(), domain.CityNewYork)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_Load_UnsupportedCity(t *testing.T) {
	source := NewSource(domain.DataSettings{Dir: t.TempDir()})

	_, err := source.Load(context.Background(), domain.City("boston"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedCity)
}

func TestSource_Load_MalformedIncludesPath(t *testing.T) {
	dir := t.TempDir()
	path := writeCity(t, dir, domain.CityChicago, "Start Time,Trip Duration\n2017-01-01 00:00:00,5\n")
	source := NewSource(domain.DataSettings{Dir: dir})

	_, err := source.Load(context.Background(), domain.CityChicago)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDataset)
	assert.Contains(t, err.Error(), path)
}

func TestDecode_Errors(t *testing.T) {
	header := "Start Time,Trip Duration,Start Station,End Station,User Type\n"
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"empty file", "", "empty file"},
		{"missing column", "Start Time,Trip Duration\n", `missing column "Start Station"`},
		{"bad timestamp", header + "yesterday,60,a,b,Subscriber\n", "line 2"},
		{"bad duration", header + "2017-01-01 00:00:00,long,a,b,Subscriber\n", `invalid Trip Duration "long"`},
		{"wrong field count", header + "2017-01-01 00:00:00,60,a\n", "wrong number of fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(context.Background(), strings.NewReader(tt.body), domain.CityChicago)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedDataset)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDecode_BadBirthYear(t *testing.T) {
	body := "Start Time,Trip Duration,Start Station,End Station,User Type,Birth Year\n" +
		"2017-01-01 00:00:00,60,a,b,Subscriber,nineteen\n"

	_, err := Decode(context.Background(), strings.NewReader(body), domain.CityChicago)

	assert.ErrorIs(t, err, domain.ErrMalformedDataset)
	assert.Contains(t, err.Error(), "Birth Year")
}

func TestDecode_NonFinite(t *testing.T) {
	header := "Start Time,Trip Duration,Start Station,End Station,User Type,Birth Year\n"

	t.Run("duration", func(t *testing.T) {
		for _, cell := range []string{"NaN", "nan", "Inf", "-inf", "+Infinity"} {
			body := header + "2017-01-01 00:00:00," + cell + ",a,b,Subscriber,1990\n"

			_, err := Decode(context.Background(), strings.NewReader(body), domain.CityChicago)

			assert.ErrorIs(t, err, domain.ErrMalformedDataset, cell)
			assert.Contains(t, err.Error(), "Trip Duration", cell)
		}
	})

	t.Run("birth year", func(t *testing.T) {
		body := header +
			"2017-01-01 00:00:00,60,a,b,Subscriber,nan\n" +
			"2017-01-02 00:00:00,60,a,b,Subscriber,Inf\n" +
			"2017-01-03 00:00:00,60,a,b,Subscriber,1990.0\n"

		table, err := Decode(context.Background(), strings.NewReader(body), domain.CityChicago)

		require.NoError(t, err)
		require.Equal(t, 3, table.Len())
		assert.Nil(t, table.Records[0].BirthYear)
		assert.Nil(t, table.Records[1].BirthYear)
		require.NotNil(t, table.Records[2].BirthYear)
		assert.Equal(t, 1990, *table.Records[2].BirthYear)
	})
}

func TestDecode_HeaderCaseAndBOM(t *testing.T) {
	body := "\ufeffstart time,TRIP DURATION,start station,end station,user type\n" +
		"2017-02-03T04:05:06,60,a,b,Customer\n"

	table, err := Decode(context.Background(), strings.NewReader(body), domain.CityNewYork)

	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, time.February, table.Records[0].Month)
	assert.Equal(t, 4, table.Records[0].Hour)
	assert.Equal(t, "start time", table.Schema.Columns[0])
}

func TestDecode_HeaderOnly(t *testing.T) {
	body := "Start Time,Trip Duration,Start Station,End Station,User Type\n"

	table, err := Decode(context.Background(), strings.NewReader(body), domain.CityChicago)

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestDecode_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Decode(ctx, strings.NewReader(washingtonCSV), domain.CityWashington)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		hour  int
	}{
		{"2017-01-01 09:07:57", 9},
		{"2017-01-01 09:07:57.123", 9},
		{"2017-01-01T22:00:00", 22},
		{"2017-01-01T22:00:00Z", 22},
		{"2017-01-01 13:30", 13},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := parseTimestamp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hour, ts.Hour())
		})
	}

	_, err := parseTimestamp("01/02/2017")
	assert.Error(t, err)
}
