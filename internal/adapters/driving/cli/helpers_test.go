package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

var chicagoColumns = []string{
	domain.ColumnStartTime, domain.ColumnEndTime, domain.ColumnTripDuration,
	domain.ColumnStartStation, domain.ColumnEndStation, domain.ColumnUserType,
	domain.ColumnGender, domain.ColumnBirthYear,
}

func birth(y int) *int {
	return &y
}

func trip(start, from, to string, duration float64, userType, gender string, year *int) domain.TripRecord {
	ts, err := time.Parse("2006-01-02 15:04:05", start)
	if err != nil {
		panic(err)
	}
	yearCell := ""
	if year != nil {
		yearCell = strconv.Itoa(*year)
	}
	return domain.TripRecord{
		StartTime:    ts,
		StartStation: from,
		EndStation:   to,
		Duration:     duration,
		UserType:     userType,
		Gender:       gender,
		BirthYear:    year,
		Raw:          []string{start, "", strconv.FormatFloat(duration, 'f', -1, 64), from, to, userType, gender, yearCell},
	}
}

// chicagoTable: two Friday trips in June and one Thursday trip in May.
func chicagoTable() *domain.TripTable {
	return &domain.TripTable{
		City:   domain.CityChicago,
		Schema: domain.Schema{Columns: chicagoColumns, HasGender: true, HasBirthYear: true},
		Records: []domain.TripRecord{
			trip("2017-06-23 15:09:32", "Wood St & Hubbard St", "Damen Ave & Chicago Ave", 321, "Subscriber", "Male", birth(1992)),
			trip("2017-06-23 17:00:00", "Wood St & Hubbard St", "Damen Ave & Chicago Ave", 3399, "Subscriber", "Female", birth(1992)),
			trip("2017-05-25 18:19:03", "Theater on the Lake", "Sheffield Ave & Waveland Ave", 1000, "Customer", "", nil),
		},
	}
}

// washingtonTable has no gender or birth year columns.
func washingtonTable() *domain.TripTable {
	w := trip("2017-01-01 00:07:57", "Union Station", "Dupont Circle", 600, "Subscriber", "", nil)
	w.Raw = w.Raw[:6]
	return &domain.TripTable{
		City:    domain.CityWashington,
		Schema:  domain.Schema{Columns: chicagoColumns[:6]},
		Records: []domain.TripRecord{w},
	}
}

// manyTrips returns n Monday trips in January.
func manyTrips(n int) *domain.TripTable {
	recs := make([]domain.TripRecord, n)
	for i := range recs {
		recs[i] = trip("2017-01-02 08:00:00", "Station "+strconv.Itoa(i), "End", 60, "Subscriber", "", nil)
	}
	return &domain.TripTable{
		City:    domain.CityChicago,
		Schema:  domain.Schema{Columns: chicagoColumns},
		Records: recs,
	}
}

// setupTestServices injects in-memory services holding tables and
// restores the package state when the test ends.
func setupTestServices(t *testing.T, tables ...*domain.TripTable) *memory.ConfigStore {
	t.Helper()

	source := memory.NewTripSource()
	for _, table := range tables {
		source.Put(table)
	}
	store := memory.NewConfigStore(nil)
	SetServices(services.NewTripService(source), services.NewStatsService(), services.NewSettingsService(store))

	t.Cleanup(func() {
		tripService = nil
		statsService = nil
		settingsService = nil
		importService = nil
		appSettings = nil
		servicesInjected = false
	})
	return store
}

// resetFlags restores every flag to its default so tests do not leak
// values or "changed" state into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := Execute()
	return buf.String(), err
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}
