package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var (
	statsCity  string
	statsMonth string
	statsDay   string
	statsJSON  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print trip reports for one selection",
	Long: `Load a city's trips, apply the month and day filters and print the four
reports without prompting. Use --json for machine-readable output.`,
	Example: `  bikeshare stats --city chicago --month june --day friday
  bikeshare stats --city "new york city" --json`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsCity, "city", "c", "", "city to analyse (chicago, new york city, washington)")
	statsCmd.Flags().StringVarP(&statsMonth, "month", "m", domain.FilterAll, "month name or \"all\"")
	statsCmd.Flags().StringVarP(&statsDay, "day", "d", domain.FilterAll, "day of week or \"all\"")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output reports as JSON")
	_ = statsCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(statsCmd)
}

// parseSelection validates city, month and day flag values.
func parseSelection(city, month, day string) (domain.City, domain.Selection, error) {
	c, err := domain.ParseCity(city)
	if err != nil {
		return "", domain.Selection{}, err
	}
	sel, err := domain.NewSelection(month, day)
	if err != nil {
		return "", domain.Selection{}, err
	}
	return c, sel, nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	if tripService == nil || statsService == nil {
		return errServicesNotConfigured
	}

	city, sel, err := parseSelection(statsCity, statsMonth, statsDay)
	if err != nil {
		return err
	}

	table, err := tripService.Explore(cmd.Context(), city, sel)
	if err != nil {
		return err
	}

	timeRep := statsService.TimeOfTravel(table)
	stationRep := statsService.Stations(table)
	durationRep := statsService.Durations(table)
	userRep := statsService.Users(table)

	if statsJSON {
		return outputStatsJSON(cmd, newStatsView(city, sel, timeRep, stationRep, durationRep, userRep))
	}

	r := NewRenderer(cmd.OutOrStdout())
	r.printf("%s: %s\n", city, sel)
	r.Rule()
	r.TimeReport(timeRep)
	r.StationReport(stationRep)
	r.DurationReport(durationRep)
	r.UserReport(userRep)
	return nil
}

func outputStatsJSON(cmd *cobra.Command, view statsView) error {
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// JSON views of the reports. Modes are omitted when no trips matched.

type statsView struct {
	City     string       `json:"city"`
	Month    string       `json:"month"`
	Day      string       `json:"day"`
	Rows     int          `json:"rows"`
	Time     timeView     `json:"time"`
	Stations stationsView `json:"stations"`
	Duration durationView `json:"duration"`
	Users    usersView    `json:"users"`
}

type modeView struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

type timeView struct {
	Month          *modeView `json:"month,omitempty"`
	Day            *modeView `json:"day,omitempty"`
	Hour           *modeView `json:"hour,omitempty"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
}

type stationsView struct {
	Start          *modeView `json:"start,omitempty"`
	End            *modeView `json:"end,omitempty"`
	Trip           *modeView `json:"trip,omitempty"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
}

type durationView struct {
	TotalSeconds   float64 `json:"total_seconds"`
	Total          string  `json:"total"`
	MeanSeconds    float64 `json:"mean_seconds"`
	Mean           string  `json:"mean"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type usersView struct {
	UserTypes      []countView     `json:"user_types"`
	Genders        []countView     `json:"genders,omitempty"`
	GenderMissing  int             `json:"gender_missing,omitempty"`
	BirthYears     *birthYearsView `json:"birth_years,omitempty"`
	ElapsedSeconds float64         `json:"elapsed_seconds"`
}

// countView is one breakdown entry; lists keep descending-count order.
type countView struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type birthYearsView struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

func modeOf[T comparable](m domain.Mode[T], value func(T) any) *modeView {
	if !m.Found() {
		return nil
	}
	return &modeView{Value: value(m.Value), Count: m.Count}
}

func stringer[T fmt.Stringer](v T) any { return v.String() }

func countList(entries []domain.ValueCount) []countView {
	out := make([]countView, 0, len(entries))
	for _, e := range entries {
		out = append(out, countView{Value: e.Value, Count: e.Count})
	}
	return out
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}

func newStatsView(
	city domain.City,
	sel domain.Selection,
	t domain.TimeReport,
	s domain.StationReport,
	d domain.DurationReport,
	u domain.UserReport,
) statsView {
	view := statsView{
		City:  string(city),
		Month: sel.MonthLabel(),
		Day:   sel.DayLabel(),
		Rows:  t.Rows,
		Time: timeView{
			Month:          modeOf(t.Month, stringer[time.Month]),
			Day:            modeOf(t.Day, stringer[time.Weekday]),
			Hour:           modeOf(t.Hour, func(h int) any { return h }),
			ElapsedSeconds: seconds(t.Elapsed),
		},
		Stations: stationsView{
			Start:          modeOf(s.Start, func(v string) any { return v }),
			End:            modeOf(s.End, func(v string) any { return v }),
			Trip:           modeOf(s.Trip, stringer[domain.StationPair]),
			ElapsedSeconds: seconds(s.Elapsed),
		},
		Duration: durationView{
			TotalSeconds:   d.Total,
			Total:          d.TotalClock().String(),
			MeanSeconds:    d.Mean,
			Mean:           d.MeanClock().String(),
			ElapsedSeconds: seconds(d.Elapsed),
		},
		Users: usersView{
			UserTypes:      countList(u.UserTypes),
			ElapsedSeconds: seconds(u.Elapsed),
		},
	}
	if u.HasGender {
		view.Users.Genders = countList(u.Genders)
		view.Users.GenderMissing = u.GenderMissing
	}
	if u.BirthYears != nil {
		view.Users.BirthYears = &birthYearsView{
			Earliest:   u.BirthYears.Earliest,
			MostRecent: u.BirthYears.MostRecent,
			MostCommon: u.BirthYears.MostCommon,
		}
	}
	return view
}
