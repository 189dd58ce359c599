package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/rows"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const ruleWidth = 40

const noTripsMessage = "No trips match the selected filters."

// Renderer prints session text and reports.
type Renderer struct {
	out    io.Writer
	styles *styles.Styles
}

// NewRenderer creates a renderer for out. Colours are only used when
// out is a terminal.
func NewRenderer(out io.Writer) *Renderer {
	s := styles.PlainStyles()
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s = styles.DefaultStyles()
	}
	return &Renderer{out: out, styles: s}
}

// paint styles each line of text separately, so multi-line text is not
// padded out into a block.
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Banner greets the user at the start of a cycle.
func (r *Renderer) Banner() {
	r.println(paint(r.styles.Title, "Hello! Let's explore some US bikeshare data!"))
}

// Rule prints a horizontal separator.
func (r *Renderer) Rule() {
	r.println(paint(r.styles.Muted, strings.Repeat("-", ruleWidth)))
}

// Prompt prints a question without a trailing newline.
func (r *Renderer) Prompt(question string) {
	r.printf("%s", paint(r.styles.Prompt, question))
}

// Invalid reports input that did not match the expected vocabulary.
func (r *Renderer) Invalid(input, hint string) {
	r.println(paint(r.styles.Warning, fmt.Sprintf("Sorry, %q is not valid. %s", strings.TrimSpace(input), hint)))
}

// LoadError reports a dataset that could not be read.
func (r *Renderer) LoadError(city domain.City, err error) {
	msg := fmt.Sprintf("Could not load %s trip data: %v", city, err)
	switch {
	case errors.Is(err, domain.ErrDatasetUnavailable):
		msg += "\nCheck the data directory (--data-dir or data.dir in settings)."
	case errors.Is(err, domain.ErrMalformedDataset):
		msg += "\nThe file does not look like a bikeshare trip export."
	}
	r.println(paint(r.styles.Error, msg))
	r.Rule()
}

func (r *Renderer) heading(title string) {
	r.println()
	r.println(paint(r.styles.Heading, title))
	r.println()
}

func (r *Renderer) field(label string, value any) {
	r.printf("%s %s\n", paint(r.styles.Label, label+":"), paint(r.styles.Value, fmt.Sprint(value)))
}

func (r *Renderer) noTrips() {
	r.println(paint(r.styles.Muted, noTripsMessage))
}

func (r *Renderer) elapsed(d time.Duration) {
	r.println()
	r.println(paint(r.styles.Muted, fmt.Sprintf("This took %.6f seconds.", d.Seconds())))
	r.Rule()
}

// TimeReport prints the most frequent times of travel.
func (r *Renderer) TimeReport(rep domain.TimeReport) {
	r.heading("Calculating The Most Frequent Times of Travel...")
	if rep.Rows == 0 {
		r.noTrips()
	} else {
		r.field("The most common month", rep.Month.Value)
		r.field("The most common day of week", rep.Day.Value)
		r.field("The most common start hour", rep.Hour.Value)
	}
	r.elapsed(rep.Elapsed)
}

// StationReport prints the most popular stations and trip.
func (r *Renderer) StationReport(rep domain.StationReport) {
	r.heading("Calculating The Most Popular Stations and Trip...")
	if rep.Rows == 0 {
		r.noTrips()
	} else {
		r.field("The most commonly used start station", rep.Start.Value)
		r.field("The most commonly used end station", rep.End.Value)
		r.field("The most popular station combination", rep.Trip.Value)
	}
	r.elapsed(rep.Elapsed)
}

// DurationReport prints total and mean trip duration.
func (r *Renderer) DurationReport(rep domain.DurationReport) {
	r.heading("Calculating Trip Duration...")
	if rep.Rows == 0 {
		r.noTrips()
	} else {
		r.field("Total travel time", rep.TotalClock())
		r.field("Average travel time", rep.MeanClock())
	}
	r.elapsed(rep.Elapsed)
}

// UserReport prints rider demographics.
func (r *Renderer) UserReport(rep domain.UserReport) {
	r.heading("Calculating User Stats...")
	if rep.Rows == 0 {
		r.noTrips()
		r.elapsed(rep.Elapsed)
		return
	}

	r.println(paint(r.styles.Label, "User types:"))
	r.counts(rep.UserTypes)

	r.println()
	if !rep.HasGender {
		r.println(paint(r.styles.Muted, "There is no gender data."))
	} else {
		r.println(paint(r.styles.Label, "Gender:"))
		r.counts(rep.Genders)
		if rep.GenderMissing > 0 {
			r.printf("  %s\n", paint(r.styles.Muted, fmt.Sprintf("(not recorded) %d", rep.GenderMissing)))
		}
	}

	r.println()
	if rep.BirthYears == nil {
		r.println(paint(r.styles.Muted, "There is no birth year data."))
	} else {
		r.field("The earliest year of birth", rep.BirthYears.Earliest)
		r.field("The most recent year of birth", rep.BirthYears.MostRecent)
		r.field("The most common year of birth", rep.BirthYears.MostCommon)
	}
	r.elapsed(rep.Elapsed)
}

func (r *Renderer) counts(entries []domain.ValueCount) {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Value))
	}
	for _, e := range entries {
		r.printf("  %-*s %s\n", width, e.Value, paint(r.styles.Value, fmt.Sprint(e.Count)))
	}
}

// RowCount announces how many filtered rows the viewer will page through.
func (r *Renderer) RowCount(n int) {
	r.println(paint(r.styles.Muted, fmt.Sprintf("%d trips match the selected filters.", n)))
}

// Window prints one page of raw rows.
func (r *Renderer) Window(columns []string, w domain.RowWindow) {
	r.println(rows.Render(r.styles, columns, w, rows.NoCursor))
}

// EndOfRows reports that the viewer has shown the whole table.
func (r *Renderer) EndOfRows() {
	r.println(paint(r.styles.Muted, "No more trips to show."))
}
