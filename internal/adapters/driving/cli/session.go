package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

const (
	cityPrompt     = "Enter one of these city names (chicago, new york city, washington): "
	monthPrompt    = `Enter a month of the year (january-december) or "all" for no filtering: `
	dayPrompt      = `Enter a day of week (monday-sunday) or "all" for no filtering: `
	viewPrompt     = "\nWould you like to view %d rows of individual trip data? Enter yes or no\n"
	continuePrompt = "Do you wish to continue? Enter yes or no: "
	restartPrompt  = "\nWould you like to restart? Enter yes or no.\n"
)

// PagerFactory creates a row pager over a filtered table.
type PagerFactory func(table *domain.TripTable, viewer domain.ViewerSettings) driving.RowPager

// Session runs the interactive explore loop over a reader and writer.
// Each cycle prompts for a selection, prints the four reports, offers
// the row viewer and asks whether to start again.
type Session struct {
	in       *bufio.Scanner
	render   *Renderer
	trips    driving.TripService
	stats    driving.StatsService
	viewer   domain.ViewerSettings
	newPager PagerFactory
	newID    func() string
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(
	in io.Reader,
	out io.Writer,
	trips driving.TripService,
	stats driving.StatsService,
	viewer domain.ViewerSettings,
) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		render: NewRenderer(out),
		trips:  trips,
		stats:  stats,
		viewer: viewer,
		newPager: func(t *domain.TripTable, v domain.ViewerSettings) driving.RowPager {
			return services.NewPager(t, v)
		},
		newID: func() string { return uuid.NewString()[:8] },
	}
}

// Run repeats cycles until the user declines to restart.
// Running out of input ends the session without error.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.cycle(ctx)
		if errors.Is(err, io.EOF) {
			logger.Debug("Input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// cycle runs one explore pass and returns whether to run another.
func (s *Session) cycle(ctx context.Context) (bool, error) {
	id := s.newID()
	defer logger.StartCycle(id)()
	logger.Section("Cycle " + id)

	s.render.Banner()
	city, err := ask(s, cityPrompt, "Choose chicago, new york city or washington.", domain.ParseCity)
	if err != nil {
		return false, err
	}
	month, err := ask(s, monthPrompt, `Use a full month name or "all".`, domain.ParseMonth)
	if err != nil {
		return false, err
	}
	day, err := ask(s, dayPrompt, `Use a full day name or "all".`, domain.ParseDay)
	if err != nil {
		return false, err
	}
	s.render.Rule()

	sel := domain.Selection{Month: month, Day: day}
	logger.Debug("Exploring %s %s", city, sel)

	table, err := s.trips.Explore(ctx, city, sel)
	switch {
	case err != nil && ctx.Err() != nil:
		return false, ctx.Err()
	case err != nil:
		logger.Warn("Load failed: %v", err)
		s.render.LoadError(city, err)
	default:
		s.report(table)
		if err := s.browse(table); err != nil {
			return false, err
		}
	}

	return ask(s, restartPrompt, "Please answer yes or no.", parseYesNo)
}

// report prints the four statistics reports in order.
func (s *Session) report(table *domain.TripTable) {
	start := time.Now()
	s.render.TimeReport(s.stats.TimeOfTravel(table))
	s.render.StationReport(s.stats.Stations(table))
	s.render.DurationReport(s.stats.Durations(table))
	s.render.UserReport(s.stats.Users(table))
	logger.Debug("Reports over %d rows took %s", table.Len(), time.Since(start))
}

// browse offers the row viewer and pages while the user answers yes.
func (s *Session) browse(table *domain.TripTable) error {
	want, err := ask(s, fmt.Sprintf(viewPrompt, s.viewer.Shown()), "Please answer yes or no.", parseYesNo)
	if err != nil || !want {
		return err
	}

	s.render.RowCount(table.Len())
	pager := s.newPager(table, s.viewer)
	for {
		w, ok := pager.Next()
		if !ok {
			s.render.EndOfRows()
			return nil
		}
		s.render.Window(table.Schema.Columns, w)
		if !pager.HasNext() {
			s.render.EndOfRows()
			return nil
		}

		more, err := ask(s, continuePrompt, "Please answer yes or no.", parseYesNo)
		if err != nil || !more {
			return err
		}
	}
}

// readLine prints question and returns the next line of input.
func (s *Session) readLine(question string) (string, error) {
	s.render.Prompt(question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// ask prompts until parse accepts the answer.
func ask[T any](s *Session, question, hint string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		logger.Debug("Rejected input %q: %v", line, err)
		s.render.Invalid(line, hint)
	}
}

// parseYesNo accepts "yes" or "no" in any case.
func parseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected yes or no, got %q", domain.ErrInvalidInput, input)
	}
}
