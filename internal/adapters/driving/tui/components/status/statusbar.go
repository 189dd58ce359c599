// Package status provides the status bar component for the trip browser.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// State represents the current browser state for display.
type State string

const (
	StateBrowsing State = "browsing"
	StateEnd      State = "end"
	StateEmpty    State = "empty"
	StateHelp     State = "help"
)

// Bar displays the visible row range and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	window  domain.RowWindow
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateBrowsing,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var text string
	switch s.state {
	case StateEmpty:
		text = "No trips match"
	case StateHelp:
		text = "Help"
	case StateEnd:
		text = fmt.Sprintf("End of data (%d rows)", s.window.Total)
	default:
		text = fmt.Sprintf("Rows %d-%d of %d", s.window.Offset+1, s.window.Last(), s.window.Total)
	}
	if s.message != "" {
		text += " | " + s.message
	}
	return text
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(hints, " | ")
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the trailing message, typically the active selection.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWindow records the window currently on screen.
func (s *Bar) SetWindow(w domain.RowWindow) {
	s.window = w
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
