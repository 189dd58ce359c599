// Package browse provides the full-screen trip browser view.
package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/rows"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// View pages through the raw rows of a filtered trip table.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	status *status.Bar
	pager  driving.RowPager

	title     string
	columns   []string
	window    domain.RowWindow
	exhausted bool
	cursor    int
	showHelp  bool
	width     int
	height    int
	ready     bool
}

// NewView creates a browser over table. The first page is loaded immediately.
func NewView(s *styles.Styles, table *domain.TripTable, pager driving.RowPager, title string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	var columns []string
	if table != nil {
		columns = table.Schema.Columns
	}

	v := &View{
		styles:  s,
		keymap:  km,
		help:    help.New(),
		status:  status.NewBar(s, km),
		pager:   pager,
		title:   title,
		columns: columns,
		width:   80,
		height:  24,
	}
	v.status.SetMessage(title)
	v.advance()
	return v
}

// Init initialises the browse view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keymap.Help):
			v.showHelp = !v.showHelp
			v.help.ShowAll = v.showHelp

		case key.Matches(msg, v.keymap.NextPage):
			v.advance()

		case key.Matches(msg, v.keymap.FirstPage):
			v.pager.Reset()
			v.exhausted = false
			v.advance()

		case key.Matches(msg, v.keymap.Up):
			if v.cursor > 0 {
				v.cursor--
			}

		case key.Matches(msg, v.keymap.Down):
			if v.cursor < len(v.window.Records)-1 {
				v.cursor++
			}
		}
		v.syncStatus()
	}

	return v, nil
}

// advance moves to the next window. Once the pager is exhausted the
// last window stays on screen.
func (v *View) advance() {
	if v.exhausted {
		return
	}
	w, ok := v.pager.Next()
	if !ok {
		v.exhausted = true
		v.window.Total = w.Total
		v.syncStatus()
		return
	}
	v.window = w
	v.cursor = 0
	v.syncStatus()
}

func (v *View) syncStatus() {
	v.status.SetWindow(v.window)
	switch {
	case v.showHelp:
		v.status.SetState(status.StateHelp)
	case v.window.Total == 0:
		v.status.SetState(status.StateEmpty)
	case v.exhausted:
		v.status.SetState(status.StateEnd)
	default:
		v.status.SetState(status.StateBrowsing)
	}
}

// View renders the browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Trip browser"))
	b.WriteString("\n\n")

	if v.window.Total == 0 {
		b.WriteString(v.styles.Muted.Render("No trips match the selected filters."))
	} else {
		b.WriteString(rows.Render(v.styles, v.columns, v.window, v.cursor))
	}
	b.WriteString("\n\n")

	if v.showHelp {
		b.WriteString(v.help.View(v.keymap))
		b.WriteString("\n")
	}
	b.WriteString(v.status.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.status.SetWidth(width)
	v.ready = true
}

// Ready returns true once the terminal size is known.
func (v *View) Ready() bool {
	return v.ready
}

// Window returns the rows currently on screen.
func (v *View) Window() domain.RowWindow {
	return v.window
}

// Exhausted returns true once every page has been shown.
func (v *View) Exhausted() bool {
	return v.exhausted
}

// Cursor returns the highlighted row relative to the window.
func (v *View) Cursor() int {
	return v.cursor
}
