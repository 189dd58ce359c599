// Package tui provides the full-screen terminal trip browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/browse"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

// App is the browser application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	browseView *browse.View
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser over an already filtered table.
func NewApp(table *domain.TripTable, viewer domain.ViewerSettings, title string) (*App, error) {
	if table == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingTable)
	}

	pager := services.NewPager(table, viewer)
	return &App{
		browseView: browse.NewView(styles.DefaultStyles(), table, pager, title),
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.browseView.Init()
}

// Update implements tea.Model. Every message, window sizes included,
// goes to the browse view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.browseView, cmd = a.browseView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	return a.browseView.View()
}

// Run starts the Bubbletea program on the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Ready returns true once the browse view knows the terminal size.
func (a *App) Ready() bool {
	return a.browseView.Ready()
}

// SetDimensions passes the terminal dimensions to the browse view.
func (a *App) SetDimensions(width, height int) {
	a.browseView.SetDimensions(width, height)
}
