package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func sampleTable() *domain.TripTable {
	return &domain.TripTable{
		City:   domain.CityWashington,
		Schema: domain.Schema{Columns: []string{domain.ColumnStartStation, domain.ColumnEndStation}},
		Records: []domain.TripRecord{
			{StartStation: "Union Station", EndStation: "Dupont Circle", Raw: []string{"Union Station", "Dupont Circle"}},
			{StartStation: "Eastern Market", EndStation: "Union Station", Raw: []string{"Eastern Market", "Union Station"}},
		},
	}
}

func TestNewApp_RequiresTable(t *testing.T) {
	app, err := NewApp(nil, domain.ViewerSettings{PageSize: 5}, "")

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingTable)
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(sampleTable(), domain.ViewerSettings{PageSize: 5}, "washington")

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.False(t, app.Ready())
	assert.Nil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(sampleTable(), domain.ViewerSettings{PageSize: 5}, "washington")
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Eastern Market")
}

func TestApp_SetDimensions_ReachesView(t *testing.T) {
	app, err := NewApp(sampleTable(), domain.ViewerSettings{PageSize: 5}, "washington")
	require.NoError(t, err)
	assert.Contains(t, app.View(), "Initialising...")

	app.SetDimensions(80, 24)

	assert.True(t, app.Ready())
	assert.NotContains(t, app.View(), "Initialising...")
	assert.Contains(t, app.View(), "Union Station")
}

func TestApp_Update_QuitKey(t *testing.T) {
	app, err := NewApp(sampleTable(), domain.ViewerSettings{PageSize: 5}, "")
	require.NoError(t, err)
	app.SetDimensions(120, 30)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
