package browse

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

func tripTable(n int) *domain.TripTable {
	recs := make([]domain.TripRecord, n)
	for i := range recs {
		recs[i].StartStation = fmt.Sprintf("Station %d", i)
		recs[i].Raw = []string{fmt.Sprintf("Station %d", i)}
	}
	return &domain.TripTable{
		City:    domain.CityChicago,
		Schema:  domain.Schema{Columns: []string{domain.ColumnStartStation}},
		Records: recs,
	}
}

func newView(n int, viewer domain.ViewerSettings) *View {
	table := tripTable(n)
	v := NewView(styles.PlainStyles(), table, services.NewPager(table, viewer), "chicago month=all day=all")
	v.SetDimensions(120, 40)
	return v
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView_LoadsFirstPage(t *testing.T) {
	v := newView(12, domain.ViewerSettings{PageSize: 5})

	require.NotNil(t, v)
	assert.Equal(t, 0, v.Window().Offset)
	assert.Len(t, v.Window().Records, 5)
	assert.False(t, v.Exhausted())
}

func TestNewView_NilStyles(t *testing.T) {
	table := tripTable(1)
	v := NewView(nil, table, services.NewPager(table, domain.ViewerSettings{PageSize: 5}), "")

	assert.NotNil(t, v.styles)
}

func TestView_Init(t *testing.T) {
	v := newView(1, domain.ViewerSettings{PageSize: 5})

	assert.Nil(t, v.Init())
}

func TestView_View_NotReady(t *testing.T) {
	table := tripTable(1)
	v := NewView(nil, table, services.NewPager(table, domain.ViewerSettings{PageSize: 5}), "")

	assert.Equal(t, "Initialising...", v.View())
	assert.False(t, v.Ready())
}

func TestView_Update_WindowSize(t *testing.T) {
	v := newView(1, domain.ViewerSettings{PageSize: 5})

	updated, cmd := v.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, v, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, v.width)
	assert.Equal(t, 50, v.height)
}

func TestView_Update_NextPageUntilExhausted(t *testing.T) {
	v := newView(12, domain.ViewerSettings{PageSize: 5})

	v.Update(runes('n'))
	assert.Equal(t, 5, v.Window().Offset)

	v.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 10, v.Window().Offset)
	assert.Len(t, v.Window().Records, 2)

	// The last page stays on screen once the pager runs out.
	v.Update(runes('n'))
	assert.True(t, v.Exhausted())
	assert.Equal(t, 10, v.Window().Offset)
	assert.Contains(t, v.View(), "End of data (12 rows)")
}

func TestView_Update_LegacySkip(t *testing.T) {
	v := newView(12, domain.ViewerSettings{PageSize: 5, LegacySkip: true})

	assert.Len(t, v.Window().Records, 4)
	v.Update(runes('n'))
	assert.Equal(t, 5, v.Window().Offset)
	assert.Equal(t, "Station 5", v.Window().Records[0].StartStation)
}

func TestView_Update_FirstPageRewinds(t *testing.T) {
	v := newView(12, domain.ViewerSettings{PageSize: 5})
	v.Update(runes('n'))
	v.Update(runes('n'))
	v.Update(runes('n'))
	require.True(t, v.Exhausted())

	v.Update(runes('g'))

	assert.False(t, v.Exhausted())
	assert.Equal(t, 0, v.Window().Offset)
}

func TestView_Update_CursorBounds(t *testing.T) {
	v := newView(3, domain.ViewerSettings{PageSize: 5})

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Cursor())

	v.Update(runes('j'))
	v.Update(runes('j'))
	v.Update(runes('j'))
	assert.Equal(t, 2, v.Cursor())

	v.Update(runes('k'))
	assert.Equal(t, 1, v.Cursor())
}

func TestView_Update_Quit(t *testing.T) {
	v := newView(3, domain.ViewerSettings{PageSize: 5})

	_, cmd := v.Update(runes('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Update_HelpToggle(t *testing.T) {
	v := newView(3, domain.ViewerSettings{PageSize: 5})

	v.Update(runes('?'))
	assert.Contains(t, v.View(), "first page")

	v.Update(runes('?'))
	assert.NotContains(t, v.View(), "first page")
}

func TestView_View_RendersRows(t *testing.T) {
	v := newView(3, domain.ViewerSettings{PageSize: 5})

	out := v.View()

	assert.Contains(t, out, "Trip browser")
	assert.Contains(t, out, domain.ColumnStartStation)
	assert.Contains(t, out, "Station 2")
	assert.Contains(t, out, "Rows 1-3 of 3")
}

func TestView_View_Empty(t *testing.T) {
	v := newView(0, domain.ViewerSettings{PageSize: 5})

	out := v.View()

	assert.True(t, v.Exhausted())
	assert.Contains(t, out, "No trips match the selected filters.")
}
