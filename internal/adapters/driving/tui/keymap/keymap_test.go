package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Help.Keys(), "?")
	assert.Contains(t, km.NextPage.Keys(), "n")
	assert.Contains(t, km.NextPage.Keys(), " ")
	assert.Contains(t, km.FirstPage.Keys(), "g")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "j")
}

func TestKeyMap_MatchesKeyMsg(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"n advances", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, km.NextPage},
		{"space advances", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.NextPage},
		{"home rewinds", tea.KeyMsg{Type: tea.KeyHome}, km.FirstPage},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 3)
	assert.Equal(t, "next page", help[0].Help().Desc)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}
