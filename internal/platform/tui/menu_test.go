package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMenuShowsPresetHighScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: gameID, Preset: "hard", Score: 1234, Level: 3})
	require.NoError(t, err)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30}, config.DifficultyNormal)
	assert.Equal(t, 1, m.cursor, "cursor starts on the initial preset")

	view := m.View()
	assert.Contains(t, view, "best 1234")
	for _, p := range config.Presets {
		assert.Contains(t, view, string(p))
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyEasy)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, config.DifficultyNormal, m.Selected().Preset)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuCursorClamps(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyEasy)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, next.(MenuModel).cursor)

	var model tea.Model = m
	for range len(config.Presets) + 2 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(config.Presets)-1, model.(MenuModel).cursor)
}

func TestScoreboardTabsFilterByPreset(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: gameID, Preset: "easy", Score: 10, Level: 1},
		{GameID: gameID, Preset: "hard", Score: 30, Level: 2},
		{GameID: gameID, Preset: "hard", Score: 20, Level: 1},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	assert.Equal(t, "", m.Preset())
	assert.Len(t, m.Scores(), 3)

	// All -> easy -> normal -> hard
	var model tea.Model = m
	for range 3 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m = model.(ScoreboardModel)
	assert.Equal(t, "hard", m.Preset())
	require.Len(t, m.Scores(), 2)
	assert.Equal(t, 30, m.Scores()[0].Score)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = model.(ScoreboardModel)
	assert.Equal(t, "normal", m.Preset())
	assert.Empty(t, m.Scores())
	assert.True(t, strings.Contains(m.View(), "No scores recorded yet"))
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 27, TickRate: 60}, config.DifficultyNormal, nil)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	assert.Equal(t, screenGame, s.screen)
	assert.NotNil(t, cmd, "game starts its tick loop")

	next, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.screen)
	assert.Nil(t, cmd, "leaving a game does not quit the session")
	assert.False(t, s.quitting)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	assert.Equal(t, screenScores, s.screen)
}
