package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testLevels = []LevelInfo{
	{ID: "01-a", Name: "First"},
	{ID: "02-b", Name: "Second"},
	{ID: "03-c", Name: "Third"},
}

func menuKeys(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuPlayCampaign(t *testing.T) {
	m := menuKeys(NewMenuModel(testLevels, testConfig()), keyEnter)

	r := m.Result()
	if r.StartLevel != 1 || r.Quit || r.WantsScoreboard {
		t.Errorf("Result() = %+v, expected start at level 1", r)
	}
}

func TestMenuSelectLevel(t *testing.T) {
	m := NewMenuModel(testLevels, testConfig())
	m = menuKeys(m, keyDown, keyEnter)
	if !strings.Contains(m.View(), "Second") {
		t.Error("level picker does not list level names")
	}

	m = menuKeys(m, keyDown, keyDown, keyDown, keyEnter)
	if r := m.Result(); r.StartLevel != 3 {
		t.Errorf("StartLevel = %d, expected 3 (cursor clamps at the last level)", r.StartLevel)
	}
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := menuKeys(NewMenuModel(testLevels, testConfig()), keyDown, keyEnter, keyEsc)
	if m.inLevelSelect {
		t.Fatal("esc did not leave the level picker")
	}
	if r := m.Result(); !r.Quit {
		t.Errorf("Result() = %+v before a choice, expected Quit", r)
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := menuKeys(NewMenuModel(testLevels, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuKeys(NewMenuModel(testLevels, testConfig()), keyDown, keyDown, keyEnter)
	if !m.Result().WantsScoreboard {
		t.Error("High scores entry should open the scoreboard")
	}
}

func TestMenuCursorClamp(t *testing.T) {
	m := menuKeys(NewMenuModel(testLevels, testConfig()), keyUp, keyUp)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top, expected 0", m.cursor)
	}

	m = menuKeys(m, keyDown, keyDown, keyDown, keyDown, keyDown, keyEnter)
	if r := m.Result(); !r.Quit {
		t.Errorf("Result() = %+v after selecting Quit, expected Quit", r)
	}
}

func TestMenuNoLevels(t *testing.T) {
	m := menuKeys(NewMenuModel(nil, testConfig()), keyDown, keyEnter)
	if m.inLevelSelect {
		t.Error("level picker opened without levels")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}
