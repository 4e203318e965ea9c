package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelInfo describes a campaign level in the level picker.
type LevelInfo struct {
	ID   string
	Name string
}

// Main menu entries
const (
	menuPlay = iota
	menuSelectLevel
	menuScores
	menuQuit
	menuCount
)

var menuLabels = [menuCount]string{
	menuPlay:        "Play campaign",
	menuSelectLevel: "Select level...",
	menuScores:      "High scores",
	menuQuit:        "Quit",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	levels        []LevelInfo
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	quitting      bool
	scoreboard    bool
	startLevel    int // 1-indexed; 0 until a choice is made
}

// NewMenuModel creates a menu for the given campaign levels.
func NewMenuModel(levels []LevelInfo, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels:    levels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, menuCount-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, menuCount-1)
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.startLevel = 1
			return m, tea.Quit
		case menuSelectLevel:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case menuScores:
			m.scoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.levelCursor = core.Clamp(m.levelCursor-1, 0, len(m.levels)-1)
	case MenuActionDown:
		m.levelCursor = core.Clamp(m.levelCursor+1, 0, len(m.levels)-1)
	case MenuActionSelect:
		m.startLevel = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.scoreboard || m.startLevel > 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L A V A   P L A T F O R M E R"), m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Select level", m.width))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			b.WriteString(centerText(m.entry(fmt.Sprintf("%2d. %s", i+1, lvl.Name), i == m.levelCursor), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(menuHelpStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))
		return b.String()
	}

	b.WriteString(centerText(fmt.Sprintf("%d levels", len(m.levels)), m.width))
	b.WriteString("\n\n")
	for i, label := range menuLabels {
		b.WriteString(centerText(m.entry(label, i == m.cursor), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) entry(label string, selected bool) string {
	if selected {
		return menuCursorStyle.Render("> " + label)
	}
	return "  " + label
}

// centerText centers text within width, measuring its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the outcome of the menu.
type MenuResult struct {
	StartLevel      int // 1-indexed
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result returns the menu outcome.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.scoreboard:
		r.WantsScoreboard = true
	case m.startLevel > 0:
		r.StartLevel = m.startLevel
	default:
		r.Quit = true
	}
	return r
}

// RunMenu runs the menu and returns the selection.
func RunMenu(levels []LevelInfo, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(levels, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
