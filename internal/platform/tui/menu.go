package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/registry"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

// MenuItem represents a selectable world in the menu.
type MenuItem struct {
	GameID string
	World  config.World
	Title  string
}

// Menu rows below the world list.
const (
	rowDifficulty = iota
	rowLevels
	rowCount
)

// MenuModel is the Bubble Tea model for the world and difficulty picker.
// The cursor walks the world list first, then the difficulty and level
// count rows, which Left/Right adjust.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	world      int // index of the highlighted world
	difficulty int // index into config.Difficulties()
	levels     int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper

	quitting       bool
	selected       *MenuItem // Set when user selects a world
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The runtime config's difficulty
// and level count preselect the matching rows.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		if !strings.HasPrefix(g.ID, skyrunner.IDPrefix) {
			continue
		}
		w, err := config.ParseWorld(strings.TrimPrefix(g.ID, skyrunner.IDPrefix))
		if err != nil {
			continue
		}
		items = append(items, MenuItem{GameID: g.ID, World: w, Title: w.Title()})
	}
	orderItems(items)

	diff := 1
	if d, err := config.ParseDifficulty(cfg.Difficulty); err == nil {
		for i, candidate := range config.Difficulties() {
			if candidate == d {
				diff = i
			}
		}
	}
	levels := cfg.Levels
	if levels < 1 || levels > skyrunner.MaxLevels {
		levels = 1
	}

	return MenuModel{
		items:      items,
		difficulty: diff,
		levels:     levels,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// orderItems sorts worlds into campaign order instead of ID order.
func orderItems(items []MenuItem) {
	rank := make(map[config.World]int)
	for i, w := range config.Worlds() {
		rank[w] = i
	}
	slices.SortFunc(items, func(a, b MenuItem) int {
		return cmp.Compare(rank[a.World], rank[b.World])
	})
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) rows() int {
	return len(m.items) + rowCount
}

// onSetting reports which settings row the cursor is on, or -1.
func (m MenuModel) onSetting() int {
	if m.cursor < len(m.items) {
		return -1
	}
	return m.cursor - len(m.items)
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		if m.cursor < len(m.items) {
			m.world = m.cursor
		}
		selected := m.items[m.world]
		m.selected = &selected
		m.config.Difficulty = string(config.Difficulties()[m.difficulty])
		m.config.Levels = m.levels
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.cursor < len(m.items) {
		m.world = m.cursor
	}
	return m, nil
}

// adjust changes the setting under the cursor, wrapping difficulty and
// clamping the level count.
func (m *MenuModel) adjust(delta int) {
	switch m.onSetting() {
	case rowDifficulty:
		n := len(config.Difficulties())
		m.difficulty = (m.difficulty + delta + n) % n
	case rowLevels:
		m.levels = core.Clamp(m.levels+delta, 1, skyrunner.MaxLevels)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := DefaultTheme()
	if len(m.items) > 0 {
		theme = WorldTheme(m.items[m.world].World)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("  S K Y   R U N N E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Description.Render("Select a world"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.line(theme, i, item.Title), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	diff := config.Difficulties()[m.difficulty]
	b.WriteString(centerText(m.line(theme, len(m.items)+rowDifficulty, "Difficulty: < "+diff.Label()+" >"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.line(theme, len(m.items)+rowLevels, fmt.Sprintf("Levels:     < %d >", m.levels)), m.width))
	b.WriteString("\n\n")

	if best := m.bestScore(); best > 0 {
		b.WriteString(centerText(theme.Value.Render(fmt.Sprintf("Best on %s: %d", diff.Label(), best)), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Fly  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(theme.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) line(theme Theme, row int, text string) string {
	if row == m.cursor {
		return theme.ItemActive.Render("> " + text)
	}
	return theme.ItemNormal.Render("  " + text)
}

// bestScore looks up the best stored score for the highlighted world and
// difficulty. Errors read as no score.
func (m MenuModel) bestScore() int {
	if m.store == nil || len(m.items) == 0 {
		return 0
	}
	best, err := m.store.BestScore(string(m.items[m.world].World), string(config.Difficulties()[m.difficulty]))
	if err != nil {
		return 0
	}
	return best
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config with the chosen difficulty and level
// count, and any size change from a resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring styled text by
// its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	World           config.World
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// resultFrom extracts the outcome of a finished menu.
func resultFrom(m MenuModel) MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
		result.World = m.Selected().World
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return resultFrom(m), nil
}
