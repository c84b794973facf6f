package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/audio"
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/replay"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

// ScreenshotDir is where ctrl+s writes plain-text screenshots.
const ScreenshotDir = "~/.skyrunner/screenshots"

// Options wires a game model to the rest of the application.
// Every field is optional.
type Options struct {
	Store      *storage.Store
	Audio      *audio.Dispatcher
	Logger     *log.Logger
	RecordPath string // write a replay of the first finished run here
}

// Model is the Bubble Tea model for one Sky Runner game.
type Model struct {
	game     *skyrunner.Game
	screen   *core.Screen
	renderer *Renderer
	opts     Options
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	latch    *InputLatch
	recorder *replay.Recorder

	gameState  core.GameState
	runSaved   bool // Whether the current run has been stored
	recorded   bool // Whether the replay file has been written
	embedded   bool // Back returns to the session instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel resets the game and builds a model around it. A zero seed is
// replaced by a time-based one so the run can still be recorded.
func NewModel(game *skyrunner.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.SetLogger(opts.Logger)

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(WorldTheme(game.World())),
		opts:     opts,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		latch:    NewInputLatch(DefaultHold),
	}
	if opts.RecordPath != "" {
		m.recorder = replay.NewRecorder(game.World(), cfg)
	}
	m.gameState = game.State()
	return m, nil
}

// Init starts the world's music and the tick loop.
func (m Model) Init() tea.Cmd {
	if m.opts.Audio != nil {
		if err := m.opts.Audio.Backend().PlayMusic(m.game.World()); err != nil {
			m.logger.Debug("no music", "world", m.game.World(), "err", err)
		}
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is resolution independent, so a resize never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || m.game.Sim().Phase() == skyrunner.PhaseReady {
			m.backToMenu = true
			m.stopMusic()
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "err", err)
		return
	}
	m.gameState = m.game.State()
	m.runSaved = false
	m.latch.Release()
	if m.recorder != nil && !m.recorded {
		m.recorder = replay.NewRecorder(m.game.World(), m.config)
	}
	if m.opts.Audio != nil {
		if err := m.opts.Audio.Backend().PlayMusic(m.game.World()); err != nil {
			m.logger.Debug("no music", "world", m.game.World(), "err", err)
		}
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.latch.Frame()
	if m.recorder != nil {
		m.recorder.Record(in)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if m.opts.Audio != nil && len(result.Events) > 0 {
		m.opts.Audio.Publish(result.Events...)
	}
	if m.gameState.Paused {
		m.latch.Release()
	}

	if m.gameState.GameOver && !m.runSaved {
		m.finishRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun stores the run and writes the replay once per model.
func (m *Model) finishRun() {
	sum := m.game.Summary()
	m.logger.Info("run finished",
		"world", sum.World,
		"difficulty", sum.Difficulty,
		"score", sum.Score,
		"won", sum.Won,
		"levels", fmt.Sprintf("%d/%d", sum.LevelsCompleted, sum.Levels),
	)

	if m.opts.Store != nil && sum.Score > 0 {
		if _, err := m.opts.Store.SaveRun(RunFromSummary(sum)); err != nil {
			m.logger.Warn("could not save run", "err", err)
		}
	}

	if m.recorder != nil && !m.recorded {
		rec := m.recorder.Finish(m.game)
		if err := replay.Save(m.opts.RecordPath, rec); err != nil {
			m.logger.Warn("could not save replay", "path", m.opts.RecordPath, "err", err)
		} else {
			m.logger.Info("replay saved", "path", m.opts.RecordPath, "steps", rec.Steps)
		}
		m.recorded = true
	}
}

// RunFromSummary converts a finished game into a history row.
func RunFromSummary(s skyrunner.Summary) storage.Run {
	return storage.Run{
		World:           string(s.World),
		Difficulty:      string(s.Difficulty),
		Levels:          s.Levels,
		LevelsCompleted: s.LevelsCompleted,
		Score:           s.Score,
		EnemiesDefeated: s.EnemiesDefeated,
		ObstaclesPassed: s.ObstaclesPassed,
		Ticks:           s.Ticks,
		Seed:            s.Seed,
		Won:             s.Won,
	}
}

func (m *Model) stopMusic() {
	if m.opts.Audio != nil {
		m.opts.Audio.Backend().StopMusic()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.ExpandHome(ScreenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits or goes back.
func Run(game *skyrunner.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	if model.opts.Audio != nil {
		model.opts.Audio.Backend().StopMusic()
	}
	return err
}
