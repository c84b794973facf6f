package skyrunner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

// IDPrefix prefixes every registered world's game ID.
const IDPrefix = "skyrunner_"

func init() {
	for _, w := range config.Worlds() {
		registry.Register(IDPrefix+string(w), func() registry.Game { return New(w) })
	}
}

// Game adapts a Sim to the registry.Game interface for one world.
type Game struct {
	world   config.World
	runtime core.RuntimeConfig
	logger  *log.Logger
	sim     *Sim
}

// New creates a game for a world. Reset must be called before Step.
func New(world config.World) *Game {
	return &Game{world: world}
}

// SetLogger sets the logger handed to the Sim on the next Reset.
// Nil discards.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return IDPrefix + string(g.world)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Runner: " + g.world.Title()
}

// Reset loads configuration and builds a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := config.Load(rc.ConfigPath)
	if err != nil {
		return fmt.Errorf("skyrunner: %w", err)
	}
	diff, err := config.ParseDifficulty(rc.Difficulty)
	if err != nil {
		return fmt.Errorf("skyrunner: %w", err)
	}
	sim, err := NewSim(Options{
		World:      g.world,
		Difficulty: diff,
		Levels:     rc.Levels,
		Seed:       rc.Seed,
		Config:     cfg,
		Logger:     g.logger,
	})
	if err != nil {
		return err
	}
	g.runtime = rc
	g.sim = sim
	return nil
}

// Step handles run-level intents and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	switch g.sim.Phase() {
	case PhaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionShoot) {
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}
	case PhaseGameOver, PhaseVictory:
		if in.Has(core.ActionRestart) {
			if err := g.Reset(g.runtime); err != nil && g.logger != nil {
				g.logger.Error("restart failed", "err", err)
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}

	events := g.sim.Tick(IntentsFrom(in))
	return core.StepResult{State: g.State(), Events: events}
}

// IntentsFrom maps platform actions to craft intents.
func IntentsFrom(in core.InputFrame) Intents {
	return Intents{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Shoot: in.Has(core.ActionShoot),
	}
}

// State returns the run status. Once the run is over Score is the final
// score; during play it is the running score.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:  g.sim.Score(),
		Lives:  g.sim.Lives(),
		Paused: g.sim.Phase() == PhasePaused,
	}
	switch g.sim.Phase() {
	case PhaseGameOver:
		st.GameOver = true
		st.Score = g.sim.FinalScore()
	case PhaseVictory:
		st.GameOver = true
		st.Won = true
		st.Score = g.sim.FinalScore()
	}
	return st
}

// Sim returns the underlying simulation, nil before Reset.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Views returns the entities to draw.
func (g *Game) Views() []EntityView {
	if g.sim == nil {
		return nil
	}
	return g.sim.Views()
}

// World returns the world this game plays.
func (g *Game) World() config.World {
	return g.world
}

// Runtime returns the settings of the last successful Reset.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

// Summary describes a run for the history store.
type Summary struct {
	World           config.World
	Difficulty      config.Difficulty
	Levels          int
	LevelsCompleted int
	Score           int
	EnemiesDefeated int
	ObstaclesPassed int
	Ticks           uint64
	Seed            int64
	Won             bool
}

// Summary returns the current run's totals. Score follows State.
func (g *Game) Summary() Summary {
	if g.sim == nil {
		return Summary{World: g.world}
	}
	lm := g.sim.Levels()
	st := g.State()
	return Summary{
		World:           g.world,
		Difficulty:      g.sim.Difficulty(),
		Levels:          lm.Count(),
		LevelsCompleted: lm.LevelsCompleted(),
		Score:           st.Score,
		EnemiesDefeated: lm.EnemiesDefeated(),
		ObstaclesPassed: lm.ObstaclesPassed(),
		Ticks:           g.sim.TickCount(),
		Seed:            g.runtime.Seed,
		Won:             st.Won,
	}
}

// Frame maps craft intents back to platform actions, the inverse of
// IntentsFrom.
func (in Intents) Frame() core.InputFrame {
	f := core.NewInputFrame()
	if in.Up {
		f.Set(core.ActionUp)
	}
	if in.Down {
		f.Set(core.ActionDown)
	}
	if in.Left {
		f.Set(core.ActionLeft)
	}
	if in.Right {
		f.Set(core.ActionRight)
	}
	if in.Shoot {
		f.Set(core.ActionShoot)
	}
	return f
}
