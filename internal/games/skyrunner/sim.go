package skyrunner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Phase is the run's state machine position.
type Phase int

const (
	PhaseReady Phase = iota // created, waiting for start
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Options selects what run to build.
type Options struct {
	World      config.World
	Difficulty config.Difficulty
	Levels     int // 0 means one level
	Seed       int64
	Config     config.SkyRunnerConfig
	Logger     *log.Logger // nil discards
}

// Sim is the simulation state for one run. Every tick runs the same fixed
// pipeline; nothing outside the Sim is mutated.
type Sim struct {
	cfg        config.SkyRunnerConfig
	world      config.World
	difficulty config.Difficulty
	logger     *log.Logger

	rng    *RNG
	levels *LevelManager
	pace   *config.DifficultyManager

	player      *Craft
	obstacles   []*Obstacle
	enemies     []*Enemy
	projectiles []*Projectile
	powerUps    []*PowerUp
	clouds      []*Cloud
	features    []*Feature

	cursors spawnCursors

	phase      Phase
	tick       uint64
	score      int
	distance   float64
	baseScroll float64
	scroll     float64

	events []core.Event
}

// NewSim builds a run. Unknown worlds or difficulties fail here, before
// any tick runs.
func NewSim(opts Options) (*Sim, error) {
	if _, err := config.ParseWorld(string(opts.World)); err != nil {
		return nil, fmt.Errorf("skyrunner: %w", err)
	}
	tier, err := opts.Config.Tiers.For(opts.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("skyrunner: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := NewRNG(opts.Seed)
	levels, err := NewLevelManager(opts.Config, opts.World, opts.Difficulty, opts.Levels, rng, logger)
	if err != nil {
		return nil, fmt.Errorf("skyrunner: %w", err)
	}

	s := &Sim{
		cfg:        opts.Config,
		world:      opts.World,
		difficulty: opts.Difficulty,
		logger:     logger,
		rng:        rng,
		levels:     levels,
		pace:       config.NewDifficultyManager(tier, opts.Config.Spawn.LateCompletionPercent),
		player:     NewCraft(opts.Config.Player, opts.Config.Combat),
	}
	s.resetCursors()
	s.baseScroll = levels.Current().ScrollSpeed
	s.scroll = s.baseScroll
	s.seedScenery()
	return s, nil
}

// Start moves a ready run into play.
func (s *Sim) Start() {
	if s.phase == PhaseReady {
		s.phase = PhasePlaying
		s.logger.Debug("run started", "world", s.world, "difficulty", s.difficulty, "level", s.levels.Current().Name)
	}
}

// TogglePause switches between playing and paused.
func (s *Sim) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhasePlaying
	}
}

// Tick advances the run by one fixed step and returns the events it
// produced. Outside PhasePlaying it does nothing.
func (s *Sim) Tick(in Intents) []core.Event {
	if s.phase != PhasePlaying {
		return nil
	}
	s.events = nil
	s.tick++

	s.updatePlayer(in)
	s.player.Lives = s.levels.Lives()

	s.distance += s.scroll
	s.levels.Update(floorInt(s.scroll))

	s.spawn()
	s.advance()
	s.resolveCollisions()
	s.cleanup()
	s.scoreTick()
	s.checkConditions()

	return s.events
}

func (s *Sim) emit(kind core.EventKind, x, y float64) {
	s.events = append(s.events, core.Event{Kind: kind, Tick: s.tick, X: x, Y: y})
}

func (s *Sim) updatePlayer(in Intents) {
	s.player.Steer(in)
	if in.Shoot && s.player.TryShoot() {
		x, y := s.player.Muzzle()
		s.projectiles = append(s.projectiles,
			NewPlayerShot(x, y, s.cfg.Combat.PlayerShotSpeed, s.cfg.Combat.PlayerShotBoost))
		s.emit(core.EventShoot, x, y)
	}
	s.player.Tick(s.scroll)

	s.scroll = s.baseScroll
	if s.player.TurboActive() {
		s.scroll = s.baseScroll * s.cfg.Player.TurboScrollFactor
	}
}

// advance moves every non-player entity one tick, including enemy fire
// and the turbine slow field.
func (s *Sim) advance() {
	for _, c := range s.clouds {
		c.Tick(s.scroll)
	}
	for _, f := range s.features {
		f.Tick(s.scroll)
	}
	for _, o := range s.obstacles {
		o.Tick(s.scroll)
	}
	s.applyTurbineField()

	completion := s.levels.Current().CompletionPercent()
	chance := s.pace.FireChance(completion, s.levels.Current().Number, s.cfg.Combat.FirstLevelLateFireChance)
	spread := s.pace.SpreadShot(completion)
	for _, e := range s.enemies {
		e.Tick(s.scroll)
		if e.Ready() && s.rng.Chance(chance) {
			s.enemyFire(e, spread)
		}
	}

	for _, p := range s.projectiles {
		p.Tick(s.scroll)
	}
	for _, p := range s.powerUps {
		p.Tick(s.scroll)
	}
}

func (s *Sim) enemyFire(e *Enemy, spread bool) {
	c := s.cfg.Combat
	x, y := e.Fire()
	s.projectiles = append(s.projectiles, NewEnemyShot(x, y, c.EnemyShotSpeed, c.EnemyShotScrollDrag))
	if spread {
		s.projectiles = append(s.projectiles,
			NewEnemyShot(x, y-6, c.EnemyShotSpeed, c.EnemyShotScrollDrag),
			NewEnemyShot(x, y+6, c.EnemyShotSpeed-1, c.EnemyShotScrollDrag))
	}
}

// applyTurbineField slows the craft while its centre is within range of
// any turbine's centre, contact or not.
func (s *Sim) applyTurbineField() {
	c := s.cfg.Combat
	px, py := s.player.Center()
	for _, o := range s.obstacles {
		if !o.Active || o.Type != ObstacleTurbine {
			continue
		}
		ox, oy := o.Center()
		if core.Distance(px, py, ox, oy) <= c.TurbineSlowRadius {
			s.player.ApplySlow(c.TurbineSlowFactor, c.TurbineSlowFrames)
		}
	}
}

// checkConditions runs the end-of-tick state transitions.
func (s *Sim) checkConditions() {
	if s.levels.GameOver() {
		s.phase = PhaseGameOver
		s.emit(core.EventGameOver, s.player.X, s.player.Y)
		s.logger.Debug("run lost", "score", s.levels.FinalScore(), "level", s.levels.Current().Name)
		return
	}

	if !s.levels.Current().Completed {
		return
	}
	finished := s.levels.Current().Name
	s.emit(core.EventLevelComplete, s.player.X, s.player.Y)
	if s.levels.Advance() {
		s.clearWorld()
		s.logger.Debug("level complete", "level", finished, "next", s.levels.Current().Name)
		return
	}
	s.phase = PhaseVictory
	s.emit(core.EventVictory, s.player.X, s.player.Y)
	s.logger.Debug("run won", "score", s.levels.FinalScore())
}

// clearWorld empties all collections for the next level.
func (s *Sim) clearWorld() {
	s.obstacles = nil
	s.enemies = nil
	s.projectiles = nil
	s.powerUps = nil
	s.clouds = nil
	s.features = nil
	s.resetCursors()
	s.baseScroll = s.levels.Current().ScrollSpeed
	s.scroll = s.baseScroll
	s.seedFeatures()
}

// Phase returns the state machine position.
func (s *Sim) Phase() Phase { return s.phase }

// TickCount returns how many ticks have been simulated.
func (s *Sim) TickCount() uint64 { return s.tick }

// Score returns the running score.
func (s *Sim) Score() int { return s.score }

// Distance returns the total scrolled distance in pixels.
func (s *Sim) Distance() float64 { return s.distance }

// ScrollSpeed returns the scroll speed used on the last tick.
func (s *Sim) ScrollSpeed() float64 { return s.scroll }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.levels.Lives() }

// Player returns the craft. Callers must treat it as read-only.
func (s *Sim) Player() *Craft { return s.player }

// Levels returns the level manager. Callers must treat it as read-only.
func (s *Sim) Levels() *LevelManager { return s.levels }

// World returns the run's world.
func (s *Sim) World() config.World { return s.world }

// Difficulty returns the run's difficulty.
func (s *Sim) Difficulty() config.Difficulty { return s.difficulty }

// ProgressInfo returns the current level's progress line.
func (s *Sim) ProgressInfo() string { return s.levels.ProgressInfo() }

// FinalScore returns the score the run would end with now.
func (s *Sim) FinalScore() int { return s.levels.FinalScore() }

// FinalStats returns the multi-line end-of-run summary.
func (s *Sim) FinalStats() string { return s.levels.FinalStats() }
