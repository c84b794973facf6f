// Package replay records and re-simulates Sky Runner runs.
//
// A recording holds everything needed to rebuild a run bit for bit: the
// world, the runtime settings, the seed and the input mask of every step,
// run-length encoded. The final snapshot hash lets Verify detect any drift
// in the simulation.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
)

// Version is the recording format version written by this package.
const Version = 1

var (
	// ErrVersion is returned when loading a recording from a newer format.
	ErrVersion = errors.New("replay: unsupported recording version")
	// ErrMismatch is returned by Verify when the re-simulated run differs.
	ErrMismatch = errors.New("replay: state hash mismatch")
)

// Span is a run of identical input masks.
type Span struct {
	Mask  uint16 `msgpack:"m"`
	Count uint32 `msgpack:"n"`
}

// Recording is a complete, replayable run.
type Recording struct {
	Version    int    `msgpack:"version"`
	World      string `msgpack:"world"`
	Difficulty string `msgpack:"difficulty"`
	Levels     int    `msgpack:"levels"`
	Seed       int64  `msgpack:"seed"`
	ConfigPath string `msgpack:"config,omitempty"`
	Inputs     []Span `msgpack:"inputs"`

	Steps uint64 `msgpack:"steps"`
	Ticks uint64 `msgpack:"ticks"`
	Score int    `msgpack:"score"`
	Won   bool   `msgpack:"won"`
	Hash  uint64 `msgpack:"hash"`
}

// Runtime returns the runtime configuration the run was started with.
func (r *Recording) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = r.Seed
	rc.Difficulty = r.Difficulty
	rc.Levels = r.Levels
	rc.ConfigPath = r.ConfigPath
	return rc
}

// Frames expands the recorded spans back into one mask per step.
func (r *Recording) Frames() []uint16 {
	out := make([]uint16, 0, r.Steps)
	for _, sp := range r.Inputs {
		for range sp.Count {
			out = append(out, sp.Mask)
		}
	}
	return out
}

// Recorder captures the inputs fed to a game. It must see every frame
// passed to Step, including frames before the run starts.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording. rc.Seed must already be resolved; a zero
// seed is recorded as zero.
func NewRecorder(world config.World, rc core.RuntimeConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version:    Version,
		World:      string(world),
		Difficulty: rc.Difficulty,
		Levels:     rc.Levels,
		Seed:       rc.Seed,
		ConfigPath: rc.ConfigPath,
	}}
}

// Record appends one input frame.
func (r *Recorder) Record(in core.InputFrame) {
	m := in.Mask()
	r.rec.Steps++
	if n := len(r.rec.Inputs); n > 0 && r.rec.Inputs[n-1].Mask == m && r.rec.Inputs[n-1].Count < ^uint32(0) {
		r.rec.Inputs[n-1].Count++
		return
	}
	r.rec.Inputs = append(r.rec.Inputs, Span{Mask: m, Count: 1})
}

// Steps returns the number of recorded frames.
func (r *Recorder) Steps() uint64 {
	return r.rec.Steps
}

// Finish stamps the game's final state onto the recording and returns it.
// The recorder may keep recording afterwards.
func (r *Recorder) Finish(g *skyrunner.Game) *Recording {
	out := r.rec
	out.Inputs = append([]Span(nil), r.rec.Inputs...)
	stampResult(&out, g)
	return &out
}

func stampResult(rec *Recording, g *skyrunner.Game) {
	sim := g.Sim()
	if sim == nil {
		return
	}
	snap := sim.Snapshot()
	st := g.State()
	rec.Ticks = sim.TickCount()
	rec.Score = st.Score
	rec.Won = st.Won
	rec.Hash = snap.Hash()
}

// Result is the outcome of re-simulating a recording.
type Result struct {
	Game  *skyrunner.Game
	Ticks uint64
	Score int
	Won   bool
	Hash  uint64
}

// Play re-simulates a recording from scratch.
func Play(rec *Recording) (*Result, error) {
	if rec.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	world, err := config.ParseWorld(rec.World)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	g := skyrunner.New(world)
	if err := g.Reset(rec.Runtime()); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	for _, sp := range rec.Inputs {
		in := core.FrameFromMask(sp.Mask)
		for range sp.Count {
			g.Step(in)
		}
	}

	var got Recording
	stampResult(&got, g)
	return &Result{Game: g, Ticks: got.Ticks, Score: got.Score, Won: got.Won, Hash: got.Hash}, nil
}

// Verify re-simulates a recording and checks it ends in the recorded state.
func Verify(rec *Recording) (*Result, error) {
	res, err := Play(rec)
	if err != nil {
		return nil, err
	}
	if res.Hash != rec.Hash {
		return res, fmt.Errorf("%w: recorded %016x, got %016x at tick %d", ErrMismatch, rec.Hash, res.Hash, res.Ticks)
	}
	return res, nil
}

// Encode writes a recording as msgpack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// Save writes a recording to path, creating parent directories.
func Save(path string, rec *Recording) error {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(config.ExpandHome(path)) //#nosec G304 -- user-supplied replay file
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
