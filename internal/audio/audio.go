// Package audio plays sound effects and world music in response to
// simulation events. Backends are chosen by name from a static registry;
// the Dispatcher feeds them from its own goroutine so a slow device never
// stalls the game loop.
package audio

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// ErrUnknownBackend is returned by New for names nobody registered.
var ErrUnknownBackend = errors.New("unknown audio backend")

// ErrNoTrack is returned by PlayMusic when no track file matches.
var ErrNoTrack = errors.New("no music track found")

// Backend renders audio. Implementations must be safe for use from the
// dispatcher goroutine and the UI goroutine at the same time.
type Backend interface {
	// PlayEffect starts the one-shot sound for an event kind.
	PlayEffect(kind core.EventKind)
	// PlayMusic loops the track for a world. An empty world selects the
	// menu track.
	PlayMusic(world config.World) error
	// StopMusic stops the current track, if any.
	StopMusic()
	// SetVolume sets the master volume, clamped to [0, 1].
	SetVolume(v float64)
	// Close releases the device.
	Close() error
}

// Factory creates a backend from the audio configuration.
type Factory func(cfg config.AudioConfig, logger *log.Logger) (Backend, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a backend factory. Panics on duplicate names.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("audio: backend %q already registered", name))
	}
	factories[name] = f
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named backend.
func New(name string, cfg config.AudioConfig, logger *log.Logger) (Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("audio: %w: %q", ErrUnknownBackend, name)
	}
	b, err := f(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", name, err)
	}
	return b, nil
}

// Open creates the configured backend, falling back to silence when audio
// is disabled or the device cannot be opened.
func Open(cfg config.AudioConfig, logger *log.Logger) Backend {
	if !cfg.Enabled {
		return NewSilent()
	}
	b, err := New(cfg.Backend, cfg, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "backend", cfg.Backend, "err", err)
		}
		return NewSilent()
	}
	return b
}

func clampVolume(v float64) float64 {
	return core.ClampF(v, 0, 1)
}
