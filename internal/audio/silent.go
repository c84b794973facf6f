package audio

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

func init() {
	Register("silent", func(config.AudioConfig, *log.Logger) (Backend, error) {
		return NewSilent(), nil
	})
}

// Silent is a backend that plays nothing and counts what it was asked to play.
type Silent struct {
	mu      sync.Mutex
	effects map[core.EventKind]int
	music   config.World
	playing bool
	volume  float64
	closed  bool
}

// NewSilent creates a silent backend.
func NewSilent() *Silent {
	return &Silent{effects: make(map[core.EventKind]int), volume: 1}
}

// PlayEffect records the effect.
func (s *Silent) PlayEffect(kind core.EventKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects[kind]++
}

// PlayMusic records the world.
func (s *Silent) PlayMusic(world config.World) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = world
	s.playing = true
	return nil
}

// StopMusic stops the recorded track.
func (s *Silent) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

// SetVolume records the volume.
func (s *Silent) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
}

// Close marks the backend closed.
func (s *Silent) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Effects returns how often an effect was requested.
func (s *Silent) Effects(kind core.EventKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effects[kind]
}

// Music returns the last requested world and whether it is still playing.
func (s *Silent) Music() (config.World, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music, s.playing
}

// Volume returns the current volume.
func (s *Silent) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Closed reports whether Close was called.
func (s *Silent) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
