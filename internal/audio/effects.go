package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// waveform selects a tone generator.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveTriangle
)

// note is one tone of an effect.
type note struct {
	wave waveform
	freq float64
	dur  time.Duration
	gain float64
}

// effectNotes describes each event's sound as a sequence of notes.
// Explosions are noise and handled separately.
var effectNotes = map[core.EventKind][]note{
	core.EventShoot: {
		{waveSquare, 880, 60 * time.Millisecond, 0.25},
	},
	core.EventPowerUp: {
		{waveSine, 660, 90 * time.Millisecond, 0.5},
		{waveSine, 990, 120 * time.Millisecond, 0.5},
	},
	core.EventLifeLost: {
		{waveSaw, 150, 250 * time.Millisecond, 0.4},
	},
	core.EventLevelComplete: {
		{waveTriangle, 523, 120 * time.Millisecond, 0.5},
		{waveTriangle, 659, 120 * time.Millisecond, 0.5},
		{waveTriangle, 784, 200 * time.Millisecond, 0.5},
	},
	core.EventGameOver: {
		{waveSine, 200, 500 * time.Millisecond, 0.4},
		{waveSine, 150, 500 * time.Millisecond, 0.4},
		{waveSine, 100, 500 * time.Millisecond, 0.4},
	},
	core.EventVictory: {
		{waveSine, 400, 200 * time.Millisecond, 0.4},
		{waveSine, 500, 200 * time.Millisecond, 0.4},
		{waveSine, 600, 300 * time.Millisecond, 0.4},
	},
}

// effectStreamer builds a fresh one-shot streamer for an event kind,
// or nil when the kind has no sound.
func effectStreamer(kind core.EventKind, sr beep.SampleRate) beep.Streamer {
	if kind == core.EventExplosion {
		return newFade(newNoise(sr, 300*time.Millisecond, 0.35), sr.N(300*time.Millisecond), sr.N(250*time.Millisecond))
	}
	notes, ok := effectNotes[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(n, sr)
		if err != nil {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// tone renders one note with a short release so notes do not click.
func tone(n note, sr beep.SampleRate) (beep.Streamer, error) {
	var (
		gen beep.Streamer
		err error
	)
	switch n.wave {
	case waveSquare:
		gen, err = generators.SquareTone(sr, n.freq)
	case waveSaw:
		gen, err = generators.SawtoothTone(sr, n.freq)
	case waveTriangle:
		gen, err = generators.TriangleTone(sr, n.freq)
	default:
		gen, err = generators.SineTone(sr, n.freq)
	}
	if err != nil {
		return nil, err
	}
	total := sr.N(n.dur)
	release := min(total/3, sr.N(40*time.Millisecond))
	return withVolume(newFade(beep.Take(total, gen), total, release), n.gain), nil
}

// fade applies a linear release over the last samples of a finite stream.
type fade struct {
	s       beep.Streamer
	pos     int
	total   int
	release int
}

func newFade(s beep.Streamer, total, release int) *fade {
	return &fade{s: s, total: total, release: release}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	start := f.total - f.release
	for i := range n {
		if f.pos >= start && f.release > 0 {
			g := math.Max(0, float64(f.total-f.pos)/float64(f.release))
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// noise is a finite white-noise burst with a low rumble under it.
type noise struct {
	sr    beep.SampleRate
	pos   int
	total int
	amp   float64
	seed  uint32
}

func newNoise(sr beep.SampleRate, d time.Duration, amp float64) *noise {
	return &noise{sr: sr, total: sr.N(d), amp: amp, seed: 0x9e3779b9}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		n.seed = n.seed*1664525 + 1013904223
		white := float64(n.seed)/float64(math.MaxUint32)*2 - 1
		t := float64(n.pos) / float64(n.sr)
		rumble := 0.4 * math.Sin(2*math.Pi*70*t)
		v := n.amp * (0.7*white + rumble)
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }
