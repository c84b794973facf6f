package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// musicLevel is the music volume relative to the master volume.
const musicLevel = 0.35

func init() {
	Register("beep", newBeep)
}

// beepBackend mixes synthesized effects and a looping music track onto
// the system speaker.
type beepBackend struct {
	mu     sync.Mutex
	logger *log.Logger

	tracksDir string
	ambient   bool
	volume    float64

	mixer      *beep.Mixer
	music      *beep.Ctrl
	musicVol   *effects.Volume
	musicFile  beep.StreamSeekCloser
	musicWorld config.World
}

func newBeep(cfg config.AudioConfig, logger *log.Logger) (Backend, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	b := &beepBackend{
		logger:    logger,
		tracksDir: config.ExpandHome(cfg.TracksDir),
		ambient:   cfg.Ambient,
		volume:    clampVolume(cfg.Volume),
		mixer:     &beep.Mixer{},
	}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *beepBackend) PlayEffect(kind core.EventKind) {
	b.mu.Lock()
	vol := b.volume
	b.mu.Unlock()

	s := effectStreamer(kind, sampleRate)
	if s == nil || vol <= 0 {
		return
	}
	speaker.Lock()
	b.mixer.Add(withVolume(s, vol))
	speaker.Unlock()
}

func (b *beepBackend) PlayMusic(world config.World) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.music != nil && b.musicWorld == world {
		return nil
	}
	b.stopMusicLocked()

	path, ok := FindTrack(b.tracksDir, TrackNames(world), b.ambient)
	if !ok {
		return fmt.Errorf("%w for %q in %s", ErrNoTrack, string(world), b.tracksDir)
	}
	stream, format, err := decodeTrack(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	b.musicVol = withVolume(s, b.volume*musicLevel)
	b.music = &beep.Ctrl{Streamer: b.musicVol}
	b.musicFile = stream
	b.musicWorld = world

	speaker.Lock()
	b.mixer.Add(b.music)
	speaker.Unlock()

	b.logger.Debug("music started", "world", world, "track", filepath.Base(path))
	return nil
}

func (b *beepBackend) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopMusicLocked()
}

func (b *beepBackend) stopMusicLocked() {
	if b.music == nil {
		return
	}
	speaker.Lock()
	b.music.Paused = true
	b.music.Streamer = nil
	speaker.Unlock()

	if err := b.musicFile.Close(); err != nil {
		b.logger.Warn("closing music track", "err", err)
	}
	b.music = nil
	b.musicVol = nil
	b.musicFile = nil
	b.musicWorld = ""
}

func (b *beepBackend) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.volume = clampVolume(v)
	if b.musicVol != nil {
		speaker.Lock()
		setVolume(b.musicVol, b.volume*musicLevel)
		speaker.Unlock()
	}
}

func (b *beepBackend) Close() error {
	b.StopMusic()
	speaker.Clear()
	speaker.Close()
	return nil
}

// decodeTrack opens a track and picks the decoder by file extension.
func decodeTrack(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path) //#nosec G304 -- track paths come from the user's music dir
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open track: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported track format %q", filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return stream, format, nil
}

// withVolume wraps s in a volume effect with a linear gain.
func withVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, gain)
	return v
}

// setVolume converts a linear gain to the Volume effect's log scale.
// log2(0) is -Inf, so zero gain is expressed as Silent.
func setVolume(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}
