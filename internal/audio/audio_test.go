package audio

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

func TestBackendsRegistered(t *testing.T) {
	names := Backends()
	for _, want := range []string{"beep", "silent"} {
		if !slices.Contains(names, want) {
			t.Errorf("backend %q not registered, have %v", want, names)
		}
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("theremin", config.AudioConfig{}, nil)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New() error = %v, want ErrUnknownBackend", err)
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	b := Open(config.AudioConfig{Enabled: false, Backend: "beep"}, nil)
	if _, ok := b.(*Silent); !ok {
		t.Errorf("Open() with audio disabled = %T, want *Silent", b)
	}
}

func TestOpenUnknownFallsBackToSilent(t *testing.T) {
	b := Open(config.AudioConfig{Enabled: true, Backend: "theremin"}, nil)
	if _, ok := b.(*Silent); !ok {
		t.Errorf("Open() with unknown backend = %T, want *Silent", b)
	}
}

func TestSilentVolumeClamped(t *testing.T) {
	s := NewSilent()
	s.SetVolume(3)
	if s.Volume() != 1 {
		t.Errorf("Volume() = %v, want 1", s.Volume())
	}
	s.SetVolume(-1)
	if s.Volume() != 0 {
		t.Errorf("Volume() = %v, want 0", s.Volume())
	}
}

func TestDispatcherForwardsEvents(t *testing.T) {
	s := NewSilent()
	if err := s.PlayMusic(config.WorldCrystalCanyon); err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(s, 16, nil)

	d.Publish(
		core.Event{Kind: core.EventShoot},
		core.Event{Kind: core.EventShoot},
		core.Event{Kind: core.EventExplosion},
		core.Event{Kind: core.EventGameOver},
	)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	if got := s.Effects(core.EventShoot); got != 2 {
		t.Errorf("shoot effects = %d, want 2", got)
	}
	if got := s.Effects(core.EventExplosion); got != 1 {
		t.Errorf("explosion effects = %d, want 1", got)
	}
	if _, playing := s.Music(); playing {
		t.Error("game over should stop the music")
	}
	if !s.Closed() {
		t.Error("Close should close the backend")
	}

	// Publishing after Close is a no-op, and Close is idempotent.
	d.Publish(core.Event{Kind: core.EventShoot})
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
}

// blockingBackend stalls PlayEffect until released.
type blockingBackend struct {
	*Silent
	release chan struct{}
}

func (b *blockingBackend) PlayEffect(kind core.EventKind) {
	<-b.release
	b.Silent.PlayEffect(kind)
}

func TestDispatcherNeverBlocks(t *testing.T) {
	b := &blockingBackend{Silent: NewSilent(), release: make(chan struct{})}
	d := NewDispatcher(b, 2, nil)

	done := make(chan struct{})
	go func() {
		for range 50 {
			d.Publish(core.Event{Kind: core.EventShoot})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a stalled backend")
	}
	if d.Dropped() == 0 {
		t.Error("expected dropped events with a full queue")
	}

	close(b.release)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if got := int64(b.Effects(core.EventShoot)) + d.Dropped(); got != 50 {
		t.Errorf("played + dropped = %d, want 50", got)
	}
}

func TestEffectStreamers(t *testing.T) {
	for _, kind := range []core.EventKind{
		core.EventShoot, core.EventExplosion, core.EventPowerUp, core.EventLifeLost,
		core.EventLevelComplete, core.EventGameOver, core.EventVictory,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			s := effectStreamer(kind, sampleRate)
			if s == nil {
				t.Fatal("no streamer")
			}
			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := s.Stream(buf)
				total += n
				for _, smp := range buf[:n] {
					if smp[0] > 1 || smp[0] < -1 {
						t.Fatalf("sample out of range: %v", smp[0])
					}
				}
				if !ok || total > sampleRate.N(3*time.Second) {
					break
				}
			}
			if total == 0 || total > sampleRate.N(2*time.Second) {
				t.Errorf("effect length %d samples out of range", total)
			}
		})
	}
}

func TestFindTrack(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	touch("world_cloud.wav")
	touch("world_cloud_ambient.mp3")
	touch("My Crystal-Song.mp3")
	touch("notes.txt")

	tests := []struct {
		name    string
		world   config.World
		ambient bool
		want    string
		found   bool
	}{
		{"ambient preferred", config.WorldCloudKingdom, true, "world_cloud_ambient.mp3", true},
		{"plain track", config.WorldCloudKingdom, false, "world_cloud.wav", true},
		{"loose match", config.WorldCrystalCanyon, false, "My Crystal-Song.mp3", true},
		{"missing", config.WorldFloatingCity, false, "", false},
		{"menu missing", "", true, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := FindTrack(dir, TrackNames(tt.world), tt.ambient)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v (%s)", ok, tt.found, path)
			}
			if ok && filepath.Base(path) != tt.want {
				t.Errorf("track = %s, want %s", filepath.Base(path), tt.want)
			}
		})
	}

	if _, ok := FindTrack("", TrackNames(config.WorldCloudKingdom), false); ok {
		t.Error("empty dir should find nothing")
	}
}
