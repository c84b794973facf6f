package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
)

func testRuntime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.Levels = 2
	return rc
}

// script is a fixed autopilot: start, then weave and shoot.
func script(step int) core.InputFrame {
	in := core.NewInputFrame()
	if step == 0 {
		in.Set(core.ActionConfirm)
		return in
	}
	switch (step / 40) % 4 {
	case 0:
		in.Set(core.ActionUp)
	case 2:
		in.Set(core.ActionDown)
	}
	if step%7 == 0 {
		in.Set(core.ActionShoot)
	}
	if step%90 < 30 {
		in.Set(core.ActionRight)
	}
	return in
}

// record plays steps frames of the script and returns the recording.
func record(t *testing.T, world config.World, rc core.RuntimeConfig, steps int) *Recording {
	t.Helper()
	g := skyrunner.New(world)
	if err := g.Reset(rc); err != nil {
		t.Fatal(err)
	}
	r := NewRecorder(world, rc)
	for i := range steps {
		in := script(i)
		r.Record(in)
		g.Step(in)
	}
	return r.Finish(g)
}

func TestRecorderRunLength(t *testing.T) {
	r := NewRecorder(config.WorldCloudKingdom, testRuntime(1))
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	idle := core.NewInputFrame()

	for range 5 {
		r.Record(up)
	}
	r.Record(idle)
	r.Record(idle)
	r.Record(up)

	rec := r.Finish(skyrunner.New(config.WorldCloudKingdom))
	if rec.Steps != 8 || r.Steps() != 8 {
		t.Errorf("Steps = %d, want 8", rec.Steps)
	}
	if len(rec.Inputs) != 3 {
		t.Fatalf("spans = %v, want 3 spans", rec.Inputs)
	}
	if rec.Inputs[0].Count != 5 || rec.Inputs[1].Count != 2 || rec.Inputs[2].Count != 1 {
		t.Errorf("span counts = %v", rec.Inputs)
	}

	frames := rec.Frames()
	if len(frames) != 8 {
		t.Fatalf("Frames() len = %d, want 8", len(frames))
	}
	if frames[4] != up.Mask() || frames[5] != idle.Mask() || frames[7] != up.Mask() {
		t.Errorf("Frames() = %v", frames)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	for _, w := range config.Worlds() {
		t.Run(string(w), func(t *testing.T) {
			rec := record(t, w, testRuntime(777), 1200)
			if rec.Ticks == 0 {
				t.Fatal("run never started")
			}

			var buf bytes.Buffer
			if err := Encode(&buf, rec); err != nil {
				t.Fatal(err)
			}
			loaded, err := Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}

			res, err := Verify(loaded)
			if err != nil {
				t.Fatalf("Verify() = %v", err)
			}
			if res.Score != rec.Score || res.Ticks != rec.Ticks {
				t.Errorf("replayed score/ticks = %d/%d, recorded %d/%d", res.Score, res.Ticks, rec.Score, rec.Ticks)
			}
		})
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	rec := record(t, config.WorldFloatingCity, testRuntime(99), 600)

	tests := []struct {
		name   string
		tamper func(*Recording)
	}{
		{"seed", func(r *Recording) { r.Seed++ }},
		{"hash", func(r *Recording) { r.Hash ^= 1 }},
		{"inputs", func(r *Recording) {
			// Drop the start frame; the run now begins on the first shot.
			r.Inputs = append([]Span(nil), r.Inputs...)
			r.Inputs[0].Mask = 0
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := *rec
			tt.tamper(&bad)
			if _, err := Verify(&bad); !errors.Is(err, ErrMismatch) {
				t.Errorf("Verify() error = %v, want ErrMismatch", err)
			}
		})
	}
}

func TestPlayRejectsBadRecording(t *testing.T) {
	tests := []struct {
		name string
		rec  Recording
		want error
	}{
		{"world", Recording{Version: Version, World: "atlantis", Difficulty: "normal"}, config.ErrUnknownWorld},
		{"difficulty", Recording{Version: Version, World: string(config.WorldCloudKingdom), Difficulty: "brutal"}, config.ErrUnknownDifficulty},
		{"version", Recording{Version: Version + 1, World: string(config.WorldCloudKingdom)}, ErrVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Play(&tt.rec); !errors.Is(err, tt.want) {
				t.Errorf("Play() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	rec := record(t, config.WorldCrystalCanyon, testRuntime(5), 300)
	path := filepath.Join(t.TempDir(), "runs", "canyon.rec")

	if err := Save(path, rec); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.World != rec.World || loaded.Seed != rec.Seed || loaded.Hash != rec.Hash || loaded.Steps != rec.Steps {
		t.Errorf("loaded %+v, want %+v", loaded, rec)
	}
	if len(loaded.Inputs) != len(rec.Inputs) {
		t.Errorf("loaded %d spans, want %d", len(loaded.Inputs), len(rec.Inputs))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.rec")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
