package skyrunner

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

func newTestLevel(t *testing.T, diff config.Difficulty) *Level {
	t.Helper()
	cfg := config.DefaultSkyRunnerConfig()
	tier, err := cfg.Tiers.For(diff)
	if err != nil {
		t.Fatal(err)
	}
	return NewLevel("Test", 1, config.WorldCloudKingdom, diff, tier, cfg.Scoring)
}

func TestLevelScoreExample(t *testing.T) {
	l := newTestLevel(t, config.DifficultyNormal)
	l.Progress = 500
	l.EnemiesDefeated = 2
	l.ObstaclesPassed = 3
	l.Completed = true
	l.TargetScore = 800

	// 50 + 200 + 150 + 800 + 500
	if got := l.Score(); got != 1700 {
		t.Errorf("Score() = %d, want 1700", got)
	}

	l.Completed = false
	if got := l.Score(); got != 400 {
		t.Errorf("uncompleted Score() = %d, want 400", got)
	}
}

func TestLevelCompletionFlipsOnce(t *testing.T) {
	l := newTestLevel(t, config.DifficultyEasy)

	if l.UpdateProgress(l.Length - 1) {
		t.Fatal("level should not complete below its length")
	}
	if !l.UpdateProgress(1) {
		t.Fatal("level should complete when progress reaches its length")
	}
	if l.UpdateProgress(100) {
		t.Error("completion should only be reported once")
	}
	if !l.Completed {
		t.Error("completion should be sticky")
	}
}

func TestLevelNegativeProgressIgnored(t *testing.T) {
	l := newTestLevel(t, config.DifficultyNormal)
	l.UpdateProgress(-50)
	if l.Progress != 0 {
		t.Errorf("negative distance should be clamped, progress=%d", l.Progress)
	}
}

func TestCompletionPercent(t *testing.T) {
	l := newTestLevel(t, config.DifficultyNormal)
	l.UpdateProgress(l.Length / 4)
	if got := l.CompletionPercent(); math.Abs(got-25) > 1e-9 {
		t.Errorf("CompletionPercent() = %.2f, want 25", got)
	}
}

func TestWorldWeightsSumToOne(t *testing.T) {
	for _, w := range config.Worlds() {
		obstacles, enemies := worldWeights(w)
		if len(obstacles) != int(obstacleTypeCount) {
			t.Errorf("%s: %d obstacle weights, want %d", w, len(obstacles), obstacleTypeCount)
		}
		if len(enemies) != int(enemyTypeCount) {
			t.Errorf("%s: %d enemy weights, want %d", w, len(enemies), enemyTypeCount)
		}
		for name, ws := range map[string][]float64{"obstacle": obstacles, "enemy": enemies} {
			sum := 0.0
			for _, v := range ws {
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("%s %s weights sum to %.4f", w, name, sum)
			}
		}
	}
}

func newTestManager(t *testing.T, world config.World, diff config.Difficulty, count int) *LevelManager {
	t.Helper()
	lm, err := NewLevelManager(config.DefaultSkyRunnerConfig(), world, diff, count, NewRNG(7), nil)
	if err != nil {
		t.Fatalf("NewLevelManager: %v", err)
	}
	return lm
}

func TestNewLevelManagerErrors(t *testing.T) {
	cfg := config.DefaultSkyRunnerConfig()
	tests := []struct {
		name  string
		world config.World
		diff  config.Difficulty
		count int
		want  error
	}{
		{"unknown world", "moon_base", config.DifficultyNormal, 1, config.ErrUnknownWorld},
		{"unknown difficulty", config.WorldCloudKingdom, "insane", 1, config.ErrUnknownDifficulty},
		{"too many levels", config.WorldCloudKingdom, config.DifficultyNormal, MaxLevels + 1, ErrLevelCount},
		{"negative levels", config.WorldCloudKingdom, config.DifficultyNormal, -1, ErrLevelCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevelManager(cfg, tt.world, tt.diff, tt.count, NewRNG(1), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLevelManagerNames(t *testing.T) {
	lm := newTestManager(t, config.WorldCrystalCanyon, config.DifficultyNormal, 3)
	if lm.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", lm.Count())
	}
	if lm.Current().Name != "Crystal Gorge" {
		t.Errorf("first level = %q", lm.Current().Name)
	}
	if got := lm.ProgressInfo(); got != "Level 1: Crystal Gorge (0.0%)" {
		t.Errorf("ProgressInfo() = %q", got)
	}
}

func TestLevelManagerLives(t *testing.T) {
	lm := newTestManager(t, config.WorldCloudKingdom, config.DifficultyNormal, 1)

	lm.AddLife()
	if lm.Lives() != 3 {
		t.Errorf("lives should cap at 3, got %d", lm.Lives())
	}
	for range 3 {
		lm.LoseLife()
	}
	if !lm.GameOver() {
		t.Error("expected game over with no lives left")
	}
	lm.LoseLife()
	if lm.Lives() != 0 {
		t.Errorf("lives should not go negative, got %d", lm.Lives())
	}
}

func TestLevelManagerAdvanceFoldsTotals(t *testing.T) {
	lm := newTestManager(t, config.WorldCloudKingdom, config.DifficultyNormal, 2)

	first := lm.Current()
	first.EnemiesDefeated = 2
	first.ObstaclesPassed = 1
	lm.Update(first.Length)
	firstScore := first.Score()

	if !lm.Advance() {
		t.Fatal("expected a second level")
	}
	if lm.Index() != 1 {
		t.Errorf("Index() = %d, want 1", lm.Index())
	}
	lm.EnemyDefeated()
	lm.ObstaclePassed()

	if got := lm.EnemiesDefeated(); got != 3 {
		t.Errorf("EnemiesDefeated() = %d, want 3", got)
	}
	if got := lm.ObstaclesPassed(); got != 2 {
		t.Errorf("ObstaclesPassed() = %d, want 2", got)
	}
	if got, want := lm.FinalScore(), firstScore+lm.Current().Score(); got != want {
		t.Errorf("FinalScore() = %d, want %d", got, want)
	}
	if lm.LevelsCompleted() != 1 {
		t.Errorf("LevelsCompleted() = %d, want 1", lm.LevelsCompleted())
	}

	lm.Update(lm.Current().Length)
	if lm.Advance() {
		t.Error("Advance past the last level should fail")
	}
	if !lm.GameComplete() {
		t.Error("expected game complete")
	}
	if lm.LevelsCompleted() != 2 {
		t.Errorf("LevelsCompleted() = %d, want 2", lm.LevelsCompleted())
	}
}

func TestFinalStatsFormat(t *testing.T) {
	lm := newTestManager(t, config.WorldFloatingCity, config.DifficultyHard, 2)
	lm.EnemyDefeated()

	stats := lm.FinalStats()
	for _, want := range []string{
		"Final Score: ",
		"Enemies Defeated: 1",
		"Obstacles Dodged: 0",
		"Levels Completed: 0/2",
		"Difficulty: HARD",
	} {
		if !strings.Contains(stats, want) {
			t.Errorf("FinalStats() missing %q:\n%s", want, stats)
		}
	}
	if n := strings.Count(stats, "\n"); n != 4 {
		t.Errorf("FinalStats() should have 5 lines, got %d", n+1)
	}
}

func TestMalformedWeightsFallBack(t *testing.T) {
	lm := newTestManager(t, config.WorldCloudKingdom, config.DifficultyNormal, 1)
	lm.Current().EnemyWeights = []float64{0, 0, 0}
	lm.Current().ObstacleWeights = nil

	if e := lm.NewEnemy(900, 200); e.Type != EnemyBasic {
		t.Errorf("fallback enemy = %s, want basic", e.Type)
	}
	if o := lm.NewObstacle(900, 200); o.Type != ObstacleRockTower {
		t.Errorf("fallback obstacle = %s, want rock_tower", o.Type)
	}
	if lm.Fallbacks() != 2 {
		t.Errorf("Fallbacks() = %d, want 2", lm.Fallbacks())
	}
}

func TestStormSpawnsBelowMinimum(t *testing.T) {
	lm := newTestManager(t, config.WorldCrystalCanyon, config.DifficultyNormal, 1)
	lm.Current().ObstacleWeights = []float64{0, 1, 0, 0, 0, 0, 0}

	o := lm.NewObstacle(900, 10)
	if o.Type != ObstacleElectricStorm {
		t.Fatalf("type = %s, want electric_storm", o.Type)
	}
	if o.Y != 120 {
		t.Errorf("storm y = %.0f, want 120", o.Y)
	}
}

func TestCityBuildingsAnchor(t *testing.T) {
	lm := newTestManager(t, config.WorldFloatingCity, config.DifficultyNormal, 1)
	for range 200 {
		o := lm.NewObstacle(900, 300)
		if o.Type != ObstacleCityBuilding {
			t.Fatalf("type = %s, want city_building", o.Type)
		}
		if o.W != 70 || o.H < 120 || o.H > 460 {
			t.Fatalf("building size %dx%d out of range", o.W, o.H)
		}
		if o.Y != 0 && o.Y != float64(600-o.H) {
			t.Fatalf("building not anchored: y=%.0f h=%d", o.Y, o.H)
		}
	}
}

func TestPowerUpDistribution(t *testing.T) {
	lm := newTestManager(t, config.WorldCloudKingdom, config.DifficultyNormal, 1)

	const n = 20000
	counts := make(map[PowerUpType]int)
	none := 0
	for range n {
		pu, ok := lm.NewPowerUp(900, 200)
		if !ok {
			none++
			continue
		}
		counts[pu.Type]++
	}

	check := func(name string, got int, want float64) {
		if frac := float64(got) / n; math.Abs(frac-want) > 0.02 {
			t.Errorf("%s: observed %.3f, want %.2f", name, frac, want)
		}
	}
	check("score_boost", counts[PowerUpScoreBoost], 0.50)
	check("turbo", counts[PowerUpTurbo], 0.25)
	check("shield", counts[PowerUpShield], 0.10)
	check("health", counts[PowerUpHealth], 0.05)
	check("none", none, 0.10)
}

func TestPowerUpTypeFollowsWeightsOnly(t *testing.T) {
	s := newTestSim(t, config.WorldCloudKingdom, config.DifficultyNormal, 1)
	lvl := s.Levels().Current()
	lvl.TurboRate = 1
	lvl.ScoreBoostRate = 1
	lvl.PowerUps = config.PowerUpWeights{Health: 1}

	for i := range 200 {
		pu, ok := s.Levels().NewPowerUp(0, 0)
		if !ok {
			t.Fatalf("draw %d: no power-up", i)
		}
		if pu.Type != PowerUpHealth {
			t.Fatalf("draw %d: type = %v, want health", i, pu.Type)
		}
	}
}
