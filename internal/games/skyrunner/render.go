package skyrunner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 40
	minScreenH = 12
)

type glyph struct {
	r rune
	c core.Color
}

var obstacleGlyphs = map[ObstacleType]glyph{
	ObstacleRockTower:        {'█', core.ColorOrange},
	ObstacleElectricStorm:    {'≈', core.ColorMagenta},
	ObstacleTurbine:          {'✱', core.ColorCyan},
	ObstacleCloudTower:       {'▓', core.ColorWhite},
	ObstacleCrystalSpike:     {'◆', core.ColorBrightCyan},
	ObstacleFloatingPlatform: {'▬', core.ColorGreen},
	ObstacleCityBuilding:     {'▓', core.ColorGray},
}

var featureGlyphs = map[FeatureType]glyph{
	FeatureRockSpire:    {'▲', core.ColorGray},
	FeatureCrystalSpire: {'▲', core.ColorBlue},
	FeatureCityTower:    {'▌', core.ColorBlue},
	FeatureCityTurbine:  {'+', core.ColorGray},
}

// Render draws the run into dst, scaling the playfield to fit under the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	s := g.sim

	sx := float64(dst.Width()) / float64(s.cfg.Field.Width)
	sy := float64(dst.Height()-hudRows) / float64(s.cfg.Field.Height)
	place := func(r core.Rect) core.Rect {
		out := r.Scale(sx, sy)
		out.Y += hudRows
		return out
	}

	for _, o := range s.obstacles {
		if col, ok := o.LightningColumn(s.cfg.Combat.LightningWidth, s.cfg.Field.Height); ok && o.Active && o.Frame%2 == 0 {
			dst.DrawRectColored(place(col), '¦', core.ColorBrightYellow)
		}
	}

	for _, v := range s.Views() {
		if !v.Active {
			continue
		}
		r := place(core.RectAt(v.X, v.Y, v.W, v.H))
		switch v.Kind {
		case KindCloud:
			dst.DrawRectColored(r, '░', core.ColorWhite)
		case KindFeature:
			gl := featureGlyphs[FeatureType(v.Sub)]
			dst.DrawRectColored(r, gl.r, gl.c)
		case KindObstacle:
			gl := obstacleGlyphs[ObstacleType(v.Sub)]
			dst.DrawRectColored(r, gl.r, gl.c)
		case KindEnemy:
			c := core.ColorRed
			if EnemyType(v.Sub) == EnemyBoss {
				c = core.ColorBrightRed
			}
			dst.DrawRectColored(r, '◄', c)
		case KindPowerUp:
			dst.SetColored(r.X, r.Y, PowerUpType(v.Sub).Glyph(), core.ColorBrightYellow)
		case KindProjectile:
			if v.Sub == 1 {
				dst.SetColored(r.X, r.Y, '•', core.ColorRed)
			} else {
				dst.SetColored(r.X, r.Y, '-', core.ColorBrightYellow)
			}
		case KindPlayer:
			g.drawCraft(dst, r)
		}
	}

	g.drawHUD(dst)

	switch s.Phase() {
	case PhaseReady:
		g.drawCenteredMessage(dst, s.World().Title(), "Press SPACE or ENTER to start")
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.FinalScore()))
	case PhaseVictory:
		g.drawCenteredMessage(dst, "VICTORY", fmt.Sprintf("Score: %d  |  Press R to restart", s.FinalScore()))
	}
}

func (g *Game) drawCraft(dst *core.Screen, r core.Rect) {
	p := g.sim.Player()
	// Blink while invulnerable.
	if p.Invulnerable() && (p.Invuln/4)%2 == 1 {
		return
	}
	c := core.ColorBrightWhite
	switch {
	case p.Shield:
		c = core.ColorBrightCyan
	case p.TurboActive():
		c = core.ColorBrightYellow
	case p.Slowed():
		c = core.ColorGray
	}
	dst.DrawRectColored(r, '=', c)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, '>', c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	lives := strings.Repeat("♥", max(0, s.Lives()))
	hud := fmt.Sprintf(" %s  Score: %d  Lives: %s ", s.ProgressInfo(), s.Score(), lives)
	dst.DrawText(0, 0, hud)

	var flags []string
	if s.Player().Shield {
		flags = append(flags, "SHIELD")
	}
	if s.Player().TurboActive() {
		flags = append(flags, "TURBO")
	}
	if len(flags) > 0 {
		tag := strings.Join(flags, " ") + " "
		dst.DrawTextColored(dst.Width()-len(tag), 0, tag, core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
