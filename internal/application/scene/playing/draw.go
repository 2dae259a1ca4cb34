package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/domain/entity"
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.session.Snapshot()
	p.drawWorld(screen, &snap, p.session.TakeShake())
}

// drawWorld paints a snapshot: the live round, or the frozen last frame
// under the results panel
func (p *Playing) drawWorld(screen *ebiten.Image, snap *session.Snapshot, shake int) {
	screen.Fill(p.colors.get(p.config.Stage.Background))

	p.drawObstacles(screen, snap.Obstacles)
	p.drawBins(screen, snap.Bins)
	for i := range snap.Trash {
		p.drawTrash(screen, &snap.Trash[i], snap.Trash[i].X, snap.Trash[i].Y)
	}
	p.drawEnemies(screen, snap.Enemies)

	// Shake only moves the player sprite
	var dx, dy float64
	if shake > 0 {
		dx = (p.shakeRNG.Float64() - 0.5) * float64(shake)
		dy = (p.shakeRNG.Float64() - 0.5) * float64(shake)
	}
	p.drawPlayer(screen, &snap.Player, dx, dy)

	p.drawParticles(screen, snap.Particles)
	p.drawHUD(screen, snap)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

func (p *Playing) drawObstacles(screen *ebiten.Image, obstacles []entity.Obstacle) {
	for i := range obstacles {
		o := &obstacles[i]
		c := p.colors.get(o.Color)
		switch o.Kind {
		case "tree":
			cx, _ := o.Center()
			fillRect(screen, cx-5, o.Y+o.H*0.55, 10, o.H*0.45, color.RGBA{101, 67, 33, 255})
			fillCircle(screen, cx, o.Y+o.H*0.35, o.W/2, c)
		case "roundabout":
			cx, cy := o.Center()
			fillCircle(screen, cx, cy, o.W/2, c)
			fillCircle(screen, cx, cy, o.W/6, colorShadow)
		default:
			fillRect(screen, o.X, o.Y, o.W, o.H, c)
		}
	}
}

func (p *Playing) drawBins(screen *ebiten.Image, bins []entity.Bin) {
	for i := range bins {
		b := &bins[i]
		fillRect(screen, b.X+3, b.Y+3, b.W, b.H, colorShadow)
		fillRect(screen, b.X, b.Y, b.W, b.H, p.colors.get(b.Color))
		fillRect(screen, b.X-2, b.Y, b.W+4, 8, colorShadow)
		ebitenutil.DebugPrintAt(screen, b.Label, int(b.X), int(b.Y)-16)
	}
}

func (p *Playing) drawTrash(screen *ebiten.Image, t *entity.TrashItem, x, y float64) {
	c := p.colors.get(t.Color)
	detail := p.colors.get(t.DetailColor)
	cx, cy := x+t.W/2, y+t.H/2

	switch t.Shape {
	case "apple", "gum":
		fillCircle(screen, cx, cy, t.W/2, c)
		fillCircle(screen, cx, y+2, 2, detail)
	case "bottle":
		fillRect(screen, x+t.W*0.3, y, t.W*0.4, t.H, c)
		fillRect(screen, x+t.W*0.35, y, t.W*0.3, t.H*0.2, detail)
	case "banana":
		fillRect(screen, x, y+t.H*0.3, t.W, t.H*0.4, c)
		fillRect(screen, x, y+t.H*0.3, t.W*0.15, t.H*0.4, detail)
	default:
		fillRect(screen, x, y, t.W, t.H, c)
		fillRect(screen, x+t.W*0.2, y+t.H*0.4, t.W*0.6, t.H*0.2, detail)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, enemies []entity.Enemy) {
	enemyColor := color.RGBA{40, 40, 40, 255}
	if cfg, ok := p.config.Entities.Enemies["bushTurkey"]; ok {
		enemyColor = p.colors.get(cfg.Color)
	}

	for i := range enemies {
		e := &enemies[i]
		cx, cy := e.Center()
		bob := math.Sin(e.AnimPhase*math.Pi/2) * 1.5

		fillCircle(screen, cx, cy+bob, e.W/2, enemyColor)

		wattle := colorWattle
		switch {
		case e.Satisfied():
			wattle = colorCalm
		case e.Chasing():
			wattle = colorAngry
		}
		fillCircle(screen, cx+e.W*0.3, cy-e.H*0.3+bob, e.W/5, wattle)
		fillRect(screen, cx+e.W*0.45, cy-e.H*0.3+bob, 6, 3, colorBeak)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl *entity.Player, dx, dy float64) {
	x, y := pl.X+dx, pl.Y+dy

	alpha := 1.0
	if pl.Flicker() {
		alpha = 0.5
	}

	body := fade(p.colors.get(p.config.Entities.Player.Color), alpha)
	step := math.Sin(pl.AnimPhase*math.Pi/4) * 2

	fillRect(screen, x+pl.W*0.25, y+pl.H*0.8+step, pl.W*0.2, pl.H*0.2, fade(colorShadow, alpha))
	fillRect(screen, x+pl.W*0.55, y+pl.H*0.8-step, pl.W*0.2, pl.H*0.2, fade(colorShadow, alpha))
	fillRect(screen, x+pl.W*0.15, y+pl.H*0.3, pl.W*0.7, pl.H*0.5, body)
	fillCircle(screen, x+pl.W/2, y+pl.H*0.2, pl.W*0.2, fade(color.RGBA{255, 220, 177, 255}, alpha))

	if pl.Carrying != nil {
		item := pl.Carrying
		fillRect(screen, x+pl.W/2-item.W/2-2, y-item.H-4, item.W+4, item.H+4, fade(colorCarry, alpha))
		p.drawTrash(screen, item, x+pl.W/2-item.W/2, y-item.H-2)
	}
}

func (p *Playing) drawParticles(screen *ebiten.Image, particles []entity.Particle) {
	for i := range particles {
		pt := &particles[i]
		if pt.IsText() {
			ebitenutil.DebugPrintAt(screen, pt.Text, int(pt.X)-len(pt.Text)*3, int(pt.Y))
			continue
		}
		fillCircle(screen, pt.X, pt.Y, pt.Size/2, fade(p.colors.get(pt.Color), pt.Alpha))
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	fillRect(screen, 0, 0, snap.Width, 22, colorHUD)

	hud := fmt.Sprintf("Score: %d   Time: %d   Carrying: %s",
		snap.Score, snap.TimeLeft, carryLabel(snap.Carrying))
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)

	help := "Click/touch or WASD to move  R: restart  ESC: quit"
	if p.replayer != nil {
		help = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	} else if p.opts.Bot != nil {
		help = "AUTOPILOT"
	}
	ebitenutil.DebugPrintAt(screen, help, 8, int(snap.Height)-18)
}

func carryLabel(item *entity.TrashItem) string {
	if item == nil {
		return "nothing"
	}
	return fmt.Sprintf("%s (%s)", item.Kind, item.Type)
}
