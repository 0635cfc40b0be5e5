package window

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background  = color.NRGBA{0x0a, 0x0a, 0x1a, 0xff}
	hudText     = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	barEmpty    = color.NRGBA{0x44, 0x44, 0x44, 0xff}
	barFull     = color.NRGBA{0x00, 0xff, 0x88, 0xff}
	shieldRing  = color.NRGBA{0x0a, 0xbd, 0xe3, 0xcc}
	thrusterCol = color.NRGBA{0xff, 0x6b, 0x35, 0xff}
	panelFill   = color.NRGBA{0x00, 0x00, 0x00, 0xc0}
)

// parseHex converts a scene hex color into a color with the given opacity.
// Malformed input yields white.
func parseHex(hex string, alpha float64) color.NRGBA {
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	r, g, b, ok := core.ParseHex(hex)
	if !ok {
		return color.NRGBA{0xff, 0xff, 0xff, a}
	}
	return color.NRGBA{r, g, b, a}
}

// drawItem draws one scene entry.
func drawItem(dst *ebiten.Image, item stellar.RenderItem) {
	x, y, r := float32(item.Pos.X), float32(item.Pos.Y), float32(item.Radius)
	c := parseHex(item.Color, item.Alpha)

	switch item.Kind {
	case stellar.ItemStar, stellar.ItemParticle:
		vector.DrawFilledCircle(dst, x, y, r, c, false)

	case stellar.ItemPowerUp:
		fill := c
		fill.A /= 3
		vector.DrawFilledCircle(dst, x, y, r, fill, true)
		vector.StrokeCircle(dst, x, y, r, 2, c, true)
		label := string(item.Glyph)
		ebitenutil.DebugPrintAt(dst, label, int(x)-glyphW/2, int(y)-glyphH/2)

	case stellar.ItemMeteor, stellar.ItemAlien, stellar.ItemBoss:
		vector.DrawFilledCircle(dst, x, y, r, c, true)
		// Rotation marker so spinning meteors read as spinning
		mx := x + r*0.6*float32(math.Cos(item.Rotation))
		my := y + r*0.6*float32(math.Sin(item.Rotation))
		vector.DrawFilledCircle(dst, mx, my, r*0.2, background, true)
		if item.Health < 1 {
			drawBar(dst, x-r, y-r-8, 2*r, 4, item.Health)
		}

	case stellar.ItemShot:
		vector.DrawFilledRect(dst, x-1.5, y-r*2, 3, r*4, c, false)

	case stellar.ItemEnemyShot:
		vector.DrawFilledCircle(dst, x, y, r, c, true)

	case stellar.ItemPlayer:
		if item.Blink {
			return
		}
		drawCraft(dst, x, y, r, c)
		if item.Shielded {
			vector.StrokeCircle(dst, x, y, r+8, 3, shieldRing, true)
		}

	case stellar.ItemScoreText:
		ebitenutil.DebugPrintAt(dst, item.Label, int(x)-len(item.Label)*glyphW/2, int(y))
	}
}

// drawCraft draws the player ship as a hull outline with a thruster.
func drawCraft(dst *ebiten.Image, x, y, r float32, c color.Color) {
	nose := [2]float32{x, y - r}
	left := [2]float32{x - r, y + r}
	right := [2]float32{x + r, y + r}
	vector.StrokeLine(dst, nose[0], nose[1], left[0], left[1], 3, c, true)
	vector.StrokeLine(dst, left[0], left[1], right[0], right[1], 3, c, true)
	vector.StrokeLine(dst, right[0], right[1], nose[0], nose[1], 3, c, true)
	vector.DrawFilledCircle(dst, x, y+r+4, r/4, thrusterCol, true)
}

// drawBar draws a horizontal gauge filled to frac.
func drawBar(dst *ebiten.Image, x, y, w, h float32, frac float64) {
	frac = math.Max(0, math.Min(1, frac))
	vector.DrawFilledRect(dst, x, y, w, h, barEmpty, false)
	vector.DrawFilledRect(dst, x, y, w*float32(frac), h, barFull, false)
}

// drawHUD draws the score row and the status row in the reserved top band.
func drawHUD(dst *ebiten.Image, g *stellar.Game) {
	sim := g.Sim()
	w := dst.Bounds().Dx()

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", sim.Score()), 12, 10)

	lives := "Lives: " + strings.Repeat("<3 ", sim.Lives())
	ebitenutil.DebugPrintAt(dst, lives, (w-len(lives)*glyphW)/2, 10)

	wave := fmt.Sprintf("Wave %d  Hi %d", sim.Wave(), max(g.HighScore(), sim.Score()))
	ebitenutil.DebugPrintAt(dst, wave, w-len(wave)*glyphW-12, 10)

	if buffs := g.BuffSummary(); buffs != "" {
		ebitenutil.DebugPrintAt(dst, buffs, 12, 34)
	}

	p := sim.Player()
	drawBar(dst, float32(w-132), 38, 120, 8, p.Health()/p.MaxHealth())

	top := float32(sim.Bounds().Top)
	vector.StrokeLine(dst, 0, top-1, float32(w), top-1, 1, barEmpty, false)
}

// drawPanel draws centered lines over a translucent backing.
func drawPanel(dst *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	b := dst.Bounds()
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	pw := float32(inner*glyphW + 40)
	ph := float32(len(lines)*glyphH + 32)
	px := (float32(b.Dx()) - pw) / 2
	py := (float32(b.Dy()) - ph) / 2

	vector.DrawFilledRect(dst, px, py, pw, ph, panelFill, false)
	vector.StrokeRect(dst, px, py, pw, ph, 2, hudText, false)
	for i, l := range lines {
		lx := (b.Dx() - len([]rune(l))*glyphW) / 2
		ebitenutil.DebugPrintAt(dst, l, lx, int(py)+16+i*glyphH)
	}
}
