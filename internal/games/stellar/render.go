package stellar

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/stellar-defender/internal/core"
)

// Visual characters for rendering
const (
	StarDim        = '·'
	StarBright     = '*'
	ParticleChar   = '*'
	ShotChar       = '|'
	EnemyShotChar  = '•'
	HealthFullChar = '='
	HealthLostChar = '-'
	HeartChar      = '♥'
	SeparatorChar  = '─'
)

// paletteColors overrides the nearest-color match where it reads poorly
// on dark terminals.
var paletteColors = map[string]core.Color{
	"#ff6b35": core.ColorOrange,
	"#f7931e": core.ColorOrange,
	"#ffd700": core.ColorBrightYellow,
	"#ff4757": core.ColorBrightRed,
	"#00ff88": core.ColorBrightGreen,
	"#ff9f43": core.ColorOrange,
	"#0abde3": core.ColorBrightCyan,
	"#ee5a6f": core.ColorBrightRed,
	"#e056fd": core.ColorBrightMagenta,
	"#ffff00": core.ColorBrightYellow,
	"#8b4513": core.ColorYellow,
	"#7f8c8d": core.ColorCyan,
	"#bdc3c7": core.ColorBrightMagenta,
	"#c0c0c0": core.ColorBrightWhite,
}

func terminalColor(hex string) core.Color {
	if c, ok := paletteColors[hex]; ok {
		return c
	}
	return core.NearestColor(hex)
}

// cellMapper converts canvas pixels to screen cells.
type cellMapper struct {
	sx, sy float64 // cells per pixel
	pw, ph float64 // pixels per cell
}

func newCellMapper(dst *core.Screen, b Bounds) cellMapper {
	if b.Width <= 0 || b.Height <= 0 {
		return cellMapper{sx: 1, sy: 1, pw: 1, ph: 1}
	}
	sx := float64(dst.Width()) / b.Width
	sy := float64(dst.Height()) / b.Height
	return cellMapper{sx: sx, sy: sy, pw: 1 / sx, ph: 1 / sy}
}

func (m cellMapper) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * m.sx)), int(math.Floor(p.Y * m.sy))
}

// disc fills every cell whose center lies inside the circle, and at least
// the center cell.
func (m cellMapper) disc(dst *core.Screen, p core.Vec2, r float64, glyph rune, c core.Color) {
	cx, cy := m.cell(p)
	dst.SetColored(cx, cy, glyph, c)
	rx := int(math.Ceil(r*m.sx)) + 1
	ry := int(math.Ceil(r*m.sy)) + 1
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := (float64(x)+0.5)*m.pw - p.X
			dy := (float64(y)+0.5)*m.ph - p.Y
			if dx*dx+dy*dy <= r*r {
				dst.SetColored(x, y, glyph, c)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	s := g.sim
	m := newCellMapper(dst, s.bounds)

	if s.phase == PhaseMenu {
		for _, st := range s.stars {
			renderItem(dst, m, st.RenderData())
		}
		g.renderMenu(dst)
		return
	}

	for _, item := range s.Scene() {
		renderItem(dst, m, item)
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func renderItem(dst *core.Screen, m cellMapper, item RenderItem) {
	color := terminalColor(item.Color)
	x, y := m.cell(item.Pos)

	switch item.Kind {
	case ItemStar:
		glyph, c := StarDim, core.ColorGray
		if item.Alpha > 0.7 {
			glyph, c = StarBright, core.ColorWhite
		}
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, glyph, c)
		}

	case ItemParticle:
		dst.SetColored(x, y, ParticleChar, color)

	case ItemPowerUp:
		dst.SetColored(x, y, item.Glyph, color)

	case ItemMeteor, ItemAlien, ItemBoss:
		m.disc(dst, item.Pos, item.Radius, item.Glyph, color)
		if item.Health < 1 {
			top := item.Pos.Add(core.V(0, -item.Radius))
			_, ty := m.cell(top)
			drawHealthBar(dst, x-2, ty-1, 5, item.Health)
		}

	case ItemShot:
		dst.SetColored(x, y, ShotChar, color)

	case ItemEnemyShot:
		dst.SetColored(x, y, EnemyShotChar, color)

	case ItemPlayer:
		if item.Blink {
			return
		}
		renderCraft(dst, x, y, item.Shielded)

	case ItemScoreText:
		dst.DrawTextColored(x-utf8.RuneCountInString(item.Label)/2, y, item.Label, color)
	}
}

// renderCraft draws the 3-row player sprite centered on (x, y).
func renderCraft(dst *core.Screen, x, y int, shielded bool) {
	dst.SetColored(x, y-1, '▲', core.ColorBrightWhite)
	dst.DrawTextColored(x-1, y, "◢█◣", core.ColorBrightWhite)
	dst.SetColored(x, y+1, '▼', core.ColorOrange)
	if shielded {
		dst.SetColored(x-3, y, '(', core.ColorBrightCyan)
		dst.SetColored(x+3, y, ')', core.ColorBrightCyan)
	}
}

func drawHealthBar(dst *core.Screen, x, y, width int, frac float64) {
	full := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	for i := range width {
		if i < full {
			dst.SetColored(x+i, y, HealthFullChar, core.ColorBrightGreen)
		} else {
			dst.SetColored(x+i, y, HealthLostChar, core.ColorRed)
		}
	}
}

// renderHUD draws score, lives, wave and active buffs on the top two rows.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.sim
	for x := range dst.Width() {
		dst.Set(x, 0, ' ')
		dst.Set(x, 1, SeparatorChar)
	}

	scoreText := fmt.Sprintf("Score: %d", s.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightYellow)

	lives := "Lives: " + strings.Repeat(string(HeartChar), s.lives)
	dst.DrawTextCenteredColored(0, lives, core.ColorBrightRed)

	waveText := fmt.Sprintf("Wave %d  Hi %d", s.Wave(), max(g.highScore, s.score))
	dst.DrawText(dst.Width()-utf8.RuneCountInString(waveText)-1, 0, waveText)

	if buffs := g.BuffSummary(); buffs != "" {
		dst.DrawTextColored(1, 1, " "+buffs+" ", core.ColorBrightCyan)
	}

	hp := s.player.health / s.player.MaxHealth()
	drawHealthBar(dst, dst.Width()-12, 1, 10, hp)
}

// BuffSummary is a compact display of active power-ups, such as "shield 15s".
func (g *Game) BuffSummary() string {
	buffs := g.sim.player.buffs
	parts := make([]string, 0, powerUpKindCount)
	for _, k := range buffs.Kinds() {
		secs := int(math.Ceil(buffs.Remaining(k) / 1000))
		parts = append(parts, fmt.Sprintf("%s %ds", k, secs))
	}
	return strings.Join(parts, "  ")
}

// MenuLines returns the title panel text. The first line is the title.
func (g *Game) MenuLines() []string {
	lines := []string{
		"S T E L L A R   D E F E N D E R",
		"",
		"ENTER start   Q quit",
		"Arrows/WASD move, drag mouse to aim",
		"P pause   R restart   B menu",
	}
	if g.highScore > 0 {
		lines = append(lines, "", fmt.Sprintf("High score: %d", g.highScore))
	}
	if g.mode == ModePractice {
		lines = append(lines, "", "Practice: waves never advance")
	}
	return lines
}

// OverlayLines returns the pause or game over message, or nil while
// neither applies. The first line is the title.
func (g *Game) OverlayLines() []string {
	s := g.sim
	switch s.phase {
	case PhasePaused:
		return []string{"PAUSED", "", "P resume   B menu"}

	case PhaseGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Wave: %d", s.score, s.Wave()),
		}
		if s.score > 0 && s.score >= g.highScore {
			lines = append(lines, "New high score!")
		}
		return append(lines, "", "ENTER play again   B menu")
	}
	return nil
}

func (g *Game) renderMenu(dst *core.Screen) {
	drawCenteredBox(dst, g.MenuLines(), core.ColorBrightCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.sim.phase {
	case PhasePaused:
		drawCenteredBox(dst, g.OverlayLines(), core.ColorBrightYellow)
	case PhaseGameOver:
		drawCenteredBox(dst, g.OverlayLines(), core.ColorBrightRed)
	}
}

// drawCenteredBox draws a centered message box; the first line is the title.
func drawCenteredBox(dst *core.Screen, lines []string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), c)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}
