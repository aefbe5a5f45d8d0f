package hexpop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexpop/internal/bubble"
	"github.com/vovakirdan/hexpop/internal/core"
)

// Visual characters for rendering
const (
	BubbleChar   = '●'
	RainbowChar  = '◍'
	GrayChar     = '▓'
	BombChar     = '◉'
	FreezeChar   = '❅'
	AimChar      = '✛'
	GuideChar    = '·'
	DangerChar   = '┄'
	LauncherChar = '▲'
)

// Pixel-to-character scale: one character column covers half a bubble
// diameter, one character row covers one grid row spacing.
const (
	pxPerCellX = bubble.Radius
	pxPerCellY = bubble.RowSpacing
)

// layout holds the computed screen placement of the playfield.
type layout struct {
	playW   int // playfield width in characters
	playH   int // playfield height in characters
	originX int // top-left of playfield interior
	originY int
}

// calculateLayout computes playfield placement from the configured pixel
// size. The box is centered horizontally below a two-row HUD.
func (g *Game) calculateLayout() {
	g.layout.playW = int(math.Ceil(g.cfg.Playfield.Width / pxPerCellX))
	g.layout.playH = int(math.Ceil(g.cfg.Playfield.Height / pxPerCellY))

	g.minScreenW = g.layout.playW + 4
	g.minScreenH = g.layout.playH + 4

	g.layout.originX = (g.runtime.ScreenW-(g.layout.playW+2))/2 + 1
	if g.layout.originX < 1 {
		g.layout.originX = 1
	}
	g.layout.originY = 3 // two HUD rows plus the box top border
}

// toCell maps playfield pixel coordinates to screen character coordinates.
func (g *Game) toCell(x, y float64) (int, int) {
	cx := g.layout.originX + int(x/pxPerCellX)
	cy := g.layout.originY + int(y/pxPerCellY)
	return cx, cy
}

// colorFor maps an engine palette color to a screen color.
func colorFor(c bubble.BubbleColor) core.Color {
	switch c {
	case bubble.Red:
		return core.ColorRed
	case bubble.Orange:
		return core.ColorOrange
	case bubble.Yellow:
		return core.ColorYellow
	case bubble.Green:
		return core.ColorGreen
	case bubble.Cyan:
		return core.ColorCyan
	case bubble.Blue:
		return core.ColorBlue
	case bubble.Purple:
		return core.ColorMagenta
	case bubble.Pink:
		return core.ColorBrightMagenta
	case bubble.Gray:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}

// glyphFor picks the rune for a bubble by kind and color.
func glyphFor(b *bubble.Bubble) rune {
	if b.Color == bubble.Gray {
		return GrayChar
	}
	switch b.Kind {
	case bubble.KindRainbow:
		return RainbowChar
	case bubble.KindBomb:
		return BombChar
	case bubble.KindFreeze:
		return FreezeChar
	case bubble.KindAim:
		return AimChar
	default:
		return BubbleChar
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBorder(dst)
	g.renderDangerLine(dst)
	g.renderBubbles(dst)
	g.renderGuide(dst)
	g.renderFlight(dst)
	g.renderLauncher(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, level and status indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.round.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.round.Lives()))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.LevelNumber())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d  %s",
			g.levelIndex+1, bubble.LevelCount(), g.round.Level().Name)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Row 1: timer, active effects, and the upcoming queue.
	status := ""
	if left := g.round.TimeLeft(); left >= 0 {
		status = fmt.Sprintf("Time: %d:%02d", int(left)/60, int(left)%60)
	}
	if g.round.FreezeActive() {
		if status != "" {
			status += "  "
		}
		status += "FROZEN"
	}
	if g.round.AimBoostActive() {
		if status != "" {
			status += "  "
		}
		status += "SCOPE"
	}
	if g.round.Combo() > 1 {
		if status != "" {
			status += "  "
		}
		status += fmt.Sprintf("Combo x%d", g.round.Combo())
	}
	dst.DrawText(1, 1, status)

	queue := g.round.Upcoming()
	x := dst.Width() - 2*len(queue) - 7
	dst.DrawText(x, 1, "Next:")
	x += 6
	for _, k := range queue {
		dst.SetCell(x, 1, queueGlyph(k), core.ColorWhite)
		x += 2
	}
}

// queueGlyph picks the preview rune for an upcoming shot kind. Colors are
// rolled at launch, so previews show kind only.
func queueGlyph(k bubble.Kind) rune {
	switch k {
	case bubble.KindRainbow:
		return RainbowChar
	case bubble.KindBomb:
		return BombChar
	case bubble.KindFreeze:
		return FreezeChar
	case bubble.KindAim:
		return AimChar
	default:
		return BubbleChar
	}
}

// renderBorder draws the playfield box.
func (g *Game) renderBorder(dst *core.Screen) {
	dst.DrawBox(core.NewRect(
		g.layout.originX-1, g.layout.originY-1,
		g.layout.playW+2, g.layout.playH+2))
}

// renderDangerLine marks the lose-by-height boundary.
func (g *Game) renderDangerLine(dst *core.Screen) {
	_, cy := g.toCell(0, g.round.DangerY())
	for i := 0; i < g.layout.playW; i++ {
		dst.SetCell(g.layout.originX+i, cy, DangerChar, core.ColorBrightRed)
	}
}

// renderBubbles draws every grid-resident bubble.
func (g *Game) renderBubbles(dst *core.Screen) {
	g.round.Grid().Each(func(b *bubble.Bubble) {
		cx, cy := g.toCell(b.X, b.Y)
		if cy >= g.layout.originY+g.layout.playH {
			return
		}
		dst.SetCell(cx, cy, glyphFor(b), colorFor(b.Color))
	})
}

// renderGuide draws the aim guide as dots sampled along the polyline.
func (g *Game) renderGuide(dst *core.Screen) {
	if g.round.InFlight() != nil || g.state != StatePlaying {
		return
	}

	const sampleStep = 14.0 // pixels between guide dots
	pts := g.round.Guide()
	skipped := 0.0
	for i := 1; i < len(pts); i++ {
		x0, y0 := pts[i-1].X, pts[i-1].Y
		dx := pts[i].X - x0
		dy := pts[i].Y - y0
		segLen := math.Sqrt(dx*dx + dy*dy)
		if segLen == 0 {
			continue
		}
		for d := sampleStep - skipped; d < segLen; d += sampleStep {
			px := x0 + dx*d/segLen
			py := y0 + dy*d/segLen
			cx, cy := g.toCell(px, py)
			if dst.Get(cx, cy) == ' ' {
				dst.SetCell(cx, cy, GuideChar, core.ColorGray)
			}
		}
		skipped = math.Mod(skipped+segLen, sampleStep)
	}
}

// renderFlight draws the airborne bubble, if any.
func (g *Game) renderFlight(dst *core.Screen) {
	b := g.round.InFlight()
	if b == nil {
		return
	}
	cx, cy := g.toCell(b.X, b.Y)
	dst.SetCell(cx, cy, glyphFor(b), colorFor(b.Color))
}

// renderLauncher draws the launch arrow at the bottom center.
func (g *Game) renderLauncher(dst *core.Screen) {
	cx, cy := g.toCell(g.round.FieldWidth()/2, g.round.FieldHeight()-bubble.Radius)
	if cy >= g.layout.originY+g.layout.playH {
		cy = g.layout.originY + g.layout.playH - 1
	}
	dst.SetCell(cx, cy, LauncherChar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateCleared:
		subtitle := fmt.Sprintf("Score: %d", g.round.Score())
		g.drawCenteredBox(dst, "LEVEL CLEARED!", subtitle)

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.round.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.round.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
