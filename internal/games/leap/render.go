package leap

import (
	"fmt"
	"math"

	"github.com/vovakirdan/leap-arcade/internal/core"
)

// Visual constants
const (
	BlockChar  = '█'
	PlayerChar = '●'
	FlagChar   = '⚑'
	MarkerChar = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.flow == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	groundY := core.Clamp(h*2/3, 3, core.Max(h-2, 3))
	camera := g.column(g.flow.Motion().Position()) - w/4

	g.drawRoad(dst, groundY, camera)
	g.drawPlayer(dst, groundY, camera)
	g.drawHUD(dst)

	if g.hud.panelVisible {
		g.drawStartPanel(dst)
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// column converts a world position to a screen column before camera offset.
func (g *Game) column(x float64) int {
	return int(math.Round(x / g.cfg.Road.UnitSize * float64(g.cfg.Road.CellWidth)))
}

func (g *Game) drawRoad(dst *core.Screen, groundY, camera int) {
	blockW := core.Max(g.cfg.Road.CellWidth-1, 1)
	for _, x := range g.blocks.xs {
		col := g.column(x) - camera
		if col+blockW < 0 || col >= dst.Width() {
			continue
		}
		dst.DrawHLine(col, groundY, blockW, BlockChar, core.ColorGreen)
	}

	road := g.flow.Road()
	for i := 0; i < road.Len(); i += 10 {
		label := fmt.Sprintf("%d", i)
		col := g.column(float64(i)*g.cfg.Road.UnitSize) - camera
		dst.SetColored(col, groundY+1, MarkerChar, core.ColorGray)
		dst.DrawTextColored(col, groundY+2, label, core.ColorGray)
	}

	if road.Len() > 0 {
		col := g.column(float64(road.Len())*g.cfg.Road.UnitSize) - camera
		dst.SetColored(col, groundY-1, FlagChar, core.ColorBrightYellow)
		dst.SetColored(col, groundY, '▔', core.ColorGray)
	}
}

// drawPlayer draws the player above the ground, lifted along an arc while a
// jump is in flight. Two-segment jumps arc higher.
func (g *Game) drawPlayer(dst *core.Screen, groundY, camera int) {
	m := g.flow.Motion()
	col := g.column(m.Position()) - camera + (g.cfg.Road.CellWidth-1)/2

	lift := 0
	if m.Jumping() {
		peak := float64(m.State().Step + 1)
		lift = int(math.Round(math.Sin(math.Pi*m.Progress()) * peak))
	}
	dst.SetColored(col, groundY-1-lift, PlayerChar, core.ColorBrightYellow)
}

func (g *Game) drawHUD(dst *core.Screen) {
	road := g.flow.Road()
	dst.DrawText(2, 0, fmt.Sprintf(" Steps: %d/%d ", g.hud.steps, road.Len()))

	right := fmt.Sprintf(" Best: %d ", g.best)
	if g.difficulty.IsEnabled() {
		factor := g.difficulty.SpeedFactor(g.flow.Motion().GridIndex(), g.ticks)
		right = fmt.Sprintf(" Spd: x%.2f %s", factor, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-2, 0, right)

	if course := road.Fingerprint(); course != "" {
		dst.DrawTextColored(2, 1, " Course "+course+" ", core.ColorGray)
	}

	if g.lastRun != nil && g.hud.panelVisible {
		msg := fmt.Sprintf(" Fell at step %d ", g.lastRun.Steps)
		color := core.ColorRed
		if g.lastRun.Completed {
			msg = fmt.Sprintf(" Course complete in %.1fs ", g.lastRun.Elapsed)
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(2, 2, msg, color)
	}
}

func (g *Game) drawStartPanel(dst *core.Screen) {
	hint := "←/J or left click: 1 step   →/K or right click: 2 steps"
	if g.flow.cfg.InputMode == InputTouch {
		hint = "Tap left half: 1 step   Tap right half: 2 steps"
	}
	g.drawCenteredMessage(dst, g.Title()+"  |  Press Enter to start", hint)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawTextColored(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorCyan)
}
