package ringescape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ringtrap/internal/core"
	"github.com/vovakirdan/ringtrap/internal/games/ringescape/trap"
)

// Visual characters for rendering
const (
	OuterRingChar = '●'
	InnerRingChar = '•'
	BallChar      = '◉'
)

// Minimum screen size for a readable board
const (
	MinScreenW = 24
	MinScreenH = 10
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// boardTop is the first screen row below the HUD.
const boardTop = 1

// viewport maps field coordinates (relative to the field center) to cells.
type viewport struct {
	cx, cy      float64 // cell coordinates of the field center
	unitsPerCol float64
	unitsPerRow float64
}

// fitViewport scales the whole drawable area into the rows below the HUD,
// keeping circles round on cells that are twice as tall as they are wide.
func fitViewport(w, h int, p trap.Params) viewport {
	rows := float64(h - boardTop)
	cols := float64(w)

	// Edges land on the first and last cell centers, not past them.
	perRow := math.Max(p.Height/(rows-1), cellAspect*p.Width/(cols-1))
	return viewport{
		cx:          (cols - 1) / 2,
		cy:          boardTop + (rows-1)/2,
		unitsPerCol: perRow / cellAspect,
		unitsPerRow: perRow,
	}
}

// cell returns the screen cell containing field point p.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(math.Round(v.cx + p.X/v.unitsPerCol))
	y := int(math.Round(v.cy + p.Y/v.unitsPerRow))
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorHUD)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDim)
		return
	}

	vp := fitViewport(dst.Width(), dst.Height(), g.scene.Params())

	g.renderRings(dst, vp)
	g.renderBall(dst, vp)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderRings samples every intact arc densely enough that neighbouring
// samples never skip a column.
func (g *Game) renderRings(dst *core.Screen, vp viewport) {
	field := g.scene.Field()
	for ring, arcs := range field.AllArcs() {
		r := field.Radius(ring)
		glyph, color := InnerRingChar, core.ColorRingInner
		if ring == field.Outer() {
			glyph, color = OuterRingChar, core.ColorRing
		}

		step := vp.unitsPerCol / (2 * r)
		for _, arc := range arcs {
			n := int(math.Ceil(arc.Span() / step))
			for k := 0; k <= n; k++ {
				theta := arc.Start + arc.Span()*float64(k)/float64(max(n, 1))
				x, y := vp.cell(core.Polar(r, theta))
				if y < boardTop {
					continue
				}
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// renderBall draws the ball, clipped to the board.
func (g *Game) renderBall(dst *core.Screen, vp viewport) {
	sim := g.scene.Simulator()
	x, y := vp.cell(sim.Position())
	if y < boardTop {
		return
	}

	color := core.ColorBall
	switch {
	case sim.Escaped():
		color = core.ColorEscaped
	case g.last.Contacts > 0:
		color = core.ColorAccent // touching a ring this tick
	}
	dst.SetColored(x, y, BallChar, color)
}

// renderHUD draws ticks, ring hits, erosion and speed on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	field := g.scene.Field()
	sum := g.scene.Summary()

	dst.DrawTextColored(1, 0, "RING ESCAPE", core.ColorAccent)

	wall := 100 * field.IntactCount(field.Outer()) / field.SegmentsPerRing()
	hits := g.scene.Simulator().Contacts()
	stats := fmt.Sprintf("Tick: %d  Hits: %d  Eroded: %d  Wall: %d%%", sum.Ticks, hits, field.ErodedTotal(), wall)
	dst.DrawTextCentered(0, stats, core.ColorHUD)

	speed := fmt.Sprintf("x%.2f", g.scene.Speed())
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorAccent)
}

// renderOverlay draws pause and escape messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.scene.Simulator().Escaped():
		subtitle := fmt.Sprintf("%d ticks  |  Press R to play again", g.scene.Summary().Ticks)
		drawCenteredBox(dst, "ESCAPED!", subtitle, core.ColorEscaped)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorHUD)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))

	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-sw)/2, boxY+3, subtitle, core.ColorHUD)
}
