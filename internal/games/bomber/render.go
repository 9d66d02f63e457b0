package bomber

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Display symbols for live entities (grid cells reuse the save symbols).
const (
	symPlayer = 'P'
	symEnemy  = 'E'
	symBomb   = 'B'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.initErr != nil:
		g.renderOverlay(dst, "Could not generate a level", g.initErr.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderEntities(dst)
	g.renderStatus(dst)

	switch {
	case g.outcome == OutcomeWon:
		g.renderOverlay(dst, g.outcome.Message(), fmt.Sprintf("Final Score: %d", g.score))
	case g.outcome != OutcomeNone:
		g.renderOverlay(dst, "GAME OVER! "+g.outcome.Message(), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	planted, enemies := 0, 0
	if g.reg != nil {
		planted = g.reg.BombsPlanted
		enemies = len(g.reg.Enemies)
	}
	hud := fmt.Sprintf(" Bomber | Bombs planted: %d  Enemies: %d  Score: %d", planted, enemies, g.score)
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderMap draws the grid cells. The carrier brick renders like any other
// brick except for its green tint.
func (g *Game) renderMap(dst *core.Screen) {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			cell := g.grid.At(x, y)
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			switch cell.Kind {
			case CellWall:
				dst.SetColored(sx, sy, symWall, core.ColorGray)
			case CellBrick:
				color := core.ColorYellow
				if cell.HidesDoor {
					color = core.ColorGreen
				}
				dst.SetColored(sx, sy, symBrick, color)
			case CellTrap:
				dst.SetColored(sx, sy, symTrap, core.ColorRed)
			case CellDoor:
				dst.SetColored(sx, sy, symDoor, core.ColorBrightGreen)
			}
		}
	}
}

// renderEntities draws the player, enemies and bombs over the map.
func (g *Game) renderEntities(dst *core.Screen) {
	for _, b := range g.reg.Bombs {
		dst.SetColored(g.mapOffsetX+b.Pos.X, g.mapOffsetY+b.Pos.Y, symBomb, core.ColorBrightYellow)
	}
	for _, e := range g.reg.Enemies {
		dst.SetColored(g.mapOffsetX+e.Pos.X, g.mapOffsetY+e.Pos.Y, symEnemy, core.ColorBrightRed)
	}
	p := g.reg.Player.Pos
	dst.SetColored(g.mapOffsetX+p.X, g.mapOffsetY+p.Y, symPlayer, core.ColorBrightWhite)
}

// renderStatus draws the transient status line under the map.
func (g *Game) renderStatus(dst *core.Screen) {
	if g.statusLine == "" {
		return
	}
	y := g.mapOffsetY + g.grid.Height()
	dst.DrawText(0, y, g.statusLine)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	dst.DrawText(x, y, text)
}
