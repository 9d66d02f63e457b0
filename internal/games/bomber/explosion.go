package bomber

import "time"

// blastDirs are the four cardinal scan directions.
var blastDirs = [4]Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// detonate applies one bomb's blast to the world. Each cardinal direction is
// scanned outward up to the blast range; an indestructible block halts the
// scan, a destructible block is destroyed and halts the scan after that
// single cell. Enemies on scanned unblocked cells are eliminated. If the
// player is caught, detonate returns immediately with playerHit set and the
// remaining directions are not scanned.
func (g *Game) detonate(b Bomb) (killed int, playerHit bool) {
	reach := g.conf.Bombs.BlastRange
	for _, d := range blastDirs {
		for dist := 1; dist <= reach; dist++ {
			pos := Position{X: b.Pos.X + d.X*dist, Y: b.Pos.Y + d.Y*dist}
			if !g.grid.InBounds(pos.X, pos.Y) {
				break
			}

			cell := g.grid.At(pos.X, pos.Y)
			if cell.Kind == CellWall {
				break
			}
			if cell.Kind == CellBrick {
				g.destroyBrick(pos, cell)
				break
			}

			if i := g.reg.EnemyAt(pos); i >= 0 {
				g.reg.RemoveEnemy(i)
				killed++
			}
			if g.reg.Player.Pos == pos {
				return killed, true
			}
		}
	}
	return killed, false
}

// destroyBrick clears a destructible block. Destroying the carrier brick
// reveals the exit door; the visibility flip is permanent.
func (g *Game) destroyBrick(pos Position, c Cell) {
	if c.HidesDoor {
		g.grid.Set(pos.X, pos.Y, Cell{Kind: CellDoor})
		g.reg.Door.Visible = true
		return
	}
	g.grid.Set(pos.X, pos.Y, Cell{})
}

// explodeDue runs the fuse check over every planted bomb and detonates the
// due ones. Each detonated bomb is removed and the player's capacity is
// restored, even when the blast caught the player. Returns true if the
// player was caught; remaining due bombs are then left for a tick that will
// never come.
func (g *Game) explodeDue(now time.Time) bool {
	fuse := time.Duration(g.conf.Bombs.FuseMillis) * time.Millisecond

	i := 0
	for i < len(g.reg.Bombs) {
		b := g.reg.Bombs[i]
		if now.Sub(b.PlantedAt) < fuse {
			i++
			continue
		}

		killed, playerHit := g.detonate(b)
		g.reg.RemoveBomb(i)
		g.enemiesDefeated += killed
		g.score += killed * scorePerEnemy
		if playerHit {
			return true
		}
	}
	return false
}
