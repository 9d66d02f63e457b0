package bomber

// canEnter reports whether pos can be stepped onto: strictly inside the
// border ring, and the target cell is empty, a trap, or the revealed exit
// door. Traps never block entry; only the player suffers a fatal consequence
// from standing on one, and that is checked by the game loop, not here.
func canEnter(g *Grid, pos Position) bool {
	if !g.Interior(pos.X, pos.Y) {
		return false
	}
	switch g.At(pos.X, pos.Y).Kind {
	case CellEmpty, CellTrap, CellDoor:
		return true
	default:
		return false
	}
}
