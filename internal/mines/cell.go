package mines

// cellState tracks what the player has done to a single cell so far. Exactly
// one state holds at any time; the conservation checks in the tests lean on
// that.
type cellState int8

const (
	cellHidden cellState = iota
	cellFlagged
	cellRevealed
)

// cell is the authoritative per-cell record. It never leaves this package;
// collaborators observe cells through [CellView] values instead.
type cell struct {
	mine     bool
	adjacent uint8
	state    cellState
}
