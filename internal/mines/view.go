package mines

import (
	"strconv"
	"strings"
)

// CellView is everything a collaborator may learn about one cell. Values 0
// through 8 are revealed adjacency counts; the negative values stand for the
// two concealed states; [ViewMine] appears only once the game is over.
type CellView int8

const (
	ViewHidden  CellView = -2
	ViewFlagged CellView = -1
	ViewMine    CellView = 9
)

func (v CellView) String() string {
	switch {
	case v == ViewHidden:
		return "."
	case v == ViewFlagged:
		return "F"
	case v == ViewMine:
		return "*"
	case v == 0:
		return " "
	case 1 <= v && v <= 8:
		return strconv.Itoa(int(v))
	default:
		return "?"
	}
}

// GridView is a whole board in reading order, row*width+col.
type GridView []CellView

// Revealed reports whether the cell is disclosed, i.e. a count or a mine.
func (v CellView) Revealed() bool {
	return v >= 0
}

func (g GridView) ToString(width int) string {
	var b strings.Builder
	for i, v := range g {
		b.WriteString(v.String())
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
