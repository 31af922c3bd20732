package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Board owns the minefield. Cells live in one flat slice in reading order,
// row*Width+col, sized exactly to the configured params. The zero board has
// no mines: they are placed on the first reveal so the opening click can be
// excluded from placement.
type Board struct {
	GameParams
	cells       []cell
	minesPlaced bool
	revealed    int
	rnd         *rand.Rand
}

func newBoard(params GameParams, r *rand.Rand) *Board {
	return &Board{
		GameParams: params,
		cells:      make([]cell, params.CellCount()),
		rnd:        r,
	}
}

func (b *Board) inBounds(row, col int) bool {
	return 0 <= row && row < b.Height && 0 <= col && col < b.Width
}

func (b *Board) index(row, col int) int {
	return row*b.Width + col
}

func (b *Board) at(row, col int) *cell {
	return &b.cells[b.index(row, col)]
}

// eachNeighbor calls fn for every in-bounds cell adjacent to row,col,
// diagonals included.
func (b *Board) eachNeighbor(row, col int, fn func(row, col int, c *cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if r, c := row+dr, col+dc; b.inBounds(r, c) {
				fn(r, c, b.at(r, c))
			}
		}
	}
}

/*
 * placeMines scatters MineCount mines over the board by rejection sampling:
 * draw a random cell, put it back if it is the excluded cell or already
 * mined, stop once every mine has a home. Validate caps mines at a quarter
 * of the board, so collisions stay rare and the loop terminates quickly.
 * The excluded cell is the one being revealed right now; keeping it clear
 * makes the first reveal always safe. The layout depends only on the
 * injected RNG.
 */
func (b *Board) placeMines(excludeRow, excludeCol int) {
	placed := 0
	for placed < b.MineCount {
		row, col := b.rnd.IntN(b.Height), b.rnd.IntN(b.Width)
		if row == excludeRow && col == excludeCol {
			continue
		}
		if c := b.at(row, col); !c.mine {
			c.mine = true
			placed++
		}
	}
	b.minesPlaced = true
	b.calculateAdjacency()
	Log.WithFields(logrus.Fields{
		"params":  b.Signature(),
		"exclude": []int{excludeRow, excludeCol},
	}).Debug("mines placed")
}

// calculateAdjacency fills in the mine count of every safe cell. Mine cells
// keep a zero count; their number is never shown.
func (b *Board) calculateAdjacency() {
	for row := range b.Height {
		for col := range b.Width {
			c := b.at(row, col)
			if c.mine {
				continue
			}
			var n uint8
			b.eachNeighbor(row, col, func(_, _ int, nb *cell) {
				if nb.mine {
					n++
				}
			})
			c.adjacent = n
		}
	}
}

// revealCell discloses one cell and keeps the safe-cell count current. Mine
// cells are disclosed but never counted: the count tracks progress towards
// victory, and mines do not contribute to it.
func (b *Board) revealCell(c *cell) {
	c.state = cellRevealed
	if !c.mine {
		b.revealed++
	}
}

/*
 * cascadeFrom grows the visible region around a revealed cell with zero
 * adjacent mines. The frontier is an explicit FIFO worklist of flat cell
 * indexes rather than the call stack, so a sea of zeros on a large board
 * cannot overflow anything. Every hidden neighbor of a worklist cell is
 * revealed; the neighbor joins the worklist only if its own count is zero,
 * which is what stops the flood at the numbered rim. A cell is revealed
 * before it is enqueued and only hidden cells are ever revealed, so no cell
 * enters the worklist twice and the loop touches at most CellCount cells.
 * Flagged cells stay put: a flag blocks the flood even when it is wrong.
 */
func (b *Board) cascadeFrom(row, col int) {
	queue := []int{b.index(row, col)}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		b.eachNeighbor(i/b.Width, i%b.Width, func(nr, nc int, nb *cell) {
			if nb.state != cellHidden {
				return
			}
			b.revealCell(nb)
			if nb.adjacent == 0 {
				queue = append(queue, b.index(nr, nc))
			}
		})
	}
}

// revealMines discloses every mine for the final board shown after the game
// ends. Flags on safe cells are left alone, misplaced or not.
func (b *Board) revealMines() {
	for i := range b.cells {
		if b.cells[i].mine {
			b.cells[i].state = cellRevealed
		}
	}
}

// victory reports whether every safe cell has been revealed.
func (b *Board) victory() bool {
	return b.revealed == b.CellCount()-b.MineCount
}
