package main

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

// renderBoard draws one game frame: the counters, the grid with its
// coordinate rim and either a status banner or the command hint, plus an
// optional message about the previous command.
func renderBoard(s *mines.GameSession, message string) string {
	var b strings.Builder
	params := s.Params()

	fmt.Fprintf(&b, "MINESWEEPER  %s\n\n", params.Signature())
	fmt.Fprintf(&b, "Mines: %-3d  Flags: %-3d  Time: %s\n\n",
		s.MinesRemaining(), s.FlagsPlaced(), clock(s.ElapsedSeconds()))

	b.WriteString("    ")
	for col := range params.Width {
		b.WriteByte(' ')
		b.WriteByte(byte('A' + col))
	}
	b.WriteByte('\n')
	for row := range params.Height {
		fmt.Fprintf(&b, "%3d ", row+1)
		for col := range params.Width {
			b.WriteByte(' ')
			b.WriteString(s.CellView(row, col).String())
		}
		b.WriteByte('\n')
	}

	switch s.Status() {
	case mines.StatusWon:
		fmt.Fprintf(&b, "\nYou cleared the board in %s!\n", clock(s.ElapsedSeconds()))
	case mines.StatusLost:
		b.WriteString("\nYou hit a mine!\n")
	default:
		b.WriteString("\nR A1 reveal, F A1 flag, S stats, H help, Q quit\n")
	}
	if message != "" {
		fmt.Fprintf(&b, "%s\n", message)
	}
	return b.String()
}

// clock renders seconds as mm:ss. Hours are nobody's best time.
func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
