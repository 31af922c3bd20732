package mines

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameSession drives a single board from configuration to a won or lost
// game. It is a plain state machine: nothing blocks, nothing runs in the
// background, and the timer is derived from timestamps on demand. Methods
// must not be called concurrently.
type GameSession struct {
	board       *Board
	flagsPlaced int
	status      Status
	startedAt   time.Time
	endedAt     time.Time
}

// NewSession validates params and sets up an all-hidden board with no mines
// on it yet. Mines are placed by the first reveal, which excludes the
// revealed cell from placement. The session draws from r for everything
// random, so a fixed seed reproduces the whole game.
func NewSession(params GameParams, r *rand.Rand) (*GameSession, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &GameSession{board: newBoard(params, r)}, nil
}

// Reveal opens the cell at row,col. The first reveal of a session places
// the mines and starts the timer. Opening a zero-count cell floods the
// surrounding zero region. Opening a mine loses the game and discloses the
// minefield; opening the last safe cell wins it and does the same.
func (s *GameSession) Reveal(row, col int) RevealResult {
	if s.status.Terminal() {
		return RevealResult{RevealNoOp, ReasonGameOver}
	}
	if !s.board.inBounds(row, col) {
		return RevealResult{RevealNoOp, ReasonOutOfBounds}
	}
	c := s.board.at(row, col)
	switch c.state {
	case cellRevealed:
		return RevealResult{RevealNoOp, ReasonAlreadyRevealed}
	case cellFlagged:
		return RevealResult{RevealNoOp, ReasonAlreadyFlagged}
	}
	if !s.board.minesPlaced {
		s.board.placeMines(row, col)
		s.start()
	}
	s.board.revealCell(c)
	if c.mine {
		s.finish(StatusLost)
		return RevealResult{Outcome: RevealLoss}
	}
	if c.adjacent == 0 {
		s.board.cascadeFrom(row, col)
	}
	if s.board.victory() {
		s.finish(StatusWon)
		return RevealResult{Outcome: RevealWin}
	}
	return RevealResult{Outcome: RevealContinue}
}

// ToggleFlag marks or unmarks the hidden cell at row,col. Placing is
// refused once MineCount flags are out; removing always succeeds on a
// flagged cell. Flags never end the game and are not consulted by the win
// check.
func (s *GameSession) ToggleFlag(row, col int) FlagResult {
	if s.status.Terminal() {
		return FlagResult{FlagRejected, ReasonGameOver}
	}
	if !s.board.inBounds(row, col) {
		return FlagResult{FlagRejected, ReasonOutOfBounds}
	}
	c := s.board.at(row, col)
	switch c.state {
	case cellRevealed:
		return FlagResult{FlagRejected, ReasonAlreadyRevealed}
	case cellFlagged:
		c.state = cellHidden
		s.flagsPlaced--
		return FlagResult{Outcome: FlagRemoved}
	}
	if s.flagsPlaced >= s.board.MineCount {
		return FlagResult{FlagRejected, ReasonMaxFlagsReached}
	}
	c.state = cellFlagged
	s.flagsPlaced++
	return FlagResult{Outcome: FlagPlaced}
}

func (s *GameSession) start() {
	s.status = StatusInProgress
	s.startedAt = time.Now()
	Log.WithFields(logrus.Fields{
		"params": s.board.Signature(),
	}).Debug("session started")
}

func (s *GameSession) finish(status Status) {
	s.status = status
	s.endedAt = time.Now()
	s.board.revealMines()
	Log.WithFields(logrus.Fields{
		"status":  status.String(),
		"seconds": s.ElapsedSeconds(),
	}).Debug("session finished")
}

// CellView reports what the player may currently know about the cell at
// row,col. Out of bounds coordinates read as [ViewHidden], so rendering
// code may probe past the rim without special cases.
func (s *GameSession) CellView(row, col int) CellView {
	if !s.board.inBounds(row, col) {
		return ViewHidden
	}
	switch c := s.board.at(row, col); c.state {
	case cellFlagged:
		return ViewFlagged
	case cellRevealed:
		if c.mine {
			return ViewMine
		}
		return CellView(c.adjacent)
	}
	return ViewHidden
}

// View snapshots the whole board as the player sees it.
func (s *GameSession) View() GridView {
	g := make(GridView, s.board.CellCount())
	for row := range s.board.Height {
		for col := range s.board.Width {
			g[s.board.index(row, col)] = s.CellView(row, col)
		}
	}
	return g
}

func (s *GameSession) Params() GameParams { return s.board.GameParams }

func (s *GameSession) Status() Status { return s.status }

// Revealed returns how many safe cells are open. Mines disclosed at game
// end do not count.
func (s *GameSession) Revealed() int { return s.board.revealed }

func (s *GameSession) FlagsPlaced() int { return s.flagsPlaced }

// MinesRemaining is the player's mine counter: mines minus flags. It
// reflects flags, not truth, and can reach zero on a wrong board.
func (s *GameSession) MinesRemaining() int {
	return s.board.MineCount - s.flagsPlaced
}

// ElapsedSeconds reports play time. It is zero until the first reveal,
// live while the game runs and frozen at the moment the game ended.
func (s *GameSession) ElapsedSeconds() int {
	switch {
	case s.startedAt.IsZero():
		return 0
	case s.endedAt.IsZero():
		return int(time.Since(s.startedAt).Seconds())
	}
	return int(s.endedAt.Sub(s.startedAt).Seconds())
}
