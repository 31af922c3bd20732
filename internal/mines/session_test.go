package mines

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// testSession builds an in-progress session with mines at the given flat
// indexes, sidestepping lazy placement so tests can play known layouts.
func testSession(t *testing.T, params GameParams, mineAt ...int) *GameSession {
	t.Helper()
	require.NoError(t, params.Validate())
	require.Len(t, mineAt, params.MineCount)
	b := newBoard(params, rand.New(rand.NewPCG(1, 2)))
	for _, i := range mineAt {
		b.cells[i].mine = true
	}
	b.minesPlaced = true
	b.calculateAdjacency()
	return &GameSession{board: b, status: StatusInProgress, startedAt: time.Now()}
}

/*
 * Most scenario tests below share one handmade 5x5 layout with mines at
 * flat indexes 4 and 14, i.e. the right edge of rows 0 and 2:
 *
 *         0 0 0 1 M
 *         0 0 0 2 2
 *         0 0 0 1 M
 *         0 0 0 1 1
 *         0 0 0 0 0
 *
 * One zero region of 17 cells covers the three left columns and the two
 * bottom-right cells; a rim of 6 numbered cells separates it from the
 * mines. 23 safe cells in total.
 */
var (
	fixtureParams = GameParams{Width: 5, Height: 5, MineCount: 2}
	fixtureMines  = []int{4, 14}
)

func TestFirstRevealIsAlwaysSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	for row := range Beginner.Height {
		for col := range Beginner.Width {
			r := rand.New(rand.NewPCG(1, uint64(row*Beginner.Width+col)))
			s, err := NewSession(Beginner, r)
			require.NoError(t, err)

			assert.Equal(t, StatusNotStarted, s.Status())
			assert.Zero(t, s.ElapsedSeconds())

			res := s.Reveal(row, col)
			if res.Outcome == RevealLoss || res.Outcome == RevealNoOp {
				t.Fatalf("first reveal at %d:%d came back %s", row, col, res.Outcome)
			}
			if got := s.Status(); got != StatusInProgress && got != StatusWon {
				t.Fatalf("first reveal at %d:%d left status %s", row, col, got)
			}
			assert.Greater(t, s.Revealed(), 0)
		}
	}
}

func TestNewSessionValidates(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	_, err := NewSession(GameParams{Width: 50, Height: 9, MineCount: 10}, r)
	var ce ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "width", ce.Field)
}

func TestRevealCascade(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)

	// a flag blocks the flood even inside the zero region
	require.Equal(t, FlagPlaced, s.ToggleFlag(4, 4).Outcome)

	res := s.Reveal(4, 0)
	assert.Equal(t, RevealContinue, res.Outcome)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 22, s.Revealed())
	assert.Equal(t, ViewFlagged, s.CellView(4, 4))

	rim := map[[2]int]CellView{
		{0, 3}: 1, {1, 3}: 2, {1, 4}: 2, {2, 3}: 1, {3, 3}: 1, {3, 4}: 1,
	}
	for pos, want := range rim {
		assert.Equal(t, want, s.CellView(pos[0], pos[1]), "rim cell %v", pos)
	}
	for _, pos := range [][2]int{{0, 4}, {2, 4}} {
		assert.Equal(t, ViewHidden, s.CellView(pos[0], pos[1]), "mine %v", pos)
	}

	// closure: a revealed zero cell may not touch anything hidden
	for row := range fixtureParams.Height {
		for col := range fixtureParams.Width {
			if s.CellView(row, col) != 0 {
				continue
			}
			s.board.eachNeighbor(row, col, func(nr, nc int, _ *cell) {
				if s.CellView(nr, nc) == ViewHidden {
					t.Errorf("hidden cell %d:%d borders a revealed zero", nr, nc)
				}
			})
		}
	}
}

func TestRevealWinOnLastSafeCell(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	require.Equal(t, FlagPlaced, s.ToggleFlag(4, 4).Outcome)
	require.Equal(t, RevealContinue, s.Reveal(4, 0).Outcome)

	assert.Equal(t, FlagRemoved, s.ToggleFlag(4, 4).Outcome)
	assert.Zero(t, s.FlagsPlaced())

	res := s.Reveal(4, 4)
	assert.Equal(t, RevealWin, res.Outcome)
	assert.Equal(t, StatusWon, s.Status())
	assert.Equal(t, 23, s.Revealed())

	// the minefield is disclosed on a win as well
	assert.Equal(t, ViewMine, s.CellView(0, 4))
	assert.Equal(t, ViewMine, s.CellView(2, 4))

	after := s.Reveal(1, 3)
	assert.Equal(t, RevealNoOp, after.Outcome)
	assert.Equal(t, ReasonGameOver, after.Reason)
}

func TestRevealCascadeWinsInOneCall(t *testing.T) {
	t.Parallel()

	// a single corner mine leaves one zero region plus its rim, so any
	// zero cell clears the whole board at once
	s := testSession(t, GameParams{Width: 5, Height: 5, MineCount: 1}, 0)

	res := s.Reveal(4, 4)
	assert.Equal(t, RevealWin, res.Outcome)
	assert.Equal(t, StatusWon, s.Status())
	assert.Equal(t, 24, s.Revealed())
}

func TestLossDisclosesAllMines(t *testing.T) {
	t.Parallel()

	s, err := NewSession(Beginner, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	require.NotEqual(t, RevealLoss, s.Reveal(4, 4).Outcome)
	if s.Status().Terminal() {
		t.Skip("opening cascade cleared the seeded board")
	}

	row, col := -1, -1
	for i, c := range s.board.cells {
		if c.mine && c.state == cellHidden {
			row, col = i/s.board.Width, i%s.board.Width
			break
		}
	}
	require.NotEqual(t, -1, row)

	require.Equal(t, RevealLoss, s.Reveal(row, col).Outcome)

	shown := 0
	for _, v := range s.View() {
		if v == ViewMine {
			shown++
		}
	}
	assert.Equal(t, Beginner.MineCount, shown)
}

func TestRevealMineLosesGame(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	require.Equal(t, RevealContinue, s.Reveal(1, 3).Outcome)
	require.Equal(t, 1, s.Revealed())

	res := s.Reveal(0, 4)
	assert.Equal(t, RevealLoss, res.Outcome)
	assert.Equal(t, StatusLost, s.Status())

	// mines are disclosed, untouched safe cells stay hidden
	assert.Equal(t, ViewMine, s.CellView(0, 4))
	assert.Equal(t, ViewMine, s.CellView(2, 4))
	assert.Equal(t, CellView(2), s.CellView(1, 3))
	assert.Equal(t, ViewHidden, s.CellView(4, 4))
	assert.Equal(t, 1, s.Revealed())

	assert.Equal(t, ReasonGameOver, s.Reveal(0, 0).Reason)
	assert.Equal(t, ReasonGameOver, s.ToggleFlag(0, 0).Reason)
}

func TestRevealNoOpReasons(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)

	tests := []struct {
		name     string
		row, col int
		setup    func()
		reason   Reason
	}{
		{"row under", -1, 0, nil, ReasonOutOfBounds},
		{"col under", 0, -1, nil, ReasonOutOfBounds},
		{"row over", 5, 0, nil, ReasonOutOfBounds},
		{"col over", 0, 5, nil, ReasonOutOfBounds},
		{
			"already revealed", 1, 3,
			func() { require.Equal(t, RevealContinue, s.Reveal(1, 3).Outcome) },
			ReasonAlreadyRevealed,
		},
		{
			"flagged", 0, 0,
			func() { require.Equal(t, FlagPlaced, s.ToggleFlag(0, 0).Outcome) },
			ReasonAlreadyFlagged,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.setup != nil {
				test.setup()
			}
			revealed, flags := s.Revealed(), s.FlagsPlaced()
			res := s.Reveal(test.row, test.col)
			assert.Equal(t, RevealNoOp, res.Outcome)
			assert.Equal(t, test.reason, res.Reason)
			assert.Equal(t, revealed, s.Revealed(), "a no-op must not move counters")
			assert.Equal(t, flags, s.FlagsPlaced())
		})
	}
}

func TestToggleFlag(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)

	assert.Equal(t, ReasonOutOfBounds, s.ToggleFlag(-1, 2).Reason)
	assert.Equal(t, ReasonOutOfBounds, s.ToggleFlag(2, 17).Reason)

	res := s.ToggleFlag(3, 3)
	assert.Equal(t, FlagPlaced, res.Outcome)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 1, s.FlagsPlaced())
	assert.Equal(t, 1, s.MinesRemaining())
	assert.Equal(t, ViewFlagged, s.CellView(3, 3))

	res = s.ToggleFlag(3, 3)
	assert.Equal(t, FlagRemoved, res.Outcome)
	assert.Zero(t, s.FlagsPlaced())
	assert.Equal(t, 2, s.MinesRemaining())
	assert.Equal(t, ViewHidden, s.CellView(3, 3))

	require.Equal(t, RevealContinue, s.Reveal(1, 3).Outcome)
	res = s.ToggleFlag(1, 3)
	assert.Equal(t, FlagRejected, res.Outcome)
	assert.Equal(t, ReasonAlreadyRevealed, res.Reason)
}

func TestFlagCeiling(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)

	require.Equal(t, FlagPlaced, s.ToggleFlag(0, 0).Outcome)
	require.Equal(t, FlagPlaced, s.ToggleFlag(0, 1).Outcome)
	assert.Zero(t, s.MinesRemaining())

	res := s.ToggleFlag(0, 2)
	assert.Equal(t, FlagRejected, res.Outcome)
	assert.Equal(t, ReasonMaxFlagsReached, res.Reason)
	assert.Equal(t, 2, s.FlagsPlaced())

	require.Equal(t, FlagRemoved, s.ToggleFlag(0, 0).Outcome)
	assert.Equal(t, FlagPlaced, s.ToggleFlag(0, 2).Outcome)
}

func TestFlagCeilingOnFullBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(Beginner, r)
	require.NoError(t, err)

	placed := 0
	for col := range Beginner.Width {
		for _, row := range []int{0, 1} {
			if placed == Beginner.MineCount {
				continue
			}
			require.Equal(t, FlagPlaced, s.ToggleFlag(row, col).Outcome)
			placed++
		}
	}
	require.Equal(t, Beginner.MineCount, s.FlagsPlaced())

	res := s.ToggleFlag(8, 8)
	assert.Equal(t, FlagRejected, res.Outcome)
	assert.Equal(t, ReasonMaxFlagsReached, res.Reason)
}

func TestFlagBeforeFirstReveal(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(Beginner, r)
	require.NoError(t, err)

	assert.Equal(t, FlagPlaced, s.ToggleFlag(3, 3).Outcome)
	assert.Equal(t, StatusNotStarted, s.Status())

	// a flag shields its cell from being the opening reveal
	res := s.Reveal(3, 3)
	assert.Equal(t, RevealNoOp, res.Outcome)
	assert.Equal(t, ReasonAlreadyFlagged, res.Reason)
	assert.Equal(t, StatusNotStarted, s.Status())

	res = s.Reveal(0, 0)
	assert.NotEqual(t, RevealLoss, res.Outcome)
	assert.NotEqual(t, RevealNoOp, res.Outcome)
	assert.Equal(t, 1, s.FlagsPlaced())
}

func TestStatusIsMonotonic(t *testing.T) {
	t.Parallel()

	s := testSession(t, fixtureParams, fixtureMines...)
	require.Equal(t, RevealLoss, s.Reveal(0, 4).Outcome)

	for row := range fixtureParams.Height {
		for col := range fixtureParams.Width {
			s.Reveal(row, col)
			s.ToggleFlag(row, col)
			require.Equal(t, StatusLost, s.Status())
		}
	}
	assert.Equal(t, RevealNoOp, s.Reveal(2, 4).Outcome)
}

func TestStateConservation(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(Beginner, r)
	require.NoError(t, err)

	moves := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		row, col := moves.IntN(Beginner.Height), moves.IntN(Beginner.Width)
		if moves.IntN(4) == 0 {
			s.ToggleFlag(row, col)
		} else {
			s.Reveal(row, col)
		}

		var hidden, flagged, revealed, safeOpen int
		for _, v := range s.View() {
			switch {
			case v == ViewHidden:
				hidden++
			case v == ViewFlagged:
				flagged++
			default:
				revealed++
				if v != ViewMine {
					safeOpen++
				}
			}
		}
		require.Equal(t, Beginner.CellCount(), hidden+flagged+revealed)
		require.Equal(t, s.Revealed(), safeOpen)
		require.LessOrEqual(t, s.Revealed(), Beginner.CellCount()-Beginner.MineCount)
		require.LessOrEqual(t, s.FlagsPlaced(), Beginner.MineCount)

		if s.Status().Terminal() {
			break
		}
	}
}

func TestCascadeClosureOnGeneratedBoards(t *testing.T) {
	t.Parallel()

	for seed := range uint64(8) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		s, err := NewSession(Beginner, r)
		require.NoError(t, err)
		s.Reveal(4, 4)

		for row := range Beginner.Height {
			for col := range Beginner.Width {
				if s.CellView(row, col) != 0 {
					continue
				}
				s.board.eachNeighbor(row, col, func(nr, nc int, _ *cell) {
					if s.CellView(nr, nc) == ViewHidden {
						t.Errorf(
							"seed %d: hidden cell %d:%d borders a revealed zero",
							seed, nr, nc,
						)
					}
				})
			}
		}
	}
}

func TestElapsedSeconds(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	s, err := NewSession(Beginner, r)
	require.NoError(t, err)
	assert.Zero(t, s.ElapsedSeconds(), "clock must not run before the first reveal")

	fixture := testSession(t, fixtureParams, fixtureMines...)
	fixture.startedAt = time.Now().Add(-90 * time.Second)
	got := fixture.ElapsedSeconds()
	assert.GreaterOrEqual(t, got, 90)
	assert.LessOrEqual(t, got, 91)

	require.Equal(t, RevealLoss, fixture.Reveal(0, 4).Outcome)
	frozen := fixture.ElapsedSeconds()
	assert.Equal(t, int(fixture.endedAt.Sub(fixture.startedAt).Seconds()), frozen)
	fixture.Reveal(4, 4)
	assert.Equal(t, frozen, fixture.ElapsedSeconds())
}
