package mines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

// snapshot is the gob image of a [GameSession]. The grid flattens into
// parallel slices so the cell type can stay unexported while the payload
// keeps the exported fields gob wants. Adjacency counts and the revealed
// and flag tallies are not stored; they are recomputed on decode.
type snapshot struct {
	Params      GameParams
	Mines       []bool
	States      []int8
	MinesPlaced bool
	Status      Status
	PlaySeconds int
	EndedAt     time.Time
}

// Bytes serializes the session for storage. The pair [GameSession.Bytes]
// and [DecodeSession] round-trip everything observable: board, status,
// flags and play time.
func (s *GameSession) Bytes() ([]byte, error) {
	snap := snapshot{
		Params:      s.board.GameParams,
		Mines:       make([]bool, len(s.board.cells)),
		States:      make([]int8, len(s.board.cells)),
		MinesPlaced: s.board.minesPlaced,
		Status:      s.status,
		PlaySeconds: s.ElapsedSeconds(),
		EndedAt:     s.endedAt,
	}
	for i, c := range s.board.cells {
		snap.Mines[i] = c.mine
		snap.States[i] = int8(c.state)
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(snap)
	return buf.Bytes(), err
}

// DecodeSession rebuilds a session from [GameSession.Bytes] output. The
// snapshot cannot carry the RNG, so the caller injects a fresh one; it only
// matters for a session whose mines are not placed yet. An in-progress
// session resumes with its play clock where it left off.
func DecodeSession(data []byte, r *rand.Rand) (*GameSession, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, err
	}
	if err := snap.validate(); err != nil {
		return nil, err
	}

	board := newBoard(snap.Params, r)
	var revealed, flags int
	for i, st := range snap.States {
		board.cells[i].mine = snap.Mines[i]
		switch cellState(st) {
		case cellHidden:
		case cellFlagged:
			flags++
		case cellRevealed:
			if !snap.Mines[i] {
				revealed++
			}
		default:
			return nil, fmt.Errorf(
				"%w: cell %d has state %d", ErrCorruptSnapshot, i, st,
			)
		}
		board.cells[i].state = cellState(st)
	}
	board.minesPlaced = snap.MinesPlaced
	board.revealed = revealed
	if board.minesPlaced {
		board.calculateAdjacency()
	}

	s := &GameSession{
		board:       board,
		flagsPlaced: flags,
		status:      snap.Status,
	}
	switch {
	case snap.Status.Terminal():
		s.endedAt = snap.EndedAt
		s.startedAt = snap.EndedAt.Add(-time.Duration(snap.PlaySeconds) * time.Second)
	case snap.Status == StatusInProgress:
		s.startedAt = time.Now().Add(-time.Duration(snap.PlaySeconds) * time.Second)
	}
	return s, nil
}

func (snap snapshot) validate() error {
	if err := snap.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if n := snap.Params.CellCount(); len(snap.Mines) != n || len(snap.States) != n {
		return fmt.Errorf(
			"%w: %s board with %d mine and %d state cells",
			ErrCorruptSnapshot, snap.Params.Signature(),
			len(snap.Mines), len(snap.States),
		)
	}
	var mines int
	for _, m := range snap.Mines {
		if m {
			mines++
		}
	}
	if snap.MinesPlaced && mines != snap.Params.MineCount {
		return fmt.Errorf(
			"%w: %d mines on board, params say %d",
			ErrCorruptSnapshot, mines, snap.Params.MineCount,
		)
	}
	if !snap.MinesPlaced && (mines != 0 || snap.Status != StatusNotStarted) {
		return fmt.Errorf(
			"%w: %q session without a minefield", ErrCorruptSnapshot, snap.Status,
		)
	}
	return nil
}
