package records

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrNoRecord    = errors.New("no record for these params")
	ErrNoSavedGame = errors.New("no saved game")
)

// Record is the best registered time for one parameter signature.
type Record struct {
	Signature   string
	BestSeconds int
	AchievedAt  time.Time
}

// Tally counts finished games across all difficulties.
type Tally struct {
	GamesPlayed int
	GamesWon    int
}

// Store keeps play statistics and at most one saved game in a local sqlite
// database. Writes are serialized with a mutex.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens the records database at path, creating it and its tables on
// first use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS game_record (
	signature		TEXT PRIMARY KEY,
	best_seconds	INTEGER NOT NULL,
	achieved_at		TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS tally (
	id				INTEGER PRIMARY KEY CHECK (id = 1),
	games_played	INTEGER NOT NULL DEFAULT 0,
	games_won		INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS saved_game (
	id			INTEGER PRIMARY KEY CHECK (id = 1),
	state		BLOB NOT NULL,
	saved_at	TIMESTAMP NOT NULL
);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BestTime retrieves the record for a signature. If no time was ever
// submitted for it, [ErrNoRecord] is returned.
func (s *Store) BestTime(signature string) (Record, error) {
	var rec Record
	err := s.db.QueryRow(`
SELECT signature, best_seconds, achieved_at
FROM game_record WHERE signature = ?;`, signature).
		Scan(&rec.Signature, &rec.BestSeconds, &rec.AchievedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNoRecord
	}
	return rec, err
}

// SubmitTime registers seconds for a signature if it beats the stored best.
// The first time for a signature always counts. Reports whether the record
// improved.
func (s *Store) SubmitTime(signature string, seconds int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best int
	err := s.db.QueryRow(
		`SELECT best_seconds FROM game_record WHERE signature = ?;`,
		signature).Scan(&best)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, err
	case seconds >= best:
		return false, nil
	}

	_, err = s.db.Exec(`
INSERT INTO game_record (signature, best_seconds, achieved_at)
VALUES (?, ?, ?)
ON CONFLICT(signature)
DO UPDATE SET best_seconds=excluded.best_seconds, achieved_at=excluded.achieved_at;`,
		signature, seconds, time.Now())
	return err == nil, err
}

// Tally returns the lifetime games counter. A fresh database counts as zero.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT games_played, games_won FROM tally WHERE id = 1;`).
		Scan(&t.GamesPlayed, &t.GamesWon)
	if errors.Is(err, sql.ErrNoRows) {
		return t, nil
	}
	return t, err
}

// RecordResult bumps the games counter, and the wins counter when won.
func (s *Store) RecordResult(won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := 0
	if won {
		w = 1
	}
	_, err := s.db.Exec(`
INSERT INTO tally (id, games_played, games_won)
VALUES (1, 1, ?)
ON CONFLICT(id)
DO UPDATE SET games_played=games_played+1, games_won=games_won+?;`, w, w)
	return err
}

// SaveGame stores state as the one saved game, replacing any previous one.
func (s *Store) SaveGame(state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
INSERT INTO saved_game (id, state, saved_at)
VALUES (1, ?, ?)
ON CONFLICT(id)
DO UPDATE SET state=excluded.state, saved_at=excluded.saved_at;`,
		state, time.Now())
	return err
}

// LoadGame retrieves the saved game state. If there is none,
// [ErrNoSavedGame] is returned.
func (s *Store) LoadGame() ([]byte, error) {
	var state []byte
	err := s.db.QueryRow(`SELECT state FROM saved_game WHERE id = 1;`).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSavedGame
	}
	return state, err
}

// ClearGame deletes the saved game without checking if one existed.
func (s *Store) ClearGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM saved_game;`)
	return err
}
