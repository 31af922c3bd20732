package mines

import "fmt"

// Board dimension limits. Width runs along the screen, so it gets more room
// than height; a quarter of the board is the densest minefield that still
// leaves something to reason about.
const (
	MinWidth  = 5
	MaxWidth  = 30
	MinHeight = 5
	MaxHeight = 16
	MinMines  = 1
)

// Classic difficulty presets.
var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

// GameParams describes the board a session is to be played on.
type GameParams struct {
	Width     int
	Height    int
	MineCount int
}

// ConfigError reports a single game parameter outside its allowed range.
// [GameParams.Validate] returns it by value inside an error; use
// [errors.As] to recover the offending field.
type ConfigError struct {
	Field    string
	Value    int
	Min, Max int
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf(
		"%s must be between %d and %d, got %d",
		e.Field, e.Min, e.Max, e.Value,
	)
}

// MaxMines returns the largest mine count allowed for these dimensions.
func (p GameParams) MaxMines() int {
	return p.Width * p.Height / 4
}

// CellCount returns the number of cells on the board.
func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

// Validate checks every field against its range. Dimensions are checked
// before the mine count so the mine ceiling is only computed for a sane
// board.
func (p GameParams) Validate() error {
	if p.Width < MinWidth || p.Width > MaxWidth {
		return ConfigError{"width", p.Width, MinWidth, MaxWidth}
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		return ConfigError{"height", p.Height, MinHeight, MaxHeight}
	}
	if ceil := p.MaxMines(); p.MineCount < MinMines || p.MineCount > ceil {
		return ConfigError{"mine count", p.MineCount, MinMines, ceil}
	}
	return nil
}

// Signature renders params in a "WxH:M" form used as the key for best time
// records. Identical params always produce identical signatures.
func (p GameParams) Signature() string {
	return fmt.Sprintf("%dx%d:%d", p.Width, p.Height, p.MineCount)
}

// Tier names the preset these params correspond to, if any.
func (p GameParams) Tier() string {
	switch p {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	}
	return "custom"
}
