package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/records"
)

const mainMenu = `MINESWEEPER

1) Beginner      9x9,   10 mines
2) Intermediate  16x16, 40 mines
3) Expert        30x16, 99 mines
4) Custom game
5) Resume saved game
6) Statistics
7) How to play
8) Quit

> `

const instructions = `HOW TO PLAY

Reveal every cell that hides no mine. Revealing a mine ends the game.
A revealed number counts the mines in the eight cells around it. The
first reveal of a game is never a mine.

Commands:
  R A1   reveal cell A1 (also accepted: RA1, lowercase)
  F A1   flag or unflag cell A1
  S      show statistics
  H      show this help
  Q      quit to menu, saving the game

Flags are limited to the number of mines. A flagged cell cannot be
revealed until it is unflagged.
`

func (app *application) showInstructions(pause bool) {
	app.clearScreen()
	app.printf("%s", instructions)
	if pause {
		app.pause()
	}
}

func (app *application) showStatistics(pause bool) {
	tally, err := app.store.Tally()
	if err != nil {
		log.Error("unable to read tally: ", err)
		app.printf("statistics are unavailable\n")
		if pause {
			app.pause()
		}
		return
	}

	app.clearScreen()
	app.printf("STATISTICS\n\n")
	app.printf("Games played: %d\n", tally.GamesPlayed)
	app.printf("Games won:    %d\n", tally.GamesWon)
	if tally.GamesPlayed > 0 {
		app.printf("Win rate:     %d%%\n", 100*tally.GamesWon/tally.GamesPlayed)
	}
	app.printf("\n")

	for _, params := range []mines.GameParams{
		mines.Beginner, mines.Intermediate, mines.Expert,
	} {
		rec, err := app.store.BestTime(params.Signature())
		switch {
		case errors.Is(err, records.ErrNoRecord):
			app.printf("%-12s  no best time yet\n", params.Tier())
		case err != nil:
			log.Error("unable to read best time: ", err)
		default:
			app.printf("%-12s  best %s\n", params.Tier(), clock(rec.BestSeconds))
		}
	}
	if pause {
		app.pause()
	}
}

// promptCustom asks for the three game parameters until they make a valid
// board. Returns false once input runs out.
func (app *application) promptCustom() (mines.GameParams, bool) {
	app.clearScreen()
	app.printf("CUSTOM GAME\n\n")
	for {
		width, ok := app.promptInt(
			"Width (" + bounds(mines.MinWidth, mines.MaxWidth) + "): ")
		if !ok {
			return mines.GameParams{}, false
		}
		height, ok := app.promptInt(
			"Height (" + bounds(mines.MinHeight, mines.MaxHeight) + "): ")
		if !ok {
			return mines.GameParams{}, false
		}
		params := mines.GameParams{Width: width, Height: height}
		mineCount, ok := app.promptInt(
			"Mines (" + bounds(mines.MinMines, params.MaxMines()) + "): ")
		if !ok {
			return mines.GameParams{}, false
		}
		params.MineCount = mineCount

		if err := params.Validate(); err != nil {
			app.printf("%v\n\n", err)
			continue
		}
		return params, true
	}
}

func (app *application) promptInt(prompt string) (int, bool) {
	for {
		app.printf("%s", prompt)
		line, ok := app.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			app.printf("enter a number\n")
			continue
		}
		return n, true
	}
}

func bounds(lo, hi int) string {
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}
