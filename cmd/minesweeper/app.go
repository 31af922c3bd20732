package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/records"
)

// application ties the game loop to its collaborators. Input is line based,
// one command per line; output is plain text frames redrawn after every
// command.
type application struct {
	store *records.Store
	rnd   *rand.Rand
	in    *bufio.Scanner
	out   io.Writer
}

func (app *application) printf(format string, args ...any) {
	fmt.Fprintf(app.out, format, args...)
}

// readLine blocks until the player enters a line. The second value is false
// once input is exhausted.
func (app *application) readLine() (string, bool) {
	if !app.in.Scan() {
		return "", false
	}
	return app.in.Text(), true
}

func (app *application) clearScreen() {
	fmt.Fprint(app.out, "\033[2J\033[H")
}

func (app *application) pause() {
	app.printf("\nPress Enter to continue ")
	app.readLine()
}

// run shows the main menu until the player quits or input runs out. The
// context is consulted between commands, so a shutdown signal takes effect
// once the current line is read.
func (app *application) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		app.clearScreen()
		app.printf("%s", mainMenu)
		line, ok := app.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			app.play(ctx, mines.Beginner)
		case "2":
			app.play(ctx, mines.Intermediate)
		case "3":
			app.play(ctx, mines.Expert)
		case "4":
			if params, ok := app.promptCustom(); ok {
				app.play(ctx, params)
			}
		case "5":
			app.resumeSaved(ctx)
		case "6":
			app.showStatistics(true)
		case "7":
			app.showInstructions(true)
		case "8", "q", "Q":
			return nil
		}
	}
}
