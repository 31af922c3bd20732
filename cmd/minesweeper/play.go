package main

import (
	"context"
	"errors"

	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/records"
)

func (app *application) play(ctx context.Context, params mines.GameParams) {
	session, err := mines.NewSession(params, app.rnd)
	if err != nil {
		app.printf("cannot start game: %v\n", err)
		app.pause()
		return
	}
	app.playSession(ctx, session, false)
}

func (app *application) resumeSaved(ctx context.Context) {
	data, err := app.store.LoadGame()
	if errors.Is(err, records.ErrNoSavedGame) {
		app.printf("no saved game to resume\n")
		app.pause()
		return
	}
	if err != nil {
		log.Error("unable to load saved game: ", err)
		app.printf("cannot resume: %v\n", err)
		app.pause()
		return
	}

	session, err := mines.DecodeSession(data, app.rnd)
	if err != nil {
		log.Error("unable to decode saved game: ", err)
		app.printf("the saved game is damaged, discarding it\n")
		if err := app.store.ClearGame(); err != nil {
			log.Error("unable to clear saved game: ", err)
		}
		app.pause()
		return
	}
	app.playSession(ctx, session, true)
}

// playSession runs one game to its end or until the player leaves.
// fromSave marks a session resumed from the store, whose save slot is
// cleaned up when the game finishes.
func (app *application) playSession(ctx context.Context, session *mines.GameSession, fromSave bool) {
	message := ""
	for {
		select {
		case <-ctx.Done():
			app.suspend(session)
			return
		default:
		}

		app.clearScreen()
		app.printf("%s", renderBoard(session, message))
		message = ""

		if session.Status().Terminal() {
			app.finishGame(session, fromSave)
			return
		}

		app.printf("> ")
		line, ok := app.readLine()
		if !ok {
			app.suspend(session)
			return
		}
		cmd, err := parseCommand(line, session.Params())
		if err != nil {
			message = err.Error()
			continue
		}

		switch cmd.kind {
		case commandReveal:
			if res := session.Reveal(cmd.row, cmd.col); res.Outcome == mines.RevealNoOp {
				message = res.Reason.String()
			}
		case commandFlag:
			if res := session.ToggleFlag(cmd.row, cmd.col); res.Outcome == mines.FlagRejected {
				message = res.Reason.String()
			}
		case commandHelp:
			app.showInstructions(true)
		case commandStats:
			app.showStatistics(true)
		case commandQuit:
			app.suspend(session)
			return
		}
	}
}

// finishGame settles a terminal session with the records store: the tally
// always moves, a win may set a best time, and a stale save slot is
// cleared.
func (app *application) finishGame(session *mines.GameSession, fromSave bool) {
	won := session.Status() == mines.StatusWon

	if err := app.store.RecordResult(won); err != nil {
		log.Error("unable to record game result: ", err)
	}
	if fromSave {
		if err := app.store.ClearGame(); err != nil {
			log.Error("unable to clear saved game: ", err)
		}
	}
	if won {
		signature := session.Params().Signature()
		improved, err := app.store.SubmitTime(signature, session.ElapsedSeconds())
		if err != nil {
			log.Error("unable to submit best time: ", err)
		} else if improved {
			app.printf("A new best time for %s!\n", signature)
		}
	}
	app.pause()
}

// suspend saves an in-progress game for later. Sessions that never started
// leave any earlier save alone.
func (app *application) suspend(session *mines.GameSession) {
	if session.Status() != mines.StatusInProgress {
		return
	}
	data, err := session.Bytes()
	if err != nil {
		log.Error("unable to serialize session: ", err)
		return
	}
	if err := app.store.SaveGame(data); err != nil {
		log.Error("unable to save game: ", err)
		return
	}
	app.printf("game saved\n")
}
