package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-tui/internal/mines"
)

type commandKind uint8

const (
	commandReveal commandKind = iota + 1
	commandFlag
	commandHelp
	commandStats
	commandQuit
)

type command struct {
	kind commandKind
	row  int
	col  int
}

var errUnknownCommand = errors.New("unknown command, H for help")

// parseCommand reads one input line against a board of the given params.
// Grid targets pair a column letter with a 1-based row number: "R A1"
// reveals the top left cell. The space is optional and case does not
// matter anywhere.
func parseCommand(line string, params mines.GameParams) (command, error) {
	input := strings.ToUpper(strings.TrimSpace(line))
	switch input {
	case "":
		return command{}, errUnknownCommand
	case "H":
		return command{kind: commandHelp}, nil
	case "S":
		return command{kind: commandStats}, nil
	case "Q":
		return command{kind: commandQuit}, nil
	}

	var kind commandKind
	switch input[0] {
	case 'R':
		kind = commandReveal
	case 'F':
		kind = commandFlag
	default:
		return command{}, errUnknownCommand
	}

	target := strings.TrimSpace(input[1:])
	if len(target) < 2 {
		return command{}, errUnknownCommand
	}
	col := int(target[0]) - 'A'
	if col < 0 || col >= params.Width {
		return command{}, fmt.Errorf("column %c is off this board", target[0])
	}
	row, err := strconv.Atoi(target[1:])
	if err != nil {
		return command{}, errUnknownCommand
	}
	if row < 1 || row > params.Height {
		return command{}, fmt.Errorf("row %d is off this board", row)
	}
	return command{kind: kind, row: row - 1, col: col}, nil
}
