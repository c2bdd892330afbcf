// Package commands implements the text protocol used to play a game line by
// line:
//
//	g             // do nothing, just show the board
//	o row col     // open the square at row:col
//	c row col     // chord the square at row:col
//	f row col     // flag or unflag the square at row:col
//	n settings    // start over, settings are "w:h:m" or a query string
//	q             // quit
//
// Several commands can share a line when separated by ';'.
package commands

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("invalid argument")
	ErrOutOfBounds    = errors.New("invalid square coordinates")
	ErrQuit           = errors.New("quit")
)

// Engine is the part of [*mines.Engine] that commands drive.
type Engine interface {
	Reset(width, height, mines int) error
	Reveal(at mines.Coordinates)
	ToggleFlag(at mines.Coordinates)
	Tile(at mines.Coordinates) (mines.Tile, bool)
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"c": 2,
	"f": 2,
	"n": 1,
	"q": 0,
}

// Error reports which command of a line failed.
type Error struct {
	Index   int
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("command %d (%q): %v", e.Index, e.Command, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExecuteLine runs the ';'-separated commands of line in order and stops at
// the first one that fails. Empty commands are skipped.
func ExecuteLine(e Engine, line string) error {
	for i, c := range byPiece(line, ";") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if err := Execute(e, c); err != nil {
			return &Error{Index: i, Command: c, Err: err}
		}
	}
	return nil
}

// Execute runs a single command.
func Execute(e Engine, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return ErrUnknownCommand
	}
	if nargs != len(parts)-1 {
		return ErrNargs
	}

	switch parts[0] {
	case "g":
		return nil
	case "q":
		return ErrQuit
	case "n":
		s, err := ParseSettings(parts[1])
		if err != nil {
			return err
		}
		return e.Reset(s.Unpack())
	}

	at, err := parseCoordinates(parts[1:])
	if err != nil {
		return err
	}
	tile, ok := e.Tile(at)
	if !ok {
		return ErrOutOfBounds
	}

	switch parts[0] {
	case "o":
		e.Reveal(at)
	case "f":
		e.ToggleFlag(at)
	case "c":
		if tile.State == mines.Visible {
			e.Reveal(at)
		}
	}
	return nil
}

func parseCoordinates(twoStrings []string) (at mines.Coordinates, err error) {
	if at.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		return at, fmt.Errorf("%w: first argument must be an int", ErrBadArgument)
	}
	if at.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		return at, fmt.Errorf("%w: second argument must be an int", ErrBadArgument)
	}
	return at, nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
