package game

import (
	"github.com/pkg/errors"
)

// ErrInvalidMove is returned when a Move outside the three-value
// domain reaches the engine. It is a contract violation by the caller.
var ErrInvalidMove = errors.New("move outside the rock/paper/scissors domain")

// Move represents one of the three throwable options.
type Move uint8

const (
	Rock Move = iota
	Paper
	Scissors
)

// The number of distinct Moves.
const NumMoves = 3

var moveStr = [...]string{
	"Rock",
	"Paper",
	"Scissors",
}

// String implements Stringer.
func (m Move) String() string {
	if m >= NumMoves {
		return "InvalidMove"
	}
	return moveStr[m]
}

// Validate returns an error if m is outside the three-value domain.
func (m Move) Validate() error {
	if m >= NumMoves {
		return errors.Wrapf(ErrInvalidMove, "got %d", m)
	}
	return nil
}

// Beats returns the Move that m defeats. The relation is the fixed
// 3-cycle: Rock beats Scissors, Paper beats Rock, Scissors beats Paper.
func (m Move) Beats() Move {
	return (m + 2) % NumMoves
}

// Counter returns the unique Move that defeats m.
func (m Move) Counter() Move {
	return (m + 1) % NumMoves
}
