// Package markovrps implements an adaptive rock-paper-scissors opponent.
// The engine predicts the player's next move from a depth-1 Markov model
// over the nine (outcome, move) states of the previous round, and throws
// the counter to the predicted move.
package markovrps

import (
	"github.com/pkg/errors"

	"markovrps/game"
)

// State encodes what the player threw in the previous round and what
// happened to them, or Empty before the first round. Only the nine
// concrete states are valid matrix coordinates; Empty has no row.
type State uint8

const (
	Empty State = iota
	WonWithRock
	WonWithPaper
	WonWithScissors
	LostWithRock
	LostWithPaper
	LostWithScissors
	TiedWithRock
	TiedWithPaper
	TiedWithScissors
)

// The number of concrete States, i.e. the dimension of the WeightMatrix.
const NumStates = 9

var stateStr = [...]string{
	"Empty",
	"WonWithRock",
	"WonWithPaper",
	"WonWithScissors",
	"LostWithRock",
	"LostWithPaper",
	"LostWithScissors",
	"TiedWithRock",
	"TiedWithPaper",
	"TiedWithScissors",
}

// String implements Stringer.
func (s State) String() string {
	if int(s) >= len(stateStr) {
		return "InvalidState"
	}
	return stateStr[s]
}

// Index returns the matrix coordinate of s in the 0..8 range.
// Empty and out-of-range states are contract violations and return
// ErrInvalidState.
func (s State) Index() (int, error) {
	if s == Empty || s > TiedWithScissors {
		return 0, errors.Wrapf(ErrInvalidState, "state %v", s)
	}
	return int(s) - 1, nil
}

// Move returns the move component of a concrete state.
// The result is unspecified for Empty.
func (s State) Move() game.Move {
	return game.Move((s - 1) % game.NumMoves)
}

// Outcome returns the outcome component of a concrete state.
// The result is unspecified for Empty.
func (s State) Outcome() game.Outcome {
	return game.Outcome((s - 1) / game.NumMoves)
}

// EncodeState combines the player's move and the round outcome into the
// concrete State that becomes the next round's history. It is total and
// bijective over the 3x3 domain and never returns Empty.
func EncodeState(m game.Move, o game.Outcome) (State, error) {
	if err := m.Validate(); err != nil {
		return Empty, err
	}
	if err := o.Validate(); err != nil {
		return Empty, err
	}
	return State(uint8(o)*game.NumMoves+uint8(m)) + 1, nil
}
