package game

import (
	"github.com/pkg/errors"
)

// ErrInvalidOutcome is returned when an Outcome outside the
// win/loss/tie domain reaches the engine. It is a contract violation
// by the caller.
var ErrInvalidOutcome = errors.New("outcome outside the win/loss/tie domain")

// Outcome represents the result of a single round, always from the
// player's perspective.
type Outcome uint8

const (
	Won Outcome = iota
	Lost
	Tied
)

// The number of distinct Outcomes.
const NumOutcomes = 3

var outcomeStr = [...]string{
	"Won",
	"Lost",
	"Tied",
}

// String implements Stringer.
func (o Outcome) String() string {
	if o >= NumOutcomes {
		return "InvalidOutcome"
	}
	return outcomeStr[o]
}

// Validate returns an error if o is outside the three-value domain.
func (o Outcome) Validate() error {
	if o >= NumOutcomes {
		return errors.Wrapf(ErrInvalidOutcome, "got %d", o)
	}
	return nil
}

// Score returns the player's score delta for a round with this outcome.
func (o Outcome) Score() int {
	switch o {
	case Won:
		return 1
	case Lost:
		return -1
	default:
		return 0
	}
}

// Evaluate compares the two moves of a round and returns the outcome
// from the player's perspective. It is deterministic and pure; both
// moves must be valid.
func Evaluate(player, computer Move) Outcome {
	if player == computer {
		return Tied
	}
	if player.Beats() == computer {
		return Won
	}
	return Lost
}
