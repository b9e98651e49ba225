package markovrps

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr/sampling"

	"markovrps/game"
)

// uniformPolicy is the mixed strategy used before any history exists.
var uniformPolicy = []float32{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}

// Engine is one adaptive opponent. It owns its weight matrix
// exclusively: a single Engine serves a single match at a time, and
// concurrent matches must each construct their own (sharing one
// contaminates the learned weights across matches).
type Engine struct {
	cfg    Config
	matrix WeightMatrix
	rng    *rand.Rand
}

// NewEngine constructs an engine with a uniformly initialized matrix.
// The rng is the engine's only source of randomness, used solely for
// the first move of a match; pass a seeded source for reproducibility.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine config invalid")
	}
	if rng == nil {
		return nil, errors.New("engine requires a random source")
	}

	return &Engine{
		cfg:    cfg,
		matrix: NewWeightMatrix(),
		rng:    rng,
	}, nil
}

// Decide returns the computer's move given the previous round's state.
//
// With no history it samples uniformly. Otherwise it sums the row's
// weights into one bucket per move component, predicts the move with
// the largest bucket (ties go to the lowest move index), and returns
// the counter to that prediction. Decide never mutates the matrix.
func (e *Engine) Decide(prev State) (game.Move, error) {
	if prev == Empty {
		return game.Move(sampling.SampleOne(uniformPolicy, e.rng.Float32())), nil
	}

	i, err := prev.Index()
	if err != nil {
		return 0, errors.Wrap(err, "cannot decide")
	}

	row := e.matrix.Row(i)
	var buckets [game.NumMoves]float64
	for j, w := range row {
		buckets[j%game.NumMoves] += w
	}

	predicted := game.Rock
	for m := game.Paper; m < game.NumMoves; m++ {
		if buckets[m] > buckets[predicted] {
			predicted = m
		}
	}

	return predicted.Counter(), nil
}

// Reinforce records the observed transition prev -> observed in the
// matrix. With prev == Empty there is no row to update and the call is
// a no-op. The numeric guards of the update rule may also leave the
// row unchanged; that is a defined outcome, not an error.
func (e *Engine) Reinforce(prev, observed State) error {
	if prev == Empty {
		return nil
	}

	i, err := prev.Index()
	if err != nil {
		return errors.Wrap(err, "cannot reinforce")
	}
	j, err := observed.Index()
	if err != nil {
		return errors.Wrap(err, "cannot reinforce")
	}

	e.matrix.reinforce(i, j, e.cfg)
	return nil
}

// Matrix exposes the accumulated weights for inspection and logging.
func (e *Engine) Matrix() *WeightMatrix {
	return &e.matrix
}
