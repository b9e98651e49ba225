package markovrps

import (
	"github.com/pkg/errors"

	"markovrps/game"
)

// RoundResult describes one completed round.
type RoundResult struct {
	// Round is the 1-based round number.
	Round    int
	Player   game.Move
	Computer game.Move
	// Outcome is from the player's perspective.
	Outcome game.Outcome
	// Score is the running match score after this round
	// (positive favors the player).
	Score int
}

// Match runs a single match between the engine and one player. It owns
// the per-match history state that starts at Empty and is replaced
// after every round.
type Match struct {
	engine *Engine
	cfg    MatchConfig

	state State
	score int
	round int
}

// NewMatch wraps a fresh engine in the bookkeeping of a single match.
func NewMatch(engine *Engine, cfg MatchConfig) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "match config invalid")
	}
	return &Match{
		engine: engine,
		cfg:    cfg,
		state:  Empty,
	}, nil
}

// PlayRound plays one full round against the given (already validated)
// player move: the engine decides from the previous state, the round is
// scored, and the observed transition is reinforced before the history
// advances.
func (m *Match) PlayRound(player game.Move) (RoundResult, error) {
	if err := player.Validate(); err != nil {
		return RoundResult{}, err
	}
	if m.Done() {
		return RoundResult{}, errors.New("match is already over")
	}

	computer, err := m.engine.Decide(m.state)
	if err != nil {
		return RoundResult{}, err
	}

	outcome := game.Evaluate(player, computer)
	next, err := EncodeState(player, outcome)
	if err != nil {
		return RoundResult{}, err
	}
	if err := m.engine.Reinforce(m.state, next); err != nil {
		return RoundResult{}, err
	}

	m.state = next
	m.score += outcome.Score()
	m.round++

	return RoundResult{
		Round:    m.round,
		Player:   player,
		Computer: computer,
		Outcome:  outcome,
		Score:    m.score,
	}, nil
}

// Done reports whether the match has ended, either by exhausting the
// round cap or by one side reaching the score limit.
func (m *Match) Done() bool {
	if m.round >= m.cfg.MaxRounds {
		return true
	}
	return m.score >= m.cfg.ScoreLimit || m.score <= -m.cfg.ScoreLimit
}

// Round returns the number of completed rounds.
func (m *Match) Round() int {
	return m.round
}

// Score returns the running score, positive in the player's favor.
func (m *Match) Score() int {
	return m.score
}

// State returns the current history state.
func (m *Match) State() State {
	return m.state
}

// Verdict returns the final match result from the player's perspective.
func (m *Match) Verdict() game.Outcome {
	switch {
	case m.score > 0:
		return game.Won
	case m.score < 0:
		return game.Lost
	default:
		return game.Tied
	}
}
