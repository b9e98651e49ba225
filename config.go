package markovrps

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the two learning-rate constants of the reinforcement
// rule. DecreaseValue is the per-update penalty applied to every cell
// of the touched row (the forgetting rate); IncreaseValue is the bonus
// applied to the observed-transition cell (the reinforcement strength).
type Config struct {
	DecreaseValue float64 `yaml:"decrease_value"`
	IncreaseValue float64 `yaml:"increase_value"`
}

// DefaultConfig returns the stock learning rates: a single
// reinforcement event an order of magnitude stronger than the decay
// applied to the other cells.
func DefaultConfig() Config {
	return Config{
		DecreaseValue: 0.01,
		IncreaseValue: 0.1,
	}
}

// UpperLimit is the largest cell value at which a row may still be
// reinforced; above it the row freezes.
func (c Config) UpperLimit() float64 {
	return 1 - c.IncreaseValue + c.DecreaseValue
}

// BottomLimit is the smallest cell value at which a row may still be
// reinforced; below it the row freezes.
func (c Config) BottomLimit() float64 {
	return c.DecreaseValue
}

func (c Config) Validate() error {
	if c.DecreaseValue <= 0 {
		return errors.Errorf("decrease_value must be positive, got %v", c.DecreaseValue)
	}
	if c.IncreaseValue <= c.DecreaseValue {
		return errors.Errorf("increase_value (%v) must exceed decrease_value (%v)",
			c.IncreaseValue, c.DecreaseValue)
	}
	if c.UpperLimit() <= c.BottomLimit() {
		return errors.Errorf("degenerate limits: upper %v <= bottom %v",
			c.UpperLimit(), c.BottomLimit())
	}
	return nil
}

// MatchConfig holds the match termination rules.
type MatchConfig struct {
	// MaxRounds caps the match length.
	MaxRounds int `yaml:"max_rounds"`
	// ScoreLimit ends the match early once either side is ahead by
	// this many points.
	ScoreLimit int `yaml:"score_limit"`
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MaxRounds:  30,
		ScoreLimit: 10,
	}
}

func (c MatchConfig) Validate() error {
	if c.MaxRounds <= 0 {
		return errors.Errorf("max_rounds must be positive, got %d", c.MaxRounds)
	}
	if c.ScoreLimit <= 0 {
		return errors.Errorf("score_limit must be positive, got %d", c.ScoreLimit)
	}
	return nil
}

// FileConfig is the on-disk configuration accepted by the command-line
// front ends.
type FileConfig struct {
	Learning Config      `yaml:"learning"`
	Match    MatchConfig `yaml:"match"`
}

// LoadConfig reads a yaml configuration file. Missing sections fall
// back to the defaults.
func LoadConfig(path string) (FileConfig, error) {
	cfg := FileConfig{
		Learning: DefaultConfig(),
		Match:    DefaultMatchConfig(),
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to read config %v", path)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config %v", path)
	}

	if err := cfg.Learning.Validate(); err != nil {
		return cfg, errors.Wrap(err, "learning config invalid")
	}
	if err := cfg.Match.Validate(); err != nil {
		return cfg, errors.Wrap(err, "match config invalid")
	}
	return cfg, nil
}
