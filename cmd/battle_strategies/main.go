// Benchmark the adaptive engine against scripted player strategies and
// report win rates next to the fictitious-play equilibrium baseline.
package main

import (
	"flag"
	"math/rand"

	"github.com/golang/glog"

	"markovrps"
	"markovrps/game"
	"markovrps/matrixgame"
)

// A strategy produces the scripted player's next move, given the
// result of the previous round (nil on the first round of a match).
type strategy func(last *markovrps.RoundResult, rng *rand.Rand) game.Move

var strategies = map[string]strategy{
	"always_rock": func(last *markovrps.RoundResult, rng *rand.Rand) game.Move {
		return game.Rock
	},
	"uniform": func(last *markovrps.RoundResult, rng *rand.Rand) game.Move {
		return game.Move(rng.Intn(game.NumMoves))
	},
	"cycle": func(last *markovrps.RoundResult, rng *rand.Rand) game.Move {
		if last == nil {
			return game.Rock
		}
		return (last.Player + 1) % game.NumMoves
	},
	// Keep the move after a win, otherwise switch to the move that
	// would have beaten the computer's last throw.
	"win_stay_lose_shift": func(last *markovrps.RoundResult, rng *rand.Rand) game.Move {
		if last == nil {
			return game.Rock
		}
		if last.Outcome == game.Won {
			return last.Player
		}
		return last.Computer.Counter()
	},
}

func main() {
	opponent := flag.String("opponent", "always_rock", "Scripted player strategy: always_rock, uniform, cycle, win_stay_lose_shift")
	numMatches := flag.Int("num_matches", 10000, "Number of matches to play")
	seed := flag.Int64("seed", 1234, "Random seed")
	configPath := flag.String("config", "", "Optional yaml config with learning rates and match rules")
	flag.Parse()

	script, ok := strategies[*opponent]
	if !ok {
		glog.Fatalf("Unknown opponent strategy: %v", *opponent)
	}

	cfg := markovrps.FileConfig{
		Learning: markovrps.DefaultConfig(),
		Match:    markovrps.DefaultMatchConfig(),
	}
	if *configPath != "" {
		var err error
		cfg, err = markovrps.LoadConfig(*configPath)
		if err != nil {
			glog.Fatalf("Unable to load config: %v", err)
		}
	}

	p0, p1 := matrixgame.FictitiousPlay(matrixgame.WinRateMatrix(), 100000, 0.05)
	glog.Infof("Equilibrium baseline mix: player %v, opponent %v", p0, p1)

	glog.Infof("Playing %d matches vs %v", *numMatches, *opponent)
	rng := rand.New(rand.NewSource(*seed))
	var engineWins, playerWins, engineRounds, totalRounds int
	for i := 0; i < *numMatches; i++ {
		verdict, rounds, lost := playMatch(script, cfg, rng)
		switch verdict {
		case game.Lost:
			engineWins++
		case game.Won:
			playerWins++
		}
		engineRounds += lost
		totalRounds += rounds
	}

	glog.Infof("Engine won %d/%d matches (%.1f%%), scripted player won %d",
		engineWins, *numMatches, 100*float64(engineWins)/float64(*numMatches), playerWins)
	glog.Infof("Engine won %d/%d rounds (%.1f%%); an equilibrium player would win 33.3%%",
		engineRounds, totalRounds, 100*float64(engineRounds)/float64(totalRounds))
}

// playMatch runs one full match of the scripted player against a fresh
// engine. It returns the verdict from the player's perspective, the
// number of rounds played, and how many of them the engine won.
func playMatch(script strategy, cfg markovrps.FileConfig, rng *rand.Rand) (game.Outcome, int, int) {
	engine, err := markovrps.NewEngine(cfg.Learning, rng)
	if err != nil {
		glog.Fatalf("Unable to construct engine: %v", err)
	}
	match, err := markovrps.NewMatch(engine, cfg.Match)
	if err != nil {
		glog.Fatalf("Unable to construct match: %v", err)
	}

	var last *markovrps.RoundResult
	var engineRoundWins int
	for !match.Done() {
		result, err := match.PlayRound(script(last, rng))
		if err != nil {
			glog.Fatalf("Round failed: %v", err)
		}
		if result.Outcome == game.Lost {
			engineRoundWins++
		}
		last = &result
	}

	glog.V(2).Infof("Match over after %d rounds, score %d", match.Round(), match.Score())
	return match.Verdict(), match.Round(), engineRoundWins
}
