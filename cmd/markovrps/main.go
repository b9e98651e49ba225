// Interactive rock-paper-scissors match against the adaptive engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"

	"markovrps"
	"markovrps/game"
)

var stdin = bufio.NewReader(os.Stdin)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the opening move")
	configPath := flag.String("config", "", "Optional yaml config with learning rates and match rules")
	flag.Parse()

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

	rng := rand.New(rand.NewSource(*seed))
	engine, err := markovrps.NewEngine(cfg.Learning, rng)
	if err != nil {
		glog.Fatalf("Unable to construct engine: %v", err)
	}
	match, err := markovrps.NewMatch(engine, cfg.Match)
	if err != nil {
		glog.Fatalf("Unable to construct match: %v", err)
	}

	fmt.Println(`Welcome to classic "ROCK-PAPER-SCISSORS" game`)
	fmt.Printf("You are going to play %d rounds vs computer\n", cfg.Match.MaxRounds)
	fmt.Printf("Score is now set to 0. Win: +1, Loss: -1, Tie: 0\n")
	fmt.Printf("If score hits %d - you win, if %d - you lose\n",
		cfg.Match.ScoreLimit, -cfg.Match.ScoreLimit)

	playMatch(match)

	fmt.Println("-----GAME OVER!-----")
	switch match.Verdict() {
	case game.Won:
		fmt.Println("You won! Congratulations")
	case game.Lost:
		fmt.Println("You lost! Better luck next time!")
	default:
		fmt.Println("It's a tie!")
	}
}

func playMatch(match *markovrps.Match) {
	for !match.Done() {
		fmt.Printf("-----Round: %d Score: %d-----\n", match.Round(), match.Score())
		playerMove := prompt("Choose your move: 1-rock 2-paper 3-scissors: ")

		result, err := match.PlayRound(playerMove)
		if err != nil {
			glog.Fatalf("Round failed: %v", err)
		}

		glog.V(1).Infof("History state is now %v", match.State())
		fmt.Printf("You: %v vs Computer: %v\n",
			strings.ToLower(result.Player.String()),
			strings.ToLower(result.Computer.String()))
		switch result.Outcome {
		case game.Won:
			fmt.Println("You won!")
		case game.Lost:
			fmt.Println("You lost!")
		default:
			fmt.Println("It's a tie!")
		}
	}
}

func prompt(msg string) game.Move {
	for {
		fmt.Print(msg)
		result, err := stdin.ReadString('\n')
		if err != nil {
			panic(err)
		}

		switch strings.TrimSpace(result) {
		case "1":
			return game.Rock
		case "2":
			return game.Paper
		case "3":
			return game.Scissors
		default:
			fmt.Println("Wrong choice!")
		}
	}
}
