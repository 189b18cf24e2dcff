// Command kenobot runs a single find-best-move call against a position
// given on the command line and prints the result — useful for scripted
// analysis and for inspecting persisted cumulative counters without a UCI
// client.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/engine"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/stats"
)

var (
	fen       = flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth     = flag.Int("depth", 6, "maximum search depth")
	movetime  = flag.Float64("movetime", 0, "fixed time budget in seconds (0 = depth-only search)")
	showStats = flag.Bool("stats", false, "print persisted cumulative counters and exit")
)

func main() {
	flag.Parse()

	if *showStats {
		printStats()
		return
	}

	cfg := config.Default()
	cfg.MaxDepth = *depth
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("could not create engine: %v", err)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}
	eng.RecordPosition(pos)

	var budget *engine.TimeBudget
	if *movetime > 0 {
		movetimeDur := time.Duration(*movetime * float64(time.Second))
		budget = eng.Time.Allocate(engine.TimeControl{Movetime: movetimeDur}, eng.GetPhase())
	}

	move, score := eng.FindBestMove(pos, budget)
	positions, cutoffs := eng.GetCounters()

	if move == board.NoMove {
		if pos.IsCheckmate() {
			fmt.Println("checkmate")
		} else {
			fmt.Println("stalemate")
		}
		return
	}

	fmt.Printf("bestmove %s (%s)\nscore %d\nphase %s\npositions %d\ncutoffs %d\n",
		move.String(), move.ToSAN(pos), score, eng.GetPhase(), positions, cutoffs)

	if store, err := stats.Open(); err == nil {
		defer store.Close()
		_ = store.Add(stats.Counters{PositionsEvaluated: positions, Cutoffs: cutoffs})
	}
}

func printStats() {
	store, err := stats.Open()
	if err != nil {
		log.Fatalf("could not open counters store: %v", err)
	}
	defer store.Close()

	c, err := store.Load()
	if err != nil {
		log.Fatalf("could not read counters: %v", err)
	}
	fmt.Printf("positions %d\ncutoffs %d\n", c.PositionsEvaluated, c.Cutoffs)
}
