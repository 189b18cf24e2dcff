// Command kenobot-uci runs the search core behind a UCI transport loop
// over stdin/stdout, the same entry-point shape the source project's UCI
// binary uses.
package main

import (
	"flag"
	"log"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/engine"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/uci"
)

var maxDepth = flag.Int("depth", 6, "default maximum search depth")

func main() {
	flag.Parse()

	cfg := config.Default()
	cfg.MaxDepth = *maxDepth
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("could not create engine: %v", err)
	}

	protocol := uci.New(eng)
	protocol.Run()
}
