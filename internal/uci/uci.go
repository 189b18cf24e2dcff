// Package uci implements the Universal Chess Interface transport loop: a
// line-oriented stdin/stdout protocol that drives the search core. It is an
// external collaborator of the core (spec.md §1), responsible for parsing
// the wire protocol and reporting results in UCI notation; all search
// semantics live in internal/engine.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/engine"
)

// UCI drives one engine instance through the UCI protocol over stdin/stdout.
type UCI struct {
	engine   *engine.Engine
	position *board.Position

	searching bool
	searchDone chan struct{}
}

// New creates a UCI handler wrapping eng, starting at the standard position.
func New(eng *engine.Engine) *UCI {
	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
	}
}

// Run reads commands from stdin until "quit" or EOF.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			return
		case "d":
			fmt.Println(u.position.String())
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Println("id name Kenobot")
	fmt.Println("id author Obi-Pawn-Kenobot")
	fmt.Println("option name MaxDepth type spin default 6 min 1 max 20")
	fmt.Println("uciok")
}

func (u *UCI) handleNewGame() {
	u.position = board.NewPosition()
	u.engine.ResetHistory()
	u.engine.ResetCumulativeCounters()
	u.engine.SetPhase(engine.Opening)
}

// handlePosition parses:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid FEN: %v\n", err)
			return
		}
		u.position = pos
		moveStart = fenEnd
	default:
		return
	}

	u.engine.ResetHistory()
	u.engine.RecordPosition(u.position)

	if moveStart < len(args) && args[moveStart] == "moves" {
		moveStart++
	} else if moveStart >= len(args) {
		return
	}

	for _, moveStr := range args[moveStart:] {
		m := u.parseMove(moveStr)
		if m == board.NoMove {
			fmt.Fprintf(os.Stderr, "info string invalid move: %s\n", moveStr)
			return
		}
		u.position.MakeMove(m)
		u.position.UpdateCheckers()
		u.engine.RecordPosition(u.position)
	}
}

// parseMove resolves a UCI long-algebraic move string against the current
// position's legal moves (the wire format alone is ambiguous about
// promotion-vs-normal without cross-checking legality).
func (u *UCI) parseMove(moveStr string) board.Move {
	if len(moveStr) < 4 {
		return board.NoMove
	}

	fromFile, fromRank := int(moveStr[0]-'a'), int(moveStr[1]-'1')
	toFile, toRank := int(moveStr[2]-'a'), int(moveStr[3]-'1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 ||
		toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return board.NoMove
	}
	from := board.NewSquare(fromFile, fromRank)
	to := board.NewSquare(toFile, toRank)

	var promo board.PieceType
	if len(moveStr) >= 5 {
		switch moveStr[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		}
	}

	legal := u.position.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promo != 0 {
			if m.IsPromotion() && m.Promotion() == promo {
				return m
			}
			continue
		}
		if !m.IsPromotion() {
			return m
		}
	}
	return board.NoMove
}

// goOptions holds the parsed arguments of a "go" command.
type goOptions struct {
	Depth    int
	MoveTime time.Duration
	WTime    time.Duration
	BTime    time.Duration
	WInc     time.Duration
	BInc     time.Duration
}

func (u *UCI) parseGoOptions(args []string) goOptions {
	var opts goOptions
	ms := func(s string) time.Duration {
		v, _ := strconv.Atoi(s)
		return time.Duration(v) * time.Millisecond
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				opts.Depth, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				opts.MoveTime = ms(args[i+1])
				i++
			}
		case "wtime":
			if i+1 < len(args) {
				opts.WTime = ms(args[i+1])
				i++
			}
		case "btime":
			if i+1 < len(args) {
				opts.BTime = ms(args[i+1])
				i++
			}
		case "winc":
			if i+1 < len(args) {
				opts.WInc = ms(args[i+1])
				i++
			}
		case "binc":
			if i+1 < len(args) {
				opts.BInc = ms(args[i+1])
				i++
			}
		}
	}
	return opts
}

// handleGo implements the UCI collaborator contract of spec.md §6: a
// "movetime" given very early in the game (fullmove ≤ 2) is divided by 40, rather
// than passed straight through, to avoid spending a fixed slice of time
// before the position has developed; wtime/btime/winc/binc are forwarded to
// the time manager's clock semantic.
func (u *UCI) handleGo(args []string) {
	opts := u.parseGoOptions(args)

	var tc engine.TimeControl
	switch {
	case opts.MoveTime > 0:
		movetime := opts.MoveTime
		if u.position.FullMoveNumber <= 2 {
			movetime /= 40
		}
		tc.Movetime = movetime
	case opts.WTime > 0 || opts.BTime > 0:
		if u.position.SideToMove == board.White {
			tc.Time, tc.Inc = opts.WTime, opts.WInc
		} else {
			tc.Time, tc.Inc = opts.BTime, opts.BInc
		}
	}

	budget := u.engine.Time.Allocate(tc, u.engine.GetPhase())
	maxDepth := u.engine.Config.MaxDepth
	if opts.Depth > 0 {
		maxDepth = opts.Depth
	}
	if budget.MaxDepth > 0 && budget.MaxDepth < maxDepth {
		maxDepth = budget.MaxDepth
	}
	cfg := u.engine.Config
	cfg.MaxDepth = maxDepth
	u.engine.Config = cfg

	pos := u.position.Copy()

	u.searching = true
	u.searchDone = make(chan struct{})
	go func() {
		defer close(u.searchDone)

		move, score := u.engine.FindBestMove(pos, budget)
		u.searching = false

		if move == board.NoMove {
			fmt.Println("bestmove 0000")
			return
		}
		fmt.Printf("info %s string %s\n", scoreToUCI(score), move.ToSAN(pos))
		fmt.Printf("bestmove %s\n", move.String())
	}()
}

// scoreToUCI renders an engine score as a UCI "info" score field, switching
// to "score mate N" near the checkmate magnitudes (spec.md §3's reserved
// ±(CHECKMATE_BASE + ...) range) rather than printing a seven-digit
// centipawn score.
func scoreToUCI(score int) string {
	const mateWindow = engine.CheckmateBase - 1000
	if score > mateWindow {
		plies := score - engine.CheckmateBase
		return fmt.Sprintf("score mate %d", (plies+1)/2)
	}
	if score < -mateWindow {
		plies := -score - engine.CheckmateBase
		return fmt.Sprintf("score mate %d", -((plies+1)/2))
	}
	return fmt.Sprintf("score cp %d", score)
}

func (u *UCI) handleStop() {
	if u.searching {
		u.engine.Stop()
		<-u.searchDone
	}
}
