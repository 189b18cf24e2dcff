package uci

import (
	"testing"
	"time"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/engine"
)

func newTestUCI(t *testing.T) *UCI {
	t.Helper()
	eng, err := engine.New(config.Default())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return New(eng)
}

func TestParseMoveResolvesNormalMove(t *testing.T) {
	u := newTestUCI(t)
	m := u.parseMove("e2e4")
	if m == board.NoMove {
		t.Fatalf("parseMove(e2e4) = NoMove, want the legal pawn push")
	}
	if m.From() != board.NewSquare(4, 1) || m.To() != board.NewSquare(4, 3) {
		t.Fatalf("parseMove(e2e4) from/to = %s/%s, want e2/e4", m.From(), m.To())
	}
}

func TestParseMoveRejectsIllegalMove(t *testing.T) {
	u := newTestUCI(t)
	m := u.parseMove("e2e5")
	if m != board.NoMove {
		t.Fatalf("parseMove(e2e5) = %s, want NoMove (not a legal pawn move)", m.String())
	}
}

func TestParseMoveResolvesPromotion(t *testing.T) {
	u := newTestUCI(t)
	pos, err := board.ParseFEN("8/4P1k1/8/8/8/8/7K/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	u.position = pos

	m := u.parseMove("e7e8q")
	if m == board.NoMove {
		t.Fatalf("parseMove(e7e8q) = NoMove, want the legal promotion")
	}
	if !m.IsPromotion() || m.Promotion() != board.Queen {
		t.Fatalf("parseMove(e7e8q) promotion = %v, want Queen promotion", m.Promotion())
	}
}

func TestParseMoveTooShortIsNoMove(t *testing.T) {
	u := newTestUCI(t)
	if m := u.parseMove("e2"); m != board.NoMove {
		t.Fatalf("parseMove(\"e2\") = %s, want NoMove", m.String())
	}
}

func TestParseGoOptionsMovetime(t *testing.T) {
	u := newTestUCI(t)
	opts := u.parseGoOptions([]string{"movetime", "2500"})
	if opts.MoveTime != 2500*time.Millisecond {
		t.Fatalf("parseGoOptions movetime = %v, want 2500ms", opts.MoveTime)
	}
}

func TestParseGoOptionsClock(t *testing.T) {
	u := newTestUCI(t)
	opts := u.parseGoOptions([]string{"wtime", "60000", "btime", "55000", "winc", "1000", "binc", "500"})
	if opts.WTime != 60*time.Second {
		t.Fatalf("parseGoOptions wtime = %v, want 60s", opts.WTime)
	}
	if opts.BTime != 55*time.Second {
		t.Fatalf("parseGoOptions btime = %v, want 55s", opts.BTime)
	}
	if opts.WInc != 1*time.Second || opts.BInc != 500*time.Millisecond {
		t.Fatalf("parseGoOptions increments = %v/%v, want 1s/500ms", opts.WInc, opts.BInc)
	}
}

func TestParseGoOptionsDepth(t *testing.T) {
	u := newTestUCI(t)
	opts := u.parseGoOptions([]string{"depth", "8"})
	if opts.Depth != 8 {
		t.Fatalf("parseGoOptions depth = %d, want 8", opts.Depth)
	}
}

func TestHandlePositionStartposWithMoves(t *testing.T) {
	u := newTestUCI(t)
	u.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"})

	if u.position.SideToMove != board.White {
		t.Fatalf("side to move after e2e4 e7e5 = %v, want White", u.position.SideToMove)
	}
	if u.position.PieceAt(board.NewSquare(4, 3)) == board.NoPiece {
		t.Fatalf("expected a White pawn on e4 after e2e4")
	}
}

func TestHandlePositionFEN(t *testing.T) {
	u := newTestUCI(t)
	fen := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	u.handlePosition([]string{"fen", "4k3/8/8/8/8/8/8/4K2R", "w", "K", "-", "0", "1"})
	if u.position.ToFEN() != fen {
		t.Fatalf("handlePosition(fen) = %q, want %q", u.position.ToFEN(), fen)
	}
}

func TestScoreToUCIReportsMateNear(t *testing.T) {
	s := scoreToUCI(engine.CheckmateBase + 5)
	if s != "score mate 3" {
		t.Fatalf("scoreToUCI(mate+5) = %q, want %q", s, "score mate 3")
	}
}

func TestScoreToUCIReportsCentipawnsAwayFromMate(t *testing.T) {
	s := scoreToUCI(250)
	if s != "score cp 250" {
		t.Fatalf("scoreToUCI(250) = %q, want %q", s, "score cp 250")
	}
}

func TestScoreToUCIReportsNegativeMate(t *testing.T) {
	s := scoreToUCI(-(engine.CheckmateBase + 3))
	if s != "score mate -2" {
		t.Fatalf("scoreToUCI(-mate-3) = %q, want %q", s, "score mate -2")
	}
}
