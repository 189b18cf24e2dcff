package engine

import (
	"testing"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
)

func TestPhaseTrackerStartsOpening(t *testing.T) {
	tr := NewPhaseTracker()
	if got := tr.Get(); got != Opening {
		t.Fatalf("NewPhaseTracker().Get() = %v, want Opening", got)
	}
}

func TestClassifyOpeningAtStartPosition(t *testing.T) {
	pos := board.NewPosition()
	if got := classify(pos); got != Opening {
		t.Fatalf("classify(start) = %v, want Opening", got)
	}
}

func TestClassifyEndgameByLowMaterial(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 40")
	if got := classify(pos); got != Endgame {
		t.Fatalf("classify(king+rook vs king) = %v, want Endgame", got)
	}
}

func TestClassifyMidgameAfterOpeningLimit(t *testing.T) {
	// Plenty of non-pawn material on both sides, past the opening fullmove
	// limit.
	pos := mustFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 8 15")
	if got := classify(pos); got != Midgame {
		t.Fatalf("classify(midgame-ish, fullmove 15) = %v, want Midgame", got)
	}
}

func TestPhaseTrackerLatchesOnEndgame(t *testing.T) {
	tr := NewPhaseTracker()
	endgamePos := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 40")
	if got := tr.Calculate(endgamePos); got != Endgame {
		t.Fatalf("Calculate(endgame position) = %v, want Endgame", got)
	}

	// Even once material is restored (hypothetically via the start position
	// below), the latch must not regress.
	openingPos := board.NewPosition()
	if got := tr.Calculate(openingPos); got != Endgame {
		t.Fatalf("Calculate after latch = %v, want Endgame (latch must not regress)", got)
	}
}

func TestPhaseTrackerSetOverridesLatch(t *testing.T) {
	tr := NewPhaseTracker()
	tr.Set(Endgame)
	if got := tr.Get(); got != Endgame {
		t.Fatalf("Get() after Set(Endgame) = %v, want Endgame", got)
	}
	tr.Set(Opening)
	if got := tr.Get(); got != Opening {
		t.Fatalf("Get() after Set(Opening) = %v, want Opening", got)
	}
}

func TestPhaseStringNames(t *testing.T) {
	cases := map[Phase]string{
		Opening: "opening",
		Midgame: "midgame",
		Endgame: "endgame",
		Phase(99): "unknown",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
