package engine

import (
	"log"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
)

// Phase classifies a position's stage of the game (spec.md §3/§4.C).
type Phase int

const (
	Opening Phase = iota
	Midgame
	Endgame
)

func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Midgame:
		return "midgame"
	case Endgame:
		return "endgame"
	default:
		return "unknown"
	}
}

// endgameMaterialThreshold is the opponent non-pawn material (centipawns) at
// or below which the position is classified Endgame (spec.md §4.C rule 1).
const endgameMaterialThreshold = 1300

// openingFullmoveLimit is the fullmove number at or below which, absent an
// endgame classification, the position is Opening (spec.md §4.C rule 2).
const openingFullmoveLimit = 10

// PhaseTracker holds the process-wide-in-spirit "last phase" latch described
// in spec.md §4.C and §9: once Endgame is reached it never regresses. The
// original Python engine modeled this with a module-level global
// (game_phase.py's last_logged_phase); here it is an explicit owned value so
// that each game (and each test) can construct its own, independent tracker.
type PhaseTracker struct {
	last Phase
}

// NewPhaseTracker returns a tracker starting in Opening.
func NewPhaseTracker() *PhaseTracker {
	return &PhaseTracker{last: Opening}
}

// Get returns the latched phase without recomputing anything.
func (t *PhaseTracker) Get() Phase {
	return t.last
}

// Set forcibly overrides the latched phase (spec.md §6: set_phase, for tests
// and manual resets).
func (t *PhaseTracker) Set(p Phase) {
	t.last = p
}

// Calculate implements calculate_phase(board) -> Phase (spec.md §4.C). If the
// tracker has already latched onto Endgame, it returns Endgame immediately
// without re-evaluating the board (the endgame latch) — once the material
// driving an endgame classification is gone, under-promotion or similar can
// regenerate material, but the game should not re-enter midgame evaluation.
// Otherwise it recomputes and, if the phase changed, updates the latch and
// logs an informational event.
func (t *PhaseTracker) Calculate(pos *board.Position) Phase {
	if t.last == Endgame {
		return Endgame
	}

	phase := classify(pos)
	if phase != t.last {
		log.Printf("[engine] game phase changed: %s -> %s", t.last, phase)
		t.last = phase
	}
	return phase
}

// classify applies the three ordered rules of spec.md §4.C with no latch.
func classify(pos *board.Position) Phase {
	if opponentNonPawnMaterial(pos) <= endgameMaterialThreshold {
		return Endgame
	}
	if pos.FullMoveNumber <= openingFullmoveLimit {
		return Opening
	}
	return Midgame
}

// opponentNonPawnMaterial sums the non-pawn material (centipawns) of the
// side NOT to move, mirroring the source's count_opponents_material_no_pawns
// (utils/game_phase.py), which the spec.md design note folds into the core to
// avoid a circular import with the evaluator.
func opponentNonPawnMaterial(pos *board.Position) int {
	opponent := pos.SideToMove.Other()
	total := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		total += pos.Pieces[opponent][pt].PopCount() * PieceValue(pt)
	}
	return total
}
