package engine

import "github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"

// quiescence implements qsearch(board, q_depth, alpha, beta) -> Score
// (spec.md §4.E), a tactical-only extension past the nominal horizon that
// only explores captures, checks, and promotions (via OrderMoves'
// quiescence bucketing) to avoid mistaking a mid-exchange position for a
// quiet one.
func (s *Searcher) quiescence(pos *board.Position, qDepth int, alpha, beta int, phase *PhaseTracker) int {
	// No incPosition here: every node this function is entered for was
	// already counted by its caller right after the move that reached it —
	// negamax's own per-child loop when depth reaches 0, or this function's
	// own loop below for its recursive children. Counting again here would
	// double-count the exact same node.
	standPat := Evaluate(pos, phase)

	if pos.IsCheckmate() || pos.IsDraw() || qDepth == 0 {
		if standPat == CheckmateBase {
			return CheckmateBase + qDepth
		}
		if standPat == -CheckmateBase {
			return -(CheckmateBase + qDepth)
		}
		return standPat
	}

	if s.canClaimDraw(pos.Hash) {
		return DrawScore
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := OrderMoves(pos, true)

	for _, m := range moves {
		undo := pos.MakeMove(m)
		s.counters.incPosition()
		s.pushPath(pos.Hash)

		score := -s.quiescence(pos, qDepth-1, -beta, -alpha, phase)

		s.popPath()
		pos.UnmakeMove(m, undo)

		// Mate short-circuit (spec.md §4.E, analogous to negamax's §4.F
		// clause): a still-unpadded ±CHECKMATE_BASE is re-signed and
		// returned immediately, bypassing the beta/alpha comparisons below
		// — clipping it to beta would understate the mate by however much
		// the window happens to be tighter than the true mate magnitude.
		switch score {
		case CheckmateBase:
			return CheckmateBase + qDepth
		case -CheckmateBase:
			return -(CheckmateBase + qDepth)
		}

		if score >= beta {
			s.counters.incCutoff()
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
