package engine

import (
	"sync/atomic"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
)

// MaxPly is a ceiling on the recursion depth of negamax+quiescence combined
// (spec.md §9: "worst-case max_depth + q_depth (≈30); ordinary call stack
// suffices"). negamax and quiescence do not check it; recursion depth is
// bounded only by the configured max depth and q_depth.
const MaxPly = 128

// Searcher owns the mutable state of one FindBestMove call: the node and
// cutoff counters, the deadline, and the in-search repetition path. It is
// re-used across iterative-deepening depths within a single call (see
// driver.go) but reset between calls.
//
// stopFlag is the one piece of state this single-threaded core keeps for
// cancellation beyond the deadline itself: a UCI "stop" command (or any
// other host-driven cancellation) needs to interrupt a search faster than
// waiting for the next per-move deadline check would allow. This is
// cooperative cancellation: the search itself runs on one goroutine, and
// Stop may be called from another (the UCI loop does this), which is why
// the flag is atomic.
type Searcher struct {
	history *GameHistory
	path    []uint64

	counters Counters
	deadline *TimeBudget
	stopFlag atomic.Bool
}

// NewSearcher creates a searcher with no game history attached; SetHistory
// lets a caller provide the root-level repetition log for a real game.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// SetHistory attaches the root-level game history used for threefold-claim
// detection during search (spec.md §4.A: "draw-claim queries"). Nil detaches
// it, in which case only repetitions introduced during the search itself are
// detected.
func (s *Searcher) SetHistory(h *GameHistory) {
	s.history = h
}

// Stop requests that the current search return as soon as it next checks
// for cancellation. A search started afterwards is not affected: reset
// clears the flag at the start of every call.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// reset clears per-move counters, the search path, and installs the
// deadline for this call (spec.md §4.I: "reset on driver entry for
// per-move").
func (s *Searcher) reset(budget *TimeBudget) {
	s.counters = Counters{}
	s.path = s.path[:0]
	s.deadline = budget
	s.stopFlag.Store(false)
}

// Counters returns the counters accumulated by the most recent call.
func (s *Searcher) Counters() Counters {
	return s.counters
}

// canClaimDraw reports whether the position at hash (just reached by a
// move made during this search) is a threefold repetition against the
// combined root history and the moves explored so far on this path. The
// 50-move auto-draw is not tested here: internal/board already folds it
// into Position.IsDraw, which negamax/quiescence check as a terminal
// outcome (spec.md §7 resolves the draw-score split along exactly this
// line: 0 for the board's own terminal detection, -1 for a claim the core
// must detect itself).
func (s *Searcher) canClaimDraw(hash uint64) bool {
	count := 0
	if s.history != nil {
		for _, h := range s.history.hashes {
			if h == hash {
				count++
				if count >= 2 {
					return true
				}
			}
		}
	}
	for _, h := range s.path {
		if h == hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// pushPath/popPath bracket a made move the same way Position.MakeMove /
// UnmakeMove do, so the path always reflects exactly the positions still
// open on the call stack.
func (s *Searcher) pushPath(hash uint64) {
	s.path = append(s.path, hash)
}

func (s *Searcher) popPath() {
	s.path = s.path[:len(s.path)-1]
}

// expired reports whether the deadline has passed or a stop was requested.
func (s *Searcher) expired() bool {
	return s.stopFlag.Load() || (s.deadline != nil && s.deadline.Expired())
}

// negamax implements negamax(board, depth, alpha, beta) -> Score
// (spec.md §4.F), evaluated from the perspective of the side to move at
// this node. phase and qDepth are threaded down from the driver rather than
// recomputed, since phase is a single process-wide-in-spirit latch and
// qDepth is fixed for the whole iterative-deepening call.
func (s *Searcher) negamax(pos *board.Position, depth int, alpha, beta int, phase *PhaseTracker, qDepth int) int {
	if pos.IsCheckmate() {
		return -(CheckmateBase + qDepth + depth)
	}
	if pos.IsDraw() {
		return 0
	}
	if s.canClaimDraw(pos.Hash) {
		return DrawScore
	}
	if depth == 0 {
		return s.quiescence(pos, qDepth, alpha, beta, phase)
	}

	moves := OrderMoves(pos, false)

	best := -Infinity
	searchedAny := false
	for _, m := range moves {
		if searchedAny && s.expired() {
			break
		}

		undo := pos.MakeMove(m)
		s.counters.incPosition()
		hash := pos.Hash
		s.pushPath(hash)

		score := -s.negamax(pos, depth-1, -beta, -alpha, phase, qDepth)

		s.popPath()
		pos.UnmakeMove(m, undo)
		searchedAny = true

		// Mate short-circuit (spec.md §4.F): a still-unpadded ±CHECKMATE_BASE
		// bubbling up (rather than one already padded at the point it was
		// discovered) is re-signed with this node's own q_depth+depth and
		// returned immediately — this node's best is already determined.
		switch score {
		case CheckmateBase:
			return CheckmateBase + qDepth + depth
		case -CheckmateBase:
			return -(CheckmateBase + qDepth + depth)
		}

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.counters.incCutoff()
			break
		}
	}

	return best
}
