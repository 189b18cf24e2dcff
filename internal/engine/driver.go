package engine

import (
	"sort"
	"time"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
)

// bailoutElapsedFactor and bailoutMoveFraction are the predictive bail-out
// constants of spec.md §4.G/§9 (Open Question 4): tuned constants carried
// over with no further derivation.
const (
	bailoutElapsedFactor = 1.3
	bailoutMoveFraction  = 0.7
)

// Driver implements find_best_move(board, max_depth, time_budget?) ->
// (Move, Score) (spec.md §4.G): iterative deepening over a shared Searcher,
// reordering the root move list between depths by the scores the previous
// depth observed.
type Driver struct {
	searcher *Searcher
	cfg      Config
	phase    *PhaseTracker

	perMove Counters
}

// NewDriver builds a driver around a shared Searcher, configuration, and
// phase tracker. The Searcher is reset on every FindBestMove call; it is
// shared (not recreated) so that its attached GameHistory survives across
// calls within the same game.
func NewDriver(s *Searcher, cfg Config, phase *PhaseTracker) *Driver {
	return &Driver{searcher: s, cfg: cfg, phase: phase}
}

// PerMove returns the counters accumulated by the most recent FindBestMove
// call (spec.md §4.I: per-move scope, reset on driver entry).
func (d *Driver) PerMove() Counters {
	return d.perMove
}

// FindBestMove runs iterative deepening from depth 1 up to the effective
// max depth (spec.md §4.G).
func (d *Driver) FindBestMove(pos *board.Position, budget *TimeBudget) (board.Move, int) {
	legal := pos.GenerateLegalMoves()
	if legal.Len() == 0 {
		return board.NoMove, 0
	}

	maxDepth := d.cfg.MaxDepth
	qPolicy := d.cfg.QDepth
	if budget != nil && budget.MaxDepth > 0 {
		maxDepth = budget.MaxDepth
		qPolicy = budget.QDepth
	}

	d.phase.Calculate(pos)
	d.searcher.reset(budget)

	ordered := OrderMoves(pos, false)

	var bestMove board.Move
	bestScore := -Infinity
	haveBest := false

	searchStart := time.Now()

	for depth := 1; depth <= maxDepth; depth++ {
		// Only a depth after the first may bail before searching any of its
		// moves: depth 1 must always run its first move to completion, the
		// same "let the in-flight child finish" guarantee the inner loop
		// gives its own first move via its searched > 0 guard below. Without
		// this, an already-expired budget would fall through to the
		// ordered[0] fallback below having scored nothing at any depth.
		if depth > 1 && d.searcher.expired() {
			break
		}

		qDepth := (config.Config{QDepth: qPolicy}).QDepthFor(depth - 1)

		scores := make(map[board.Move]int, len(ordered))
		depthBestMove := board.NoMove
		depthBestScore := -Infinity
		alpha, beta := -Infinity, Infinity
		searched := 0
		bail := false

		for _, m := range ordered {
			if searched > 0 {
				if d.searcher.expired() {
					break
				}
				if budget != nil {
					elapsed := time.Since(searchStart).Seconds()
					if elapsed*bailoutElapsedFactor >= budget.Seconds &&
						float64(searched) < bailoutMoveFraction*float64(len(ordered)) {
						bail = true
						break
					}
				}
			}

			undo := pos.MakeMove(m)
			d.searcher.counters.incPosition()

			// Early forced-mate (spec.md §4.G step c): a root move that mates
			// directly is reported without waiting for the rest of this
			// depth's moves or any deeper iteration.
			if pos.IsCheckmate() {
				pos.UnmakeMove(m, undo)
				d.perMove = d.searcher.Counters()
				return m, CheckmateBase + qDepth + maxDepth
			}

			d.searcher.pushPath(pos.Hash)
			score := -d.searcher.negamax(pos, depth-1, -beta, -alpha, d.phase, qDepth)
			d.searcher.popPath()

			pos.UnmakeMove(m, undo)

			scores[m] = score
			searched++

			if score > depthBestScore {
				depthBestScore = score
				depthBestMove = m
			}
			if score > alpha {
				alpha = score
			}
		}

		if searched == 0 {
			break
		}

		if !haveBest || depthBestScore > bestScore {
			bestScore = depthBestScore
			bestMove = depthBestMove
			haveBest = true
		}

		// Reorder for the next depth: moves this depth actually searched
		// sort by observed score, best first; any unsearched tail (from a
		// bail-out) keeps its prior relative order (spec.md §4.G step f).
		const unsearchedSentinel = -Infinity - 1
		sort.SliceStable(ordered, func(i, j int) bool {
			si, ok := scores[ordered[i]]
			if !ok {
				si = unsearchedSentinel
			}
			sj, ok := scores[ordered[j]]
			if !ok {
				sj = unsearchedSentinel
			}
			return si > sj
		})

		if bail {
			break
		}
	}

	d.perMove = d.searcher.Counters()

	if !haveBest {
		return ordered[0], 0
	}
	return bestMove, bestScore
}
