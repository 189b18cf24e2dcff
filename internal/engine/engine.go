// Package engine implements the move-search core: negamax with alpha-beta
// pruning, iterative deepening, quiescence search, move ordering, a
// phase-aware static evaluator, and a time-budget allocator. It treats
// internal/board as an external rules engine: a borrowed Position that the
// core never leaves mutated across a call (make/unmake strictly bracket
// every recursive step).
package engine

import (
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/board"
	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
)

// Score sentinels, in centipawns. CheckmateBase is large enough that no
// ordinary material/positional score can be confused with a mate score.
const (
	CheckmateBase = 1_000_000
	Infinity      = CheckmateBase * 2
	DrawScore     = -1 // rule-claim draws discovered inside the search; see §7
)

// Piece values, centipawns (spec.md §3).
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 320
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 0
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// PieceValue returns the material value of a piece type in centipawns.
func PieceValue(pt board.PieceType) int {
	if pt >= board.NoPieceType {
		return 0
	}
	return pieceValues[pt]
}

// Config is re-exported so callers only need to import this one package.
type Config = config.Config

// Engine bundles a Searcher with an owned PhaseTracker and cumulative
// Counters, so that each game a caller plays owns its own state rather than
// sharing process-wide globals (spec.md §5: "each game must own its own
// counters and phase tracker").
type Engine struct {
	Config Config
	Phase  *PhaseTracker
	Time   *TimeManager

	cumulative Counters
	searcher   *Searcher
	history    *GameHistory
}

// New creates an Engine with the given configuration. It returns an error if
// cfg is invalid (spec.md §7, InvalidConfiguration).
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	history := NewGameHistory()
	searcher := NewSearcher()
	searcher.SetHistory(history)
	return &Engine{
		Config:   cfg,
		Phase:    NewPhaseTracker(),
		Time:     NewTimeManager(),
		searcher: searcher,
		history:  history,
	}, nil
}

// RecordPosition appends a real (not hypothetical) position reached during
// play to the game history the search consults for threefold-claim
// detection. The board package exposes no move-history of its own (the gap
// the Board Interface contract assumes is closed elsewhere); the caller —
// the UCI loop or any other driver of a real game — is responsible for
// calling this once per ply actually played.
func (e *Engine) RecordPosition(pos *board.Position) {
	e.history.Push(pos.Hash)
}

// ResetHistory clears the recorded game history, for a new game.
func (e *Engine) ResetHistory() {
	e.history = NewGameHistory()
	e.searcher.SetHistory(e.history)
}

// Evaluate is the deterministic pure evaluation entry point (spec.md §6).
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos, e.Phase)
}

// FindBestMove is the engine's only blocking entry point (spec.md §6). It
// runs iterative deepening up to Config.MaxDepth or until budget elapses.
func (e *Engine) FindBestMove(pos *board.Position, budget *TimeBudget) (board.Move, int) {
	d := NewDriver(e.searcher, e.Config, e.Phase)
	move, score := d.FindBestMove(pos, budget)
	e.cumulative.Add(d.PerMove())
	return move, score
}

// Stop requests that an in-flight FindBestMove call return as soon as it
// next checks for cancellation (spec.md §5: cancellation is advisory, with
// one-move granularity).
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// ResetCounters clears the per-move counters of the last search. Cumulative
// totals are untouched; see ResetCumulativeCounters.
func (e *Engine) ResetCounters() {
	e.searcher.counters = Counters{}
}

// GetCounters returns the cumulative (positions, cutoffs) totals aggregated
// across every FindBestMove call since the engine (or the last
// ResetCumulativeCounters) was created.
func (e *Engine) GetCounters() (positions, cutoffs uint64) {
	return e.cumulative.PositionsEvaluated, e.cumulative.Cutoffs
}

// ResetCumulativeCounters zeroes the cumulative totals, for a new game.
func (e *Engine) ResetCumulativeCounters() {
	e.cumulative = Counters{}
}

// SetPhase overrides the tracked game phase, for tests and manual resets
// (spec.md §6).
func (e *Engine) SetPhase(p Phase) {
	e.Phase.Set(p)
}

// GetPhase returns the tracked game phase.
func (e *Engine) GetPhase() Phase {
	return e.Phase.Get()
}
