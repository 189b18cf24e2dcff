package engine

// GameHistory tracks the Zobrist hashes of positions reached earlier in the
// game so the search can answer "can the mover claim threefold repetition"
// — a predicate spec.md §3/§4.A lists as part of the Board Interface
// contract, but which internal/board's Position cannot answer on its own: it
// does not retain a move-history stack the way the original Python engine's
// python-chess board did.
//
// This mirrors how the teacher engine's (now-removed) Lazy-SMP workers
// tracked repetition with a pre-allocated hash buffer threaded from the root;
// here it is a single, small, explicitly-owned append-only slice rather than per-worker
// state, since the core is single-threaded (spec.md §5).
type GameHistory struct {
	hashes []uint64
}

// NewGameHistory creates an empty history.
func NewGameHistory() *GameHistory {
	return &GameHistory{}
}

// Push records a position hash reached during play (root-level, not search
// exploration — search make/unmake must stay balanced and never mutate
// GameHistory; see search.go/quiescence.go for the bracketing pattern used
// during tree exploration instead).
func (h *GameHistory) Push(hash uint64) {
	h.hashes = append(h.hashes, hash)
}

// Len reports how many positions are recorded.
func (h *GameHistory) Len() int {
	return len(h.hashes)
}

// CanClaimThreefold reports whether hash has occurred at least twice before
// in the recorded history, i.e. the current occurrence would be the third.
func (h *GameHistory) CanClaimThreefold(hash uint64) bool {
	count := 0
	for _, v := range h.hashes {
		if v == hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}
