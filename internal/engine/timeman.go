package engine

import (
	"time"

	"github.com/NoahBorch/Obi-Pawn-Kenobot/internal/config"
)

// expectedMovesRemaining is the "moves by phase" table of spec.md §4.H used
// to turn a clock reading into a per-move share.
var expectedMovesRemaining = map[Phase]int{
	Opening: 40,
	Midgame: 30,
	Endgame: 20,
}

// defaultBudgetSeconds is used when the caller supplies no time information
// at all (spec.md §4.H).
const defaultBudgetSeconds = 5.0

// TimeControl is the input to TimeManager.Allocate: either a fixed
// movetime, or a clock reading (time left plus increment) for the side to
// move. Zero Time means "no clock information" (falls back to the default
// budget) unless Movetime is set.
type TimeControl struct {
	Movetime time.Duration
	Time     time.Duration
	Inc      time.Duration
}

// TimeManager implements the mapping (time_left, increment, phase) ->
// per-move budget of spec.md §4.H. It holds no state of its own; each
// allocation is a pure function of its inputs, and the resulting TimeBudget
// owns the one piece of real state (a deadline fixed at construction).
type TimeManager struct{}

// NewTimeManager returns a TimeManager. It is stateless; the zero value
// would work equally well, but a constructor matches the rest of the
// package's style.
func NewTimeManager() *TimeManager {
	return &TimeManager{}
}

// Allocate computes a TimeBudget for one move (spec.md §4.H). phase is the
// phase tracker's current classification at the moment the move begins.
func (tm *TimeManager) Allocate(tc TimeControl, phase Phase) *TimeBudget {
	var seconds float64
	switch {
	case tc.Movetime > 0:
		seconds = tc.Movetime.Seconds()
	case tc.Time > 0:
		total := tc.Time.Seconds()
		inc := tc.Inc.Seconds()
		expected := expectedMovesRemaining[phase]
		seconds = total/float64(expected) + 0.95*inc
		if max := 0.6 * total; seconds > max {
			seconds = max
		}
		if seconds < 0.5 {
			seconds = 0.5
		}
	default:
		seconds = defaultBudgetSeconds
	}

	maxDepth := 0
	qPolicy := config.QDepthUnrestricted
	switch {
	case seconds <= 4:
		maxDepth = 2
		qPolicy = config.QDepthRestricted
	case seconds <= 9:
		maxDepth = 3
	}

	return NewTimeBudget(seconds, maxDepth, qPolicy)
}

// TimeBudget is the deadline-bearing value the driver and the searcher
// check cooperatively (spec.md §5). MaxDepth is non-zero only when the
// budget itself forces a depth cap narrower than the caller's configuration
// (spec.md §4.H's "additional depth policy"); a zero MaxDepth means "no
// override", and the driver then ignores QDepth as well.
type TimeBudget struct {
	Seconds  float64
	MaxDepth int
	QDepth   config.QDepthPolicy

	deadline time.Time
}

// NewTimeBudget builds a budget with a deadline fixed at construction time
// (now + seconds). maxDepth may be zero for "no override", in which case
// qDepth is not used.
func NewTimeBudget(seconds float64, maxDepth int, qDepth config.QDepthPolicy) *TimeBudget {
	return &TimeBudget{
		Seconds:  seconds,
		MaxDepth: maxDepth,
		QDepth:   qDepth,
		deadline: time.Now().Add(time.Duration(seconds * float64(time.Second))),
	}
}

// Expired reports whether the deadline has passed.
func (b *TimeBudget) Expired() bool {
	if b == nil {
		return false
	}
	return time.Now().After(b.deadline)
}
