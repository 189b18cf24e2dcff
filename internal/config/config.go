// Package config holds the tunable search knobs the engine exposes to its
// callers: depth cap, quiescence-depth policy, and an iterative-deepening
// flag. The search driver does not read the flag; it always deepens from
// depth 1 up to the depth cap. It is the typed replacement for the module-level
// globals of the original Python engine's utils/config.py (get_global_depth,
// get_qDepth, iterative_deepening, ...).
package config

import "fmt"

// QDepthPolicy selects how quiescence search's depth cap is derived.
// See spec.md §4.E: the source used "depth/2 + 2" in one place and a large
// constant (effectively unrestricted) elsewhere; both are kept as a policy
// knob rather than picking one.
type QDepthPolicy int

const (
	// QDepthRestricted caps quiescence depth at base_depth/2 + 2.
	QDepthRestricted QDepthPolicy = iota
	// QDepthUnrestricted uses a large constant, effectively no quiescence cap.
	QDepthUnrestricted
	// QDepthRemoved disables quiescence search; leaves return stand_pat.
	QDepthRemoved
)

func (p QDepthPolicy) String() string {
	switch p {
	case QDepthRestricted:
		return "restricted"
	case QDepthUnrestricted:
		return "unrestricted"
	case QDepthRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// unrestrictedQDepth stands in for "no cap": large enough that no real game
// tree reaches it, matching the source's qDepth_restricted=False branch
// (utils/config.py returns 100 in that case).
const unrestrictedQDepth = 100

// MinDepth and MaxDepth bound the configurable search depth (spec.md §6).
const (
	MinDepth = 1
	MaxDepth = 20
)

// Config is the set of knobs a single search obeys.
type Config struct {
	MaxDepth           int
	QDepth             QDepthPolicy
	IterativeDeepening bool
}

// Default returns the engine's default configuration: unrestricted
// quiescence, iterative deepening on, depth 3 (the source's config.py
// default).
func Default() Config {
	return Config{
		MaxDepth:           3,
		QDepth:             QDepthUnrestricted,
		IterativeDeepening: true,
	}
}

// Validate rejects configurations the engine cannot search with. Per
// spec.md §7, InvalidConfiguration is rejected at configuration time,
// before search begins.
func (c Config) Validate() error {
	if c.MaxDepth < MinDepth || c.MaxDepth > MaxDepth {
		return fmt.Errorf("config: max depth %d out of range [%d, %d]", c.MaxDepth, MinDepth, MaxDepth)
	}
	return nil
}

// QDepthFor computes the quiescence depth cap for a given base search depth,
// per the policy selected. See spec.md §4.E.
func (c Config) QDepthFor(baseDepth int) int {
	switch c.QDepth {
	case QDepthRemoved:
		return 0
	case QDepthRestricted:
		return baseDepth/2 + 2
	default: // QDepthUnrestricted
		return unrestrictedQDepth
	}
}
