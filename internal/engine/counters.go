package engine

// Counters aggregates the two statistics spec.md §4.I names: positions
// evaluated and alpha-beta cutoffs. A Counters value tracks one of two
// scopes: per-move (reset at the start of every FindBestMove call) or
// cumulative (reset only between games, by the caller).
type Counters struct {
	PositionsEvaluated uint64
	Cutoffs            uint64
}

// Add merges another Counters' totals into c, used to fold a completed
// search's per-move counters into the cumulative total (spec.md §3:
// "aggregate into a process-total accumulator on terminal 'move chosen'
// events").
func (c *Counters) Add(other Counters) {
	c.PositionsEvaluated += other.PositionsEvaluated
	c.Cutoffs += other.Cutoffs
}

func (c *Counters) incPosition() {
	c.PositionsEvaluated++
}

func (c *Counters) incCutoff() {
	c.Cutoffs++
}
