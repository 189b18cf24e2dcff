package stats

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

const keyCumulative = "cumulative_counters"

// Counters mirrors engine.Counters without importing the engine package —
// this package sits below engine in the dependency graph (a command-line
// entry point wires the conversion); see DESIGN.md.
type Counters struct {
	PositionsEvaluated uint64 `json:"positions_evaluated"`
	Cutoffs            uint64 `json:"cutoffs"`
}

// Store wraps BadgerDB for persisting cumulative engine counters between
// process runs (spec.md §4.I: "cumulative (reset between games)" — this is
// the layer that survives past a single process's "between games").
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the counters database in the
// platform data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the counters database at an explicit directory, for tests
// and callers that manage their own data directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists c as the current cumulative totals, overwriting whatever
// was stored before.
func (s *Store) Save(c Counters) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCumulative), data)
	})
}

// Load returns the persisted cumulative totals, or a zero Counters if none
// have been saved yet.
func (s *Store) Load() (Counters, error) {
	var c Counters

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCumulative))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &c)
		})
	})

	return c, err
}

// Add loads the persisted totals, merges in delta, and saves the result —
// the usual "fold a completed search's per-move counters into the
// process-total accumulator" operation (spec.md §3), extended to survive
// past one process's lifetime.
func (s *Store) Add(delta Counters) error {
	c, err := s.Load()
	if err != nil {
		return err
	}
	c.PositionsEvaluated += delta.PositionsEvaluated
	c.Cutoffs += delta.Cutoffs
	return s.Save(c)
}
