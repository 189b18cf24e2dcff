package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "kenobot-stats-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := OpenAt(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadEmptyReturnsZero(t *testing.T) {
	store := openTestStore(t)

	c, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != (Counters{}) {
		t.Errorf("expected zero counters, got %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Counters{PositionsEvaluated: 1234, Cutoffs: 56}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAddAccumulates(t *testing.T) {
	store := openTestStore(t)

	if err := store.Add(Counters{PositionsEvaluated: 100, Cutoffs: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(Counters{PositionsEvaluated: 50, Cutoffs: 5}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Counters{PositionsEvaluated: 150, Cutoffs: 15}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
