package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"glycoscan/internal/food"
)

// fakeBackend records successful writes and can fail the next N saves.
type fakeBackend struct {
	saved    [][]byte
	failNext int
}

func (b *fakeBackend) Load(context.Context, string) ([]byte, error) { return nil, nil }

func (b *fakeBackend) Save(_ context.Context, _ string, data []byte) error {
	if b.failNext > 0 {
		b.failNext--
		return errors.New("quota exceeded")
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	b.saved = append(b.saved, stored)
	return nil
}

func (b *fakeBackend) Delete(context.Context, string) error { return nil }
func (b *fakeBackend) Close() error                         { return nil }

func (b *fakeBackend) lastState(t *testing.T) persistedState {
	t.Helper()
	if len(b.saved) == 0 {
		t.Fatal("no writes recorded")
	}
	var state persistedState
	if err := json.Unmarshal(b.saved[len(b.saved)-1], &state); err != nil {
		t.Fatalf("stored blob is not valid JSON: %v", err)
	}
	return state
}

func testEntry(i int) RuntimeEntry {
	return RuntimeEntry{
		Entry: Entry{
			ID:        fmt.Sprintf("entry-%d", i),
			FoodID:    fmt.Sprintf("food-%d", i),
			FoodName:  fmt.Sprintf("Food %d", i),
			Timestamp: int64(1000 + i),
		},
		ImageRef: fmt.Sprintf("img://%d", i),
	}
}

func TestHistoryBounding(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	store := NewStore(backend, Limits{RuntimeLimit: 2, HistoryLimit: 3, MaxBlobBytes: 100_000, ShrinkKeep: 5})

	for i := 1; i <= 4; i++ {
		store.AddToHistory(ctx, testEntry(i))
	}

	history := store.History()
	if len(history) != 3 {
		t.Fatalf("expected history capped at 3, got %d", len(history))
	}
	if history[0].ID != "entry-4" {
		t.Errorf("expected most recent entry first, got %q", history[0].ID)
	}
	for _, e := range history {
		if e.ID == "entry-1" {
			t.Error("oldest entry was not evicted")
		}
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp > history[i-1].Timestamp {
			t.Error("history not in descending timestamp order")
		}
	}

	if recent := store.RecentScans(); len(recent) != 2 {
		t.Errorf("expected runtime list capped at 2, got %d", len(recent))
	}

	state := backend.lastState(t)
	if len(state.History) != 3 {
		t.Errorf("expected persisted list capped at 3, got %d", len(state.History))
	}
}

func TestPersistedBlobExcludesImageRefs(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	store := NewStore(backend, DefaultLimits)

	store.AddToHistory(ctx, testEntry(1))

	blob := string(backend.saved[len(backend.saved)-1])
	if strings.Contains(blob, "img://") {
		t.Errorf("image reference leaked into persisted blob: %s", blob)
	}
}

func TestRemoveFromHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeBackend{}, DefaultLimits)

	store.AddToHistory(ctx, testEntry(1))
	store.AddToHistory(ctx, testEntry(2))

	// wrong id is a no-op
	store.RemoveFromHistory(ctx, "entry-99")
	if len(store.History()) != 2 {
		t.Fatal("remove with unknown id must not change history")
	}

	store.RemoveFromHistory(ctx, "entry-1")
	for _, e := range store.History() {
		if e.ID == "entry-1" {
			t.Error("entry still in persisted list after removal")
		}
	}
	for _, e := range store.RecentScans() {
		if e.ID == "entry-1" {
			t.Error("entry still in runtime list after removal")
		}
	}
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	store := NewStore(backend, DefaultLimits)

	store.AddToHistory(ctx, testEntry(1))
	store.ClearHistory(ctx)

	if len(store.History()) != 0 || len(store.RecentScans()) != 0 {
		t.Fatal("expected both lists emptied")
	}
	if state := backend.lastState(t); len(state.History) != 0 {
		t.Errorf("expected empty persisted history, got %d entries", len(state.History))
	}
}

func TestFinishScanFoldsSessionIntoHistory(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeBackend{}, DefaultLimits)

	store.StartScan("img://session")
	store.SetResult(&food.Record{ID: "7", Name: "Sweet Potato"})
	store.FinishScan(ctx)

	history := store.History()
	if len(history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(history))
	}
	if history[0].FoodID != "7" || history[0].FoodName != "Sweet Potato" {
		t.Errorf("unexpected entry: %+v", history[0])
	}
	if history[0].ID == "" || history[0].Timestamp == 0 {
		t.Error("expected generated id and timestamp")
	}

	recent := store.RecentScans()
	if len(recent) != 1 || recent[0].ImageRef != "img://session" {
		t.Errorf("expected runtime entry to keep the image ref, got %+v", recent)
	}

	session := store.CurrentScan()
	if session.InProgress || session.Result != nil {
		t.Error("expected session cleared after finish")
	}
}

func TestFinishScanWithoutResultIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&fakeBackend{}, DefaultLimits)

	store.StartScan("img://nothing")
	store.SetResult(nil)
	store.FinishScan(ctx)

	if len(store.History()) != 0 {
		t.Error("a session with no result must not touch history")
	}
}

func TestStartScanReplacesInFlightSession(t *testing.T) {
	store := NewStore(&fakeBackend{}, DefaultLimits)

	store.StartScan("img://first")
	store.StartScan("img://second")

	session := store.CurrentScan()
	if session.ImageRef != "img://second" || !session.InProgress {
		t.Errorf("expected the second scan to own the slot, got %+v", session)
	}
}

func TestOversizedBlobShrinksToMostRecent(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	// Threshold low enough that any real blob trips the shrink.
	store := NewStore(backend, Limits{RuntimeLimit: 10, HistoryLimit: 20, MaxBlobBytes: 10, ShrinkKeep: 5})

	for i := 1; i <= 8; i++ {
		store.AddToHistory(ctx, testEntry(i))
	}

	if len(store.History()) != 8 {
		t.Fatalf("in-memory history must keep all 8, got %d", len(store.History()))
	}

	state := backend.lastState(t)
	if len(state.History) != 5 {
		t.Fatalf("expected persisted history shrunk to 5, got %d", len(state.History))
	}
	if state.History[0].ID != "entry-8" {
		t.Errorf("expected the most recent entries kept, got %q first", state.History[0].ID)
	}
}

func TestFailedWriteFallsBackToEmptyHistory(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{failNext: 1}
	store := NewStore(backend, DefaultLimits)

	store.AddToHistory(ctx, testEntry(1))

	if len(store.History()) != 1 {
		t.Fatal("in-memory state must stay usable after a write failure")
	}
	if state := backend.lastState(t); len(state.History) != 0 {
		t.Errorf("expected the fallback write to contain an empty history, got %d entries", len(state.History))
	}
}

func TestDoubleWriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{failNext: 2}
	store := NewStore(backend, DefaultLimits)

	store.AddToHistory(ctx, testEntry(1))

	if len(backend.saved) != 0 {
		t.Error("expected no successful writes")
	}
	if len(store.History()) != 1 {
		t.Error("in-memory state must survive persistent storage failure")
	}
}

func TestInitWithCorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	if err := backend.Save(ctx, storeName, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	store := NewStore(backend, DefaultLimits)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("corrupt data must not fail init: %v", err)
	}
	if len(store.History()) != 0 {
		t.Error("expected empty history from corrupt blob")
	}
}

func TestInitRestoresPersistedHistory(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	first := NewStore(backend, DefaultLimits)
	first.AddToHistory(ctx, testEntry(1))
	first.AddToHistory(ctx, testEntry(2))

	second := NewStore(backend, DefaultLimits)
	if err := second.Init(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := second.History()
	if len(history) != 2 || history[0].ID != "entry-2" {
		t.Fatalf("expected restored history, got %+v", history)
	}
	if len(second.RecentScans()) != 0 {
		t.Error("runtime list must start fresh after restart")
	}
}
