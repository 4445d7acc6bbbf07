package scan

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"glycoscan/internal/food"

	"github.com/google/uuid"
)

// storeName keys the single persisted blob in the backend.
const storeName = "scan-storage"

// persistedState is the durable schema: only the image-stripped
// history list survives a restart.
type persistedState struct {
	History []Entry `json:"history"`
}

// Store owns the scan session and the bounded history lists. It is
// explicitly constructed with a backend and a limit profile so tests
// can supply an in-memory backend.
//
// All state is guarded by a mutex; history mutations are read-modify-
// write sequences that must not interleave.
type Store struct {
	mu      sync.Mutex
	backend Backend
	limits  Limits

	session Session
	recent  []RuntimeEntry // runtime list, carries image refs
	history []Entry        // persisted list, image-stripped
}

func NewStore(backend Backend, limits Limits) *Store {
	return &Store{backend: backend, limits: limits}
}

// Init loads the persisted history. Corrupt or absent data yields an
// empty history rather than an error; the runtime list always starts
// fresh.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load(ctx, storeName)
	if err != nil {
		log.Println("scan store: failed to read history, starting empty:", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Println("scan store: corrupt history blob, starting empty:", err)
		return nil
	}

	s.history = state.History
	if len(s.history) > s.limits.HistoryLimit {
		s.history = s.history[:s.limits.HistoryLimit]
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// StartScan opens a new session, silently replacing any in-flight one.
// One scan slot, no queuing.
func (s *Store) StartScan(imageRef string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{InProgress: true, ImageRef: imageRef}
}

// SetResult records the analysis outcome on the current session. It
// does not persist anything by itself.
func (s *Store) SetResult(rec *food.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.InProgress = false
	s.session.Result = rec
}

// FinishScan folds the current session into history. A session with no
// result has no history effect and is not an error.
func (s *Store) FinishScan(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Result == nil {
		return
	}

	entry := RuntimeEntry{
		Entry: Entry{
			ID:        uuid.New().String(),
			FoodID:    s.session.Result.ID,
			FoodName:  s.session.Result.Name,
			Timestamp: time.Now().UnixMilli(),
		},
		ImageRef: s.session.ImageRef,
	}
	s.addLocked(ctx, entry)
	s.session = Session{}
}

// ClearCurrentScan discards the session without touching history.
func (s *Store) ClearCurrentScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
}

// CurrentScan returns a snapshot of the session.
func (s *Store) CurrentScan() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// AddToHistory prepends the entry to both lists, truncating each to its
// cap, and persists the image-stripped list.
func (s *Store) AddToHistory(ctx context.Context, entry RuntimeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(ctx, entry)
}

func (s *Store) addLocked(ctx context.Context, entry RuntimeEntry) {
	s.recent = prependRuntime(s.recent, entry, s.limits.RuntimeLimit)
	s.history = prependEntry(s.history, entry.Entry, s.limits.HistoryLimit)
	s.persistLocked(ctx)
}

// RemoveFromHistory drops the entry with the given id from both lists.
// An absent id is a no-op.
func (s *Store) RemoveFromHistory(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for i, e := range s.history {
		if e.ID == id {
			s.history = append(s.history[:i:i], s.history[i+1:]...)
			removed = true
			break
		}
	}
	for i, e := range s.recent {
		if e.ID == id {
			s.recent = append(s.recent[:i:i], s.recent[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.persistLocked(ctx)
	}
}

// ClearHistory empties both lists.
func (s *Store) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = nil
	s.history = nil
	s.persistLocked(ctx)
}

// History returns a copy of the persisted list, most recent first.
func (s *Store) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// RecentScans returns a copy of the runtime list, image refs included.
func (s *Store) RecentScans() []RuntimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RuntimeEntry, len(s.recent))
	copy(out, s.recent)
	return out
}

// persistLocked writes the history blob, degrading instead of failing:
// an oversized blob is shrunk to the most recent few entries, a failed
// write is retried once with an empty history, and a failure of that
// last attempt is logged and swallowed. History loss is acceptable; a
// crash or an undefined storage state is not.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(persistedState{History: s.history})
	if err != nil {
		log.Println("scan store: failed to serialize history:", err)
		return
	}

	if len(data) > s.limits.MaxBlobBytes {
		keep := s.limits.ShrinkKeep
		if keep > len(s.history) {
			keep = len(s.history)
		}
		shrunk, err := json.Marshal(persistedState{History: s.history[:keep]})
		if err != nil {
			log.Println("scan store: failed to serialize shrunk history:", err)
			return
		}
		data = shrunk
	}

	if err := s.backend.Save(ctx, storeName, data); err != nil {
		log.Println("scan store: failed to write history, resetting:", err)
		empty, _ := json.Marshal(persistedState{History: []Entry{}})
		if err := s.backend.Save(ctx, storeName, empty); err != nil {
			log.Println("scan store: failed to write even empty history:", err)
		}
	}
}

func prependEntry(list []Entry, e Entry, limit int) []Entry {
	out := append([]Entry{e}, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func prependRuntime(list []RuntimeEntry, e RuntimeEntry, limit int) []RuntimeEntry {
	out := append([]RuntimeEntry{e}, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
