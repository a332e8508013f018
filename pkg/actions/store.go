package actions

import (
	"sync"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
)

// Snapshot is an immutable view of the collection. Version grows with every
// change.
type Snapshot struct {
	Version uint64
	Actions []types.ActionRecord
}

// Listener receives the snapshot produced by a change
type Listener func(Snapshot)

// Store is the authoritative action collection
type Store struct {
	mu        sync.RWMutex
	snap      Snapshot
	listeners map[int]Listener
	nextID    int
}

// NewStore returns a store holding records
func NewStore(records ...types.ActionRecord) (*Store, error) {
	s := &Store{listeners: make(map[int]Listener)}
	if err := validateAll(records); err != nil {
		return nil, err
	}
	s.snap = Snapshot{Version: 1, Actions: clone(records)}
	return s, nil
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Subscribe registers fn for change notifications and returns a function
// that removes it
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Replace swaps the whole collection
func (s *Store) Replace(records []types.ActionRecord) error {
	if err := validateAll(records); err != nil {
		return err
	}
	return s.commit(func([]types.ActionRecord) ([]types.ActionRecord, error) {
		return clone(records), nil
	})
}

// Add appends a record. Ids must be unique.
func (s *Store) Add(record types.ActionRecord) error {
	if err := validate(record); err != nil {
		return err
	}
	return s.commit(func(current []types.ActionRecord) ([]types.ActionRecord, error) {
		if indexOf(current, record.ID) >= 0 {
			return nil, errors.Newf(errors.ErrAlreadyExists, "action %q already exists", record.ID).
				WithDetail("id", record.ID)
		}
		return append(clone(current), record), nil
	})
}

// Remove deletes the record with id
func (s *Store) Remove(id string) error {
	return s.commit(func(current []types.ActionRecord) ([]types.ActionRecord, error) {
		i := indexOf(current, id)
		if i < 0 {
			return nil, notFound(id)
		}
		next := make([]types.ActionRecord, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...), nil
	})
}

// Rename changes the name of the record with id
func (s *Store) Rename(id, name string) error {
	return s.commit(func(current []types.ActionRecord) ([]types.ActionRecord, error) {
		i := indexOf(current, id)
		if i < 0 {
			return nil, notFound(id)
		}
		next := clone(current)
		next[i].Name = name
		return next, nil
	})
}

// commit applies change under the write lock, then notifies listeners
// outside of it so they may read the store
func (s *Store) commit(change func([]types.ActionRecord) ([]types.ActionRecord, error)) error {
	s.mu.Lock()
	next, err := change(s.snap.Actions)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.snap = Snapshot{Version: s.snap.Version + 1, Actions: next}
	snap := s.snap
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	logger := logging.GetLogger("actions")
	logger.Trace().
		Uint64("version", snap.Version).
		Int("actions", len(snap.Actions)).
		Int("listeners", len(listeners)).
		Msg("Action collection changed")

	for _, fn := range listeners {
		fn(snap)
	}
	return nil
}

func validateAll(records []types.ActionRecord) error {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if err := validate(r); err != nil {
			return err
		}
		if _, dup := seen[r.ID]; dup {
			return errors.Newf(errors.ErrAlreadyExists, "action %q appears twice", r.ID).
				WithDetail("id", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func validate(r types.ActionRecord) error {
	if r.ID == "" {
		return errors.Newf(errors.ErrActionInvalid, "action %q has no id", r.Name)
	}
	if !r.Kind.IsValid() {
		return errors.Newf(errors.ErrActionInvalid, "action %q has unknown kind %q", r.ID, r.Kind).
			WithDetail("id", r.ID)
	}
	return nil
}

func indexOf(records []types.ActionRecord, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return errors.Newf(errors.ErrNotFound, "action %q not found", id).WithDetail("id", id)
}

func clone(records []types.ActionRecord) []types.ActionRecord {
	return append([]types.ActionRecord(nil), records...)
}
