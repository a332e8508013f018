package actions

import (
	"sync"
	"testing"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, name, page string) types.ActionRecord {
	return types.ActionRecord{ID: id, Name: name, PageID: page, Kind: types.ActionKindDB}
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(record("1", "Query1", "page-A"))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Actions, 1)

	_, err = NewStore(record("1", "Query1", "A"), record("1", "Query2", "A"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = NewStore(types.ActionRecord{ID: "x", Kind: "JS"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))

	_, err = NewStore(types.ActionRecord{Name: "NoID", Kind: types.ActionKindAPI})
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
}

func TestStore_Mutations(t *testing.T) {
	s, err := NewStore(record("1", "Query1", "A"))
	require.NoError(t, err)

	require.NoError(t, s.Add(record("2", "Query2", "A")))
	assert.True(t, errors.IsErrorCode(s.Add(record("2", "Other", "B")), errors.ErrAlreadyExists))

	require.NoError(t, s.Rename("2", "Users"))
	assert.Equal(t, "Users", s.Snapshot().Actions[1].Name)
	assert.True(t, errors.IsErrorCode(s.Rename("9", "x"), errors.ErrNotFound))

	require.NoError(t, s.Remove("1"))
	assert.True(t, errors.IsErrorCode(s.Remove("1"), errors.ErrNotFound))

	snap := s.Snapshot()
	require.Len(t, snap.Actions, 1)
	assert.Equal(t, "2", snap.Actions[0].ID)
	assert.Equal(t, uint64(4), snap.Version, "three successful changes")

	require.NoError(t, s.Replace(nil))
	assert.Empty(t, s.Snapshot().Actions)
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	s, err := NewStore(record("1", "Query1", "A"))
	require.NoError(t, err)

	before := s.Snapshot()
	require.NoError(t, s.Rename("1", "Renamed"))

	assert.Equal(t, "Query1", before.Actions[0].Name)
	assert.Equal(t, "Renamed", s.Snapshot().Actions[0].Name)
}

func TestStore_Subscribe(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	var got []uint64
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		// listeners may read the store
		assert.Equal(t, snap.Version, s.Snapshot().Version)
		got = append(got, snap.Version)
	})

	require.NoError(t, s.Add(record("1", "Query1", "A")))
	require.Error(t, s.Remove("missing"))
	require.NoError(t, s.Rename("1", "Query2"))

	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Remove("1"))

	assert.Equal(t, []uint64{2, 3}, got, "failed changes do not notify")
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Add(record(string(rune('a'+i%26))+string(rune('0'+i/26)), "Q", "A")))
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Actions, 50)
	assert.Equal(t, uint64(51), snap.Version)
}

func TestRenameContext(t *testing.T) {
	in := []types.ActionRecord{record("1", "Q1", "Page1"), record("2", "Q2", "Page2")}
	out := RenameContext(in, "Page1", "page-123")

	assert.Equal(t, "page-123", out[0].PageID)
	assert.Equal(t, "Page2", out[1].PageID)
	assert.Equal(t, "Page1", in[0].PageID, "input is left untouched")
}
