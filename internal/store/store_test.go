package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func Test_SlotStore_MemoryOnly_ReadYourWrites(t *testing.T) {
	s, err := NewSlotStore("", "")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("loans", []string{"1", "5"}))

	var got []string
	assert.True(t, s.Read("loans", &got))
	assert.Equal(t, []string{"1", "5"}, got)
}

func Test_SlotStore_Read_AbsentKeepsDefault(t *testing.T) {
	s, err := NewSlotStore("", "")
	require.NoError(t, err)

	got := []string{"default"}
	assert.False(t, s.Read("missing", &got))
	assert.Equal(t, []string{"default"}, got)
}

func Test_SlotStore_Read_ShapeMismatchFailsOpen(t *testing.T) {
	s, err := NewSlotStore("", "")
	require.NoError(t, err)

	require.NoError(t, s.Write("loans", map[string]int{"a": 1}))

	var got []string
	assert.False(t, s.Read("loans", &got))
}

func Test_SlotStore_Write_UnencodableValue(t *testing.T) {
	s, err := NewSlotStore("", "")
	require.NoError(t, err)

	err = s.Write("bad", make(chan int))
	assert.Error(t, err)

	var got any
	assert.False(t, s.Read("bad", &got))
}

func Test_SlotStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSlotStore(dir, "main library")
	require.NoError(t, err)
	require.NoError(t, s.Write("holds", []string{"3"}))
	require.NoError(t, s.Close())

	reopened, err := NewSlotStore(dir, "main library")
	require.NoError(t, err)
	defer reopened.Close()

	var got []string
	assert.True(t, reopened.Read("holds", &got))
	assert.Equal(t, []string{"3"}, got)
}

func Test_SlotStore_ProfilesAreIsolated(t *testing.T) {
	dir := t.TempDir()

	a, err := NewSlotStore(dir, "Main Library")
	require.NoError(t, err)
	require.NoError(t, a.Write("loans", []string{"1"}))
	require.NoError(t, a.Close())

	b, err := NewSlotStore(dir, "Branch")
	require.NoError(t, err)
	defer b.Close()

	var got []string
	assert.False(t, b.Read("loans", &got))
}

func Test_SlotStore_CorruptDiskValueFailsOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSlotStore(dir, "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	db, err := bolt.Open(filepath.Join(dir, dbFileName), 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte("tags"), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	reopened, err := NewSlotStore(dir, "")
	require.NoError(t, err)
	defer reopened.Close()

	var got []string
	assert.False(t, reopened.Read("tags", &got))
	assert.Empty(t, got)
}

func Test_SlotStore_WriteAfterClose_KeepsSessionValue(t *testing.T) {
	s, err := NewSlotStore(t.TempDir(), "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	err = s.Write("loans", []string{"2"})
	assert.ErrorIs(t, err, domain.ErrStoreClosed)

	var got []string
	assert.True(t, s.Read("loans", &got))
	assert.Equal(t, []string{"2"}, got)
}

func Test_SlotStore_DeleteAndKeys(t *testing.T) {
	s, err := NewSlotStore(t.TempDir(), "")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Write("b", 1))
	require.NoError(t, s.Write("a", 2))
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Delete("never-written"))
	assert.Equal(t, []string{"b"}, s.Keys())

	var v int
	assert.False(t, s.Read("a", &v))
}

func Test_NewSlotStore_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := NewSlotStore(filepath.Join(blocker, "sub"), "")
	assert.Error(t, err)
}
