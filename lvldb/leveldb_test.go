// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMem(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Get([]byte("missing"))
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	has, err := db.Has([]byte("k"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("k")))
	has, err = db.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBatch(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("stale"), []byte("x")))

	batch := db.NewBatch()
	require.NoError(t, batch.Put([]byte("a"), []byte("1")))
	require.NoError(t, batch.Put([]byte("b"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("stale")))
	assert.Equal(t, 3, batch.Len())

	// nothing visible before write
	_, err = db.Get([]byte("a"))
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, batch.Write())
	v, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
	_, err = db.Get([]byte("stale"))
	assert.True(t, db.IsNotFound(err))
}

func TestPersistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.db")

	db, err := New(path, Options{})
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("reward"), []byte{0x27, 0x10}))
	require.NoError(t, db.Close())

	db, err = New(path, Options{CacheSize: 64, OpenFilesCacheCapacity: 32})
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Get([]byte("reward"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x27, 0x10}, v)
}

func TestReopenReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.db")

	for i := range 3 {
		db, err := New(path, Options{})
		require.NoError(t, err, "open #%d", i)
		require.NoError(t, db.Put([]byte{byte(i)}, []byte{byte(i)}))
		require.NoError(t, db.Close())
	}

	db, err := New(path, Options{})
	require.NoError(t, err)
	defer db.Close()
	has, err := db.Has([]byte{2})
	require.NoError(t, err)
	assert.True(t, has)
}
