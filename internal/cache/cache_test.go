package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

type fakeResponse struct {
	Status      string   `json:"status"`
	Predictions []string `json:"predictions"`
}

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), ttl, arbor.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PutGet(t *testing.T) {
	store := openTestStore(t, time.Hour)

	key := Key("/autocomplete/json", "input=Sicili&language=en")
	in := fakeResponse{Status: "OK", Predictions: []string{"Sicily, Italy"}}
	require.NoError(t, store.Put(key, in))

	var out fakeResponse
	hit, err := store.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, in, out)
}

func TestStore_Miss(t *testing.T) {
	store := openTestStore(t, time.Hour)

	var out fakeResponse
	hit, err := store.Get(Key("/autocomplete/json", "input=unseen"), &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStore_TTLExpiry(t *testing.T) {
	store := openTestStore(t, 10*time.Millisecond)

	key := Key("/details/json", "place_id=abc")
	require.NoError(t, store.Put(key, fakeResponse{Status: "OK"}))

	time.Sleep(20 * time.Millisecond)

	var out fakeResponse
	hit, err := store.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit, "expired entry must be a miss")
}

func TestStore_Overwrite(t *testing.T) {
	store := openTestStore(t, 0)

	key := Key("/textsearch/json", "query=pizza")
	require.NoError(t, store.Put(key, fakeResponse{Status: "OK", Predictions: []string{"old"}}))
	require.NoError(t, store.Put(key, fakeResponse{Status: "OK", Predictions: []string{"new"}}))

	var out fakeResponse
	hit, err := store.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, []string{"new"}, out.Predictions)
}

func TestStore_CloseReleasesLock(t *testing.T) {
	dir := t.TempDir()
	logger := arbor.NewLogger()

	store, err := Open(dir, time.Hour, logger)
	require.NoError(t, err)

	key := Key("/autocomplete/json", "input=Sicili")
	require.NoError(t, store.Put(key, fakeResponse{Status: "OK"}))
	require.NoError(t, store.Close())

	// Badger holds a directory lock while open; reopening the same path
	// only succeeds after a clean close.
	reopened, err := Open(dir, time.Hour, logger)
	require.NoError(t, err)
	defer reopened.Close()

	var out fakeResponse
	hit, err := reopened.Get(key, &out)
	require.NoError(t, err)
	assert.True(t, hit, "entry written before close must survive reopen")
}

func TestKey(t *testing.T) {
	a := Key("/autocomplete/json", "input=Sicili")
	b := Key("/autocomplete/json", "input=Sicili")
	c := Key("/autocomplete/json", "input=Palermo")
	d := Key("/queryautocomplete/json", "input=Sicili")

	assert.Equal(t, a, b, "same endpoint and query must map to the same key")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d, "different endpoints must not collide")
}
