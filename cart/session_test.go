package cart

import (
	"path/filepath"
	"testing"

	"restaurant-bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPersistsEveryMutation(t *testing.T) {
	kv := NewMemoryKV()
	s, err := Open(kv)
	require.NoError(t, err)

	require.NoError(t, s.Select(models.Restaurant{ID: "r1", Name: "The Nawaabs"}))
	require.NoError(t, s.Add(testMenu, "a"))
	require.NoError(t, s.Add(testMenu, "a"))
	require.NoError(t, s.Add(testMenu, "b"))
	require.NoError(t, s.Remove("b"))

	raw, ok, err := kv.Get(KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"menuItemId":"a","name":"Chicken Tikka","price":100,"quantity":2}]`, string(raw))

	reopened, err := Open(kv)
	require.NoError(t, err)
	assert.Equal(t, s.Cart, reopened.Cart)
	require.NotNil(t, reopened.Restaurant)
	assert.Equal(t, "The Nawaabs", reopened.Restaurant.Name)
}

func TestSessionClear(t *testing.T) {
	kv := NewMemoryKV()
	s, err := Open(kv)
	require.NoError(t, err)
	require.NoError(t, s.Select(models.Restaurant{ID: "r1"}))
	require.NoError(t, s.Add(testMenu, "a"))

	require.NoError(t, s.Clear())

	_, ok, _ := kv.Get(KeyCart)
	assert.False(t, ok)
	_, ok, _ = kv.Get(KeySelectedRestaurant)
	assert.False(t, ok)
	assert.Nil(t, s.Restaurant)
	assert.True(t, s.Cart.Empty())
}

func TestSessionIgnoresUnknownItem(t *testing.T) {
	kv := NewMemoryKV()
	s, err := Open(kv)
	require.NoError(t, err)

	require.NoError(t, s.Add(testMenu, "missing"))
	_, ok, _ := kv.Get(KeyCart)
	assert.False(t, ok, "no-op add must not write")
}

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := Open(NewFileKV(path))
	require.NoError(t, err)
	require.NoError(t, s.Select(models.Restaurant{ID: "r2", Name: "Taj Terrace"}))
	require.NoError(t, s.Add(testMenu, "b"))

	reopened, err := Open(NewFileKV(path))
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Cart.QuantityOf("b"))
	require.NotNil(t, reopened.Restaurant)
	assert.Equal(t, "r2", reopened.Restaurant.ID)

	require.NoError(t, reopened.Clear())
	cleared, err := Open(NewFileKV(path))
	require.NoError(t, err)
	assert.True(t, cleared.Cart.Empty())
	assert.Nil(t, cleared.Restaurant)
}
