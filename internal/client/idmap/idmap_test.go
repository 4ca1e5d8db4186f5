package idmap

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/client/storage/sqlite"
)

func newTestMap(t *testing.T) *Map {
	t.Helper()
	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "idmap.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMap_RecordResolve(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	_, ok, err := m.Resolve(ctx, "temp_a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Record(ctx, "temp_a", "37"))

	id, ok, err := m.Resolve(ctx, "temp_a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "37", id)

	all, err := m.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"temp_a": "37"}, all)
}

func TestMap_RecordRejectsInvalid(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()

	assert.Error(t, m.Record(ctx, "37", "38"))
	assert.Error(t, m.Record(ctx, "temp_a", ""))
	assert.Error(t, m.Record(ctx, "temp_a", "temp_b"))
}

func TestMap_ResolveOrSelf(t *testing.T) {
	m := newTestMap(t)
	ctx := context.Background()
	require.NoError(t, m.Record(ctx, "temp_a", "37"))

	for in, want := range map[string]string{"temp_a": "37", "temp_b": "temp_b", "5": "5"} {
		got, err := m.ResolveOrSelf(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestRewritePath(t *testing.T) {
	mappings := map[string]string{"temp_a": "37"}

	assert.Equal(t, "/products/37", RewritePath("/products/temp_a", mappings))
	assert.Equal(t, "/products/37?x=1", RewritePath("/products/temp_a?x=1", mappings))
	// Неизвестный temp id остается как есть
	assert.Equal(t, "/products/temp_b", RewritePath("/products/temp_b", mappings))
	assert.Equal(t, "/products/5", RewritePath("/products/5", mappings))
}

func TestRewritePayload(t *testing.T) {
	mappings := map[string]string{"temp_a": "37", "temp_g": "gen_4"}

	out, err := RewritePayload(json.RawMessage(`{"id":"temp_a","related":["temp_g","temp_x"],"price":6.5}`), mappings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":37,"related":["gen_4","temp_x"],"price":6.5}`, string(out))

	// Без изменений payload возвращается байт в байт
	in := json.RawMessage(`{"name":"Mocha",  "price":6.5}`)
	out, err = RewritePayload(in, mappings)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))

	_, err = RewritePayload(json.RawMessage(`{broken`), mappings)
	assert.Error(t, err)
}
