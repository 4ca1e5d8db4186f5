// Package storagetest содержит общий набор проверок для движков клиентского хранилища.
package storagetest

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// Factory opens a fresh, empty store; the test owns closing it
type Factory func(t *testing.T) storage.Store

// Run runs the full storage contract against the engine built by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("Auth", func(t *testing.T) { testAuth(t, newStore(t)) })
	t.Run("Flags", func(t *testing.T) { testFlags(t, newStore(t)) })
	t.Run("Categories", func(t *testing.T) { testCategories(t, newStore(t)) })
	t.Run("LastSyncTime", func(t *testing.T) { testLastSyncTime(t, newStore(t)) })
	t.Run("Operations", func(t *testing.T) { testOperations(t, newStore(t)) })
	t.Run("Products", func(t *testing.T) { testProducts(t, newStore(t)) })
	t.Run("IDMappings", func(t *testing.T) { testIDMappings(t, newStore(t)) })
	t.Run("SyncLock", func(t *testing.T) { testSyncLock(t, newStore(t)) })
	t.Run("SyncLockConcurrent", func(t *testing.T) { testSyncLockConcurrent(t, newStore(t)) })
	t.Run("Closed", func(t *testing.T) { testClosed(t, newStore(t)) })
}

func closeStore(t *testing.T, s storage.Store) {
	t.Helper()
	require.NoError(t, s.Close())
}

func testAuth(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	_, err := s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	auth := &storage.AuthData{
		Email:     "captain@coffee.shop",
		Username:  "captain",
		Role:      "admin",
		Token:     "header.payload.sig",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, s.SaveAuth(ctx, auth))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Email, got.Email)
	assert.Equal(t, auth.Token, got.Token)
	assert.Equal(t, auth.Role, got.Role)
	assert.True(t, auth.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, s.DeleteAuth(ctx))
	_, err = s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторный logout
	assert.ErrorIs(t, s.DeleteAuth(ctx), storage.ErrAuthNotFound)
}

func testFlags(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	v, err := s.GetFlag(ctx, models.FlagServerWasDown)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, s.SetFlag(ctx, models.FlagServerWasDown, true))
	v, err = s.GetFlag(ctx, models.FlagServerWasDown)
	require.NoError(t, err)
	assert.True(t, v)

	// Другой флаг не затронут
	v, err = s.GetFlag(ctx, models.FlagNeedsRefresh)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, s.SetFlag(ctx, models.FlagServerWasDown, false))
	v, err = s.GetFlag(ctx, models.FlagServerWasDown)
	require.NoError(t, err)
	assert.False(t, v)
}

func testCategories(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	got, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	categories := []string{"Classic Coffee", "Teas"}
	require.NoError(t, s.SaveCategories(ctx, categories))

	got, err = s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func testLastSyncTime(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	at, err := s.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	now := time.Now()
	require.NoError(t, s.SaveLastSyncTime(ctx, now))

	at, err = s.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, now.UnixNano(), at.UnixNano())
}

func testOperations(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	ops, err := s.GetOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	create := models.NewOperation(models.OperationCreate, models.ProductsPath, json.RawMessage(`{"name":"Mocha"}`))
	create.TempID = models.NewTempID()
	update := models.NewOperation(models.OperationUpdate, models.ProductPath(create.TempID), json.RawMessage(`{"price":7}`))
	del := models.NewOperation(models.OperationDelete, models.ProductPath("3"), nil)

	// Порядок сохраняется, в том числе для больше чем 9 элементов
	var many []*models.PendingOperation
	for i := 0; i < 12; i++ {
		many = append(many, models.NewOperation(models.OperationDelete, models.ProductPath(string(rune('a'+i))), nil))
	}
	require.NoError(t, s.SaveOperations(ctx, append([]*models.PendingOperation{create, update, del}, many...)))

	ops, err = s.GetOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 15)
	assert.Equal(t, create.ID, ops[0].ID)
	assert.Equal(t, create.TempID, ops[0].TempID)
	assert.JSONEq(t, `{"name":"Mocha"}`, string(ops[0].Payload))
	assert.Equal(t, update.ID, ops[1].ID)
	assert.Equal(t, del.ID, ops[2].ID)
	assert.Equal(t, many[11].ID, ops[14].ID)

	// Замена списка, а не добавление
	require.NoError(t, s.SaveOperations(ctx, []*models.PendingOperation{del}))
	ops, err = s.GetOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, del.ID, ops[0].ID)

	require.NoError(t, s.SaveOperations(ctx, nil))
	ops, err = s.GetOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func testProducts(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	got, err := s.GetCachedProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	products := []*models.CachedProduct{
		{Product: api.Product{ID: "2", Name: "Americano", Category: "Classic Coffee", Price: 3.9}, IsSynced: true},
		{Product: api.Product{ID: "temp_1", Name: "Mocha", Category: "Classic Coffee", Price: 6.5}, IsOffline: true},
	}
	require.NoError(t, s.SaveCachedProducts(ctx, products))

	got, err = s.GetCachedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, api.ProductID("2"), got[0].ID)
	assert.True(t, got[0].IsSynced)
	assert.Equal(t, api.ProductID("temp_1"), got[1].ID)
	assert.True(t, got[1].IsOffline)
	assert.Equal(t, 6.5, got[1].Price)
}

func testIDMappings(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()

	_, err := s.GetIDMapping(ctx, "temp_a")
	assert.ErrorIs(t, err, storage.ErrMappingNotFound)

	require.NoError(t, s.SaveIDMapping(ctx, "temp_a", "37"))
	require.NoError(t, s.SaveIDMapping(ctx, "temp_b", "38"))

	id, err := s.GetIDMapping(ctx, "temp_a")
	require.NoError(t, err)
	assert.Equal(t, "37", id)

	all, err := s.GetAllIDMappings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"temp_a": "37", "temp_b": "38"}, all)
}

func testSyncLock(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()
	policy := models.LockPolicy{GraceWindow: 30 * time.Second}
	now := time.Now()

	lock, err := s.GetSyncLock(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock)

	acquired, holder, err := s.AcquireSyncLock(ctx, "first", now, policy)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.Nil(t, holder)

	// Второй в пределах grace window - отказ
	acquired, holder, err = s.AcquireSyncLock(ctx, "second", now.Add(2*time.Second), policy)
	require.NoError(t, err)
	assert.False(t, acquired)
	require.NotNil(t, holder)
	assert.Equal(t, "first", holder.Owner)

	// Чужой release ничего не снимает
	require.NoError(t, s.ReleaseSyncLock(ctx, "second"))
	lock, err = s.GetSyncLock(ctx)
	require.NoError(t, err)
	require.NotNil(t, lock)
	assert.Equal(t, "first", lock.Owner)

	// Продление переносит момент захвата, чужое продление не срабатывает
	held, err := s.RefreshSyncLock(ctx, "first", now.Add(20*time.Second))
	require.NoError(t, err)
	assert.True(t, held)
	held, err = s.RefreshSyncLock(ctx, "second", now.Add(25*time.Second))
	require.NoError(t, err)
	assert.False(t, held)

	acquired, _, err = s.AcquireSyncLock(ctx, "second", now.Add(31*time.Second), policy)
	require.NoError(t, err)
	assert.False(t, acquired, "refreshed lock is still live")

	// Stale lock перехватывается
	acquired, holder, err = s.AcquireSyncLock(ctx, "third", now.Add(51*time.Second), policy)
	require.NoError(t, err)
	assert.True(t, acquired)
	require.NotNil(t, holder)
	assert.Equal(t, "first", holder.Owner)

	// Перехваченный lock прежний владелец продлить не может
	held, err = s.RefreshSyncLock(ctx, "first", now.Add(52*time.Second))
	require.NoError(t, err)
	assert.False(t, held)

	require.NoError(t, s.ReleaseSyncLock(ctx, "third"))
	lock, err = s.GetSyncLock(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock)

	held, err = s.RefreshSyncLock(ctx, "third", now.Add(53*time.Second))
	require.NoError(t, err)
	assert.False(t, held)
}

func testSyncLockConcurrent(t *testing.T, s storage.Store) {
	defer closeStore(t, s)
	ctx := context.Background()
	policy := models.DefaultLockPolicy()
	now := time.Now()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			acquired, _, err := s.AcquireSyncLock(ctx, owner, now, policy)
			assert.NoError(t, err)
			if acquired {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(string(rune('a' + i)))
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func testClosed(t *testing.T, s storage.Store) {
	ctx := context.Background()
	require.NoError(t, s.Close())

	_, err := s.GetOperations(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, s.SaveOperations(ctx, nil), storage.ErrStorageClosed)

	// Повторный Close безопасен
	assert.NoError(t, s.Close())
}
