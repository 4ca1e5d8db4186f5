package queue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/client/storage/boltdb"
	"github.com/iudanet/coffeeshop/internal/models"
)

func newTestQueue(t *testing.T) (*Queue, *boltdb.Storage) {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func createOp(tempID, name string) *models.PendingOperation {
	op := models.NewOperation(models.OperationCreate, models.ProductsPath, json.RawMessage(`{"name":"`+name+`"}`))
	op.TempID = tempID
	return op
}

func updateOp(id string) *models.PendingOperation {
	return models.NewOperation(models.OperationUpdate, models.ProductPath(id), json.RawMessage(`{"price":5}`))
}

func deleteOp(id string) *models.PendingOperation {
	return models.NewOperation(models.OperationDelete, models.ProductPath(id), nil)
}

func opIDs(ops []*models.PendingOperation) []string {
	var out []string
	for _, op := range ops {
		out = append(out, op.ID)
	}
	return out
}

func TestEnqueue_PreservesArrivalOrder(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	ops := []*models.PendingOperation{updateOp("3"), createOp("temp_a", "Mocha"), deleteOp("5")}
	for _, op := range ops {
		annihilated, err := q.Enqueue(ctx, op)
		require.NoError(t, err)
		assert.False(t, annihilated)
	}

	got, err := q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, opIDs(ops), opIDs(got))
}

// TestEnqueue_Annihilation Create(tempA) + Delete(tempA) оставляют очередь пустой
func TestEnqueue_Annihilation(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	keep := deleteOp("7")
	_, err := q.Enqueue(ctx, keep)
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, createOp("temp_a", "Mocha"))
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, updateOp("temp_a"))
	require.NoError(t, err)

	annihilated, err := q.Enqueue(ctx, deleteOp("temp_a"))
	require.NoError(t, err)
	assert.True(t, annihilated)

	got, err := q.List(ctx)
	require.NoError(t, err)
	// Ни одной операции, ссылающейся на temp_a
	assert.Equal(t, []string{keep.ID}, opIDs(got))
}

func TestEnqueue_DeleteWithoutPendingCreate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	// Create уже синхронизирован, Delete для temp id должен попасть в очередь
	annihilated, err := q.Enqueue(ctx, deleteOp("temp_gone"))
	require.NoError(t, err)
	assert.False(t, annihilated)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEnqueue_DeleteWhileCreateInFlight(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	create := createOp("temp_a", "Mocha")
	_, err := q.Enqueue(ctx, create)
	require.NoError(t, err)

	batch, err := q.Claim(ctx, nil)
	require.NoError(t, err)
	require.Len(t, batch.Ops, 1)

	// Create уже отправляется - Delete добавляется, а не аннигилирует
	del := deleteOp("temp_a")
	annihilated, err := q.Enqueue(ctx, del)
	require.NoError(t, err)
	assert.False(t, annihilated)

	require.NoError(t, q.Settle(ctx, batch, map[string]bool{create.ID: true}))

	got, err := q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{del.ID}, opIDs(got))
}

func TestEnqueue_Validation(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	// Create без временного id
	bad := models.NewOperation(models.OperationCreate, models.ProductsPath, json.RawMessage(`{}`))
	_, err := q.Enqueue(ctx, bad)
	assert.Error(t, err)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReplaceAll(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, deleteOp("1"))
	require.NoError(t, err)

	failed := updateOp("2")
	require.NoError(t, q.ReplaceAll(ctx, []*models.PendingOperation{failed}))

	got, err := q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{failed.ID}, opIDs(got))
}

func TestClaim_FilterAndSkipInFlight(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	create := createOp("temp_a", "Mocha")
	other := deleteOp("9")
	for _, op := range []*models.PendingOperation{create, other} {
		_, err := q.Enqueue(ctx, op)
		require.NoError(t, err)
	}

	chain, err := q.Claim(ctx, func(op *models.PendingOperation) bool { return op.TempID == "temp_a" })
	require.NoError(t, err)
	assert.Equal(t, []string{create.ID}, opIDs(chain.Ops))

	// Вторая попытка не получает уже захваченную операцию
	rest, err := q.Claim(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, opIDs(rest.Ops))

	q.Release(chain)
	again, err := q.Claim(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{create.ID}, opIDs(again.Ops))
	assert.False(t, again.Empty())
}

func TestSettle_KeepsOperationsEnqueuedDuringDrain(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	first, second := deleteOp("1"), deleteOp("2")
	for _, op := range []*models.PendingOperation{first, second} {
		_, err := q.Enqueue(ctx, op)
		require.NoError(t, err)
	}

	batch, err := q.Claim(ctx, nil)
	require.NoError(t, err)

	// Пока идет drain, пользователь добавил операцию
	late := deleteOp("3")
	_, err = q.Enqueue(ctx, late)
	require.NoError(t, err)

	require.NoError(t, q.Settle(ctx, batch, map[string]bool{first.ID: true}))

	got, err := q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID, late.ID}, opIDs(got))
}

func TestPendingCreate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	create := createOp("temp_a", "Mocha")
	_, err := q.Enqueue(ctx, create)
	require.NoError(t, err)

	op, ok, err := q.PendingCreate(ctx, "temp_a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, create.ID, op.ID)

	_, ok, err = q.PendingCreate(ctx, "temp_b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnqueue_Concurrent(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Enqueue(ctx, deleteOp("1"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Ни одна запись не потеряна
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
