package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/pkg/api"
)

func TestTempID(t *testing.T) {
	id := NewTempID()
	assert.True(t, IsTempID(id))
	assert.NotEqual(t, id, NewTempID())
	assert.False(t, IsTempID("42"))
	assert.False(t, IsTempID("gen_1"))
}

func TestParseProductPath(t *testing.T) {
	tests := []struct {
		path   string
		wantID string
		wantOK bool
	}{
		{"/products/42", "42", true},
		{"/products/temp_abc", "temp_abc", true},
		{"/products/42?x=1", "42", true},
		{"/products", "", false},
		{"/products/", "", false},
		{"/products/categories", "", false},
		{"/products/1/extra", "", false},
		{"/orders/1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, ok := ParseProductPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	assert.True(t, IsCollectionPath("/products?page=2"))
	assert.False(t, IsCollectionPath("/products/1"))
}

func TestOperationKind_Method(t *testing.T) {
	assert.Equal(t, http.MethodPost, OperationCreate.Method())
	assert.Equal(t, http.MethodPut, OperationUpdate.Method())
	assert.Equal(t, http.MethodDelete, OperationDelete.Method())

	kind, err := KindFromMethod(http.MethodPut)
	require.NoError(t, err)
	assert.Equal(t, OperationUpdate, kind)

	_, err = KindFromMethod(http.MethodGet)
	assert.Error(t, err)
}

func TestPendingOperation_Validate(t *testing.T) {
	create := NewOperation(OperationCreate, ProductsPath, json.RawMessage(`{"name":"Mocha"}`))
	assert.Error(t, create.Validate(), "create without temp id")

	create.TempID = NewTempID()
	assert.NoError(t, create.Validate())

	update := NewOperation(OperationUpdate, ProductPath("1"), nil)
	assert.Error(t, update.Validate(), "update without payload")

	del := NewOperation(OperationDelete, ProductPath("1"), nil)
	assert.NoError(t, del.Validate())

	del.TempID = NewTempID()
	assert.Error(t, del.Validate())
}

func TestLockPolicy_IsStale(t *testing.T) {
	now := time.Now()
	policy := LockPolicy{GraceWindow: 30 * time.Second}

	fresh := SyncLock{Owner: "a", AcquiredAt: now.Add(-2 * time.Second)}
	old := SyncLock{Owner: "a", AcquiredAt: now.Add(-31 * time.Second)}

	assert.False(t, policy.IsStale(fresh, now))
	assert.True(t, policy.IsStale(old, now))

	// Нулевая политика использует окно по умолчанию
	assert.False(t, LockPolicy{}.IsStale(fresh, now))
	assert.True(t, LockPolicy{}.IsStale(old, now))
}

func TestCachedProduct_JSON(t *testing.T) {
	p := CachedProduct{
		Product:   api.Product{ID: "temp_1", Name: "Mocha", Price: 6.5},
		IsOffline: true,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"_isOffline":true`)
	assert.Contains(t, string(data), `"id":"temp_1"`)

	var decoded CachedProduct
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Espresso","price":5,"_synced":true}`), &decoded))
	assert.Equal(t, api.ProductID("7"), decoded.ID)
	assert.True(t, decoded.IsSynced)
	assert.Equal(t, "7", decoded.Key())
}

func TestCategoryRank(t *testing.T) {
	assert.Equal(t, 0, CategoryRank("Classic Coffee"))
	assert.Equal(t, 3, CategoryRank("Teas"))
	assert.Equal(t, len(CategoryOrder), CategoryRank("Pastries"))
}
