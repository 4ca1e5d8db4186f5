package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductID_JSON(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":12,"name":"Latte"}`), &p))
	assert.Equal(t, ProductID("12"), p.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"temp_x","name":"Latte"}`), &p))
	assert.Equal(t, ProductID("temp_x"), p.ID)

	data, err := json.Marshal(Product{ID: "12"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":12`)

	data, err = json.Marshal(Product{ID: "gen_3"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"gen_3"`)

	data, err = json.Marshal(Product{Name: "no id"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)
}

func TestProductQuery_RoundTrip(t *testing.T) {
	q := ProductQuery{Search: "latte", Category: "Classic Coffee", Sort: "desc", Page: 2, Limit: 5}

	assert.Equal(t, q, ParseProductQuery(q.Values()))
	assert.Empty(t, ProductQuery{}.Encode())
}

func TestParseProductQuery_Defaults(t *testing.T) {
	q := ParseProductQuery(map[string][]string{"page": {"-1"}, "limit": {"abc"}})
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)

	// Без limit пагинации нет
	q = ParseProductQuery(map[string][]string{})
	assert.Equal(t, 0, q.Limit)

	q = ParseProductQuery(map[string][]string{"limit": {"500"}})
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestStatusError(t *testing.T) {
	err := fmt.Errorf("get product: %w", &StatusError{StatusCode: 404, Message: "Product not found"})

	assert.True(t, IsNotFound(err))
	assert.Equal(t, 404, StatusCode(err))
	assert.Contains(t, err.Error(), "Product not found")

	assert.False(t, IsNotFound(errors.New("dial tcp: refused")))
	assert.Equal(t, 0, StatusCode(nil))
}
