package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/coffeeshop/pkg/api"
)

func ptr[T any](v T) *T { return &v }

func TestValidateProductInput(t *testing.T) {
	valid := api.ProductInput{
		Name:        "Mocha",
		Category:    "Classic Coffee",
		Description: "A chocolatey delight with an espresso kick",
		Price:       6.5,
	}

	tests := []struct {
		name    string
		mutate  func(*api.ProductInput)
		wantErr bool
	}{
		{"valid", func(*api.ProductInput) {}, false},
		{"valid without image", func(p *api.ProductInput) { p.Image = "" }, false},
		{"empty name", func(p *api.ProductInput) { p.Name = "  " }, true},
		{"empty category", func(p *api.ProductInput) { p.Category = "" }, true},
		{"empty description", func(p *api.ProductInput) { p.Description = "" }, true},
		{"zero price", func(p *api.ProductInput) { p.Price = 0 }, true},
		{"negative price", func(p *api.ProductInput) { p.Price = -1 }, true},
		{"NaN price", func(p *api.ProductInput) { p.Price = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateProductInput(in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProduct)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProductPatch(t *testing.T) {
	assert.ErrorIs(t, ValidateProductPatch(api.ProductPatch{}), ErrInvalidProduct)
	assert.NoError(t, ValidateProductPatch(api.ProductPatch{Price: ptr(4.2)}))
	assert.ErrorIs(t, ValidateProductPatch(api.ProductPatch{Price: ptr(0.0)}), ErrInvalidProduct)
	assert.ErrorIs(t, ValidateProductPatch(api.ProductPatch{Name: ptr("")}), ErrInvalidProduct)
	assert.NoError(t, ValidateProductPatch(api.ProductPatch{Image: ptr("")}))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("captain@coffee.shop"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Captain <captain@coffee.shop>"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.Error(t, ValidatePassword(""))
}
