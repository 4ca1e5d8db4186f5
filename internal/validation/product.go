package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iudanet/coffeeshop/pkg/api"
)

// ErrInvalidProduct оборачивает все ошибки валидации продукта
var ErrInvalidProduct = errors.New("invalid product")

const (
	// MaxNameLen максимальная длина названия продукта
	MaxNameLen = 100
	// MaxDescriptionLen максимальная длина описания
	MaxDescriptionLen = 1000
)

// ValidateProductInput проверяет продукт перед созданием
// Все поля кроме image обязательны, цена строго положительная
func ValidateProductInput(in api.ProductInput) error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidProduct)
	}
	if err := validateDescription(in.Description); err != nil {
		return err
	}
	return validatePrice(in.Price)
}

// ValidateProductPatch проверяет только переданные поля частичного обновления
func ValidateProductPatch(patch api.ProductPatch) error {
	if patch.Name == nil && patch.Category == nil && patch.Description == nil &&
		patch.Image == nil && patch.Price == nil {
		return fmt.Errorf("%w: update has no fields", ErrInvalidProduct)
	}

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidProduct)
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Price != nil {
		return validatePrice(*patch.Price)
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProduct)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidProduct, MaxNameLen)
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidProduct)
	}
	if len(description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidProduct, MaxDescriptionLen)
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrInvalidProduct)
	}
	return nil
}
