package models

import (
	"strings"

	"github.com/google/uuid"
)

// TempIDPrefix зарезервированный префикс временных идентификаторов.
// Сервер никогда не выдает id с этим префиксом.
const TempIDPrefix = "temp_"

// NewTempID генерирует новый временный идентификатор
func NewTempID() string {
	return TempIDPrefix + uuid.NewString()
}

// IsTempID проверяет, является ли id временным
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}
