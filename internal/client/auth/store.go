package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/coffeeshop/internal/client/storage"
)

// TokenSource returns a token provider for the HTTP client. Истекший или
// отсутствующий токен дает пустую строку, запрос уходит без Authorization.
func TokenSource(store storage.AuthStorage, logger *slog.Logger) func(ctx context.Context) string {
	return func(ctx context.Context) string {
		data, err := store.GetAuth(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrAuthNotFound) {
				logger.Debug("Failed to read auth data", "error", err)
			}
			return ""
		}
		if isExpired(data.ExpiresAt, time.Now()) {
			return ""
		}
		return data.Token
	}
}

// isExpired нулевое время означает токен без срока действия
func isExpired(expiresAt, now time.Time) bool {
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}
