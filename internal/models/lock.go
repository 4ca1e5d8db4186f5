package models

import "time"

// DefaultGraceWindow время, в течение которого захваченный sync lock считается живым
const DefaultGraceWindow = 30 * time.Second

// SyncLock токен взаимного исключения для попыток синхронизации
type SyncLock struct {
	AcquiredAt time.Time `json:"acquired_at"`
	Owner      string    `json:"owner"`
}

// Age returns how long the lock has been held at instant now
func (l SyncLock) Age(now time.Time) time.Duration {
	return now.Sub(l.AcquiredAt)
}

// LockPolicy определяет, когда захваченный lock считается брошенным
type LockPolicy struct {
	GraceWindow time.Duration
}

// DefaultLockPolicy returns the policy with DefaultGraceWindow
func DefaultLockPolicy() LockPolicy {
	return LockPolicy{GraceWindow: DefaultGraceWindow}
}

// IsStale сообщает, что lock старше grace window и может быть перехвачен
func (p LockPolicy) IsStale(lock SyncLock, now time.Time) bool {
	window := p.GraceWindow
	if window <= 0 {
		window = DefaultGraceWindow
	}
	return lock.Age(now) >= window
}
