package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const retryDelay = 20 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой по ключу key.
// Если за время wait блокировку получить не удалось, safeCode не выполняется и возвращается success = false.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(retryDelay):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// IsLocked ключ сейчас занят
func IsLocked(key string) bool {
	_, ok := lockMap.Load(key)
	return ok
}
