package storage

import (
	"database/sql/driver"
	"errors"
	"net"
	"time"
)

const (
	retryAttempts = 3
	retryDelay    = 100 * time.Millisecond
)

// withRetry re-runs fn on connection-level failures only. Transient store
// failures are recovered here at the adapter boundary; callers never see a
// distinct error kind for them. Row-level outcomes (no rows, constraint
// violations) are returned immediately.
func withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
