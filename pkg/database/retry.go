package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"
)

// IsConnectivityError reports whether the error looks like a transient
// connectivity failure rather than a business-rule rejection. Only these
// are worth retrying.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Retry runs fn up to attempts times, backing off between tries. Errors
// that are not connectivity failures are returned immediately.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if !IsConnectivityError(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
