package repository

import (
	"database/sql/driver"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

// Kebijakan retry untuk gangguan koneksi database yang sifatnya sementara.
// Error validasi/constraint/not-found tidak pernah di-retry.
const (
	maxRetries        = 3
	retryBaseDelay    = 100 * time.Millisecond
	backoffMultiplier = 2
)

// withRetry menjalankan operasi storage dengan retry terbatas dan
// exponential backoff. Hanya error koneksi transien yang diulang.
func withRetry(fn func() error) error {
	var lastErr error
	delay := retryBaseDelay
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) || attempt == maxRetries {
			return lastErr
		}
		log.Printf("Operasi database gagal (percobaan %d/%d), ulang dalam %s: %v",
			attempt+1, maxRetries+1, delay, lastErr)
		time.Sleep(delay)
		delay *= backoffMultiplier
	}
	return lastErr
}

// isTransient mengenali error koneksi yang layak diulang.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"i/o timeout",
		"invalid connection",
		"no such host",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
