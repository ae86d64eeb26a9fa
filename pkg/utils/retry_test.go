package utils

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Errorf("expected success, got %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
	})

	t.Run("returns last error after max attempts", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("still down")
		err := Retry(cfg, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
	})

	t.Run("stop errors are not retried", func(t *testing.T) {
		calls := 0
		notFound := errors.New("not found")
		err := Retry(cfg, func() error {
			calls++
			return fmt.Errorf("lookup: %w", notFound)
		}, notFound)
		if !errors.Is(err, notFound) {
			t.Errorf("expected %v, got %v", notFound, err)
		}
		if calls != 1 {
			t.Errorf("expected 1 attempt, got %d", calls)
		}
	})
}
