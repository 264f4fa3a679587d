package database

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitReady_EventuallySucceeds(t *testing.T) {
	calls := 0
	err := waitReady(context.Background(), "test", RetryPolicy{Retries: 5, Interval: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWaitReady_GivesUp(t *testing.T) {
	calls := 0
	err := waitReady(context.Background(), "test", RetryPolicy{Retries: 2, Interval: time.Millisecond}, func() error {
		calls++
		return errors.New("down")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 1 try + 2 retries, got %d", calls)
	}
}

func TestWaitReady_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := waitReady(ctx, "test", RetryPolicy{Retries: 100, Interval: time.Hour}, func() error {
		return errors.New("down")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected embedded migrations")
	}
}
