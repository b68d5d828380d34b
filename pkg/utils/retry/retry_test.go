package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimesWait(t *testing.T) {
	model := Times(5).Wait(2 * time.Second)

	if model.retry != 5 {
		t.Errorf("expected retry=5, got %d", model.retry)
	}
	if model.waitTime != 2*time.Second {
		t.Errorf("expected waitTime=2s, got %s", model.waitTime)
	}
}

func TestTry_ActionSucceedsImmediately(t *testing.T) {
	model := Times(3).Wait(0)

	calls := 0
	err := model.Try(func(attempt uint) error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestTry_ActionFailsThenSucceeds(t *testing.T) {
	model := Times(3).Wait(0)

	calls := 0
	err := model.Try(func(attempt uint) error {
		calls++
		if attempt < 1 {
			return errors.New("fail")
		}
		return nil
	})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestTry_ActionAlwaysFails(t *testing.T) {
	model := Times(3).Wait(0)

	calls := 0
	err := model.Try(func(attempt uint) error {
		calls++
		return errors.New("fail")
	})
	if err == nil {
		t.Error("expected error, got nil")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestTry_StopOnNonRetryableError(t *testing.T) {
	forbidden := errors.New("forbidden")
	model := Times(5).Wait(0).StopOn(func(err error) bool {
		return errors.Is(err, forbidden)
	})

	calls := 0
	err := model.Try(func(attempt uint) error {
		calls++
		return forbidden
	})
	if !errors.Is(err, forbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call (stop on forbidden), got %d", calls)
	}
}

func TestTryWithContext_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	model := Times(5).Wait(time.Hour)

	calls := 0
	err := model.TryWithContext(ctx, func(attempt uint) error {
		calls++
		cancel()
		return errors.New("fail")
	})
	if err == nil {
		t.Error("expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestTry_NilAction(t *testing.T) {
	if err := Times(2).Try(nil); err == nil {
		t.Error("expected error for nil action, got nil")
	}
}
