package debounce

import (
	"testing"
	"time"
)

func TestCoalescesRapidTriggersIntoOneSignal(t *testing.T) {
	d := New(120 * time.Millisecond)
	d.Start()
	defer d.Stop()

	// Mutations at t=0, 30, 60ms: the quiet period restarts each time
	// and exactly one signal lands after the last trigger.
	for i := 0; i < 3; i++ {
		if err := d.Trigger(); err != nil {
			t.Fatalf("trigger %d: %v", i, err)
		}
		time.Sleep(30 * time.Millisecond)
	}

	waitSignal(t, d.C(), time.Second)

	select {
	case <-d.C():
		t.Fatal("expected a single coalesced signal")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestSignalArrivesAfterQuietPeriod(t *testing.T) {
	d := New(80 * time.Millisecond)
	d.Start()
	defer d.Stop()

	start := time.Now()
	if err := d.Trigger(); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	waitSignal(t, d.C(), time.Second)
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("signal before quiet period elapsed: %v", elapsed)
	}
}

func TestCancelClearsPendingIntent(t *testing.T) {
	d := New(60 * time.Millisecond)
	d.Start()
	defer d.Stop()

	if err := d.Trigger(); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	d.Cancel()

	select {
	case <-d.C():
		t.Fatal("cancelled intent must not emit")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestStopIsIdempotentAndRejectsTriggers(t *testing.T) {
	d := New(50 * time.Millisecond)
	d.Start()
	d.Stop()
	d.Stop()

	if err := d.Trigger(); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func waitSignal(t *testing.T, ch <-chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for debounce signal")
	}
}
