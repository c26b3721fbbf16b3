package debounce

import (
	"errors"
	"sync"
	"time"
)

var ErrStopped = errors.New("debounce: debouncer stopped")

// Debouncer owns a single pending save intent. Trigger re-arms the
// deadline, replacing any prior pending intent; once a quiet period of
// the configured delay elapses with no further triggers, one signal is
// emitted on C. At most one intent is pending at a time.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	deadline time.Time
	pending  bool
	out      chan struct{}
	wakeup   chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Debouncer{
		delay:  delay,
		out:    make(chan struct{}, 1),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// C delivers one signal per elapsed quiet period.
func (d *Debouncer) C() <-chan struct{} {
	return d.out
}

func (d *Debouncer) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	go d.loop()
}

// Stop cancels any pending intent and joins the loop. It is idempotent.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.stopCh)
	d.mu.Unlock()
	<-d.doneCh
}

// Trigger arms (or re-arms) the pending intent at now+delay.
func (d *Debouncer) Trigger() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return ErrStopped
	}
	d.pending = true
	d.deadline = time.Now().Add(d.delay)
	d.signalWakeup()
	return nil
}

// Cancel clears the pending intent without emitting.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = false
	d.signalWakeup()
}

func (d *Debouncer) loop() {
	defer close(d.doneCh)
	defer close(d.out)

	var timer *time.Timer
	for {
		deadline, armed := d.peek()
		if !armed {
			select {
			case <-d.wakeup:
				continue
			case <-d.stopCh:
				return
			}
		}

		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			if d.takeDue(time.Now()) {
				select {
				case d.out <- struct{}{}:
				default:
				}
			}
		case <-d.wakeup:
			continue
		case <-d.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (d *Debouncer) signalWakeup() {
	select {
	case d.wakeup <- struct{}{}:
	default:
	}
}

func (d *Debouncer) peek() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deadline, d.pending
}

// takeDue consumes the pending intent if its quiet period has elapsed.
// A Trigger racing the timer pushes the deadline forward, so a stale
// fire leaves the intent armed.
func (d *Debouncer) takeDue(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending || d.deadline.After(now) {
		return false
	}
	d.pending = false
	return true
}

func resetTimer(timer *time.Timer, wait time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(wait)
	}
	stopTimer(timer)
	timer.Reset(wait)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
