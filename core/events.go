package core

import "time"

type (
	// Notifier receives the events emitted after a plan changed.
	// Both hooks are fire-and-forget: callers never wait on them nor inspect a result.
	Notifier interface {
		// Toast posts a transient user-facing message.
		Toast(msg string)
		// Notify appends an entry to the persistent notification log.
		Notify(msg string)
	}

	// Timer is a handle on a scheduled callback.
	Timer interface {
		// Stop prevents the callback from firing. It reports false if it already fired or was stopped.
		Stop() bool
	}

	// Scheduler runs callbacks after a delay.
	Scheduler interface {
		AfterFunc(d time.Duration, f func()) Timer
	}
)

type nopNotifier struct{}

func (nopNotifier) Toast(string)  {}
func (nopNotifier) Notify(string) {}

// NopNotifier discards every event.
var NopNotifier Notifier = nopNotifier{}
