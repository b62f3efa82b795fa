package plan

import (
	"time"

	"github.com/trezcool/courseplan/core"
)

// ScheduleSeatOpening resolves a seat opening for the course once `delay` elapsed.
// Stop the returned timer to cancel it.
func (l *Ledger) ScheduleSeatOpening(sched core.Scheduler, code string, delay time.Duration) core.Timer {
	return sched.AfterFunc(delay, func() { l.ResolveSeatOpening(code) })
}

// ScheduleReminder posts `msg` to the notification log once `delay` elapsed.
func ScheduleReminder(sched core.Scheduler, notifier core.Notifier, msg string, delay time.Duration) core.Timer {
	return sched.AfterFunc(delay, func() {
		notifier.Notify(msg)
		notifier.Toast("Registration reminder posted to Notifications.")
	})
}
