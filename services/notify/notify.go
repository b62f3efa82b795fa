package notifysvc

import (
	"net/mail"

	"github.com/trezcool/courseplan/core"
)

// Fanout forwards every event to all of its notifiers, in order.
type Fanout []core.Notifier

var _ core.Notifier = Fanout(nil)

func (f Fanout) Toast(msg string) {
	for _, n := range f {
		n.Toast(msg)
	}
}

func (f Fanout) Notify(msg string) {
	for _, n := range f {
		n.Notify(msg)
	}
}

// Toaster writes toasts to the logger. The presentation layer owns how long they stay on screen.
type Toaster struct {
	logger core.Logger
}

var _ core.Notifier = (*Toaster)(nil)

func NewToaster(logger core.Logger) *Toaster {
	return &Toaster{logger: logger}
}

func (t *Toaster) Toast(msg string) { t.logger.Info("toast: " + msg) }
func (t *Toaster) Notify(string)    {}

// Mailer emails every notification to the student.
type Mailer struct {
	mailSvc core.EmailService
	to      mail.Address
}

var _ core.Notifier = (*Mailer)(nil)

// NewMailer mails notifications to `to`. Nothing is sent while `to` has no address.
func NewMailer(mailSvc core.EmailService, to mail.Address) *Mailer {
	return &Mailer{mailSvc: mailSvc, to: to}
}

func (m *Mailer) Toast(string) {}

func (m *Mailer) Notify(msg string) {
	if m.to.Address == "" {
		return
	}
	m.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{m.to},
		Subject: "Course plan update",
		Body:    msg,
	})
}
