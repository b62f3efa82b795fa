package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/courseplan/apps/api/echo"
	"github.com/trezcool/courseplan/apps/shared"
	"github.com/trezcool/courseplan/core"
	emailsvc "github.com/trezcool/courseplan/services/email"
	logsvc "github.com/trezcool/courseplan/services/logger"
	notifysvc "github.com/trezcool/courseplan/services/notify"
	schedsvc "github.com/trezcool/courseplan/services/scheduler"
)

type EventLoggerParam struct {
	dig.In
	Logger core.Logger `name:"eventLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newEventLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "EVENT : ", log.LstdFlags|log.Lmicroseconds)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, log.New(os.Stdout, "MAIL : ", log.LstdFlags))
	}
	return emailsvc.NewSendgridService(conf, logger)
}

// newNotifier fans the ledger's events out to the notification log, the event logger and the mailer.
func newNotifier(
	conf *core.Config,
	notifications *notifysvc.Log,
	loggerParam EventLoggerParam,
	mailSvc core.EmailService,
) core.Notifier {
	return notifysvc.Fanout{
		notifications,
		notifysvc.NewToaster(loggerParam.Logger),
		notifysvc.NewMailer(mailSvc, conf.StudentEmail),
	}
}

func newPlanner(
	conf *core.Config,
	logger core.Logger,
	validate *validator.Validate,
	translator ut.Translator,
	notifier core.Notifier,
) *shared.Planner {
	planner, err := shared.OpenPlanner(conf.ProfilePath, validate, translator, notifier)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading profile: %v", err), err)
	}
	return planner
}

func newServerDeps(
	conf *core.Config,
	logger core.Logger,
	planner *shared.Planner,
	notifications *notifysvc.Log,
	validate *validator.Validate,
	translator ut.Translator,
) echoapi.ServerDeps {
	return echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		Ledger:        planner.Ledger,
		Profile:       planner.Profile,
		Notifications: notifications,
		Validate:      validate,
		Translator:    translator,
	}
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newEventLogger, dig.Name("eventLogger")))
	must(c.Provide(newEmailService))
	must(c.Provide(shared.NewValidator))
	must(c.Provide(notifysvc.NewLog))
	must(c.Provide(newNotifier))
	must(c.Provide(newPlanner))
	must(c.Provide(schedsvc.New))
	must(c.Provide(newServerDeps))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
