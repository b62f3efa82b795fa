package echoapi

import (
	"fmt"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/suggest"
	notifysvc "github.com/trezcool/courseplan/services/notify"
)

var errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// unknownCourseError answers 404 with a "did you mean" hint when a catalog code looks alike.
func unknownCourseError(ledger *plan.Ledger, code string) error {
	msg := echo.Map{"error": fmt.Sprintf("unknown course: %s", course.NormalizeCode(code))}
	if snap, err := ledger.Snapshot(); err == nil {
		if match, ok := course.Closest(snap.Catalog, code); ok {
			msg["hint"] = fmt.Sprintf("did you mean %s?", match)
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *plan.PrereqError:
			code = http.StatusBadRequest
			message = echo.Map{"error": origErr.Error(), "missing": origErr.Missing}
		default:
			switch origErr {
			case course.ErrUnknownCourse, plan.ErrNotEnrolled, notifysvc.ErrEntryNotFound:
				code = http.StatusNotFound
				message = origErr.Error()
			case course.ErrUnknownAlternative, suggest.ErrNoAction:
				code = http.StatusBadRequest
				message = origErr.Error()
			case plan.ErrAlreadyEnrolled:
				code = http.StatusConflict
				message = origErr.Error()
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg))
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
