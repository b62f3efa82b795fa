package echoapi

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/suggest"
	logsvc "github.com/trezcool/courseplan/services/logger"
	notifysvc "github.com/trezcool/courseplan/services/notify"
)

func Test_newAppHTTPErrorHandler(t *testing.T) {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{})
	logger.Enable(false)
	handler := newAppHTTPErrorHandler(logger, core.NewTranslator())

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "http error", err: echo.NewHTTPError(http.StatusTeapot, "short and stout"),
			wantCode: http.StatusTeapot, wantBody: `{"error": "short and stout"}`,
		},
		{
			name: "validation error", err: core.NewValidationError(nil, core.FieldError{Field: "code", Error: "this field is required"}),
			wantCode: http.StatusBadRequest, wantBody: `{"code": "this field is required"}`,
		},
		{
			name:     "prerequisites",
			err:      errors.Wrap(&plan.PrereqError{Course: "CSI 2300", Missing: []course.Code{"CSI 1200"}}, "adding"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error": "prerequisite needed for CSI 2300: CSI 1200", "missing": ["CSI 1200"]}`,
		},
		{
			name: "unknown course", err: errors.Wrap(course.ErrUnknownCourse, "getting course"),
			wantCode: http.StatusNotFound, wantBody: `{"error": "unknown course"}`,
		},
		{
			name: "not enrolled", err: plan.ErrNotEnrolled,
			wantCode: http.StatusNotFound, wantBody: `{"error": "course is not in plan"}`,
		},
		{
			name: "unknown notification", err: notifysvc.ErrEntryNotFound,
			wantCode: http.StatusNotFound, wantBody: `{"error": "notification not found"}`,
		},
		{
			name: "unknown alternative", err: course.ErrUnknownAlternative,
			wantCode: http.StatusBadRequest, wantBody: `{"error": "unknown alternative"}`,
		},
		{
			name: "no action", err: suggest.ErrNoAction,
			wantCode: http.StatusBadRequest, wantBody: `{"error": "suggestion has no action"}`,
		},
		{
			name: "already enrolled", err: errors.WithStack(plan.ErrAlreadyEnrolled),
			wantCode: http.StatusConflict, wantBody: `{"error": "course already in plan"}`,
		},
		{
			name: "anything else", err: errors.New("boom"),
			wantCode: http.StatusInternalServerError, wantBody: `{"error": "Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			handler(tt.err, echo.New().NewContext(req, rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
