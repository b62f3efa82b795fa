package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
)

var (
	contextSnapshotKey = "snapshot"
	contextCourseKey   = "course"

	errCourseNotFoundInCtx = errors.New("course object not found in echo.Context")
)

// courseMiddleware resolves the `:code` path param to a catalog course, or answers 404 with a hint.
func courseMiddleware(ledger *plan.Ledger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			code := codeParam(ctx)
			snap, err := getContextSnapshot(ctx, ledger)
			if err != nil {
				return errors.Wrap(err, "getting context snapshot")
			}
			c, ok := snap.Course(course.NormalizeCode(code))
			if !ok {
				return unknownCourseError(ledger, code)
			}
			ctx.Set(contextCourseKey, c)
			return next(ctx)
		}
	}
}

// getContextSnapshot returns the request's snapshot, taking it on first use.
// Handlers mutating the plan must take a fresh one afterwards.
func getContextSnapshot(ctx echo.Context, ledger *plan.Ledger) (plan.Snapshot, error) {
	if snap, ok := ctx.Get(contextSnapshotKey).(plan.Snapshot); ok {
		return snap, nil
	}
	snap, err := ledger.Snapshot()
	if err != nil {
		return plan.Snapshot{}, errors.Wrap(err, "taking snapshot")
	}
	ctx.Set(contextSnapshotKey, snap)
	return snap, nil
}

func getContextCourse(ctx echo.Context) (course.Course, error) {
	if c, ok := ctx.Get(contextCourseKey).(course.Course); ok {
		return c, nil
	}
	return course.Course{}, errCourseNotFoundInCtx
}
