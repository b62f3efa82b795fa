package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
)

type courseApi struct {
	ledger *plan.Ledger
}

func registerCourseAPI(g *echo.Group, deps ServerDeps) {
	api := courseApi{ledger: deps.Ledger}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.GET("/:code", api.retrieve, courseMiddleware(api.ledger))
	cg.POST("/:code/seat-openings", api.openSeat)
}

func newCourseResponse(snap plan.Snapshot, c course.Course) courseResponse {
	return courseResponse{
		Course:   c,
		Times:    c.SessionsText(),
		Enrolled: snap.IsEnrolled(c.Code),
		Position: snap.Position(c.Code),
	}
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	snap, err := getContextSnapshot(ctx, api.ledger)
	if err != nil {
		return errors.Wrap(err, "getting context snapshot")
	}
	courses := make([]courseResponse, 0, len(snap.Catalog))
	for _, code := range snap.Catalog {
		courses = append(courses, newCourseResponse(snap, snap.Courses[code]))
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	c, err := getContextCourse(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context course")
	}
	snap, err := getContextSnapshot(ctx, api.ledger)
	if err != nil {
		return errors.Wrap(err, "getting context snapshot")
	}
	return ctx.JSON(http.StatusOK, courseDetailResponse{
		courseResponse: newCourseResponse(snap, c),
		Details:        c.Details(),
	})
}

// openSeat is the feed for external capacity changes. It always succeeds.
func (api *courseApi) openSeat(ctx echo.Context) error {
	api.ledger.ResolveSeatOpening(codeParam(ctx))
	return ctx.NoContent(http.StatusNoContent)
}
