package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/conflict"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/suggest"
	"github.com/trezcool/courseplan/core/timetable"
)

type planApi struct {
	ledger       *plan.Ledger
	requirements []course.Code
	validate     *validator.Validate
}

func registerPlanAPI(g *echo.Group, deps ServerDeps) {
	api := planApi{
		ledger:       deps.Ledger,
		requirements: deps.Profile.Requirements,
		validate:     deps.Validate,
	}

	pg := g.Group("/plan")
	pg.GET("", api.retrieve)
	pg.POST("/courses", api.addCourse)
	pg.DELETE("/courses/:code", api.dropCourse)
	pg.PUT("/courses/:code/sessions", api.switchSession)
	pg.GET("/conflicts", api.conflicts)
	pg.GET("/timetable", api.timetable)
	pg.GET("/suggestions", api.suggestions)
	pg.POST("/suggestions/:index/apply", api.applySuggestion)
}

type (
	planCard struct {
		courseResponse
		Conflict bool          `json:"conflict"`
		Missing  []course.Code `json:"missing,omitempty"`
	}

	planResponse struct {
		Courses   []planCard          `json:"courses"`
		Credits   int                 `json:"credits"`
		Waitlist  map[course.Code]int `json:"waitlist"`
		Conflicts conflict.Set        `json:"conflicts"`
		Warnings  []plan.Warning      `json:"warnings"`
	}

	suggestionResponse struct {
		suggest.Item
		Index      int  `json:"index"`
		Actionable bool `json:"actionable"`
	}
)

// snapshot returns the request's snapshot for read-only handlers.
func (api *planApi) snapshot(ctx echo.Context) (plan.Snapshot, error) {
	return getContextSnapshot(ctx, api.ledger)
}

// Handlers

func (api *planApi) retrieve(ctx echo.Context) error {
	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	conflicts := conflict.Detect(snap.EnrolledCourses())

	cards := make([]planCard, 0, len(snap.Enrolled))
	for _, c := range snap.Search(ctx.QueryParam("search")) {
		cards = append(cards, planCard{
			courseResponse: newCourseResponse(snap, c),
			Conflict:       conflicts.Has(c.Code),
			Missing:        c.MissingPrereqs(snap.Completed),
		})
	}
	warnings := snap.Warnings()
	if warnings == nil {
		warnings = []plan.Warning{}
	}
	return ctx.JSON(http.StatusOK, planResponse{
		Courses:   cards,
		Credits:   snap.Credits(),
		Waitlist:  snap.Waitlist,
		Conflicts: conflicts,
		Warnings:  warnings,
	})
}

func (api *planApi) addCourse(ctx echo.Context) error {
	var data AddCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AddCourseRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	out, err := api.ledger.AddCourse(data.Code)
	if err != nil {
		if errors.Cause(err) == course.ErrUnknownCourse {
			return unknownCourseError(api.ledger, data.Code)
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, out)
}

func (api *planApi) dropCourse(ctx echo.Context) error {
	dropped, err := api.ledger.DropCourse(codeParam(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dropped)
}

func (api *planApi) switchSession(ctx echo.Context) error {
	code := codeParam(ctx)

	var data SwitchSessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SwitchSessionRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if err := api.ledger.SwitchSession(code, *data.Alternative); err != nil {
		if errors.Cause(err) == course.ErrUnknownCourse {
			return unknownCourseError(api.ledger, code)
		}
		return err
	}

	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	c, _ := snap.Course(course.NormalizeCode(code))
	return ctx.JSON(http.StatusOK, newCourseResponse(snap, c))
}

func (api *planApi) conflicts(ctx echo.Context) error {
	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, conflict.Detect(snap.EnrolledCourses()))
}

func (api *planApi) timetable(ctx echo.Context) error {
	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	courses := snap.EnrolledCourses()
	return ctx.JSON(http.StatusOK, timetable.Build(courses, conflict.Detect(courses)))
}

func (api *planApi) suggestions(ctx echo.Context) error {
	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	items := suggest.Generate(snap, api.requirements, nil)
	res := make([]suggestionResponse, 0, len(items))
	for i, it := range items {
		res = append(res, suggestionResponse{
			Item:       it,
			Index:      i,
			Actionable: it.Kind == suggest.KindSwitch || it.Kind == suggest.KindAdd,
		})
	}
	return ctx.JSON(http.StatusOK, res)
}

// applySuggestion regenerates the suggestions and applies the one at `:index`.
// The list may have changed since it was fetched; the current one wins.
func (api *planApi) applySuggestion(ctx echo.Context) error {
	idx, err := indexParam(ctx)
	if err != nil {
		return err
	}
	snap, err := api.snapshot(ctx)
	if err != nil {
		return err
	}
	items := suggest.Generate(snap, api.requirements, api.ledger)
	if idx >= len(items) {
		return errHttpNotFound
	}
	if err = items[idx].Apply(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
