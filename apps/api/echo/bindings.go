package echoapi

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/course"
)

type (
	AddCourseRequest struct {
		Code string `json:"code" validate:"notblank"`
	}

	SwitchSessionRequest struct {
		Alternative *int `json:"alternative" validate:"required,min=0"`
	}
)

// codeParam returns the unescaped `:code` path param.
func codeParam(ctx echo.Context) string {
	raw := ctx.Param("code")
	if code, err := url.PathUnescape(raw); err == nil {
		return code
	}
	return raw
}

// indexParam parses the `:index` path param.
func indexParam(ctx echo.Context) (int, error) {
	idx, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || idx < 0 {
		return 0, errors.Wrap(errHttpNotFound, "parsing index")
	}
	return idx, nil
}

type courseResponse struct {
	course.Course
	Times    string `json:"times"`
	Enrolled bool   `json:"enrolled"`
	Position int    `json:"waitlist_position,omitempty"`
}

type courseDetailResponse struct {
	courseResponse
	Details string `json:"details"`
}
