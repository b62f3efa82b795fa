package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/courseplan/core/profile"
)

type planData struct {
	Courses []struct {
		Code     string   `json:"code"`
		Conflict bool     `json:"conflict"`
		Missing  []string `json:"missing"`
	} `json:"courses"`
	Credits   int            `json:"credits"`
	Waitlist  map[string]int `json:"waitlist"`
	Conflicts []string       `json:"conflicts"`
	Warnings  []interface{}  `json:"warnings"`
}

func (app testApp) plan(t *testing.T, query string) planData {
	rec := app.do(http.MethodGet, "/v1/plan"+query)
	require.Equal(t, http.StatusOK, rec.Code)
	var data planData
	unmarshal(t, rec, &data)
	return data
}

func Test_planApi_retrieve(t *testing.T) {
	app := setup(t)

	data := app.plan(t, "")
	assert.Equal(t, 16, data.Credits)
	require.Len(t, data.Courses, 4)
	assert.Equal(t, "CSI 2300", data.Courses[0].Code)
	assert.Equal(t, "WRT 1060", data.Courses[3].Code)
	assert.Empty(t, data.Conflicts)
	assert.NotNil(t, data.Conflicts)
	assert.NotNil(t, data.Warnings)
	assert.Empty(t, data.Waitlist)

	data = app.plan(t, "?search=calculus")
	require.Len(t, data.Courses, 1)
	assert.Equal(t, "MTH 1554", data.Courses[0].Code)
	assert.Equal(t, 16, data.Credits)
}

func Test_planApi_addCourse(t *testing.T) {
	app := setup(t)
	body := func(code string) []byte { return []byte(fmt.Sprintf(`{"code": %q}`, code)) }
	path := "/v1/plan/courses"

	runHTTPTests(t, app, []httpTest{
		{
			name: "seat assigned", method: http.MethodPost, path: path, body: body(" bio  1200"), wantCode: http.StatusCreated,
			wantData: []byte(`{"kind": "seat_assigned", "course": "BIO 1200", "remaining_seats": 3, "position": 0}`),
		},
		{
			name: "already enrolled", method: http.MethodPost, path: path, body: body("BIO 1200"), wantCode: http.StatusConflict,
			wantData: []byte(`{"error": "course already in plan"}`),
		},
		{
			name: "blank code", method: http.MethodPost, path: path, body: body("  "), wantCode: http.StatusBadRequest,
			wantData: []byte(`{"code": "this field cannot be blank"}`),
		},
		{
			name: "unknown course", method: http.MethodPost, path: path, body: body("PHY 151"), wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "unknown course: PHY 151", "hint": "did you mean PHY 1510?"}`),
		},
		{name: "bad json", method: http.MethodPost, path: path, body: []byte(`{"code": `), wantCode: http.StatusBadRequest},
	})
}

func Test_planApi_waitlist(t *testing.T) {
	app := setup(t, func(p *profile.Profile) {
		p.Courses[4].Seats = 0 // BIO 1200
	})
	path := "/v1/plan/courses"
	body := []byte(`{"code": "BIO 1200"}`)

	runHTTPTests(t, app, []httpTest{
		{
			name: "waitlisted", method: http.MethodPost, path: path, body: body, wantCode: http.StatusCreated,
			wantData: []byte(`{"kind": "waitlisted", "course": "BIO 1200", "remaining_seats": 0, "position": 1}`),
		},
		{
			name: "waitlisted again", method: http.MethodPost, path: path, body: body, wantCode: http.StatusCreated,
			wantData: []byte(`{"kind": "waitlisted", "course": "BIO 1200", "remaining_seats": 0, "position": 2}`),
		},
		{
			name: "not enrolled", method: http.MethodDelete, path: "/v1/plan/courses/BIO%201200", wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "course is not in plan"}`),
		},
	})
	data := app.plan(t, "")
	assert.Equal(t, map[string]int{"BIO 1200": 2}, data.Waitlist)
	assert.Len(t, data.Courses, 4)

	rec := app.do(http.MethodPost, "/v1/courses/BIO%201200/seat-openings")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, map[string]int{"BIO 1200": 1}, app.plan(t, "").Waitlist)

	rec = app.do(http.MethodPost, "/v1/courses/BIO%201200/seat-openings")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, app.plan(t, "").Waitlist)

	runHTTPTests(t, app, []httpTest{
		{
			name: "seat assigned", method: http.MethodPost, path: path, body: body, wantCode: http.StatusCreated,
			wantData: []byte(`{"kind": "seat_assigned", "course": "BIO 1200", "remaining_seats": 1, "position": 0}`),
		},
		{
			name: "dropped", method: http.MethodDelete, path: "/v1/plan/courses/BIO%201200", wantCode: http.StatusOK,
			wantData: []byte(`{"course": "BIO 1200", "remaining_seats": 2}`),
		},
	})

	entries := app.notifications.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, "Dropped-course confirmation: BIO 1200.", entries[0].Message)
	assert.Equal(t, "Added BIO 1200. Confirmation sent.", entries[1].Message)
	assert.Equal(t, "Seat opened for BIO 1200! You're off the waitlist, add it now.", entries[2].Message)
	assert.Equal(t, "Seat opened for BIO 1200! Your waitlist is now #1.", entries[3].Message)
	assert.Equal(t, "Waitlist update: BIO 1200 → position #2", entries[4].Message)
	assert.Equal(t, "Waitlist update: BIO 1200 → position #1", entries[5].Message)
}

func Test_planApi_switchSession(t *testing.T) {
	app := setup(t)
	path := "/v1/plan/courses/MTH%201554/sessions"

	runHTTPTests(t, app, []httpTest{
		{
			name: "alternative required", method: http.MethodPut, path: path, body: []byte(`{}`), wantCode: http.StatusBadRequest,
			wantData: []byte(`{"alternative": "this field is required"}`),
		},
		{name: "negative alternative", method: http.MethodPut, path: path, body: []byte(`{"alternative": -1}`), wantCode: http.StatusBadRequest},
		{
			name: "unknown alternative", method: http.MethodPut, path: path, body: []byte(`{"alternative": 1}`), wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "unknown alternative"}`),
		},
		{
			name: "unknown course", method: http.MethodPut, path: "/v1/plan/courses/LOL/sessions", body: []byte(`{"alternative": 0}`),
			wantCode: http.StatusNotFound, wantData: []byte(`{"error": "unknown course: LOL"}`),
		},
	})

	// BIO 1200 meets T/Th 9:00-10:30, the alternative T/Th 8:30-10:00
	rec := app.do(http.MethodPost, "/v1/plan/courses", []byte(`{"code": "BIO 1200"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, app.plan(t, "").Conflicts)

	rec = app.do(http.MethodPut, path, []byte(`{"alternative": 0}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var c struct {
		Code  string `json:"code"`
		Times string `json:"times"`
	}
	unmarshal(t, rec, &c)
	assert.Equal(t, "MTH 1554", c.Code)
	assert.Equal(t, "Tue 8:30 AM–10:00 AM • Thu 8:30 AM–10:00 AM", c.Times)

	data := app.plan(t, "")
	assert.Equal(t, []string{"BIO 1200", "MTH 1554"}, data.Conflicts)
	for _, card := range data.Courses {
		assert.Equal(t, card.Code == "BIO 1200" || card.Code == "MTH 1554", card.Conflict, card.Code)
	}

	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`["BIO 1200", "MTH 1554"]`)},
		app.do(http.MethodGet, "/v1/plan/conflicts"))
}

func Test_planApi_timetable(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodGet, "/v1/plan/timetable")
	require.Equal(t, http.StatusOK, rec.Code)

	var grid struct {
		Days []string `json:"days"`
		Rows []struct {
			Label string `json:"label"`
			Break bool   `json:"break"`
		} `json:"rows"`
		Events []struct {
			Course string `json:"course"`
			Column int    `json:"column"`
			Row    int    `json:"row"`
		} `json:"events"`
	}
	unmarshal(t, rec, &grid)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, grid.Days)
	require.Len(t, grid.Rows, 9)
	assert.True(t, grid.Rows[3].Break)
	require.Len(t, grid.Events, 10)
	assert.Equal(t, "CSI 2300", grid.Events[0].Course)
	assert.Equal(t, 0, grid.Events[0].Column)
	assert.Equal(t, 0, grid.Events[0].Row)
}

func Test_planApi_suggestions(t *testing.T) {
	app := setup(t)

	type suggestion struct {
		Index      int    `json:"index"`
		Kind       string `json:"kind"`
		Course     string `json:"course"`
		Title      string `json:"title"`
		Actionable bool   `json:"actionable"`
	}
	suggestions := func() []suggestion {
		rec := app.do(http.MethodGet, "/v1/plan/suggestions")
		require.Equal(t, http.StatusOK, rec.Code)
		var items []suggestion
		unmarshal(t, rec, &items)
		return items
	}

	assert.Equal(t, []suggestion{
		{Index: 0, Kind: "switch", Course: "CSI 2300", Title: "Switch CSI 2300 to T/Th 2:00–3:15", Actionable: true},
		{Index: 1, Kind: "switch", Course: "MTH 1554", Title: "Switch MTH 1554 to T/Th 8:30–10:00", Actionable: true},
		{Index: 2, Kind: "add", Course: "BIO 1200", Title: "Add BIO 1200 — Intro Biology (4 cr)", Actionable: true},
	}, suggestions())

	runHTTPTests(t, app, []httpTest{
		{name: "apply add", method: http.MethodPost, path: "/v1/plan/suggestions/2/apply", wantCode: http.StatusNoContent},
		{
			name: "out of range", method: http.MethodPost, path: "/v1/plan/suggestions/2/apply", wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "not found"}`),
		},
		{name: "not an index", method: http.MethodPost, path: "/v1/plan/suggestions/lol/apply", wantCode: http.StatusNotFound},
	})
	snap, err := app.ledger.Snapshot()
	require.NoError(t, err)
	assert.True(t, snap.IsEnrolled("BIO 1200"))

	// nothing left to suggest once the switchable courses are dropped
	for _, code := range []string{"CSI%202300", "MTH%201554"} {
		rec := app.do(http.MethodDelete, "/v1/plan/courses/"+code)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, []suggestion{{Index: 0, Kind: "none", Title: "No new suggestions"}}, suggestions())

	runHTTPTests(t, app, []httpTest{
		{
			name: "no action", method: http.MethodPost, path: "/v1/plan/suggestions/0/apply", wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error": "suggestion has no action"}`),
		},
	})
}
