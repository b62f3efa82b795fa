package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/courseplan/apps/api/echo"
	"github.com/trezcool/courseplan/apps/shared"
	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/plan"
	"github.com/trezcool/courseplan/core/profile"
	logsvc "github.com/trezcool/courseplan/services/logger"
	notifysvc "github.com/trezcool/courseplan/services/notify"
	"github.com/trezcool/courseplan/tests"
)

type testApp struct {
	Server
	ledger        *plan.Ledger
	notifications *notifysvc.Log
}

// setup starts a server over the sample plan, after applying `opts` to it.
func setup(t *testing.T, opts ...func(*profile.Profile)) testApp {
	conf := &core.Config{
		AppName:  "Course Plan",
		TestMode: true,
		Server:   core.ServerConfig{DisableReqLogs: true},
	}
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	validate, translator := shared.NewValidator()
	notifications := notifysvc.NewLog()
	state := testutil.DemoState()
	prof := profile.Profile{
		Courses:      testutil.DemoCourses(),
		Completed:    state.Completed,
		Requirements: testutil.DemoRequirements(),
		Enrolled:     state.Enrolled,
	}
	for _, opt := range opts {
		opt(&prof)
	}
	planner, err := shared.NewPlanner(
		prof,
		validate,
		translator,
		notifications,
	)
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	return testApp{
		Server: NewServer(ServerDeps{
			Conf:          conf,
			Logger:        logger,
			Ledger:        planner.Ledger,
			Profile:       planner.Profile,
			Notifications: notifications,
			Validate:      validate,
			Translator:    translator,
		}),
		ledger:        planner.Ledger,
		notifications: notifications,
	}
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func (app testApp) do(method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	app.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal() failed: %v; body %s", err, rec.Body.String())
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, "code")
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			checkCodeAndData(t, tt, app.do(method, tt.path, tt.body))
		})
	}
}
