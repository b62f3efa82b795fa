package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_notificationApi(t *testing.T) {
	app := setup(t)

	type entry struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		Read    bool   `json:"read"`
	}
	var data struct {
		Unread  int     `json:"unread"`
		Entries []entry `json:"entries"`
	}

	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"unread": 0, "entries": []}`)},
		app.do(http.MethodGet, "/v1/notifications"))

	_, err := app.ledger.AddCourse("BIO 1200")
	require.NoError(t, err)
	_, err = app.ledger.DropCourse("WRT 1060")
	require.NoError(t, err)

	rec := app.do(http.MethodGet, "/v1/notifications")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &data)
	assert.Equal(t, 2, data.Unread)
	require.Len(t, data.Entries, 2)
	assert.Equal(t, "Dropped-course confirmation: WRT 1060.", data.Entries[0].Message)
	assert.Equal(t, "Added BIO 1200. Confirmation sent.", data.Entries[1].Message)

	rec = app.do(http.MethodPost, "/v1/notifications/"+data.Entries[1].ID+"/read")
	require.Equal(t, http.StatusOK, rec.Code)
	var read entry
	unmarshal(t, rec, &read)
	assert.Equal(t, data.Entries[1].ID, read.ID)
	assert.True(t, read.Read)

	rec = app.do(http.MethodGet, "/v1/notifications")
	unmarshal(t, rec, &data)
	assert.Equal(t, 1, data.Unread)

	runHTTPTests(t, app, []httpTest{
		{
			name: "unknown entry", method: http.MethodPost, path: "/v1/notifications/lol/read", wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "notification not found"}`),
		},
		{name: "unknown route", path: "/v1/lol", wantCode: http.StatusNotFound},
	})
}
