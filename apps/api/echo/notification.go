package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	notifysvc "github.com/trezcool/courseplan/services/notify"
)

type notificationApi struct {
	log *notifysvc.Log
}

func registerNotificationAPI(g *echo.Group, deps ServerDeps) {
	api := notificationApi{log: deps.Notifications}

	ng := g.Group("/notifications")
	ng.GET("", api.query)
	ng.POST("/:id/read", api.markRead)
}

type notificationsResponse struct {
	Unread  int               `json:"unread"`
	Entries []notifysvc.Entry `json:"entries"`
}

// Handlers

func (api *notificationApi) query(ctx echo.Context) error {
	entries := api.log.Entries()
	if entries == nil {
		entries = []notifysvc.Entry{}
	}
	return ctx.JSON(http.StatusOK, notificationsResponse{
		Unread:  api.log.Unread(),
		Entries: entries,
	})
}

func (api *notificationApi) markRead(ctx echo.Context) error {
	entry, err := api.log.MarkRead(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entry)
}
