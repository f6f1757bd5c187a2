package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/handler"
	"github.com/oliFYP/RingReady/internal/middleware"
	"github.com/oliFYP/RingReady/internal/model"
)

// RegisterOrganizer registers endpoints restricted to the organizer
// role: event creation and the organizer's own-event listing.  The role
// gate runs before the handlers, so a viewer or boxer attempting to
// create an event is rejected without touching the store.
func RegisterOrganizer(e *echo.Echo, h *handler.OrganizerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleOrganizer),
	)
	g.POST("/events", h.CreateEvent)
	g.GET("/my-events", h.MyEvents)
}
