package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/handler"
	"github.com/oliFYP/RingReady/internal/middleware"
	"github.com/oliFYP/RingReady/internal/model"
)

// RegisterAttendee registers endpoints available to any authenticated
// role: ticket purchase, boxer application, the dashboard and the
// caller's own profile.  Purchase is deliberately open to all three
// roles; the boxer-only restriction on /join is enforced inside the
// handler so the mismatch produces its own error message rather than a
// generic forbidden.
func RegisterAttendee(e *echo.Echo, t *handler.TicketHandler, p *handler.ProfileHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleBoxer, model.RoleViewer, model.RoleOrganizer),
	)
	g.POST("/events/:id/purchase", t.Purchase)
	g.POST("/events/:id/join", t.Join)
	g.GET("/dashboard", t.Dashboard)
	g.GET("/profile", p.Get)
	g.PUT("/profile", p.Update)
}
