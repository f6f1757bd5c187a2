package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog endpoints.  The
// list endpoint accepts the filter query parameters (q, location,
// date_range, price_range); guests can browse and filter events before
// registering.  The optional middleware chain (response cache, rate
// limit) is applied to the list endpoint only: the detail endpoint is
// re-fetched right after a purchase to show the updated roster and
// counters, so it must never serve a cached body.
func RegisterPublic(e *echo.Echo, h *handler.EventHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/v1/events", h.List, mw...)
	e.GET("/v1/events/:id", h.Get)
}
