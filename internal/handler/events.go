package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/catalog"
	"github.com/oliFYP/RingReady/internal/model"
	"github.com/oliFYP/RingReady/internal/repository"
)

// EventHandler serves the public event catalog: the filtered list and
// single-event detail views.  No authentication is required so guests
// can browse before registering.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(events *repository.EventRepo) *EventHandler {
	if events == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Events: events}
}

// eventView is the wire shape of an event.  Price is duplicated as
// cents and currency units the way clients expect to consume it.
type eventView struct {
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	Date          string  `json:"date"`
	TimeOfDay     string  `json:"time_of_day"`
	PriceCents    uint32  `json:"price_cents"`
	Price         float64 `json:"price"`
	Capacity      uint32  `json:"capacity"`
	Remaining     int32   `json:"remaining"`
	TicketsSold   uint32  `json:"tickets_sold"`
	OrganizerName string  `json:"organizer_name"`
	ImageURL      string  `json:"image_url,omitempty"`
}

func toEventView(e model.Event) eventView {
	return eventView{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		Date:          e.Date.UTC().Format(time.RFC3339),
		TimeOfDay:     e.TimeOfDay,
		PriceCents:    e.PriceCents,
		Price:         e.Price(),
		Capacity:      e.Capacity,
		Remaining:     e.Remaining,
		TicketsSold:   e.TicketsSold,
		OrganizerName: e.OrganizerName,
		ImageURL:      e.ImageURL,
	}
}

func toEventViews(events []model.Event) []eventView {
	out := make([]eventView, 0, len(events))
	for _, e := range events {
		out = append(out, toEventView(e))
	}
	return out
}

// List handles GET /v1/events.  The full catalog is fetched ordered by
// date ascending, then narrowed in memory by the catalog filter using
// the q / location / date_range / price_range query parameters.  With no
// parameters set the response is the unfiltered catalog in stored order.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load events"})
	}

	crit := catalog.ParseCriteria(
		c.QueryParam("q"),
		c.QueryParam("location"),
		c.QueryParam("date_range"),
		c.QueryParam("price_range"),
	)
	filtered := catalog.Filter(events, crit, time.Now().UTC())

	return c.JSON(http.StatusOK, echo.Map{
		"events": toEventViews(filtered),
		"total":  len(filtered),
	})
}

// Get handles GET /v1/events/:id.  The response carries the attendee
// and boxer identity lists alongside the event so clients can re-derive
// membership ("purchased" / "applied") state on reload.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load event"})
	}
	roster, err := h.Events.Roster(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load event"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"event":     toEventView(e),
		"attendees": roster.Attendees,
		"boxers":    roster.Boxers,
	})
}
