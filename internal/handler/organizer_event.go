package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oliFYP/RingReady/internal/blob"
	"github.com/oliFYP/RingReady/internal/model"
	"github.com/oliFYP/RingReady/internal/repository"
)

// OrganizerHandler bundles dependencies for event creation and the
// organizer's own-event listing.  All routes using it sit behind
// JWTAuth + RequireRole(organizer), so a non-organizer never reaches
// these methods.
// Ticket prices are stored as uint32 cents; the cap keeps the
// conversion well inside that range.
const maxTicketPrice = 1_000_000

type OrganizerHandler struct {
	Events *repository.EventRepo
	Users  *repository.UserRepo
	Blobs  *blob.DiskStore
}

func NewOrganizerHandler(events *repository.EventRepo, users *repository.UserRepo, blobs *blob.DiskStore) *OrganizerHandler {
	if events == nil || users == nil || blobs == nil {
		panic("nil dependency passed to NewOrganizerHandler")
	}
	return &OrganizerHandler{Events: events, Users: users, Blobs: blobs}
}

// CreateEvent handles POST /v1/events (multipart form).  Form fields:
// title, description, location, date (YYYY-MM-DD), time (HH:MM),
// ticket_price (currency units), capacity, and an optional "image"
// file part stored via the blob store.  Remaining is initialized to
// capacity and capacity is immutable afterwards.
func (h *OrganizerHandler) CreateEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	location := strings.TrimSpace(c.FormValue("location"))
	dateStr := strings.TrimSpace(c.FormValue("date"))
	timeStr := strings.TrimSpace(c.FormValue("time"))
	if title == "" || location == "" || dateStr == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, location and date are required"})
	}

	// the event date carries the time-of-day component when one is given
	layout, stamp := "2006-01-02", dateStr
	if timeStr != "" {
		layout, stamp = "2006-01-02 15:04", dateStr+" "+timeStr
	}
	date, err := time.Parse(layout, stamp)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date or time"})
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("ticket_price")), 64)
	if err != nil || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_price must be a non-negative number"})
	}
	if price > maxTicketPrice {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_price is too large"})
	}
	capacity, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("capacity")), 10, 32)
	if err != nil || capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	// organizerName is stamped from the creator's profile at creation time
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}
	organizerName := u.DisplayName
	if organizerName == "" {
		organizerName = "Event Organizer"
	}

	// optional poster upload; a missing part is fine, a broken one is a 400
	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image upload"})
		}
		key, saveErr := h.Blobs.Save(fh.Filename, src)
		_ = src.Close()
		if saveErr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store image failed"})
		}
		imageURL = h.Blobs.URL(key)
	}

	e := model.Event{
		Title:         title,
		Description:   description,
		Location:      location,
		Date:          date.UTC(),
		TimeOfDay:     timeStr,
		PriceCents:    uint32(math.Round(price * 100)),
		Capacity:      uint32(capacity),
		CreatedBy:     userID,
		OrganizerName: organizerName,
		ImageURL:      imageURL,
	}
	id, err := h.Events.Create(ctx, e)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}

	created, err := h.Events.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"event": toEventView(created)})
}

// MyEvents handles GET /v1/my-events: the organizer's created events,
// date ascending.
func (h *OrganizerHandler) MyEvents(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Events.ListByOrganizer(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load events"})
	}
	return c.JSON(http.StatusOK, echo.Map{"events": toEventViews(events)})
}
