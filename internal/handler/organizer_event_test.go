package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/blob"
	"github.com/oliFYP/RingReady/internal/repository"
)

// Validation rejections happen before any store access; the
// repositories sit over a nil handle, so a write slipping through would
// panic the test.
func newOrganizerHandler(t *testing.T) *OrganizerHandler {
	t.Helper()
	blobs, err := blob.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return NewOrganizerHandler(repository.NewEventRepo(nil), repository.NewUserRepo(nil), blobs)
}

func newCreateEventContext(t *testing.T, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(4))
	c.Set("role", "organizer")
	return c, rec
}

func eventForm(price string) url.Values {
	return url.Values{
		"title":        {"Mega Card"},
		"location":     {"Las Vegas"},
		"date":         {"2026-11-20"},
		"ticket_price": {price},
		"capacity":     {"100"},
	}
}

// Prices land in a uint32 cents column; a value past the cap would wrap
// the conversion into a bogus small price, so it is rejected up front.
func TestCreateEventRejectsOversizedTicketPrice(t *testing.T) {
	h := newOrganizerHandler(t)
	c, rec := newCreateEventContext(t, eventForm("50000000"))
	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ticket_price")
}

func TestCreateEventRejectsNegativeTicketPrice(t *testing.T) {
	h := newOrganizerHandler(t)
	c, rec := newCreateEventContext(t, eventForm("-5"))
	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEventRequiresTitle(t *testing.T) {
	h := newOrganizerHandler(t)
	form := eventForm("25")
	form.Del("title")
	c, rec := newCreateEventContext(t, form)
	require.NoError(t, h.CreateEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
