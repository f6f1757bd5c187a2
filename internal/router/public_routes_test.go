package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/handler"
	"github.com/oliFYP/RingReady/internal/repository"
)

var eventCols = []string{
	"id", "title", "description", "location", "event_date", "time_of_day",
	"price_cents", "capacity", "remaining", "tickets_sold",
	"created_by", "organizer_name", "image_url", "created_at", "updated_at",
}

// The shared public chain (response cache, rate limit) wraps the list
// endpoint only.  The detail endpoint is what clients re-fetch right
// after a purchase to re-derive membership and show the updated
// counters, so it must always hit the store.
func TestRegisterPublicWrapsListOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := echo.New()
	var wrapped []string
	marker := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			wrapped = append(wrapped, c.Path())
			return next(c)
		}
	}
	RegisterPublic(e, handler.NewEventHandler(repository.NewEventRepo(db)), marker)

	mock.ExpectQuery("SELECT (.+) FROM events ORDER BY event_date ASC").
		WillReturnRows(sqlmock.NewRows(eventCols))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/v1/events"}, wrapped)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM events WHERE id=\\?").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(9, "Fight Night", "", "LA", now, "19:00", 5000, 100, 97, 3, 2, "Promo Org", "", now, now))
	mock.ExpectQuery("SELECT user_id FROM event_attendees").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))
	mock.ExpectQuery("SELECT user_id FROM event_boxers").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events/9", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/v1/events"}, wrapped) // detail stayed unwrapped
	assert.NoError(t, mock.ExpectationsWereMet())
}
