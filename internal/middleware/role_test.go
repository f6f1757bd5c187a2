package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/model"
)

func runWithRole(t *testing.T, mw echo.MiddlewareFunc, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, h(c))
	return rec
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	mw := RequireRole(model.RoleOrganizer)
	rec := runWithRole(t, mw, "organizer")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	mw := RequireRole(model.RoleOrganizer)
	rec := runWithRole(t, mw, "viewer")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	mw := RequireRole(model.RoleBoxer, model.RoleViewer, model.RoleOrganizer)
	rec := runWithRole(t, mw, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsUnknownValue(t *testing.T) {
	mw := RequireRole(model.RoleBoxer)
	rec := runWithRole(t, mw, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
