package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/config"
	"github.com/oliFYP/RingReady/internal/repository"
)

func newAuthHandler(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 15, RefreshTTLDays: 7, BcryptCost: 4}
	return NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db)), mock
}

func newRegisterContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Registration must write a complete user row — bio included, since the
// column is NOT NULL and TEXT cannot carry a default — then store the
// hashed refresh token before answering 201.
func TestRegisterCreatesAccount(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (email, password_hash, display_name, role, bio) VALUES (?,?,?,?,?)")).
		WithArgs("rocky@ring.dev", sqlmock.AnyArg(), "Rocky", "boxer", "").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := newRegisterContext(t, `{"email":"Rocky@Ring.dev","password":"secret123","display_name":"Rocky","role":"boxer"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"boxer"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	h, mock := newAuthHandler(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'rocky@ring.dev' for key 'users.email'"))

	c, rec := newRegisterContext(t, `{"email":"rocky@ring.dev","password":"secret123","display_name":"Rocky","role":"boxer"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	h, _ := newAuthHandler(t)

	// closed enumeration: no silent default, no store access
	c, rec := newRegisterContext(t, `{"email":"rocky@ring.dev","password":"secret123","display_name":"Rocky","role":"admin"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
