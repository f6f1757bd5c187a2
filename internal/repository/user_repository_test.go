package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/model"
)

func newMockUserRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db), mock
}

// users.bio is NOT NULL and TEXT columns cannot carry a default, so the
// registration insert must supply it explicitly or strict-mode MySQL
// rejects the row (error 1364) and no account can ever be created.
func TestCreateSuppliesEveryRequiredColumn(t *testing.T) {
	repo, mock := newMockUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (email, password_hash, display_name, role, bio) VALUES (?,?,?,?,?)")).
		WithArgs("ana@ring.dev", sqlmock.AnyArg(), "Ana", "boxer", "").
		WillReturnResult(sqlmock.NewResult(12, 1))

	id, err := repo.Create(context.Background(), "  Ana@Ring.dev ", "pw123456", "Ana", model.RoleBoxer, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockUserRepo(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'ana@ring.dev' for key 'users.email'"))

	_, err := repo.Create(context.Background(), "ana@ring.dev", "pw123456", "Ana", model.RoleViewer, 4)
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
