package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockEventRepo(t *testing.T) (*EventRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewEventRepo(db), mock
}

// A purchase is one transaction carrying the set-union membership append
// and both counter moves, so the attendee row and the ledger never
// drift apart.
func TestRecordPurchaseMovesCountersWithMembership(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT IGNORE INTO event_attendees (event_id, user_id) VALUES (?,?)")).
		WithArgs(9, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE events SET tickets_sold = tickets_sold + ?, remaining = remaining - ?, updated_at=NOW()")).
		WithArgs(3, 3, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.RecordPurchase(context.Background(), 9, 7, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A repeat buyer keeps a single membership row (the INSERT IGNORE hits
// the composite key and touches nothing) while the counters still move,
// so one attendee entry can stand for several tickets.
func TestRecordPurchaseRepeatBuyerKeepsSingleMembershipRow(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT IGNORE INTO event_attendees").
		WithArgs(9, 7).
		WillReturnResult(sqlmock.NewResult(0, 0)) // duplicate key, row untouched
	mock.ExpectExec("UPDATE events SET tickets_sold").
		WithArgs(2, 2, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.RecordPurchase(context.Background(), 9, 7, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPurchaseUnknownEventRollsBack(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT IGNORE INTO event_attendees").
		WithArgs(404, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE events SET tickets_sold").
		WithArgs(1, 1, 404).
		WillReturnResult(sqlmock.NewResult(0, 0)) // no such event
	mock.ExpectRollback()

	err := repo.RecordPurchase(context.Background(), 404, 7, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Joining twice is a no-op after the first call: both calls succeed and
// the fight card holds the boxer once.
func TestAddBoxerIdempotent(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT IGNORE INTO event_boxers (event_id, user_id) VALUES (?,?)")).
		WithArgs(9, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT IGNORE INTO event_boxers").
		WithArgs(9, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AddBoxer(context.Background(), 9, 5))
	require.NoError(t, repo.AddBoxer(context.Background(), 9, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
