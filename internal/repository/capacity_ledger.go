package repository

import (
	"context"
)

// RecordPurchase applies a ticket purchase to the event's capacity
// ledger: a set-union append of the buyer into the attendee set plus
// unconditional counter moves (ticketsSold += quantity, remaining -=
// quantity).  Both statements run in one transaction so the membership
// row and the counters move together, matching the single atomic
// document update of the original design.
//
// The quantity<=remaining precondition is the caller's, checked against
// a snapshot read before this call.  The UPDATE carries no
// remaining>=quantity guard on purpose: two concurrent purchasers can
// both pass their snapshot check and drive remaining negative.  See
// DESIGN.md ("purchase race") before adding a conditional write here.
//
// A repeat purchase by the same buyer leaves the membership row alone
// (INSERT IGNORE) but still moves the counters, so a single attendee
// entry can stand for several tickets.
func (r *EventRepo) RecordPurchase(ctx context.Context, eventID, userID uint64, quantity uint32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		"INSERT IGNORE INTO event_attendees (event_id, user_id) VALUES (?,?)",
		eventID, userID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE events SET tickets_sold = tickets_sold + ?, remaining = remaining - ?, updated_at=NOW()
		 WHERE id=?`,
		quantity, quantity, eventID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrEventNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// AddBoxer appends the user to the event's fight card via set-union.
// The operation is idempotent: repeated calls after the first are
// no-ops and return nil.
func (r *EventRepo) AddBoxer(ctx context.Context, eventID, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO event_boxers (event_id, user_id) VALUES (?,?)",
		eventID, userID)
	return err
}
