package repository

import (
	"context"
	"database/sql"

	"github.com/oliFYP/RingReady/internal/model"
)

// EventRepo provides persistence for events and their capacity ledger.
// Attendee and boxer membership lives in dedicated join tables with a
// composite primary key, which gives the "set-union append" semantics
// the purchase and join operations rely on: INSERT IGNORE adds an
// identity at most once.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// DB exposes the underlying handle for transaction-scoped work.
func (r *EventRepo) DB() *sql.DB { return r.db }

const eventColumns = `id,title,description,location,event_date,time_of_day,price_cents,capacity,remaining,tickets_sold,created_by,organizer_name,image_url,created_at,updated_at`

// Create inserts a new event.  Remaining starts equal to capacity and
// ticketsSold at zero; capacity is immutable afterwards (there is no
// update statement for it anywhere in this package).
func (r *EventRepo) Create(ctx context.Context, e model.Event) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events
		 (title, description, location, event_date, time_of_day, price_cents, capacity, remaining, tickets_sold, created_by, organizer_name, image_url)
		 VALUES (?,?,?,?,?,?,?,?,0,?,?,?)`,
		e.Title, e.Description, e.Location, e.Date, e.TimeOfDay, e.PriceCents,
		e.Capacity, e.Capacity, e.CreatedBy, e.OrganizerName, e.ImageURL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single event.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// ListAll returns the full catalog ordered by date ascending.  Filtering
// happens in memory in the catalog package, mirroring the
// fetch-once-then-filter flow of the event list page.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, "SELECT "+eventColumns+" FROM events ORDER BY event_date ASC")
}

// ListByOrganizer returns events created by the given user, date ascending.
func (r *EventRepo) ListByOrganizer(ctx context.Context, userID uint64) ([]model.Event, error) {
	return r.list(ctx,
		"SELECT "+eventColumns+" FROM events WHERE created_by=? ORDER BY event_date ASC", userID)
}

// ListAttending returns events whose attendee set contains the given
// user, date ascending.  This is the array-containment query behind the
// dashboard's "my tickets" list.
func (r *EventRepo) ListAttending(ctx context.Context, userID uint64) ([]model.Event, error) {
	return r.list(ctx,
		`SELECT `+eventColumns+` FROM events e
		 JOIN event_attendees a ON a.event_id = e.id
		 WHERE a.user_id=? ORDER BY e.event_date ASC`, userID)
}

// ListCompeting returns events whose boxer roster contains the given user.
func (r *EventRepo) ListCompeting(ctx context.Context, userID uint64) ([]model.Event, error) {
	return r.list(ctx,
		`SELECT `+eventColumns+` FROM events e
		 JOIN event_boxers b ON b.event_id = e.id
		 WHERE b.user_id=? ORDER BY e.event_date ASC`, userID)
}

// Roster loads the attendee and boxer identity lists for an event.
func (r *EventRepo) Roster(ctx context.Context, eventID uint64) (model.EventRoster, error) {
	var roster model.EventRoster
	var err error
	if roster.Attendees, err = r.memberIDs(ctx, "event_attendees", eventID); err != nil {
		return roster, err
	}
	roster.Boxers, err = r.memberIDs(ctx, "event_boxers", eventID)
	return roster, err
}

// IsAttendee reports whether the user already holds a ticket membership
// for the event.  Used to re-derive the "purchased" state on reload.
func (r *EventRepo) IsAttendee(ctx context.Context, eventID, userID uint64) (bool, error) {
	return r.isMember(ctx, "event_attendees", eventID, userID)
}

// IsBoxer reports whether the user is already on the event's fight card.
func (r *EventRepo) IsBoxer(ctx context.Context, eventID, userID uint64) (bool, error) {
	return r.isMember(ctx, "event_boxers", eventID, userID)
}

func (r *EventRepo) isMember(ctx context.Context, table string, eventID, userID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM "+table+" WHERE event_id=? AND user_id=? LIMIT 1", eventID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (r *EventRepo) memberIDs(ctx context.Context, table string, eventID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id FROM "+table+" WHERE event_id=? ORDER BY created_at ASC, user_id ASC", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]uint64, 0, 8)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *EventRepo) list(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Event, 0, 16)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanEvent(row rowScanner) (model.Event, error) {
	var e model.Event
	var imageURL sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &e.TimeOfDay,
		&e.PriceCents, &e.Capacity, &e.Remaining, &e.TicketsSold,
		&e.CreatedBy, &e.OrganizerName, &imageURL, &e.CreatedAt, &e.UpdatedAt)
	if imageURL.Valid {
		e.ImageURL = imageURL.String
	}
	return e, err
}
