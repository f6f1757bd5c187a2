package model

import "time"

// Event represents a scheduled boxing exhibition with a ticketed
// capacity and an open fighter roster.  Capacity is fixed at creation;
// Remaining and TicketsSold move together under the ledger invariant
// remaining + ticketsSold == capacity.  Remaining is signed because the
// purchase precondition is checked against a possibly stale snapshot
// (see DESIGN.md), so concurrent purchasers can drive it negative.
//
// Fields:
//  ID            – primary key identifier.
//  Title         – event title.
//  Description   – long-form description.
//  Location      – venue / city text, matched by the catalog filters.
//  Date          – calendar date (with time component) of the event.
//  TimeOfDay     – display time as entered by the organizer, e.g. "19:30".
//  PriceCents    – ticket price in cents; zero means a free event.
//  Capacity      – total tickets, fixed at creation, >= 1.
//  Remaining     – tickets still available.
//  TicketsSold   – tickets sold so far.
//  CreatedBy     – user id of the organizer who created the event.
//  OrganizerName – display name of the organizer at creation time.
//  ImageURL      – optional poster reference under /uploads.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Event struct {
	ID            uint64    // events.id
	Title         string    // events.title
	Description   string    // events.description
	Location      string    // events.location
	Date          time.Time // events.event_date
	TimeOfDay     string    // events.time_of_day
	PriceCents    uint32    // events.price_cents
	Capacity      uint32    // events.capacity
	Remaining     int32     // events.remaining
	TicketsSold   uint32    // events.tickets_sold
	CreatedBy     uint64    // events.created_by
	OrganizerName string    // events.organizer_name
	ImageURL      string    // events.image_url (empty when no poster)
	CreatedAt     time.Time // events.created_at
	UpdatedAt     time.Time // events.updated_at
}

// EventRoster carries the membership lists attached to an event
// document: the identities that hold tickets and the boxers on the
// roster.  Both have set semantics — an identity appears at most once.
type EventRoster struct {
	Attendees []uint64
	Boxers    []uint64
}

// Price returns the ticket price in currency units for display.
func (e Event) Price() float64 { return float64(e.PriceCents) / 100.0 }
