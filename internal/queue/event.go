// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published after a successful ticket purchase.
// It carries enough information for downstream consumers to log, notify
// or feed analytics without querying the primary database.
type TicketIssuedEvent struct {
	EventID    uint64 `json:"event_id"`
	EventTitle string `json:"event_title"`
	Location   string `json:"location"`
	UserID     uint64 `json:"user_id"`
	Quantity   uint32 `json:"quantity"`
	TotalCents uint64 `json:"total_cents"`
	Remaining  int32  `json:"remaining"`
	IssuedAt   string `json:"issued_at"`
}

// BoxerJoinedEvent is published when a boxer is added to an event's
// fight card.  Re-joins are idempotent upstream, so consumers may still
// see at most one message per (event, boxer) pair per successful call.
type BoxerJoinedEvent struct {
	EventID    uint64 `json:"event_id"`
	EventTitle string `json:"event_title"`
	UserID     uint64 `json:"user_id"`
	JoinedAt   string `json:"joined_at"`
}
