package catalog

import (
	"strings"
	"time"

	"github.com/oliFYP/RingReady/internal/model"
)

// Filter returns the subsequence of events passing every active
// predicate in c, preserving input order.  It never mutates its input
// and has no side effects; now supplies "today" for the date buckets so
// callers (and tests) control the clock.
func Filter(events []model.Event, c Criteria, now time.Time) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if Matches(e, c, now) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a single event passes all predicates.  The
// predicates are conjunctive; an empty criterion never excludes.
func Matches(e model.Event, c Criteria, now time.Time) bool {
	return matchesQuery(e, c.Query) &&
		matchesLocation(e, c.Location) &&
		matchesDate(e, c.DateRange, now) &&
		matchesPrice(e, c.Price)
}

// matchesQuery passes when the query is empty or case-insensitively
// contained in the title or the location.  An event with an empty title
// and location is excluded by any non-empty query: substring containment
// against an absent value is false.
func matchesQuery(e model.Event, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}

func matchesLocation(e model.Event, loc string) bool {
	if loc == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Location), strings.ToLower(loc))
}

// matchesDate implements the date buckets.  thisWeek is the closed
// window [today, today+7d].  thisMonth advances the month component via
// AddDate(0, 1, 0), which follows Go's normalization: Jan 31 + 1 month
// lands on Mar 3 (Mar 2 in leap years), not Feb 28.  That end-of-month
// policy is intentional and relied on by the tests.
func matchesDate(e model.Event, r DateRange, now time.Time) bool {
	switch r {
	case DateThisWeek:
		end := now.AddDate(0, 0, 7)
		return !e.Date.Before(now) && !e.Date.After(end)
	case DateThisMonth:
		end := now.AddDate(0, 1, 0)
		return !e.Date.Before(now) && !e.Date.After(end)
	default:
		return true
	}
}

func matchesPrice(e model.Event, r PriceRange) bool {
	switch r {
	case PriceFree:
		return e.PriceCents == 0
	case PricePaid:
		return e.PriceCents > 0
	case PriceUnder50:
		return e.PriceCents <= 50_00
	case PriceUnder100:
		return e.PriceCents <= 100_00
	default:
		return true
	}
}
