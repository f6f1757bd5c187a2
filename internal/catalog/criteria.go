// Package catalog implements the in-memory event catalog filter: a pure,
// order-preserving subsequence selection over a fetched event list.  The
// HTTP layer fetches the full catalog ordered by date and applies Filter
// on every request, which keeps the predicate logic independent of the
// storage engine and directly testable.
package catalog

import "strings"

// DateRange buckets an event date relative to "today".
type DateRange string

const (
	DateAll       DateRange = "all"
	DateThisWeek  DateRange = "thisWeek"
	DateThisMonth DateRange = "thisMonth"
)

// PriceRange buckets the ticket price.  The buckets are a single-select
// control: exactly one price predicate is active at a time, so the fact
// that e.g. under50 overlaps paid is deliberate and harmless.
type PriceRange string

const (
	PriceAll      PriceRange = "all"
	PriceFree     PriceRange = "free"
	PriceUnder50  PriceRange = "under50"
	PriceUnder100 PriceRange = "under100"
	PricePaid     PriceRange = "paid"
)

// Criteria holds the user-entered filter state.  The zero value means
// "no filter": empty strings and unset buckets exclude nothing, so
// resetting the filters is just replacing Criteria with its zero value.
type Criteria struct {
	Query     string     // free text, matched against title and location
	Location  string     // substring matched against location only
	DateRange DateRange  // all | thisWeek | thisMonth
	Price     PriceRange // all | free | under50 | under100 | paid
}

// ParseCriteria builds Criteria from raw query-string values.  Unknown
// bucket values fall back to "all" rather than erroring; a typo in a
// filter control should widen the result set, not break the page.
func ParseCriteria(query, location, dateRange, priceRange string) Criteria {
	c := Criteria{
		Query:     strings.TrimSpace(query),
		Location:  strings.TrimSpace(location),
		DateRange: DateAll,
		Price:     PriceAll,
	}
	switch DateRange(dateRange) {
	case DateThisWeek, DateThisMonth:
		c.DateRange = DateRange(dateRange)
	}
	switch PriceRange(priceRange) {
	case PriceFree, PriceUnder50, PriceUnder100, PricePaid:
		c.Price = PriceRange(priceRange)
	}
	return c
}
