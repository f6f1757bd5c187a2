package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliFYP/RingReady/internal/model"
)

// fixed clock for all date-bucket tests
var now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func days(n int) time.Time { return now.AddDate(0, 0, n) }

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: 1, Title: "Golden Gloves", Location: "Chicago", PriceCents: 45_00, Date: days(3)},
		{ID: 2, Title: "Fight Night", Location: "LA", PriceCents: 0, Date: days(10)},
		{ID: 3, Title: "Title Bout", Location: "New York", PriceCents: 120_00, Date: days(40)},
		{ID: 4, Title: "Open Sparring", Location: "Chicago South Side", PriceCents: 60_00, Date: days(25)},
	}
}

func TestFilterDefaultCriteriaReturnsAllInOrder(t *testing.T) {
	events := sampleEvents()
	got := Filter(events, Criteria{}, now)
	require.Len(t, got, len(events))
	for i := range events {
		assert.Equal(t, events[i].ID, got[i].ID)
	}
}

func TestFilterQueryMatchesTitleOrLocation(t *testing.T) {
	events := sampleEvents()

	got := Filter(events, Criteria{Query: "gloves"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Golden Gloves", got[0].Title)

	// matches location, case-insensitively
	got = Filter(events, Criteria{Query: "CHICAGO"}, now)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(4), got[1].ID)

	got = Filter(events, Criteria{Query: "no such thing"}, now)
	assert.Empty(t, got)
}

func TestFilterQueryAgainstMissingFieldsExcludes(t *testing.T) {
	events := []model.Event{{ID: 9}} // no title, no location
	assert.Empty(t, Filter(events, Criteria{Query: "x"}, now))
	assert.Empty(t, Filter(events, Criteria{Location: "x"}, now))
	// an empty criterion never excludes
	assert.Len(t, Filter(events, Criteria{}, now), 1)
}

func TestFilterLocationSubstring(t *testing.T) {
	got := Filter(sampleEvents(), Criteria{Location: "chicago"}, now)
	require.Len(t, got, 2)

	// location filter ignores title text
	got = Filter(sampleEvents(), Criteria{Location: "gloves"}, now)
	assert.Empty(t, got)
}

func TestFilterPriceBuckets(t *testing.T) {
	events := sampleEvents()

	free := Filter(events, Criteria{Price: PriceFree}, now)
	require.Len(t, free, 1)
	assert.Equal(t, uint32(0), free[0].PriceCents)

	// paid is exactly the complement of free
	paid := Filter(events, Criteria{Price: PricePaid}, now)
	assert.Len(t, paid, len(events)-len(free))
	for _, e := range paid {
		assert.Greater(t, e.PriceCents, uint32(0))
	}

	under50 := Filter(events, Criteria{Price: PriceUnder50}, now)
	require.Len(t, under50, 2) // 45.00 and free

	// under50 is a superset of free
	ids := map[uint64]bool{}
	for _, e := range under50 {
		ids[e.ID] = true
	}
	for _, e := range free {
		assert.True(t, ids[e.ID])
	}

	under100 := Filter(events, Criteria{Price: PriceUnder100}, now)
	assert.Len(t, under100, 3) // everything but the 120.00 bout
}

func TestFilterDateThisWeek(t *testing.T) {
	events := []model.Event{
		{ID: 1, Date: days(-1)}, // yesterday: out
		{ID: 2, Date: now},      // today: in
		{ID: 3, Date: days(7)},  // boundary: in
		{ID: 4, Date: days(8)},  // out
	}
	got := Filter(events, Criteria{DateRange: DateThisWeek}, now)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

func TestFilterDateThisMonth(t *testing.T) {
	end := now.AddDate(0, 1, 0) // Apr 10
	events := []model.Event{
		{ID: 1, Date: days(-1)},
		{ID: 2, Date: days(20)},
		{ID: 3, Date: end},
		{ID: 4, Date: end.AddDate(0, 0, 1)},
	}
	got := Filter(events, Criteria{DateRange: DateThisMonth}, now)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, uint64(3), got[1].ID)
}

// Jan 31 + 1 month normalizes to Mar 3 (2026 is not a leap year) under
// AddDate; the bucket is wider than a calendar month at month ends and
// that is the documented behavior, not a bug.
func TestFilterDateMonthEndNormalization(t *testing.T) {
	jan31 := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	feb28 := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	mar3 := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	mar4 := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	events := []model.Event{{ID: 1, Date: feb28}, {ID: 2, Date: mar3}, {ID: 3, Date: mar4}}
	got := Filter(events, Criteria{DateRange: DateThisMonth}, jan31)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(2), got[1].ID)
}

func TestFilterConjunction(t *testing.T) {
	events := sampleEvents()
	got := Filter(events, Criteria{Query: "chicago", Price: PriceUnder50}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Golden Gloves", got[0].Title)
}

func TestFilterResetRestoresFullList(t *testing.T) {
	events := sampleEvents()
	// narrow first, then reset to the zero value
	narrowed := Filter(events, Criteria{Query: "gloves", Price: PricePaid, DateRange: DateThisWeek}, now)
	require.Len(t, narrowed, 1)

	got := Filter(events, Criteria{}, now)
	require.Len(t, got, len(events))
	for i := range events {
		assert.Equal(t, events[i].ID, got[i].ID)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	events := sampleEvents()
	before := make([]uint64, len(events))
	for i, e := range events {
		before[i] = e.ID
	}
	_ = Filter(events, Criteria{Query: "gloves"}, now)
	for i, e := range events {
		assert.Equal(t, before[i], e.ID)
	}
}

func TestParseCriteria(t *testing.T) {
	c := ParseCriteria("  gloves ", "chicago", "thisWeek", "under50")
	assert.Equal(t, "gloves", c.Query)
	assert.Equal(t, "chicago", c.Location)
	assert.Equal(t, DateThisWeek, c.DateRange)
	assert.Equal(t, PriceUnder50, c.Price)

	// unknown bucket values widen to "all"
	c = ParseCriteria("", "", "nextYear", "cheap")
	assert.Equal(t, DateAll, c.DateRange)
	assert.Equal(t, PriceAll, c.Price)
}
