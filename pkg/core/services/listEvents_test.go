package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
)

// mockListEventsStore implements ListEventsStore
type mockListEventsStore struct {
	events []db.Event
	counts map[string]int

	listErr error
}

func (m *mockListEventsStore) ListEvents(ctx context.Context, finishOnOrAfter time.Time) ([]db.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockListEventsStore) CountWorkshops(ctx context.Context, eventIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(eventIDs))
	for _, id := range eventIDs {
		counts[id] = m.counts[id]
	}
	return counts, nil
}

func listingFixtures() *mockListEventsStore {
	march := func(day int) time.Time {
		return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
	}
	return &mockListEventsStore{
		events: []db.Event{
			{ID: "e1", Name: "Spring Code Camp", Slug: "spring-code-camp", StartDate: march(1), FinishDate: march(31), Released: true, HighlightedEvent: true},
			{ID: "e2", Name: "Staff Planning Day", Slug: "staff-planning-day", StartDate: march(5), FinishDate: march(5), Released: true, HiddenEvent: true},
			{ID: "e3", Name: "Robotics Week", Slug: "robotics-week", StartDate: march(10), FinishDate: march(14), Released: true},
		},
		counts: map[string]int{"e1": 4, "e2": 1, "e3": 2},
	}
}

func TestListEvents_HiddenEventsExcludedFromPublicListing(t *testing.T) {
	store := listingFixtures()

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), false, false)

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "e1", listings[0].Event.ID)
	assert.Equal(t, "e3", listings[1].Event.ID)
	for _, l := range listings {
		assert.False(t, l.Event.HiddenEvent)
	}
}

func TestListEvents_IncludeHiddenListsEverything(t *testing.T) {
	store := listingFixtures()

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), true, false)

	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestListEvents_CarriesWorkshopCounts(t *testing.T) {
	store := listingFixtures()

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), false, false)

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, 4, listings[0].WorkshopCount)
	assert.Equal(t, 2, listings[1].WorkshopCount)
}

func TestListEvents_HighlightedOnlyFiltersToHomePageEvents(t *testing.T) {
	store := listingFixtures()

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), false, true)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "e1", listings[0].Event.ID)
}

func TestListEvents_HighlightedHiddenEventStaysOffHomePage(t *testing.T) {
	store := listingFixtures()
	// Highlighting never overrides hiding
	store.events[1].HighlightedEvent = true

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), false, true)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "e1", listings[0].Event.ID)
}

func TestListEvents_NoEventsMeansEmptyListing(t *testing.T) {
	store := &mockListEventsStore{}

	listings, err := ListEvents(context.Background(), store, zap.NewNop(), time.Now(), false, false)

	require.NoError(t, err)
	assert.Empty(t, listings)
}
