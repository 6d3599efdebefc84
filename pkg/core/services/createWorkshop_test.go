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

// mockWorkshopStore implements CreateWorkshopStore
type mockWorkshopStore struct {
	event *db.Event

	insertErr error

	inserted []db.Workshop
}

func (m *mockWorkshopStore) GetEvent(ctx context.Context, eventID string) (*db.Event, error) {
	if m.event == nil {
		return nil, db.ErrNotFound
	}
	return m.event, nil
}

func (m *mockWorkshopStore) InsertWorkshops(ctx context.Context, workshops []db.Workshop) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, workshops...)
	return nil
}

func workshopInput() WorkshopInput {
	return WorkshopInput{
		Name:      "Robotics",
		StartTime: "10:00",
		EndTime:   "12:00",
		Location:  "Main Hall",
	}
}

func marchEvent() *db.Event {
	return &db.Event{
		ID:         "e1",
		Name:       "Spring Code Camp",
		Slug:       "spring-code-camp",
		StartDate:  time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		FinishDate: time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateWorkshop_SingleDate(t *testing.T) {
	store := &mockWorkshopStore{event: marchEvent()}
	date := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	workshop, err := CreateWorkshop(context.Background(), store, zap.NewNop(), "e1", date, workshopInput())

	require.NoError(t, err)
	assert.Equal(t, "e1", workshop.EventID)
	assert.Equal(t, "Robotics", workshop.Name)
	assert.True(t, workshop.Date.Equal(date))
	require.Len(t, store.inserted, 1)
}

func TestCreateWorkshopSeries_WeeklyRuleBoundedByEventDates(t *testing.T) {
	store := &mockWorkshopStore{event: marchEvent()}

	// Weekly on Saturdays within 2 March to 29 March 2026
	workshops, err := CreateWorkshopSeries(context.Background(), store, zap.NewNop(), "e1",
		"FREQ=WEEKLY;BYDAY=SA", workshopInput())

	require.NoError(t, err)
	require.Len(t, workshops, 4)
	for _, w := range workshops {
		assert.Equal(t, time.Saturday, w.Date.Weekday())
		assert.False(t, w.Date.Before(store.event.StartDate))
		assert.False(t, w.Date.After(store.event.FinishDate))
		assert.Equal(t, "e1", w.EventID)
	}
	assert.Len(t, store.inserted, 4)
}

func TestCreateWorkshopSeries_RuleYieldingNoDatesErrors(t *testing.T) {
	store := &mockWorkshopStore{event: marchEvent()}

	// Yearly in December never lands inside a March event
	_, err := CreateWorkshopSeries(context.Background(), store, zap.NewNop(), "e1",
		"FREQ=YEARLY;BYMONTH=12", workshopInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dates")
	assert.Empty(t, store.inserted)
}

func TestCreateWorkshopSeries_MalformedRuleErrors(t *testing.T) {
	store := &mockWorkshopStore{event: marchEvent()}

	_, err := CreateWorkshopSeries(context.Background(), store, zap.NewNop(), "e1",
		"FREQ=SOMETIMES", workshopInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recurrence rule")
}

func TestCreateWorkshop_MissingLocationRejected(t *testing.T) {
	store := &mockWorkshopStore{event: marchEvent()}
	input := workshopInput()
	input.Location = ""

	_, err := CreateWorkshop(context.Background(), store, zap.NewNop(), "e1",
		time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC), input)

	require.Error(t, err)
	assert.Empty(t, store.inserted)
}
