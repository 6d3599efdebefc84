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

// mockEventStore implements CreateEventStore and UpdateEventStore
type mockEventStore struct {
	event *db.Event

	insertErr error
	updateErr error

	inserted *db.Event
	updated  *db.Event
}

func (m *mockEventStore) GetEvent(ctx context.Context, eventID string) (*db.Event, error) {
	if m.event == nil {
		return nil, db.ErrNotFound
	}
	return m.event, nil
}

func (m *mockEventStore) InsertEvent(ctx context.Context, event *db.Event) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = event
	return nil
}

func (m *mockEventStore) UpdateEvent(ctx context.Context, event *db.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = event
	return nil
}

func eventInput(name string) EventInput {
	return EventInput{
		Name:       name,
		StartDate:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		FinishDate: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateEvent_SlugDerivedFromName(t *testing.T) {
	store := &mockEventStore{}

	event, err := CreateEvent(context.Background(), store, zap.NewNop(), eventInput("Spring Code Camp!!"))

	require.NoError(t, err)
	assert.Equal(t, "spring-code-camp", event.Slug)
	assert.NotEmpty(t, event.ID)
	require.NotNil(t, store.inserted)
	assert.Equal(t, event, store.inserted)
}

func TestCreateEvent_HighlightedFlagCarriesThrough(t *testing.T) {
	store := &mockEventStore{}
	input := eventInput("Spring Code Camp")
	input.Highlighted = true

	event, err := CreateEvent(context.Background(), store, zap.NewNop(), input)

	require.NoError(t, err)
	assert.True(t, event.HighlightedEvent)
	require.NotNil(t, store.inserted)
	assert.True(t, store.inserted.HighlightedEvent)
}

func TestCreateEvent_RejectsFinishBeforeStart(t *testing.T) {
	store := &mockEventStore{}
	input := eventInput("Spring Code Camp")
	input.FinishDate = input.StartDate.AddDate(0, 0, -1)

	_, err := CreateEvent(context.Background(), store, zap.NewNop(), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
	assert.Nil(t, store.inserted)
}

func TestCreateEvent_RejectsMissingName(t *testing.T) {
	store := &mockEventStore{}

	_, err := CreateEvent(context.Background(), store, zap.NewNop(), eventInput(""))

	require.Error(t, err)
	assert.Nil(t, store.inserted)
}

func TestUpdateEvent_RenameRecomputesSlug(t *testing.T) {
	store := &mockEventStore{
		event: &db.Event{
			ID:   "e1",
			Name: "Spring Code Camp",
			Slug: "spring-code-camp",
		},
	}

	event, err := UpdateEvent(context.Background(), store, zap.NewNop(), "e1", eventInput("Autumn Code Camp"))

	require.NoError(t, err)
	assert.Equal(t, "autumn-code-camp", event.Slug)
	require.NotNil(t, store.updated)
	assert.Equal(t, "autumn-code-camp", store.updated.Slug)
}

func TestUpdateEvent_UnknownEventErrors(t *testing.T) {
	store := &mockEventStore{}

	_, err := UpdateEvent(context.Background(), store, zap.NewNop(), "missing", eventInput("Spring Code Camp"))

	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
