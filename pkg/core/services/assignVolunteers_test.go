package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/assignment"
	"github.com/compclub/compclub/pkg/db"
)

// mockAssignStore implements AssignVolunteersStore
type mockAssignStore struct {
	workshop    *db.Workshop
	available   []db.Volunteer
	assignments []db.VolunteerAssignment

	getWorkshopErr error
	upsertErr      error

	upserted []db.VolunteerAssignment
}

func (m *mockAssignStore) GetWorkshop(ctx context.Context, workshopID string) (*db.Workshop, error) {
	if m.getWorkshopErr != nil {
		return nil, m.getWorkshopErr
	}
	return m.workshop, nil
}

func (m *mockAssignStore) GetAvailableVolunteers(ctx context.Context, workshopID string) ([]db.Volunteer, error) {
	return m.available, nil
}

func (m *mockAssignStore) ListAssignmentsByWorkshop(ctx context.Context, workshopID string) ([]db.VolunteerAssignment, error) {
	return m.assignments, nil
}

func (m *mockAssignStore) UpsertAssignments(ctx context.Context, assignments []db.VolunteerAssignment) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, assignments...)
	return nil
}

func testWorkshop() *db.Workshop {
	return &db.Workshop{
		ID:        "w1",
		EventID:   "e1",
		Name:      "Robotics",
		Date:      time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Location:  "Main Hall",
	}
}

func TestAssignVolunteers_AppliesValidSubmission(t *testing.T) {
	store := &mockAssignStore{
		workshop: testWorkshop(),
		available: []db.Volunteer{
			{ID: "v1", UserID: "u1"},
			{ID: "v2", UserID: "u2"},
		},
	}

	rows, err := AssignVolunteers(context.Background(), store, zap.NewNop(), "w1", map[string]db.AssignStatus{
		"v1": db.StatusAssigned,
		"v2": db.StatusWaitlist,
	})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, store.upserted, 2)
	assert.Equal(t, "v1", store.upserted[0].VolunteerID)
	assert.Equal(t, db.StatusAssigned, store.upserted[0].Status)
	assert.Equal(t, "v2", store.upserted[1].VolunteerID)
	assert.Equal(t, db.StatusWaitlist, store.upserted[1].Status)
}

func TestAssignVolunteers_OneIneligibleVolunteerLeavesStoreUntouched(t *testing.T) {
	store := &mockAssignStore{
		workshop:  testWorkshop(),
		available: []db.Volunteer{{ID: "v1", UserID: "u1"}},
	}

	_, err := AssignVolunteers(context.Background(), store, zap.NewNop(), "w1", map[string]db.AssignStatus{
		"v1":       db.StatusAssigned,
		"stranger": db.StatusAssigned,
	})

	require.Error(t, err)
	var vErr *assignment.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, store.upserted, "rejected submission must not write anything")
}

func TestAssignVolunteers_UpdatesExistingRecordInPlace(t *testing.T) {
	store := &mockAssignStore{
		workshop:  testWorkshop(),
		available: []db.Volunteer{{ID: "v1", UserID: "u1"}},
		assignments: []db.VolunteerAssignment{
			{ID: "a1", WorkshopID: "w1", VolunteerID: "v1", Status: db.StatusWaitlist},
		},
	}

	rows, err := AssignVolunteers(context.Background(), store, zap.NewNop(), "w1", map[string]db.AssignStatus{
		"v1": db.StatusAssigned,
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a1", rows[0].ID)
	assert.Equal(t, db.StatusAssigned, rows[0].Status)
}

func TestAssignVolunteers_EmptySubmissionIsANoOp(t *testing.T) {
	store := &mockAssignStore{workshop: testWorkshop()}

	rows, err := AssignVolunteers(context.Background(), store, zap.NewNop(), "w1", nil)

	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Empty(t, store.upserted)
}

func TestAssignVolunteers_UnknownWorkshopErrors(t *testing.T) {
	store := &mockAssignStore{getWorkshopErr: db.ErrNotFound}

	_, err := AssignVolunteers(context.Background(), store, zap.NewNop(), "missing", map[string]db.AssignStatus{
		"v1": db.StatusAssigned,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
