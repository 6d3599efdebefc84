package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compclub/compclub/pkg/db"
)

func TestValidateSubmission_AcceptsAvailableVolunteers(t *testing.T) {
	submission := map[string]db.AssignStatus{
		"v1": db.StatusAssigned,
		"v2": db.StatusWaitlist,
	}
	available := []db.Volunteer{vol("v1"), vol("v2")}

	err := ValidateSubmission(submission, available, nil)

	assert.NoError(t, err)
}

func TestValidateSubmission_AcceptsVolunteerWithPriorRecordOnly(t *testing.T) {
	// v1 withdrew their availability but still has a record; staff can still
	// move them to declined
	submission := map[string]db.AssignStatus{"v1": db.StatusDeclined}
	existing := []db.VolunteerAssignment{
		{ID: "a1", WorkshopID: "w1", VolunteerID: "v1", Status: db.StatusAssigned},
	}

	err := ValidateSubmission(submission, nil, existing)

	assert.NoError(t, err)
}

func TestValidateSubmission_OneBadEntryRejectsWholeBatch(t *testing.T) {
	submission := map[string]db.AssignStatus{
		"v1":       db.StatusAssigned,
		"stranger": db.StatusWaitlist,
	}
	available := []db.Volunteer{vol("v1")}

	err := ValidateSubmission(submission, available, nil)

	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Problems, 1)
	assert.Contains(t, vErr.Problems, "stranger")
}

func TestValidateSubmission_RejectsUnknownStatus(t *testing.T) {
	submission := map[string]db.AssignStatus{"v1": db.AssignStatus("XX")}
	available := []db.Volunteer{vol("v1")}

	err := ValidateSubmission(submission, available, nil)

	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Problems["v1"], "unknown status")
}

func TestValidationError_MessageListsProblemsInOrder(t *testing.T) {
	err := &ValidationError{Problems: map[string]string{
		"v2": "second problem",
		"v1": "first problem",
	}}

	assert.Equal(t, "invalid assignment submission: v1: first problem; v2: second problem", err.Error())
}

func TestBuildUpserts_ReusesExistingRecordIDs(t *testing.T) {
	submission := map[string]db.AssignStatus{
		"v1": db.StatusDeclined,
		"v2": db.StatusAssigned,
	}
	existing := []db.VolunteerAssignment{
		{ID: "a1", WorkshopID: "w1", VolunteerID: "v1", Status: db.StatusAssigned},
	}

	rows := BuildUpserts("w1", submission, existing)

	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0].ID)
	assert.Equal(t, db.StatusDeclined, rows[0].Status)
	assert.NotEmpty(t, rows[1].ID)
	assert.NotEqual(t, "a1", rows[1].ID)
	assert.Equal(t, "w1", rows[1].WorkshopID)
}

func TestBuildUpserts_OrdersRowsByVolunteerID(t *testing.T) {
	submission := map[string]db.AssignStatus{
		"v3": db.StatusAssigned,
		"v1": db.StatusAssigned,
		"v2": db.StatusWaitlist,
	}

	rows := BuildUpserts("w1", submission, nil)

	require.Len(t, rows, 3)
	assert.Equal(t, "v1", rows[0].VolunteerID)
	assert.Equal(t, "v2", rows[1].VolunteerID)
	assert.Equal(t, "v3", rows[2].VolunteerID)
}
