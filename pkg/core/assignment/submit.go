package assignment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/compclub/compclub/pkg/db"
)

// ValidationError reports an assignment submission that was rejected in full.
// Problems maps volunteer IDs to the reason they were rejected.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	ids := make([]string, 0, len(e.Problems))
	for id := range e.Problems {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s: %s", id, e.Problems[id]))
	}
	return "invalid assignment submission: " + strings.Join(parts, "; ")
}

// ValidateSubmission checks a submitted volunteerID -> status mapping against
// the workshop's current available set and existing assignment records.
// A volunteer is eligible if they are currently available or already have a
// record for this workshop. The whole submission is validated before any
// write happens; one bad entry rejects the batch.
func ValidateSubmission(submission map[string]db.AssignStatus, available []db.Volunteer, existing []db.VolunteerAssignment) error {
	eligible := make(map[string]bool, len(available)+len(existing))
	for _, v := range available {
		eligible[v.ID] = true
	}
	for _, a := range existing {
		eligible[a.VolunteerID] = true
	}

	problems := make(map[string]string)
	for volunteerID, status := range submission {
		if !status.Valid() {
			problems[volunteerID] = fmt.Sprintf("unknown status %q", status)
			continue
		}
		if !eligible[volunteerID] {
			problems[volunteerID] = "volunteer is not available for this workshop and has no prior record"
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// BuildUpserts converts a validated submission into assignment rows for the
// store. Existing records keep their IDs so the (workshop, volunteer)
// uniqueness key updates in place; new pairs get fresh IDs. Volunteers not
// present in the submission are untouched. Rows are ordered by volunteer ID
// for determinism.
func BuildUpserts(workshopID string, submission map[string]db.AssignStatus, existing []db.VolunteerAssignment) []db.VolunteerAssignment {
	existingByVolunteer := make(map[string]db.VolunteerAssignment, len(existing))
	for _, a := range existing {
		existingByVolunteer[a.VolunteerID] = a
	}

	volunteerIDs := make([]string, 0, len(submission))
	for id := range submission {
		volunteerIDs = append(volunteerIDs, id)
	}
	sort.Strings(volunteerIDs)

	rows := make([]db.VolunteerAssignment, 0, len(volunteerIDs))
	for _, volunteerID := range volunteerIDs {
		row := db.VolunteerAssignment{
			ID:          uuid.New().String(),
			WorkshopID:  workshopID,
			VolunteerID: volunteerID,
			Status:      submission[volunteerID],
		}
		if prior, ok := existingByVolunteer[volunteerID]; ok {
			row.ID = prior.ID
		}
		rows = append(rows, row)
	}

	return rows
}
