// Package assignment derives the volunteer sets for a workshop from the raw
// availability and assignment relations. All computations are pure functions
// over the records passed in; nothing is cached, so callers always see the
// latest store state.
package assignment

import "github.com/compclub/compclub/pkg/db"

// Sets holds the derived volunteer sets for a single workshop
type Sets struct {
	// Unassigned are available volunteers with no assignment record
	Unassigned []db.Volunteer
	// Assigned, Waitlisted and Declined are the volunteer IDs bucketed by
	// their assignment record status
	Assigned   []string
	Waitlisted []string
	Declined   []string
	// Withdrawn are volunteer IDs with a non-declined record who have since
	// removed themselves from the available set
	Withdrawn []string
}

// Derive computes all volunteer sets for a workshop from its available
// volunteers and assignment records. Output ordering is stable: Unassigned
// follows the order of available, the status buckets follow the order of
// assignments.
func Derive(available []db.Volunteer, assignments []db.VolunteerAssignment) Sets {
	assignedIDs := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		assignedIDs[a.VolunteerID] = true
	}

	availableIDs := make(map[string]bool, len(available))
	for _, v := range available {
		availableIDs[v.ID] = true
	}

	var sets Sets
	for _, v := range available {
		if !assignedIDs[v.ID] {
			sets.Unassigned = append(sets.Unassigned, v)
		}
	}

	for _, a := range assignments {
		switch a.Status {
		case db.StatusAssigned:
			sets.Assigned = append(sets.Assigned, a.VolunteerID)
		case db.StatusWaitlist:
			sets.Waitlisted = append(sets.Waitlisted, a.VolunteerID)
		case db.StatusDeclined:
			sets.Declined = append(sets.Declined, a.VolunteerID)
		}

		// A declined volunteer never counts as withdrawn: declining is
		// already terminal. Anyone else whose record outlived their
		// availability is flagged for staff follow-up.
		if a.Status != db.StatusDeclined && !availableIDs[a.VolunteerID] {
			sets.Withdrawn = append(sets.Withdrawn, a.VolunteerID)
		}
	}

	return sets
}

// Unassigned returns the available volunteers who have no assignment record,
// in the order of the available set
func Unassigned(available []db.Volunteer, assignments []db.VolunteerAssignment) []db.Volunteer {
	return Derive(available, assignments).Unassigned
}

// Withdrawn returns the volunteer IDs whose non-declined assignment record has
// no matching entry in the current available set
func Withdrawn(available []db.Volunteer, assignments []db.VolunteerAssignment) []string {
	return Derive(available, assignments).Withdrawn
}
