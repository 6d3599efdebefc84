package visibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestEvaluate_NilEventIsNotFound(t *testing.T) {
	decision := Evaluate(nil, NewPermissionSet(nil), date(2026, time.March, 1))

	assert.Equal(t, NotFound, decision.Outcome)
}

func TestEvaluate_VisibleEventPastStartDate(t *testing.T) {
	event := &EventState{Hidden: false, Released: true, StartDate: date(2026, time.March, 1)}

	decision := Evaluate(event, NewPermissionSet(nil), date(2026, time.March, 2))

	assert.Equal(t, Visible, decision.Outcome)
	assert.Empty(t, decision.Message)
}

func TestEvaluate_VisibleOnStartDateItself(t *testing.T) {
	event := &EventState{Released: true, StartDate: date(2026, time.March, 1)}

	decision := Evaluate(event, NewPermissionSet(nil), date(2026, time.March, 1))

	assert.Equal(t, Visible, decision.Outcome)
}

func TestEvaluate_HiddenEventDeniedWithoutMessage(t *testing.T) {
	event := &EventState{Hidden: true, Released: true, StartDate: date(2026, time.January, 1)}

	// An unrelated permission does not bypass the hidden check
	decision := Evaluate(event, NewPermissionSet([]string{"edit_event"}), date(2026, time.March, 1))

	assert.Equal(t, DeniedHidden, decision.Outcome)
	assert.Empty(t, decision.Message)
}

func TestEvaluate_HiddenPermissionBypassesHiddenCheck(t *testing.T) {
	event := &EventState{Hidden: true, Released: true, StartDate: date(2026, time.January, 1)}

	decision := Evaluate(event, NewPermissionSet([]string{PermViewHiddenEvent}), date(2026, time.March, 1))

	assert.Equal(t, Visible, decision.Outcome)
}

func TestEvaluate_NotStartedEventNamesStartDate(t *testing.T) {
	event := &EventState{Released: true, StartDate: date(2026, time.March, 3)}

	decision := Evaluate(event, NewPermissionSet(nil), date(2026, time.February, 20))

	assert.Equal(t, DeniedNotStarted, decision.Outcome)
	assert.Equal(t, "Event hasn't started yet! It will be available from 3rd March", decision.Message)
}

func TestEvaluate_UnreleasedEventPastStartDate(t *testing.T) {
	event := &EventState{Released: false, StartDate: date(2026, time.February, 1)}

	decision := Evaluate(event, NewPermissionSet(nil), date(2026, time.March, 1))

	assert.Equal(t, DeniedUnreleased, decision.Outcome)
	assert.Equal(t, "Event hasn't started yet! It will be available soon", decision.Message)
}

func TestEvaluate_UnreleasedPermissionBypassesDateAndReleaseChecks(t *testing.T) {
	event := &EventState{Released: false, StartDate: date(2026, time.December, 25)}

	decision := Evaluate(event, NewPermissionSet([]string{PermViewUnreleasedEvent}), date(2026, time.March, 1))

	assert.Equal(t, Visible, decision.Outcome)
}

func TestEvaluate_HiddenOutranksNotStarted(t *testing.T) {
	// Viewer may see unreleased events but not hidden ones; the hidden check
	// runs first so no start date is disclosed
	event := &EventState{Hidden: true, Released: false, StartDate: date(2026, time.December, 25)}

	decision := Evaluate(event, NewPermissionSet([]string{PermViewUnreleasedEvent}), date(2026, time.March, 1))

	assert.Equal(t, DeniedHidden, decision.Outcome)
	assert.Empty(t, decision.Message)
}

func TestEvaluate_NotStartedOutranksUnreleased(t *testing.T) {
	event := &EventState{Released: false, StartDate: date(2026, time.April, 1)}

	decision := Evaluate(event, NewPermissionSet(nil), date(2026, time.March, 1))

	assert.Equal(t, DeniedNotStarted, decision.Outcome)
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		12: "12th",
		13: "13th",
		21: "21st",
		22: "22nd",
		23: "23rd",
		31: "31st",
	}
	for day, want := range cases {
		assert.Equal(t, want, Ordinal(day))
	}
}
