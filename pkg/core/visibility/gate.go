// Package visibility decides whether a viewer may see an event. The gate is a
// pure function of the event record, the viewer's permission set, and the
// current date; it never mutates state.
package visibility

import (
	"fmt"
	"time"
)

// Permission names consulted by the gate
const (
	PermViewHiddenEvent     = "view_hidden_event"
	PermViewUnreleasedEvent = "view_unreleased_event"
)

// Outcome is the gate's decision for a (event, viewer, date) triple
type Outcome int

const (
	// Visible means the viewer may access the event
	Visible Outcome = iota
	// NotFound means the event does not exist
	NotFound
	// DeniedHidden means the event is hidden from this viewer. It is
	// reported to the viewer as not-found so hidden events never leak
	// their existence.
	DeniedHidden
	// DeniedNotStarted means the event has not reached its start date
	DeniedNotStarted
	// DeniedUnreleased means the event has not been released yet
	DeniedUnreleased
)

// Decision is the gate's verdict plus the message shown on denial
type Decision struct {
	Outcome Outcome
	// Message is a viewer-facing explanation for date-gated denials.
	// Hidden denials deliberately carry no message.
	Message string
}

// Permissions is the permission oracle: it reports whether the viewer holds a
// named permission
type Permissions interface {
	Has(permission string) bool
}

// PermissionSet is a Permissions backed by a set of permission names
type PermissionSet map[string]bool

// NewPermissionSet builds a PermissionSet from a list of permission names
func NewPermissionSet(names []string) PermissionSet {
	set := make(PermissionSet, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Has reports whether the set contains the permission
func (s PermissionSet) Has(permission string) bool {
	return s[permission]
}

// EventState is the slice of an event the gate inspects
type EventState struct {
	Hidden    bool
	Released  bool
	StartDate time.Time
}

// Evaluate runs the visibility state machine. Check order matters:
//
//	hidden > not-started > unreleased
//
// so a hidden, unreleased event denies as hidden, and an unreleased event
// before its start date denies as not-started.
//
// Hidden events never disclose their existence. Non-hidden gated events
// deliberately disclose timing: they are published teasers, so naming the
// start date is intended.
func Evaluate(event *EventState, viewer Permissions, today time.Time) Decision {
	if event == nil {
		return Decision{Outcome: NotFound}
	}

	if event.Hidden && !viewer.Has(PermViewHiddenEvent) {
		return Decision{Outcome: DeniedHidden}
	}

	if today.Before(truncateToDay(event.StartDate)) && !viewer.Has(PermViewUnreleasedEvent) {
		return Decision{
			Outcome: DeniedNotStarted,
			Message: notStartedMessage(event.StartDate),
		}
	}

	if !event.Released && !viewer.Has(PermViewUnreleasedEvent) {
		return Decision{
			Outcome: DeniedUnreleased,
			Message: "Event hasn't started yet! It will be available soon",
		}
	}

	return Decision{Outcome: Visible}
}

// notStartedMessage names the ordinal day and month of the start date
func notStartedMessage(startDate time.Time) string {
	return fmt.Sprintf("Event hasn't started yet! It will be available from %s %s",
		Ordinal(startDate.Day()), startDate.Month().String())
}

// Ordinal renders a day number as its English ordinal (1st, 2nd, 11th, 23rd)
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
