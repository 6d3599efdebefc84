package db

import "time"

// AssignStatus is the status tag carried by a volunteer assignment record
type AssignStatus string

const (
	StatusAssigned AssignStatus = "AS"
	StatusWaitlist AssignStatus = "WL"
	StatusDeclined AssignStatus = "DE"
)

// Valid reports whether s is one of the three known status codes
func (s AssignStatus) Valid() bool {
	return s == StatusAssigned || s == StatusWaitlist || s == StatusDeclined
}

// Label returns the human-readable form of the status used in emails and listings
func (s AssignStatus) Label() string {
	switch s {
	case StatusAssigned:
		return "assigned to"
	case StatusWaitlist:
		return "on the waitlist for"
	case StatusDeclined:
		return "declined for"
	}
	return string(s)
}

// User represents a user account record
type User struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// FullName returns first and last name joined for display
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Position represents the specific role label of a volunteer
type Position struct {
	ID   string
	Name string
}

// Volunteer wraps a user account. There is exactly one volunteer record per
// user, created together with the user account.
type Volunteer struct {
	ID         string
	UserID     string
	PositionID string
}

// School represents a school record
type School struct {
	ID     string
	Name   string
	Region string
}

// Student represents a student record tied to a user account
type Student struct {
	ID       string
	UserID   string
	SchoolID string
}

// Event represents a community event record.
// Slug is always derived from Name at the write boundary and is never
// independently settable.
type Event struct {
	ID         string
	Name       string
	Slug       string
	StartDate  time.Time
	FinishDate time.Time
	OwnerID    string
	// HiddenEvent and Released gate access; HighlightedEvent promotes the
	// event onto the home page listing
	HiddenEvent      bool
	Released         bool
	HighlightedEvent bool
}

// Workshop represents a workshop session belonging to an event
type Workshop struct {
	ID        string
	EventID   string
	Name      string
	Date      time.Time
	StartTime string
	EndTime   string
	Location  string
}

// VolunteerAssignment is the join record between a workshop and a volunteer.
// At most one record exists per (workshop, volunteer) pair.
type VolunteerAssignment struct {
	ID          string
	WorkshopID  string
	VolunteerID string
	Status      AssignStatus
}

// Registration represents a student's expression of interest in an event.
// Registrations are inserted once and never mutated.
type Registration struct {
	ID           string
	EventID      string
	Name         string
	Email        string
	Number       string
	DateOfBirth  time.Time
	ParentEmail  string
	ParentNumber string
}

// BlockKind tags a content block variant. The set is closed: rendering
// dispatches on the kind with an explicit switch.
type BlockKind string

const (
	BlockRichText BlockKind = "rich_text"
	BlockDownload BlockKind = "download"
	BlockNoEmbed  BlockKind = "noembed"
	BlockLightBox BlockKind = "lightbox"
)

// ContentBlock is a piece of content attached to an event page.
// Which fields are meaningful depends on Kind:
//   - rich_text: Text
//   - download:  Name, File
//   - noembed:   URL, Caption
//   - lightbox:  File, Caption
type ContentBlock struct {
	ID       string
	EventID  string
	Kind     BlockKind
	Ordering int
	Text     string
	Name     string
	File     string
	URL      string
	Caption  string
}
