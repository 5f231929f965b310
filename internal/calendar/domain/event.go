package domain

import "time"

// Event statuses as the calendar provider reports them.
const (
	StatusConfirmed = "confirmed"
	StatusTentative = "tentative"
	StatusCancelled = "cancelled"
)

// EventTime is either a date-only value (all-day events) or a timestamp with
// an optional timezone.
type EventTime struct {
	Date     string     `bson:"date,omitempty" json:"date,omitempty"`
	DateTime *time.Time `bson:"date_time,omitempty" json:"dateTime,omitempty"`
	TimeZone string     `bson:"time_zone,omitempty" json:"timeZone,omitempty"`
}

type EventActor struct {
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	DisplayName string `bson:"display_name,omitempty" json:"displayName,omitempty"`
	Self        bool   `bson:"self,omitempty" json:"self,omitempty"`
}

type ReminderOverride struct {
	Method  string `bson:"method,omitempty" json:"method,omitempty"`
	Minutes int    `bson:"minutes,omitempty" json:"minutes,omitempty"`
}

type Reminders struct {
	UseDefault bool               `bson:"use_default" json:"useDefault"`
	Overrides  []ReminderOverride `bson:"overrides,omitempty" json:"overrides,omitempty"`
}

// CalendarEvent mirrors one provider event into the events collection. The
// external id is unique when present; records are never deleted here.
type CalendarEvent struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	GoogleEventID string `bson:"google_event_id,omitempty" json:"google_event_id"`
	Status        string `bson:"status" json:"status"`
	Title         string `bson:"title,omitempty" json:"title,omitempty"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	Location      string `bson:"location,omitempty" json:"location,omitempty"`
	HTMLLink      string `bson:"html_link,omitempty" json:"html_link,omitempty"`

	Start    EventTime `bson:"start" json:"start"`
	End      EventTime `bson:"end" json:"end"`
	IsAllDay bool      `bson:"is_all_day" json:"is_all_day"`

	Recurrence []string   `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	Reminders  *Reminders `bson:"reminders,omitempty" json:"reminders,omitempty"`

	Creator   *EventActor `bson:"creator,omitempty" json:"creator,omitempty"`
	Organizer *EventActor `bson:"organizer,omitempty" json:"organizer,omitempty"`

	OwnerEmail string `bson:"created_by_user_email,omitempty" json:"created_by_user_email,omitempty"`

	// Timestamps mirrored from the external source; SourceUpdated drives the
	// sync comparison.
	SourceCreated time.Time `bson:"source_created" json:"source_created"`
	SourceUpdated time.Time `bson:"source_updated" json:"source_updated"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EventItem is a raw provider item: timestamps stay strings until the sync
// pass parses and validates them.
type EventItem struct {
	ID          string
	Status      string
	Summary     string
	Description string
	Location    string
	HTMLLink    string

	Start *EventItemTime
	End   *EventItemTime

	Created string
	Updated string

	Recurrence []string
	Reminders  *Reminders
	Creator    *EventActor
	Organizer  *EventActor
}

type EventItemTime struct {
	Date     string
	DateTime string
	TimeZone string
}
