package repository

import (
	"context"

	caldomain "discal-backend/internal/calendar/domain"
)

// EventRepository persists mirrored calendar events. FindByGoogleID returns
// (nil, nil) when no record matches.
type EventRepository interface {
	FindByGoogleID(ctx context.Context, googleEventID string) (*caldomain.CalendarEvent, error)
	Insert(ctx context.Context, event *caldomain.CalendarEvent) error
	Update(ctx context.Context, event *caldomain.CalendarEvent) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]*caldomain.CalendarEvent, error)
}
