package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	caldomain "discal-backend/internal/calendar/domain"
	"discal-backend/internal/calendar/repository"
)

// CalendarProvider fetches raw event items from the external calendar API.
type CalendarProvider interface {
	FetchEvents(ctx context.Context, accessToken string) ([]caldomain.EventItem, error)
}

// CalendarUsecase mirrors provider events into local storage. Sync is
// best-effort: individual bad items are skipped, never aborting the batch.
type CalendarUsecase interface {
	SyncEvents(ctx context.Context, items []caldomain.EventItem, ownerEmail string) (int, error)
	SyncFromGoogle(ctx context.Context, accessToken, ownerEmail string) (int, error)
}

type calendarUsecase struct {
	eventRepo repository.EventRepository
	provider  CalendarProvider
}

func NewCalendarUsecase(eventRepo repository.EventRepository, provider CalendarProvider) CalendarUsecase {
	return &calendarUsecase{
		eventRepo: eventRepo,
		provider:  provider,
	}
}

// SyncFromGoogle fetches the primary calendar and syncs it for the owner.
func (u *calendarUsecase) SyncFromGoogle(ctx context.Context, accessToken, ownerEmail string) (int, error) {
	items, err := u.provider.FetchEvents(ctx, accessToken)
	if err != nil {
		return 0, fmt.Errorf("calendar fetch failed: %w", err)
	}
	return u.SyncEvents(ctx, items, ownerEmail)
}

// SyncEvents inserts unseen items and overwrites stored ones whose external
// "updated" timestamp changed. Unchanged and malformed items are skipped.
// Returns the number of records inserted or changed.
func (u *calendarUsecase) SyncEvents(ctx context.Context, items []caldomain.EventItem, ownerEmail string) (int, error) {
	changed := 0

	for i := range items {
		event, err := parseItem(&items[i])
		if err != nil {
			log.Printf("[CalendarSync] skipping item %q: %v", items[i].ID, err)
			continue
		}
		event.OwnerEmail = ownerEmail

		stored, err := u.eventRepo.FindByGoogleID(ctx, event.GoogleEventID)
		if err != nil {
			log.Printf("[CalendarSync] lookup failed for %q: %v", event.GoogleEventID, err)
			continue
		}

		if stored == nil {
			if err := u.eventRepo.Insert(ctx, event); err != nil {
				log.Printf("[CalendarSync] insert failed for %q: %v", event.GoogleEventID, err)
				continue
			}
			changed++
			continue
		}

		if stored.SourceUpdated.Equal(event.SourceUpdated) {
			continue
		}

		event.ID = stored.ID
		event.CreatedAt = stored.CreatedAt
		if err := u.eventRepo.Update(ctx, event); err != nil {
			log.Printf("[CalendarSync] update failed for %q: %v", event.GoogleEventID, err)
			continue
		}
		changed++
	}

	return changed, nil
}

// parseItem validates a raw provider item and converts its timestamps. An id
// and a parseable "updated" timestamp are required; everything else degrades
// gracefully.
func parseItem(item *caldomain.EventItem) (*caldomain.CalendarEvent, error) {
	if item.ID == "" {
		return nil, fmt.Errorf("missing event id")
	}

	updated, err := time.Parse(time.RFC3339, item.Updated)
	if err != nil {
		return nil, fmt.Errorf("malformed updated timestamp %q: %w", item.Updated, err)
	}

	event := &caldomain.CalendarEvent{
		GoogleEventID: item.ID,
		Status:        item.Status,
		Title:         item.Summary,
		Description:   item.Description,
		Location:      item.Location,
		HTMLLink:      item.HTMLLink,
		Recurrence:    item.Recurrence,
		Reminders:     item.Reminders,
		Creator:       item.Creator,
		Organizer:     item.Organizer,
		SourceUpdated: updated,
	}
	if event.Status == "" {
		event.Status = caldomain.StatusConfirmed
	}
	if created, err := time.Parse(time.RFC3339, item.Created); err == nil {
		event.SourceCreated = created
	}

	start, allDayStart, err := parseTime(item.Start)
	if err != nil {
		return nil, fmt.Errorf("malformed start: %w", err)
	}
	end, _, err := parseTime(item.End)
	if err != nil {
		return nil, fmt.Errorf("malformed end: %w", err)
	}
	event.Start = start
	event.End = end
	event.IsAllDay = allDayStart

	return event, nil
}

func parseTime(t *caldomain.EventItemTime) (caldomain.EventTime, bool, error) {
	if t == nil {
		return caldomain.EventTime{}, false, nil
	}
	if t.Date != "" {
		// Date-only value, YYYY-MM-DD.
		if _, err := time.Parse("2006-01-02", t.Date); err != nil {
			return caldomain.EventTime{}, false, err
		}
		return caldomain.EventTime{Date: t.Date, TimeZone: t.TimeZone}, true, nil
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return caldomain.EventTime{}, false, err
		}
		return caldomain.EventTime{DateTime: &parsed, TimeZone: t.TimeZone}, false, nil
	}
	return caldomain.EventTime{TimeZone: t.TimeZone}, false, nil
}
