package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	caldomain "discal-backend/internal/calendar/domain"
)

// CalendarService fetches events from the user's primary Google calendar
// using their OAuth access token.
type CalendarService struct {
	clientID     string
	clientSecret string
}

func NewCalendarService(clientID, clientSecret string) *CalendarService {
	return &CalendarService{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// FetchEvents returns the raw item list from the primary calendar. Items are
// mapped mechanically; validation happens in the sync pass.
func (s *CalendarService) FetchEvents(ctx context.Context, accessToken string) ([]caldomain.EventItem, error) {
	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}

	cfg := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}
	client := oauth2.NewClient(ctx, cfg.TokenSource(ctx, token))

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %w", err)
	}

	resp, err := srv.Events.List("primary").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve calendar events: %w", err)
	}

	items := make([]caldomain.EventItem, 0, len(resp.Items))
	for _, ev := range resp.Items {
		items = append(items, mapEvent(ev))
	}
	return items, nil
}

func mapEvent(ev *calendar.Event) caldomain.EventItem {
	item := caldomain.EventItem{
		ID:          ev.Id,
		Status:      ev.Status,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		HTMLLink:    ev.HtmlLink,
		Created:     ev.Created,
		Updated:     ev.Updated,
		Recurrence:  ev.Recurrence,
	}

	if ev.Start != nil {
		item.Start = &caldomain.EventItemTime{Date: ev.Start.Date, DateTime: ev.Start.DateTime, TimeZone: ev.Start.TimeZone}
	}
	if ev.End != nil {
		item.End = &caldomain.EventItemTime{Date: ev.End.Date, DateTime: ev.End.DateTime, TimeZone: ev.End.TimeZone}
	}
	if ev.Reminders != nil {
		reminders := &caldomain.Reminders{UseDefault: ev.Reminders.UseDefault}
		for _, o := range ev.Reminders.Overrides {
			if o != nil {
				reminders.Overrides = append(reminders.Overrides, caldomain.ReminderOverride{
					Method:  o.Method,
					Minutes: int(o.Minutes),
				})
			}
		}
		item.Reminders = reminders
	}
	if ev.Creator != nil {
		item.Creator = &caldomain.EventActor{Email: ev.Creator.Email, DisplayName: ev.Creator.DisplayName, Self: ev.Creator.Self}
	}
	if ev.Organizer != nil {
		item.Organizer = &caldomain.EventActor{Email: ev.Organizer.Email, DisplayName: ev.Organizer.DisplayName, Self: ev.Organizer.Self}
	}
	return item
}
