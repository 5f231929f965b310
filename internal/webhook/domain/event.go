package domain

import "time"

// EventKind tags an inbound webhook payload. Dispatch is an exhaustive switch
// over these kinds; anything unrecognized maps to KindUnknown and is accepted
// but ignored.
type EventKind string

const (
	KindMessage     EventKind = "message"
	KindInteraction EventKind = "interaction"
	KindMemberJoin  EventKind = "member_join"
	KindMemberLeave EventKind = "member_leave"
	KindUnknown     EventKind = "unknown"
)

// ParseEventKind maps a raw payload type string to a known kind.
func ParseEventKind(raw string) EventKind {
	switch EventKind(raw) {
	case KindMessage, KindInteraction, KindMemberJoin, KindMemberLeave:
		return EventKind(raw)
	default:
		return KindUnknown
	}
}

// MessageLog is one accepted inbound message event, appended to the
// discord_messages collection. Duplicate message ids are ignored on append.
type MessageLog struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	MessageID      string    `bson:"message_id" json:"message_id"`
	ChannelID      string    `bson:"channel_id,omitempty" json:"channel_id,omitempty"`
	GuildID        string    `bson:"guild_id,omitempty" json:"guild_id,omitempty"`
	AuthorID       string    `bson:"author_id,omitempty" json:"author_id,omitempty"`
	AuthorUsername string    `bson:"author_username,omitempty" json:"author_username,omitempty"`
	Content        string    `bson:"content,omitempty" json:"content,omitempty"`
	Kind           string    `bson:"kind" json:"kind"`
	ReceivedAt     time.Time `bson:"received_at" json:"received_at"`
}
