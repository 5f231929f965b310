package usecase

import (
	"context"
	"fmt"
	"log"

	webhookdomain "discal-backend/internal/webhook/domain"
	"discal-backend/internal/webhook/repository"
)

// Status is the descriptor returned to the webhook sender.
type Status struct {
	Status string `json:"status"`
	Type   string `json:"type,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// WebhookUsecase dispatches inbound event payloads by their tagged kind.
type WebhookUsecase interface {
	Process(ctx context.Context, payload map[string]any) (*Status, error)
}

type webhookUsecase struct {
	messageRepo repository.MessageLogRepository
}

func NewWebhookUsecase(messageRepo repository.MessageLogRepository) WebhookUsecase {
	return &webhookUsecase{messageRepo: messageRepo}
}

// Process routes the payload to the handler for its kind. Unknown kinds are
// accepted and marked ignored; they are never an error.
func (u *webhookUsecase) Process(ctx context.Context, payload map[string]any) (*Status, error) {
	rawType, _ := payload["type"].(string)
	kind := webhookdomain.ParseEventKind(rawType)

	switch kind {
	case webhookdomain.KindMessage:
		return u.handleMessage(ctx, payload)
	case webhookdomain.KindInteraction:
		return u.handleInteraction(payload)
	case webhookdomain.KindMemberJoin:
		return u.handleMemberJoin(payload)
	case webhookdomain.KindMemberLeave:
		return u.handleMemberLeave(payload)
	case webhookdomain.KindUnknown:
		log.Printf("[Webhook] unknown event type: %q", rawType)
		return &Status{
			Status: "ignored",
			Reason: fmt.Sprintf("Unknown event type: %s", rawType),
		}, nil
	}
	// Unreachable: ParseEventKind only yields the kinds above.
	return &Status{Status: "ignored", Reason: "Unknown event type"}, nil
}

func (u *webhookUsecase) handleMessage(ctx context.Context, payload map[string]any) (*Status, error) {
	author := stringMap(payload["author"])
	entry := &webhookdomain.MessageLog{
		MessageID:      str(payload["id"]),
		ChannelID:      str(payload["channel_id"]),
		GuildID:        str(payload["guild_id"]),
		AuthorID:       str(author["id"]),
		AuthorUsername: str(author["username"]),
		Content:        str(payload["content"]),
		Kind:           string(webhookdomain.KindMessage),
	}

	log.Printf("[Webhook] message from %q in channel %s: %s", entry.AuthorUsername, entry.ChannelID, entry.Content)

	if err := u.messageRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store message log: %w", err)
	}
	return &Status{Status: "processed", Type: string(webhookdomain.KindMessage)}, nil
}

// Interaction, join and leave handlers log context only; command parsing,
// role assignment and welcome flows hang off these later.

func (u *webhookUsecase) handleInteraction(payload map[string]any) (*Status, error) {
	user := stringMap(payload["user"])
	log.Printf("[Webhook] interaction from %q", str(user["username"]))
	return &Status{Status: "processed", Type: string(webhookdomain.KindInteraction)}, nil
}

func (u *webhookUsecase) handleMemberJoin(payload map[string]any) (*Status, error) {
	member := stringMap(payload["member"])
	user := stringMap(member["user"])
	log.Printf("[Webhook] member %q joined guild %s", str(user["username"]), str(payload["guild_id"]))
	return &Status{Status: "processed", Type: string(webhookdomain.KindMemberJoin)}, nil
}

func (u *webhookUsecase) handleMemberLeave(payload map[string]any) (*Status, error) {
	user := stringMap(payload["user"])
	log.Printf("[Webhook] member %q left guild %s", str(user["username"]), str(payload["guild_id"]))
	return &Status{Status: "processed", Type: string(webhookdomain.KindMemberLeave)}, nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func stringMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
