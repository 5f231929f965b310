package repository

import (
	"context"

	webhookdomain "discal-backend/internal/webhook/domain"
)

// MessageLogRepository appends accepted inbound message events. Append is
// idempotent on message id: a duplicate is silently dropped.
type MessageLogRepository interface {
	Append(ctx context.Context, log *webhookdomain.MessageLog) error
}
