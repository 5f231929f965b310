package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webhookdomain "discal-backend/internal/webhook/domain"
)

type fakeMessageRepo struct {
	appended []*webhookdomain.MessageLog
	err      error
}

func (r *fakeMessageRepo) Append(_ context.Context, log *webhookdomain.MessageLog) error {
	if r.err != nil {
		return r.err
	}
	r.appended = append(r.appended, log)
	return nil
}

func TestProcessMessagePersistsLog(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := NewWebhookUsecase(repo)

	status, err := uc.Process(context.Background(), map[string]any{
		"type":       "message",
		"id":         "msg-1",
		"channel_id": "chan-1",
		"guild_id":   "guild-1",
		"content":    "hello",
		"author":     map[string]any{"id": "u-1", "username": "alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, "processed", status.Status)
	assert.Equal(t, "message", status.Type)

	require.Len(t, repo.appended, 1)
	entry := repo.appended[0]
	assert.Equal(t, "msg-1", entry.MessageID)
	assert.Equal(t, "chan-1", entry.ChannelID)
	assert.Equal(t, "alice", entry.AuthorUsername)
	assert.Equal(t, "hello", entry.Content)
}

func TestProcessMessageRepoFailure(t *testing.T) {
	uc := NewWebhookUsecase(&fakeMessageRepo{err: errors.New("write failed")})

	_, err := uc.Process(context.Background(), map[string]any{"type": "message", "id": "msg-1"})

	require.Error(t, err)
}

func TestProcessInteraction(t *testing.T) {
	repo := &fakeMessageRepo{}
	uc := NewWebhookUsecase(repo)

	status, err := uc.Process(context.Background(), map[string]any{
		"type": "interaction",
		"user": map[string]any{"username": "bob"},
	})

	require.NoError(t, err)
	assert.Equal(t, "processed", status.Status)
	assert.Equal(t, "interaction", status.Type)
	assert.Empty(t, repo.appended)
}

func TestProcessMemberEvents(t *testing.T) {
	uc := NewWebhookUsecase(&fakeMessageRepo{})

	join, err := uc.Process(context.Background(), map[string]any{
		"type":     "member_join",
		"guild_id": "guild-1",
		"member":   map[string]any{"user": map[string]any{"username": "carol"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "member_join", join.Type)

	leave, err := uc.Process(context.Background(), map[string]any{
		"type":     "member_leave",
		"guild_id": "guild-1",
		"user":     map[string]any{"username": "carol"},
	})
	require.NoError(t, err)
	assert.Equal(t, "member_leave", leave.Type)
}

func TestProcessUnknownKindIsIgnoredNotRejected(t *testing.T) {
	uc := NewWebhookUsecase(&fakeMessageRepo{})

	status, err := uc.Process(context.Background(), map[string]any{"type": "typing_start"})

	require.NoError(t, err)
	assert.Equal(t, "ignored", status.Status)
	assert.Contains(t, status.Reason, "typing_start")
}

func TestProcessMissingTypeIsIgnored(t *testing.T) {
	uc := NewWebhookUsecase(&fakeMessageRepo{})

	status, err := uc.Process(context.Background(), map[string]any{"content": "no type field"})

	require.NoError(t, err)
	assert.Equal(t, "ignored", status.Status)
}

func TestParseEventKind(t *testing.T) {
	assert.Equal(t, webhookdomain.KindMessage, webhookdomain.ParseEventKind("message"))
	assert.Equal(t, webhookdomain.KindMemberJoin, webhookdomain.ParseEventKind("member_join"))
	assert.Equal(t, webhookdomain.KindUnknown, webhookdomain.ParseEventKind("MESSAGE"))
	assert.Equal(t, webhookdomain.KindUnknown, webhookdomain.ParseEventKind(""))
}
