package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const senderName = "Backend Bot"

// Notifier posts messages to a Discord channel through an incoming webhook.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts content to the configured webhook. Discord answers 204 on
// success.
func (n *Notifier) Send(ctx context.Context, content string) error {
	if n.webhookURL == "" {
		return fmt.Errorf("discord webhook URL not configured")
	}

	body, err := json.Marshal(map[string]string{
		"content":  content,
		"username": senderName,
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("webhook rejected message: status %d", resp.StatusCode)
	}
	return nil
}
