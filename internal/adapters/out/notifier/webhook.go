// Package notifier sends customer notifications to an external messaging
// webhook. The webhook owns the actual channel (email, SMS); this adapter
// only delivers the contact and the message text.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryMax   = 3
	defaultTimeout    = 10 * time.Second
	defaultRetryWaits = 500 * time.Millisecond
)

// WebhookClient implements ports.NotificationClient over an HTTP webhook.
// Transient failures are retried with backoff before the error is reported
// to the caller.
type WebhookClient struct {
	url    string
	client *retryablehttp.Client
}

type webhookPayload struct {
	Contact string `json:"contact"`
	Message string `json:"message"`
}

// NewWebhookClient creates a notification client posting to the given URL.
func NewWebhookClient(url string, logger *slog.Logger) *WebhookClient {
	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.RetryWaitMin = defaultRetryWaits
	client.HTTPClient.Timeout = defaultTimeout
	client.Logger = slog.NewLogLogger(logger.With("component", "notifier").Handler(), slog.LevelDebug)

	return &WebhookClient{
		url:    url,
		client: client,
	}
}

// Notify posts the message for the contact to the webhook. A non-2xx
// response after retries is reported as an error.
func (c *WebhookClient) Notify(ctx context.Context, contact, message string) error {
	body, err := json.Marshal(webhookPayload{
		Contact: contact,
		Message: message,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	return nil
}
