package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
)

// Client exposes the outbound operations notifications used by the scheduler.
type Client interface {
	PostOverdueDigest(ctx context.Context, digest models.OverdueDigest) error
}

// WebhookClient is a resty-backed implementation of Client that POSTs the
// digest JSON to a configured webhook endpoint.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewWebhookClient builds a notifier for the given webhook URL.
func NewWebhookClient(webhookURL string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: webhookURL,
	}
}

// PostOverdueDigest delivers the digest payload to the webhook.
func (c *WebhookClient) PostOverdueDigest(ctx context.Context, digest models.OverdueDigest) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("post overdue digest: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook rejected digest: status %d", resp.StatusCode())
	}

	return nil
}
