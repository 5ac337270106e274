package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/repo"
)

// CustomerWebhooks delivers signed event payloads to every active
// subscription that opted into the event type. Delivery is best effort
// with no retries; a failed endpoint is logged and skipped.
type CustomerWebhooks struct {
	Subs   repo.SubscriptionStore
	Client *http.Client
	Log    *zap.Logger
}

func NewCustomerWebhooks(subs repo.SubscriptionStore, log *zap.Logger) *CustomerWebhooks {
	return &CustomerWebhooks{
		Subs:   subs,
		Client: &http.Client{Timeout: 5 * time.Second},
		Log:    log,
	}
}

type webhookPayload struct {
	EventType     string   `json:"event_type"`
	Service       string   `json:"service"`
	Environment   string   `json:"environment"`
	URL           string   `json:"url"`
	HTTPStatus    *int     `json:"http_status"`
	LastLatencyMS *float64 `json:"last_latency_ms"`
	Time          string   `json:"time"`
}

func (c *CustomerWebhooks) Send(ctx context.Context, ev Event) error {
	subs, err := c.Subs.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}

	body, err := json.Marshal(webhookPayload{
		EventType:     string(ev.Type),
		Service:       ev.Target.Name,
		Environment:   string(ev.Target.Environment()),
		URL:           ev.Target.URL,
		HTTPStatus:    ev.HTTPStatus,
		LastLatencyMS: ev.DurationMS,
		Time:          ev.When.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var errs error
	for _, sub := range subs {
		if !sub.Subscribed(ev.Type) {
			continue
		}
		if err := c.deliver(ctx, sub.URL, sub.Secret, body); err != nil {
			c.Log.Warn("webhook delivery failed",
				zap.String("subscription_id", string(sub.ID)),
				zap.String("url", sub.URL),
				zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		c.Log.Info("webhook delivered",
			zap.String("subscription_id", string(sub.ID)),
			zap.String("event_type", string(ev.Type)),
			zap.String("service", ev.Target.Name))
	}
	return errs
}

// deliver signs the exact body bytes so receivers can verify the
// signature against the raw request body.
func (c *CustomerWebhooks) deliver(ctx context.Context, url, secret string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Signature", Sign(secret, body))

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx: %d", resp.StatusCode)
	}
	return nil
}

// Sign computes the signature header value for a payload.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
