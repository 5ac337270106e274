package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
)

// teamsMaxPayload is the workflow endpoint's documented request cap.
const teamsMaxPayload = 256 * 1024

// Teams posts adaptive cards to a Teams workflow webhook.
type Teams struct {
	Webhook string
	Client  *http.Client
	Log     *zap.Logger
}

func NewTeams(webhook string, log *zap.Logger) *Teams {
	if webhook == "" {
		return nil
	}
	return &Teams{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 5 * time.Second},
		Log:     log,
	}
}

type teamsMessage struct {
	Type        string            `json:"type"`
	Attachments []teamsAttachment `json:"attachments"`
}

type teamsAttachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
}

type adaptiveCard struct {
	Schema  string     `json:"$schema"`
	Type    string     `json:"type"`
	Version string     `json:"version"`
	Body    []cardItem `json:"body"`
}

type cardItem struct {
	Type   string     `json:"type"`
	Text   string     `json:"text,omitempty"`
	Size   string     `json:"size,omitempty"`
	Weight string     `json:"weight,omitempty"`
	Color  string     `json:"color,omitempty"`
	Wrap   bool       `json:"wrap,omitempty"`
	Facts  []cardFact `json:"facts,omitempty"`
}

type cardFact struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

func (t *Teams) Send(ctx context.Context, ev Event) error {
	if t == nil || t.Webhook == "" {
		return errors.New("teams disabled")
	}

	body, err := json.Marshal(buildMessage(ev))
	if err != nil {
		return fmt.Errorf("marshal card: %w", err)
	}
	if len(body) > teamsMaxPayload {
		t.Log.Warn("teams card exceeds size cap, dropping",
			zap.String("target", ev.Target.Name),
			zap.Int("bytes", len(body)))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("teams request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("teams post: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("teams non-2xx: %d", resp.StatusCode)
	}
	return nil
}

func buildMessage(ev Event) teamsMessage {
	title := "RECOVERED: " + ev.Target.Name
	color := "Good"
	if ev.Type == domain.EventDown {
		title = "DOWN: " + ev.Target.Name
		color = "Attention"
	}

	status := "n/a"
	if ev.HTTPStatus != nil {
		status = fmt.Sprintf("%d", *ev.HTTPStatus)
	}
	latency := "n/a"
	if ev.DurationMS != nil {
		latency = fmt.Sprintf("%.0f ms", *ev.DurationMS)
	}

	body := []cardItem{
		{Type: "TextBlock", Text: title, Size: "Large", Weight: "Bolder", Color: color, Wrap: true},
		{Type: "FactSet", Facts: []cardFact{
			{Title: "Service", Value: ev.Target.Name},
			{Title: "Environment", Value: string(ev.Target.Environment())},
			{Title: "URL", Value: ev.Target.URL},
			{Title: "HTTP Status", Value: status},
			{Title: "Last Latency", Value: latency},
			{Title: "Time", Value: ev.When.UTC().Format(time.RFC3339)},
		}},
	}
	if ev.Reason != "" {
		body = append(body, cardItem{Type: "TextBlock", Text: ev.Reason, Wrap: true})
	}

	card, _ := json.Marshal(adaptiveCard{
		Schema:  "http://adaptivecards.io/schemas/adaptive-card.json",
		Type:    "AdaptiveCard",
		Version: "1.4",
		Body:    body,
	})
	return teamsMessage{
		Type: "message",
		Attachments: []teamsAttachment{{
			ContentType: "application/vnd.microsoft.card.adaptive",
			Content:     card,
		}},
	}
}
