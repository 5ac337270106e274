package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
)

func downEvent() Event {
	status := 503
	ms := 812.4
	return Event{
		Type: domain.EventDown,
		Target: domain.Target{
			ID:      "T1",
			Name:    "Purolator Package Tracking Service",
			URL:     "https://webservices.purolator.com/EWS/V1/Tracking/TrackingService.asmx",
			APIType: domain.APITrack,
		},
		HTTPStatus: &status,
		DurationMS: &ms,
		Reason:     "[PROD] http 503 ct=text/html body_snip=unavailable",
		When:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestTeams_SendsAdaptiveCard(t *testing.T) {
	var got teamsMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(200)
	}))
	defer ts.Close()

	tm := NewTeams(ts.URL, zap.NewNop())
	if err := tm.Send(context.Background(), downEvent()); err != nil {
		t.Fatalf("send: %v", err)
	}

	if got.Type != "message" || len(got.Attachments) != 1 {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	att := got.Attachments[0]
	if att.ContentType != "application/vnd.microsoft.card.adaptive" {
		t.Fatalf("wrong attachment content type: %q", att.ContentType)
	}

	var card adaptiveCard
	if err := json.Unmarshal(att.Content, &card); err != nil {
		t.Fatalf("card not valid json: %v", err)
	}
	if card.Version != "1.4" {
		t.Fatalf("card version: %q", card.Version)
	}
	if !strings.HasPrefix(card.Body[0].Text, "DOWN:") || card.Body[0].Color != "Attention" {
		t.Fatalf("title block: %+v", card.Body[0])
	}

	facts := map[string]string{}
	for _, f := range card.Body[1].Facts {
		facts[f.Title] = f.Value
	}
	if facts["Environment"] != "PROD" || facts["HTTP Status"] != "503" {
		t.Fatalf("facts: %+v", facts)
	}
}

func TestTeams_RecoveredTitle(t *testing.T) {
	ev := downEvent()
	ev.Type = domain.EventUp
	msg := buildMessage(ev)

	var card adaptiveCard
	_ = json.Unmarshal(msg.Attachments[0].Content, &card)
	if !strings.HasPrefix(card.Body[0].Text, "RECOVERED:") || card.Body[0].Color != "Good" {
		t.Fatalf("title block: %+v", card.Body[0])
	}
}

func TestTeams_OversizedCardIsDropped(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	ev := downEvent()
	ev.Reason = strings.Repeat("x", teamsMaxPayload)

	tm := NewTeams(ts.URL, zap.NewNop())
	if err := tm.Send(context.Background(), ev); err != nil {
		t.Fatalf("dropping must not surface an error: %v", err)
	}
	if called {
		t.Fatalf("oversized card should never be posted")
	}
}

func TestTeams_Non2xxIsAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
	}))
	defer ts.Close()

	tm := NewTeams(ts.URL, zap.NewNop())
	if err := tm.Send(context.Background(), downEvent()); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestNewTeams_EmptyWebhookDisabled(t *testing.T) {
	if tm := NewTeams("", zap.NewNop()); tm != nil {
		t.Fatalf("empty webhook should disable the channel")
	}
}
