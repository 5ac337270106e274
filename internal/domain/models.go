package domain

import (
	"strings"
	"time"
)

type TargetID string

type SubscriptionID string

// Environment classifies which credential set a target needs.
// The carrier runs its certification (UAT) endpoints on a dedicated host.
type Environment string

const (
	EnvProduction    Environment = "PROD"
	EnvCertification Environment = "UAT"
)

const certHost = "://certwebservices.purolator.com"

// EnvironmentFor derives the environment from a target URL.
func EnvironmentFor(rawURL string) Environment {
	if strings.Contains(rawURL, certHost) {
		return EnvCertification
	}
	return EnvProduction
}

// APIType is the closed set of probed carrier services. Targets may
// carry a tag outside this set (e.g. after a registry edit); builders
// treat that as "no payload", never as a crash.
type APIType string

const (
	APIValidate            APIType = "validate"
	APITrack               APIType = "track"
	APIFreightTrack        APIType = "freighttrack"
	APIFreightEstimate     APIType = "freightestimate"
	APILocate              APIType = "locate"
	APIEstimate            APIType = "estimate"
	APIPickup              APIType = "pickup"
	APIServiceAvailability APIType = "sa"
	APIShipTrack           APIType = "shiptrack"
	APIReturn              APIType = "return"
)

type Target struct {
	ID         TargetID  `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	SOAPAction string    `json:"soap_action,omitempty"`
	APIType    APIType   `json:"api_type"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t Target) Environment() Environment { return EnvironmentFor(t.URL) }

// EventType names an availability transition for outbound notifications.
type EventType string

const (
	EventUp   EventType = "up"
	EventDown EventType = "down"
)

// WebhookSubscription is owned by the (out-of-scope) admin surface and
// read-only here. Events is a comma-separated list of event types.
type WebhookSubscription struct {
	ID        SubscriptionID `json:"id"`
	URL       string         `json:"url"`
	Secret    string         `json:"-"`
	Events    string         `json:"events"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
}

// Subscribed reports whether the subscription wants the given event.
func (s WebhookSubscription) Subscribed(ev EventType) bool {
	for _, e := range strings.Split(s.Events, ",") {
		if strings.TrimSpace(e) == string(ev) {
			return true
		}
	}
	return false
}
