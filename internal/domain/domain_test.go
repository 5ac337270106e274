package domain

import "testing"

func TestEnvironmentFor(t *testing.T) {
	cases := []struct {
		url  string
		want Environment
	}{
		{"https://webservices.purolator.com/EWS/V1/Tracking/TrackingService.asmx", EnvProduction},
		{"https://certwebservices.purolator.com/EWS/V1/Tracking/TrackingService.asmx", EnvCertification},
		{"http://certwebservices.purolator.com/EWS/v2/Shipping/ShippingService.asmx", EnvCertification},
		{"https://example.com/certwebservices.purolator.com", EnvProduction}, // host only, not path
		{"", EnvProduction},
	}
	for _, c := range cases {
		if got := EnvironmentFor(c.url); got != c.want {
			t.Fatalf("EnvironmentFor(%q) = %s, want %s", c.url, got, c.want)
		}
	}
}

func TestTarget_Environment(t *testing.T) {
	tgt := Target{URL: "https://certwebservices.purolator.com/EWS/V1/Locator/LocatorService.asmx"}
	if tgt.Environment() != EnvCertification {
		t.Fatalf("want UAT, got %s", tgt.Environment())
	}
}

func TestWebhookSubscription_Subscribed(t *testing.T) {
	s := WebhookSubscription{Events: "down, up ,incident"}
	if !s.Subscribed(EventDown) || !s.Subscribed(EventUp) {
		t.Fatalf("expected subscription to include up and down: %q", s.Events)
	}
	if s.Subscribed(EventType("maintenance")) {
		t.Fatalf("unexpected subscription to maintenance")
	}

	empty := WebhookSubscription{Events: ""}
	if empty.Subscribed(EventDown) {
		t.Fatalf("empty event list should match nothing")
	}
}
