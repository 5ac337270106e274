package payload

import (
	"fmt"
	"strings"
	"time"

	"github.com/hamed0406/ewsmon/internal/config"
	"github.com/hamed0406/ewsmon/internal/domain"
)

// Request is a ready-to-send probe request body plus its headers.
type Request struct {
	Body    string
	Headers map[string]string
}

type builderFunc func(c config.Credentials) string

// One builder per known api type. An api type without an entry is a
// first-class "no payload" outcome, not an error.
var builders = map[domain.APIType]builderFunc{
	domain.APIValidate: func(c config.Credentials) string {
		return fmt.Sprintf(validateTemplate, c.Account, c.Account)
	},
	domain.APITrack: func(c config.Credentials) string {
		return fmt.Sprintf(trackTemplate, c.TrackPIN)
	},
	domain.APIFreightTrack: func(c config.Credentials) string {
		return fmt.Sprintf(freightTrackTemplate, c.FreightPIN)
	},
	domain.APIFreightEstimate: func(c config.Credentials) string {
		return fmt.Sprintf(freightEstimateTemplate, c.FreightAccount, c.FreightAccount)
	},
	domain.APILocate: func(c config.Credentials) string {
		return locateTemplate
	},
	domain.APIEstimate: func(c config.Credentials) string {
		return fmt.Sprintf(estimateTemplate, c.Account)
	},
	domain.APIPickup: func(c config.Credentials) string {
		date := "<v1:Date>" + time.Now().UTC().Format("2006-01-02") + "</v1:Date>"
		return fmt.Sprintf(pickupTemplate, c.Account, date)
	},
	domain.APIServiceAvailability: func(c config.Credentials) string {
		return serviceAvailabilityTemplate
	},
	domain.APIShipTrack: func(c config.Credentials) string {
		return fmt.Sprintf(shipTrackTemplate, c.ShipTrackID, c.Account)
	},
	domain.APIReturn: func(c config.Credentials) string {
		return fmt.Sprintf(returnTemplate, c.Account, c.Account)
	},
}

// Supported reports whether a payload builder exists for the api type.
func Supported(t domain.APIType) bool {
	_, ok := builders[t]
	return ok
}

// Build renders the probe request for a target using the credential set
// already selected for the target's environment. The second return is
// false when no builder exists for the target's api type.
func Build(t domain.Target, c config.Credentials) (Request, bool) {
	fn, ok := builders[t.APIType]
	if !ok {
		return Request{}, false
	}
	headers := map[string]string{
		"Content-Type": "text/xml;charset=UTF-8",
	}
	// SOAPAction matters for the carrier's EWS endpoints that require it.
	if t.SOAPAction != "" {
		headers["SOAPAction"] = t.SOAPAction
	}
	return Request{Body: strings.TrimSpace(fn(c)), Headers: headers}, true
}
