package seed

import (
	"context"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/repo"
)

// DefaultTargets are the production carrier endpoints monitored out of
// the box. Names are the idempotency key for Targets.
var DefaultTargets = []domain.Target{
	{
		Name:       "Purolator Shipping Service",
		URL:        "https://webservices.purolator.com/EWS/v2/Shipping/ShippingService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v2/ValidateShipment",
		APIType:    domain.APIValidate,
		Enabled:    true,
	},
	{
		Name:       "Purolator Package Tracking Service",
		URL:        "https://webservices.purolator.com/EWS/V1/Tracking/TrackingService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v1/TrackPackagesByPin",
		APIType:    domain.APITrack,
		Enabled:    true,
	},
	{
		Name:       "Purolator Locator Service",
		URL:        "https://webservices.purolator.com/EWS/V1/Locator/LocatorService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v1/GetLocationsByPostalCode",
		APIType:    domain.APILocate,
		Enabled:    true,
	},
	{
		Name:       "Purolator Estimate Service",
		URL:        "https://webservices.purolator.com/EWS/V2/Estimating/EstimatingService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v2/GetQuickEstimate",
		APIType:    domain.APIEstimate,
		Enabled:    true,
	},
	{
		Name:       "Purolator Pickup Service",
		URL:        "https://webservices.purolator.com/EWS/V1/PickUp/PickUpService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v1/ValidatePickUp",
		APIType:    domain.APIPickup,
		Enabled:    true,
	},
	{
		Name:       "Purolator Service Availability Service",
		URL:        "https://webservices.purolator.com/EWS/V2/ServiceAvailability/ServiceAvailabilityService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v2/ValidateCityPostalCodeZip",
		APIType:    domain.APIServiceAvailability,
		Enabled:    true,
	},
	{
		Name:       "Purolator Returns Management Service",
		URL:        "https://webservices.purolator.com/EWS/V2/ReturnsManagement/ReturnsManagementService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v2/ValidateReturnShipment",
		APIType:    domain.APIReturn,
		Enabled:    true,
	},
	{
		Name:       "Purolator Shipment Tracking Service",
		URL:        "https://webservices.purolator.com/EWS/V2/ShipmentTracking/ShipmentTrackingService.asmx",
		SOAPAction: "http://purolator.com/pws/service/v2/TrackingByPinsOrReferences",
		APIType:    domain.APIShipTrack,
		Enabled:    true,
	},
}

// Targets inserts any default target not already present, keyed by
// name, and reports how many were created.
func Targets(ctx context.Context, store repo.TargetStore) (int, error) {
	created := 0
	for _, t := range DefaultTargets {
		existing, err := store.GetByName(ctx, t.Name)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		tt := t
		if err := store.Add(ctx, &tt); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
