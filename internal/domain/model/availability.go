package model

// Service names offered by the platform.
const (
	ServiceScrap    = "scrap"
	ServiceCleaning = "cleaning"
	ServiceVehicle  = "vehicle"
	ServiceLaundry  = "laundry"
)

// AvailabilityQuery is a serviceability question for one location.
type AvailabilityQuery struct {
	Point   GeoPoint
	Pincode string
}

// AvailabilityReport is the customer-facing serviceability answer.
//
// @Description Serviceability report for a location
type AvailabilityReport struct {
	ServiceabilityResult
	Pincode          string   `json:"pincode,omitempty" example:"560040"`
	AllowedServices  []string `json:"allowed_services" example:"scrap,cleaning,vehicle,laundry"`
	RestrictionRules []string `json:"restriction_rules"`
	Advisory         string   `json:"advisory" example:"BlinkLean services are available in your area."`
}
