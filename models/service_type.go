package models

import (
	"fmt"
	"time"
)

// ServiceType enumerates the detailing services offered.
type ServiceType string

const (
	ServiceFullDetail ServiceType = "full_detail"
	ServiceInterior   ServiceType = "interior"
	ServiceExterior   ServiceType = "exterior"
	ServiceCoating    ServiceType = "coating"
	ServiceWash       ServiceType = "wash"
	ServiceOther      ServiceType = "other"
)

// serviceDurations maps each service type to its expected duration.
var serviceDurations = map[ServiceType]time.Duration{
	ServiceFullDetail: 240 * time.Minute,
	ServiceInterior:   180 * time.Minute,
	ServiceExterior:   120 * time.Minute,
	ServiceCoating:    360 * time.Minute,
	ServiceWash:       60 * time.Minute,
	ServiceOther:      120 * time.Minute,
}

// BookingBuffer is the fixed gap enforced after a booking's service
// duration for travel and setup.
const BookingBuffer = 30 * time.Minute

// ParseServiceType validates a raw string against the closed set of
// service types. Unknown values are an error, never a silent default.
func ParseServiceType(s string) (ServiceType, error) {
	switch t := ServiceType(s); t {
	case ServiceFullDetail, ServiceInterior, ServiceExterior, ServiceCoating, ServiceWash, ServiceOther:
		return t, nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

// Duration returns the expected service duration for the type.
func (t ServiceType) Duration() time.Duration {
	return serviceDurations[t]
}
