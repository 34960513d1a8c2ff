// Package location stores the geolocation context captured alongside a
// consent record: where the consent was given, from which network, on what
// device.
package location

import "time"

// Record is the geolocation snapshot keyed by consent ID.
type Record struct {
	ConsentID string  `json:"consentId"`
	IPAddress string  `json:"ipAddress,omitempty"`
	ISP       string  `json:"isp,omitempty"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	// Device is a human-readable label derived from the request User-Agent,
	// e.g. "Chrome on macOS". Never supplied by the client.
	Device    string    `json:"device,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Result reports the outcome of a location deletion.
type Result struct {
	Message   string `json:"message"`
	ConsentID string `json:"consentId"`
}
