package consent

import (
	"encoding/json"
	"time"
)

// Preferences is the caller-defined mapping from cookie category to acceptance
// flag. The shape is deliberately open; the service only requires a non-null
// JSON object.
type Preferences map[string]any

// ConsentRecord captures a visitor's cookie preferences. A record is
// addressable by user ID or consent ID; the caller supplies one per write, and
// a record may carry both after separate writes. The service never derives one
// key from the other.
type ConsentRecord struct {
	UserID      string
	ConsentID   string
	SessionID   string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaveRequest is the /save request body. Preferences stays raw until
// validation so a non-object value can be rejected with the exact message the
// API promises instead of a generic decode error.
type SaveRequest struct {
	UserID      string          `json:"userId,omitempty"`
	ConsentID   string          `json:"consentId,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
}

// DecodePreferences returns the preference mapping, or false when the field is
// missing, null, or not a JSON object.
func (r SaveRequest) DecodePreferences() (Preferences, bool) {
	if len(r.Preferences) == 0 {
		return nil, false
	}
	var prefs Preferences
	if err := json.Unmarshal(r.Preferences, &prefs); err != nil {
		return nil, false
	}
	if prefs == nil {
		return nil, false
	}
	return prefs, true
}

// SessionInfo is the /check-session response payload.
type SessionInfo struct {
	UserID      string      `json:"userId"`
	Preferences Preferences `json:"preferences"`
}

// DeleteDataRequest is the /delete-data request body.
type DeleteDataRequest struct {
	ConsentID string `json:"consentId"`
}
