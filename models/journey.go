package models

import "time"

// Defaults applied to optional JourneyRequest fields when they are omitted
// from the request body.
const (
	DefaultLanguage       = "en"
	DefaultModePreference = "fastest"
)

// JourneyRequest is the request body for POST /api/plan-journey.
// Origin and destination are required; presence is enforced by the decode
// layer in handlers. The remaining fields default per the public contract.
// Any string value is accepted for origin, destination, language and
// mode_preference.
type JourneyRequest struct {
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	Language           string `json:"language"`
	ModePreference     string `json:"mode_preference"`
	AccessibilityNeeds bool   `json:"accessibility_needs"`
}

// RouteOption is a single journey alternative. Duration is free text and
// cost is "Rs. <integer>"; the cheapest sort parses the digits after the
// prefix, so malformed costs break that ordering.
type RouteOption struct {
	Mode               string   `json:"mode"`
	Duration           string   `json:"duration"`
	Cost               string   `json:"cost"`
	Steps              []string `json:"steps"`
	AccessibilityScore int      `json:"accessibility_score"`
}

// JourneyOptions is the unwrapped journey payload assembled by the planning
// endpoint. PreferenceApplied echoes the requested mode preference;
// AccessibilityConsidered echoes the request flag (it does not alter the
// routes).
type JourneyOptions struct {
	Origin                  string        `json:"origin"`
	Destination             string        `json:"destination"`
	Routes                  []RouteOption `json:"routes"`
	PreferenceApplied       string        `json:"preference_applied"`
	AccessibilityConsidered bool          `json:"accessibility_considered"`
}

// TranslatedPayload wraps JourneyOptions when the requested language is
// supported. The inner payload is carried verbatim; no field-level
// translation happens.
type TranslatedPayload struct {
	Translated bool           `json:"translated"`
	Language   string         `json:"language"`
	Data       JourneyOptions `json:"data"`
}

// PlanJourneyResponse is the envelope for POST /api/plan-journey.
// JourneyOptions is either a JourneyOptions or a TranslatedPayload depending
// on the requested language.
type PlanJourneyResponse struct {
	Success        bool        `json:"success"`
	ProcessedBy    string      `json:"processed_by"`
	PlanID         string      `json:"plan_id"`
	Timestamp      time.Time   `json:"timestamp"`
	BackendStatus  string      `json:"backend_status"`
	JourneyOptions interface{} `json:"journey_options"`
}
