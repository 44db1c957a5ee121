package api

import (
	"pacoupa/backend/internal/engine"
	"pacoupa/backend/internal/property"
)

// Evaluation states. The distinction matters to the UI: an incomplete
// profile shows the form, an unsupported configuration shows the blocking
// message, and ok shows the (possibly empty) solution lists.
const (
	StatusIncomplete  = "incomplete"
	StatusUnsupported = "unsupported"
	StatusOK          = "ok"
)

// SolutionsResponse is the evaluation payload for a profile.
type SolutionsResponse struct {
	RequestID     string   `json:"requestId"`
	Status        string   `json:"status"`
	MissingFields []string `json:"missingFields,omitempty"`
	// Message carries the blocking explanation for unsupported
	// configurations.
	Message         string                   `json:"message,omitempty"`
	Scenario        engine.Scenario          `json:"scenario,omitempty"`
	EnvelopeQuality property.EnvelopeQuality `json:"envelopeQuality,omitempty"`
	Result          *engine.Result           `json:"result,omitempty"`
	ShareToken      string                   `json:"shareToken,omitempty"`
}

// ShareResponse resolves a share token into the profile it carries plus its
// evaluation.
type ShareResponse struct {
	Property property.Property `json:"property"`
	SolutionsResponse
}
