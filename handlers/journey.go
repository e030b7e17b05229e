package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smarttransit-lk/agents-api/agents"
	"github.com/smarttransit-lk/agents-api/models"
)

// Aggregator is the data-aggregation surface the journey endpoint composes.
type Aggregator interface {
	CheckBackend(ctx context.Context) agents.BackendStatus
	RouteNetwork(ctx context.Context) (models.RouteNetwork, error)
}

// Optimizer orders route options by mode preference.
type Optimizer interface {
	Optimize(preference string) []models.RouteOption
}

// Personalizer serves stored travel preferences.
type Personalizer interface {
	Suggestions(userID string) models.PreferenceRecord
}

// Translator applies the language wrap to a journey payload.
type Translator interface {
	Translate(payload models.JourneyOptions, language string) interface{}
}

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// JourneyHandler handles HTTP requests for journey planning. The agents run
// strictly in sequence: aggregation, optimization, personalization,
// translation.
type JourneyHandler struct {
	aggregator   Aggregator
	optimizer    Optimizer
	personalizer Personalizer
	translator   Translator
}

// NewJourneyHandler creates a new handler over the four agents
func NewJourneyHandler(aggregator Aggregator, optimizer Optimizer, personalizer Personalizer, translator Translator) *JourneyHandler {
	return &JourneyHandler{
		aggregator:   aggregator,
		optimizer:    optimizer,
		personalizer: personalizer,
		translator:   translator,
	}
}

// journeyRequestWire tracks field presence so missing required fields can be
// rejected the way a schema validator would.
type journeyRequestWire struct {
	Origin             *string `json:"origin"`
	Destination        *string `json:"destination"`
	Language           *string `json:"language"`
	ModePreference     *string `json:"mode_preference"`
	AccessibilityNeeds *bool   `json:"accessibility_needs"`
}

// decodeJourneyRequest parses the request body, applying defaults for
// optional fields. Returns a validation error body for malformed JSON,
// wrongly typed fields, or missing origin/destination; no other validation
// is performed.
func decodeJourneyRequest(r *http.Request) (models.JourneyRequest, *ErrorResponse) {
	var wire journeyRequestWire
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		details := map[string]interface{}{
			"internal": err.Error(),
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			details["field"] = typeErr.Field
			details["expected"] = typeErr.Type.String()
		}
		return models.JourneyRequest{}, &ErrorResponse{
			Error:   "Invalid request body",
			Details: details,
		}
	}

	if wire.Origin == nil {
		return models.JourneyRequest{}, requiredFieldError("origin")
	}
	if wire.Destination == nil {
		return models.JourneyRequest{}, requiredFieldError("destination")
	}

	req := models.JourneyRequest{
		Origin:         *wire.Origin,
		Destination:    *wire.Destination,
		Language:       models.DefaultLanguage,
		ModePreference: models.DefaultModePreference,
	}
	if wire.Language != nil {
		req.Language = *wire.Language
	}
	if wire.ModePreference != nil {
		req.ModePreference = *wire.ModePreference
	}
	if wire.AccessibilityNeeds != nil {
		req.AccessibilityNeeds = *wire.AccessibilityNeeds
	}

	return req, nil
}

func requiredFieldError(field string) *ErrorResponse {
	return &ErrorResponse{
		Error: "Validation failed",
		Details: map[string]interface{}{
			"field":  field,
			"reason": "required",
		},
	}
}

// PlanJourney handles POST /api/plan-journey
// The backend probe is the only step that can fail, and it degrades to the
// offline fallback instead of failing the request.
func (h *JourneyHandler) PlanJourney(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, verr := decodeJourneyRequest(r)
	if verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, verr)
		return
	}

	backend := h.aggregator.CheckBackend(ctx)

	if _, err := h.aggregator.RouteNetwork(ctx); err != nil {
		// The network table is not part of the plan response; a repository
		// fault must not fail the request.
		log.Printf("route network unavailable: %v", err)
	}

	routes := h.optimizer.Optimize(req.ModePreference)

	// Queried for the fixed key only; the stored record does not yet feed
	// into the plan because request identity is not wired through.
	h.personalizer.Suggestions(agents.DefaultUserID)

	options := models.JourneyOptions{
		Origin:                  req.Origin,
		Destination:             req.Destination,
		Routes:                  routes,
		PreferenceApplied:       req.ModePreference,
		AccessibilityConsidered: req.AccessibilityNeeds,
	}

	response := models.PlanJourneyResponse{
		Success:        true,
		ProcessedBy:    "7 AI agents",
		PlanID:         uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		BackendStatus:  backend.Status,
		JourneyOptions: h.translator.Translate(options, req.Language),
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response body with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
