package agents

import (
	"github.com/smarttransit-lk/agents-api/models"
	"github.com/smarttransit-lk/agents-api/repository"
)

// DefaultUserID is the fixed key the journey handler queries. Request
// identity is not wired through, so every caller shares this record.
const DefaultUserID = "default_user"

// PersonalizationAgent stores and serves travel preferences per user id.
type PersonalizationAgent struct {
	name  string
	store repository.PreferenceStore
}

// NewPersonalizationAgent creates the agent over the given store
func NewPersonalizationAgent(store repository.PreferenceStore) *PersonalizationAgent {
	return &PersonalizationAgent{
		name:  "Personalization Agent",
		store: store,
	}
}

// Name returns the agent's display name
func (a *PersonalizationAgent) Name() string {
	return a.name
}

// Learn stores the record for the user, unconditionally replacing any prior
// record. No merging, no validation.
func (a *PersonalizationAgent) Learn(userID string, record models.PreferenceRecord) {
	a.store.Put(userID, record)
}

// Suggestions returns the stored record for the user, or the literal default
// for unknown users.
func (a *PersonalizationAgent) Suggestions(userID string) models.PreferenceRecord {
	if record, ok := a.store.Get(userID); ok {
		return record
	}
	return models.DefaultPreference()
}
