package agents

import "github.com/smarttransit-lk/agents-api/models"

// supportedLanguages are the languages the translation wrap is raised for:
// Sinhala and Tamil.
var supportedLanguages = map[string]bool{
	"si": true,
	"ta": true,
}

// LanguageAgent tags journey payloads for supported languages. Field-level
// translation is not implemented; the payload passes through untouched
// either way.
type LanguageAgent struct {
	name string
}

// NewLanguageAgent creates the language agent
func NewLanguageAgent() *LanguageAgent {
	return &LanguageAgent{name: "Language & Accessibility Agent"}
}

// Name returns the agent's display name
func (a *LanguageAgent) Name() string {
	return a.name
}

// Translate wraps the payload with the translated flag when the language is
// supported, and returns it unchanged for any other language value.
func (a *LanguageAgent) Translate(payload models.JourneyOptions, language string) interface{} {
	if supportedLanguages[language] {
		return models.TranslatedPayload{
			Translated: true,
			Language:   language,
			Data:       payload,
		}
	}
	return payload
}
