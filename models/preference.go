package models

// PreferenceRecord is the stored travel preference for one user. Records
// live for the process lifetime only; a write replaces any prior record
// wholesale.
type PreferenceRecord struct {
	Mode          string `json:"mode"`
	Accessibility bool   `json:"accessibility"`
}

// DefaultPreference is returned for users with no stored record.
func DefaultPreference() PreferenceRecord {
	return PreferenceRecord{Mode: "fastest", Accessibility: false}
}
