package entities

// SuggestionType identifies which index a suggestion came from.
type SuggestionType string

const (
	SuggestionDoctor    SuggestionType = "doctor"
	SuggestionSpecialty SuggestionType = "specialty"
	SuggestionClinic    SuggestionType = "clinic"
)

// Suggestion is a single autocomplete entry for a partial query.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	DisplayText string         `json:"display_text"`
	Subtitle    string         `json:"subtitle"`
	DoctorID    string         `json:"doctor_id,omitempty"`
	Photo       string         `json:"photo,omitempty"`
}
