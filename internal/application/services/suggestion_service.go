package services

import (
	"strings"

	"github.com/medloop/doctor-directory/internal/domain/entities"
)

const (
	maxDoctorSuggestions    = 3
	maxSpecialtySuggestions = 2
	maxClinicSuggestions    = 2
	maxSuggestions          = 5
)

// SuggestionService produces ranked autocomplete suggestions for a partial
// query. Composition is first-match-wins by category, not score-based.
type SuggestionService struct{}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// Suggest returns up to five suggestions: doctor-name matches first, then
// distinct specialty matches, then distinct clinic matches. The group caps
// apply before the final cut, so a query matching three doctors still
// leaves room for two specialties.
func (s *SuggestionService) Suggest(records []entities.Doctor, query string) []entities.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []entities.Suggestion

	doctorCount := 0
	for _, d := range records {
		if doctorCount == maxDoctorSuggestions {
			break
		}
		if d.Name == "" || !strings.Contains(strings.ToLower(d.Name), q) {
			continue
		}
		out = append(out, entities.Suggestion{
			Type:        entities.SuggestionDoctor,
			DisplayText: d.Name,
			Subtitle:    firstSpecialtyOrDefault(d),
			DoctorID:    d.ID,
			Photo:       d.Photo,
		})
		doctorCount++
	}

	seenSpecialties := make(map[string]struct{})
specialties:
	for _, d := range records {
		for _, sp := range d.Specialties {
			if sp == "" || !strings.Contains(strings.ToLower(sp), q) {
				continue
			}
			if _, ok := seenSpecialties[sp]; ok {
				continue
			}
			seenSpecialties[sp] = struct{}{}
			out = append(out, entities.Suggestion{
				Type:        entities.SuggestionSpecialty,
				DisplayText: sp,
				Subtitle:    "Specialty",
			})
			if len(seenSpecialties) == maxSpecialtySuggestions {
				break specialties
			}
		}
	}

	seenClinics := make(map[string]struct{})
	for _, d := range records {
		if len(seenClinics) == maxClinicSuggestions {
			break
		}
		name := d.ClinicName
		if name == "" || !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		if _, ok := seenClinics[name]; ok {
			continue
		}
		seenClinics[name] = struct{}{}
		out = append(out, entities.Suggestion{
			Type:        entities.SuggestionClinic,
			DisplayText: name,
			Subtitle:    "Clinic",
		})
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// ApplyToFilters returns the filter state that selecting a suggestion
// produces. Doctor and clinic suggestions become a search term and clear
// the specialty selection; a specialty suggestion replaces the whole
// specialty selection and clears the search term.
func (s *SuggestionService) ApplyToFilters(f entities.Filters, sel entities.Suggestion) entities.Filters {
	switch sel.Type {
	case entities.SuggestionSpecialty:
		f.SearchTerm = ""
		f.Specialties = []string{sel.DisplayText}
	default:
		f.SearchTerm = sel.DisplayText
		f.Specialties = []string{}
	}
	return f
}

func firstSpecialtyOrDefault(d entities.Doctor) string {
	if len(d.Specialties) > 0 && d.Specialties[0] != "" {
		return d.Specialties[0]
	}
	return "Doctor"
}
