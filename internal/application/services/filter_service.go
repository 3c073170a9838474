package services

import (
	"sort"
	"strings"

	"github.com/medloop/doctor-directory/internal/domain/entities"
)

// FilterService derives the visible result set from the canonical record
// set and a filter state. Apply is pure: the same records and filters
// always produce the same ordered result.
type FilterService struct{}

// NewFilterService creates a new filter service.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Apply narrows records stage by stage (search term, consultation mode,
// specialties) and then sorts. Each stage is skipped when its filter field
// is empty. Sorting is stable: ties keep their prior relative order.
func (s *FilterService) Apply(records []entities.Doctor, f entities.Filters) []entities.Doctor {
	result := make([]entities.Doctor, 0, len(records))
	result = append(result, records...)

	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		result = keep(result, func(d entities.Doctor) bool {
			if d.Name != "" && strings.Contains(strings.ToLower(d.Name), term) {
				return true
			}
			return d.ClinicName != "" && strings.Contains(strings.ToLower(d.ClinicName), term)
		})
	}

	if f.ConsultationType != "" {
		result = keep(result, func(d entities.Doctor) bool {
			// "Both" satisfies any requested mode
			return d.ConsultationMode == entities.ConsultationBoth ||
				string(d.ConsultationMode) == f.ConsultationType
		})
	}

	if len(f.Specialties) > 0 {
		result = keep(result, func(d entities.Doctor) bool {
			for _, want := range f.Specialties {
				for _, have := range d.Specialties {
					if have == want {
						return true
					}
				}
			}
			return false
		})
	}

	switch f.SortBy {
	case entities.SortByFees:
		sort.SliceStable(result, func(i, j int) bool {
			return intOrZero(result[i].Fees) < intOrZero(result[j].Fees)
		})
	case entities.SortByExperience:
		sort.SliceStable(result, func(i, j int) bool {
			return intOrZero(result[i].ExperienceYears) > intOrZero(result[j].ExperienceYears)
		})
	}

	return result
}

func keep(in []entities.Doctor, pred func(entities.Doctor) bool) []entities.Doctor {
	out := in[:0]
	for _, d := range in {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

// intOrZero defaults unparsed numeric fields to 0 at sort time only.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
