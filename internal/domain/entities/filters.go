package entities

// Sort orders understood by the filter engine. Any other value leaves the
// input order untouched.
const (
	SortByFees       = "fees"
	SortByExperience = "experience"
)

// Filters is the single source of truth for directory state. All four
// fields are always present; an empty value means "no constraint".
type Filters struct {
	SearchTerm       string   `json:"search_term"`
	ConsultationType string   `json:"consultation_type"`
	Specialties      []string `json:"specialties"`
	SortBy           string   `json:"sort_by"`
}

// DefaultFilters returns the unconstrained filter state.
func DefaultFilters() Filters {
	return Filters{Specialties: []string{}}
}

// FilterPatch is a partially decoded Filters value, produced by the
// address-state codec. A nil field means the parameter was absent and the
// existing value must persist. Specialties is always defined (possibly
// empty) and always overwrites; that asymmetry comes from the address
// format itself.
type FilterPatch struct {
	SearchTerm       *string
	ConsultationType *string
	Specialties      []string
	SortBy           *string
}

// MergeInto overlays the patch on the given filters: present fields
// overwrite, absent fields persist.
func (p FilterPatch) MergeInto(f Filters) Filters {
	if p.SearchTerm != nil {
		f.SearchTerm = *p.SearchTerm
	}
	if p.ConsultationType != nil {
		f.ConsultationType = *p.ConsultationType
	}
	if p.Specialties != nil {
		f.Specialties = p.Specialties
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	return f
}
