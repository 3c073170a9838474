// Package urlstate maps filter state onto the shareable query-string
// address representation.
package urlstate

import (
	"net/url"
	"strings"

	"github.com/medloop/doctor-directory/internal/domain/entities"
)

const (
	paramConsultationType = "consultationType"
	paramSpecialties      = "specialties"
	paramSortBy           = "sortBy"
	paramSearch           = "search"
)

// Encode serializes filters into a query string. The encoding is a full
// replacement: parameters the codec does not own are never carried over,
// and empty/default fields are omitted so the address stays minimal.
func Encode(f entities.Filters) string {
	var pairs []string
	if f.ConsultationType != "" {
		pairs = append(pairs, paramConsultationType+"="+escape(f.ConsultationType))
	}
	if len(f.Specialties) > 0 {
		escaped := make([]string, len(f.Specialties))
		for i, sp := range f.Specialties {
			escaped[i] = escape(sp)
		}
		pairs = append(pairs, paramSpecialties+"="+strings.Join(escaped, ","))
	}
	if f.SortBy != "" {
		pairs = append(pairs, paramSortBy+"="+escape(f.SortBy))
	}
	if strings.TrimSpace(f.SearchTerm) != "" {
		pairs = append(pairs, paramSearch+"="+escape(f.SearchTerm))
	}
	return strings.Join(pairs, "&")
}

// Decode parses a query string into a partial filter overlay. Values are
// copied verbatim without enum validation; an invalid consultation type
// simply matches nothing downstream. Specialties is always defined in the
// result, even when the parameter is absent. A malformed query string
// fails soft to an empty patch.
func Decode(raw string) entities.FilterPatch {
	patch := entities.FilterPatch{Specialties: []string{}}

	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return patch
	}

	if v := values.Get(paramConsultationType); v != "" {
		patch.ConsultationType = &v
	}
	if v := values.Get(paramSpecialties); v != "" {
		patch.Specialties = strings.Split(v, ",")
	}
	if v := values.Get(paramSortBy); v != "" {
		patch.SortBy = &v
	}
	if v := values.Get(paramSearch); v != "" {
		patch.SearchTerm = &v
	}
	return patch
}

// escape applies standard component encoding but keeps commas literal so
// the specialties list reads naturally in a shared link.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "%2C", ",")
}
