package services

import (
	"encoding/json"
	"hash/fnv"
	"regexp"
	"strconv"

	"github.com/medloop/doctor-directory/internal/domain/entities"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
)

var (
	firstDigitRun = regexp.MustCompile(`\d+`)
	nonDigits     = regexp.MustCompile(`[^\d]`)
)

// NormalizerService converts raw feed records into canonical doctors.
type NormalizerService struct{}

// NewNormalizerService creates a new normalizer service.
func NewNormalizerService() *NormalizerService {
	return &NormalizerService{}
}

// Normalize maps every raw record to a canonical one. It never fails:
// missing fields fall back to zero values, and numeric fields that cannot
// be parsed stay nil so the sort stage can distinguish them from a real 0.
func (s *NormalizerService) Normalize(raw []doctorapi.RawDoctor) []entities.Doctor {
	doctors := make([]entities.Doctor, 0, len(raw))
	for i, r := range raw {
		doctors = append(doctors, s.normalizeOne(i, r))
	}
	return doctors
}

func (s *NormalizerService) normalizeOne(index int, r doctorapi.RawDoctor) entities.Doctor {
	d := entities.Doctor{
		ID:               string(r.ID),
		Name:             r.Name,
		Photo:            r.Photo,
		Specialties:      extractSpecialties(r),
		ExperienceYears:  parseExperience(r.Experience),
		Fees:             parseFees(r.Fees),
		ConsultationMode: deriveConsultationMode(r),
		Languages:        r.Languages,
		Introduction:     r.DoctorIntroduction,
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}

	if r.Rating != nil && *r.Rating > 0 {
		d.Rating = *r.Rating
	} else {
		d.Rating = fallbackRating(string(r.ID), index)
	}

	d.ClinicName, d.ClinicAddress = extractClinic(r)
	return d
}

// extractSpecialties prefers the structured specialities field and falls
// back to the flat string list.
func extractSpecialties(r doctorapi.RawDoctor) []string {
	if r.Specialities != nil {
		out := make([]string, 0, len(r.Specialities))
		for _, sp := range r.Specialities {
			out = append(out, sp.Name)
		}
		return out
	}
	if r.Specialty != nil {
		return r.Specialty
	}
	return []string{}
}

// parseExperience accepts a JSON number as-is, or extracts the first run of
// decimal digits from strings such as "13 Years of experience".
func parseExperience(raw json.RawMessage) *int {
	if isAbsent(raw) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == 0 {
			return nil
		}
		v := int(n)
		return &v
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	m := firstDigitRun.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}

// parseFees strips currency symbols and separators before parsing, so
// "₹1,200" becomes 1200.
func parseFees(raw json.RawMessage) *int {
	if isAbsent(raw) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == 0 {
			return nil
		}
		v := int(n)
		return &v
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	digits := nonDigits.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &v
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null" || string(raw) == `""`
}

// deriveConsultationMode resolves the mode with a fixed precedence: the
// boolean flags win over an explicit consultationType string.
func deriveConsultationMode(r doctorapi.RawDoctor) entities.ConsultationMode {
	switch {
	case r.VideoConsult && r.InClinic:
		return entities.ConsultationBoth
	case r.VideoConsult:
		return entities.ConsultationVideo
	case r.InClinic:
		return entities.ConsultationInClinic
	case r.ConsultationType != "":
		return entities.ConsultationMode(r.ConsultationType)
	default:
		return entities.ConsultationNotSpecified
	}
}

// extractClinic prefers the nested clinic object, composing the display
// address as "locality, city", and falls back to the flat fields.
func extractClinic(r doctorapi.RawDoctor) (name, address string) {
	if r.Clinic != nil {
		name = r.Clinic.Name
		if r.Clinic.Address != nil && r.Clinic.Address.Locality != "" {
			address = r.Clinic.Address.Locality + ", " + r.Clinic.Address.City
		}
	}
	if name == "" {
		name = r.ClinicName
	}
	if address == "" {
		address = r.ClinicAddress
	}
	return name, address
}

// fallbackRating stands in for a missing source rating. It is derived from
// the record identity rather than a random draw so repeated normalization
// of the same payload stays reproducible.
func fallbackRating(id string, index int) float64 {
	h := fnv.New32a()
	if id != "" {
		h.Write([]byte(id))
	} else {
		h.Write([]byte(strconv.Itoa(index)))
	}
	if h.Sum32()%2 == 0 {
		return 4.0
	}
	return 5.0
}
