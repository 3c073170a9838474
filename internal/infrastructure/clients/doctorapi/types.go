package doctorapi

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes a JSON string or number into a string. Some feed
// batches carry ids as numbers, others as strings.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(data)
	return nil
}

// RawDoctor is the upstream wire shape of a practitioner record. The feed is
// not consistent between batches, so the polymorphic numeric fields stay raw
// JSON and are probed during normalization, and both the structured and the
// flat specialty/clinic representations are declared.
type RawDoctor struct {
	ID                 FlexString      `json:"id"`
	Name               string          `json:"name"`
	Photo              string          `json:"photo"`
	Specialities       []SpecialityRef `json:"specialities"`
	Specialty          []string        `json:"specialty"`
	Experience         json.RawMessage `json:"experience"`
	Fees               json.RawMessage `json:"fees"`
	Rating             *float64        `json:"rating"`
	VideoConsult       bool            `json:"video_consult"`
	InClinic           bool            `json:"in_clinic"`
	ConsultationType   string          `json:"consultationType"`
	Languages          []string        `json:"languages"`
	Clinic             *RawClinic      `json:"clinic"`
	ClinicName         string          `json:"clinicName"`
	ClinicAddress      string          `json:"clinicAddress"`
	DoctorIntroduction string          `json:"doctor_introduction"`
}

// SpecialityRef is the structured specialty representation.
type SpecialityRef struct {
	Name string `json:"name"`
}

// RawClinic is the nested clinic representation.
type RawClinic struct {
	Name    string            `json:"name"`
	Address *RawClinicAddress `json:"address"`
}

// RawClinicAddress carries the clinic locality fields used for display.
type RawClinicAddress struct {
	Locality string `json:"locality"`
	City     string `json:"city"`
}
