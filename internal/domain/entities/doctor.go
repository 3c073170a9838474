package entities

// ConsultationMode describes how a practitioner sees patients.
type ConsultationMode string

const (
	// ConsultationVideo means the practitioner only consults remotely
	ConsultationVideo ConsultationMode = "Video Consult"

	// ConsultationInClinic means the practitioner only consults in person
	ConsultationInClinic ConsultationMode = "In Clinic"

	// ConsultationBoth means the practitioner offers both modes
	ConsultationBoth ConsultationMode = "Both"

	// ConsultationNotSpecified means the source carried no mode information
	ConsultationNotSpecified ConsultationMode = "Not specified"
)

// Doctor is a practitioner record after normalization. The collection is
// built once per session and treated as immutable afterwards.
//
// ExperienceYears and Fees stay nil when the source value was absent or
// unparseable; they default to 0 only at sort time, never here.
type Doctor struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Photo            string           `json:"photo,omitempty"`
	Specialties      []string         `json:"specialties"`
	ExperienceYears  *int             `json:"experience_years,omitempty"`
	Fees             *int             `json:"fees,omitempty"`
	Rating           float64          `json:"rating"`
	ConsultationMode ConsultationMode `json:"consultation_mode"`
	Languages        []string         `json:"languages"`
	ClinicName       string           `json:"clinic_name"`
	ClinicAddress    string           `json:"clinic_address"`
	Introduction     string           `json:"introduction,omitempty"`
}

// FallbackDoctors returns the built-in record set served when the upstream
// feed cannot be reached, keeping the directory browsable offline.
func FallbackDoctors() []Doctor {
	experience := 13
	fees := 500
	return []Doctor{
		{
			ID:               "111418",
			Name:             "Dr. Kshitija Jagdale",
			Photo:            "https://doctorlistingingestionpr.azureedge.net/539482078762581145_5a00f31266ed11efbae40ada1afa5198_ProfilePic_crop%20pic.jpg",
			Specialties:      []string{"Dentist"},
			ExperienceYears:  &experience,
			Fees:             &fees,
			Rating:           4.5,
			ConsultationMode: ConsultationBoth,
			Languages:        []string{"English", "हिन्दी", "मराठी"},
			ClinicName:       "The Dent Inn Advanced Dental Clinic",
			ClinicAddress:    "Wanowrie, Pune",
			Introduction:     "Dr. Kshitija Jagdale, BDS, has an Experience of 10 years, Graduated from Maharashtra University of Health Sciences, Nashik, currently practising in The Dent Inn Advanced Dental Clinic, Fatima Nagar, Pune",
		},
	}
}
