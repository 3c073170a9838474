package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medloop/doctor-directory/internal/application/services"
	"github.com/medloop/doctor-directory/internal/domain/entities"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
)

func rawMsg(s string) json.RawMessage { return json.RawMessage(s) }

func TestNormalizerService_Normalize_ParsesNumericStrings(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{
			ID:         "d1",
			Name:       "Dr. Test",
			Experience: rawMsg(`"13 Years of experience"`),
			Fees:       rawMsg(`"₹ 1,200"`),
		},
	})

	require.Len(t, doctors, 1)
	require.NotNil(t, doctors[0].ExperienceYears)
	assert.Equal(t, 13, *doctors[0].ExperienceYears)
	require.NotNil(t, doctors[0].Fees)
	assert.Equal(t, 1200, *doctors[0].Fees)
}

func TestNormalizerService_Normalize_AcceptsPlainNumbers(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{ID: "d1", Experience: rawMsg(`7`), Fees: rawMsg(`450`)},
	})

	require.Len(t, doctors, 1)
	require.NotNil(t, doctors[0].ExperienceYears)
	assert.Equal(t, 7, *doctors[0].ExperienceYears)
	require.NotNil(t, doctors[0].Fees)
	assert.Equal(t, 450, *doctors[0].Fees)
}

func TestNormalizerService_Normalize_UnparseableNumericsStayNil(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{ID: "d1", Experience: rawMsg(`"senior consultant"`), Fees: rawMsg(`"free"`)},
		{ID: "d2"},
		{ID: "d3", Experience: rawMsg(`null`), Fees: rawMsg(`""`)},
	})

	require.Len(t, doctors, 3)
	for _, d := range doctors {
		assert.Nil(t, d.ExperienceYears, "id %s", d.ID)
		assert.Nil(t, d.Fees, "id %s", d.ID)
	}
}

func TestNormalizerService_Normalize_ZeroNumericsStayNil(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{ID: "d1", Experience: rawMsg(`0`), Fees: rawMsg(`0`)},
	})

	require.Len(t, doctors, 1)
	assert.Nil(t, doctors[0].ExperienceYears)
	assert.Nil(t, doctors[0].Fees)
}

func TestNormalizerService_Normalize_PrefersStructuredSpecialties(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{
			ID:           "d1",
			Specialities: []doctorapi.SpecialityRef{{Name: "Dentist"}, {Name: "Orthodontist"}},
			Specialty:    []string{"ignored"},
		},
		{ID: "d2", Specialty: []string{"Cardiologist"}},
		{ID: "d3"},
	})

	require.Len(t, doctors, 3)
	assert.Equal(t, []string{"Dentist", "Orthodontist"}, doctors[0].Specialties)
	assert.Equal(t, []string{"Cardiologist"}, doctors[1].Specialties)
	assert.NotNil(t, doctors[2].Specialties)
	assert.Empty(t, doctors[2].Specialties)
}

func TestNormalizerService_Normalize_ConsultationModePrecedence(t *testing.T) {
	normalizer := services.NewNormalizerService()

	cases := []struct {
		name string
		raw  doctorapi.RawDoctor
		want entities.ConsultationMode
	}{
		{"both flags", doctorapi.RawDoctor{VideoConsult: true, InClinic: true}, entities.ConsultationBoth},
		{"video only", doctorapi.RawDoctor{VideoConsult: true}, entities.ConsultationVideo},
		{"clinic only", doctorapi.RawDoctor{InClinic: true}, entities.ConsultationInClinic},
		{"flags beat string", doctorapi.RawDoctor{VideoConsult: true, ConsultationType: "In Clinic"}, entities.ConsultationVideo},
		{"string fallback", doctorapi.RawDoctor{ConsultationType: "Video Consult"}, entities.ConsultationVideo},
		{"nothing", doctorapi.RawDoctor{}, entities.ConsultationNotSpecified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doctors := normalizer.Normalize([]doctorapi.RawDoctor{tc.raw})
			require.Len(t, doctors, 1)
			assert.Equal(t, tc.want, doctors[0].ConsultationMode)
		})
	}
}

func TestNormalizerService_Normalize_ClinicFromNestedAddress(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{
		{
			ID: "d1",
			Clinic: &doctorapi.RawClinic{
				Name:    "The Dent Inn",
				Address: &doctorapi.RawClinicAddress{Locality: "Wanowrie", City: "Pune"},
			},
		},
		{ID: "d2", ClinicName: "Flat Clinic", ClinicAddress: "Somewhere, Mumbai"},
		{
			ID:            "d3",
			Clinic:        &doctorapi.RawClinic{Name: "No Address Clinic"},
			ClinicAddress: "Fallback Street",
		},
	})

	require.Len(t, doctors, 3)
	assert.Equal(t, "The Dent Inn", doctors[0].ClinicName)
	assert.Equal(t, "Wanowrie, Pune", doctors[0].ClinicAddress)
	assert.Equal(t, "Flat Clinic", doctors[1].ClinicName)
	assert.Equal(t, "Somewhere, Mumbai", doctors[1].ClinicAddress)
	assert.Equal(t, "No Address Clinic", doctors[2].ClinicName)
	assert.Equal(t, "Fallback Street", doctors[2].ClinicAddress)
}

func TestNormalizerService_Normalize_RatingFallbackIsDeterministic(t *testing.T) {
	normalizer := services.NewNormalizerService()
	rating := 4.7
	zero := 0.0

	raw := []doctorapi.RawDoctor{
		{ID: "d1", Rating: &rating},
		{ID: "d2"},
		{ID: "d3", Rating: &zero},
	}

	first := normalizer.Normalize(raw)
	second := normalizer.Normalize(raw)

	require.Len(t, first, 3)
	assert.Equal(t, 4.7, first[0].Rating)
	for i := 1; i < 3; i++ {
		assert.Contains(t, []float64{4.0, 5.0}, first[i].Rating)
		assert.Equal(t, first[i].Rating, second[i].Rating)
	}
}

func TestNormalizerService_Normalize_LanguagesNeverNil(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize([]doctorapi.RawDoctor{{ID: "d1"}})

	require.Len(t, doctors, 1)
	assert.NotNil(t, doctors[0].Languages)
	assert.Empty(t, doctors[0].Languages)
}

func TestNormalizerService_Normalize_EmptyInput(t *testing.T) {
	normalizer := services.NewNormalizerService()

	doctors := normalizer.Normalize(nil)

	assert.NotNil(t, doctors)
	assert.Empty(t, doctors)
}
