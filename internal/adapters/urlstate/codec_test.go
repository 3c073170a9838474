package urlstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medloop/doctor-directory/internal/adapters/urlstate"
	"github.com/medloop/doctor-directory/internal/domain/entities"
)

func TestEncode_DefaultFiltersYieldEmptyString(t *testing.T) {
	assert.Equal(t, "", urlstate.Encode(entities.DefaultFilters()))
}

func TestEncode_ParameterOrderIsFixed(t *testing.T) {
	encoded := urlstate.Encode(entities.Filters{
		SearchTerm:       "dr smith",
		ConsultationType: "Video Consult",
		Specialties:      []string{"Dentist", "ENT"},
		SortBy:           "fees",
	})

	assert.Equal(t, "consultationType=Video+Consult&specialties=Dentist,ENT&sortBy=fees&search=dr+smith", encoded)
}

func TestEncode_SpecialtyCommasStayLiteral(t *testing.T) {
	encoded := urlstate.Encode(entities.Filters{Specialties: []string{"Dentist", "ENT"}})

	assert.Equal(t, "specialties=Dentist,ENT", encoded)
}

func TestEncode_WhitespaceSearchTermOmitted(t *testing.T) {
	encoded := urlstate.Encode(entities.Filters{SearchTerm: "   "})

	assert.Equal(t, "", encoded)
}

func TestEncode_EscapesReservedCharacters(t *testing.T) {
	encoded := urlstate.Encode(entities.Filters{SearchTerm: "a&b=c"})

	assert.Equal(t, "search=a%26b%3Dc", encoded)
}

func TestDecode_RoundTripsEncodedState(t *testing.T) {
	original := entities.Filters{
		SearchTerm:       "dr smith",
		ConsultationType: "Video Consult",
		Specialties:      []string{"Dentist", "ENT"},
		SortBy:           "fees",
	}

	patch := urlstate.Decode(urlstate.Encode(original))
	restored := patch.MergeInto(entities.DefaultFilters())

	assert.Equal(t, original, restored)
}

func TestDecode_AbsentParametersStayNil(t *testing.T) {
	patch := urlstate.Decode("sortBy=experience")

	assert.Nil(t, patch.SearchTerm)
	assert.Nil(t, patch.ConsultationType)
	require.NotNil(t, patch.SortBy)
	assert.Equal(t, "experience", *patch.SortBy)
	assert.NotNil(t, patch.Specialties)
	assert.Empty(t, patch.Specialties)
}

func TestDecode_LeadingQuestionMarkTolerated(t *testing.T) {
	patch := urlstate.Decode("?search=bob")

	require.NotNil(t, patch.SearchTerm)
	assert.Equal(t, "bob", *patch.SearchTerm)
}

func TestDecode_ValuesCopiedWithoutValidation(t *testing.T) {
	patch := urlstate.Decode("consultationType=Telepathy&sortBy=rating")

	require.NotNil(t, patch.ConsultationType)
	assert.Equal(t, "Telepathy", *patch.ConsultationType)
	require.NotNil(t, patch.SortBy)
	assert.Equal(t, "rating", *patch.SortBy)
}

func TestDecode_MalformedQueryFailsSoft(t *testing.T) {
	patch := urlstate.Decode("search=%zz&specialties=Dentist")

	assert.Nil(t, patch.SearchTerm)
	assert.Nil(t, patch.ConsultationType)
	assert.Nil(t, patch.SortBy)
	assert.NotNil(t, patch.Specialties)
	assert.Empty(t, patch.Specialties)
}

func TestMergeInto_PresentFieldsOverwriteAbsentPersist(t *testing.T) {
	current := entities.Filters{
		SearchTerm:       "old",
		ConsultationType: "In Clinic",
		Specialties:      []string{"Dentist"},
		SortBy:           "fees",
	}

	merged := urlstate.Decode("search=new").MergeInto(current)

	assert.Equal(t, "new", merged.SearchTerm)
	assert.Equal(t, "In Clinic", merged.ConsultationType)
	assert.Equal(t, "fees", merged.SortBy)
	assert.Empty(t, merged.Specialties, "specialties parameter is always defined and overwrites")
}

func TestEncode_FullReplacementDropsForeignParameters(t *testing.T) {
	// decode a query carrying an unrelated parameter, then re-encode
	patch := urlstate.Decode("search=bob&utm_source=mail")
	filters := patch.MergeInto(entities.DefaultFilters())

	assert.Equal(t, "search=bob", urlstate.Encode(filters))
}
