package doctorapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
)

func TestFlexString_DecodesStringAndNumber(t *testing.T) {
	var batch []doctorapi.RawDoctor
	payload := `[{"id": "111418"}, {"id": 42}, {"id": null}]`

	require.NoError(t, json.Unmarshal([]byte(payload), &batch))

	require.Len(t, batch, 3)
	assert.Equal(t, doctorapi.FlexString("111418"), batch[0].ID)
	assert.Equal(t, doctorapi.FlexString("42"), batch[1].ID)
	assert.Equal(t, doctorapi.FlexString(""), batch[2].ID)
}

func TestRawDoctor_DecodesBothSpecialtyShapes(t *testing.T) {
	payload := `[
		{"id": "1", "specialities": [{"name": "Dentist"}]},
		{"id": "2", "specialty": ["Cardiologist"]}
	]`
	var batch []doctorapi.RawDoctor

	require.NoError(t, json.Unmarshal([]byte(payload), &batch))

	require.Len(t, batch, 2)
	require.Len(t, batch[0].Specialities, 1)
	assert.Equal(t, "Dentist", batch[0].Specialities[0].Name)
	assert.Nil(t, batch[0].Specialty)
	assert.Equal(t, []string{"Cardiologist"}, batch[1].Specialty)
	assert.Nil(t, batch[1].Specialities)
}

func TestRawDoctor_PolymorphicNumericsStayRaw(t *testing.T) {
	payload := `[
		{"id": "1", "experience": "13 Years", "fees": "₹ 500"},
		{"id": "2", "experience": 7, "fees": 450}
	]`
	var batch []doctorapi.RawDoctor

	require.NoError(t, json.Unmarshal([]byte(payload), &batch))

	require.Len(t, batch, 2)
	assert.Equal(t, `"13 Years"`, string(batch[0].Experience))
	assert.Equal(t, `7`, string(batch[1].Experience))
	assert.Equal(t, `450`, string(batch[1].Fees))
}

func TestRawDoctor_DecodesNestedClinic(t *testing.T) {
	payload := `[{
		"id": "1",
		"clinic": {"name": "Dent Inn", "address": {"locality": "Wanowrie", "city": "Pune"}}
	}]`
	var batch []doctorapi.RawDoctor

	require.NoError(t, json.Unmarshal([]byte(payload), &batch))

	require.Len(t, batch, 1)
	require.NotNil(t, batch[0].Clinic)
	assert.Equal(t, "Dent Inn", batch[0].Clinic.Name)
	require.NotNil(t, batch[0].Clinic.Address)
	assert.Equal(t, "Wanowrie", batch[0].Clinic.Address.Locality)
	assert.Equal(t, "Pune", batch[0].Clinic.Address.City)
}
