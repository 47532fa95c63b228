package utils

import (
	"fmt"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPatientFullname(t *testing.T) {
	t.Run("Given And Family", func(t *testing.T) {
		patient := &fhir_dto.Patient{
			Name: []fhir_dto.HumanName{
				{Family: "Chen", Given: []string{"Michael", "James"}},
			},
		}
		assert.Equal(t, "Michael James Chen", FormatPatientFullname(patient))
	})

	t.Run("Given Only", func(t *testing.T) {
		patient := &fhir_dto.Patient{
			Name: []fhir_dto.HumanName{
				{Given: []string{"Sarah"}},
			},
		}
		assert.Equal(t, "Sarah", FormatPatientFullname(patient))
	})

	t.Run("No Name", func(t *testing.T) {
		assert.Equal(t, "", FormatPatientFullname(&fhir_dto.Patient{}))
	})
}

func TestMapPatientToSummary(t *testing.T) {
	patient := &fhir_dto.Patient{
		ID:        "patient-002",
		Gender:    constvars.FhirGenderMale,
		BirthDate: "1978-11-02",
		Name: []fhir_dto.HumanName{
			{Family: "Chen", Given: []string{"Michael", "James"}},
		},
		Telecom: []fhir_dto.ContactPoint{
			{System: constvars.FhirTelecomSystemPhone, Value: "+1-555-0102"},
			{System: constvars.FhirTelecomSystemEmail, Value: "michael.chen@example.com"},
		},
	}

	summary := MapPatientToSummary(patient)
	assert.Equal(t, "patient-002", summary.PatientID)
	assert.Equal(t, "Michael James Chen", summary.Fullname)
	assert.Equal(t, constvars.FhirGenderMale, summary.Gender)
	assert.Equal(t, "1978-11-02", summary.BirthDate)
	assert.Equal(t, "michael.chen@example.com", summary.Email)
	assert.Equal(t, "+1-555-0102", summary.Phone)
	assert.Positive(t, summary.Age)
}

func TestMapPatientsToSearchResponse(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		response := MapPatientsToSearchResponse(nil)
		require.NotNil(t, response)
		assert.Equal(t, 0, response.Total)
		assert.NotNil(t, response.Patients)
	})

	t.Run("Total Matches Entries", func(t *testing.T) {
		patients := []fhir_dto.Patient{
			{ID: "patient-001"},
			{ID: "patient-002"},
		}
		response := MapPatientsToSearchResponse(patients)
		assert.Equal(t, 2, response.Total)
		require.Len(t, response.Patients, 2)
		assert.Equal(t, "patient-001", response.Patients[0].PatientID)
	})
}

func TestCalculateAge(t *testing.T) {
	t.Run("Known Birthdate", func(t *testing.T) {
		birthDate := time.Now().AddDate(-30, 0, -1)
		got := CalculateAge(birthDate.Format(constvars.FhirBirthDateLayout))
		assert.Equal(t, 30, got)
	})

	t.Run("Birthday Not Yet Reached This Year", func(t *testing.T) {
		birthDate := time.Now().AddDate(-30, 0, 30)
		got := CalculateAge(birthDate.Format(constvars.FhirBirthDateLayout))
		assert.Equal(t, 29, got)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge("12/03/1985"))
	})

	t.Run("Future Date", func(t *testing.T) {
		future := time.Now().AddDate(1, 0, 0)
		assert.Equal(t, 0, CalculateAge(fmt.Sprintf("%d-01-01", future.Year()+1)))
	})
}
