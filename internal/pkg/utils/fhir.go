package utils

import (
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/responses"
	"medbridge-service/internal/pkg/fhir_dto"
	"strings"
)

// FormatPatientFullname joins the given names and family name of the
// primary name entry.
func FormatPatientFullname(patient *fhir_dto.Patient) string {
	name, ok := patient.PrimaryName()
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(name.Given)+1)
	parts = append(parts, name.Given...)
	if name.Family != "" {
		parts = append(parts, name.Family)
	}
	return strings.Join(parts, " ")
}

func MapPatientToSummary(patient *fhir_dto.Patient) responses.PatientSummary {
	return responses.PatientSummary{
		PatientID: patient.ID,
		Fullname:  FormatPatientFullname(patient),
		Gender:    patient.Gender,
		BirthDate: patient.BirthDate,
		Age:       CalculateAge(patient.BirthDate),
		Email:     patient.TelecomValue(constvars.FhirTelecomSystemEmail),
		Phone:     patient.TelecomValue(constvars.FhirTelecomSystemPhone),
	}
}

func MapPatientsToSearchResponse(patients []fhir_dto.Patient) *responses.SearchPatients {
	summaries := make([]responses.PatientSummary, len(patients))
	for i := range patients {
		summaries[i] = MapPatientToSummary(&patients[i])
	}
	return &responses.SearchPatients{
		Total:    len(summaries),
		Patients: summaries,
	}
}
