package contracts

import (
	"context"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/dto/responses"
	"medbridge-service/internal/pkg/fhir_dto"
)

// PatientAdapter is the vendor-facing contract. Implementations answer
// patient queries for a single configured vendor; every call returns
// exactly one outcome, success or failure.
type PatientAdapter interface {
	// SearchPatients applies the criteria conjunctively. An empty
	// criteria set matches every patient; no matches is an empty
	// slice, never an error.
	SearchPatients(ctx context.Context, criteria *requests.SearchPatients) ([]fhir_dto.Patient, error)
	// FindPatientByID resolves an exact patient id. Unknown ids fail
	// with a not-found error.
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
}

type PatientUsecase interface {
	SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.SearchPatients, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.PatientSummary, error)
}
