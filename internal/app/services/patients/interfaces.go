package patients

import (
	"context"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.SearchPatients, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.PatientSummary, error)
}
