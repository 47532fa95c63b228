package adapters

import (
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/app/services/adapters/fhir"
	"medbridge-service/internal/app/services/adapters/mock"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// NewPatientAdapter validates the adapter configuration and constructs
// the client for the configured vendor.
func NewPatientAdapter(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.PatientAdapter, error) {
	err := config.ValidateInternalConfig(internalConfig)
	if err != nil {
		return nil, err
	}

	switch internalConfig.Adapter.Vendor {
	case constvars.AdapterVendorMock:
		return mock.NewMockPatientAdapter(internalConfig, logger)
	case constvars.AdapterVendorFhir:
		return fhir.NewPatientFhirAdapter(internalConfig, logger), nil
	default:
		return nil, exceptions.ErrAdapterVendorUnsupported(nil, internalConfig.Adapter.Vendor)
	}
}
