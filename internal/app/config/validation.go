package config

import (
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/utils"
)

// ValidateInternalConfig checks the environment-derived configuration
// before any adapter is constructed. Missing or malformed required
// fields surface as a configuration CustomError.
func ValidateInternalConfig(internalConfig *InternalConfig) error {
	if err := utils.ValidateStruct(internalConfig.Adapter); err != nil {
		return exceptions.ErrAdapterConfigInvalid(err, exceptions.FormatAllValidationErrors(err))
	}
	if err := utils.ValidateStruct(internalConfig.Mock); err != nil {
		return exceptions.ErrAdapterConfigInvalid(err, exceptions.FormatAllValidationErrors(err))
	}
	return nil
}
