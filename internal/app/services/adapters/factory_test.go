package adapters

import (
	"context"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validInternalConfig(vendor string) *config.InternalConfig {
	return &config.InternalConfig{
		Adapter: config.Adapter{
			Vendor:          vendor,
			BaseUrl:         "http://localhost:5555/fhir",
			AuthType:        constvars.AdapterAuthTypeAPIKey,
			APIKey:          "test-api-key",
			TimeoutInSecond: 30,
			Retries:         3,
			RetryDelayInMs:  1000,
		},
		Mock: config.Mock{
			DelayInMs:        0,
			ErrorRatePercent: 0,
			DataSet:          constvars.DataSetMinimal,
		},
	}
}

func TestNewPatientAdapter(t *testing.T) {
	t.Run("Mock Vendor", func(t *testing.T) {
		adapter, err := NewPatientAdapter(validInternalConfig(constvars.AdapterVendorMock), zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, adapter)

		patient, err := adapter.FindPatientByID(context.Background(), "patient-001")
		require.NoError(t, err)
		assert.Equal(t, "patient-001", patient.ID)
	})

	t.Run("Fhir Vendor", func(t *testing.T) {
		adapter, err := NewPatientAdapter(validInternalConfig(constvars.AdapterVendorFhir), zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("Unsupported Vendor", func(t *testing.T) {
		adapter, err := NewPatientAdapter(validInternalConfig("hl7v2"), zap.NewNop())
		assert.Nil(t, adapter)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Missing Required Fields", func(t *testing.T) {
		internalConfig := validInternalConfig(constvars.AdapterVendorMock)
		internalConfig.Adapter.BaseUrl = ""
		internalConfig.Adapter.APIKey = ""

		adapter, err := NewPatientAdapter(internalConfig, zap.NewNop())
		assert.Nil(t, adapter)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Malformed Base URL", func(t *testing.T) {
		internalConfig := validInternalConfig(constvars.AdapterVendorFhir)
		internalConfig.Adapter.BaseUrl = "not a url"

		adapter, err := NewPatientAdapter(internalConfig, zap.NewNop())
		assert.Nil(t, adapter)
		require.Error(t, err)
	})

	t.Run("Invalid Mock Tuning", func(t *testing.T) {
		internalConfig := validInternalConfig(constvars.AdapterVendorMock)
		internalConfig.Mock.ErrorRatePercent = 150

		adapter, err := NewPatientAdapter(internalConfig, zap.NewNop())
		assert.Nil(t, adapter)
		require.Error(t, err)
	})
}
