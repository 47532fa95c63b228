package mock

import (
	"context"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(dataSet string, delayMs, errorRate int) *config.InternalConfig {
	return &config.InternalConfig{
		Adapter: config.Adapter{
			Vendor:          constvars.AdapterVendorMock,
			BaseUrl:         "http://localhost:5555/fhir",
			AuthType:        constvars.AdapterAuthTypeAPIKey,
			APIKey:          "test-api-key",
			TimeoutInSecond: 5,
		},
		Mock: config.Mock{
			DelayInMs:        delayMs,
			ErrorRatePercent: errorRate,
			DataSet:          dataSet,
		},
	}
}

func TestNewMockPatientAdapter(t *testing.T) {
	t.Run("Valid Configuration", func(t *testing.T) {
		adapter, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetStandard, 0, 0), zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("Unknown DataSet", func(t *testing.T) {
		adapter, err := NewMockPatientAdapter(newTestConfig("gigantic", 0, 0), zap.NewNop())
		assert.Nil(t, adapter)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok, "should be a CustomError")
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestSearchPatients(t *testing.T) {
	adapter, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetStandard, 0, 0), zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("Empty Criteria Returns Full DataSet", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{})
		require.NoError(t, err)
		assert.Len(t, result, constvars.DataSetStandardSize)
	})

	t.Run("Nil Criteria Treated As Empty", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, result, constvars.DataSetStandardSize)
	})

	t.Run("Gender Filter", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			Gender: constvars.FhirGenderFemale,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result)
		for _, patient := range result {
			assert.Equal(t, constvars.FhirGenderFemale, patient.Gender, "every record should be female")
		}
	})

	t.Run("Name Filter Is Case Insensitive Substring", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			Name: "JOHNSON",
		})
		require.NoError(t, err)
		assert.Len(t, result, 2, "sarah and robert johnson should match")
	})

	t.Run("Name Matches Given Name", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			Name: "sarah",
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "patient-001", result[0].ID)
	})

	t.Run("Conjunctive Name And Gender", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			Name:   "johnson",
			Gender: constvars.FhirGenderMale,
		})
		require.NoError(t, err)
		require.Len(t, result, 1, "only robert johnson is male")
		assert.Equal(t, "patient-010", result[0].ID)
		assert.Equal(t, constvars.FhirGenderMale, result[0].Gender)
	})

	t.Run("BirthDate Exact Match", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			BirthDate: "1985-03-12",
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "patient-001", result[0].ID)
	})

	t.Run("No Match Returns Empty Slice Not Error", func(t *testing.T) {
		result, err := adapter.SearchPatients(ctx, &requests.SearchPatients{
			Name: "zzzz-no-such-patient",
		})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestSearchPatientsDeterministic(t *testing.T) {
	// delay 0, error rate 0 and a fixed tier must be reproducible
	first, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetMinimal, 0, 0), zap.NewNop())
	require.NoError(t, err)
	second, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetMinimal, 0, 0), zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	firstResult, err := first.SearchPatients(ctx, &requests.SearchPatients{})
	require.NoError(t, err)
	secondResult, err := second.SearchPatients(ctx, &requests.SearchPatients{})
	require.NoError(t, err)

	assert.Equal(t, firstResult, secondResult, "minimal tier searches should be reproducible")
	assert.Len(t, firstResult, constvars.DataSetMinimalSize)
}

func TestFindPatientByID(t *testing.T) {
	adapter, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetMinimal, 0, 0), zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("Known ID", func(t *testing.T) {
		patient, err := adapter.FindPatientByID(ctx, "patient-001")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "patient-001", patient.ID)
		assert.Equal(t, "Johnson", patient.Name[0].Family)
	})

	t.Run("Unknown ID Fails With Not Found", func(t *testing.T) {
		patient, err := adapter.FindPatientByID(ctx, "patient-does-not-exist")
		assert.Nil(t, patient, "should not return a default record")
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err), "should be a not-found error")
	})
}

func TestErrorInjection(t *testing.T) {
	ctx := context.Background()

	t.Run("ErrorRate 100 Always Fails", func(t *testing.T) {
		adapter, err := newMockPatientAdapterWithSeed(newTestConfig(constvars.DataSetMinimal, 0, 100), zap.NewNop(), 1)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			_, err := adapter.SearchPatients(ctx, nil)
			require.Error(t, err)

			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		}
	})

	t.Run("ErrorRate 0 Never Fails", func(t *testing.T) {
		adapter, err := newMockPatientAdapterWithSeed(newTestConfig(constvars.DataSetMinimal, 0, 0), zap.NewNop(), 1)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			_, err := adapter.SearchPatients(ctx, nil)
			require.NoError(t, err)
		}
	})
}

func TestSimulatedDelay(t *testing.T) {
	t.Run("Delay Applied", func(t *testing.T) {
		adapter, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetMinimal, 30, 0), zap.NewNop())
		require.NoError(t, err)

		start := time.Now()
		_, err = adapter.SearchPatients(context.Background(), nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("Context Cancellation Aborts Delay", func(t *testing.T) {
		adapter, err := NewMockPatientAdapter(newTestConfig(constvars.DataSetMinimal, 5000, 0), zap.NewNop())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err = adapter.SearchPatients(ctx, nil)
		require.Error(t, err)
		assert.Less(t, time.Since(start), 1*time.Second, "should abort well before the configured delay")
	})
}
