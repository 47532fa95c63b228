package mock

import (
	"context"
	"math/rand"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/fhir_dto"
	"medbridge-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// mockPatientAdapter answers patient queries from an in-memory dataset,
// simulating vendor latency and randomized failure per configuration.
// The dataset is built once at construction and is read-only afterwards;
// the rand source is guarded because adapter calls may be concurrent.
type mockPatientAdapter struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	dataset        []fhir_dto.Patient
	rng            *rand.Rand
	rngMu          sync.Mutex
}

func NewMockPatientAdapter(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.PatientAdapter, error) {
	return newMockPatientAdapterWithSeed(internalConfig, logger, time.Now().UnixNano())
}

func newMockPatientAdapterWithSeed(internalConfig *config.InternalConfig, logger *zap.Logger, seed int64) (contracts.PatientAdapter, error) {
	dataset, err := BuildDataSet(internalConfig.Mock.DataSet)
	if err != nil {
		return nil, err
	}

	logger.Info("mockPatientAdapter initialized",
		zap.String(constvars.LoggingVendorKey, constvars.AdapterVendorMock),
		zap.String(constvars.LoggingDataSetKey, internalConfig.Mock.DataSet),
		zap.Int(constvars.LoggingPatientCountKey, len(dataset)),
	)

	return &mockPatientAdapter{
		InternalConfig: internalConfig,
		Log:            logger,
		dataset:        dataset,
		rng:            rand.New(rand.NewSource(seed)),
	}, nil
}

func (a *mockPatientAdapter) SearchPatients(ctx context.Context, criteria *requests.SearchPatients) ([]fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	a.Log.Info("mockPatientAdapter.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := a.simulateVendor(ctx); err != nil {
		a.Log.Error("mockPatientAdapter.SearchPatients vendor simulation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if criteria == nil {
		criteria = &requests.SearchPatients{}
	}

	matches := make([]fhir_dto.Patient, 0)
	for _, patient := range a.dataset {
		if matchesCriteria(&patient, criteria) {
			matches = append(matches, patient)
		}
	}

	a.Log.Info("mockPatientAdapter.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(matches)),
	)
	return matches, nil
}

func (a *mockPatientAdapter) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	a.Log.Info("mockPatientAdapter.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := a.simulateVendor(ctx); err != nil {
		a.Log.Error("mockPatientAdapter.FindPatientByID vendor simulation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	for _, patient := range a.dataset {
		if patient.ID == patientID {
			found := patient
			a.Log.Info("mockPatientAdapter.FindPatientByID succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
			)
			return &found, nil
		}
	}

	a.Log.Error("mockPatientAdapter.FindPatientByID patient not found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil, exceptions.ErrPatientNotFound(nil, patientID)
}

// simulateVendor applies the configured latency then the configured
// failure probability. The delay is abortable by the caller's context.
func (a *mockPatientAdapter) simulateVendor(ctx context.Context) error {
	if delay := a.InternalConfig.Mock.DelayInMs; delay > 0 {
		timer := time.NewTimer(time.Duration(delay) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-timer.C:
		}
	}

	errorRate := a.InternalConfig.Mock.ErrorRatePercent
	if errorRate <= 0 {
		return nil
	}
	a.rngMu.Lock()
	roll := a.rng.Intn(100)
	a.rngMu.Unlock()
	if roll < errorRate {
		return exceptions.ErrVendorUnavailable(nil, errorRate)
	}
	return nil
}

// matchesCriteria applies every present filter conjunctively. The name
// filter is a case-insensitive substring match against any given or
// family name of any name entry; birthdate and gender are exact.
func matchesCriteria(patient *fhir_dto.Patient, criteria *requests.SearchPatients) bool {
	if criteria.Gender != "" && patient.Gender != criteria.Gender {
		return false
	}
	if criteria.BirthDate != "" && patient.BirthDate != criteria.BirthDate {
		return false
	}
	if criteria.Name != "" && !matchesName(patient, criteria.Name) {
		return false
	}
	return true
}

func matchesName(patient *fhir_dto.Patient, name string) bool {
	needle := strings.ToLower(name)
	for _, humanName := range patient.Name {
		if strings.Contains(strings.ToLower(humanName.Family), needle) {
			return true
		}
		for _, given := range humanName.Given {
			if strings.Contains(strings.ToLower(given), needle) {
				return true
			}
		}
		if humanName.Text != "" && strings.Contains(strings.ToLower(humanName.Text), needle) {
			return true
		}
	}
	return false
}
