package patients

import (
	"context"
	"fmt"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/dto/responses"
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientAdapter  contracts.PatientAdapter
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewPatientUsecase(
	patientAdapter contracts.PatientAdapter,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientAdapter:  patientAdapter,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.SearchPatients, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if request == nil {
		request = &requests.SearchPatients{}
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	cacheKey := uc.searchCacheKey(request)
	if cached := uc.cachedSearch(ctx, cacheKey); cached != nil {
		uc.Log.Info("patientUsecase.SearchPatients cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
		)
		return cached, nil
	}

	patients, err := uc.PatientAdapter.SearchPatients(ctx, request)
	if err != nil {
		return nil, err
	}

	response := utils.MapPatientsToSearchResponse(patients)

	ttl := time.Duration(uc.InternalConfig.Cache.PatientSearchTTLInSecond) * time.Second
	err = uc.RedisRepository.Set(ctx, cacheKey, response, ttl)
	if err != nil {
		// cache failures must not fail the search
		uc.Log.Warn("patientUsecase.SearchPatients failed to cache result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			zap.Error(err),
		)
	}

	return response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.PatientSummary, error) {
	patient, err := uc.PatientAdapter.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	summary := utils.MapPatientToSummary(patient)
	return &summary, nil
}

func (uc *patientUsecase) searchCacheKey(request *requests.SearchPatients) string {
	criteria := fmt.Sprintf("name=%s|birthdate=%s|gender=%s", request.Name, request.BirthDate, request.Gender)
	return fmt.Sprintf(constvars.CacheKeyPatientSearchFormat, uc.InternalConfig.Tenant.ID, criteria)
}

func (uc *patientUsecase) cachedSearch(ctx context.Context, cacheKey string) *responses.SearchPatients {
	data, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil || data == "" {
		return nil
	}

	cached := new(responses.SearchPatients)
	err = json.Unmarshal([]byte(data), cached)
	if err != nil {
		return nil
	}
	return cached
}
