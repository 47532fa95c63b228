package config

import (
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			APIKey:          utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Adapter: Adapter{
			Vendor:          utils.GetEnvString("ADAPTER_VENDOR", constvars.AdapterVendorMock),
			BaseUrl:         utils.GetEnvString("MOCK_BASE_URL", "http://localhost:5555/fhir"),
			AuthType:        utils.GetEnvString("ADAPTER_AUTH_TYPE", constvars.AdapterAuthTypeAPIKey),
			APIKey:          utils.GetEnvString("MOCK_API_KEY", "mock-api-key"),
			TimeoutInSecond: utils.GetEnvInt("ADAPTER_TIMEOUT", 30),
			Retries:         utils.GetEnvInt("ADAPTER_RETRIES", 3),
			RetryDelayInMs:  utils.GetEnvInt("ADAPTER_RETRY_DELAY", 1000),
		},
		Mock: Mock{
			DelayInMs:        utils.GetEnvInt("MOCK_DELAY", 100),
			ErrorRatePercent: utils.GetEnvInt("MOCK_ERROR_RATE", 0),
			DataSet:          utils.GetEnvString("MOCK_DATA_SET", constvars.DataSetStandard),
		},
		Tenant: Tenant{
			ID:               utils.GetEnvString("TENANT_ID", "tenant-demo"),
			DefaultPatientID: utils.GetEnvString("PATIENT_ID", "patient-001"),
		},
		Cache: Cache{
			PatientSearchTTLInSecond: utils.GetEnvInt("CACHE_PATIENT_SEARCH_TTL", 60),
		},
	}
}
