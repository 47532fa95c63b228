package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDataKey         = "data"
	LoggingQueryParamsKey  = "query_params"
	LoggingResponseKey     = "response"
	LoggingRequestKey      = "request"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingVendorKey       = "vendor"
	LoggingDataSetKey      = "data_set"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientCountKey = "patient_count"
	LoggingAttemptKey      = "attempt"
	LoggingTenantIDKey     = "tenant_id"
	LoggingCacheKeyKey     = "cache_key"
)
