package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
	CONTEXT_TENANT_ID_KEY            ContextKey = "tenant_id"
)

const (
	REQUEST_ID_PREFIX = "MDBRG_SVC_"
)

const (
	AdapterVendorMock = "mock"
	AdapterVendorFhir = "fhir"
)

const (
	AdapterAuthTypeAPIKey = "apikey"
)

const (
	DataSetMinimal       = "minimal"
	DataSetStandard      = "standard"
	DataSetComprehensive = "comprehensive"
)

// Record counts per dataset tier. The comprehensive tier is the standard
// fixtures plus DataSetComprehensiveGenerated generated records.
const (
	DataSetMinimalSize                = 3
	DataSetStandardSize               = 12
	DataSetComprehensiveGenerated     = 40
	DataSetComprehensiveGeneratorSeed = 20240817
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	CacheKeyPatientSearchFormat = "patients:search:%s:%s"
	CacheKeyPatientFormat       = "patients:id:%s:%s"
)
