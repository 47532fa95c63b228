package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"url":        "must be a valid URL",
	"min":        "must be at least %s",
	"max":        "maximum at %s",
	"oneof":      "must be one of %s",
	"data_set":   "must be one of minimal, standard, comprehensive",
	"percent":    "must be between 0 and 100",
	"birthdate":  "must be a date in YYYY-MM-DD format",
	"fhirgender": "must be one of male, female, other, unknown",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientVendorUnavailable             = "the patient data vendor is temporarily unavailable"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "server failed to process"
	ErrDevInvalidAPIKey          = "invalid API key"

	// Adapter messages
	ErrDevAdapterConfigInvalid      = "adapter configuration invalid: %s"
	ErrDevAdapterVendorUnsupported  = "unsupported adapter vendor: %s"
	ErrDevAdapterPatientNotFound    = "patient %s not found in vendor dataset"
	ErrDevAdapterSimulatedFailure   = "simulated vendor failure (error rate %d%%)"
	ErrDevAdapterGetFHIRResource    = "failed to get FHIR %s from vendor"
	ErrDevAdapterSearchFHIRResource = "failed to search FHIR %s from vendor"
	ErrDevAdapterDecodeFHIRResponse = "failed to decode FHIR %s response from vendor"
	ErrDevAdapterRetriesExhausted   = "vendor request failed after %d attempts"
	ErrDevAdapterUnknownDataSet     = "unknown data set tier: %s"

	// Redis messages
	ErrDevRedisGetData          = "failed to get data from redis"
	ErrDevRedisGetNoDataFromKey = "failed to get data from redis with key: %s"
	ErrDevRedisSetData          = "failed to set data to redis"
	ErrDevRedisDeleteData       = "failed to delete data from redis"
)
