package constvars

type ResourceType string

const (
	ResourcePatient          = "Patient"
	ResourceBundle           = "Bundle"
	ResourceOperationOutcome = "OperationOutcome"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)

const (
	FhirTelecomSystemPhone = "phone"
	FhirTelecomSystemEmail = "email"
)

const (
	FhirNameUseOfficial = "official"
	FhirTelecomUseHome  = "home"
	FhirTelecomUseWork  = "work"
)

const (
	FhirSearchParamName      = "name"
	FhirSearchParamBirthdate = "birthdate"
	FhirSearchParamGender    = "gender"
)

const (
	FhirBirthDateLayout = "2006-01-02"
)
