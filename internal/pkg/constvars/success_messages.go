package constvars

const (
	SearchPatientsSuccessMessage = "Successfully searched patients"
	GetPatientSuccessMessage     = "Successfully fetched patient"
	HealthCheckSuccessMessage    = "Service is healthy"
)
