package constvars

const (
	URLParamPatientID = "patientID"
)
