package responses

type PatientSummary struct {
	PatientID string `json:"patient_id"`
	Fullname  string `json:"fullname"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	Age       int    `json:"age,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type SearchPatients struct {
	Total    int              `json:"total"`
	Patients []PatientSummary `json:"patients"`
}
