package requests

// SearchPatients carries the optional patient search filters. Absent
// fields impose no filter; the zero value matches every patient.
type SearchPatients struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	BirthDate string `json:"birthdate" validate:"omitempty,birthdate"`
	Gender    string `json:"gender" validate:"omitempty,fhirgender"`
}

func (r *SearchPatients) IsEmpty() bool {
	return r.Name == "" && r.BirthDate == "" && r.Gender == ""
}
