package fhir_dto

type Patient struct {
	ID           string         `json:"id,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	Active       bool           `json:"active,omitempty"`
	Name         []HumanName    `json:"name,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	BirthDate    string         `json:"birthDate,omitempty"`
	Address      []Address      `json:"address,omitempty"`
	Identifier   []Identifier   `json:"identifier,omitempty"`
}

// PrimaryName returns the first name entry, which is treated as the
// patient's primary name.
func (p *Patient) PrimaryName() (HumanName, bool) {
	if len(p.Name) == 0 {
		return HumanName{}, false
	}
	return p.Name[0], true
}

func (p *Patient) TelecomValue(system string) string {
	for _, telecom := range p.Telecom {
		if telecom.System == system {
			return telecom.Value
		}
	}
	return ""
}
