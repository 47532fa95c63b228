package utils

import (
	"medbridge-service/internal/pkg/constvars"
	"time"
)

func CalculateAge(birthDate string) int {
	parsed, err := time.Parse(constvars.FhirBirthDateLayout, birthDate)
	if err != nil {
		return 0
	}

	now := time.Now()
	age := now.Year() - parsed.Year()
	if now.YearDay() < parsed.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
