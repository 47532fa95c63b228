package utils

import (
	"medbridge-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("data_set", validateDataSet)
	validate.RegisterValidation("percent", validatePercent)
	validate.RegisterValidation("birthdate", validateBirthDate)
	validate.RegisterValidation("fhirgender", validateFhirGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDataSet(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.DataSetMinimal ||
		value == constvars.DataSetStandard ||
		value == constvars.DataSetComprehensive
}

func validatePercent(fl validator.FieldLevel) bool {
	value := fl.Field().Int()
	return value >= 0 && value <= 100
}

func validateBirthDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(constvars.FhirBirthDateLayout, value)
	return err == nil
}

func validateFhirGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == constvars.FhirGenderMale ||
		value == constvars.FhirGenderFemale ||
		value == constvars.FhirGenderOther ||
		value == constvars.FhirGenderUnknown
}
