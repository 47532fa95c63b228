package mock

import (
	"fmt"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/exceptions"
	"medbridge-service/internal/pkg/fhir_dto"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// BuildDataSet materializes the in-memory patient dataset for a tier.
// Every tier is deterministic: the fixed fixtures never change and the
// comprehensive tier generates its extra records from a fixed seed.
func BuildDataSet(dataSet string) ([]fhir_dto.Patient, error) {
	switch dataSet {
	case constvars.DataSetMinimal:
		return minimalPatients(), nil
	case constvars.DataSetStandard:
		return standardPatients(), nil
	case constvars.DataSetComprehensive:
		return comprehensivePatients(), nil
	default:
		return nil, exceptions.ErrUnknownDataSet(nil, dataSet)
	}
}

func minimalPatients() []fhir_dto.Patient {
	return []fhir_dto.Patient{
		newFixturePatient("patient-001", []string{"Sarah"}, "Johnson", constvars.FhirGenderFemale, "1985-03-12",
			"sarah.johnson@example.com", "+15550100001"),
		newFixturePatient("patient-002", []string{"Michael", "James"}, "Chen", constvars.FhirGenderMale, "1978-11-02",
			"michael.chen@example.com", "+15550100002"),
		newFixturePatient("patient-003", []string{"Emily"}, "Rodriguez", constvars.FhirGenderFemale, "1992-07-24",
			"emily.rodriguez@example.com", "+15550100003"),
	}
}

func standardPatients() []fhir_dto.Patient {
	patients := minimalPatients()
	patients = append(patients,
		newFixturePatient("patient-004", []string{"David"}, "Okafor", constvars.FhirGenderMale, "1969-01-30",
			"david.okafor@example.com", "+15550100004"),
		newFixturePatient("patient-005", []string{"Aisha"}, "Patel", constvars.FhirGenderFemale, "1988-09-15",
			"aisha.patel@example.com", "+15550100005"),
		newFixturePatient("patient-006", []string{"James", "Robert"}, "Wilson", constvars.FhirGenderMale, "1955-05-08",
			"james.wilson@example.com", "+15550100006"),
		newFixturePatient("patient-007", []string{"Maria"}, "Santos", constvars.FhirGenderFemale, "2001-12-19",
			"maria.santos@example.com", "+15550100007"),
		newFixturePatient("patient-008", []string{"Thomas"}, "Nguyen", constvars.FhirGenderMale, "1995-04-03",
			"thomas.nguyen@example.com", "+15550100008"),
		newFixturePatient("patient-009", []string{"Anna", "Sofia"}, "Kowalski", constvars.FhirGenderFemale, "1973-08-27",
			"anna.kowalski@example.com", "+15550100009"),
		newFixturePatient("patient-010", []string{"Robert"}, "Johnson", constvars.FhirGenderMale, "1948-02-11",
			"robert.johnson@example.com", "+15550100010"),
		newFixturePatient("patient-011", []string{"Linda"}, "Kim", constvars.FhirGenderFemale, "1990-06-06",
			"linda.kim@example.com", "+15550100011"),
		newFixturePatient("patient-012", []string{"Omar"}, "Hassan", constvars.FhirGenderMale, "1982-10-21",
			"omar.hassan@example.com", "+15550100012"),
	)
	return patients
}

func comprehensivePatients() []fhir_dto.Patient {
	patients := standardPatients()
	faker := gofakeit.New(constvars.DataSetComprehensiveGeneratorSeed)

	birthStart := time.Date(1940, time.January, 1, 0, 0, 0, 0, time.UTC)
	birthEnd := time.Date(2010, time.December, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < constvars.DataSetComprehensiveGenerated; i++ {
		gender := constvars.FhirGenderFemale
		if faker.Bool() {
			gender = constvars.FhirGenderMale
		}
		firstName := faker.FirstName()
		lastName := faker.LastName()
		birthDate := faker.DateRange(birthStart, birthEnd).Format(constvars.FhirBirthDateLayout)

		patients = append(patients, newFixturePatient(
			fmt.Sprintf("patient-%03d", constvars.DataSetStandardSize+i+1),
			[]string{firstName},
			lastName,
			gender,
			birthDate,
			faker.Email(),
			faker.Phone(),
		))
	}
	return patients
}

func newFixturePatient(id string, given []string, family, gender, birthDate, email, phone string) fhir_dto.Patient {
	return fhir_dto.Patient{
		ID:           id,
		ResourceType: constvars.ResourcePatient,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{
				Use:    constvars.FhirNameUseOfficial,
				Given:  given,
				Family: family,
			},
		},
		Telecom: []fhir_dto.ContactPoint{
			{System: constvars.FhirTelecomSystemEmail, Value: email, Use: constvars.FhirTelecomUseHome},
			{System: constvars.FhirTelecomSystemPhone, Value: phone, Use: constvars.FhirTelecomUseHome},
		},
		Gender:    gender,
		BirthDate: birthDate,
		Identifier: []fhir_dto.Identifier{
			{System: "urn:medbridge:mock:mrn", Value: id},
		},
	}
}
