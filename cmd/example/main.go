package main

import (
	"context"
	"fmt"
	"log"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/contracts"
	"medbridge-service/internal/app/drivers/logger"
	"medbridge-service/internal/app/services/adapters"
	"medbridge-service/internal/pkg/constvars"
	"medbridge-service/internal/pkg/dto/requests"
	"medbridge-service/internal/pkg/utils"
)

// Demonstration driver: builds an adapter from the environment
// configuration and walks through the supported query flows
// sequentially. A failed call is reported and the demo continues.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	patientAdapter, err := adapters.NewPatientAdapter(internalConfig, zapLogger)
	if err != nil {
		log.Fatalf("Failed to build patient adapter: %v", err)
	}

	fmt.Printf("Patient adapter ready (vendor=%s, data_set=%s, tenant=%s)\n\n",
		internalConfig.Adapter.Vendor, internalConfig.Mock.DataSet, internalConfig.Tenant.ID)

	ctx := context.Background()

	runSearch(ctx, patientAdapter, "all patients", &requests.SearchPatients{})
	runSearch(ctx, patientAdapter, "female patients", &requests.SearchPatients{
		Gender: constvars.FhirGenderFemale,
	})
	runSearch(ctx, patientAdapter, "male patients named john", &requests.SearchPatients{
		Name:   "john",
		Gender: constvars.FhirGenderMale,
	})
	runSearch(ctx, patientAdapter, "patients born 1985-03-12", &requests.SearchPatients{
		BirthDate: "1985-03-12",
	})

	runGet(ctx, patientAdapter, internalConfig.Tenant.DefaultPatientID)
	runGet(ctx, patientAdapter, "patient-does-not-exist")
}

func runSearch(ctx context.Context, adapter contracts.PatientAdapter, label string, criteria *requests.SearchPatients) {
	fmt.Printf("Searching %s...\n", label)

	result, err := adapter.SearchPatients(ctx, criteria)
	if err != nil {
		fmt.Printf("  search failed: %v\n\n", err)
		return
	}

	fmt.Printf("  found %d patient(s)\n", len(result))
	for i := range result {
		patient := &result[i]
		fmt.Printf("  - [%s] %s (%s, born %s)\n",
			patient.ID, utils.FormatPatientFullname(patient), patient.Gender, patient.BirthDate)
	}
	fmt.Println()
}

func runGet(ctx context.Context, adapter contracts.PatientAdapter, patientID string) {
	fmt.Printf("Fetching patient %s...\n", patientID)

	patient, err := adapter.FindPatientByID(ctx, patientID)
	if err != nil {
		fmt.Printf("  fetch failed: %v\n\n", err)
		return
	}

	fmt.Printf("  [%s] %s (%s, born %s)\n", patient.ID, utils.FormatPatientFullname(patient), patient.Gender, patient.BirthDate)
	if email := patient.TelecomValue(constvars.FhirTelecomSystemEmail); email != "" {
		fmt.Printf("  email: %s\n", email)
	}
	if phone := patient.TelecomValue(constvars.FhirTelecomSystemPhone); phone != "" {
		fmt.Printf("  phone: %s\n", phone)
	}
	fmt.Println()
}
