package routers

import (
	"fmt"
	"medbridge-service/internal/app/delivery/http/middlewares"
	"medbridge-service/internal/app/services/patients"
	"medbridge-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(r chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	r.Use(middlewares.RateLimiter.Limit)
	r.Use(middlewares.APIKeyAuth)

	r.Get("/", patientController.SearchPatients)
	r.Get(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.GetPatientByID)
}
