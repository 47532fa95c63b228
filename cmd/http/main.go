package main

import (
	"context"
	"log"
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/app/delivery/http/middlewares"
	"medbridge-service/internal/app/delivery/http/routers"
	"medbridge-service/internal/app/drivers/database"
	"medbridge-service/internal/app/drivers/logger"
	"medbridge-service/internal/app/services/adapters"
	"medbridge-service/internal/app/services/patients"
	sharedRedis "medbridge-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	err := config.ValidateInternalConfig(internalConfig)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	patientAdapter, err := adapters.NewPatientAdapter(internalConfig, zapLogger)
	if err != nil {
		log.Fatalf("Failed to build patient adapter: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)
	redisRepository := sharedRedis.NewRedisRepository(redisClient)

	patientUsecase := patients.NewPatientUsecase(patientAdapter, redisRepository, internalConfig, zapLogger)
	patientController := patients.NewPatientController(zapLogger, patientUsecase)

	chiRouter := chi.NewRouter()
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig)
	routers.SetupRoutes(chiRouter, internalConfig, appMiddlewares, patientController)

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during dependencies shutdown: %v", err)
	}

	logrus.Println("Server stopped gracefully")
}
