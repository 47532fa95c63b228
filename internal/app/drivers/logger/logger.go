package logger

import (
	"medbridge-service/internal/app/config"
	"medbridge-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the plain-text bootstrap logger used before the
// structured zap logger is available.
func InitLogger(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}
