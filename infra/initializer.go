package infra

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func Initialize() {
	Logger.SetFormatter(&logrus.JSONFormatter{})
	Logger.SetLevel(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found; using environment variables")
	}
}
