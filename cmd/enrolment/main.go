// Package main enrolment API.
//
// @title           Enrolment Service API
// @version         1.0
// @description     Students, books and rentals management.
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http
package main

import (
	stdLog "log"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/Astemirdum/enrolment-service/enrolment/app"
	"github.com/Astemirdum/enrolment-service/enrolment/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		log.Fatal("run", err)
	}
}
