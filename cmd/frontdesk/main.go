package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CutieCat6778/reservation-frontdesk/app"
	"github.com/CutieCat6778/reservation-frontdesk/config"
)

// @title Reservation Frontdesk API
// @version 1.0
// @description Guest and staff surface for the restaurant reservation backend.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
