package main

import (
	"context"
	"furever/config"
	"furever/di"
	"furever/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Inspector.VerifyRequired(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("database schema verification failed")
	}

	go app.Relay.Run(context.Background())

	app.HTTP.Serve()
}
