package main

import (
	"context"
	"flag"
	"furever/config"
	"furever/di"
	"furever/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	validateOnly := flag.Bool("validate", false, "scan retryable refunds without retrying them")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	refunds := di.InitializeRefundRetrier()

	summary, err := refunds.RetryFailed(context.Background(), *validateOnly)
	if err != nil {
		log.Error().Err(err).Msg("failed to retry refunds")
		os.Exit(1)
	}

	log.Info().
		Int("scanned", summary.Scanned).
		Int("retried", summary.Retried).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Bool("validate_only", *validateOnly).
		Msg("refund retry sweep finished")

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
