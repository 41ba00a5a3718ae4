package service

import (
	"context"
	"encoding/json"
	"furever/config"
	"furever/infras/kafka"
	"furever/infras/otel"
	"furever/internal/domains/outbox/repository"
	"furever/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultPollSeconds = 10
	defaultBatchSize   = 50
	defaultMaxAttempts = 5
)

// Relay drains the notification outbox into Kafka.
type Relay interface {
	Run(ctx context.Context)
	Sweep(ctx context.Context) error
}

type relayImpl struct {
	repo  repository.Outbox
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func NewRelay(repo repository.Outbox, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Relay {
	return &relayImpl{
		repo:  repo,
		kafka: kafkaClient,
		cfg:   cfg,
		otel:  otel,
	}
}

// Run polls until the context is cancelled. Each tick publishes one batch of
// due events.
func (s *relayImpl) Run(ctx context.Context) {
	pollSeconds := s.cfg.Outbox.PollSeconds
	if pollSeconds <= 0 {
		pollSeconds = defaultPollSeconds
	}

	ticker := time.NewTicker(time.Duration(pollSeconds) * time.Second)
	defer ticker.Stop()

	log.Info().Int("poll_seconds", pollSeconds).Msg("notification outbox relay started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notification outbox relay stopped")

			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Error().Err(err).Msg("outbox sweep failed")
			}
		}
	}
}

// Sweep publishes one batch of due events and records the outcome per row.
func (s *relayImpl) Sweep(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".OutboxSweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	batchSize := s.cfg.Outbox.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	maxAttempts := s.cfg.Outbox.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	events, err := s.repo.GetDue(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		publishErr := s.kafka.SendMessages(ctx, event.Topic, kafka.Message{
			Key:   event.EventKey,
			Value: json.RawMessage(event.Payload),
		})

		if publishErr != nil {
			log.Error().Err(publishErr).Int64("event_id", event.ID).Str("topic", event.Topic).Msg("failed to publish outbox event")

			if markErr := s.repo.MarkFailed(ctx, event, publishErr, maxAttempts); markErr != nil {
				log.Error().Err(markErr).Int64("event_id", event.ID).Msg("failed to record outbox publish failure")
			}

			continue
		}

		if markErr := s.repo.MarkPublished(ctx, event.ID); markErr != nil {
			log.Error().Err(markErr).Int64("event_id", event.ID).Msg("failed to mark outbox event published")

			continue
		}

		log.Info().Int64("event_id", event.ID).Str("key", event.EventKey).Str("topic", event.Topic).Msg("outbox event published")
	}

	return nil
}
