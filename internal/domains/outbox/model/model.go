package model

import (
	"encoding/json"
	"fmt"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"
)

const (
	TableName  = "notification_outbox"
	EntityName = "outbox_event"

	FieldID           = "id"
	FieldStatus       = "status"
	FieldPublishAfter = "publish_after"

	StatusPending   = "pending"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Event names carried in the payload envelope.
const (
	EventBookingCreated   = "booking.created"
	EventBookingReminder  = "booking.reminder"
	EventBookingCancelled = "booking.cancelled"
	EventPaymentConfirmed = "payment.confirmed"
	EventPaymentRejected  = "payment.rejected"
	EventRefundProcessed  = "refund.processed"
)

type Event struct {
	ID           int64           `db:"id"`
	Topic        string          `db:"topic"`
	EventKey     string          `db:"event_key"`
	Payload      json.RawMessage `db:"payload"`
	Status       string          `db:"status"`
	Attempts     int             `db:"attempts"`
	PublishAfter time.Time       `db:"publish_after"`
	LastError    *string         `db:"last_error"`
	gModel.Metadata
}

// NewEvent builds a pending outbox row carrying the serialized payload. The
// key doubles as the Kafka partition key so per-booking ordering holds.
func NewEvent(topic, eventKey, eventName string, body any, publishAfter time.Time, username string) (Event, error) {
	payload, err := json.Marshal(map[string]any{
		"event": eventName,
		"data":  body,
	})
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode outbox payload: %w", err)
	}

	return Event{
		Topic:        topic,
		EventKey:     eventKey,
		Payload:      payload,
		Status:       StatusPending,
		PublishAfter: publishAfter,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}, nil
}
