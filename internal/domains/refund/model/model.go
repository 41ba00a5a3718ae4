package model

import (
	gModel "furever/shared/model"
)

const (
	TableName  = "refunds"
	EntityName = "refund"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"

	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
	StatusFailed     = "failed"
)

// Refund tracks one refund attempt. TransactionID holds the PayMongo refund
// id and stays NULL until the gateway call succeeds.
type Refund struct {
	ID            int64   `db:"id"`
	BookingID     int64   `db:"booking_id"`
	Amount        float64 `db:"amount"`
	Reason        *string `db:"reason"`
	Status        string  `db:"status"`
	TransactionID *string `db:"transaction_id"`
	Notes         *string `db:"notes"`
	gModel.Metadata
}

// Terminal reports whether the refund can no longer move.
func (r Refund) Terminal() bool {
	return r.Status == StatusProcessed || r.Status == StatusFailed
}
