package model

import (
	gModel "furever/shared/model"
)

const (
	TransactionTableName  = "payment_transactions"
	TransactionEntityName = "payment_transaction"

	ReceiptTableName  = "payment_receipts"
	ReceiptEntityName = "payment_receipt"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldStatus    = "status"

	TransactionStatusPending   = "pending"
	TransactionStatusSucceeded = "succeeded"
	TransactionStatusFailed    = "failed"
	TransactionStatusRefunded  = "refunded"

	ReceiptStatusAwaiting  = "awaiting"
	ReceiptStatusConfirmed = "confirmed"
	ReceiptStatusRejected  = "rejected"
)

// Transaction is one payment attempt against a booking. provider_ref holds
// the gateway's own identifier once the payment goes through a gateway.
type Transaction struct {
	ID            int64   `db:"id"`
	BookingID     int64   `db:"booking_id"`
	ProviderRef   *string `db:"provider_ref"`
	Amount        float64 `db:"amount"`
	Currency      string  `db:"currency"`
	PaymentMethod string  `db:"payment_method"`
	Status        string  `db:"status"`
	gModel.Metadata
}

// Receipt is an uploaded proof of payment awaiting provider review.
type Receipt struct {
	ID        int64   `db:"id"`
	BookingID int64   `db:"booking_id"`
	Path      string  `db:"path"`
	Status    string  `db:"status"`
	Notes     *string `db:"notes"`
	gModel.Metadata
}
