package dto

import (
	"furever/internal/domains/payment/model"
	gDto "furever/shared/dto"
)

type RecordPaymentRequest struct {
	ProviderRef *string `json:"provider_ref,omitempty" validate:"omitempty,max=100"`
	ReceiptPath *string `json:"receipt_path,omitempty" validate:"omitempty,max=255"`
}

type ReviewReceiptRequest struct {
	Status string  `json:"status" validate:"required,oneof=confirmed rejected"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type TransactionResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"booking_id"`
	ProviderRef   *string `json:"provider_ref,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(mod model.Transaction) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.ProviderRef = mod.ProviderRef
	r.Amount = mod.Amount
	r.Currency = mod.Currency
	r.PaymentMethod = mod.PaymentMethod
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type ReceiptResponse struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id"`
	Path      string  `json:"path"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *ReceiptResponse) FromModel(mod model.Receipt) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.Path = mod.Path
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}
