package dto

import (
	"furever/internal/domains/refund/model"
	gDto "furever/shared/dto"
)

type RequestRefundRequest struct {
	Reason *string  `json:"reason,omitempty" validate:"omitempty,max=255"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

// EligibilityResponse reports whether a refund may be requested plus the
// informational policy window against the scheduled slot.
type EligibilityResponse struct {
	Eligible      bool    `json:"eligible"`
	Reason        string  `json:"reason,omitempty"`
	Amount        float64 `json:"amount"`
	RefundPercent int     `json:"refund_percent"`
	HoursBefore   float64 `json:"hours_before_schedule"`
}

type RefundResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Reason        *string `json:"reason,omitempty"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *RefundResponse) FromModel(mod model.Refund) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.Amount = mod.Amount
	r.Reason = mod.Reason
	r.Status = mod.Status
	r.TransactionID = mod.TransactionID
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

// RetrySummary is the retry CLI's outcome report.
type RetrySummary struct {
	Scanned   int `json:"scanned"`
	Retried   int `json:"retried"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
