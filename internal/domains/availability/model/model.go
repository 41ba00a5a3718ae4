package model

import (
	"furever/shared/model"
	"time"
)

const (
	SlotTableName  = "availability_time_slots"
	SlotEntityName = "time_slot"

	DayTableName  = "provider_availability"
	DayEntityName = "day_availability"

	FieldID            = "id"
	FieldProviderID    = "provider_id"
	FieldSlotDate      = "slot_date"
	FieldStartTime     = "start_time"
	FieldAvailableDate = "available_date"
)

// TimeSlot is one bookable window. (provider_id, slot_date, start_time) is
// unique, which is what makes the transactional consume race-free.
type TimeSlot struct {
	ID         int64     `db:"id"`
	ProviderID int64     `db:"provider_id"`
	SlotDate   time.Time `db:"slot_date"`
	StartTime  string    `db:"start_time"`
	EndTime    string    `db:"end_time"`
	model.Metadata
}

// DayAvailability is the denormalized per-day flag kept in step with the
// remaining slot count.
type DayAvailability struct {
	ID            int64     `db:"id"`
	ProviderID    int64     `db:"provider_id"`
	AvailableDate time.Time `db:"available_date"`
	IsAvailable   bool      `db:"is_available"`
	model.Metadata
}
