package dto

import (
	"furever/internal/domains/availability/model"
	"furever/shared"
	"furever/shared/constant"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"
)

type SlotRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

type PublishSlotsRequest struct {
	Date  string        `json:"date"  validate:"required,datetime=2006-01-02"`
	Slots []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

func (r *PublishSlotsRequest) ToModels(providerID int64, username string) []model.TimeSlot {
	slotDate, _ := time.Parse(constant.DateOnlyFormat, r.Date)

	slots := make([]model.TimeSlot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = model.TimeSlot{
			ProviderID: providerID,
			SlotDate:   slotDate,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  username,
				ModifiedBy: username,
			},
		}
	}

	return slots
}

type SlotResponse struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"provider_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (r *SlotResponse) FromModel(mod model.TimeSlot) {
	r.ID = mod.ID
	r.ProviderID = mod.ProviderID
	r.Date = shared.NormalizeDate(mod.SlotDate)
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
}

type GetSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func (r *GetSlotsResponse) FromModels(models []model.TimeSlot) {
	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}
