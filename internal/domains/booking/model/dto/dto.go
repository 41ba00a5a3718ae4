package dto

import (
	"furever/internal/domains/booking/model"
	refundModel "furever/internal/domains/refund/model"
	"furever/shared"
	"furever/shared/constant"
	gDto "furever/shared/dto"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"
)

type AddonRequest struct {
	Name  string  `json:"name"  validate:"required,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
}

// CreateBookingRequest is the fur-parent booking payload. Either pet_id
// references an owned pet, or pet_name/pet_type describe a new one.
type CreateBookingRequest struct {
	ProviderID      int64          `json:"provider_id" validate:"required"`
	PackageID       int64          `json:"package_id"  validate:"required"`
	PetID           *int64         `json:"pet_id,omitempty"`
	PetName         string         `json:"pet_name"`
	PetType         string         `json:"pet_type"`
	PetBreed        *string        `json:"pet_breed,omitempty"`
	BookingDate     string         `json:"booking_date"`
	BookingTime     string         `json:"booking_time"`
	PaymentMethod   string         `json:"payment_method"  validate:"required,oneof=cash gcash"`
	DeliveryOption  string         `json:"delivery_option" validate:"required,oneof=pickup delivery"`
	DeliveryAddress *string        `json:"delivery_address,omitempty"`
	DeliveryFee     *float64       `json:"delivery_fee,omitempty" validate:"omitempty,gte=0"`
	SpecialRequests *string        `json:"special_requests,omitempty"`
	Addons          []AddonRequest `json:"addons,omitempty" validate:"omitempty,dive"`
}

// MissingFields lists exactly the required keys the payload omitted.
func (r *CreateBookingRequest) MissingFields() []string {
	missing := []string{}

	if r.BookingDate == "" {
		missing = append(missing, "booking_date")
	}

	if r.BookingTime == "" {
		missing = append(missing, "booking_time")
	}

	if r.PetID == nil {
		if r.PetName == "" {
			missing = append(missing, "pet_name")
		}

		if r.PetType == "" {
			missing = append(missing, "pet_type")
		}
	}

	if r.DeliveryOption == model.DeliveryOptionDelivery && (r.DeliveryAddress == nil || *r.DeliveryAddress == "") {
		missing = append(missing, "delivery_address")
	}

	return missing
}

func (r *CreateBookingRequest) ToModel(userID string, petID int64, bookingDate time.Time, price float64) model.Booking {
	return model.Booking{
		UserID:          userID,
		ProviderID:      r.ProviderID,
		PackageID:       r.PackageID,
		PetID:           petID,
		BookingDate:     bookingDate,
		BookingTime:     r.BookingTime,
		Status:          model.StatusPending,
		PaymentMethod:   r.PaymentMethod,
		PaymentStatus:   model.PaymentStatusNotPaid,
		Price:           price,
		DeliveryOption:  r.DeliveryOption,
		DeliveryAddress: r.DeliveryAddress,
		DeliveryFee:     r.DeliveryFee,
		SpecialRequests: r.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// CreateForUserRequest is the provider-initiated booking payload, created on
// behalf of an existing fur-parent.
type CreateForUserRequest struct {
	UserID          string         `json:"user_id"`
	ProviderID      int64          `json:"provider_id"`
	PackageID       int64          `json:"package_id"`
	Price           float64        `json:"price"`
	PetName         string         `json:"pet_name"`
	PetType         string         `json:"pet_type"`
	PetBreed        *string        `json:"pet_breed,omitempty"`
	BookingDate     string         `json:"booking_date"`
	BookingTime     string         `json:"booking_time"`
	PaymentMethod   string         `json:"payment_method,omitempty"  validate:"omitempty,oneof=cash gcash"`
	DeliveryOption  string         `json:"delivery_option,omitempty" validate:"omitempty,oneof=pickup delivery"`
	DeliveryAddress *string        `json:"delivery_address,omitempty"`
	SpecialRequests *string        `json:"special_requests,omitempty"`
	Addons          []AddonRequest `json:"addons,omitempty" validate:"omitempty,dive"`
}

func (r *CreateForUserRequest) MissingFields() []string {
	missing := []string{}

	if r.UserID == "" {
		missing = append(missing, "user_id")
	}

	if r.ProviderID == 0 {
		missing = append(missing, "provider_id")
	}

	if r.PackageID == 0 {
		missing = append(missing, "package_id")
	}

	if r.Price == 0 {
		missing = append(missing, "price")
	}

	if r.PetName == "" {
		missing = append(missing, "pet_name")
	}

	if r.PetType == "" {
		missing = append(missing, "pet_type")
	}

	if r.BookingDate == "" {
		missing = append(missing, "booking_date")
	}

	if r.BookingTime == "" {
		missing = append(missing, "booking_time")
	}

	return missing
}

func (r *CreateForUserRequest) ToModel(petID int64, bookingDate time.Time, createdBy string) model.Booking {
	paymentMethod := r.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodCash
	}

	deliveryOption := r.DeliveryOption
	if deliveryOption == "" {
		deliveryOption = model.DeliveryOptionPickup
	}

	return model.Booking{
		UserID:          r.UserID,
		ProviderID:      r.ProviderID,
		PackageID:       r.PackageID,
		PetID:           petID,
		BookingDate:     bookingDate,
		BookingTime:     r.BookingTime,
		Status:          model.StatusPending,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   model.PaymentStatusNotPaid,
		Price:           r.Price,
		DeliveryOption:  deliveryOption,
		DeliveryAddress: r.DeliveryAddress,
		SpecialRequests: r.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
}

type CreateBookingResponse struct {
	ID            int64   `json:"id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	Price         float64 `json:"price"`
}

func (r *CreateBookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.BookingDate = shared.NormalizeDate(mod.BookingDate)
	r.BookingTime = mod.BookingTime
	r.Price = mod.Price
}

type AddonResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type RefundResponse struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type BookingResponse struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"user_id"`
	ProviderID      int64           `json:"provider_id"`
	PackageID       int64           `json:"package_id"`
	PetID           int64           `json:"pet_id"`
	PetName         string          `json:"pet_name"`
	PetSpecies      *string         `json:"pet_species,omitempty"`
	CustomerName    *string         `json:"customer_name,omitempty"`
	CustomerEmail   *string         `json:"customer_email,omitempty"`
	ProviderName    string          `json:"provider_name"`
	PackageName     string          `json:"package_name"`
	BookingDate     string          `json:"booking_date"`
	BookingTime     string          `json:"booking_time"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	Price           float64         `json:"price"`
	DeliveryOption  string          `json:"delivery_option"`
	DeliveryAddress *string         `json:"delivery_address,omitempty"`
	DeliveryFee     *float64        `json:"delivery_fee,omitempty"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
	Addons          []AddonResponse `json:"addons"`
	Refund          *RefundResponse `json:"refund,omitempty"`
	gDto.Metadata
}

// FromModel normalizes the stored row for clients: booking_date always comes
// out YYYY-MM-DD and dangling referents fall back to readable placeholders.
func (r *BookingResponse) FromModel(mod model.Booking, addons []model.Addon, refund *refundModel.Refund) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.ProviderID = mod.ProviderID
	r.PackageID = mod.PackageID
	r.PetID = mod.PetID
	r.PetName = valueOrPlaceholder(mod.PetName, constant.PlaceholderPetName)
	r.PetSpecies = mod.PetSpecies
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.ProviderName = valueOrPlaceholder(mod.ProviderName, constant.PlaceholderProviderName)
	r.PackageName = valueOrPlaceholder(mod.PackageName, constant.PlaceholderPackageName)
	r.BookingDate = shared.NormalizeDate(mod.BookingDate)
	r.BookingTime = mod.BookingTime
	r.Status = mod.Status
	r.PaymentMethod = mod.PaymentMethod
	r.PaymentStatus = mod.PaymentStatus
	r.Price = mod.Price
	r.DeliveryOption = mod.DeliveryOption
	r.DeliveryAddress = mod.DeliveryAddress
	r.DeliveryFee = mod.DeliveryFee
	r.SpecialRequests = mod.SpecialRequests
	r.Metadata.FromModel(mod.Metadata)

	r.Addons = make([]AddonResponse, len(addons))
	for i, addon := range addons {
		r.Addons[i] = AddonResponse{Name: addon.Name, Price: addon.Price}
	}

	if refund != nil {
		r.Refund = &RefundResponse{
			ID:            refund.ID,
			Amount:        refund.Amount,
			Status:        refund.Status,
			TransactionID: refund.TransactionID,
			Notes:         refund.Notes,
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Warning   string            `json:"warning,omitempty"`
	TotalPage int               `json:"total_page,omitempty"`
	TotalData int               `json:"total_data,omitempty"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, addons map[int64][]model.Addon, refunds map[int64]refundModel.Refund, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		var refund *refundModel.Refund
		if latest, ok := refunds[mod.ID]; ok {
			refund = &latest
		}

		r.Bookings[i].FromModel(mod, addons[mod.ID], refund)
	}
}

// Degraded empties the listing and sets the warning instead of surfacing an
// infrastructure error to the caller.
func (r *GetBookingsResponse) Degraded(warning string) {
	r.Bookings = []BookingResponse{}
	r.Warning = warning
	r.TotalPage = 0
	r.TotalData = 0
}

func valueOrPlaceholder(value *string, placeholder string) string {
	if value == nil || *value == "" {
		return placeholder
	}

	return *value
}
