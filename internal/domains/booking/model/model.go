package model

import (
	gModel "furever/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	AddonTableName  = "booking_addons"
	AddonEntityName = "booking_addon"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldProviderID    = "provider_id"
	FieldPackageID     = "package_id"
	FieldPetID         = "pet_id"
	FieldBookingDate   = "booking_date"
	FieldBookingTime   = "booking_time"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
	FieldBookingID     = "booking_id"

	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"

	PaymentMethodCash  = "cash"
	PaymentMethodGcash = "gcash"

	PaymentStatusNotPaid  = "not_paid"
	PaymentStatusAwaiting = "awaiting_payment_confirmation"
	PaymentStatusPaid     = "paid"
	PaymentStatusRejected = "payment_rejected"
	PaymentStatusRefunded = "refunded"

	DeliveryOptionPickup   = "pickup"
	DeliveryOptionDelivery = "delivery"
)

// Booking carries its own columns plus denormalized names from the joined
// tables. Joined fields are nullable so rows survive deleted referents.
type Booking struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	ProviderID      int64     `db:"provider_id"`
	PackageID       int64     `db:"package_id"`
	PetID           int64     `db:"pet_id"`
	BookingDate     time.Time `db:"booking_date"`
	BookingTime     string    `db:"booking_time"`
	Status          string    `db:"status"`
	PaymentMethod   string    `db:"payment_method"`
	PaymentStatus   string    `db:"payment_status"`
	Price           float64   `db:"price"`
	DeliveryOption  string    `db:"delivery_option"`
	DeliveryAddress *string   `db:"delivery_address"`
	DeliveryFee     *float64  `db:"delivery_fee"`
	SpecialRequests *string   `db:"special_requests"`
	PetName         *string   `db:"pet_name" table:"pets" column:"name"`
	PetSpecies      *string   `db:"pet_species" table:"pets" column:"species"`
	CustomerName    *string   `db:"customer_name" table:"users" column:"full_name"`
	CustomerEmail   *string   `db:"customer_email" table:"users" column:"email"`
	ProviderName    *string   `db:"provider_name" table:"service_providers" column:"name"`
	PackageName     *string   `db:"package_name" table:"service_packages" column:"name"`
	gModel.Metadata
}

func (b Booking) GetJoinQuery() string {
	return `LEFT JOIN pets ON pets.id = bookings.pet_id
		LEFT JOIN users ON users.id = bookings.user_id
		LEFT JOIN service_providers ON service_providers.id = bookings.provider_id
		LEFT JOIN service_packages ON service_packages.id = bookings.package_id`
}

type Addon struct {
	ID        int64   `db:"id"`
	BookingID int64   `db:"booking_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	gModel.Metadata
}
