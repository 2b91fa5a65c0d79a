// model/booking.go
package model

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type SearchParams struct {
	Location   string `json:"location,omitempty"`
	PickupDate string `json:"pickup_date,omitempty"`
	PickupTime string `json:"pickup_time,omitempty"`
	ReturnDate string `json:"return_date,omitempty"`
	ReturnTime string `json:"return_time,omitempty"`
}

type CustomerDetails struct {
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// BookingDraft is the in-progress booking for one session. TotalPrice is a
// cached projection of the pricing formula and is recomputed on every change;
// it is never the source of truth for what the customer owes.
type BookingDraft struct {
	SearchParams    SearchParams      `json:"search_params"`
	SelectedVehicle *Vehicle          `json:"selected_vehicle,omitempty"`
	CustomerDetails CustomerDetails   `json:"customer_details"`
	Extras          map[ExtraKey]bool `json:"extras"`
	RentalDays      int               `json:"rental_days"`
	TotalPrice      float64           `json:"total_price"`
}

func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		Extras:     DefaultExtras(),
		RentalDays: 1,
	}
}

// BookingRecord is the persisted form of a finalized booking. The id never
// changes and records are never deleted; cancellation is a status change.
type BookingRecord struct {
	ID            string            `json:"id"`
	UserID        int64             `json:"user_id"`
	Vehicle       Vehicle           `json:"vehicle"`
	Customer      CustomerDetails   `json:"customer"`
	SearchParams  SearchParams      `json:"search_params"`
	Extras        map[ExtraKey]bool `json:"extras"`
	RentalDays    int               `json:"rental_days"`
	TotalPrice    float64           `json:"total_price"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	Status        BookingStatus     `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	ModifiedAt    *time.Time        `json:"modified_at,omitempty"`
}
