package booking

import (
	"github.com/sharma2rachit/zenith-rental/model"
	bs "github.com/sharma2rachit/zenith-rental/service/booking"
)

// Partial update payloads: only fields present in the JSON are applied.

type SearchParamsReq struct {
	Location   *string `json:"location"`
	PickupDate *string `json:"pickup_date"`
	PickupTime *string `json:"pickup_time"`
	ReturnDate *string `json:"return_date"`
	ReturnTime *string `json:"return_time"`
}

func (r SearchParamsReq) toUpdate() bs.SearchParamsUpdate {
	return bs.SearchParamsUpdate{
		Location:   r.Location,
		PickupDate: r.PickupDate,
		PickupTime: r.PickupTime,
		ReturnDate: r.ReturnDate,
		ReturnTime: r.ReturnTime,
	}
}

type SelectVehicleReq struct {
	VehicleID int64 `json:"vehicle_id" validate:"required,gt=0"`
}

type CustomerDetailsReq struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
}

func (r CustomerDetailsReq) toUpdate() bs.CustomerUpdate {
	return bs.CustomerUpdate{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		LicenseNumber: r.LicenseNumber,
	}
}

type ExtrasReq struct {
	Extras map[model.ExtraKey]bool `json:"extras" validate:"required"`
}

type CardReq struct {
	Number         string `json:"number" validate:"required"`
	ExpiryDate     string `json:"expiry_date" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	CardholderName string `json:"cardholder_name" validate:"required"`
}

type FinalizeReq struct {
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cash card"`
	Card          *CardReq `json:"card"`
}

type ModifyBookingReq struct {
	SearchParams SearchParamsReq         `json:"search_params"`
	Extras       map[model.ExtraKey]bool `json:"extras"`
}
