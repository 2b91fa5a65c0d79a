package booking

import (
	"math"
	"time"

	"github.com/sharma2rachit/zenith-rental/model"
)

const dateLayout = "2006-01-02"

// ComputeTotal prices a rental: vehicle daily price times rentalDays plus each
// enabled extra at its per-day rate. Pure and idempotent. rentalDays below 1
// is billed as 1.
func ComputeTotal(v *model.Vehicle, rentalDays int, extras map[model.ExtraKey]bool) (float64, error) {
	if v == nil {
		return 0, makeErr(ErrMissingVehicle)
	}
	if rentalDays < 1 {
		rentalDays = 1
	}
	total := v.DailyPrice * float64(rentalDays)
	for k, enabled := range extras {
		if !enabled {
			continue
		}
		if price, ok := model.ExtraPrice(k); ok {
			total += price * float64(rentalDays)
		}
	}
	return total, nil
}

// RentalDays derives the billing day count from pickup/return dates. Missing
// or malformed dates, and returns at or before pickup, all floor to one day.
func RentalDays(pickupDate, returnDate string) int {
	p, err := time.Parse(dateLayout, pickupDate)
	if err != nil {
		return 1
	}
	r, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(r.Sub(p).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
