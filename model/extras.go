// model/extras.go
package model

type ExtraKey string

const (
	ExtraGPS              ExtraKey = "gps"
	ExtraChildSeat        ExtraKey = "childSeat"
	ExtraInsurance        ExtraKey = "insurance"
	ExtraAdditionalDriver ExtraKey = "additionalDriver"
)

type ExtraOption struct {
	Key         ExtraKey `json:"key"`
	Name        string   `json:"name"`
	PricePerDay float64  `json:"price_per_day"`
}

// ExtraOptions is the fixed add-on catalog. Prices are per rental day.
var ExtraOptions = []ExtraOption{
	{Key: ExtraGPS, Name: "GPS Navigation", PricePerDay: 10},
	{Key: ExtraChildSeat, Name: "Child Seat", PricePerDay: 15},
	{Key: ExtraInsurance, Name: "Full Insurance", PricePerDay: 25},
	{Key: ExtraAdditionalDriver, Name: "Additional Driver", PricePerDay: 20},
}

// ExtraPrice returns the per-day price for a known add-on key.
func ExtraPrice(k ExtraKey) (float64, bool) {
	for _, o := range ExtraOptions {
		if o.Key == k {
			return o.PricePerDay, true
		}
	}
	return 0, false
}

// DefaultExtras returns the add-on selection with everything switched off.
func DefaultExtras() map[ExtraKey]bool {
	m := make(map[ExtraKey]bool, len(ExtraOptions))
	for _, o := range ExtraOptions {
		m[o.Key] = false
	}
	return m
}
