// model/vehicle.go
package model

type VehicleSpecs struct {
	Passengers   int    `json:"passengers"`
	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	Doors        int    `json:"doors"`
	Luggage      int    `json:"luggage"`
}

// Vehicle is a catalog entry. The booking flow only reads ID, DailyPrice,
// Available and Location; the rest feeds search listings.
type Vehicle struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	DailyPrice  float64      `json:"daily_price"`
	Rating      float64      `json:"rating"`
	Reviews     int          `json:"reviews"`
	Specs       VehicleSpecs `json:"specs"`
	Features    []string     `json:"features,omitempty"`
	Badge       string       `json:"badge,omitempty"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location"`
	Available   bool         `json:"available"`
}
