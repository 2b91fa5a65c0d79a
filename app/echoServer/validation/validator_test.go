package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type payload struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card"`
	VehicleID     int64  `json:"vehicle_id" validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(payload{PaymentMethod: "cash", VehicleID: 1}))

	err := v.Validate(payload{PaymentMethod: "wire", VehicleID: 0})
	require.Error(t, err)
	// errors report the json field names, not the Go ones
	require.Contains(t, err.Error(), "payment_method")
	require.Contains(t, err.Error(), "vehicle_id")
}
