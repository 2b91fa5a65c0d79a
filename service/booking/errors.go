package booking

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrMissingVehicle    ErrCode = "MISSING_VEHICLE"
	ErrAuthRequired      ErrCode = "AUTH_REQUIRED"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"
	ErrPersistFailed     ErrCode = "PERSIST_FAILED"
	ErrPaymentDeclined   ErrCode = "PAYMENT_DECLINED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
