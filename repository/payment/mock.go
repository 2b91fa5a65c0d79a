package payment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type mockProcessor struct{}

// NewMock returns a processor that approves every well-formed card charge.
// There is no real gateway behind the storefront.
func NewMock() Processor { return &mockProcessor{} }

func (m *mockProcessor) Charge(req ChargeReq) (*Receipt, error) {
	if req.Amount <= 0 {
		return nil, errors.New("charge amount must be positive")
	}
	if strings.TrimSpace(req.CardNumber) == "" {
		return nil, errors.New("card number required")
	}
	return &Receipt{TransactionID: "txn_" + uuid.NewString(), Amount: req.Amount}, nil
}
