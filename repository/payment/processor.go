package payment

type ChargeReq struct {
	Reference      string
	Amount         float64
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

type Receipt struct {
	TransactionID string
	Amount        float64
}

// Processor is the single synchronous payment boundary. A charge either
// succeeds with a receipt or fails with an error; there is no pending
// settlement state.
type Processor interface {
	Charge(req ChargeReq) (*Receipt, error)
}
