package matching

// Broker is the credit ledger handle an order carries. Orders never own
// the broker; implementations live outside the domain and must
// serialize mutations per broker.
type Broker interface {
	HasEnoughCredit(amount int64) bool
	DecreaseCreditBy(amount int64)
	IncreaseCreditBy(amount int64)
}

// Shareholder is the position ledger handle an order carries.
type Shareholder interface {
	HasEnoughPositionsOn(security *Security, quantity int64) bool
	IncPosition(security *Security, quantity int64)
	DecPosition(security *Security, quantity int64)
}
