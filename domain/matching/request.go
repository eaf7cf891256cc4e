package matching

import "errors"

var (
	ErrBothPeakAndStop = errors.New("matching: peak size and stop price are mutually exclusive")
	ErrOrderNotFound   = errors.New("matching: order not found")
	ErrUnknownSide     = errors.New("matching: unknown side")
)

// OrderRequest carries the fields of a new-order or update-order
// request. Exactly one of PeakSize and StopPrice may be non-zero; both
// zero means a plain limit order.
type OrderRequest struct {
	RequestID   uint64
	OrderID     uint64
	Side        Side
	Quantity    int64
	Price       int64
	EntryTime   int64
	MinExecQty  int64
	PeakSize    int64
	StopPrice   int64
	Broker      Broker
	Shareholder Shareholder
}

// DeleteRequest identifies an order to remove.
type DeleteRequest struct {
	Side    Side
	OrderID uint64
}

func (r *OrderRequest) kind() (OrderKind, error) {
	switch {
	case r.PeakSize == 0 && r.StopPrice == 0:
		return KindLimit, nil
	case r.PeakSize != 0 && r.StopPrice == 0:
		return KindIceberg, nil
	case r.StopPrice != 0 && r.PeakSize == 0:
		return KindStopLimit, nil
	default:
		return 0, ErrBothPeakAndStop
	}
}
