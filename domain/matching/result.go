package matching

// Outcome tags a MatchResult. Business failures are outcomes, not
// errors: callers branch on them to decide what to tell the client.
type Outcome int

const (
	OutcomeExecuted Outcome = iota
	OutcomeNotEnoughCredit
	OutcomeNotEnoughPositions
	OutcomeNotEnoughInitialTransaction
)

// MatchResult is the one-shot result of a matching attempt: the tag,
// the trades produced (empty on any failure outcome), and the incoming
// order in its post-matching state.
type MatchResult struct {
	Outcome   Outcome
	Trades    []*Trade
	Remainder *Order
}

func executedResult(remainder *Order, trades []*Trade) *MatchResult {
	return &MatchResult{Outcome: OutcomeExecuted, Trades: trades, Remainder: remainder}
}

func notEnoughCredit() *MatchResult {
	return &MatchResult{Outcome: OutcomeNotEnoughCredit}
}

func notEnoughInitialTransaction() *MatchResult {
	return &MatchResult{Outcome: OutcomeNotEnoughInitialTransaction}
}

// StatusKind is the domain status reported for a request.
type StatusKind int

const (
	StatusAccepted StatusKind = iota
	StatusAcceptedAndActivated
	StatusUpdated
	StatusUpdatedAndActivated
	StatusAuctioned
	StatusQueuedAsInactive
	StatusActivated
	StatusNotEnoughCredit
	StatusNotEnoughPositions
	StatusNotEnoughInitialTransaction
)

func (k StatusKind) String() string {
	switch k {
	case StatusAccepted:
		return "ACCEPTED"
	case StatusAcceptedAndActivated:
		return "ACCEPTED_AND_ACTIVATED"
	case StatusUpdated:
		return "UPDATED"
	case StatusUpdatedAndActivated:
		return "UPDATED_AND_ACTIVATED"
	case StatusAuctioned:
		return "AUCTIONED"
	case StatusQueuedAsInactive:
		return "QUEUED_AS_INACTIVE"
	case StatusActivated:
		return "ACTIVATED"
	case StatusNotEnoughCredit:
		return "NOT_ENOUGH_CREDIT"
	case StatusNotEnoughPositions:
		return "NOT_ENOUGH_POSITIONS"
	case StatusNotEnoughInitialTransaction:
		return "NOT_ENOUGH_INITIAL_TRANSACTION"
	default:
		return "UNKNOWN"
	}
}

// Rejected reports whether the status is a business rejection.
func (k StatusKind) Rejected() bool {
	switch k {
	case StatusNotEnoughCredit, StatusNotEnoughPositions, StatusNotEnoughInitialTransaction:
		return true
	}
	return false
}

// SecurityStatus is the domain outcome of one request against a
// Security, with any trades produced directly by that request.
type SecurityStatus struct {
	Kind   StatusKind
	Trades []*Trade
}
