package service

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota + 1
	OutcomeRejected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the business result of a request. Accepted outcomes carry a base64 partially signed
// transaction; rejected ones only a message for the participant. Infrastructure failures are not
// outcomes, they are returned as errors next to a zero Outcome.
type Outcome struct {
	Kind        OutcomeKind
	Transaction string
	Message     string
}

// Accepted returns an outcome carrying a transaction for the wallet to sign.
func Accepted(transaction, message string) Outcome {
	return Outcome{Kind: OutcomeAccepted, Transaction: transaction, Message: message}
}

// Rejected returns an outcome explaining why no transaction was built.
func Rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: reason}
}
