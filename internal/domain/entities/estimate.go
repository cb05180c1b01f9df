package entities

import "time"

// EstimateStatus represents the disposition of a proposed estimate.
//
// Lifecycle: an estimate is created as proposed and moves exactly once to
// accepted or rejected. There is no reset; a decided estimate stays decided
// for the life of the work order.

type EstimateStatus string

const (
	EstimateStatusProposed EstimateStatus = "proposed"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// Estimate is the quoted figure negotiated with the customer.
//
// Amount is a quote, not a projection of the cost breakdown; the two may
// diverge permanently and no reconciliation step exists.
type Estimate struct {
	Amount    float64        `json:"amount"`
	Details   string         `json:"details"`
	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	DecidedAt *time.Time     `json:"decided_at,omitempty"`
}
