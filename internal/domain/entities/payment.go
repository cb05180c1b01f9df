package entities

import "time"

// PaymentMethod is the closed set of accepted payment methods.

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCheck PaymentMethod = "check"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodACH   PaymentMethod = "ach"
	PaymentMethodOther PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard, PaymentMethodACH, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentRecord is an immutable payment event. Records are never updated or
// removed once appended (financial audit requirement).
//
// GatewayRef carries the provider payment id when the payment was processed
// through an external gateway (card payments).
type PaymentRecord struct {
	Amount     float64       `json:"amount"`
	Method     PaymentMethod `json:"method"`
	Notes      string        `json:"notes,omitempty"`
	GatewayRef string        `json:"gateway_ref,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}
