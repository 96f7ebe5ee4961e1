package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type StatusDimension string

const (
	DimensionPaymentGateway StatusDimension = "payment_gateway"
	DimensionLoan           StatusDimension = "loan"
)

func (d StatusDimension) String() string {
	return string(d)
}

func (d StatusDimension) IsValid() bool {
	switch d {
	case DimensionPaymentGateway, DimensionLoan:
		return true
	}

	return false
}

// GatewayStatus is the tri-state approval of a client for one named
// payment gateway.
type GatewayStatus string

const (
	GatewayApproved    GatewayStatus = "approved"
	GatewayNotApproved GatewayStatus = "not_approved"
	GatewayPending     GatewayStatus = "pending"
)

func (s GatewayStatus) String() string {
	return string(s)
}

func (s GatewayStatus) IsValid() bool {
	switch s {
	case GatewayApproved, GatewayNotApproved, GatewayPending:
		return true
	}

	return false
}

// Toggle applies the tri-state rule: requesting the currently-active value
// flips the status back to pending, anything else sets the requested value.
func (s GatewayStatus) Toggle(requested GatewayStatus) GatewayStatus {
	if requested == s {
		return GatewayPending
	}

	return requested
}

// NextPlausible is the value a retry should attempt after a failed update.
func (s GatewayStatus) NextPlausible() GatewayStatus {
	switch s {
	case GatewayApproved:
		return GatewayNotApproved
	case GatewayNotApproved:
		return GatewayPending
	default:
		return GatewayApproved
	}
}

type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanHold     LoanStatus = "hold"
	LoanRejected LoanStatus = "rejected"
)

func (s LoanStatus) String() string {
	return string(s)
}

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanHold, LoanRejected:
		return true
	}

	return false
}

// ClientStatus is the locally tracked value of one status dimension,
// mutated optimistically before the backend confirms.
type ClientStatus struct {
	ClientID  uuid.UUID
	Dimension StatusDimension
	Gateway   string // named gateway, empty for the loan dimension
	Status    string
	UpdatedBy uuid.UUID
	UpdatedAt time.Time
}

// StatusUpdate is one element of a batch status update.
type StatusUpdate struct {
	ClientID  uuid.UUID       `json:"client_id"`
	Dimension StatusDimension `json:"dimension"`
	Gateway   string          `json:"gateway,omitempty"`
	Status    string          `json:"status"`
}

// DeliveryOutcome is the secondary notification-delivery result the backend
// reports after a successful status update.
type DeliveryOutcome string

const (
	DeliveryNone        DeliveryOutcome = ""
	DeliveryEmailSent   DeliveryOutcome = "email_sent"
	DeliveryEmailFailed DeliveryOutcome = "email_failed"
	DeliveryEmailAsync  DeliveryOutcome = "email_async"
)
