package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ConstitutionType string

const (
	ConstitutionProprietorship ConstitutionType = "proprietorship"
	ConstitutionPartnership    ConstitutionType = "partnership"
	ConstitutionPrivateLimited ConstitutionType = "private_limited"
)

const MaxPartners = 10

type Partner struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	AadharNumber string `json:"aadhar_number,omitempty"`
	PANNumber    string `json:"pan_number,omitempty"`
}

// Client is the loan-management client record as served by the backend.
// Most fields are optional; the three competing document shapes are kept
// side by side for backward compatibility, resolution order is
// Documents > ProcessedDocuments > the legacy singular URL field.
type Client struct {
	ID               uuid.UUID        `json:"id"`
	LegalName        string           `json:"legal_name"`
	BusinessName     string           `json:"business_name,omitempty"`
	Email            string           `json:"email,omitempty"`
	Mobile           string           `json:"mobile,omitempty"`
	ConstitutionType ConstitutionType `json:"constitution_type,omitempty"`
	GSTNumber        string           `json:"gst_number,omitempty"`
	Address          string           `json:"address,omitempty"`
	District         string           `json:"district,omitempty"`
	State            string           `json:"state,omitempty"`

	RequiredLoanAmount *decimal.Decimal `json:"required_loan_amount,omitempty"`
	MonthlyTurnover    *decimal.Decimal `json:"monthly_turnover,omitempty"`

	Partners []Partner `json:"partners,omitempty"`

	Documents           map[string]DocumentValue     `json:"documents,omitempty"`
	ProcessedDocuments  map[string]ProcessedDocument `json:"processed_documents,omitempty"`
	BusinessDocumentURL string                       `json:"business_document_url,omitempty"`

	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedBy     uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy     uuid.UUID `json:"updated_by,omitempty"`
	UpdatedByRole string    `json:"updated_by_role,omitempty"`
}

// ClientUpdate carries the editable subset of a client record. Nil fields
// are left untouched by the backend.
type ClientUpdate struct {
	LegalName          *string           `json:"legal_name,omitempty"`
	BusinessName       *string           `json:"business_name,omitempty"`
	Email              *string           `json:"email,omitempty"`
	Mobile             *string           `json:"mobile,omitempty"`
	ConstitutionType   *ConstitutionType `json:"constitution_type,omitempty"`
	GSTNumber          *string           `json:"gst_number,omitempty"`
	Address            *string           `json:"address,omitempty"`
	District           *string           `json:"district,omitempty"`
	State              *string           `json:"state,omitempty"`
	RequiredLoanAmount *decimal.Decimal  `json:"required_loan_amount,omitempty"`
	MonthlyTurnover    *decimal.Decimal  `json:"monthly_turnover,omitempty"`
	Partners           []Partner         `json:"partners,omitempty"`
}
