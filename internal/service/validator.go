package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

const (
	EmailMaxLen = 255
	NameMinLen  = 2
	NameMaxLen  = 255
)

var (
	emailRegexp  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegexp = regexp.MustCompile(`^[6-9]\d{9}$`)
	gstRegexp    = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]\d[A-Z\d]{2}$`)
	aadharRegexp = regexp.MustCompile(`^\d{12}$`)
	panRegexp    = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
)

// ValidateClientUpdate checks the optional fields of a partial update. Nil
// fields are left alone, present fields must be well-formed.
func ValidateClientUpdate(update entity.ClientUpdate) error {
	if err := validateOptionalName(update.LegalName, "legal_name"); err != nil {
		return err
	}

	if err := validateOptionalName(update.BusinessName, "business_name"); err != nil {
		return err
	}

	if err := ValidateEmail(update.Email); err != nil {
		return err
	}

	if err := ValidateMobile(update.Mobile); err != nil {
		return err
	}

	if update.ConstitutionType != nil && !isValidConstitution(*update.ConstitutionType) {
		return fmt.Errorf("%w: unknown constitution type %q", entity.ErrInvalidInput, *update.ConstitutionType)
	}

	if err := ValidateGSTNumber(update.GSTNumber); err != nil {
		return err
	}

	if err := validateOptionalAmount(update.RequiredLoanAmount, "required_loan_amount"); err != nil {
		return err
	}

	if err := validateOptionalAmount(update.MonthlyTurnover, "monthly_turnover"); err != nil {
		return err
	}

	return ValidatePartners(update.Partners)
}

func ValidateEmail(email *string) error {
	if email == nil || *email == "" {
		return nil
	}

	if len(*email) > EmailMaxLen {
		return fmt.Errorf("%w: email exceeds %d characters", entity.ErrInvalidInput, EmailMaxLen)
	}

	if !emailRegexp.MatchString(*email) {
		return fmt.Errorf("%w: invalid email format", entity.ErrInvalidInput)
	}

	return nil
}

func ValidateMobile(mobile *string) error {
	if mobile == nil || *mobile == "" {
		return nil
	}

	if !mobileRegexp.MatchString(*mobile) {
		return fmt.Errorf("%w: mobile must be a 10-digit Indian number", entity.ErrInvalidInput)
	}

	return nil
}

func ValidateGSTNumber(gst *string) error {
	if gst == nil || *gst == "" {
		return nil
	}

	if !gstRegexp.MatchString(strings.ToUpper(*gst)) {
		return fmt.Errorf("%w: invalid GST number format", entity.ErrInvalidInput)
	}

	return nil
}

func ValidatePartners(partners []entity.Partner) error {
	if len(partners) > entity.MaxPartners {
		return fmt.Errorf("%w: at most %d partners allowed", entity.ErrInvalidInput, entity.MaxPartners)
	}

	for i, p := range partners {
		if p.AadharNumber != "" && !aadharRegexp.MatchString(p.AadharNumber) {
			return fmt.Errorf("%w: partner %d: aadhar must be 12 digits", entity.ErrInvalidInput, i)
		}

		if p.PANNumber != "" && !panRegexp.MatchString(strings.ToUpper(p.PANNumber)) {
			return fmt.Errorf("%w: partner %d: invalid PAN format", entity.ErrInvalidInput, i)
		}
	}

	return nil
}

func validateOptionalName(value *string, field string) error {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)

	if len(trimmed) < NameMinLen {
		return fmt.Errorf("%w: %s must be at least %d characters", entity.ErrInvalidInput, field, NameMinLen)
	}

	if len(trimmed) > NameMaxLen {
		return fmt.Errorf("%w: %s exceeds %d characters", entity.ErrInvalidInput, field, NameMaxLen)
	}

	return nil
}

func validateOptionalAmount(value *decimal.Decimal, field string) error {
	if value == nil {
		return nil
	}

	if value.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", entity.ErrInvalidInput, field)
	}

	return nil
}

func isValidConstitution(t entity.ConstitutionType) bool {
	switch t {
	case entity.ConstitutionProprietorship, entity.ConstitutionPartnership, entity.ConstitutionPrivateLimited:
		return true
	}

	return false
}
