package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/service"
)

func strPtr(s string) *string { return &s }

func TestValidateClientUpdate(t *testing.T) {
	t.Parallel()

	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		update  entity.ClientUpdate
		wantErr bool
	}{
		{
			name: "valid full update",
			update: entity.ClientUpdate{
				LegalName: strPtr("Sharma Traders Pvt Ltd"),
				Email:     strPtr("owner@sharmatraders.in"),
				Mobile:    strPtr("9876543210"),
				GSTNumber: strPtr("27AAPFU0939F1ZV"),
				Partners: []entity.Partner{
					{Name: "R. Sharma", AadharNumber: "123456789012", PANNumber: "AAPFU0939F"},
				},
			},
		},
		{
			name:   "empty update is fine",
			update: entity.ClientUpdate{},
		},
		{
			name:    "bad email",
			update:  entity.ClientUpdate{Email: strPtr("not-an-email")},
			wantErr: true,
		},
		{
			name:    "mobile must start with 6-9",
			update:  entity.ClientUpdate{Mobile: strPtr("1234567890")},
			wantErr: true,
		},
		{
			name:    "malformed gst",
			update:  entity.ClientUpdate{GSTNumber: strPtr("ZZ123")},
			wantErr: true,
		},
		{
			name:    "negative loan amount",
			update:  entity.ClientUpdate{RequiredLoanAmount: &negative},
			wantErr: true,
		},
		{
			name: "partner aadhar wrong length",
			update: entity.ClientUpdate{
				Partners: []entity.Partner{{AadharNumber: "12345"}},
			},
			wantErr: true,
		},
		{
			name: "too many partners",
			update: entity.ClientUpdate{
				Partners: make([]entity.Partner, entity.MaxPartners+1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateClientUpdate(tt.update)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
		})
	}
}
