package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banco-digital/banco/internal/apierror"
)

func TestValidateCreateAccount(t *testing.T) {
	tests := []struct {
		name    string
		request CreateAccount
		code    apierror.ErrorCode
	}{
		{name: "Valid checking", request: CreateAccount{Name: "Ana", TaxID: "111", Kind: "CHECKING"}},
		{name: "Valid savings", request: CreateAccount{Name: "Ana", TaxID: "111", Kind: "poupanca"}},
		{name: "Unknown kind", request: CreateAccount{Name: "Ana", TaxID: "111", Kind: "BROKERAGE"}, code: apierror.ErrInvalidAccountKind},
		{name: "Missing kind", request: CreateAccount{Name: "Ana", TaxID: "111"}, code: apierror.ErrInvalidAccountKind},
		{name: "Missing name", request: CreateAccount{TaxID: "111", Kind: "CHECKING"}, code: apierror.ErrInvalidArgument},
		{name: "Missing tax id", request: CreateAccount{Name: "Ana", Kind: "CHECKING"}, code: apierror.ErrInvalidArgument},
		{name: "Missing everything", request: CreateAccount{}, code: apierror.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.ValidateCreateAccount()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apierror.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestCreateAccountNormalize(t *testing.T) {
	request := CreateAccount{Name: "  Ana ", TaxID: " 111\n", Kind: " CHECKING "}
	request.Normalize()
	assert.Equal(t, CreateAccount{Name: "Ana", TaxID: "111", Kind: "CHECKING"}, request)

	blank := CreateAccount{Name: "   ", TaxID: "111", Kind: "CHECKING"}
	blank.Normalize()
	assert.True(t, apierror.Is(blank.ValidateCreateAccount(), apierror.ErrInvalidArgument))
}
