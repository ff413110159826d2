/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/banco-digital/banco/internal/apierror"
)

// CreateAccount is the request to open an account.
type CreateAccount struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Kind  string `json:"kind"`
}

func validAccountKind(value interface{}) error {
	tag, ok := value.(string)
	if !ok {
		return errors.New("invalid account kind type")
	}
	if _, err := ParseAccountKind(tag); err != nil {
		return errors.New("must be one of CHECKING, SAVINGS")
	}
	return nil
}

// Normalize trims the free text fields typed by the holder.
func (c *CreateAccount) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.TrimSpace(c.TaxID)
	c.Kind = strings.TrimSpace(c.Kind)
}

// ValidateCreateAccount checks the request and reports an unknown kind as
// INVALID_ACCOUNT_KIND and any other problem as INVALID_ARGUMENT.
func (c *CreateAccount) ValidateCreateAccount() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.TaxID, validation.Required),
		validation.Field(&c.Kind, validation.Required, validation.By(validAccountKind)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		if _, ok := fieldErrs["kind"]; ok && len(fieldErrs) == 1 {
			return apierror.NewAPIError(apierror.ErrInvalidAccountKind, "Falha ao criar conta: Tipo de conta inválido.", fieldErrs)
		}
	}
	return apierror.NewAPIError(apierror.ErrInvalidArgument, "Nome e CPF do titular são obrigatórios.", err)
}
