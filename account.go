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

package banco

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/banco-digital/banco/internal/apierror"
	"github.com/banco-digital/banco/model"
)

// CreateAccount opens an account of the requested kind for a new client.
// A tax-id can only hold one account.
func (b *Bank) CreateAccount(ctx context.Context, request model.CreateAccount) (model.AccountCreated, error) {
	_, span := b.tracer.Start(ctx, "CreateAccount")
	defer span.End()

	request.Normalize()
	// an unknown kind is only reported once the tax-id is known to be free
	kindErr := request.ValidateCreateAccount()
	if kindErr != nil && !apierror.Is(kindErr, apierror.ErrInvalidAccountKind) {
		return model.AccountCreated{}, recordError(span, kindErr)
	}

	b.createMu.Lock()
	defer b.createMu.Unlock()

	if b.FindByTaxID(request.TaxID) != nil {
		return model.AccountCreated{}, recordError(span, apierror.NewAPIError(apierror.ErrDuplicateAccount, "Já existe uma conta utilizando o CPF informado.", request.TaxID))
	}
	if kindErr != nil {
		return model.AccountCreated{}, recordError(span, kindErr)
	}
	kind, err := model.ParseAccountKind(request.Kind)
	if err != nil {
		return model.AccountCreated{}, recordError(span, err)
	}

	client := model.NewClient(request.Name, request.TaxID)
	number := b.lastNumber + 1
	account := model.NewAccount(client, kind, b.branchCode, number, b.clock())
	if err := b.datasource.CreateAccount(account); err != nil {
		return model.AccountCreated{}, recordError(span, err)
	}
	b.lastNumber = number

	span.SetAttributes(
		attribute.String("account.id", account.AccountID()),
		attribute.Int64("account.number", account.Number()),
		attribute.String("account.kind", kind.String()),
	)

	return model.AccountCreated{
		AccountID:  account.AccountID(),
		ClientName: client.Name(),
		Kind:       kind,
		KindLabel:  kind.Label(),
		BranchCode: account.BranchCode(),
		Number:     account.Number(),
		Message:    fmt.Sprintf("%s criada com sucesso! Bem-vindo(a), %s!", kind.Label(), client.Name()),
	}, nil
}

// FindByTaxID returns the account owned by taxID or nil. It never fails.
func (b *Bank) FindByTaxID(taxID string) *model.Account {
	account, err := b.datasource.GetAccountByTaxID(taxID)
	if err != nil {
		return nil
	}
	return account
}

// AccessAccount returns a handle on the account owned by taxID.
func (b *Bank) AccessAccount(taxID string) (*AccountHandle, error) {
	account, err := b.datasource.GetAccountByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	return &AccountHandle{bank: b, account: account}, nil
}

// GetAllAccounts retrieves all accounts ordered by number.
func (b *Bank) GetAllAccounts() ([]*model.Account, error) {
	return b.datasource.GetAllAccounts()
}

// CountAccounts returns the number of registered accounts.
func (b *Bank) CountAccounts() int {
	return b.datasource.CountAccounts()
}
