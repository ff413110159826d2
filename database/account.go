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

package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/banco-digital/banco/internal/apierror"
	"github.com/banco-digital/banco/model"
)

// Datasource keeps accounts in process memory. Nothing survives a restart.
type Datasource struct {
	mu       sync.RWMutex
	byTaxID  map[string]*model.Account
	byNumber map[int64]*model.Account
}

func NewDataSource() IDataSource {
	return &Datasource{
		byTaxID:  make(map[string]*model.Account),
		byNumber: make(map[int64]*model.Account),
	}
}

// CreateAccount stores account under its holder's tax-id.
func (d *Datasource) CreateAccount(account *model.Account) error {
	taxID := account.Client().TaxID()

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byTaxID[taxID]; ok {
		return apierror.NewAPIError(apierror.ErrDuplicateAccount, "Já existe uma conta utilizando o CPF informado.", taxID)
	}
	if _, ok := d.byNumber[account.Number()]; ok {
		return apierror.NewAPIError(apierror.ErrDuplicateAccount, fmt.Sprintf("Número de conta %d já utilizado.", account.Number()), account.Number())
	}

	d.byTaxID[taxID] = account
	d.byNumber[account.Number()] = account
	return nil
}

// GetAccountByTaxID retrieves the account owned by taxID.
func (d *Datasource) GetAccountByTaxID(taxID string) (*model.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.byTaxID[taxID]
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrAccountNotFound, "O CPF informado não corresponde a uma conta existente.", taxID)
	}
	return account, nil
}

// GetAccountByNumber retrieves an account by its number.
func (d *Datasource) GetAccountByNumber(number int64) (*model.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.byNumber[number]
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrAccountNotFound, fmt.Sprintf("Conta %d não encontrada.", number), number)
	}
	return account, nil
}

// GetAllAccounts retrieves all accounts ordered by number.
func (d *Datasource) GetAllAccounts() ([]*model.Account, error) {
	d.mu.RLock()
	accounts := make([]*model.Account, 0, len(d.byNumber))
	for _, account := range d.byNumber {
		accounts = append(accounts, account)
	}
	d.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number() < accounts[j].Number()
	})
	return accounts, nil
}

func (d *Datasource) CountAccounts() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byTaxID)
}
