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
	"github.com/banco-digital/banco/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	account // Interface for account-related operations
}

// account defines methods for handling accounts.
type account interface {
	CreateAccount(account *model.Account) error              // Stores a new account, rejecting a taken tax-id
	GetAccountByTaxID(taxID string) (*model.Account, error)  // Retrieves an account by its holder's tax-id
	GetAccountByNumber(number int64) (*model.Account, error) // Retrieves an account by its number
	GetAllAccounts() ([]*model.Account, error)               // Retrieves all accounts ordered by number
	CountAccounts() int                                      // Number of stored accounts
}
