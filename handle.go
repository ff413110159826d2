package banco

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/banco-digital/banco/model"
)

// AccountHandle is what an account holder gets after accessing an account.
// Every read and write goes through the bank's per-account lock.
type AccountHandle struct {
	bank    *Bank
	account *model.Account
}

// Account returns the underlying account. Its balance is only read safely through Balance.
func (h *AccountHandle) Account() *model.Account {
	return h.account
}

// Client returns the account holder.
func (h *AccountHandle) Client() model.Client {
	return h.account.Client()
}

// Balance reads the balance under the account lock.
func (h *AccountHandle) Balance() decimal.Decimal {
	unlock := h.bank.locker.Lock(h.account.Number())
	defer unlock()
	return h.account.Balance()
}

// Execute runs a withdraw, deposit or transfer on the account.
func (h *AccountHandle) Execute(ctx context.Context, service model.ServiceKind, amount decimal.Decimal, recipientTaxID string) error {
	return h.bank.Execute(ctx, h.account, service, amount, recipientTaxID)
}

// Entries returns the structured history, oldest first.
func (h *AccountHandle) Entries() []model.Entry {
	unlock := h.bank.locker.Lock(h.account.Number())
	defer unlock()
	return h.account.Entries()
}

// History returns the formatted ledger lines, oldest first.
func (h *AccountHandle) History() []string {
	return h.bank.notifier.Lines(h.Entries())
}
