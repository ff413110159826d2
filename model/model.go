package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/banco-digital/banco/internal/apierror"
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix,
// e.g. acc_2f1c... for accounts and txn_... for ledger entries.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// EnsurePositive rejects amounts that are zero or negative. It has no side effect.
func EnsurePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apierror.NewAPIError(apierror.ErrInvalidAmount, "O valor informado deve ser maior que zero.", amount.String())
	}
	return nil
}

// canProcessTransaction checks if source can be debited by amount.
func canProcessTransaction(amount decimal.Decimal, source *Account) error {
	if source.kind.Rules().AllowOverdraft {
		return nil
	}
	if amount.GreaterThan(source.balance) {
		return apierror.NewAPIError(apierror.ErrInsufficientFunds, "Saldo insuficiente.", map[string]string{
			"balance": source.balance.String(),
			"amount":  amount.String(),
		})
	}
	return nil
}

// ApplyTransfer moves amount from source to destination and records the
// paired entries. Nothing is changed when any check fails: the credit leg and
// both entries only happen after the debit is known to succeed.
func ApplyTransfer(source, destination *Account, amount decimal.Decimal, at time.Time) error {
	if source == destination || source.client.TaxID() == destination.client.TaxID() {
		return apierror.NewAPIError(apierror.ErrInvalidArgument, "Não é permitido realizar transferências para sua própria conta.", source.client.TaxID())
	}
	if err := EnsurePositive(amount); err != nil {
		return err
	}
	if err := canProcessTransaction(amount, source); err != nil {
		return err
	}

	source.balance = source.balance.Sub(amount)
	destination.balance = destination.balance.Add(amount)

	source.record(Entry{
		Kind:              ServiceTransfer,
		Direction:         DirectionDebit,
		Amount:            amount,
		BalanceAfter:      source.balance,
		CounterpartyName:  destination.client.Name(),
		CounterpartyTaxID: destination.client.TaxID(),
		CreatedAt:         at,
	})
	destination.record(Entry{
		Kind:              ServiceTransfer,
		Direction:         DirectionCredit,
		Amount:            amount,
		BalanceAfter:      destination.balance,
		CounterpartyName:  source.client.Name(),
		CounterpartyTaxID: source.client.TaxID(),
		CreatedAt:         at,
	})
	return nil
}
