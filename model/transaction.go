package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-digital/banco/internal/apierror"
)

// ServiceKind is the operation an account holder asks for.
type ServiceKind int

const (
	ServiceWithdraw ServiceKind = iota + 1
	ServiceDeposit
	ServiceTransfer
)

func (s ServiceKind) String() string {
	switch s {
	case ServiceWithdraw:
		return "SAQUE"
	case ServiceDeposit:
		return "DEPOSITO"
	case ServiceTransfer:
		return "TRANSFERENCIA"
	}
	return "DESCONHECIDO"
}

func (s ServiceKind) Label() string {
	switch s {
	case ServiceWithdraw:
		return "Saque"
	case ServiceDeposit:
		return "Depósito"
	case ServiceTransfer:
		return "Transferência"
	}
	return "Serviço desconhecido"
}

func ParseServiceKind(tag string) (ServiceKind, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "WITHDRAW", "SAQUE":
		return ServiceWithdraw, nil
	case "DEPOSIT", "DEPOSITO", "DEPÓSITO":
		return ServiceDeposit, nil
	case "TRANSFER", "TRANSFERENCIA", "TRANSFERÊNCIA":
		return ServiceTransfer, nil
	}
	return 0, apierror.NewAPIError(apierror.ErrInvalidArgument, "Serviço desconhecido.", tag)
}

type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Entry is one completed operation on an account. The ledger line shown to the
// holder is rendered from it by a Notifier.
type Entry struct {
	EntryID           string          `json:"entry_id"`
	AccountNumber     int64           `json:"account_number"`
	Kind              ServiceKind     `json:"kind"`
	Direction         Direction       `json:"direction"`
	Amount            decimal.Decimal `json:"amount"`
	BalanceAfter      decimal.Decimal `json:"balance_after"`
	CounterpartyName  string          `json:"counterparty_name,omitempty"`
	CounterpartyTaxID string          `json:"counterparty_tax_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
