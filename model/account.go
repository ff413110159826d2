package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banco-digital/banco/internal/apierror"
)

type AccountKind int

const (
	KindChecking AccountKind = iota + 1
	KindSavings
)

// KindRules holds the balance rules attached to an account kind.
type KindRules struct {
	AllowOverdraft bool `json:"allow_overdraft"`
}

var kindRules = map[AccountKind]KindRules{
	KindChecking: {AllowOverdraft: false},
	KindSavings:  {AllowOverdraft: false},
}

func (k AccountKind) String() string {
	switch k {
	case KindChecking:
		return "CHECKING"
	case KindSavings:
		return "SAVINGS"
	}
	return "UNKNOWN"
}

// Label is the description shown to the account holder.
func (k AccountKind) Label() string {
	switch k {
	case KindChecking:
		return "Conta corrente"
	case KindSavings:
		return "Conta poupança"
	}
	return "Tipo de conta desconhecido"
}

func (k AccountKind) Valid() bool {
	_, ok := kindRules[k]
	return ok
}

func (k AccountKind) Rules() KindRules {
	return kindRules[k]
}

// ParseAccountKind accepts the English and Portuguese tags, case-insensitive.
func ParseAccountKind(tag string) (AccountKind, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "CHECKING", "CORRENTE":
		return KindChecking, nil
	case "SAVINGS", "POUPANCA", "POUPANÇA":
		return KindSavings, nil
	}
	return 0, apierror.NewAPIError(apierror.ErrInvalidAccountKind, "Falha ao criar conta: Tipo de conta inválido.", tag)
}

// Account is a single bank account. It is not safe for concurrent use on its
// own; callers serialize access per account number.
type Account struct {
	accountID  string
	branchCode int
	number     int64
	client     Client
	kind       AccountKind
	balance    decimal.Decimal
	createdAt  time.Time
	entries    []Entry
}

func NewAccount(client Client, kind AccountKind, branchCode int, number int64, createdAt time.Time) *Account {
	return &Account{
		accountID:  GenerateUUIDWithSuffix("acc"),
		branchCode: branchCode,
		number:     number,
		client:     client,
		kind:       kind,
		balance:    decimal.Zero,
		createdAt:  createdAt,
	}
}

func (a *Account) AccountID() string        { return a.accountID }
func (a *Account) BranchCode() int          { return a.branchCode }
func (a *Account) Number() int64            { return a.number }
func (a *Account) Client() Client           { return a.client }
func (a *Account) Kind() AccountKind        { return a.kind }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) CreatedAt() time.Time     { return a.createdAt }

// Entries returns a copy of the account's ledger entries, oldest first.
func (a *Account) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Withdraw debits amount and records a withdrawal entry.
func (a *Account) Withdraw(amount decimal.Decimal, at time.Time) error {
	if err := EnsurePositive(amount); err != nil {
		return err
	}
	if err := canProcessTransaction(amount, a); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	a.record(Entry{
		Kind:         ServiceWithdraw,
		Direction:    DirectionDebit,
		Amount:       amount,
		BalanceAfter: a.balance,
		CreatedAt:    at,
	})
	return nil
}

// Deposit credits amount and records a deposit entry.
func (a *Account) Deposit(amount decimal.Decimal, at time.Time) error {
	if err := EnsurePositive(amount); err != nil {
		return err
	}

	a.balance = a.balance.Add(amount)
	a.record(Entry{
		Kind:         ServiceDeposit,
		Direction:    DirectionCredit,
		Amount:       amount,
		BalanceAfter: a.balance,
		CreatedAt:    at,
	})
	return nil
}

func (a *Account) record(entry Entry) {
	entry.EntryID = GenerateUUIDWithSuffix("txn")
	entry.AccountNumber = a.number
	a.entries = append(a.entries, entry)
}

// AccountCreated describes a freshly opened account.
type AccountCreated struct {
	AccountID  string      `json:"account_id"`
	ClientName string      `json:"client_name"`
	Kind       AccountKind `json:"kind"`
	KindLabel  string      `json:"kind_label"`
	BranchCode int         `json:"branch_code"`
	Number     int64       `json:"number"`
	Message    string      `json:"message"`
}
