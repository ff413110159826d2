package model

import (
	"fmt"
	"time"
)

const LedgerTimeLayout = "02/01/2006 15:04"

// Notifier renders ledger entries into the lines shown on a statement.
type Notifier struct {
	Symbol   string
	Location *time.Location
}

func NewNotifier(symbol string, location *time.Location) Notifier {
	if location == nil {
		location = time.UTC
	}
	return Notifier{Symbol: symbol, Location: location}
}

// Format renders a single entry, e.g.
//
//	[05/03/2024 14:30] Saque -R$ 30.00 | Saldo: R$ 70.00
func (n Notifier) Format(entry Entry) string {
	location := n.Location
	if location == nil {
		location = time.UTC
	}
	stamp := fmt.Sprintf("[%s] ", entry.CreatedAt.In(location).Format(LedgerTimeLayout))
	amount := entry.Amount.StringFixed(2)
	balance := fmt.Sprintf("| Saldo: %s %s", n.Symbol, entry.BalanceAfter.StringFixed(2))

	switch entry.Kind {
	case ServiceWithdraw:
		return fmt.Sprintf("%sSaque -%s %s %s", stamp, n.Symbol, amount, balance)
	case ServiceDeposit:
		return fmt.Sprintf("%sDepósito +%s %s %s", stamp, n.Symbol, amount, balance)
	case ServiceTransfer:
		if entry.Direction == DirectionDebit {
			return fmt.Sprintf("%sTransferência Enviada para: %s (CPF: %s): -%s %s %s",
				stamp, entry.CounterpartyName, entry.CounterpartyTaxID, n.Symbol, amount, balance)
		}
		return fmt.Sprintf("%sTransferência Recebida de: %s (CPF: %s): +%s %s %s",
			stamp, entry.CounterpartyName, entry.CounterpartyTaxID, n.Symbol, amount, balance)
	}
	return "Serviço desconhecido."
}

// Lines renders entries in order.
func (n Notifier) Lines(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, n.Format(entry))
	}
	return lines
}
