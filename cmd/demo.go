package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/banco-digital/banco"
	"github.com/banco-digital/banco/model"
)

type demoStep struct {
	taxID     string
	service   model.ServiceKind
	amount    string
	recipient string
}

var demoSteps = []demoStep{
	{taxID: "111", service: model.ServiceDeposit, amount: "100"},
	{taxID: "111", service: model.ServiceWithdraw, amount: "30"},
	{taxID: "111", service: model.ServiceTransfer, amount: "20", recipient: "222"},
}

func demoCommands(b *bancoInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "open two accounts, move money between them and print both statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), b.bank, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runDemo(ctx context.Context, bank *banco.Bank, out io.Writer) error {
	holders := []model.CreateAccount{
		{Name: "Ana", TaxID: "111", Kind: model.KindChecking.String()},
		{Name: "Bruno", TaxID: "222", Kind: model.KindChecking.String()},
	}
	for _, holder := range holders {
		created, err := bank.CreateAccount(ctx, holder)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[!] %s\n", created.Message)
	}

	for _, step := range demoSteps {
		handle, err := bank.AccessAccount(step.taxID)
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(step.amount)
		if err != nil {
			return err
		}
		if err := handle.Execute(ctx, step.service, amount, step.recipient); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"account": handle.Account().Number(),
			"service": step.service.String(),
			"amount":  step.amount,
		}).Debug("demo step applied")
	}

	accounts, err := bank.GetAllAccounts()
	if err != nil {
		return err
	}
	for _, account := range accounts {
		handle, err := bank.AccessAccount(account.Client().TaxID())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nExtrato de %s (conta %d) | Saldo: %s %s\n",
			account.Client().Name(), account.Number(), bank.Notifier().Symbol, handle.Balance().StringFixed(2))
		for _, line := range handle.History() {
			fmt.Fprintf(out, "• %s\n", line)
		}
	}
	return nil
}
