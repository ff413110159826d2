package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banco-digital/banco"
	"github.com/banco-digital/banco/config"
	"github.com/banco-digital/banco/database"
	"github.com/banco-digital/banco/internal/console"
)

func newBank(t *testing.T) *banco.Bank {
	t.Helper()
	config.MockConfig(&config.Configuration{
		ProjectName: "Banco Digital",
		Bank:        config.BankConfig{BranchCode: 1, CurrencySymbol: "R$", TimeZone: "UTC"},
		Log:         config.LogConfig{Level: "info", Format: "text"},
	})
	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	b, err := banco.NewBank(database.NewDataSource(), banco.WithClock(func() time.Time { return at }))
	require.NoError(t, err)
	return b
}

func run(t *testing.T, b *banco.Bank, script ...string) string {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	c := console.New(b, in, &out, console.WithLogger(logger))
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsoleFullSession(t *testing.T) {
	b := newBank(t)
	out := run(t, b,
		"1", "1", "Ana", "111",
		"2", "111",
		"2", "100",
		"3", "30",
		"1",
		"5",
		"0",
		"0",
	)

	assert.Contains(t, out, "[!] Conta corrente criada com sucesso! Bem-vindo(a), Ana!")
	assert.Contains(t, out, "[!] Agência: 0001 | Conta: 1")
	assert.Contains(t, out, "[!] Bem-vindo(a), Ana!")
	assert.Contains(t, out, "[!] Valor depositado com sucesso!")
	assert.Contains(t, out, "[!] Saque realizado com sucesso.")
	assert.Contains(t, out, "Saldo da conta: R$ 70.00")
	assert.Contains(t, out, "• [05/03/2024 14:30] Depósito +R$ 100.00 | Saldo: R$ 100.00")
	assert.Contains(t, out, "• [05/03/2024 14:30] Saque -R$ 30.00 | Saldo: R$ 70.00")
	assert.Contains(t, out, "[!] Encerrando... volte sempre!")
	assert.NotContains(t, out, "\033[H\033[2J")
}

func TestConsoleTransfer(t *testing.T) {
	b := newBank(t)
	out := run(t, b,
		"1", "1", "Ana", "111",
		"1", "2", "Bruno", "222",
		"2", "111",
		"2", "100,50",
		"4", "222", "20,25",
		"4", "111", "1",
		"4", "999", "1",
		"0",
		"2", "222",
		"5",
		"0",
		"0",
	)

	assert.Contains(t, out, "[!] Conta poupança criada com sucesso! Bem-vindo(a), Bruno!")
	assert.Contains(t, out, "[!] Transferência realizada com sucesso.")
	assert.Contains(t, out, "[!] ERRO: Não é permitido realizar transferências para sua própria conta.")
	assert.Contains(t, out, "[!] ERRO: Não encontramos uma conta associada a este CPF. Verifique o número e tente novamente.")
	assert.Contains(t, out, "• [05/03/2024 14:30] Transferência Recebida de: Ana (CPF: 111): +R$ 20.25 | Saldo: R$ 20.25")

	handle, err := b.AccessAccount("111")
	require.NoError(t, err)
	assert.Equal(t, "80.25", handle.Balance().StringFixed(2))
}

func TestConsoleRejectedOperations(t *testing.T) {
	b := newBank(t)
	out := run(t, b,
		"1", "1", "Ana", "111",
		"1", "2", "Outra", "111",
		"1", "1", "", "333",
		"2", "111",
		"3", "50",
		"2", "-10",
		"5",
		"0",
		"0",
	)

	assert.Contains(t, out, "[!] ERRO: Já existe uma conta utilizando o CPF informado.")
	assert.Contains(t, out, "[!] ERRO: Nome e CPF do titular são obrigatórios.")
	assert.Contains(t, out, "[!] ERRO: Saldo insuficiente.")
	assert.Contains(t, out, "[!] ERRO: O valor informado deve ser maior que zero.")
	assert.Contains(t, out, "[!] Nenhuma transação encontrada.")
	assert.Equal(t, 1, b.CountAccounts())
}

func TestConsoleInvalidInput(t *testing.T) {
	b := newBank(t)
	out := run(t, b,
		"abc",
		"7",
		"2", "999",
		"1", "9", "0",
		"0",
	)

	assert.Contains(t, out, "Valor inválido. Por favor, digite apenas números.")
	assert.Contains(t, out, "[!] Opção inválida. Por favor, tente novamente.")
	assert.Contains(t, out, "[!] ERRO: O CPF informado não corresponde a uma conta existente.")
	assert.Equal(t, 0, b.CountAccounts())
}

func TestConsoleInvalidAmountReprompts(t *testing.T) {
	b := newBank(t)
	out := run(t, b,
		"1", "1", "Ana", "111",
		"2", "111",
		"2", "dez", "10",
		"0",
		"0",
	)

	assert.Contains(t, out, "Valor inválido. Por favor, digite apenas números.")
	assert.Contains(t, out, "[!] Valor depositado com sucesso!")
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	b := newBank(t)

	var out bytes.Buffer
	c := console.New(b, strings.NewReader("1\n1\nAna"), &out)
	assert.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 0, b.CountAccounts())

	out.Reset()
	c = console.New(b, strings.NewReader(""), &out)
	assert.NoError(t, c.Run(context.Background()))
	assert.NotContains(t, out.String(), "Encerrando")
}

func TestConsoleClearsScreen(t *testing.T) {
	b := newBank(t)

	var out bytes.Buffer
	c := console.New(b, strings.NewReader("0\n"), &out, console.WithClear(true))
	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "\033[H\033[2J")
}
