package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/banco-digital/banco"
	"github.com/banco-digital/banco/internal/apierror"
	"github.com/banco-digital/banco/model"
)

const clearScreen = "\033[H\033[2J"

// Console drives a Bank through the text menus. It reads one answer per line
// and stops as soon as its input is exhausted.
type Console struct {
	bank   *banco.Bank
	in     *bufio.Scanner
	out    io.Writer
	logger *logrus.Logger
	clear  bool
	symbol string
}

type Option func(*Console)

// WithClear enables the ANSI clear sequence between screens.
func WithClear(clear bool) Option {
	return func(c *Console) {
		c.clear = clear
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

func New(bank *banco.Bank, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		bank:   bank,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logrus.StandardLogger(),
		symbol: bank.Notifier().Symbol,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the holder picks "Sair" or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.box("MENU INICIAL", "", "1. Criar conta", "2. Acessar conta", "0. Sair")
		option, err := c.readInt()
		if err != nil {
			return eof(err)
		}
		c.clearTerminal()

		switch option {
		case 1:
			err = c.createAccount(ctx)
		case 2:
			err = c.accessAccount(ctx)
		case 0:
			c.println("\n[!] Encerrando... volte sempre!")
			return nil
		default:
			c.println("\n[!] Opção inválida. Por favor, tente novamente.")
		}
		if err != nil {
			return eof(err)
		}
	}
}

func (c *Console) createAccount(ctx context.Context) error {
	for {
		c.box("ABERTURA DE NOVA CONTA", "Qual tipo de conta deseja criar?",
			"1. Conta corrente.", "2. Conta poupança.", "0. Voltar ao menu principal.")
		option, err := c.readInt()
		if err != nil {
			return err
		}
		c.clearTerminal()

		var kind model.AccountKind
		switch option {
		case 0:
			return nil
		case 1:
			kind = model.KindChecking
		case 2:
			kind = model.KindSavings
		default:
			c.println("\n[!] Opção inválida. Por favor, tente novamente.")
			continue
		}

		c.box("CRIANDO UMA "+strings.ToUpper(kind.Label()), "Insira o nome do titular:")
		name, err := c.readLine()
		if err != nil {
			return err
		}
		c.box("CRIANDO UMA "+strings.ToUpper(kind.Label()), "Insira o CPF do titular:")
		taxID, err := c.readLine()
		if err != nil {
			return err
		}
		c.clearTerminal()

		created, err := c.bank.CreateAccount(ctx, model.CreateAccount{Name: name, TaxID: taxID, Kind: kind.String()})
		if err != nil {
			c.reportError("create_account", err)
			return nil
		}
		c.printf("[!] %s\n", created.Message)
		c.printf("[!] Agência: %04d | Conta: %d\n", created.BranchCode, created.Number)
		return nil
	}
}

func (c *Console) accessAccount(ctx context.Context) error {
	c.box("ACESSAR CONTA", "Digite o CPF da conta desejada:")
	taxID, err := c.readLine()
	if err != nil {
		return err
	}
	c.clearTerminal()

	handle, err := c.bank.AccessAccount(strings.TrimSpace(taxID))
	if err != nil {
		c.reportError("access_account", err)
		return nil
	}

	c.printf("\n[!] Bem-vindo(a), %s!\n", handle.Client().Name())
	return c.accountMenu(ctx, handle)
}

func (c *Console) accountMenu(ctx context.Context, handle *banco.AccountHandle) error {
	for {
		c.box("MENU DE OPERAÇÕES BANCÁRIAS", "Tipo de conta: "+handle.Account().Kind().Label(),
			"1. Consultar saldo", "2. Depositar", "3. Sacar", "4. Transferir",
			"5. Ver extrato", "0. Desconectar da conta")
		option, err := c.readInt()
		if err != nil {
			return err
		}
		c.clearTerminal()

		switch option {
		case 1:
			c.box("SALDO DA CONTA", fmt.Sprintf("Saldo da conta: %s %s", c.symbol, handle.Balance().StringFixed(2)))
		case 2:
			err = c.runService(ctx, handle, model.ServiceDeposit, "DEPOSITAR NA CONTA", "Insira o valor a depositar:", "[!] Valor depositado com sucesso!")
		case 3:
			err = c.runService(ctx, handle, model.ServiceWithdraw, "SACAR DA CONTA", "Insira o valor a sacar:", "[!] Saque realizado com sucesso.")
		case 4:
			err = c.runService(ctx, handle, model.ServiceTransfer, "TRANSFERIR VALOR", "Digite o valor a transferir:", "[!] Transferência realizada com sucesso.")
		case 5:
			c.statement(handle)
		case 0:
			return nil
		default:
			c.println("\n[!] Opção inválida. Por favor, tente novamente.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) runService(ctx context.Context, handle *banco.AccountHandle, service model.ServiceKind, title, prompt, success string) error {
	var recipient string
	if service == model.ServiceTransfer {
		c.box(title, "Digite o CPF da conta destinatária:")
		line, err := c.readLine()
		if err != nil {
			return err
		}
		recipient = strings.TrimSpace(line)
	}

	c.box(title, prompt)
	amount, err := c.readDecimal()
	if err != nil {
		return err
	}
	c.clearTerminal()

	if err := handle.Execute(ctx, service, amount, recipient); err != nil {
		c.reportError(strings.ToLower(service.String()), err)
		return nil
	}
	c.println(success)
	return nil
}

func (c *Console) statement(handle *banco.AccountHandle) {
	c.box("EXTRATO DA CONTA", "")
	lines := handle.History()
	if len(lines) == 0 {
		c.println("[!] Nenhuma transação encontrada.")
		return
	}
	for _, line := range lines {
		c.println("• " + line)
	}
}

func (c *Console) reportError(operation string, err error) {
	c.logger.WithFields(logrus.Fields{
		"operation": operation,
		"error":     err.Error(),
	}).Log(apierror.MapErrorToLogLevel(err), "operation rejected")

	if _, ok := apierror.CodeOf(err); ok {
		c.printf("[!] ERRO: %s\n", apierror.MessageOf(err))
		return
	}
	c.printf("[!] ERRO desconhecido: %s\n", err.Error())
}

func (c *Console) readLine() (string, error) {
	c.print("> Digite: ")
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *Console) readInt() (int, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		c.println("Valor inválido. Por favor, digite apenas números.")
	}
}

// readDecimal accepts both "10.50" and "10,50".
func (c *Console) readDecimal() (decimal.Decimal, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		value, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(line), ",", "."))
		if err == nil {
			return value, nil
		}
		c.println("Valor inválido. Por favor, digite apenas números.")
	}
}

func (c *Console) box(title, subtitle string, options ...string) {
	const width = 38
	border := strings.Repeat("═", width)
	c.println("╔" + border + "╗")
	c.println("║" + center(title, width) + "║")
	if subtitle != "" {
		c.println("║" + center(subtitle, width) + "║")
	}
	if len(options) > 0 {
		c.println("╠" + border + "╣")
		for _, option := range options {
			c.println("║ " + pad(option, width-1) + "║")
		}
	}
	c.println("╚" + border + "╝")
}

func (c *Console) clearTerminal() {
	if c.clear {
		c.print(clearScreen)
	}
}

func (c *Console) print(s string)   { fmt.Fprint(c.out, s) }
func (c *Console) println(s string) { fmt.Fprintln(c.out, s) }
func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// eof turns an exhausted input into a clean exit.
func eof(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
