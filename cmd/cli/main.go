package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const usage = `Usage: ledger-cli <command> [arguments]
Commands:
  open <account> [balance]
  deposit <account> <amount>
  withdraw <account> <amount>
  transfer <from> <to> <amount>
  statement <account>
  accounts`

var (
	errUsage = errors.New("invalid arguments")

	okColor    = color.New(color.FgGreen)
	errColor   = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	cfg, err := config.Load(".env")
	if err != nil {
		errColor.Fprintln(os.Stderr, "Failed to load configuration:", err) //nolint:errcheck
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		errColor.Fprintln(os.Stderr, "Failed to initialize:", err) //nolint:errcheck
		os.Exit(1)
	}
	a := app.New(deps, cfg)
	err = runCommand(context.Background(), a, os.Stdout, os.Args[1:])
	_ = a.Close()
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
			os.Exit(2)
		}
		errColor.Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, a *app.App, out io.Writer, args []string) error {
	svc := a.LedgerService
	switch args[0] {
	case "open":
		if len(args) < 2 || len(args) > 3 {
			return errUsage
		}
		balance := decimal.Zero
		if len(args) == 3 {
			b, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			balance = b
		}
		accounts, err := a.Deps.Uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := accounts.Create(ctx, account.Account{Number: args[1], Balance: balance}); err != nil {
			return err
		}
		okColor.Fprintf(out, "Opened account %s with balance %s\n", args[1], balance) //nolint:errcheck
	case "deposit":
		if len(args) != 3 {
			return errUsage
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		if err := svc.Deposit(ctx, args[1], amount); err != nil {
			return err
		}
		okColor.Fprintf(out, "Deposited %s to account %s\n", amount, args[1]) //nolint:errcheck
	case "withdraw":
		if len(args) != 3 {
			return errUsage
		}
		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		acct, err := svc.Withdraw(ctx, args[1], amount)
		if err != nil {
			return err
		}
		okColor.Fprintf(out, "Withdrew %s from account %s. New balance: %s\n", amount, acct.Number, acct.Balance) //nolint:errcheck
	case "transfer":
		if len(args) != 4 {
			return errUsage
		}
		amount, err := parseAmount(args[3])
		if err != nil {
			return err
		}
		if err := svc.Transfer(ctx, args[1], args[2], amount); err != nil {
			return err
		}
		okColor.Fprintf(out, "Transferred %s from %s to %s\n", amount, args[1], args[2]) //nolint:errcheck
	case "statement":
		if len(args) != 2 {
			return errUsage
		}
		entries, err := svc.GetStatement(ctx, args[1])
		if err != nil {
			return err
		}
		labelColor.Fprintf(out, "%-25s %-32s %14s %14s\n", "DATE", "DESCRIPTION", "AMOUNT", "BALANCE") //nolint:errcheck
		for _, e := range entries {
			fmt.Fprintf(out, "%-25s %-32s %14s %14s\n",
				e.Timestamp.Format("2006-01-02T15:04:05Z07:00"), e.Description, e.Amount, e.ResultingBalance)
		}
	case "accounts":
		if len(args) != 1 {
			return errUsage
		}
		accounts, err := svc.GetAccounts(ctx)
		if err != nil {
			return err
		}
		labelColor.Fprintf(out, "%-20s %14s\n", "ACCOUNT", "BALANCE") //nolint:errcheck
		for _, acct := range accounts {
			fmt.Fprintf(out, "%-20s %14s\n", acct.Number, acct.Balance)
		}
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
