package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"bankdemo/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=runner.go -destination=account_mock.go -package=scenario

type Account interface {
	Deposit(amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(amount decimal.Decimal) (decimal.Decimal, error)
	CheckBalance() core.Balance
}

type Opener func(owner string, initialBalance decimal.Decimal) (Account, error)

// CoreOpener opens an in-memory core.Account.
func CoreOpener(owner string, initialBalance decimal.Decimal) (Account, error) {
	account, err := core.NewAccount(owner, initialBalance)
	if err != nil {
		return nil, err
	}

	return account, nil
}

type Result struct {
	Opened  bool
	Balance core.Balance
	Err     error
}

type Runner struct {
	open   Opener
	out    io.Writer
	logger core.Logger
}

func NewRunner(open Opener, out io.Writer, logger core.Logger) Runner {
	return Runner{
		open:   open,
		out:    out,
		logger: logger,
	}
}

// Run executes the script, stopping at the first failing step. Failures are
// reported, never returned: the final balance is printed whenever an account
// was opened.
func (r Runner) Run(ctx context.Context, script Script) Result {
	account, err := r.transact(ctx, script)

	result := Result{Err: err}
	if account == nil {
		return result
	}

	balance := account.CheckBalance()
	fmt.Fprintf(r.out, "%s's Balance: %s\n", balance.Owner, core.FormatAmount(balance.Amount))

	result.Opened = true
	result.Balance = balance
	return result
}

func (r Runner) transact(ctx context.Context, script Script) (account Account, err error) {
	defer fmt.Fprintln(r.out, "Transaction process completed")

	account, err = r.execute(ctx, script)
	if err != nil {
		r.report(ctx, err)
	}

	return account, err
}

func (r Runner) execute(ctx context.Context, script Script) (Account, error) {
	account, err := r.open(script.Owner, script.InitialBalance)
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "Account opened", "owner", script.Owner, "balance", core.FormatAmount(script.InitialBalance))
	fmt.Fprintf(r.out, "Opened: %s | Balance: %s\n", script.Owner, core.FormatAmount(script.InitialBalance))

	for i, step := range script.Steps {
		if err = r.apply(ctx, account, step); err != nil {
			r.logger.InfoContext(ctx, "Step failed", "step", i+1, "action", step.Action)
			return account, err
		}
	}

	return account, nil
}

func (r Runner) apply(ctx context.Context, account Account, step Step) error {
	var (
		balance decimal.Decimal
		err     error
		verb    string
	)

	switch step.Action {
	case ActionDeposit:
		balance, err = account.Deposit(step.Amount)
		verb = "Deposited"
	case ActionWithdraw:
		balance, err = account.Withdraw(step.Amount)
		verb = "Withdrawn"
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Step applied", "action", step.Action, "amount", core.FormatAmount(step.Amount), "balance", core.FormatAmount(balance))
	fmt.Fprintf(r.out, "%s: %s | New Balance: %s\n", verb, core.FormatAmount(step.Amount), core.FormatAmount(balance))

	return nil
}

func (r Runner) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInsufficientFunds):
		r.logger.WarnContext(ctx, "Insufficient funds", "error", err)
		fmt.Fprintf(r.out, "Insufficient funds caught: %s\n", err)
	case errors.Is(err, core.ErrInvalidAmount):
		r.logger.WarnContext(ctx, "Invalid amount", "error", err)
		fmt.Fprintf(r.out, "Invalid amount caught: %s\n", err)
	default:
		r.logger.ErrorContext(ctx, "Unexpected error", "error", err)
		fmt.Fprintf(r.out, "Unexpected error: %s\n", err)
	}
}
