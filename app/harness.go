package app

import (
	"errors"
	"fmt"
	"io"

	"go-bank-ledger/common"
	"go-bank-ledger/service"
)

// scenario is a single named check. run returns nil when the observed
// behavior matches the expectation. Scenarios execute in order against
// one shared bank, so later ones see the state earlier ones produced.
type scenario struct {
	name string
	run  func(b *service.BankService) error
}

// RunScenarios executes the acceptance scenarios against the given bank,
// writes one PASS/FAIL line per scenario plus a summary to out, and
// returns the number of failures. When verbose is false only failures
// and the summary are printed.
func RunScenarios(bank *service.BankService, out io.Writer, verbose bool) int {
	failed := 0
	scenarios := Scenarios()

	for _, sc := range scenarios {
		if err := sc.run(bank); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", sc.name, err)
			common.NewAppError("scenario_failed", sc.name, err).Report()
			continue
		}
		if verbose {
			fmt.Fprintf(out, "PASS %s\n", sc.name)
		}
	}

	fmt.Fprintf(out, "%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	return failed
}

// Scenarios returns the ordered acceptance checks for a freshly seeded
// bank: accounts 1234567890 (5000) and 1234567891 (10000), registered
// usernames user1 and user2.
func Scenarios() []scenario {
	return []scenario{
		{
			name: "create account for registered adult",
			run: func(b *service.BankService) error {
				account, err := b.CreateAccount("user1", 20, 1234567892)
				if err != nil {
					return fmt.Errorf("expected success, got %s", codeFor(err))
				}
				if account.ID != 1234567892 || account.Balance != 0 {
					return fmt.Errorf("got account %d with balance %v, want 1234567892 with balance 0", account.ID, account.Balance)
				}
				return nil
			},
		},
		{
			name: "reject reused account number",
			run: func(b *service.BankService) error {
				_, err := b.CreateAccount("user1", 20, 1234567892)
				return expectDomainErr(err, service.ErrDuplicateAccount)
			},
		},
		{
			name: "reject underage holder",
			run: func(b *service.BankService) error {
				_, err := b.CreateAccount("user1", 17, 1234567899)
				return expectDomainErr(err, service.ErrUnderageUser)
			},
		},
		{
			name: "reject unregistered username",
			run: func(b *service.BankService) error {
				_, err := b.CreateAccount("user3", 20, 1234567888)
				return expectDomainErr(err, service.ErrUnknownUser)
			},
		},
		{
			name: "reject malformed account number",
			run: func(b *service.BankService) error {
				_, err := b.CreateAccount("user1", 20, 123)
				return expectDomainErr(err, service.ErrInvalidAccountNumber)
			},
		},
		{
			name: "deposit increases balance",
			run: func(b *service.BankService) error {
				account, err := b.Deposit(1234567890, 1000)
				if err != nil {
					return fmt.Errorf("expected success, got %s", codeFor(err))
				}
				if account.Balance != 6000 {
					return fmt.Errorf("got balance %v, want 6000", account.Balance)
				}
				return nil
			},
		},
		{
			name: "reject non-positive deposit",
			run: func(b *service.BankService) error {
				_, err := b.Deposit(1234567890, -100)
				if err := expectDomainErr(err, service.ErrInvalidAmount); err != nil {
					return err
				}
				return expectBalance(b, 1234567890, 6000)
			},
		},
		{
			name: "withdraw decreases balance",
			run: func(b *service.BankService) error {
				account, err := b.Withdraw(1234567890, 1000)
				if err != nil {
					return fmt.Errorf("expected success, got %s", codeFor(err))
				}
				if account.Balance != 5000 {
					return fmt.Errorf("got balance %v, want 5000", account.Balance)
				}
				return nil
			},
		},
		{
			name: "reject overdraft and keep balance",
			run: func(b *service.BankService) error {
				_, err := b.Withdraw(1234567890, 10000)
				if err := expectDomainErr(err, service.ErrInsufficientFunds); err != nil {
					return err
				}
				return expectBalance(b, 1234567890, 5000)
			},
		},
		{
			name: "balance lookup of unknown account",
			run: func(b *service.BankService) error {
				_, err := b.GetBalance(9999999999)
				return expectDomainErr(err, service.ErrAccountNotFound)
			},
		},
		{
			name: "deposit to unknown account",
			run: func(b *service.BankService) error {
				_, err := b.Deposit(9999999999, 100)
				return expectDomainErr(err, service.ErrAccountNotFound)
			},
		},
		{
			name: "accounts keep creation order",
			run: func(b *service.BankService) error {
				want := []int64{1234567890, 1234567891, 1234567892}
				accounts := b.ListAccounts()
				if len(accounts) != len(want) {
					return fmt.Errorf("got %d accounts, want %d", len(accounts), len(want))
				}
				for i, acc := range accounts {
					if acc.ID != want[i] {
						return fmt.Errorf("account %d is %d, want %d", i, acc.ID, want[i])
					}
				}
				return nil
			},
		},
	}
}

func expectDomainErr(got, want error) error {
	if got == nil {
		return fmt.Errorf("expected %s, got success", codeFor(want))
	}
	if !errors.Is(got, want) {
		return fmt.Errorf("expected %s, got %s", codeFor(want), codeFor(got))
	}
	return nil
}

func expectBalance(b *service.BankService, accountID int64, want float64) error {
	balance, err := b.GetBalance(accountID)
	if err != nil {
		return fmt.Errorf("balance lookup failed with %s", codeFor(err))
	}
	if balance != want {
		return fmt.Errorf("balance is %v, want %v", balance, want)
	}
	return nil
}

// codeFor maps service errors to the stable codes used in harness output
// and logs, the same way the error taxonomy is reported to callers.
func codeFor(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidAccountNumber):
		return "invalid_account_number"
	case errors.Is(err, service.ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, service.ErrUnderageUser):
		return "underage_user"
	case errors.Is(err, service.ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, service.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, service.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, service.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "internal_error"
	}
}
