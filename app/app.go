// file: app/app.go
package app

import (
	"os"

	"go-bank-ledger/common"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
)

// Run wires the layers together, seeds the bank with the fixture data,
// executes the acceptance scenarios and returns the process exit code.
func Run() int {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")

	if err := common.Validate(&config.AppConfig); err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	logger.Log.Info("Configuration loaded successfully")

	bank, err := NewSeededBank()
	if err != nil {
		common.NewAppError("seed_failed", "Could not build seeded bank", err).Report()
		return 1
	}

	failed := RunScenarios(bank, os.Stdout, config.AppConfig.Harness.Verbose)
	if failed > 0 {
		return 1
	}
	return 0
}

// SeedAccounts is the initial account snapshot the harness runs against.
func SeedAccounts() []model.Account {
	return []model.Account{
		{ID: 1234567890, Balance: 5000},
		{ID: 1234567891, Balance: 10000},
	}
}

// SeedUsernames is the fixed set of usernames eligible to open accounts.
func SeedUsernames() []string {
	return []string{"user1", "user2"}
}

// NewSeededBank builds a bank service over fresh in-memory repositories
// loaded with the fixture snapshot.
func NewSeededBank() (*service.BankService, error) {
	accountRepo, err := repository.NewAccountRepository(SeedAccounts())
	if err != nil {
		return nil, err
	}
	userRepo := repository.NewUserRepository(SeedUsernames())
	return service.NewBankService(accountRepo, userRepo), nil
}
