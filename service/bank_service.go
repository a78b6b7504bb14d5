// file: service/bank_service.go

package service

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

var (
	ErrInvalidAccountNumber = errors.New("account number must be exactly 10 digits")
	ErrUnknownUser          = errors.New("username is not registered")
	ErrUnderageUser         = errors.New("account holder must be at least 18 years old")
	ErrDuplicateAccount     = errors.New("account number already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

const (
	minAccountNumber = 1_000_000_000
	maxAccountNumber = 9_999_999_999

	minHolderAge = 18
)

// BankService enforces every account-creation and balance-mutation rule
// and is the single source of truth for account state while the process
// runs. A single mutex serializes all operations; the repositories
// underneath do no locking of their own.
type BankService struct {
	mu          sync.Mutex
	accountRepo repository.IAccountRepository
	userRepo    repository.IUserRepository
}

func NewBankService(accountRepo repository.IAccountRepository, userRepo repository.IUserRepository) *BankService {
	return &BankService{
		accountRepo: accountRepo,
		userRepo:    userRepo,
	}
}

// CreateAccount opens a zero-balance account for a registered adult user.
// Checks run in a fixed order and the first failure wins: account number
// shape, username registration, holder age, then number uniqueness.
// The username is only an eligibility gate; it is not stored.
func (s *BankService) CreateAccount(username string, age int, accountNumber int64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"username":       username,
		"age":            age,
		"account_number": accountNumber,
	})
	log.Info("Create account requested")

	s.mu.Lock()
	defer s.mu.Unlock()

	if accountNumber < minAccountNumber || accountNumber > maxAccountNumber {
		return nil, ErrInvalidAccountNumber
	}
	if !s.userRepo.IsRegistered(username) {
		return nil, ErrUnknownUser
	}
	if age < minHolderAge {
		return nil, ErrUnderageUser
	}
	if s.accountRepo.Exists(accountNumber) {
		return nil, ErrDuplicateAccount
	}

	account := &model.Account{ID: accountNumber, Balance: 0}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	log.Info("Account created")
	return account, nil
}

// Deposit adds a positive amount to an existing account and returns the
// updated record. Existence is checked before the amount.
func (s *BankService) Deposit(accountID int64, amount float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount,
	})
	log.Info("Deposit requested")

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	updated, err := s.accountRepo.UpdateBalance(accountID, account.Balance+amount)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	log.WithField("new_balance", updated.Balance).Info("Deposit completed")
	return updated, nil
}

// Withdraw removes a positive amount from an existing account, bounded by
// the current balance so the balance never goes negative. Check order:
// existence, amount validity, funds.
func (s *BankService) Withdraw(accountID int64, amount float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount,
	})
	log.Info("Withdrawal requested")

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > account.Balance {
		return nil, ErrInsufficientFunds
	}

	updated, err := s.accountRepo.UpdateBalance(accountID, account.Balance-amount)
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	log.WithField("new_balance", updated.Balance).Info("Withdrawal completed")
	return updated, nil
}

// GetBalance returns the current balance of an existing account.
func (s *BankService) GetBalance(accountID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.getAccount(accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// GetAccount returns a copy of the account with the given number.
func (s *BankService) GetAccount(accountID int64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getAccount(accountID)
}

// ListAccounts returns copies of all accounts in creation order.
func (s *BankService) ListAccounts() []*model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accountRepo.GetAll()
}

// IsRegistered reports whether a username may open an account.
func (s *BankService) IsRegistered(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userRepo.IsRegistered(username)
}

// getAccount must be called with the mutex held.
func (s *BankService) getAccount(accountID int64) (*model.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	return account, nil
}

// mapRepoError translates storage-level sentinels into the service
// taxonomy so callers only ever see service errors.
func (s *BankService) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNoAccount):
		return ErrAccountNotFound
	case errors.Is(err, repository.ErrDuplicateID):
		return ErrDuplicateAccount
	default:
		return err
	}
}
