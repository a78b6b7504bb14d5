package repository

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
)

var (
	// ErrNoAccount is returned by lookups when the account number has no
	// matching entry. The service layer maps it to its own taxonomy.
	ErrNoAccount = errors.New("no account with that number")

	// ErrDuplicateID is returned by Create when the account number is
	// already taken.
	ErrDuplicateID = errors.New("account number already taken")
)

// IAccountRepository defines the contract for account storage operations.
type IAccountRepository interface {
	Create(account *model.Account) error
	GetByID(id int64) (*model.Account, error)
	GetAll() []*model.Account
	UpdateBalance(id int64, newBalance float64) (*model.Account, error)
	Exists(id int64) bool
}

// AccountRepository implements IAccountRepository with an in-memory,
// insertion-ordered collection. It performs no locking of its own; the
// owning service serializes access.
type AccountRepository struct {
	accounts []*model.Account
	byID     map[int64]*model.Account
}

// NewAccountRepository builds a repository from an initial snapshot of
// accounts. Every seed account must satisfy the ID and balance
// invariants, and account numbers must be unique.
func NewAccountRepository(seed []model.Account) (*AccountRepository, error) {
	r := &AccountRepository{
		byID: make(map[int64]*model.Account, len(seed)),
	}

	for _, acc := range seed {
		if err := common.Validate(&acc); err != nil {
			return nil, fmt.Errorf("invalid seed account %d: %w", acc.ID, err)
		}
		if _, taken := r.byID[acc.ID]; taken {
			return nil, fmt.Errorf("seed account %d: %w", acc.ID, ErrDuplicateID)
		}
		cp := acc
		r.accounts = append(r.accounts, &cp)
		r.byID[cp.ID] = &cp
	}

	logger.Log.WithField("accounts", len(r.accounts)).Info("Account repository initialized")
	return r, nil
}

// Create appends a new account to the collection.
func (r *AccountRepository) Create(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"balance":    account.Balance,
	})

	if _, taken := r.byID[account.ID]; taken {
		log.WithError(ErrDuplicateID).Error("Failed to create account")
		return ErrDuplicateID
	}

	cp := *account
	r.accounts = append(r.accounts, &cp)
	r.byID[cp.ID] = &cp

	log.Info("Account created in store")
	return nil
}

// GetByID returns a copy of the account with the given number, so callers
// cannot mutate stored state directly.
func (r *AccountRepository) GetByID(id int64) (*model.Account, error) {
	acc, ok := r.byID[id]
	if !ok {
		return nil, ErrNoAccount
	}
	cp := *acc
	return &cp, nil
}

// GetAll returns copies of every account in insertion order.
func (r *AccountRepository) GetAll() []*model.Account {
	out := make([]*model.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		cp := *acc
		out = append(out, &cp)
	}
	return out
}

// UpdateBalance overwrites the balance of an existing account and
// returns a copy of the updated record.
func (r *AccountRepository) UpdateBalance(id int64, newBalance float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  id,
		"new_balance": newBalance,
	})

	acc, ok := r.byID[id]
	if !ok {
		log.WithError(ErrNoAccount).Error("Failed to update account balance")
		return nil, ErrNoAccount
	}

	acc.Balance = newBalance
	log.Debug("Account balance updated")

	cp := *acc
	return &cp, nil
}

// Exists reports whether an account with the given number is present.
func (r *AccountRepository) Exists(id int64) bool {
	_, ok := r.byID[id]
	return ok
}
