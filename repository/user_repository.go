package repository

import "go-bank-ledger/logger"

// IUserRepository defines the contract for registered-username lookups.
type IUserRepository interface {
	IsRegistered(username string) bool
	Usernames() []string
}

// UserRepository holds the set of usernames eligible to open an account.
// The set is fixed at construction time; no operation mutates it.
type UserRepository struct {
	order      []string
	registered map[string]struct{}
}

func NewUserRepository(usernames []string) *UserRepository {
	r := &UserRepository{
		registered: make(map[string]struct{}, len(usernames)),
	}
	for _, name := range usernames {
		if _, seen := r.registered[name]; seen {
			continue
		}
		r.order = append(r.order, name)
		r.registered[name] = struct{}{}
	}

	logger.Log.WithField("usernames", len(r.order)).Info("User repository initialized")
	return r
}

func (r *UserRepository) IsRegistered(username string) bool {
	_, ok := r.registered[username]
	return ok
}

// Usernames returns the registered usernames in their original order.
func (r *UserRepository) Usernames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
