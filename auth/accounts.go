package auth

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var errAccountExists = errors.New("account already exists")

type account struct {
	Name         string
	Email        string
	PasswordHash []byte
}

// accountBook is the in-memory stand-in for a user database. Accounts live
// for the life of the process; registration writes, and rolls back its own
// write when the rest of the flow fails.
type accountBook struct {
	mu       sync.Mutex
	accounts map[string]account
}

func newAccountBook() *accountBook {
	return &accountBook{accounts: make(map[string]account)}
}

func (b *accountBook) create(name, email, password string) error {
	key := strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[key]; exists {
		return errAccountExists
	}
	b.accounts[key] = account{Name: name, Email: email, PasswordHash: hash}
	return nil
}

func (b *accountBook) remove(email string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.accounts, strings.ToLower(email))
}
