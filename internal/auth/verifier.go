package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// Verifier checks a credential pair and returns the matching user.
// Implementations must be safe for concurrent use.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}

// Account seeds a StaticVerifier with one login.
type Account struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// DefaultAccounts returns the built-in logins used when no account store is
// configured.
func DefaultAccounts() []Account {
	return []Account{
		{
			ID:       "admin-1",
			Name:     "Store Admin",
			Email:    "admin@furnworld.com",
			Password: "admin123",
			Role:     domain.RoleAdmin,
		},
	}
}

type staticAccount struct {
	user domain.User
	hash []byte
}

// StaticVerifier verifies credentials against a fixed account list. Plaintext
// passwords are hashed at construction and never retained.
type StaticVerifier struct {
	accounts map[string]staticAccount
}

// NewStaticVerifier builds a verifier from the given accounts.
func NewStaticVerifier(accounts []Account) (*StaticVerifier, error) {
	byEmail := make(map[string]staticAccount, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		byEmail[normalizeEmail(a.Email)] = staticAccount{
			user: domain.User{
				ID:    a.ID,
				Name:  a.Name,
				Email: a.Email,
				Role:  a.Role,
			},
			hash: hash,
		}
	}
	return &StaticVerifier{accounts: byEmail}, nil
}

// Verify checks the credential pair. The same error comes back for an
// unknown email and a wrong password, so callers cannot probe which emails
// have accounts.
func (v *StaticVerifier) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	account, ok := v.accounts[normalizeEmail(email)]
	if !ok {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword(account.hash, []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	user := account.user
	return &user, nil
}

// dummyHash is a bcrypt hash of an unguessable string, compared against when
// the email is unknown.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("storefront-dummy-credential"), bcryptCost)
	return h
}()

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
