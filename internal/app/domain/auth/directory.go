package auth

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

type account struct {
	user         models.User
	passwordHash string
}

// Directory is the in-memory account store backing sign-in.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]account
	logger   *zap.Logger
}

func NewDirectory(logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{
		accounts: make(map[string]account),
		logger:   logger,
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Add registers an account. The username is case insensitive.
func (d *Directory) Add(username, password, displayName string, role navigation.Role) (*models.User, error) {
	key := normalizeUsername(username)
	if key == "" {
		return nil, fmt.Errorf("username is required: %w", models.ErrBadRequest)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %d: %w", role, models.ErrBadRequest)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     displayName,
		Email:    key + "@foresight.local",
		Role:     role,
		IsActive: true,
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.accounts[key]; exists {
		return nil, fmt.Errorf("username %q already registered: %w", key, models.ErrBadRequest)
	}
	d.accounts[key] = account{user: user, passwordHash: hash}
	return &user, nil
}

// Authenticate checks credentials and returns a copy of the user.
func (d *Directory) Authenticate(username, password string) (*models.User, error) {
	key := normalizeUsername(username)

	d.mu.RLock()
	acct, ok := d.accounts[key]
	d.mu.RUnlock()

	if !ok {
		d.logger.Debug("Unknown username", zap.String("username", key))
		return nil, models.ErrUnauthenticated
	}
	if !CheckPassword(acct.passwordHash, password) {
		d.logger.Debug("Password mismatch", zap.String("username", key))
		return nil, models.ErrUnauthenticated
	}

	user := acct.user
	return &user, nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}

// SeedDemoAccounts registers one account per role, all sharing password.
func SeedDemoAccounts(d *Directory, password string) error {
	seeds := []struct {
		username string
		name     string
		role     navigation.Role
	}{
		{"superadmin", "Super Admin User", navigation.RoleSuperAdmin},
		{"admin", "Admin User", navigation.RoleAdmin},
		{"gamemaster", "Game Master User", navigation.RoleGameMaster},
	}
	for _, s := range seeds {
		if _, err := d.Add(s.username, password, s.name, s.role); err != nil {
			return fmt.Errorf("seed %s: %w", s.username, err)
		}
	}
	d.logger.Info("Demo accounts seeded", zap.Int("count", len(seeds)))
	return nil
}
