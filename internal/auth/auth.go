// Package auth implements the permission store: user accounts, credential
// checks and the durable session identity.
package auth

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/storage"
)

// ErrUserExists is returned when creating a user with a username that is
// already taken.
var (
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when a permission update targets an
	// unknown user id.
	ErrUserNotFound = errors.New("user not found")
)

// Store is the authentication and authorization source of truth. All state
// lives in durable storage under three records: the user list, the
// credential map and the current-session user.
type Store struct {
	store  storage.Store
	logger *zap.Logger
}

// NewStore creates a permission store over the given storage backend and
// ensures the seed accounts exist.
func NewStore(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{
		store:  store,
		logger: logger,
	}

	// Materialize defaults so later reads see a consistent state even if the
	// backend started empty or corrupt.
	s.saveUsers(ctx, s.loadUsers(ctx))
	s.savePasswords(ctx, s.loadPasswords(ctx))

	return s
}

func seedUsers() []model.User {
	return []model.User{
		{
			ID:          "1",
			Username:    "admin",
			Role:        model.RoleAdmin,
			Permissions: model.AllPermissions(),
		},
		{
			ID:          "2",
			Username:    "operator",
			Role:        model.RoleOperator,
			Permissions: model.OperatorPermissions(),
		},
	}
}

func seedPasswords() map[string]string {
	return map[string]string{
		"admin":    "admin123",
		"operator": "operator123",
	}
}

func (s *Store) loadUsers(ctx context.Context) []model.User {
	data, err := s.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error("error loading users", zap.Error(err))
		}
		return seedUsers()
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Error("failed to parse stored users", zap.Error(err))
		return seedUsers()
	}
	return users
}

func (s *Store) loadPasswords(ctx context.Context) map[string]string {
	data, err := s.store.Get(ctx, storage.KeyPasswords)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error("error loading credentials", zap.Error(err))
		}
		return seedPasswords()
	}

	var passwords map[string]string
	if err := json.Unmarshal(data, &passwords); err != nil {
		s.logger.Error("failed to parse stored credentials", zap.Error(err))
		return seedPasswords()
	}
	return passwords
}

func (s *Store) saveUsers(ctx context.Context, users []model.User) {
	data, err := json.Marshal(users)
	if err != nil {
		s.logger.Error("error marshaling users", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, storage.KeyUsers, data); err != nil {
		s.logger.Error("error saving users", zap.Error(err))
	}
}

func (s *Store) savePasswords(ctx context.Context, passwords map[string]string) {
	data, err := json.Marshal(passwords)
	if err != nil {
		s.logger.Error("error marshaling credentials", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, storage.KeyPasswords, data); err != nil {
		s.logger.Error("error saving credentials", zap.Error(err))
	}
}

func (s *Store) saveSession(ctx context.Context, user model.User) {
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("error marshaling session user", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, storage.KeySession, data); err != nil {
		s.logger.Error("error saving session", zap.Error(err))
	}
}

// Login checks the credentials against the stored user list. On success the
// matched user becomes the session identity, persisted so it survives a
// restart. Credentials are compared as plain text, preserved from the
// original system.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	users := s.loadUsers(ctx)
	passwords := s.loadPasswords(ctx)

	for _, u := range users {
		if u.Username != username {
			continue
		}
		if passwords[username] != password {
			return false
		}
		s.saveSession(ctx, u)
		return true
	}
	return false
}

// Logout clears the session identity. Always succeeds.
func (s *Store) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, storage.KeySession); err != nil {
		s.logger.Error("error clearing session", zap.Error(err))
	}
}

// CurrentUser returns the session identity, or nil when no session is
// active or the stored session fails to parse.
func (s *Store) CurrentUser(ctx context.Context) *model.User {
	data, err := s.store.Get(ctx, storage.KeySession)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error("error loading session", zap.Error(err))
		}
		return nil
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Error("failed to parse stored session user", zap.Error(err))
		return nil
	}
	return &user
}

// HasPermission reports whether the active session's user holds the
// permission string. Returns false when no session is active.
func (s *Store) HasPermission(ctx context.Context, permission string) bool {
	user := s.CurrentUser(ctx)
	if user == nil {
		return false
	}
	return user.HasPermission(permission)
}

// UpdateUserPermissions replaces the user's permission set wholesale. If the
// target is the session user, the session is refreshed in place so later
// HasPermission checks reflect the change without a new login.
func (s *Store) UpdateUserPermissions(ctx context.Context, userID string, permissions []string) error {
	users := s.loadUsers(ctx)

	found := false
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Permissions = permissions
		found = true
		break
	}
	if !found {
		return ErrUserNotFound
	}

	s.saveUsers(ctx, users)

	if current := s.CurrentUser(ctx); current != nil && current.ID == userID {
		current.Permissions = permissions
		s.saveSession(ctx, *current)
	}

	return nil
}

// CreateUser registers a new account. Usernames are unique and compared
// case-sensitively; a duplicate returns ErrUserExists and leaves the store
// unchanged.
func (s *Store) CreateUser(ctx context.Context, username string, role model.Role, permissions []string, password string) (*model.User, error) {
	users := s.loadUsers(ctx)

	for _, u := range users {
		if u.Username == username {
			return nil, ErrUserExists
		}
	}

	user := model.User{
		ID:          uuid.NewString(),
		Username:    username,
		Role:        role,
		Permissions: permissions,
	}
	users = append(users, user)
	s.saveUsers(ctx, users)

	passwords := s.loadPasswords(ctx)
	passwords[username] = password
	s.savePasswords(ctx, passwords)

	return &user, nil
}

// Users returns all registered accounts.
func (s *Store) Users(ctx context.Context) []model.User {
	return s.loadUsers(ctx)
}
