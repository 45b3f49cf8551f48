package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/obfuscate"
)

// Keys under which the stores persist their state.
const (
	keySession       = "session"
	keyUsers         = "users"
	keyCart          = "cart"
	keyNotifications = "notifications_enabled"
	keyTheme         = "theme"
)

// SessionStore owns the authentication identity and the notification-mute
// flag. Credential records are append-only; at most one session is active
// per process.
type SessionStore struct {
	repo kv.Repository
	log  logging.Logger

	mu      sync.Mutex
	current *models.Session
	enabled bool
	lastID  int64
}

func NewSessionStore(repo kv.Repository, log logging.Logger) *SessionStore {
	return &SessionStore{repo: repo, log: log.With("store", "session"), enabled: true}
}

// Restore loads the persisted session and the notification flag. A missing
// or malformed session blob leaves the session absent; startup never fails
// because of a corrupt cache.
func (s *SessionStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = true
	if data, err := s.repo.Get(ctx, keyNotifications); err != nil {
		s.log.Warn(ctx, "failed to read notification flag", "error", err)
	} else if data != nil {
		var enabled bool
		if err := json.Unmarshal(data, &enabled); err != nil {
			s.log.Warn(ctx, "corrupt notification flag, using default", "error", err)
		} else {
			s.enabled = enabled
		}
	}

	data, err := s.repo.Get(ctx, keySession)
	if err != nil {
		s.log.Warn(ctx, "failed to read session", "error", err)
		return
	}
	if data == nil {
		return
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.log.Warn(ctx, "corrupt session, staying logged out", "error", err)
		return
	}
	s.current = &session
}

// Register appends a new credential record. It fails with
// common.ErrMissingField before touching storage when any field is blank,
// and with common.ErrDuplicateIdentity when the email is already taken
// (compared on the obfuscated form). No session is created.
func (s *SessionStore) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return common.ErrMissingField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	shifted := obfuscate.Shift(email)
	for _, u := range users {
		if u.Email == shifted {
			return common.ErrDuplicateIdentity
		}
	}

	users = append(users, models.Credential{
		ID:       s.nextID(),
		Username: obfuscate.Shift(username),
		Email:    shifted,
		Password: obfuscate.Shift(password),
	})

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.repo.Set(ctx, keyUsers, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Login looks up the credential record by obfuscated email and establishes
// a session on match. It distinguishes an unknown email
// (common.ErrUserNotFound) from a wrong password (common.ErrInvalidPassword).
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)

	var match *models.Credential
	shifted := obfuscate.Shift(email)
	for i := range users {
		if users[i].Email == shifted {
			match = &users[i]
			break
		}
	}

	if match == nil {
		return common.ErrUserNotFound
	}
	if match.Password != obfuscate.Shift(password) {
		return common.ErrInvalidPassword
	}

	session := models.Session{
		ID:       match.ID,
		Username: obfuscate.Unshift(match.Username),
		Email:    obfuscate.Unshift(match.Email),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Set(ctx, keySession, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.current = &session
	return nil
}

// Logout clears the active session. It always succeeds; a failed
// persistence delete is only logged.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.repo.Delete(ctx, keySession); err != nil {
		s.log.Error(ctx, "failed to remove persisted session", "error", err)
	}
}

// ToggleNotifications flips and persists the notification flag.
func (s *SessionStore) ToggleNotifications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.enabled
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode notification flag: %w", err)
	}
	if err := s.repo.Set(ctx, keyNotifications, data); err != nil {
		return fmt.Errorf("failed to save notification flag: %w", err)
	}
	s.enabled = next
	return nil
}

// NotificationsEnabled reports whether notifications should be shown.
// The flag defaults to true when nothing is persisted.
func (s *SessionStore) NotificationsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Current returns a copy of the active session, or nil when logged out.
func (s *SessionStore) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// IsAuthenticated is the navigation-guard contract: protected views must
// redirect to login while it reports false.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// loadUsers reads the credential collection. A corrupt blob degrades to an
// empty collection. Callers must hold s.mu.
func (s *SessionStore) loadUsers(ctx context.Context) []models.Credential {
	data, err := s.repo.Get(ctx, keyUsers)
	if err != nil {
		s.log.Warn(ctx, "failed to read users", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var users []models.Credential
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn(ctx, "corrupt user collection, treating as empty", "error", err)
		return nil
	}
	return users
}

// nextID returns a creation-time based id that stays strictly increasing
// even when two registrations land in the same millisecond. Callers must
// hold s.mu.
func (s *SessionStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
