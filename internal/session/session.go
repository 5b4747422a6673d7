// Package session owns the persisted authentication state: the bearer
// token and the id of the logged-in user. There is exactly one owner of
// this state; the transport reads the token through it instead of
// looking it up ambiently.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type data struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Session is the persisted login state. Safe for concurrent reads from
// the transport while the CLI mutates it.
type Session struct {
	mu   sync.RWMutex
	path string
	data data
}

// DefaultPath places the session file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "resumecli", "session.json"), nil
}

// Load reads the session file if it exists; a missing file yields an
// empty (logged-out) session bound to the same path.
func Load(path string) (*Session, error) {
	s := &Session{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt session file is treated as logged out rather than
		// blocking the app; the next login rewrites it.
		s.data = data{}
	}
	return s, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.UserID
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Email
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set stores new credentials and persists them.
func (s *Session) Set(token, userID, email string) error {
	s.mu.Lock()
	s.data = data{Token: token, UserID: userID, Email: email}
	s.mu.Unlock()
	return s.save()
}

// Clear wipes the state and removes the session file (logout).
func (s *Session) Clear() error {
	s.mu.Lock()
	s.data = data{}
	s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Session) save() error {
	s.mu.RLock()
	raw, err := json.Marshal(s.data)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ExpiresAt reports the token's expiry claim, when present. The claim
// is read without signature verification; only the server can verify
// the token, the client just uses the timestamp for status display.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the stored token has a past expiry claim.
// Tokens without a readable claim are assumed live; an actually dead
// token simply fails the next request with an auth error.
func (s *Session) Expired() bool {
	exp, ok := s.ExpiresAt()
	if !ok {
		return false
	}
	return time.Now().After(exp)
}
