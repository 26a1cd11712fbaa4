// Package credentials persists the session cookie for the terminal client.
//
// The cookie is opaque: it is stored and forwarded verbatim and never
// decoded. The file is owner-only (0600) inside an owner-only directory.
// GO_TODO_SESSION overrides the file for scripted use.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// EnvSession overrides the stored cookie when set.
const EnvSession = "GO_TODO_SESSION"

const (
	dirName  = "go-todo"
	fileName = "credentials.json"
)

// ErrEmptyCookie is returned by Save for a blank cookie value.
var ErrEmptyCookie = errors.New("empty session cookie")

// Source says where a cookie was read from.
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

// Credentials is the stored session.
type Credentials struct {
	Cookie  string    `json:"session_cookie"`
	Source  Source    `json:"-"`
	SavedAt time.Time `json:"saved_at"`
}

// Store reads and writes the credentials file.
type Store struct {
	path       string
	cookieName string
	getenv     func(string) string
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithGetenv replaces os.Getenv.
func WithGetenv(getenv func(string) string) Option {
	return func(s *Store) {
		s.getenv = getenv
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// DefaultPath returns credentials.json under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// NewStore creates a Store for path. An empty path uses DefaultPath.
// cookieName is stripped when a pasted value includes it ("name=value").
func NewStore(path, cookieName string, opts ...Option) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	s := &Store{
		path:       path,
		cookieName: cookieName,
		getenv:     os.Getenv,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the credentials file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored session, or nil when there is none.
func (s *Store) Load() (*Credentials, error) {
	if env := s.normalize(s.getenv(EnvSession)); env != "" {
		return &Credentials{Cookie: env, Source: SourceEnv}, nil
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	c.Cookie = s.normalize(c.Cookie)
	if c.Cookie == "" {
		return nil, nil
	}
	c.Source = SourceFile
	return &c, nil
}

// Save writes cookie to the credentials file, replacing any previous one.
func (s *Store) Save(cookie string) error {
	cookie = s.normalize(cookie)
	if cookie == "" {
		return ErrEmptyCookie
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	b, err := json.MarshalIndent(Credentials{Cookie: cookie, SavedAt: s.now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Clear removes the credentials file. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// normalize trims whitespace and a leading "name=" copied from a browser.
func (s *Store) normalize(v string) string {
	v = strings.TrimSpace(v)
	if s.cookieName != "" {
		v = strings.TrimPrefix(v, s.cookieName+"=")
	}
	return strings.TrimSpace(v)
}
