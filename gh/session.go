// Package gh talks to the GitHub REST API: it reads and writes the dashboard
// configuration file with optimistic concurrency on the content SHA, and
// triggers the data-refresh workflow.
package gh

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "smon-github-session"

// TokenEnv overrides the stored token when set.
const TokenEnv = "SMON_GITHUB_TOKEN"

// Errors of the remote store, to be tested with errors.Is.
var (
	// ErrAuth is an invalid or missing credential.
	ErrAuth = errors.New("github: authentication failed")
	// ErrNotFound is a missing file or repository.
	ErrNotFound = errors.New("github: not found")
	// ErrConflict is a write with a stale content SHA: another writer won
	// the race, the caller must re-read before retrying.
	ErrConflict = errors.New("github: content changed upstream")
)

// Session holds everything needed to talk to one repository. It is created
// on login (or from the environment), replaced on every successful read, and
// must be discarded on logout.
type Session struct {
	Owner string
	Repo  string

	// APIBase lets tests point the session at a fake server. Empty means
	// https://api.github.com.
	APIBase string

	token  string
	client *http.Client
}

// NewSession builds a session from an explicit token.
func NewSession(owner, repo, token string) *Session {
	return &Session{Owner: owner, Repo: repo, token: token, client: http.DefaultClient}
}

func sessionPath() string { return filepath.Join(os.TempDir(), sessionFile) }

// SaveToken persists the token for later sessions.
func SaveToken(token string) error {
	return os.WriteFile(sessionPath(), []byte(strings.TrimSpace(token)), 0600)
}

// ClearToken forgets the stored token. Clearing an absent token is not an
// error.
func ClearToken() error {
	err := os.Remove(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadSession builds a session from the environment or the stored token.
// It fails when no credential is available.
func LoadSession(owner, repo string) (*Session, error) {
	if token := os.Getenv(TokenEnv); token != "" {
		return NewSession(owner, repo, token), nil
	}
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return nil, fmt.Errorf("no stored credential, run 'smon login' first: %w", ErrAuth)
	}
	return NewSession(owner, repo, strings.TrimSpace(string(data))), nil
}

func (s *Session) base() string {
	if s.APIBase != "" {
		return s.APIBase
	}
	return "https://api.github.com"
}

func (s *Session) httpClient() *http.Client {
	if s.client == nil {
		return http.DefaultClient
	}
	return s.client
}
