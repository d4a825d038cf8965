package gh

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteFile is the decoded content of a repository file together with its
// concurrency token. The SHA is opaque: it is only ever handed back to
// PutFile unchanged.
type RemoteFile struct {
	Path    string
	SHA     string
	Content []byte
}

// GetFile reads a repository file at its default branch head.
func (s *Session) GetFile(ctx context.Context, path string) (*RemoteFile, error) {
	addr := fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.base(), s.Owner, s.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	s.authorize(req)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	defer resp.Body.Close()
	if err := statusError(resp); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}

	var payload struct {
		SHA     string `json:"sha"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("cannot decode contents of %q: %w", path, err)
	}
	// the contents API wraps base64 at 60 columns
	content, err := base64.StdEncoding.DecodeString(stripNewlines(payload.Content))
	if err != nil {
		return nil, fmt.Errorf("cannot decode contents of %q: %w", path, err)
	}
	return &RemoteFile{Path: path, SHA: payload.SHA, Content: content}, nil
}

// PutFile writes a repository file, conditioned on sha being the current
// content SHA. On success it returns the new SHA; the old one is dead either
// way, after a conflict the caller must re-read to obtain a fresh one.
func (s *Session) PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error) {
	body, err := json.Marshal(struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	})
	if err != nil {
		return "", err
	}

	addr := fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.base(), s.Owner, s.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, addr, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	s.authorize(req)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot write %q: %w", path, err)
	}
	defer resp.Body.Close()
	if err := statusError(resp); err != nil {
		return "", fmt.Errorf("cannot write %q: %w", path, err)
	}

	var payload struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("cannot decode write response for %q: %w", path, err)
	}
	return payload.Content.SHA, nil
}

// Validate checks the credential by reading the configuration path without
// keeping the result.
func (s *Session) Validate(ctx context.Context, path string) error {
	_, err := s.GetFile(ctx, path)
	return err
}

func (s *Session) authorize(req *http.Request) {
	req.Header.Set("Authorization", "token "+s.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

// statusError maps an HTTP status to the error taxonomy. A stale SHA write is
// rejected by GitHub with 409; 422 is treated the same since older API
// revisions used it for the sha mismatch.
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrAuth
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return ErrConflict
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, body)
	}
}

func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '\n' && c != '\r' {
			out = append(out, c)
		}
	}
	return string(out)
}
