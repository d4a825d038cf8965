package gh

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeContents is a minimal in-memory contents API with SHA checking.
type fakeContents struct {
	content []byte
	sha     string
	token   string
	puts    int
}

func (f *fakeContents) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/contents/config.ini", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"sha": f.sha,
				// the API wraps base64 in newlines
				"content": base64.StdEncoding.EncodeToString(f.content) + "\n",
			})
		case http.MethodPut:
			var body struct {
				Message string `json:"message"`
				Content string `json:"content"`
				SHA     string `json:"sha"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if body.SHA != f.sha {
				w.WriteHeader(http.StatusConflict)
				return
			}
			content, err := base64.StdEncoding.DecodeString(body.Content)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.content = content
			f.sha = fmt.Sprintf("sha-%d", f.puts)
			f.puts++
			json.NewEncoder(w).Encode(map[string]any{
				"content": map[string]string{"sha": f.sha},
			})
		}
	})
	mux.HandleFunc("/repos/o/r/actions/workflows/run_script.yml/dispatches", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newFakeSession(t *testing.T, f *fakeContents, token string) *Session {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	s := NewSession("o", "r", token)
	s.APIBase = srv.URL
	return s
}

func TestGetFile(t *testing.T) {
	f := &fakeContents{content: []byte("[Settings]\nrisk = 5"), sha: "abc", token: "tok"}
	s := newFakeSession(t, f, "tok")

	file, err := s.GetFile(context.Background(), "config.ini")
	if err != nil {
		t.Fatal(err)
	}
	if string(file.Content) != "[Settings]\nrisk = 5" {
		t.Errorf("content = %q", file.Content)
	}
	if file.SHA != "abc" {
		t.Errorf("sha = %q", file.SHA)
	}
}

func TestGetFileAuthFailure(t *testing.T) {
	f := &fakeContents{content: []byte("x"), sha: "abc", token: "tok"}
	s := newFakeSession(t, f, "wrong")

	_, err := s.GetFile(context.Background(), "config.ini")
	if !errors.Is(err, ErrAuth) {
		t.Errorf("err = %v, want ErrAuth", err)
	}
}

func TestGetFileNotFound(t *testing.T) {
	f := &fakeContents{content: []byte("x"), sha: "abc", token: "tok"}
	s := newFakeSession(t, f, "tok")

	_, err := s.GetFile(context.Background(), "missing.ini")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPutFile(t *testing.T) {
	f := &fakeContents{content: []byte("old"), sha: "abc", token: "tok"}
	s := newFakeSession(t, f, "tok")

	newSHA, err := s.PutFile(context.Background(), "config.ini", []byte("new"), "Update config.ini", "abc")
	if err != nil {
		t.Fatal(err)
	}
	if newSHA == "" || newSHA == "abc" {
		t.Errorf("newSHA = %q", newSHA)
	}
	if string(f.content) != "new" {
		t.Errorf("remote content = %q", f.content)
	}
}

func TestPutFileConflict(t *testing.T) {
	f := &fakeContents{content: []byte("old"), sha: "abc", token: "tok"}
	s := newFakeSession(t, f, "tok")

	_, err := s.PutFile(context.Background(), "config.ini", []byte("new"), "Update config.ini", "stale")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if string(f.content) != "old" {
		t.Error("a conflicted write must leave remote content unmodified")
	}
}

func TestDispatchWorkflow(t *testing.T) {
	f := &fakeContents{token: "tok"}
	s := newFakeSession(t, f, "tok")

	if err := s.DispatchWorkflow(context.Background(), "run_script.yml", "main"); err != nil {
		t.Fatal(err)
	}
	if err := newFakeSession(t, f, "bad").DispatchWorkflow(context.Background(), "run_script.yml", "main"); !errors.Is(err, ErrAuth) {
		t.Errorf("err = %v, want ErrAuth", err)
	}
}
