package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/gh"
	"github.com/google/subcommands"
)

// fakeRepo serves the contents API for a single config.ini with SHA checking.
type fakeRepo struct {
	content string
	sha     string
}

func (f *fakeRepo) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/o/r/contents/config.ini", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"sha":     f.sha,
				"content": base64.StdEncoding.EncodeToString([]byte(f.content)),
			})
		case http.MethodPut:
			var payload struct {
				Content string `json:"content"`
				SHA     string `json:"sha"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if payload.SHA != f.sha {
				http.Error(w, "sha mismatch", http.StatusConflict)
				return
			}
			decoded, err := base64.StdEncoding.DecodeString(payload.Content)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.content = string(decoded)
			f.sha = f.sha + "'"
			json.NewEncoder(w).Encode(map[string]any{"content": map[string]string{"sha": f.sha}})
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func fakeSession(t *testing.T, repo *fakeRepo) *gh.Session {
	t.Helper()
	srv := repo.server(t)
	s := gh.NewSession("o", "r", "tok")
	s.APIBase = srv.URL
	return s
}

func TestFetchAndSaveConfig(t *testing.T) {
	repo := &fakeRepo{
		content: "[Portfolio]\nAAPL = 10\n\n[Settings]\nrisk = 5 # scale 1-10\n",
		sha:     "abc",
	}
	s := fakeSession(t, repo)
	ctx := context.Background()

	file, doc, err := fetchConfig(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if file.SHA != "abc" {
		t.Errorf("SHA = %q", file.SHA)
	}

	session := stockmon.NewEditSession(doc)
	es, ok := session.Section("Portfolio")
	if !ok {
		t.Fatal("no Portfolio section")
	}
	es.Set("AAPL", "12")
	es.Set("MSFT", "3")

	if err := saveConfig(ctx, s, file, doc, session.Flatten(), "test"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(repo.content, "AAPL = 12") {
		t.Errorf("AAPL not rewritten:\n%s", repo.content)
	}
	if !strings.Contains(repo.content, "MSFT = 3") {
		t.Errorf("MSFT not appended:\n%s", repo.content)
	}
	if !strings.Contains(repo.content, "risk = 5 # scale 1-10") {
		t.Errorf("untouched line changed:\n%s", repo.content)
	}

	// a second save with the stale SHA must conflict, not overwrite
	if err := saveConfig(ctx, s, file, doc, session.Flatten(), "test"); err == nil {
		t.Fatal("stale SHA write succeeded")
	}
}

func TestKnown(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("smon", flag.ContinueOnError), "smon")
	Register(c)

	for _, name := range []string{"summary", "set", "set-option", "login", "tooltip"} {
		if !Known(name) {
			t.Errorf("%q should be a known command", name)
		}
	}
	if Known("publish") {
		t.Error("unknown command reported as known")
	}
}

func TestRunExtensionMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if ran, _ := RunExtension("definitely-not-a-command", nil); ran {
		t.Error("reported running a nonexistent extension")
	}
}
