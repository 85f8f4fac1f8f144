package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/state"
	tu "github.com/binarakost/kostctl/internal/testing"
)

// newTestRunner builds a runner against the given server with a stored token
// and a buffered output.
func newTestRunner(t *testing.T, serverURL string) (*Runner, *bytes.Buffer) {
	t.Helper()
	config := shared.DefaultConfig()
	config.API.BaseURL = serverURL
	config.Kost.ID = 1

	store := state.NewMemory()
	store.SetToken("abc")

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  store,
		Logger: shared.NewLogger(io.Discard),
		Output: output,
	})
	return runner, output
}

// run executes one CLI invocation against the runner's command tree.
func run(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "kostctl", Commands: runner.register()}
	return app.Run(context.Background(), append([]string{"kostctl"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			store := state.NewMemory()

			runner := NewRunner(RunnerOpts{
				Config: config,
				Store:  store,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil opts builds defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.store == nil {
				t.Error("expected default store to be set")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
			if runner.admin == nil || runner.public == nil || runner.chat == nil {
				t.Error("expected services to be built from config")
			}
			if runner.panel == nil || runner.engine == nil {
				t.Error("expected panel and export engine to be built")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, true)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 13 {
			t.Errorf("expected 13 top-level commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			if cmd == nil {
				t.Fatal("nil command registered")
			}
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "login", "logout", "kost", "rooms", "nearby", "rules", "facilities", "public", "chat", "status", "export", "tui"} {
			if !names[want] {
				t.Errorf("expected command %q to be registered", want)
			}
		}
	})
}

func TestAuthActions(t *testing.T) {
	t.Run("login stores token for later calls", func(t *testing.T) {
		var sawAuth string
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		})
		mux.HandleFunc("GET /api/admin/kost", func(w http.ResponseWriter, r *http.Request) {
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(models.Kost{Name: "Kost Melati"})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)
		runner.store.Clear()

		if err := run(t, runner, "login", "-u", "admin", "-p", "secret"); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if !strings.Contains(output.String(), "Logged in as admin") {
			t.Errorf("expected login confirmation, got %q", output.String())
		}

		if err := run(t, runner, "kost", "get"); err != nil {
			t.Fatalf("kost get failed: %v", err)
		}
		if sawAuth != "Bearer tok-1" {
			t.Errorf("expected stored token on next call, got %q", sawAuth)
		}
	})

	t.Run("logout clears the session", func(t *testing.T) {
		runner, output := newTestRunner(t, "http://localhost:1")

		if err := run(t, runner, "logout"); err != nil {
			t.Fatalf("logout failed: %v", err)
		}
		if runner.store.Token() != "" {
			t.Error("expected token to be cleared")
		}
		if !strings.Contains(output.String(), "Logged out") {
			t.Errorf("expected logout confirmation, got %q", output.String())
		}
	})
}

func TestKostActions(t *testing.T) {
	t.Run("set overlays only provided flags", func(t *testing.T) {
		var saved models.Kost
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/admin/kost", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Kost{Name: "Kost Melati", Address: "Jl. Mawar 1", Whatsapp: "0812"})
		})
		mux.HandleFunc("PUT /api/admin/kost", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&saved)
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		if err := run(t, runner, "kost", "set", "--address", "Jl. Melati 2"); err != nil {
			t.Fatalf("kost set failed: %v", err)
		}
		if saved.Address != "Jl. Melati 2" {
			t.Errorf("expected new address, got %q", saved.Address)
		}
		if saved.Name != "Kost Melati" || saved.Whatsapp != "0812" {
			t.Errorf("expected untouched fields to survive, got %+v", saved)
		}
	})

	t.Run("set without flags is rejected", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/admin/kost", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Kost{Name: "Kost Melati"})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		err := run(t, runner, "kost", "set")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "nothing to change") {
			t.Errorf("expected nothing-to-change error, got %v", err)
		}
	})
}

func TestRoomActions(t *testing.T) {
	listHandler := func(w http.ResponseWriter, r *http.Request) {
		price := int64(850000)
		json.NewEncoder(w).Encode(models.Page[models.Room]{
			Items: []models.Room{
				{ID: 1, Code: "A-1", PriceMonthly: &price, IsAvailable: true},
				{ID: 2, Code: "A-2"},
			},
			Total:    12,
			Page:     2,
			PageSize: 10,
		})
	}

	t.Run("list prints table and server caption", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/admin/rooms", listHandler)
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "rooms", "list", "--page", "2"); err != nil {
			t.Fatalf("rooms list failed: %v", err)
		}

		text := output.String()
		if !strings.Contains(text, "A-1") || !strings.Contains(text, "Rp 850.000") {
			t.Errorf("expected room rows, got %q", text)
		}
		if !strings.Contains(text, "Page 2 / 2 • Total 12") {
			t.Errorf("expected caption, got %q", text)
		}
	})

	t.Run("list with json emits the raw envelope", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/admin/rooms", listHandler)
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "rooms", "list", "--json"); err != nil {
			t.Fatalf("rooms list failed: %v", err)
		}

		var page models.Page[models.Room]
		if err := json.Unmarshal(output.Bytes(), &page); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if page.Total != 12 || len(page.Items) != 2 {
			t.Errorf("unexpected envelope: %+v", page)
		}
	})

	t.Run("create sends full payload with facility set", func(t *testing.T) {
		var payload map[string]any
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/admin/rooms", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusCreated)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		err := run(t, runner, "rooms", "create",
			"--code", "B-3", "--price", "900000",
			"--facility", "2", "--facility", "5")
		if err != nil {
			t.Fatalf("rooms create failed: %v", err)
		}

		if payload["code"] != "B-3" {
			t.Errorf("expected code B-3, got %v", payload["code"])
		}
		if payload["kost_id"] != float64(1) {
			t.Errorf("expected kost id filled in, got %v", payload["kost_id"])
		}
		if payload["price_monthly"] != float64(900000) {
			t.Errorf("expected price, got %v", payload["price_monthly"])
		}
		ids, _ := payload["facility_ids"].([]any)
		if len(ids) != 2 {
			t.Errorf("expected two facility ids, got %v", payload["facility_ids"])
		}
		if payload["deposit"] != nil {
			t.Errorf("expected omitted deposit to be null, got %v", payload["deposit"])
		}
	})

	t.Run("create without code fails before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		err := run(t, runner, "rooms", "create", "--price", "900000")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "--code is required") {
			t.Errorf("expected code error, got %v", err)
		}
		if requests != 0 {
			t.Errorf("expected no request, got %d", requests)
		}
	})

	t.Run("create with unparseable price fails before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		err := run(t, runner, "rooms", "create", "--code", "B-3", "--price", "mahal")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "--price must be a whole number") {
			t.Errorf("expected price error, got %v", err)
		}
		if requests != 0 {
			t.Errorf("expected no request, got %d", requests)
		}
	})

	t.Run("availability sends only the flag", func(t *testing.T) {
		var payload map[string]any
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /api/admin/rooms/7", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "rooms", "availability", "--id", "7", "--available=false"); err != nil {
			t.Fatalf("availability failed: %v", err)
		}
		if len(payload) != 1 || payload["is_available"] != false {
			t.Errorf("expected single-key payload, got %v", payload)
		}
		if !strings.Contains(output.String(), "marked occupied") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})

	t.Run("delete with yes skips the prompt", func(t *testing.T) {
		deleted := false
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /api/admin/rooms/7", func(w http.ResponseWriter, r *http.Request) {
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		if err := run(t, runner, "rooms", "delete", "--id", "7", "--yes"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if !deleted {
			t.Error("expected delete request")
		}
	})
}

func TestNearbyActions(t *testing.T) {
	t.Run("list forwards the category filter", func(t *testing.T) {
		var sawCategory string
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/admin/nearby", func(w http.ResponseWriter, r *http.Request) {
			sawCategory = r.URL.Query().Get("category")
			json.NewEncoder(w).Encode(models.Page[models.Nearby]{Page: 1, PageSize: 10})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		if err := run(t, runner, "nearby", "list", "--category", "laundry"); err != nil {
			t.Fatalf("nearby list failed: %v", err)
		}
		if sawCategory != "laundry" {
			t.Errorf("expected laundry filter, got %q", sawCategory)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		runner, _ := newTestRunner(t, "http://localhost:1")

		err := run(t, runner, "nearby", "list", "--category", "apotek")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "unknown category") {
			t.Errorf("expected category error, got %v", err)
		}
	})

	t.Run("create defaults category to lainnya", func(t *testing.T) {
		var payload map[string]any
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/admin/nearby", func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&payload)
			w.WriteHeader(http.StatusCreated)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, _ := newTestRunner(t, server.URL)

		if err := run(t, runner, "nearby", "create", "--name", "Laundry Bu Sri", "--distance", "150"); err != nil {
			t.Fatalf("nearby create failed: %v", err)
		}
		if payload["category"] != "lainnya" {
			t.Errorf("expected default category, got %v", payload["category"])
		}
		if payload["distance_m"] != float64(150) {
			t.Errorf("expected distance, got %v", payload["distance_m"])
		}
	})
}

func TestFacilityActions(t *testing.T) {
	t.Run("delete conflict prints the backend refusal", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /api/admin/facilities/3", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte("facility in use"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "facilities", "delete", "--id", "3", "--yes"); err != nil {
			t.Fatalf("expected conflict to be reported, not returned: %v", err)
		}
		if !strings.Contains(output.String(), "facility in use") {
			t.Errorf("expected backend message, got %q", output.String())
		}
	})
}

func TestPublicActions(t *testing.T) {
	t.Run("kost prints visitor profile with wa link", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/public/kost", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.PublicKost{
				Name:       "Kost Melati",
				Address:    "Jl. Mawar 1",
				PhoneOwner: "0812-3456-789",
			})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "public", "kost"); err != nil {
			t.Fatalf("public kost failed: %v", err)
		}
		if !strings.Contains(output.String(), "https://wa.me/628123456789") {
			t.Errorf("expected wa.me link, got %q", output.String())
		}
	})
}

func TestChatAction(t *testing.T) {
	t.Run("prints the assistant reply", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/chat", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"answer": "Ada 3 kamar kosong."})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "chat", "ask", "kamar kosong?"); err != nil {
			t.Fatalf("chat ask failed: %v", err)
		}
		if !strings.Contains(output.String(), "Ada 3 kamar kosong.") {
			t.Errorf("expected reply, got %q", output.String())
		}
	})

	t.Run("backend outage still prints a message", func(t *testing.T) {
		runner, output := newTestRunner(t, "http://localhost:1")

		if err := run(t, runner, "chat", "ask", "halo"); err != nil {
			t.Fatalf("chat ask should never fail: %v", err)
		}
		if !strings.Contains(output.String(), "unreachable") {
			t.Errorf("expected outage message, got %q", output.String())
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		runner, _ := newTestRunner(t, "http://localhost:1")

		err := run(t, runner, "chat", "ask")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "message argument is required") {
			t.Errorf("expected missing argument error, got %v", err)
		}
	})
}

func TestStatusAction(t *testing.T) {
	t.Run("reports healthy backend", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.Health{Status: "ok"})
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)

		if err := run(t, runner, "status"); err != nil {
			t.Fatalf("status failed: %v", err)
		}
		if !strings.Contains(output.String(), "Backend up") {
			t.Errorf("expected up, got %q", output.String())
		}
	})

	t.Run("reports unreachable backend", func(t *testing.T) {
		runner, output := newTestRunner(t, "http://localhost:1")

		if err := run(t, runner, "status"); err != nil {
			t.Fatalf("status failed: %v", err)
		}
		if !strings.Contains(output.String(), "Backend down") {
			t.Errorf("expected down, got %q", output.String())
		}
	})
}

func TestSetupAction(t *testing.T) {
	t.Run("writes a starter config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		runner, output := newTestRunner(t, "http://localhost:1")

		if err := run(t, runner, "setup", "--config", path); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected config file: %v", err)
		}
		if !strings.Contains(string(data), "[api]") {
			t.Errorf("expected toml sections, got %s", data)
		}
		if !strings.Contains(output.String(), "Config written") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		runner, _ := newTestRunner(t, "http://localhost:1")

		err := run(t, runner, "setup", "--config", path)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected overwrite refusal, got %v", err)
		}
	})
}

func TestExportAction(t *testing.T) {
	t.Run("exports every listing and prints the summary", func(t *testing.T) {
		mux := http.NewServeMux()
		for _, resource := range []string{"rooms", "nearby", "rules", "facilities"} {
			resource := resource
			mux.HandleFunc("GET /api/admin/"+resource, func(w http.ResponseWriter, r *http.Request) {
				switch resource {
				case "rooms":
					json.NewEncoder(w).Encode(models.Page[models.Room]{
						Items: []models.Room{{ID: 1, Code: "A-1"}}, Total: 1, Page: 1, PageSize: 100,
					})
				case "nearby":
					json.NewEncoder(w).Encode(models.Page[models.Nearby]{
						Items: []models.Nearby{{ID: 1, Name: "Laundry", Category: models.CategoryLaundry}}, Total: 1, Page: 1, PageSize: 100,
					})
				case "rules":
					json.NewEncoder(w).Encode(models.Page[models.Rule]{
						Items: []models.Rule{{ID: 1, Title: "No smoking"}}, Total: 1, Page: 1, PageSize: 100,
					})
				case "facilities":
					json.NewEncoder(w).Encode(models.Page[models.Facility]{
						Items: []models.Facility{{ID: 1, Name: "AC"}}, Total: 1, Page: 1, PageSize: 100,
					})
				}
			})
		}
		server := httptest.NewServer(mux)
		defer server.Close()

		runner, output := newTestRunner(t, server.URL)
		dir := filepath.Join(t.TempDir(), "out")

		if err := run(t, runner, "export", "--format", "csv", "--output", dir); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		if !strings.Contains(output.String(), "4 succeeded, 0 failed") {
			t.Errorf("expected summary, got %q", output.String())
		}
		for _, name := range []string{"rooms.csv", "nearby.csv", "rules.csv", "facilities.csv"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected %s: %v", name, err)
			}
		}
	})
}
