package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/state"
)

func newTestAdmin(t *testing.T, serverURL string, kostID int64, token string) (*AdminService, state.Store) {
	t.Helper()
	gw, store := newTestGateway(t, serverURL, token)
	return NewAdminService(gw, kostID, nil), store
}

func TestAdminLogin(t *testing.T) {
	t.Run("Stores Token From token Field", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/admin/login" {
				t.Errorf("expected login path, got %s", r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotBody)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"abc"}`))
		}))
		defer server.Close()

		admin, store := newTestAdmin(t, server.URL, 1, "")
		if err := admin.Login(context.Background(), "adminólogy", "x"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if gotBody["username"] != "adminólogy" || gotBody["password"] != "x" {
			t.Errorf("unexpected credentials payload: %v", gotBody)
		}
		if store.Token() != "abc" {
			t.Errorf("expected stored token 'abc', got %q", store.Token())
		}
	})

	t.Run("Falls Back To access_token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"def"}`))
		}))
		defer server.Close()

		admin, store := newTestAdmin(t, server.URL, 1, "")
		if err := admin.Login(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if store.Token() != "def" {
			t.Errorf("expected stored token 'def', got %q", store.Token())
		}
	})

	t.Run("Missing Token Fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		admin, store := newTestAdmin(t, server.URL, 1, "")
		err := admin.Login(context.Background(), "admin", "secret")

		if !errors.Is(err, shared.ErrLoginFailed) {
			t.Errorf("expected ErrLoginFailed, got %v", err)
		}
		if store.Token() != "" {
			t.Error("expected no token stored")
		}
	})

	t.Run("Bad Credentials Fail With Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("wrong password"))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "")
		err := admin.Login(context.Background(), "admin", "nope")

		if !errors.Is(err, shared.ErrLoginFailed) {
			t.Fatalf("expected ErrLoginFailed, got %v", err)
		}
	})

	t.Run("Next Call Uses Stored Token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/admin/login":
				w.Write([]byte(`{"token":"abc"}`))
			default:
				gotAuth = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"items":[],"total":0,"page":1,"page_size":10}`))
			}
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "")
		if err := admin.Login(context.Background(), "admin", "secret"); err != nil {
			t.Fatalf("login: %v", err)
		}
		if _, err := admin.Rooms(context.Background(), 1, 10); err != nil {
			t.Fatalf("rooms: %v", err)
		}
		if gotAuth != "Bearer abc" {
			t.Errorf("expected 'Bearer abc', got %q", gotAuth)
		}
	})

	t.Run("Logout Clears Session", func(t *testing.T) {
		admin, store := newTestAdmin(t, "http://example.com", 1, "abc")
		if !admin.LoggedIn() {
			t.Fatal("expected logged-in state")
		}
		admin.Logout()
		if store.Token() != "" || admin.LoggedIn() {
			t.Error("expected session destroyed")
		}
	})
}

func TestAdminResources(t *testing.T) {
	t.Run("Rooms Passes kost_id And Pagination", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("kost_id") != "7" || q.Get("page") != "3" || q.Get("page_size") != "10" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"id":1,"code":"A-1","is_available":1,"facilities":[{"id":2,"name":"AC"}]}],"total":23,"page":3,"page_size":10}`))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 7, "abc")
		page, err := admin.Rooms(context.Background(), 3, 10)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if page.Total != 23 || page.Page != 3 {
			t.Errorf("unexpected envelope: %+v", page)
		}
		if len(page.Items) != 1 || !page.Items[0].IsAvailable.Bool() {
			t.Errorf("unexpected items: %+v", page.Items)
		}
	})

	t.Run("Nearby Category Filter", func(t *testing.T) {
		var gotCategory string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCategory = r.URL.Query().Get("category")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[],"total":0,"page":1,"page_size":10}`))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")

		if _, err := admin.Nearby(context.Background(), 1, 10, models.CategoryLaundry); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotCategory != "laundry" {
			t.Errorf("expected category filter, got %q", gotCategory)
		}

		if _, err := admin.Nearby(context.Background(), 1, 10, ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotCategory != "" {
			t.Errorf("expected no category param, got %q", gotCategory)
		}
	})

	t.Run("CreateRoom Sends Full Facility Set", func(t *testing.T) {
		var got RoomPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/admin/rooms" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 5, "abc")
		price := int64(850000)
		err := admin.CreateRoom(context.Background(), RoomPayload{
			Code:         "B-2",
			PriceMonthly: &price,
			IsAvailable:  true,
			FacilityIDs:  []int64{2, 9},
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.KostID != 5 {
			t.Errorf("expected kost_id filled in, got %d", got.KostID)
		}
		if len(got.FacilityIDs) != 2 || got.FacilityIDs[0] != 2 || got.FacilityIDs[1] != 9 {
			t.Errorf("expected complete facility set, got %v", got.FacilityIDs)
		}
	})

	t.Run("Nullable Numbers Stay Null", func(t *testing.T) {
		var raw map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &raw)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")
		if err := admin.CreateRoom(context.Background(), RoomPayload{Code: "C-1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if v, ok := raw["price_monthly"]; !ok || v != nil {
			t.Errorf("expected explicit null price_monthly, got %v", v)
		}
		if v, ok := raw["deposit"]; !ok || v != nil {
			t.Errorf("expected explicit null deposit, got %v", v)
		}
	})

	t.Run("SetRoomAvailability Sends Partial Body", func(t *testing.T) {
		var raw map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/api/admin/rooms/4" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &raw)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")
		if err := admin.SetRoomAvailability(context.Background(), 4, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(raw) != 1 {
			t.Errorf("expected only is_available in body, got %v", raw)
		}
		if raw["is_available"] != false {
			t.Errorf("expected is_available false, got %v", raw["is_available"])
		}
	})

	t.Run("Kost Singleton Round Trip", func(t *testing.T) {
		var gotMethod, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name":"Kost Binara","address":"Jl. Mawar 1","whatsapp":"0812","google_maps_url":"","visiting_hours":"08-21"}`))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")
		kost, err := admin.Kost(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotMethod != http.MethodGet || gotQuery != "kost_id=1" {
			t.Errorf("unexpected request: %s ?%s", gotMethod, gotQuery)
		}
		if kost.Name != "Kost Binara" {
			t.Errorf("unexpected kost: %+v", kost)
		}

		if err := admin.SaveKost(context.Background(), kost); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Errorf("expected PUT on save, got %s", gotMethod)
		}
	})

	t.Run("Delete Facility Conflict Surfaces Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte("facility in use"))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")
		err := admin.DeleteFacility(context.Background(), 2)

		var statusErr *shared.StatusError
		if !errors.As(err, &statusErr) || statusErr.Error() != "facility in use" {
			t.Errorf("expected exact backend message, got %v", err)
		}
	})

	t.Run("401 On Any Resource Clears Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		calls := []func(admin *AdminService) error{
			func(a *AdminService) error { _, err := a.Rooms(context.Background(), 1, 10); return err },
			func(a *AdminService) error { _, err := a.Rules(context.Background(), 1, 10); return err },
			func(a *AdminService) error { return a.DeleteNearby(context.Background(), 1) },
			func(a *AdminService) error { return a.CreateFacility(context.Background(), "AC") },
			func(a *AdminService) error { _, err := a.Kost(context.Background()); return err },
		}

		for i, call := range calls {
			admin, store := newTestAdmin(t, server.URL, 1, "abc")
			if err := call(admin); !errors.Is(err, shared.ErrUnauthorized) {
				t.Errorf("call %d: expected ErrUnauthorized, got %v", i, err)
			}
			if store.Token() != "" {
				t.Errorf("call %d: expected token cleared", i)
			}
		}
	})

	t.Run("FacilityCatalog Uses Oversized Page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page_size") != "200" {
				t.Errorf("expected page_size 200, got %s", r.URL.Query().Get("page_size"))
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"id":1,"name":"AC"},{"id":2,"name":"WiFi"}],"total":2,"page":1,"page_size":200}`))
		}))
		defer server.Close()

		admin, _ := newTestAdmin(t, server.URL, 1, "abc")
		catalog, err := admin.FacilityCatalog(context.Background())

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(catalog) != 2 {
			t.Errorf("expected 2 facilities, got %d", len(catalog))
		}
	})
}
