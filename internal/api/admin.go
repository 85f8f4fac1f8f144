package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
)

// DefaultPageSize is the page size used by every admin listing screen.
const DefaultPageSize = 10

// AdminService provides typed operations over the admin endpoints.
//
// Login is the only call that bypasses the [Gateway]: it runs before a session
// exists and stores the returned token on success. Everything else goes
// through the gateway and inherits its 401 handling.
type AdminService struct {
	gateway    *Gateway
	httpClient *http.Client
	kostID     int64
}

// NewAdminService creates an AdminService bound to one kost id. The plain
// client is used for the unauthenticated login call only; nil defaults to
// [http.DefaultClient].
func NewAdminService(gateway *Gateway, kostID int64, plain *http.Client) *AdminService {
	if plain == nil {
		plain = http.DefaultClient
	}
	return &AdminService{gateway: gateway, httpClient: plain, kostID: kostID}
}

// KostID returns the kost id this service manages.
func (s *AdminService) KostID() int64 { return s.kostID }

// Login exchanges credentials for a bearer token and stores it, creating the
// session. The backend reports the token as either "token" or "access_token".
func (s *AdminService) Login(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gateway.BaseURL()+"/api/admin/login", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrLoginFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrLoginFailed, shared.NewStatusError(resp.StatusCode, string(body)).Error())
	}

	var result struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: unreadable login response", shared.ErrLoginFailed)
	}

	token := result.Token
	if token == "" {
		token = result.AccessToken
	}
	if token == "" {
		return fmt.Errorf("%w: no token in login response", shared.ErrLoginFailed)
	}

	s.gateway.Store().SetToken(token)
	return nil
}

// Logout destroys the session locally.
func (s *AdminService) Logout() {
	s.gateway.Store().Clear()
}

// LoggedIn reports whether a session token is present.
func (s *AdminService) LoggedIn() bool {
	return s.gateway.Store().Token() != ""
}

func (s *AdminService) kostQuery() string {
	return "?kost_id=" + strconv.FormatInt(s.kostID, 10)
}

// Kost retrieves the kost profile singleton.
func (s *AdminService) Kost(ctx context.Context) (*models.Kost, error) {
	var kost models.Kost
	if err := s.gateway.CallJSON(ctx, http.MethodGet, "/api/admin/kost"+s.kostQuery(), nil, &kost); err != nil {
		return nil, err
	}
	return &kost, nil
}

// SaveKost replaces the kost profile singleton.
func (s *AdminService) SaveKost(ctx context.Context, kost *models.Kost) error {
	_, err := s.gateway.Call(ctx, http.MethodPut, "/api/admin/kost"+s.kostQuery(), kost)
	return err
}

func listQuery(page, pageSize int, extra url.Values) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	for key, values := range extra {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	return q.Encode()
}

// Rooms lists rooms for this kost, one page at a time.
func (s *AdminService) Rooms(ctx context.Context, page, pageSize int) (*models.Page[models.Room], error) {
	extra := url.Values{"kost_id": []string{strconv.FormatInt(s.kostID, 10)}}
	var result models.Page[models.Room]
	if err := s.gateway.CallJSON(ctx, http.MethodGet, "/api/admin/rooms?"+listQuery(page, pageSize, extra), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RoomPayload is the complete create/update body for a room. FacilityIDs is
// the full desired facility set; the backend reconciles the relation.
type RoomPayload struct {
	KostID              int64    `json:"kost_id"`
	Code                string   `json:"code"`
	PriceMonthly        *int64   `json:"price_monthly"`
	Deposit             *int64   `json:"deposit"`
	ElectricityIncluded bool     `json:"electricity_included"`
	ElectricityNote     string   `json:"electricity_note"`
	SizeM2              *float64 `json:"size_m2"`
	IsAvailable         bool     `json:"is_available"`
	Notes               string   `json:"notes"`
	FacilityIDs         []int64  `json:"facility_ids"`
}

// CreateRoom creates a room. The kost id is filled in from the service.
func (s *AdminService) CreateRoom(ctx context.Context, payload RoomPayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPost, "/api/admin/rooms", payload)
	return err
}

// UpdateRoom replaces the room with the given id.
func (s *AdminService) UpdateRoom(ctx context.Context, id int64, payload RoomPayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPut, fmt.Sprintf("/api/admin/rooms/%d", id), payload)
	return err
}

// SetRoomAvailability flips just the availability flag, leaving the rest of
// the room untouched.
func (s *AdminService) SetRoomAvailability(ctx context.Context, id int64, available bool) error {
	body := map[string]bool{"is_available": available}
	_, err := s.gateway.Call(ctx, http.MethodPut, fmt.Sprintf("/api/admin/rooms/%d", id), body)
	return err
}

// DeleteRoom removes the room with the given id.
func (s *AdminService) DeleteRoom(ctx context.Context, id int64) error {
	_, err := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/rooms/%d", id), nil)
	return err
}

// Nearby lists nearby places, optionally filtered to one category.
func (s *AdminService) Nearby(ctx context.Context, page, pageSize int, category models.NearbyCategory) (*models.Page[models.Nearby], error) {
	extra := url.Values{"kost_id": []string{strconv.FormatInt(s.kostID, 10)}}
	if category != "" {
		extra.Set("category", string(category))
	}
	var result models.Page[models.Nearby]
	if err := s.gateway.CallJSON(ctx, http.MethodGet, "/api/admin/nearby?"+listQuery(page, pageSize, extra), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NearbyPayload is the create/update body for a nearby place.
type NearbyPayload struct {
	KostID    int64                 `json:"kost_id"`
	Category  models.NearbyCategory `json:"category"`
	Name      string                `json:"name"`
	Address   string                `json:"address"`
	DistanceM *int64                `json:"distance_m"`
	MapsURL   string                `json:"maps_url"`
	Note      string                `json:"note"`
}

// CreateNearby creates a nearby place.
func (s *AdminService) CreateNearby(ctx context.Context, payload NearbyPayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPost, "/api/admin/nearby", payload)
	return err
}

// UpdateNearby replaces the nearby place with the given id.
func (s *AdminService) UpdateNearby(ctx context.Context, id int64, payload NearbyPayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPut, fmt.Sprintf("/api/admin/nearby/%d", id), payload)
	return err
}

// DeleteNearby removes the nearby place with the given id.
func (s *AdminService) DeleteNearby(ctx context.Context, id int64) error {
	_, err := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/nearby/%d", id), nil)
	return err
}

// Rules lists house rules.
func (s *AdminService) Rules(ctx context.Context, page, pageSize int) (*models.Page[models.Rule], error) {
	extra := url.Values{"kost_id": []string{strconv.FormatInt(s.kostID, 10)}}
	var result models.Page[models.Rule]
	if err := s.gateway.CallJSON(ctx, http.MethodGet, "/api/admin/rules?"+listQuery(page, pageSize, extra), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RulePayload is the create/update body for a house rule.
type RulePayload struct {
	KostID      int64  `json:"kost_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateRule creates a house rule.
func (s *AdminService) CreateRule(ctx context.Context, payload RulePayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPost, "/api/admin/rules", payload)
	return err
}

// UpdateRule replaces the rule with the given id.
func (s *AdminService) UpdateRule(ctx context.Context, id int64, payload RulePayload) error {
	payload.KostID = s.kostID
	_, err := s.gateway.Call(ctx, http.MethodPut, fmt.Sprintf("/api/admin/rules/%d", id), payload)
	return err
}

// DeleteRule removes the rule with the given id.
func (s *AdminService) DeleteRule(ctx context.Context, id int64) error {
	_, err := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/rules/%d", id), nil)
	return err
}

// Facilities lists the facility catalog.
func (s *AdminService) Facilities(ctx context.Context, page, pageSize int) (*models.Page[models.Facility], error) {
	var result models.Page[models.Facility]
	if err := s.gateway.CallJSON(ctx, http.MethodGet, "/api/admin/facilities?"+listQuery(page, pageSize, nil), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FacilityCatalog fetches the whole catalog in one oversized page, for the
// room editor's checklist.
func (s *AdminService) FacilityCatalog(ctx context.Context) ([]models.Facility, error) {
	page, err := s.Facilities(ctx, 1, 200)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateFacility creates a facility catalog entry.
func (s *AdminService) CreateFacility(ctx context.Context, name string) error {
	_, err := s.gateway.Call(ctx, http.MethodPost, "/api/admin/facilities", map[string]string{"name": name})
	return err
}

// UpdateFacility renames the facility with the given id.
func (s *AdminService) UpdateFacility(ctx context.Context, id int64, name string) error {
	_, err := s.gateway.Call(ctx, http.MethodPut, fmt.Sprintf("/api/admin/facilities/%d", id), map[string]string{"name": name})
	return err
}

// DeleteFacility removes the facility with the given id. The backend rejects
// the delete while rooms still reference it.
func (s *AdminService) DeleteFacility(ctx context.Context, id int64) error {
	_, err := s.gateway.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/facilities/%d", id), nil)
	return err
}
