package models

import (
	"bytes"
	"encoding/json"
)

// Flag is a boolean-ish value as serialized by the backend. JSON true, the
// number 1 and the string "1" all decode to true; everything else decodes to
// false. It marshals back as a native boolean.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1", `"1"`:
		*f = true
	default:
		*f = false
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool returns the plain boolean value.
func (f Flag) Bool() bool { return bool(f) }

// Kost is the singleton kost profile edited from the admin dashboard.
type Kost struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Whatsapp      string `json:"whatsapp"`
	GoogleMapsURL string `json:"google_maps_url"`
	VisitingHours string `json:"visiting_hours"`
}

// PublicKost is the trimmed profile served on the public endpoint.
type PublicKost struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PhoneOwner string `json:"phone_owner"`
	PhoneAlt   string `json:"phone_alt"`
	MapsURL    string `json:"maps_url"`
	Type       string `json:"type"`
	VisitHours string `json:"visit_hours"`
	Notes      string `json:"notes"`
}

// Facility is a catalog entry; rooms reference facilities many-to-many.
type Facility struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Room is a rentable room. Nullable numeric columns stay pointers so "not
// set" round-trips as JSON null rather than zero.
type Room struct {
	ID                  int64      `json:"id"`
	Code                string     `json:"code"`
	PriceMonthly        *int64     `json:"price_monthly"`
	Deposit             *int64     `json:"deposit"`
	ElectricityIncluded Flag       `json:"electricity_included"`
	ElectricityNote     string     `json:"electricity_note"`
	SizeM2              *float64   `json:"size_m2"`
	IsAvailable         Flag       `json:"is_available"`
	Notes               string     `json:"notes"`
	Facilities          []Facility `json:"facilities"`
}

// FacilityIDs returns the ids of the room's embedded facilities in order.
func (r Room) FacilityIDs() []int64 {
	ids := make([]int64, len(r.Facilities))
	for i, f := range r.Facilities {
		ids[i] = f.ID
	}
	return ids
}

// NearbyCategory enumerates the backend's nearby-place categories.
type NearbyCategory string

const (
	CategoryLaundry    NearbyCategory = "laundry"
	CategoryMinimarket NearbyCategory = "minimarket"
	CategoryMakan      NearbyCategory = "makan"
	CategoryTransport  NearbyCategory = "transport"
	CategoryLainnya    NearbyCategory = "lainnya"
)

// NearbyCategories lists all valid categories, in display order.
var NearbyCategories = []NearbyCategory{
	CategoryLaundry,
	CategoryMinimarket,
	CategoryMakan,
	CategoryTransport,
	CategoryLainnya,
}

// Nearby is a place of interest close to the kost.
type Nearby struct {
	ID        int64          `json:"id"`
	Category  NearbyCategory `json:"category"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	DistanceM *int64         `json:"distance_m"`
	MapsURL   string         `json:"maps_url"`
	Note      string         `json:"note"`
}

// Rule is a house rule.
type Rule struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page is the paginated list envelope returned by every admin list endpoint.
//
// Page is the page the backend actually served; callers must adopt it rather
// than assume their requested page was echoed back.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// ChatRole is the author of a transcript entry.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleBot  ChatRole = "bot"
)

// ChatMessage is a single transcript turn.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Health is the backend health report.
type Health struct {
	Status string `json:"status"`
}
