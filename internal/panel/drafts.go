package panel

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
)

func formatInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat64(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// parseInt64 turns a numeric text field into its value, or nil when blank.
func parseInt64(field, s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number", shared.ErrValidation, field)
	}
	return &n, nil
}

func parseFloat64(field, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", shared.ErrValidation, field)
	}
	return &n, nil
}

// RoomDraft is the editable projection of a room. Numeric fields are kept as
// text for input binding and parsed back on save; the facility selection is a
// set toggled from the editor's checklist.
type RoomDraft struct {
	Code                string
	PriceMonthly        string
	Deposit             string
	ElectricityIncluded bool
	ElectricityNote     string
	SizeM2              string
	IsAvailable         bool
	Notes               string

	selected map[int64]struct{}
}

// Toggle flips facility id membership in the selection: absent ids are added,
// present ids removed. Toggling twice restores the original state.
func (d *RoomDraft) Toggle(id int64) {
	if d.selected == nil {
		d.selected = make(map[int64]struct{})
	}
	if _, ok := d.selected[id]; ok {
		delete(d.selected, id)
	} else {
		d.selected[id] = struct{}{}
	}
}

// Selected reports whether the facility id is in the selection.
func (d *RoomDraft) Selected(id int64) bool {
	_, ok := d.selected[id]
	return ok
}

// FacilityIDs returns the selection sorted ascending, so save payloads are
// deterministic.
func (d *RoomDraft) FacilityIDs() []int64 {
	ids := make([]int64, 0, len(d.selected))
	for id := range d.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RoomResource wires RoomDraft to the admin room endpoints.
type RoomResource struct {
	admin *api.AdminService
}

func (r RoomResource) Blank() RoomDraft {
	return RoomDraft{IsAvailable: true, selected: make(map[int64]struct{})}
}

// Project seeds the draft from the record verbatim. The facility selection
// comes from the room's embedded facilities, so an id the catalog no longer
// lists is preserved rather than dropped.
func (r RoomResource) Project(room models.Room) (int64, RoomDraft) {
	draft := RoomDraft{
		Code:                room.Code,
		PriceMonthly:        formatInt64(room.PriceMonthly),
		Deposit:             formatInt64(room.Deposit),
		ElectricityIncluded: room.ElectricityIncluded.Bool(),
		ElectricityNote:     room.ElectricityNote,
		SizeM2:              formatFloat64(room.SizeM2),
		IsAvailable:         room.IsAvailable.Bool(),
		Notes:               room.Notes,
		selected:            make(map[int64]struct{}, len(room.Facilities)),
	}
	for _, id := range room.FacilityIDs() {
		draft.selected[id] = struct{}{}
	}
	return room.ID, draft
}

func (r RoomResource) Validate(draft RoomDraft) error {
	if strings.TrimSpace(draft.Code) == "" {
		return fmt.Errorf("%w: room code is required", shared.ErrValidation)
	}
	return nil
}

func (r RoomResource) payload(draft RoomDraft) (api.RoomPayload, error) {
	price, err := parseInt64("monthly price", draft.PriceMonthly)
	if err != nil {
		return api.RoomPayload{}, err
	}
	deposit, err := parseInt64("deposit", draft.Deposit)
	if err != nil {
		return api.RoomPayload{}, err
	}
	size, err := parseFloat64("size", draft.SizeM2)
	if err != nil {
		return api.RoomPayload{}, err
	}
	return api.RoomPayload{
		Code:                strings.TrimSpace(draft.Code),
		PriceMonthly:        price,
		Deposit:             deposit,
		ElectricityIncluded: draft.ElectricityIncluded,
		ElectricityNote:     draft.ElectricityNote,
		SizeM2:              size,
		IsAvailable:         draft.IsAvailable,
		Notes:               draft.Notes,
		FacilityIDs:         draft.FacilityIDs(),
	}, nil
}

func (r RoomResource) Create(ctx context.Context, draft RoomDraft) error {
	payload, err := r.payload(draft)
	if err != nil {
		return err
	}
	return r.admin.CreateRoom(ctx, payload)
}

func (r RoomResource) Update(ctx context.Context, id int64, draft RoomDraft) error {
	payload, err := r.payload(draft)
	if err != nil {
		return err
	}
	return r.admin.UpdateRoom(ctx, id, payload)
}

func (r RoomResource) Delete(ctx context.Context, id int64) error {
	return r.admin.DeleteRoom(ctx, id)
}

// NearbyDraft is the editable projection of a nearby place.
type NearbyDraft struct {
	Category  models.NearbyCategory
	Name      string
	Address   string
	DistanceM string
	MapsURL   string
	Note      string
}

// NearbyResource wires NearbyDraft to the admin nearby endpoints.
type NearbyResource struct {
	admin *api.AdminService
}

func (r NearbyResource) Blank() NearbyDraft {
	return NearbyDraft{Category: models.CategoryLainnya}
}

func (r NearbyResource) Project(place models.Nearby) (int64, NearbyDraft) {
	return place.ID, NearbyDraft{
		Category:  place.Category,
		Name:      place.Name,
		Address:   place.Address,
		DistanceM: formatInt64(place.DistanceM),
		MapsURL:   place.MapsURL,
		Note:      place.Note,
	}
}

func (r NearbyResource) Validate(draft NearbyDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	return nil
}

func (r NearbyResource) payload(draft NearbyDraft) (api.NearbyPayload, error) {
	distance, err := parseInt64("distance", draft.DistanceM)
	if err != nil {
		return api.NearbyPayload{}, err
	}
	category := draft.Category
	if category == "" {
		category = models.CategoryLainnya
	}
	return api.NearbyPayload{
		Category:  category,
		Name:      strings.TrimSpace(draft.Name),
		Address:   draft.Address,
		DistanceM: distance,
		MapsURL:   draft.MapsURL,
		Note:      draft.Note,
	}, nil
}

func (r NearbyResource) Create(ctx context.Context, draft NearbyDraft) error {
	payload, err := r.payload(draft)
	if err != nil {
		return err
	}
	return r.admin.CreateNearby(ctx, payload)
}

func (r NearbyResource) Update(ctx context.Context, id int64, draft NearbyDraft) error {
	payload, err := r.payload(draft)
	if err != nil {
		return err
	}
	return r.admin.UpdateNearby(ctx, id, payload)
}

func (r NearbyResource) Delete(ctx context.Context, id int64) error {
	return r.admin.DeleteNearby(ctx, id)
}

// RuleDraft is the editable projection of a house rule.
type RuleDraft struct {
	Title       string
	Description string
}

// RuleResource wires RuleDraft to the admin rule endpoints.
type RuleResource struct {
	admin *api.AdminService
}

func (r RuleResource) Blank() RuleDraft { return RuleDraft{} }

func (r RuleResource) Project(rule models.Rule) (int64, RuleDraft) {
	return rule.ID, RuleDraft{Title: rule.Title, Description: rule.Description}
}

func (r RuleResource) Validate(draft RuleDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("%w: title is required", shared.ErrValidation)
	}
	return nil
}

func (r RuleResource) Create(ctx context.Context, draft RuleDraft) error {
	return r.admin.CreateRule(ctx, api.RulePayload{Title: strings.TrimSpace(draft.Title), Description: draft.Description})
}

func (r RuleResource) Update(ctx context.Context, id int64, draft RuleDraft) error {
	return r.admin.UpdateRule(ctx, id, api.RulePayload{Title: strings.TrimSpace(draft.Title), Description: draft.Description})
}

func (r RuleResource) Delete(ctx context.Context, id int64) error {
	return r.admin.DeleteRule(ctx, id)
}

// FacilityDraft is the editable projection of a facility catalog entry.
type FacilityDraft struct {
	Name string
}

// FacilityResource wires FacilityDraft to the admin facility endpoints.
type FacilityResource struct {
	admin *api.AdminService
}

func (r FacilityResource) Blank() FacilityDraft { return FacilityDraft{} }

func (r FacilityResource) Project(facility models.Facility) (int64, FacilityDraft) {
	return facility.ID, FacilityDraft{Name: facility.Name}
}

func (r FacilityResource) Validate(draft FacilityDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	return nil
}

func (r FacilityResource) Create(ctx context.Context, draft FacilityDraft) error {
	return r.admin.CreateFacility(ctx, strings.TrimSpace(draft.Name))
}

func (r FacilityResource) Update(ctx context.Context, id int64, draft FacilityDraft) error {
	return r.admin.UpdateFacility(ctx, id, strings.TrimSpace(draft.Name))
}

func (r FacilityResource) Delete(ctx context.Context, id int64) error {
	return r.admin.DeleteFacility(ctx, id)
}
