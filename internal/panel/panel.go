// Package panel contains the controllers behind the admin screens: paginated
// collections, modal create/edit forms, the room-facility association, and
// the kost profile editor. The controllers own state and sequencing; they do
// no rendering, so the CLI and the TUI drive the same logic.
package panel

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/models"
)

// Panel bundles one controller set per resource screen, all sharing a single
// admin service and page size.
type Panel struct {
	Rooms    *Collection[models.Room]
	RoomForm *Form[models.Room, RoomDraft]

	Nearby     *Collection[models.Nearby]
	NearbyForm *Form[models.Nearby, NearbyDraft]

	Rules    *Collection[models.Rule]
	RuleForm *Form[models.Rule, RuleDraft]

	Facilities   *Collection[models.Facility]
	FacilityForm *Form[models.Facility, FacilityDraft]

	Kost    *KostEditor
	Catalog *Catalog

	admin *api.AdminService
}

// New wires a Panel over the admin service.
func New(admin *api.AdminService, pageSize int, logger *log.Logger) *Panel {
	rooms := NewCollection(func(ctx context.Context, page, pageSize int, _ models.NearbyCategory) (*models.Page[models.Room], error) {
		return admin.Rooms(ctx, page, pageSize)
	}, pageSize)
	nearby := NewCollection(func(ctx context.Context, page, pageSize int, category models.NearbyCategory) (*models.Page[models.Nearby], error) {
		return admin.Nearby(ctx, page, pageSize, category)
	}, pageSize)
	rules := NewCollection(func(ctx context.Context, page, pageSize int, _ models.NearbyCategory) (*models.Page[models.Rule], error) {
		return admin.Rules(ctx, page, pageSize)
	}, pageSize)
	facilities := NewCollection(func(ctx context.Context, page, pageSize int, _ models.NearbyCategory) (*models.Page[models.Facility], error) {
		return admin.Facilities(ctx, page, pageSize)
	}, pageSize)

	return &Panel{
		Rooms:        rooms,
		RoomForm:     NewForm[models.Room, RoomDraft](RoomResource{admin: admin}, rooms),
		Nearby:       nearby,
		NearbyForm:   NewForm[models.Nearby, NearbyDraft](NearbyResource{admin: admin}, nearby),
		Rules:        rules,
		RuleForm:     NewForm[models.Rule, RuleDraft](RuleResource{admin: admin}, rules),
		Facilities:   facilities,
		FacilityForm: NewForm[models.Facility, FacilityDraft](FacilityResource{admin: admin}, facilities),
		Kost:         NewKostEditor(admin),
		Catalog:      NewCatalog(admin, logger),
		admin:        admin,
	}
}

// ToggleAvailability flips a room's availability with a partial update, then
// reloads the current rooms page.
func (p *Panel) ToggleAvailability(ctx context.Context, room models.Room) error {
	if err := p.admin.SetRoomAvailability(ctx, room.ID, !room.IsAvailable.Bool()); err != nil {
		return err
	}
	return p.Rooms.Reload(ctx)
}
