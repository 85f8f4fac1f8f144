package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/models"
)

var (
	_ list.Item = roomItem{}
	_ list.Item = nearbyItem{}
	_ list.Item = ruleItem{}
	_ list.Item = facilityItem{}
)

// roomItem wraps [models.Room] to implement [list.Item].
type roomItem struct {
	room models.Room
}

func (i roomItem) FilterValue() string { return i.room.Code }
func (i roomItem) Title() string {
	marker := styles.err.Render("●")
	if i.room.IsAvailable.Bool() {
		marker = styles.ok.Render("●")
	}
	return fmt.Sprintf("%s %s", marker, i.room.Code)
}
func (i roomItem) Description() string {
	desc := formatter.Money(i.room.PriceMonthly)
	if desc == "" {
		desc = "no price set"
	}
	desc += "/month"
	if i.room.ElectricityIncluded.Bool() {
		desc += " • electricity included"
	}
	if len(i.room.Facilities) > 0 {
		desc = fmt.Sprintf("%s • %d facilities", desc, len(i.room.Facilities))
	}
	return desc
}

// nearbyItem wraps [models.Nearby] to implement [list.Item].
type nearbyItem struct {
	place models.Nearby
}

func (i nearbyItem) FilterValue() string { return i.place.Name }
func (i nearbyItem) Title() string       { return i.place.Name }
func (i nearbyItem) Description() string {
	desc := string(i.place.Category)
	if d := formatter.Distance(i.place.DistanceM); d != "" {
		desc = fmt.Sprintf("%s • %s", desc, d)
	}
	if i.place.Address != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.place.Address)
	}
	return desc
}

// ruleItem wraps [models.Rule] to implement [list.Item].
type ruleItem struct {
	rule models.Rule
}

func (i ruleItem) FilterValue() string { return i.rule.Title }
func (i ruleItem) Title() string       { return i.rule.Title }
func (i ruleItem) Description() string { return i.rule.Description }

// facilityItem wraps [models.Facility] to implement [list.Item].
type facilityItem struct {
	facility models.Facility
}

func (i facilityItem) FilterValue() string { return i.facility.Name }
func (i facilityItem) Title() string       { return i.facility.Name }
func (i facilityItem) Description() string { return fmt.Sprintf("id %d", i.facility.ID) }
