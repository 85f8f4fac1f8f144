package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/panel"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldBool
	fieldFacility
)

// editorField is one row of the modal editor: a text input, a boolean toggle
// or a facility checkbox.
type editorField struct {
	label      string
	kind       fieldKind
	input      textinput.Model
	on         bool
	facilityID int64
}

func textField(label, value string) editorField {
	input := textinput.New()
	input.Prompt = ""
	input.SetValue(value)
	input.CharLimit = 512
	return editorField{label: label, kind: fieldText, input: input}
}

func boolField(label string, on bool) editorField {
	return editorField{label: label, kind: fieldBool, on: on}
}

func facilityField(facility models.Facility, on bool) editorField {
	return editorField{label: facility.Name, kind: fieldFacility, on: on, facilityID: facility.ID}
}

// editor is the modal form rendered over a resource screen. Saving and the
// draft round trip are the form controller's job; the editor only binds keys
// and inputs.
type editor struct {
	title  string
	fields []editorField
	focus  int
}

func newEditor(title string, fields []editorField) editor {
	e := editor{title: title, fields: fields}
	if len(e.fields) > 0 && e.fields[0].kind == fieldText {
		e.fields[0].input.Focus()
	}
	return e
}

func (e *editor) focusField(idx int) {
	for i := range e.fields {
		if e.fields[i].kind == fieldText {
			e.fields[i].input.Blur()
		}
	}
	e.focus = idx
	if e.fields[idx].kind == fieldText {
		e.fields[idx].input.Focus()
	}
}

func (e *editor) next() {
	if len(e.fields) == 0 {
		return
	}
	e.focusField((e.focus + 1) % len(e.fields))
}

func (e *editor) prev() {
	if len(e.fields) == 0 {
		return
	}
	e.focusField((e.focus - 1 + len(e.fields)) % len(e.fields))
}

// toggleFocused flips the focused boolean or facility field and reports the
// facility id flipped, if any.
func (e *editor) toggleFocused() (int64, bool) {
	if len(e.fields) == 0 {
		return 0, false
	}
	field := &e.fields[e.focus]
	switch field.kind {
	case fieldBool:
		field.on = !field.on
		return 0, false
	case fieldFacility:
		field.on = !field.on
		return field.facilityID, true
	default:
		return 0, false
	}
}

func (e *editor) updateFocused(msg tea.Msg) tea.Cmd {
	if len(e.fields) == 0 || e.fields[e.focus].kind != fieldText {
		return nil
	}
	var cmd tea.Cmd
	e.fields[e.focus].input, cmd = e.fields[e.focus].input.Update(msg)
	return cmd
}

func (e *editor) value(label string) string {
	for i := range e.fields {
		if e.fields[i].label == label && e.fields[i].kind == fieldText {
			return e.fields[i].input.Value()
		}
	}
	return ""
}

func (e *editor) boolValue(label string) bool {
	for i := range e.fields {
		if e.fields[i].label == label && e.fields[i].kind == fieldBool {
			return e.fields[i].on
		}
	}
	return false
}

func (e *editor) View(message string) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(e.title))
	b.WriteString("\n\n")
	for i := range e.fields {
		field := &e.fields[i]
		cursor := "  "
		if i == e.focus {
			cursor = styles.title.Render("> ")
		}
		switch field.kind {
		case fieldText:
			b.WriteString(fmt.Sprintf("%s%s: %s\n", cursor, field.label, field.input.View()))
		case fieldBool, fieldFacility:
			mark := "[ ]"
			if field.on {
				mark = styles.ok.Render("[x]")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, field.label))
		}
	}

	if message != "" {
		b.WriteString("\n" + styles.err.Render(message) + "\n")
	}
	return b.String()
}

// Editor builders and collectors, one pair per resource.

const (
	labelCode        = "Code"
	labelPrice       = "Monthly price"
	labelDeposit     = "Deposit"
	labelElectricity = "Electricity included"
	labelElecNote    = "Electricity note"
	labelSize        = "Size (m2)"
	labelAvailable   = "Available"
	labelNotes       = "Notes"
	labelCategory    = "Category"
	labelName        = "Name"
	labelAddress     = "Address"
	labelDistance    = "Distance (m)"
	labelMapsURL     = "Maps URL"
	labelNote        = "Note"
	labelTitle       = "Title"
	labelDescription = "Description"
	labelWhatsapp    = "WhatsApp"
	labelVisitHours  = "Visiting hours"
)

func roomEditor(title string, draft *panel.RoomDraft, catalog []models.Facility) editor {
	fields := []editorField{
		textField(labelCode, draft.Code),
		textField(labelPrice, draft.PriceMonthly),
		textField(labelDeposit, draft.Deposit),
		boolField(labelElectricity, draft.ElectricityIncluded),
		textField(labelElecNote, draft.ElectricityNote),
		textField(labelSize, draft.SizeM2),
		boolField(labelAvailable, draft.IsAvailable),
		textField(labelNotes, draft.Notes),
	}
	for _, facility := range catalog {
		fields = append(fields, facilityField(facility, draft.Selected(facility.ID)))
	}
	return newEditor(title, fields)
}

// collectRoomEditor writes the text and boolean fields back to the draft.
// Facility checkboxes are applied as they are toggled, not here.
func collectRoomEditor(e *editor, draft *panel.RoomDraft) {
	draft.Code = e.value(labelCode)
	draft.PriceMonthly = e.value(labelPrice)
	draft.Deposit = e.value(labelDeposit)
	draft.ElectricityIncluded = e.boolValue(labelElectricity)
	draft.ElectricityNote = e.value(labelElecNote)
	draft.SizeM2 = e.value(labelSize)
	draft.IsAvailable = e.boolValue(labelAvailable)
	draft.Notes = e.value(labelNotes)
}

func nearbyEditor(title string, draft *panel.NearbyDraft) editor {
	return newEditor(title, []editorField{
		textField(labelName, draft.Name),
		textField(labelCategory, string(draft.Category)),
		textField(labelAddress, draft.Address),
		textField(labelDistance, draft.DistanceM),
		textField(labelMapsURL, draft.MapsURL),
		textField(labelNote, draft.Note),
	})
}

func collectNearbyEditor(e *editor, draft *panel.NearbyDraft) {
	draft.Name = e.value(labelName)
	draft.Category = models.NearbyCategory(e.value(labelCategory))
	draft.Address = e.value(labelAddress)
	draft.DistanceM = e.value(labelDistance)
	draft.MapsURL = e.value(labelMapsURL)
	draft.Note = e.value(labelNote)
}

func ruleEditor(title string, draft *panel.RuleDraft) editor {
	return newEditor(title, []editorField{
		textField(labelTitle, draft.Title),
		textField(labelDescription, draft.Description),
	})
}

func collectRuleEditor(e *editor, draft *panel.RuleDraft) {
	draft.Title = e.value(labelTitle)
	draft.Description = e.value(labelDescription)
}

func facilityEditor(title string, draft *panel.FacilityDraft) editor {
	return newEditor(title, []editorField{textField(labelName, draft.Name)})
}

func collectFacilityEditor(e *editor, draft *panel.FacilityDraft) {
	draft.Name = e.value(labelName)
}

func kostEditor(draft *models.Kost) editor {
	return newEditor("Kost Profile", []editorField{
		textField(labelName, draft.Name),
		textField(labelAddress, draft.Address),
		textField(labelWhatsapp, draft.Whatsapp),
		textField(labelMapsURL, draft.GoogleMapsURL),
		textField(labelVisitHours, draft.VisitingHours),
	})
}

func collectKostEditor(e *editor, draft *models.Kost) {
	draft.Name = e.value(labelName)
	draft.Address = e.value(labelAddress)
	draft.Whatsapp = e.value(labelWhatsapp)
	draft.GoogleMapsURL = e.value(labelMapsURL)
	draft.VisitingHours = e.value(labelVisitHours)
}
