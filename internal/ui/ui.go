package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/panel"
	"github.com/binarakost/kostctl/internal/shared"
	"github.com/binarakost/kostctl/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	ListView
	EditorView
	ConfirmView
)

// Tab enumerates the dashboard screens.
type Tab int

const (
	TabKost Tab = iota
	TabRooms
	TabNearby
	TabRules
	TabFacilities
)

var tabNames = []string{"Kost", "Rooms", "Nearby", "Rules", "Facilities"}

func (t Tab) String() string { return tabNames[t] }

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	tab    Tab
	admin  *api.AdminService
	panel  *panel.Panel
	poller *tasks.HealthPoller

	healthCh <-chan tasks.HealthStatus
	health   tasks.HealthStatus

	width  int
	height int

	resourceList list.Model
	listReady    bool
	ed           editor
	confirmID    int64
	filterIdx    int

	username   textinput.Model
	password   textinput.Model
	loginFocus int

	status string
	help   help.Model
	keys   keyMap
}

type loginDoneMsg struct{ err error }

type tabLoadedMsg struct {
	tab Tab
	err error
}

type savedMsg struct{ err error }

type deletedMsg struct{ err error }

type toggledMsg struct{ err error }

type healthMsg tasks.HealthStatus

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, admin *api.AdminService, p *panel.Panel, poller *tasks.HealthPoller) *Model {
	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "username"
	username.Focus()

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return &Model{
		ctx:       ctx,
		view:      LoginView,
		tab:       TabRooms,
		admin:     admin,
		panel:     p,
		poller:    poller,
		filterIdx: -1,
		username:  username,
		password:  password,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init starts the health poller and, when a session already exists, loads the
// first screen instead of asking for credentials again.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.poller != nil {
		m.healthCh = m.poller.Run(m.ctx)
		cmds = append(cmds, m.waitForHealth())
	}
	if m.admin.LoggedIn() {
		m.view = ListView
		cmds = append(cmds, m.loadTab(m.tab, 1), m.ensureCatalog())
	} else {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.resourceList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case ListView:
			return m.handleListKeys(msg)
		case EditorView:
			return m.handleEditorKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}

	case loginDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.view = ListView
		m.status = ""
		return m, tea.Batch(m.loadTab(m.tab, 1), m.ensureCatalog())

	case tabLoadedMsg:
		if msg.err != nil && (errors.Is(msg.err, shared.ErrUnauthorized) || errors.Is(msg.err, shared.ErrUnauthenticated)) {
			m.view = LoginView
			m.status = "Session expired, log in again"
			return m, textinput.Blink
		}
		if msg.tab != m.tab {
			return m, nil
		}
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = ""
		}
		m.rebuildList()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			// The form keeps its message; the editor stays open for retry.
			return m, nil
		}
		m.view = ListView
		m.status = "Saved"
		m.rebuildList()
		return m, nil

	case deletedMsg:
		m.view = ListView
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "Deleted"
		}
		m.rebuildList()
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		m.rebuildList()
		return m, nil

	case healthMsg:
		m.health = tasks.HealthStatus(msg)
		return m, m.waitForHealth()
	}

	if m.view == ListView && m.listReady {
		var cmd tea.Cmd
		m.resourceList, cmd = m.resourceList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case ListView:
		return m.renderList()
	case EditorView:
		return m.renderEditor()
	case ConfirmView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, nil
	case "enter":
		username := strings.TrimSpace(m.username.Value())
		password := m.password.Value()
		if username == "" || password == "" {
			m.status = "username and password are required"
			return m, nil
		}
		return m, func() tea.Msg {
			return loginDoneMsg{m.admin.Login(m.ctx, username, password)}
		}
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tab = Tab((int(m.tab) + 1) % len(tabNames))
		m.listReady = false
		m.status = ""
		return m, m.loadTab(m.tab, 1)
	case "r":
		return m, m.loadTab(m.tab, m.currentPage())
	case "left", "h":
		if coll := m.currentBounds(); coll.canPrev {
			return m, m.loadTab(m.tab, coll.page-1)
		}
		return m, nil
	case "right", "l":
		if coll := m.currentBounds(); coll.canNext {
			return m, m.loadTab(m.tab, coll.page+1)
		}
		return m, nil
	case "f":
		if m.tab == TabNearby {
			m.cycleFilter()
			return m, m.loadTab(m.tab, 1)
		}
		return m, nil
	case "a":
		if m.tab != TabKost {
			m.openAdd()
			return m, nil
		}
		return m, nil
	case "enter", "e":
		return m, m.openEditSelected()
	case "d":
		if id, ok := m.selectedID(); ok {
			m.confirmID = id
			m.view = ConfirmView
		}
		return m, nil
	case "t":
		if m.tab == TabRooms {
			if item, ok := m.resourceList.SelectedItem().(roomItem); ok {
				return m, func() tea.Msg {
					return toggledMsg{m.panel.ToggleAvailability(m.ctx, item.room)}
				}
			}
		}
		return m, nil
	}

	if m.listReady {
		var cmd tea.Cmd
		m.resourceList, cmd = m.resourceList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeForm()
		m.view = ListView
		return m, nil
	case "ctrl+s":
		return m, m.saveEditor()
	case "tab", "down":
		m.ed.next()
		return m, nil
	case "shift+tab", "up":
		m.ed.prev()
		return m, nil
	case " ":
		if m.ed.fields[m.ed.focus].kind != fieldText {
			if id, isFacility := m.ed.toggleFocused(); isFacility {
				m.panel.RoomForm.Draft().Toggle(id)
			}
			return m, nil
		}
	}

	return m, m.ed.updateFocused(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.confirmID
		m.confirmID = 0
		return m, func() tea.Msg {
			return deletedMsg{m.deleteByID(id)}
		}
	case "n", "esc", "q":
		m.confirmID = 0
		m.view = ListView
		return m, nil
	}
	return m, nil
}

type bounds struct {
	page    int
	canPrev bool
	canNext bool
}

func (m *Model) currentBounds() bounds {
	switch m.tab {
	case TabRooms:
		return bounds{m.panel.Rooms.Page(), m.panel.Rooms.CanPrev(), m.panel.Rooms.CanNext()}
	case TabNearby:
		return bounds{m.panel.Nearby.Page(), m.panel.Nearby.CanPrev(), m.panel.Nearby.CanNext()}
	case TabRules:
		return bounds{m.panel.Rules.Page(), m.panel.Rules.CanPrev(), m.panel.Rules.CanNext()}
	case TabFacilities:
		return bounds{m.panel.Facilities.Page(), m.panel.Facilities.CanPrev(), m.panel.Facilities.CanNext()}
	default:
		return bounds{page: 1}
	}
}

func (m *Model) currentPage() int { return m.currentBounds().page }

func (m *Model) cycleFilter() {
	m.filterIdx++
	if m.filterIdx >= len(models.NearbyCategories) {
		m.filterIdx = -1
	}
	if m.filterIdx < 0 {
		m.panel.Nearby.SetFilter("")
	} else {
		m.panel.Nearby.SetFilter(models.NearbyCategories[m.filterIdx])
	}
}

func (m *Model) openAdd() {
	switch m.tab {
	case TabRooms:
		m.panel.RoomForm.OpenAdd()
		m.ed = roomEditor("New Room", m.panel.RoomForm.Draft(), m.panel.Catalog.Items())
	case TabNearby:
		m.panel.NearbyForm.OpenAdd()
		m.ed = nearbyEditor("New Nearby Place", m.panel.NearbyForm.Draft())
	case TabRules:
		m.panel.RuleForm.OpenAdd()
		m.ed = ruleEditor("New Rule", m.panel.RuleForm.Draft())
	case TabFacilities:
		m.panel.FacilityForm.OpenAdd()
		m.ed = facilityEditor("New Facility", m.panel.FacilityForm.Draft())
	}
	m.view = EditorView
}

func (m *Model) openEditSelected() tea.Cmd {
	switch m.tab {
	case TabKost:
		if !m.panel.Kost.Loaded() {
			return nil
		}
		m.ed = kostEditor(m.panel.Kost.Draft())
		m.view = EditorView
	case TabRooms:
		if item, ok := m.resourceList.SelectedItem().(roomItem); ok {
			m.panel.RoomForm.OpenEdit(item.room)
			m.ed = roomEditor(fmt.Sprintf("Edit Room %s", item.room.Code), m.panel.RoomForm.Draft(), m.panel.Catalog.Items())
			m.view = EditorView
		}
	case TabNearby:
		if item, ok := m.resourceList.SelectedItem().(nearbyItem); ok {
			m.panel.NearbyForm.OpenEdit(item.place)
			m.ed = nearbyEditor(fmt.Sprintf("Edit %s", item.place.Name), m.panel.NearbyForm.Draft())
			m.view = EditorView
		}
	case TabRules:
		if item, ok := m.resourceList.SelectedItem().(ruleItem); ok {
			m.panel.RuleForm.OpenEdit(item.rule)
			m.ed = ruleEditor(fmt.Sprintf("Edit %s", item.rule.Title), m.panel.RuleForm.Draft())
			m.view = EditorView
		}
	case TabFacilities:
		if item, ok := m.resourceList.SelectedItem().(facilityItem); ok {
			m.panel.FacilityForm.OpenEdit(item.facility)
			m.ed = facilityEditor(fmt.Sprintf("Edit %s", item.facility.Name), m.panel.FacilityForm.Draft())
			m.view = EditorView
		}
	}
	return nil
}

func (m *Model) closeForm() {
	switch m.tab {
	case TabRooms:
		m.panel.RoomForm.Close()
	case TabNearby:
		m.panel.NearbyForm.Close()
	case TabRules:
		m.panel.RuleForm.Close()
	case TabFacilities:
		m.panel.FacilityForm.Close()
	}
}

func (m *Model) saveEditor() tea.Cmd {
	switch m.tab {
	case TabKost:
		collectKostEditor(&m.ed, m.panel.Kost.Draft())
		return func() tea.Msg { return savedMsg{m.panel.Kost.Save(m.ctx)} }
	case TabRooms:
		collectRoomEditor(&m.ed, m.panel.RoomForm.Draft())
		return func() tea.Msg { return savedMsg{m.panel.RoomForm.Save(m.ctx)} }
	case TabNearby:
		collectNearbyEditor(&m.ed, m.panel.NearbyForm.Draft())
		return func() tea.Msg { return savedMsg{m.panel.NearbyForm.Save(m.ctx)} }
	case TabRules:
		collectRuleEditor(&m.ed, m.panel.RuleForm.Draft())
		return func() tea.Msg { return savedMsg{m.panel.RuleForm.Save(m.ctx)} }
	case TabFacilities:
		collectFacilityEditor(&m.ed, m.panel.FacilityForm.Draft())
		return func() tea.Msg { return savedMsg{m.panel.FacilityForm.Save(m.ctx)} }
	}
	return nil
}

func (m *Model) deleteByID(id int64) error {
	confirmed := func() bool { return true }
	switch m.tab {
	case TabRooms:
		return m.panel.RoomForm.Delete(m.ctx, id, confirmed)
	case TabNearby:
		return m.panel.NearbyForm.Delete(m.ctx, id, confirmed)
	case TabRules:
		return m.panel.RuleForm.Delete(m.ctx, id, confirmed)
	case TabFacilities:
		return m.panel.FacilityForm.Delete(m.ctx, id, confirmed)
	}
	return nil
}

func (m *Model) selectedID() (int64, bool) {
	if !m.listReady {
		return 0, false
	}
	switch item := m.resourceList.SelectedItem().(type) {
	case roomItem:
		return item.room.ID, true
	case nearbyItem:
		return item.place.ID, true
	case ruleItem:
		return item.rule.ID, true
	case facilityItem:
		return item.facility.ID, true
	}
	return 0, false
}

func (m *Model) loadTab(tab Tab, page int) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch tab {
		case TabKost:
			err = m.panel.Kost.Load(m.ctx)
		case TabRooms:
			err = m.panel.Rooms.Load(m.ctx, page)
		case TabNearby:
			err = m.panel.Nearby.Load(m.ctx, page)
		case TabRules:
			err = m.panel.Rules.Load(m.ctx, page)
		case TabFacilities:
			err = m.panel.Facilities.Load(m.ctx, page)
		}
		return tabLoadedMsg{tab: tab, err: err}
	}
}

func (m *Model) ensureCatalog() tea.Cmd {
	return func() tea.Msg {
		m.panel.Catalog.Ensure(m.ctx)
		return nil
	}
}

func (m *Model) waitForHealth() tea.Cmd {
	return func() tea.Msg {
		status, ok := <-m.healthCh
		if !ok {
			return nil
		}
		return healthMsg(status)
	}
}

func (m *Model) rebuildList() {
	if m.tab == TabKost {
		return
	}

	var items []list.Item
	switch m.tab {
	case TabRooms:
		for _, room := range m.panel.Rooms.Items() {
			items = append(items, roomItem{room: room})
		}
	case TabNearby:
		for _, place := range m.panel.Nearby.Items() {
			items = append(items, nearbyItem{place: place})
		}
	case TabRules:
		for _, rule := range m.panel.Rules.Items() {
			items = append(items, ruleItem{rule: rule})
		}
	case TabFacilities:
		for _, facility := range m.panel.Facilities.Items() {
			items = append(items, facilityItem{facility: facility})
		}
	}

	m.resourceList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.resourceList.SetShowTitle(false)
	m.resourceList.SetShowStatusBar(false)
	m.resourceList.SetFilteringEnabled(false)
	m.resourceList.SetShowPagination(false)
	m.resourceList.SetShowHelp(false)
	m.listReady = true
}

func (m *Model) renderHeader() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = styles.title.Render("[" + name + "]")
		} else {
			tabs[i] = styles.help.Render(" " + name + " ")
		}
	}

	badge := styles.warn.Render("● checking")
	if m.health.CheckedAt.IsZero() {
		// keep the placeholder until the first probe lands
	} else if m.health.Up {
		badge = styles.ok.Render("● backend up")
	} else {
		badge = styles.err.Render("● backend down")
	}

	return strings.Join(tabs, " ") + "   " + badge
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("kostctl · Admin Login")

	userCursor, passCursor := "  ", "  "
	if m.loginFocus == 0 {
		userCursor = styles.title.Render("> ")
	} else {
		passCursor = styles.title.Render("> ")
	}

	body := fmt.Sprintf("%sUsername: %s\n%sPassword: %s",
		userCursor, m.username.View(), passCursor, m.password.View())

	status := ""
	if m.status != "" {
		status = "\n\n" + styles.err.Render(m.status)
	}

	helpView := m.help.ShortHelpView([]key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log in")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
		m.keys.quit,
	})

	return fmt.Sprintf("%s\n\n%s%s\n\n%s", title, body, status, helpView)
}

func (m *Model) renderList() string {
	header := m.renderHeader()

	var body, footer string
	switch m.tab {
	case TabKost:
		body = m.renderKostSummary()
		footer = styles.help.Render("e edit • tab next screen • q quit")
	default:
		if m.listReady {
			body = m.resourceList.View()
		} else {
			body = "Loading..."
		}
		footer = m.renderListFooter()
	}

	status := ""
	if m.status != "" {
		style := styles.warn
		if m.status == "Saved" || m.status == "Deleted" {
			style = styles.ok
		}
		status = "\n" + style.Render(m.status)
	}

	return fmt.Sprintf("%s\n\n%s\n%s%s\n\n%s", header, body, footer, status, m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m *Model) renderListFooter() string {
	var caption string
	switch m.tab {
	case TabRooms:
		caption = m.panel.Rooms.Caption()
	case TabNearby:
		caption = m.panel.Nearby.Caption()
		if filter := m.panel.Nearby.Filter(); filter != "" {
			caption = fmt.Sprintf("%s • %s only", caption, filter)
		}
	case TabRules:
		caption = m.panel.Rules.Caption()
	case TabFacilities:
		caption = m.panel.Facilities.Caption()
	}

	b := m.currentBounds()
	prev, next := "←", "→"
	if !b.canPrev {
		prev = styles.help.Render("←")
	}
	if !b.canNext {
		next = styles.help.Render("→")
	}
	return fmt.Sprintf("%s %s %s", prev, caption, next)
}

func (m *Model) renderKostSummary() string {
	if !m.panel.Kost.Loaded() {
		return "Loading profile..."
	}
	kost := m.panel.Kost.Draft()

	var b strings.Builder
	b.WriteString(styles.title.Render(kost.Name) + "\n")
	b.WriteString(fmt.Sprintf("Address: %s\n", kost.Address))
	if kost.Whatsapp != "" {
		b.WriteString(fmt.Sprintf("WhatsApp: %s (%s)\n", kost.Whatsapp, formatter.WALink(kost.Whatsapp, "")))
	}
	if kost.GoogleMapsURL != "" {
		b.WriteString(fmt.Sprintf("Maps: %s\n", kost.GoogleMapsURL))
	}
	if kost.VisitingHours != "" {
		b.WriteString(fmt.Sprintf("Visiting hours: %s\n", kost.VisitingHours))
	}
	return b.String()
}

func (m *Model) renderEditor() string {
	return fmt.Sprintf("%s\n\n%s\n%s", m.renderHeader(), m.ed.View(m.formMessage()),
		styles.help.Render("ctrl+s save • space toggle • tab/↑/↓ move • esc cancel"))
}

func (m *Model) formMessage() string {
	switch m.tab {
	case TabKost:
		return m.panel.Kost.Message()
	case TabRooms:
		return m.panel.RoomForm.Message()
	case TabNearby:
		return m.panel.NearbyForm.Message()
	case TabRules:
		return m.panel.RuleForm.Message()
	case TabFacilities:
		return m.panel.FacilityForm.Message()
	}
	return ""
}

func (m *Model) renderConfirm() string {
	title := styles.warn.Render(fmt.Sprintf("Delete %s #%d?", strings.TrimSuffix(strings.ToLower(m.tab.String()), "s"), m.confirmID))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.renderHeader(), title, helpView)
}
