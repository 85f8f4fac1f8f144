// Package ui implements the interactive admin dashboard using bubbletea's
// Elm architecture.
//
// The TUI is a tabbed workflow over the kost backend:
//  1. [LoginView] : Exchange credentials for a session token
//  2. [ListView] : Tabbed, paginated listings (kost profile, rooms, nearby
//     places, house rules, facility catalog)
//  3. [EditorView] : Modal add/edit form, including the facility checklist on
//     rooms
//  4. [ConfirmView] : Delete confirmation
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. All state and sequencing live in the panel controllers; the model
// only binds keys, issues commands, and renders. Backend health flows in
// through a channel from [tasks.HealthPoller] and is shown as a badge in the
// header.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l for pages, enter,
// esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
