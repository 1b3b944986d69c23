package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnAction      func()
	OnSelectHours func(hours int)
	OnMiniSession func()
	OnReset       func()
	OnQuit        func()
}

// PresetHours lists the work-hour presets offered in the menu.
var PresetHours = []int{4, 5, 6, 7, 8}

// Manager handles system tray state.
type Manager struct {
	callbacks   Callbacks
	actionLabel string
	clock       string
	running     bool
	setTitle    func(string)
	setMenu     func(*fyne.Menu)
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		callbacks:   callbacks,
		actionLabel: "Start",
	}
	if app != nil {
		manager.setMenu = app.SetSystemTrayMenu
		// Next to the icon, like a menu-bar clock.
		manager.setTitle = systray.SetTitle
	}
	manager.refreshMenu()
	return manager
}

// SetState updates the action caption and the remaining time, then rebuilds
// the menu once.
func (manager *Manager) SetState(actionLabel, clock string, running bool) {
	manager.actionLabel = actionLabel
	manager.clock = clock
	manager.running = running
	if manager.setTitle != nil {
		if running {
			manager.setTitle(clock)
		} else {
			manager.setTitle("")
		}
	}
	manager.refreshMenu()
}

// StatusLabel returns the text of the status line.
func (manager *Manager) StatusLabel() string {
	if !manager.running || manager.clock == "" {
		return "Status: idle"
	}
	return fmt.Sprintf("Status: %s", manager.clock)
}

// Menu builds the tray menu for the current state.
func (manager *Manager) Menu() *fyne.Menu {
	status := fyne.NewMenuItem(manager.StatusLabel(), nil)
	status.Disabled = true

	presets := make([]*fyne.MenuItem, 0, len(PresetHours))
	for _, hours := range PresetHours {
		hours := hours
		presets = append(presets, fyne.NewMenuItem(fmt.Sprintf("%d hours", hours), func() {
			if manager.callbacks.OnSelectHours != nil {
				manager.callbacks.OnSelectHours(hours)
			}
		}))
	}
	workHours := fyne.NewMenuItem("How long have you been working?", nil)
	workHours.ChildMenu = fyne.NewMenu("", presets...)

	return fyne.NewMenu("FinPom",
		status,
		manager.item("Open timer", manager.callbacks.OnOpen),
		manager.item(manager.actionLabel, manager.callbacks.OnAction),
		workHours,
		manager.item("Mini session (1 minute)", manager.callbacks.OnMiniSession),
		manager.item("Reset", manager.callbacks.OnReset),
		fyne.NewMenuItemSeparator(),
		manager.item("Quit", manager.callbacks.OnQuit),
	)
}

func (manager *Manager) item(label string, action func()) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if action != nil {
			action()
		}
	})
}

func (manager *Manager) refreshMenu() {
	if manager.setMenu != nil {
		manager.setMenu(manager.Menu())
	}
}
