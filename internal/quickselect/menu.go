// Package quickselect models the secondary radial action menu. It tracks
// visibility and the current selection from d-pad or stick input; the host
// owns all rendering and dispatches the activated action.
package quickselect

import (
	"math"

	"github.com/llehouerou/deckpad/internal/profile"
)

// Entries are laid out clockwise starting from the top, so the stick
// direction maps straight onto an entry index.
const selectThreshold = 0.5

// Menu is the selection model for one profile's quick select settings.
// Zero selection state is "nothing selected"; methods on a hidden menu
// are no-ops.
type Menu struct {
	settings profile.QuickSelect

	state    profile.State
	actions  []string
	shown    bool
	selected int
}

// New builds a menu for the given settings.
func New(settings profile.QuickSelect) *Menu {
	return &Menu{settings: settings, selected: -1}
}

// Settings returns the settings the menu was built with.
func (m *Menu) Settings() profile.QuickSelect {
	return m.settings
}

// Show opens the menu with the action list configured for state. A state
// with no configured actions leaves the menu hidden.
func (m *Menu) Show(state profile.State) {
	actions := m.settings.Actions[state]
	if len(actions) == 0 {
		return
	}
	m.state = state
	m.actions = actions
	m.shown = true
	m.selected = -1
}

// Hide closes the menu without activating anything.
func (m *Menu) Hide() {
	m.shown = false
	m.selected = -1
	m.actions = nil
}

// Shown reports whether the menu is open.
func (m *Menu) Shown() bool {
	return m.shown
}

// State returns the state the menu was opened for.
func (m *Menu) State() profile.State {
	return m.state
}

// Actions returns the entries currently on display, clockwise from the
// top.
func (m *Menu) Actions() []string {
	return m.actions
}

// Selected returns the highlighted action, if any.
func (m *Menu) Selected() (string, bool) {
	if !m.shown || m.selected < 0 || m.selected >= len(m.actions) {
		return "", false
	}
	return m.actions[m.selected], true
}

// SelectedIndex returns the highlighted entry index, or -1.
func (m *Menu) SelectedIndex() int {
	if !m.shown {
		return -1
	}
	return m.selected
}

// Activate closes the menu and returns the action to run, if one was
// highlighted.
func (m *Menu) Activate() (string, bool) {
	action, ok := m.Selected()
	m.Hide()
	return action, ok
}

// StickSelect updates the selection from a stick position. Inside the
// dead zone the selection is kept, so a flick holds until activated.
func (m *Menu) StickSelect(x, y float64) {
	if !m.shown || !m.settings.SelectWithStick {
		return
	}
	m.selectDirection(x, y)
}

// DpadSelect updates the selection from d-pad button states, treating
// the pressed directions as a direction vector.
func (m *Menu) DpadSelect(up, down, left, right bool) {
	if !m.shown || !m.settings.SelectWithDpad {
		return
	}
	var x, y float64
	if right {
		x++
	}
	if left {
		x--
	}
	if down {
		y++
	}
	if up {
		y--
	}
	m.selectDirection(x, y)
}

func (m *Menu) selectDirection(x, y float64) {
	if len(m.actions) == 0 || math.Hypot(x, y) < selectThreshold {
		return
	}
	// Angle measured clockwise from straight up.
	angle := math.Atan2(x, -y)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	sector := 2 * math.Pi / float64(len(m.actions))
	m.selected = int(math.Round(angle/sector)) % len(m.actions)
}
