package store

import (
	"github.com/llehouerou/deckpad/internal/controller"
	"github.com/llehouerou/deckpad/internal/profile"
)

// Manager ties the profile documents and the assignment registry together
// so callers get rename/delete consistency and connect-time resolution in
// one place.
type Manager struct {
	Profiles *Store
	Assign   *Assignments
}

// NewManager opens both backing stores at their default locations.
func NewManager() (*Manager, error) {
	profiles, err := Open()
	if err != nil {
		return nil, err
	}
	assign, err := OpenAssignments()
	if err != nil {
		return nil, err
	}
	return &Manager{Profiles: profiles, Assign: assign}, nil
}

// Close releases the assignment database.
func (m *Manager) Close() error {
	return m.Assign.Close()
}

// FindProfile resolves the profile for a connected controller:
//
//  1. the assignment recorded under the controller name, when the profile
//     still exists; unidentified controllers are keyed by the synthesised
//     standard-gamepad name, so their assignments survive reconnects;
//  2. the most recent assignment recorded for a pad with the same button
//     and axis counts;
//  3. a stored profile named after the controller;
//  4. a freshly created default profile for the controller, saved so the
//     user can edit it.
//
// controllerName may be empty when identification failed.
func (m *Manager) FindProfile(controllerName string, buttons, axes int) (*profile.Profile, error) {
	name := controllerName
	if name == "" {
		name = controller.StandardName(buttons, axes)
	}

	if assigned, err := m.Assign.Get(name); err == nil && assigned != "" {
		if p, err := m.Profiles.Load(assigned); err == nil {
			return p, nil
		}
	}
	if assigned, err := m.Assign.GetByCounts(buttons, axes); err == nil && assigned != "" {
		if p, err := m.Profiles.Load(assigned); err == nil {
			return p, nil
		}
	}

	if p, err := m.Profiles.Load(name); err == nil {
		return p, nil
	}

	p, err := profile.Default(name)
	if err != nil {
		return nil, err
	}
	if err := m.Profiles.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProfile removes a profile and any assignments pointing at it.
func (m *Manager) DeleteProfile(name string) error {
	if err := m.Profiles.Delete(name); err != nil {
		return err
	}
	return m.Assign.Reassign(name, "")
}

// RenameProfile renames a profile and follows it in the assignment
// registry.
func (m *Manager) RenameProfile(oldName, newName string) error {
	if err := m.Profiles.Rename(oldName, newName); err != nil {
		return err
	}
	return m.Assign.Reassign(oldName, newName)
}
