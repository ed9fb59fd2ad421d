package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/deckpad/internal/controller"
	"github.com/llehouerou/deckpad/internal/profile"
)

func testAssignments(t *testing.T) *Assignments {
	t.Helper()
	a, err := OpenAssignmentsPath(filepath.Join(t.TempDir(), "deckpad.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestAssignments_SetGet(t *testing.T) {
	a := testAssignments(t)

	name, err := a.Get("DualShock 4")
	require.NoError(t, err)
	assert.Empty(t, name, "unassigned controller resolves to empty")

	require.NoError(t, a.Set("DualShock 4", "my profile", 18, 4))
	name, err = a.Get("DualShock 4")
	require.NoError(t, err)
	assert.Equal(t, "my profile", name)

	// Overwrite.
	require.NoError(t, a.Set("DualShock 4", "other", 18, 4))
	name, err = a.Get("DualShock 4")
	require.NoError(t, err)
	assert.Equal(t, "other", name)
}

func TestAssignments_Remove(t *testing.T) {
	a := testAssignments(t)

	require.NoError(t, a.Set("Xbox One", "p", 17, 4))
	require.NoError(t, a.Remove("Xbox One"))
	name, err := a.Get("Xbox One")
	require.NoError(t, err)
	assert.Empty(t, name)

	assert.NoError(t, a.Remove("Xbox One"))
}

func TestAssignments_Reassign(t *testing.T) {
	a := testAssignments(t)

	require.NoError(t, a.Set("Xbox One", "old", 17, 4))
	require.NoError(t, a.Set("DualShock 4", "old", 18, 4))
	require.NoError(t, a.Set("DualSense", "kept", 18, 4))

	require.NoError(t, a.Reassign("old", "new"))
	for _, controller := range []string{"Xbox One", "DualShock 4"} {
		name, err := a.Get(controller)
		require.NoError(t, err)
		assert.Equal(t, "new", name)
	}
	name, err := a.Get("DualSense")
	require.NoError(t, err)
	assert.Equal(t, "kept", name)

	// Reassign to empty deletes.
	require.NoError(t, a.Reassign("new", ""))
	name, err = a.Get("Xbox One")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestAssignments_GetByCounts(t *testing.T) {
	a := testAssignments(t)

	require.NoError(t, a.Set("DualShock 4", "sony profile", 18, 4))
	require.NoError(t, a.Set("Wii Remote", "wii profile", 8, 0))

	name, err := a.GetByCounts(18, 4)
	require.NoError(t, err)
	assert.Equal(t, "sony profile", name)

	name, err = a.GetByCounts(8, 0)
	require.NoError(t, err)
	assert.Equal(t, "wii profile", name)

	name, err = a.GetByCounts(17, 4)
	require.NoError(t, err)
	assert.Empty(t, name, "no assignment with these counts")
}

func TestAssignments_Controllers(t *testing.T) {
	a := testAssignments(t)

	require.NoError(t, a.Set("Xbox One", "p", 17, 4))
	require.NoError(t, a.Set("DualSense", "p", 18, 4))

	controllers, err := a.Controllers()
	require.NoError(t, err)
	assert.Len(t, controllers, 2)
	assert.Contains(t, controllers, "Xbox One")
	assert.Contains(t, controllers, "DualSense")
}

func testManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	profiles, err := OpenDir(filepath.Join(dir, "profiles"))
	require.NoError(t, err)
	assign, err := OpenAssignmentsPath(filepath.Join(dir, "deckpad.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = assign.Close() })
	return &Manager{Profiles: profiles, Assign: assign}
}

func TestManager_FindProfile_Assigned(t *testing.T) {
	m := testManager(t)

	p, err := profile.Default("DualShock 4")
	require.NoError(t, err)
	p.Name = "custom"
	require.NoError(t, m.Profiles.Save(p))
	require.NoError(t, m.Assign.Set("DualShock 4", "custom", 18, 4))

	found, err := m.FindProfile("DualShock 4", 18, 4)
	require.NoError(t, err)
	assert.Equal(t, "custom", found.Name)
}

func TestManager_FindProfile_AssignmentToDeletedProfile(t *testing.T) {
	m := testManager(t)

	require.NoError(t, m.Assign.Set("DualShock 4", "ghost", 18, 4))

	// Assignment points nowhere: falls through to the controller default,
	// which gets created and saved.
	found, err := m.FindProfile("DualShock 4", 18, 4)
	require.NoError(t, err)
	assert.Equal(t, "DualShock 4", found.Name)
	assert.True(t, m.Profiles.Exists("DualShock 4"))
}

func TestManager_FindProfile_StandardNameAssignment(t *testing.T) {
	m := testManager(t)

	standard := controller.StandardName(16, 4)
	p, err := profile.Default(standard)
	require.NoError(t, err)
	p.Name = "custom"
	require.NoError(t, m.Profiles.Save(p))
	require.NoError(t, m.Assign.Set(standard, "custom", 16, 4))

	// An unidentified pad resolves its assignment through the
	// synthesised standard name.
	found, err := m.FindProfile("", 16, 4)
	require.NoError(t, err)
	assert.Equal(t, "custom", found.Name)
}

func TestManager_FindProfile_CountsFallback(t *testing.T) {
	m := testManager(t)

	p, err := profile.Default("DualShock 4")
	require.NoError(t, err)
	p.Name = "shared"
	require.NoError(t, m.Profiles.Save(p))
	require.NoError(t, m.Assign.Set("DualShock 4", "shared", 18, 4))

	// DualSense reports the same counts and has no assignment of its
	// own, so the recorded counts act as a fallback key.
	found, err := m.FindProfile("DualSense", 18, 4)
	require.NoError(t, err)
	assert.Equal(t, "shared", found.Name)

	// Different counts do not match; a new default is created instead.
	found, err = m.FindProfile("Wii Remote", 8, 0)
	require.NoError(t, err)
	assert.Equal(t, "Wii Remote", found.Name)
}

func TestManager_FindProfile_Unidentified(t *testing.T) {
	m := testManager(t)

	found, err := m.FindProfile("", 16, 4)
	require.NoError(t, err)
	assert.Equal(t, "Standard Gamepad (16 Buttons 4 Axes)", found.Name)
	assert.Equal(t, 16, found.LenButtons)
}

func TestManager_DeleteProfile_ClearsAssignments(t *testing.T) {
	m := testManager(t)

	p, err := profile.Default("Xbox One")
	require.NoError(t, err)
	p.Name = "doomed"
	require.NoError(t, m.Profiles.Save(p))
	require.NoError(t, m.Assign.Set("Xbox One", "doomed", 17, 4))

	require.NoError(t, m.DeleteProfile("doomed"))
	name, err := m.Assign.Get("Xbox One")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestManager_RenameProfile_FollowsAssignments(t *testing.T) {
	m := testManager(t)

	p, err := profile.Default("Xbox One")
	require.NoError(t, err)
	p.Name = "old"
	require.NoError(t, m.Profiles.Save(p))
	require.NoError(t, m.Assign.Set("Xbox One", "old", 17, 4))

	require.NoError(t, m.RenameProfile("old", "new"))
	name, err := m.Assign.Get("Xbox One")
	require.NoError(t, err)
	assert.Equal(t, "new", name)
	assert.True(t, m.Profiles.Exists("new"))
	assert.False(t, m.Profiles.Exists("old"))
}
