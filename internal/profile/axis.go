package profile

// AxisRole assigns a function to a controller axis.
type AxisRole string

const (
	AxisUnassigned       AxisRole = "Unassigned"
	AxisButtons          AxisRole = "Buttons"
	AxisCursorHorizontal AxisRole = "Cursor Horizontal"
	AxisCursorVertical   AxisRole = "Cursor Vertical"
	AxisScrollHorizontal AxisRole = "Scroll Horizontal"
	AxisScrollVertical   AxisRole = "Scroll Vertical"
)

// AxisRoles returns the selectable roles in display order.
func AxisRoles() []AxisRole {
	return []AxisRole{
		AxisUnassigned,
		AxisButtons,
		AxisCursorHorizontal,
		AxisCursorVertical,
		AxisScrollHorizontal,
		AxisScrollVertical,
	}
}

// Valid reports whether r is a recognised role.
func (r AxisRole) Valid() bool {
	for _, role := range AxisRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// Axes with role Buttons dispatch as a pair of virtual buttons, one per
// direction, numbered from axisButtonBase so they never collide with real
// button indices.
const axisButtonBase = 100

// AxisButton returns the virtual button index for an axis direction.
// Positive selects the positive end of the axis.
func AxisButton(axis int, positive bool) int {
	index := axisButtonBase + 2*axis
	if positive {
		index++
	}
	return index
}

// AxisForButton resolves a virtual button index back to its axis, or
// returns false for ordinary button indices.
func AxisForButton(button int) (axis int, positive bool, ok bool) {
	if button < axisButtonBase {
		return 0, false, false
	}
	offset := button - axisButtonBase
	return offset / 2, offset%2 == 1, true
}
