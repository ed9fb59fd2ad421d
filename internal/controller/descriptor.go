// Package controller provides static descriptors for known game controllers.
package controller

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownController is returned when a controller name is not in the registry.
var ErrUnknownController = errors.New("unknown controller")

// Descriptor describes the button and axis layout of a controller model.
// Descriptors are immutable reference data shared by every profile that
// names the controller.
type Descriptor struct {
	Name    string
	Buttons map[int]string // button index -> display name
	Axes    map[int]string // axis index -> display name
}

// Describe returns the descriptor for a controller name.
func Describe(name string) (Descriptor, error) {
	if d, ok := registry[name]; ok {
		return d, nil
	}
	if d, ok := parseStandardName(name); ok {
		return d, nil
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownController, name)
}

// List returns the registered controller names in display order.
func List() []string {
	names := make([]string, len(registryOrder))
	copy(names, registryOrder)
	return names
}

// ButtonName returns the display name for a button index, or empty if the
// index is not part of the layout.
func (d Descriptor) ButtonName(index int) string {
	return d.Buttons[index]
}

// ButtonIndices returns the button indices in ascending order.
func (d Descriptor) ButtonIndices() []int {
	indices := make([]int, 0, len(d.Buttons))
	for i := range d.Buttons {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// HasStick reports whether the controller has at least one analog stick.
func (d Descriptor) HasStick() bool {
	return len(d.Axes) >= 2
}

// DpadButtons returns the button indices for d-pad up, down, left and right,
// if the layout has a d-pad.
func (d Descriptor) DpadButtons() ([4]int, bool) {
	var dpad [4]int
	found := 0
	for i, name := range d.Buttons {
		switch name {
		case "D-Pad Up":
			dpad[0], found = i, found+1
		case "D-Pad Down":
			dpad[1], found = i, found+1
		case "D-Pad Left":
			dpad[2], found = i, found+1
		case "D-Pad Right":
			dpad[3], found = i, found+1
		}
	}
	return dpad, found == 4
}

// StickButton returns the index of the primary stick click button, if any.
func (d Descriptor) StickButton() (int, bool) {
	for _, name := range []string{"Left Stick", "Stick"} {
		for i, button := range d.Buttons {
			if button == name {
				return i, true
			}
		}
	}
	return 0, false
}
