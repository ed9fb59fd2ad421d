package profile

import (
	"errors"
	"fmt"
	"hash/fnv"
	"slices"

	"github.com/llehouerou/deckpad/internal/controller"
)

// ErrInvalidBinding is returned when a binding targets a modifier button or
// an index outside the controller's layout.
var ErrInvalidBinding = errors.New("invalid binding")

// Key identifies a single binding. Mod is 0 for "no modifier held",
// otherwise a 1-based index into the profile's Mods slice.
type Key struct {
	State  State
	Mod    int
	Button int
}

// QuickSelect holds the settings and per-state action lists for the
// quick select menu.
type QuickSelect struct {
	SelectWithStick bool
	SelectWithDpad  bool
	ActOnRelease    bool
	ActOnStickPress bool
	ActOnStickFlick bool
	Actions         map[State][]string
}

// Profile maps controller input to actions for each application state.
// A profile is owned by a single edit session at a time; it is mutated in
// place and persisted on explicit save.
type Profile struct {
	Name       string
	Controller string // descriptor name, resolved via controller.Describe
	LenButtons int
	LenAxes    int

	// Mods lists the button indices acting as modifiers. A held modifier
	// selects an alternate binding layer; modifier buttons themselves are
	// not bindable.
	Mods []int

	Bindings   map[Key]string
	AxisRoles  map[int]AxisRole
	InvertAxis map[int]bool

	QuickSelect QuickSelect
}

// New creates an empty profile for the named controller.
func New(name, controllerName string) (*Profile, error) {
	d, err := controller.Describe(controllerName)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Name:       name,
		Controller: controllerName,
		LenButtons: len(d.Buttons),
		LenAxes:    len(d.Axes),
		Bindings:   make(map[Key]string),
		AxisRoles:  make(map[int]AxisRole, len(d.Axes)),
		InvertAxis: make(map[int]bool, len(d.Axes)),
		QuickSelect: QuickSelect{
			Actions: make(map[State][]string),
		},
	}
	for axis := range d.Axes {
		p.AxisRoles[axis] = AxisUnassigned
		p.InvertAxis[axis] = false
	}
	return p, nil
}

// Descriptor resolves the profile's controller descriptor.
func (p *Profile) Descriptor() (controller.Descriptor, error) {
	return controller.Describe(p.Controller)
}

// SetController switches the profile to another controller and refreshes
// the derived sizes and axis maps. Bindings are kept; indices beyond the
// new layout simply stop resolving.
func (p *Profile) SetController(name string) error {
	d, err := controller.Describe(name)
	if err != nil {
		return err
	}
	p.Controller = name
	p.LenButtons = len(d.Buttons)
	p.LenAxes = len(d.Axes)
	for axis := range d.Axes {
		if _, ok := p.AxisRoles[axis]; !ok {
			p.AxisRoles[axis] = AxisUnassigned
		}
		if _, ok := p.InvertAxis[axis]; !ok {
			p.InvertAxis[axis] = false
		}
	}
	return nil
}

// IsMod reports whether a button index is one of the profile's modifiers.
func (p *Profile) IsMod(button int) bool {
	return slices.Contains(p.Mods, button)
}

// validButton reports whether a button index exists in the layout, counting
// the virtual buttons of axes.
func (p *Profile) validButton(button int) bool {
	if axis, _, ok := AxisForButton(button); ok {
		return axis < p.LenAxes
	}
	return button >= 0 && button < p.LenButtons
}

// validMod reports whether mod is 0 or a 1-based index into Mods.
func (p *Profile) validMod(mod int) bool {
	return mod >= 0 && mod <= len(p.Mods)
}

// Clone returns a deep copy for an edit session.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Mods = slices.Clone(p.Mods)
	c.Bindings = make(map[Key]string, len(p.Bindings))
	for k, v := range p.Bindings {
		c.Bindings[k] = v
	}
	c.AxisRoles = make(map[int]AxisRole, len(p.AxisRoles))
	for k, v := range p.AxisRoles {
		c.AxisRoles[k] = v
	}
	c.InvertAxis = make(map[int]bool, len(p.InvertAxis))
	for k, v := range p.InvertAxis {
		c.InvertAxis[k] = v
	}
	c.QuickSelect.Actions = make(map[State][]string, len(p.QuickSelect.Actions))
	for state, actions := range p.QuickSelect.Actions {
		c.QuickSelect.Actions[state] = slices.Clone(actions)
	}
	return &c
}

// Fingerprint returns a stable hash of the profile contents, used to detect
// unsaved changes in an edit session.
func (p *Profile) Fingerprint() (uint64, error) {
	data, err := p.EncodeTOML()
	if err != nil {
		return 0, fmt.Errorf("fingerprint profile: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}
