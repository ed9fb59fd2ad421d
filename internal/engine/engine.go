// Package engine turns controller input snapshots into action dispatches.
// The host's input layer feeds it connect/disconnect events and polled
// button/axis states; the engine edge-detects against the previous
// snapshot, resolves each press through the active profile and dispatches
// into the action registry. All rendering stays with the host.
package engine

import (
	"go.uber.org/zap"

	"github.com/llehouerou/deckpad/internal/actions"
	"github.com/llehouerou/deckpad/internal/controller"
	"github.com/llehouerou/deckpad/internal/profile"
	"github.com/llehouerou/deckpad/internal/quickselect"
)

// Menu control actions handled by the engine itself rather than the
// registry.
const (
	actionToggleQuickSelect = "Toggle Quick Select"
	actionShowQuickSelect   = "Show Quick Select"
)

// axisThreshold is where an axis in the Buttons role registers as a
// virtual button press.
const axisThreshold = 0.5

// Pointer receives cursor and scroll movement accumulated from axes. The
// host implements it against its own windowing layer.
type Pointer interface {
	MoveMouse(dx, dy float64)
	Scroll(dx, dy float64)
}

// ProfileSource resolves the profile to load for a connected controller.
// *store.Manager satisfies it.
type ProfileSource interface {
	FindProfile(controllerName string, buttons, axes int) (*profile.Profile, error)
}

// Options configures an Engine.
type Options struct {
	Log              *zap.Logger
	Registry         *actions.Registry
	Pointer          Pointer
	Profiles         ProfileSource
	DetectEightBitDo bool
}

// Engine holds the per-controller session state between polls. Not safe
// for concurrent use; the host polls from a single goroutine.
type Engine struct {
	log      *zap.Logger
	registry *actions.Registry
	pointer  Pointer
	profiles ProfileSource
	detect   bool

	connected      bool
	controllerName string
	profile        *profile.Profile
	desc           controller.Descriptor
	menu           *quickselect.Menu

	buttons    []bool
	axisLatch  []bool
	flickArmed bool
}

// New builds an engine. A nil Pointer discards cursor and scroll
// movement; a nil Log disables logging.
func New(opts Options) *Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = actions.NewRegistry()
	}
	pointer := opts.Pointer
	if pointer == nil {
		pointer = nopPointer{}
	}
	return &Engine{
		log:      log,
		registry: registry,
		pointer:  pointer,
		profiles: opts.Profiles,
		detect:   opts.DetectEightBitDo,
		menu:     quickselect.New(profile.QuickSelect{}),
	}
}

// Connected reports whether a controller session is active.
func (e *Engine) Connected() bool {
	return e.connected
}

// Profile returns the active profile, or nil.
func (e *Engine) Profile() *profile.Profile {
	return e.profile
}

// ControllerName returns the identified name of the connected controller,
// or empty when identification failed.
func (e *Engine) ControllerName() string {
	return e.controllerName
}

// Menu exposes the quick select model so the host can render it.
func (e *Engine) Menu() *quickselect.Menu {
	return e.menu
}

// Connect starts a session for a controller reported by the host's input
// layer. The profile comes from the assignment registry, falling back to
// a generated default.
func (e *Engine) Connect(id string, buttons, axes int) error {
	e.reset()

	name, ok := controller.Identify(id, buttons, axes, e.detect)
	if !ok {
		name = ""
		e.log.Info("unknown controller connected", zap.String("id", id),
			zap.Int("buttons", buttons), zap.Int("axes", axes))
	}

	p, err := e.profiles.FindProfile(name, buttons, axes)
	if err != nil {
		return err
	}
	if err := e.SetProfile(p); err != nil {
		return err
	}

	e.controllerName = name
	e.buttons = make([]bool, buttons)
	e.axisLatch = make([]bool, axes)
	e.connected = true
	e.log.Info("controller connected",
		zap.String("controller", name),
		zap.String("profile", p.Name))
	return nil
}

// Disconnect ends the session and clears all input state.
func (e *Engine) Disconnect() {
	if e.connected {
		e.log.Info("controller disconnected", zap.String("controller", e.controllerName))
	}
	e.reset()
}

// SetProfile swaps the active profile, as after an edit session saves.
func (e *Engine) SetProfile(p *profile.Profile) error {
	desc, err := p.Descriptor()
	if err != nil {
		return err
	}
	e.profile = p
	e.desc = desc
	e.menu = quickselect.New(p.QuickSelect)
	return nil
}

func (e *Engine) reset() {
	e.connected = false
	e.controllerName = ""
	e.profile = nil
	e.menu.Hide()
	e.buttons = nil
	e.axisLatch = nil
	e.flickArmed = false
}

// Poll processes one input snapshot for the given application state.
// Buttons shorter than the connect-time count are treated as released.
func (e *Engine) Poll(state profile.State, buttons []bool, axes []float64) {
	if !e.connected || e.profile == nil {
		return
	}

	if e.menu.Shown() {
		buttons = e.updateQuickSelect(buttons, axes)
	}

	mod := e.currentMod(buttons)

	for i := range e.buttons {
		value := i < len(buttons) && buttons[i]
		if value == e.buttons[i] {
			continue
		}
		e.buttons[i] = value
		if e.profile.IsMod(i) {
			continue
		}
		if value {
			e.press(state, mod, i)
		} else {
			e.release(state, mod, i)
		}
	}

	if !e.menu.Shown() {
		e.pollAxes(state, mod, axes)
	}
}

// currentMod returns the binding layer for the held modifier, the
// lowest-indexed held modifier winning. Layer 0 is no modifier.
func (e *Engine) currentMod(buttons []bool) int {
	for layer, button := range e.profile.Mods {
		if button < len(buttons) && buttons[button] {
			return layer + 1
		}
	}
	return 0
}

func (e *Engine) press(state profile.State, mod, button int) {
	action, _ := e.profile.EffectiveAction(state, mod, button)
	switch action {
	case "":
	case actionToggleQuickSelect:
		if e.menu.Shown() {
			e.menu.Hide()
		} else {
			e.menu.Show(state)
		}
	case actionShowQuickSelect:
		e.menu.Show(state)
	default:
		if !e.registry.Press(action) {
			e.log.Debug("action has no handler", zap.String("action", action))
		}
	}
}

func (e *Engine) release(state profile.State, mod, button int) {
	action, _ := e.profile.EffectiveAction(state, mod, button)
	switch action {
	case "":
	case actionShowQuickSelect:
		e.activateMenuIfConfigured()
		e.menu.Hide()
	case actionToggleQuickSelect:
	default:
		e.registry.Release(action)
	}
}

// updateQuickSelect routes d-pad and stick input to the open menu and
// handles its activation buttons. Absorbed buttons are committed to the
// previous snapshot up front so edge detection never sees them.
func (e *Engine) updateQuickSelect(buttons []bool, axes []float64) []bool {
	pressed := func(i int) bool { return i < len(buttons) && buttons[i] }
	absorb := func(i int) {
		if i < len(e.buttons) {
			e.buttons[i] = pressed(i)
		}
	}

	if dpad, ok := e.desc.DpadButtons(); ok && e.menu.Settings().SelectWithDpad &&
		(pressed(dpad[0]) || pressed(dpad[1]) || pressed(dpad[2]) || pressed(dpad[3])) {
		e.menu.DpadSelect(pressed(dpad[0]), pressed(dpad[1]), pressed(dpad[2]), pressed(dpad[3]))
		for _, i := range dpad {
			absorb(i)
		}
	} else if e.desc.HasStick() && len(axes) >= 2 {
		e.menu.StickSelect(axes[0], axes[1])
		e.trackFlick(axes[0], axes[1])
	}

	activate := false
	if stick, ok := e.desc.StickButton(); ok && e.menu.Settings().ActOnStickPress && pressed(stick) {
		activate = true
		absorb(stick)
	}
	if pressed(0) {
		activate = true
		absorb(0)
	}
	if activate {
		e.activate()
	}

	return buttons
}

// trackFlick activates the selection when the stick returns to centre
// after pointing, if the profile asks for flick activation.
func (e *Engine) trackFlick(x, y float64) {
	if !e.menu.Settings().ActOnStickFlick {
		return
	}
	deflected := x*x+y*y >= axisThreshold*axisThreshold
	if deflected {
		e.flickArmed = true
		return
	}
	if e.flickArmed {
		e.flickArmed = false
		e.activate()
	}
}

func (e *Engine) activate() {
	if action, ok := e.menu.Activate(); ok {
		if !e.registry.Press(action) {
			e.log.Debug("quick select action has no handler", zap.String("action", action))
		}
	}
}

func (e *Engine) activateMenuIfConfigured() {
	if e.menu.Settings().ActOnRelease {
		e.activate()
	}
}

// pollAxes handles axis movement outside quick select. Axes in the
// Buttons role latch on the 0.5 threshold and press their virtual button
// on the rising edge; cursor and scroll roles accumulate into the
// pointer with inversion applied.
func (e *Engine) pollAxes(state profile.State, mod int, axes []float64) {
	var mouseX, mouseY, scrollX, scrollY float64

	for axis, role := range e.profile.AxisRoles {
		if axis >= len(axes) {
			continue
		}
		value := axes[axis]
		if role == profile.AxisButtons {
			active := value > axisThreshold || value < -axisThreshold
			if active && axis < len(e.axisLatch) && !e.axisLatch[axis] {
				e.press(state, mod, profile.AxisButton(axis, value > 0))
			}
			if axis < len(e.axisLatch) {
				e.axisLatch[axis] = active
			}
			continue
		}
		if e.profile.InvertAxis[axis] {
			value = -value
		}
		switch role {
		case profile.AxisCursorHorizontal:
			mouseX = value
		case profile.AxisCursorVertical:
			mouseY = value
		case profile.AxisScrollHorizontal:
			scrollX = value
		case profile.AxisScrollVertical:
			scrollY = value
		}
	}

	if mouseX != 0 || mouseY != 0 {
		e.pointer.MoveMouse(mouseX, mouseY)
	}
	if scrollX != 0 || scrollY != 0 {
		e.pointer.Scroll(scrollX, scrollY)
	}
}

type nopPointer struct{}

func (nopPointer) MoveMouse(float64, float64) {}
func (nopPointer) Scroll(float64, float64)    {}
