package profile

import (
	"fmt"
	"sort"
	"strings"
)

// inheritedMarker tags display text for bindings that come from a fallback
// layer, e.g. `Undo (inherited)`. Such text must never be stored as a
// literal action name.
const inheritedMarker = "(inherited)"

// InheritedLabel formats an action for display as an inherited entry.
func InheritedLabel(action string) string {
	if action == "" {
		return ""
	}
	return action + " " + inheritedMarker
}

// EffectiveAction resolves the action bound to (state, mod, button),
// applying the inheritance chain:
//
//  1. an explicit binding for the state itself wins, inherited = false;
//  2. otherwise the "all" layer applies;
//  3. for question and answer, the "review" layer applies and takes
//     precedence over "all".
//
// The review-over-all precedence is a deliberate policy: review is the more
// specific layer for the two card-facing states, so when both layers bind
// the same button the review binding wins.
//
// Pure function of the profile state; an unbound triple resolves to the
// empty action with inherited = false.
func (p *Profile) EffectiveAction(state State, mod, button int) (action string, inherited bool) {
	if a := p.Bindings[Key{state, mod, button}]; a != "" {
		return a, false
	}
	if state != StateAll {
		if a := p.Bindings[Key{StateAll, mod, button}]; a != "" {
			action = a
		}
	}
	if state.ReviewLike() {
		if a := p.Bindings[Key{StateReview, mod, button}]; a != "" {
			action = a
		}
	}
	return action, action != ""
}

// SetBinding stores an action for (state, mod, button). Binding a modifier
// button or an out-of-range index fails with ErrInvalidBinding before any
// mutation. An empty action, or one carrying the inherited display marker,
// clears the stored binding so resolution falls through to the fallback
// layers.
//
// Action names are not validated against any dispatch table: unknown names
// are inert at dispatch time by design, so custom actions never need
// registration here.
func (p *Profile) SetBinding(state State, mod, button int, action string) error {
	if !state.Valid() {
		return fmt.Errorf("%w: unknown state %q", ErrInvalidBinding, state)
	}
	if !p.validMod(mod) {
		return fmt.Errorf("%w: modifier %d out of range", ErrInvalidBinding, mod)
	}
	if p.IsMod(button) {
		return fmt.Errorf("%w: button %d is a modifier", ErrInvalidBinding, button)
	}
	if !p.validButton(button) {
		return fmt.Errorf("%w: button %d out of range", ErrInvalidBinding, button)
	}
	key := Key{state, mod, button}
	if action == "" || strings.Contains(action, inheritedMarker) {
		delete(p.Bindings, key)
		return nil
	}
	p.Bindings[key] = action
	return nil
}

// BindableButtons returns the controller's button indices excluding the
// modifier buttons, in ascending order.
func (p *Profile) BindableButtons() ([]int, error) {
	d, err := p.Descriptor()
	if err != nil {
		return nil, err
	}
	buttons := make([]int, 0, len(d.Buttons))
	for index := range d.Buttons {
		if !p.IsMod(index) {
			buttons = append(buttons, index)
		}
	}
	sort.Ints(buttons)
	return buttons, nil
}
