package profile

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// profileDoc is the on-disk TOML shape of a profile:
//
//	name = "8BitDo Pro"
//	size = [17, 4]
//	controller = "8BitDo Pro"
//	mods = [16]
//
//	[quick_select]
//	[quick_select.actions]
//	[invert_axis]
//	[axes_bindings]
//	[bindings.<state>.<mod>]
//
// TOML table keys are strings, so indices are stringified on the way out
// and parsed back on the way in.
type profileDoc struct {
	Name       string `toml:"name"`
	Size       []int  `toml:"size"`
	Controller string `toml:"controller"`
	Mods       []int  `toml:"mods"`

	QuickSelect  quickSelectDoc                          `toml:"quick_select"`
	InvertAxis   map[string]bool                         `toml:"invert_axis"`
	AxesBindings map[string]string                       `toml:"axes_bindings"`
	Bindings     map[string]map[string]map[string]string `toml:"bindings"`
}

type quickSelectDoc struct {
	SelectWithStick bool                `toml:"Select with Stick"`
	SelectWithDpad  bool                `toml:"Select with D-Pad"`
	ActOnRelease    bool                `toml:"Do Action on Release"`
	ActOnStickPress bool                `toml:"Do Action on Stick Press"`
	ActOnStickFlick bool                `toml:"Do Action on Stick Flick"`
	Actions         map[string][]string `toml:"actions"`
}

// EncodeTOML serializes the profile to its TOML document form.
func (p *Profile) EncodeTOML() ([]byte, error) {
	doc := profileDoc{
		Name:       p.Name,
		Size:       []int{p.LenButtons, p.LenAxes},
		Controller: p.Controller,
		Mods:       p.Mods,
		QuickSelect: quickSelectDoc{
			SelectWithStick: p.QuickSelect.SelectWithStick,
			SelectWithDpad:  p.QuickSelect.SelectWithDpad,
			ActOnRelease:    p.QuickSelect.ActOnRelease,
			ActOnStickPress: p.QuickSelect.ActOnStickPress,
			ActOnStickFlick: p.QuickSelect.ActOnStickFlick,
			Actions:         make(map[string][]string, len(p.QuickSelect.Actions)),
		},
		InvertAxis:   make(map[string]bool, len(p.InvertAxis)),
		AxesBindings: make(map[string]string, len(p.AxisRoles)),
		Bindings:     make(map[string]map[string]map[string]string),
	}
	if doc.Mods == nil {
		doc.Mods = []int{}
	}
	for state, actions := range p.QuickSelect.Actions {
		doc.QuickSelect.Actions[string(state)] = actions
	}
	for axis, invert := range p.InvertAxis {
		doc.InvertAxis[strconv.Itoa(axis)] = invert
	}
	for axis, role := range p.AxisRoles {
		doc.AxesBindings[strconv.Itoa(axis)] = string(role)
	}
	for key, action := range p.Bindings {
		if action == "" {
			continue
		}
		state := string(key.State)
		mod := strconv.Itoa(key.Mod)
		if doc.Bindings[state] == nil {
			doc.Bindings[state] = make(map[string]map[string]string)
		}
		if doc.Bindings[state][mod] == nil {
			doc.Bindings[state][mod] = make(map[string]string)
		}
		doc.Bindings[state][mod][strconv.Itoa(key.Button)] = action
	}

	var buf bytes.Buffer
	buf.WriteString("# deckpad profile\n")
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode profile %q: %w", p.Name, err)
	}
	return buf.Bytes(), nil
}

// DecodeTOML parses a profile document. Bindings violating the layout
// invariant (modifier buttons, out-of-range indices) are dropped rather
// than failing the whole document, since profile files are user-editable.
func DecodeTOML(data []byte) (*Profile, error) {
	var doc profileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("parse profile: missing name")
	}
	if doc.Controller == "" {
		return nil, fmt.Errorf("parse profile: missing controller")
	}

	p := &Profile{
		Name:       doc.Name,
		Controller: doc.Controller,
		Mods:       doc.Mods,
		Bindings:   make(map[Key]string),
		AxisRoles:  make(map[int]AxisRole),
		InvertAxis: make(map[int]bool),
		QuickSelect: QuickSelect{
			SelectWithStick: doc.QuickSelect.SelectWithStick,
			SelectWithDpad:  doc.QuickSelect.SelectWithDpad,
			ActOnRelease:    doc.QuickSelect.ActOnRelease,
			ActOnStickPress: doc.QuickSelect.ActOnStickPress,
			ActOnStickFlick: doc.QuickSelect.ActOnStickFlick,
			Actions:         make(map[State][]string),
		},
	}
	if len(doc.Size) == 2 {
		p.LenButtons, p.LenAxes = doc.Size[0], doc.Size[1]
	} else if d, err := p.Descriptor(); err == nil {
		p.LenButtons, p.LenAxes = len(d.Buttons), len(d.Axes)
	}

	for state, actions := range doc.QuickSelect.Actions {
		if s := State(state); s.Valid() {
			p.QuickSelect.Actions[s] = actions
		}
	}
	for axis, invert := range doc.InvertAxis {
		i, err := strconv.Atoi(axis)
		if err != nil {
			return nil, fmt.Errorf("parse profile: invert_axis key %q: %w", axis, err)
		}
		p.InvertAxis[i] = invert
	}
	for axis, role := range doc.AxesBindings {
		i, err := strconv.Atoi(axis)
		if err != nil {
			return nil, fmt.Errorf("parse profile: axes_bindings key %q: %w", axis, err)
		}
		r := AxisRole(role)
		if !r.Valid() {
			r = AxisUnassigned
		}
		p.AxisRoles[i] = r
	}

	for state, mods := range doc.Bindings {
		s := State(state)
		if !s.Valid() {
			continue
		}
		for mod, buttons := range mods {
			m, err := strconv.Atoi(mod)
			if err != nil {
				return nil, fmt.Errorf("parse profile: bindings.%s key %q: %w", state, mod, err)
			}
			for button, action := range buttons {
				b, err := strconv.Atoi(button)
				if err != nil {
					return nil, fmt.Errorf("parse profile: bindings.%s.%s key %q: %w", state, mod, button, err)
				}
				if action == "" || !p.validMod(m) || p.IsMod(b) || !p.validButton(b) {
					continue
				}
				p.Bindings[Key{s, m, b}] = action
			}
		}
	}
	return p, nil
}
