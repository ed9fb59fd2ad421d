package profile

// defaultBindings holds the stock no-modifier bindings applied by Default.
// Buttons beyond the controller's layout are skipped.
var defaultBindings = map[State]map[int]string{
	StateAll: {
		0: "Enter",
		4: "Undo",
		7: "Toggle Quick Select",
	},
	StateReview: {
		0:  "Enter",
		8:  "Card Info",
		13: "Replay Audio",
		14: "Flag",
		15: "Mark Note",
	},
	StateQuestion: {
		0: "Flip Card",
	},
	StateAnswer: {
		0: "Good",
		1: "Again",
		2: "Hard",
		3: "Easy",
	},
	StateDeckBrowser: {
		0: "Select",
		1: "Collapse/Expand",
		2: "Browser",
	},
	StateOverview: {
		0: "Select",
		1: "Rebuild",
	},
	StateDialog: {
		0: "Select",
		4: "Escape",
	},
}

var defaultQuickSelectReview = []string{
	"Suspend Card",
	"Suspend Note",
	"Bury Card",
	"Bury Note",
	"Card Info",
}

// Default builds the stock profile for a controller.
func Default(controllerName string) (*Profile, error) {
	p, err := New(controllerName, controllerName)
	if err != nil {
		return nil, err
	}
	for state, bindings := range defaultBindings {
		for button, action := range bindings {
			if button >= p.LenButtons {
				continue
			}
			p.Bindings[Key{state, 0, button}] = action
		}
	}
	d, _ := p.Descriptor()
	if d.HasStick() {
		p.AxisRoles[0] = AxisCursorHorizontal
		p.AxisRoles[1] = AxisCursorVertical
	}
	if len(d.Axes) >= 4 {
		p.AxisRoles[2] = AxisScrollHorizontal
		p.AxisRoles[3] = AxisScrollVertical
	}
	p.QuickSelect = QuickSelect{
		SelectWithStick: d.HasStick(),
		SelectWithDpad:  true,
		ActOnRelease:    true,
		ActOnStickPress: d.HasStick(),
		ActOnStickFlick: false,
		Actions: map[State][]string{
			StateDeckBrowser: {},
			StateOverview:    {},
			StateReview:      append([]string(nil), defaultQuickSelectReview...),
		},
	}
	return p, nil
}
