package controller

import "fmt"

// Standard two-stick axis layout shared by most pads.
var twoStickAxes = map[int]string{
	0: "Left Stick Horizontal",
	1: "Left Stick Vertical",
	2: "Right Stick Horizontal",
	3: "Right Stick Vertical",
}

var singleStickAxes = map[int]string{
	0: "Stick Horizontal",
	1: "Stick Vertical",
}

// registryOrder fixes the display order for List().
var registryOrder = []string{
	"DualShock 3",
	"DualShock 4",
	"DualSense",
	"Xbox 360",
	"Xbox One",
	"Xbox Series",
	"Switch Pro",
	"8BitDo Pro",
	"Joy-Con Left",
	"Joy-Con Right",
	"Steam Controller",
	"Wii Remote",
	"Super Nintendo",
}

// registry holds the button and axis layout for every supported controller.
// The button tables are reference data: the indices match what the browser
// gamepad API reports for each model, and downstream code enumerates
// exactly these indices.
var registry = map[string]Descriptor{
	"DualShock 3": {
		Name: "DualShock 3",
		Buttons: map[int]string{
			0: "Cross", 1: "Circle", 2: "Square", 3: "Triangle",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Select", 9: "Start",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
		},
		Axes: twoStickAxes,
	},
	"DualShock 4": {
		Name: "DualShock 4",
		Buttons: map[int]string{
			0: "Cross", 1: "Circle", 2: "Square", 3: "Triangle",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Share", 9: "Options",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "PS", 17: "Pad",
		},
		Axes: twoStickAxes,
	},
	"DualSense": {
		Name: "DualSense",
		Buttons: map[int]string{
			0: "Cross", 1: "Circle", 2: "Square", 3: "Triangle",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Share", 9: "Options",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "PS", 17: "Pad",
		},
		Axes: twoStickAxes,
	},
	"Xbox 360": {
		Name: "Xbox 360",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Back", 9: "Start",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "Xbox",
		},
		Axes: twoStickAxes,
	},
	"Xbox One": {
		Name: "Xbox One",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "View", 9: "Menu",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "Xbox",
		},
		Axes: twoStickAxes,
	},
	"Xbox Series": {
		Name: "Xbox Series",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "View", 9: "Menu",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "Xbox", 17: "Share",
		},
		Axes: twoStickAxes,
	},
	"Switch Pro": {
		Name: "Switch Pro",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Square", 9: "Home",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "Minus", 17: "Plus",
		},
		Axes: twoStickAxes,
	},
	"8BitDo Pro": {
		Name: "8BitDo Pro",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Select", 9: "Start",
			10: "Left Stick", 11: "Right Stick",
			12: "D-Pad Up", 13: "D-Pad Down", 14: "D-Pad Left", 15: "D-Pad Right",
			16: "Home",
		},
		Axes: twoStickAxes,
	},
	"Joy-Con Left": {
		Name: "Joy-Con Left",
		Buttons: map[int]string{
			0: "Left", 1: "Down", 2: "Up", 3: "Right",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Minus", 7: "Left Stick", 8: "Capture",
			9: "D-Pad Up", 10: "D-Pad Down", 11: "D-Pad Left", 12: "D-Pad Right",
		},
		Axes: singleStickAxes,
	},
	"Joy-Con Right": {
		Name: "Joy-Con Right",
		Buttons: map[int]string{
			0: "A", 1: "X", 2: "B", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Plus", 7: "Right Stick", 8: "Home",
			9: "D-Pad Up", 10: "D-Pad Down", 11: "D-Pad Left", 12: "D-Pad Right",
		},
		Axes: singleStickAxes,
	},
	"Steam Controller": {
		Name: "Steam Controller",
		Buttons: map[int]string{
			0: "A", 1: "B", 2: "X", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Left Trigger", 7: "Right Trigger",
			8: "Back", 9: "Start",
			10: "Stick", 11: "Right Track",
			12: "Left Track Up", 13: "Left Track Down",
			14: "Left Track Left", 15: "Left Track Right",
			16: "Left Grip", 17: "Right Grip",
			18: "Right Track Up", 19: "Right Track Down",
			20: "Right Track Left", 21: "Right Track Right",
			22: "Steam",
		},
		Axes: twoStickAxes,
	},
	"Wii Remote": {
		Name: "Wii Remote",
		Buttons: map[int]string{
			0: "1", 1: "2", 2: "A", 3: "B",
			4: "Plus", 5: "Minus", 6: "Home", 7: "Z",
		},
		Axes: map[int]string{},
	},
	"Super Nintendo": {
		Name: "Super Nintendo",
		Buttons: map[int]string{
			0: "B", 1: "X", 2: "A", 3: "Y",
			4: "Left Shoulder", 5: "Right Shoulder",
			6: "Start", 7: "Select",
			8: "D-Pad Up", 9: "D-Pad Down", 10: "D-Pad Left", 11: "D-Pad Right",
		},
		Axes: map[int]string{},
	},
}

// StandardName builds the name of a generic layout sized to the reported
// button and axis counts, used when a controller cannot be identified.
func StandardName(buttons, axes int) string {
	return fmt.Sprintf("Standard Gamepad (%d Buttons %d Axes)", buttons, axes)
}

// parseStandardName recognises names produced by StandardName and builds a
// generic descriptor for them.
func parseStandardName(name string) (Descriptor, bool) {
	var buttons, axes int
	n, err := fmt.Sscanf(name, "Standard Gamepad (%d Buttons %d Axes)", &buttons, &axes)
	if err != nil || n != 2 || buttons < 1 || buttons > 100 || axes < 0 || axes > 8 {
		return Descriptor{}, false
	}
	return standard(buttons, axes), true
}

func standard(buttons, axes int) Descriptor {
	d := Descriptor{
		Name:    StandardName(buttons, axes),
		Buttons: make(map[int]string, buttons),
		Axes:    make(map[int]string, axes),
	}
	for i := 0; i < buttons; i++ {
		d.Buttons[i] = fmt.Sprintf("Button %d", i)
	}
	for i := 0; i < axes; i++ {
		if name, ok := twoStickAxes[i]; ok && axes <= len(twoStickAxes) {
			d.Axes[i] = name
		} else {
			d.Axes[i] = fmt.Sprintf("Axis %d", i)
		}
	}
	return d
}
