package profile

import (
	"strings"
	"testing"
)

const sampleDoc = `# deckpad profile
name = "8BitDo Pro"
size = [17, 4]
controller = "8BitDo Pro"
mods = [16]

[quick_select]
"Select with Stick" = true
"Select with D-Pad" = true
"Do Action on Release" = true
"Do Action on Stick Press" = true
"Do Action on Stick Flick" = false

[quick_select.actions]
deckBrowser = []
overview = []
review = ["Suspend Card", "Suspend Note", "Bury Card", "Bury Note", "Card Info"]

[invert_axis]
0 = false
1 = true

[axes_bindings]
0 = "Buttons"
1 = "Scroll Vertical"
2 = "Cursor Horizontal"
3 = "Cursor Vertical"

[bindings.all.0]
0 = "Enter"
4 = "Undo"
7 = "Toggle Quick Select"

[bindings.review.0]
0 = "Enter"
8 = "Card Info"
13 = "Replay Audio"

[bindings.answer.0]
0 = "Good"
1 = "Again"

[bindings.all.1]
4 = "Redo"
`

func TestDecodeTOML(t *testing.T) {
	p, err := DecodeTOML([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeTOML error = %v", err)
	}

	if p.Name != "8BitDo Pro" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Controller != "8BitDo Pro" {
		t.Errorf("Controller = %q", p.Controller)
	}
	if p.LenButtons != 17 || p.LenAxes != 4 {
		t.Errorf("size = (%d, %d), want (17, 4)", p.LenButtons, p.LenAxes)
	}
	if len(p.Mods) != 1 || p.Mods[0] != 16 {
		t.Errorf("Mods = %v, want [16]", p.Mods)
	}

	if action, _ := p.EffectiveAction(StateAll, 0, 0); action != "Enter" {
		t.Errorf("all/0/0 = %q, want Enter", action)
	}
	if action, _ := p.EffectiveAction(StateAnswer, 0, 1); action != "Again" {
		t.Errorf("answer/0/1 = %q, want Again", action)
	}
	if action, _ := p.EffectiveAction(StateReview, 1, 4); action != "Redo" {
		t.Errorf("review/1/4 = %q, want Redo (inherited from all mod layer)", action)
	}

	if p.AxisRoles[1] != AxisScrollVertical {
		t.Errorf("AxisRoles[1] = %q", p.AxisRoles[1])
	}
	if !p.InvertAxis[1] || p.InvertAxis[0] {
		t.Errorf("InvertAxis = %v", p.InvertAxis)
	}

	if !p.QuickSelect.SelectWithStick || p.QuickSelect.ActOnStickFlick {
		t.Errorf("quick select settings = %+v", p.QuickSelect)
	}
	review := p.QuickSelect.Actions[StateReview]
	if len(review) != 5 || review[0] != "Suspend Card" {
		t.Errorf("quick select review actions = %v", review)
	}
}

func TestEncodeTOMLRoundTrip(t *testing.T) {
	original, err := DecodeTOML([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("DecodeTOML error = %v", err)
	}

	data, err := original.EncodeTOML()
	if err != nil {
		t.Fatalf("EncodeTOML error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# deckpad profile\n") {
		t.Error("encoded document misses the header comment")
	}

	decoded, err := DecodeTOML(data)
	if err != nil {
		t.Fatalf("DecodeTOML of encoded document error = %v", err)
	}

	if decoded.Name != original.Name || decoded.Controller != original.Controller {
		t.Errorf("identity changed: %q/%q", decoded.Name, decoded.Controller)
	}
	if len(decoded.Bindings) != len(original.Bindings) {
		t.Fatalf("bindings count = %d, want %d", len(decoded.Bindings), len(original.Bindings))
	}
	for key, action := range original.Bindings {
		if decoded.Bindings[key] != action {
			t.Errorf("binding %+v = %q, want %q", key, decoded.Bindings[key], action)
		}
	}
	for axis, role := range original.AxisRoles {
		if decoded.AxisRoles[axis] != role {
			t.Errorf("axis %d role = %q, want %q", axis, decoded.AxisRoles[axis], role)
		}
	}

	fp1, err := original.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint error = %v", err)
	}
	fp2, err := decoded.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint error = %v", err)
	}
	if fp1 != fp2 {
		t.Error("round trip changed the profile fingerprint")
	}
}

func TestDecodeTOML_DropsInvalidBindings(t *testing.T) {
	doc := `
name = "test"
size = [17, 4]
controller = "Xbox One"
mods = [16]

[bindings.all.0]
0 = "Enter"
16 = "Undo"
40 = "Redo"

[bindings.bogusState.0]
0 = "Enter"

[bindings.all.5]
0 = "Enter"
`
	p, err := DecodeTOML([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTOML error = %v", err)
	}
	if len(p.Bindings) != 1 {
		t.Errorf("len(Bindings) = %d, want 1 (invalid entries dropped), got %v", len(p.Bindings), p.Bindings)
	}
	if p.Bindings[Key{StateAll, 0, 0}] != "Enter" {
		t.Error("valid binding was dropped")
	}
}

func TestDecodeTOML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid toml", "name = [[["},
		{"missing name", `controller = "Xbox One"`},
		{"missing controller", `name = "test"`},
		{"bad binding key", "name = \"t\"\ncontroller = \"Xbox One\"\n[bindings.all.0]\nnotanumber = \"Enter\"\n"},
		{"bad axis key", "name = \"t\"\ncontroller = \"Xbox One\"\n[axes_bindings]\nx = \"Buttons\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTOML([]byte(tt.doc)); err == nil {
				t.Error("DecodeTOML expected error, got nil")
			}
		})
	}
}

func TestDecodeTOML_SizeFromDescriptor(t *testing.T) {
	doc := `
name = "test"
controller = "Xbox One"
`
	p, err := DecodeTOML([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTOML error = %v", err)
	}
	if p.LenButtons != 17 || p.LenAxes != 4 {
		t.Errorf("size = (%d, %d), want (17, 4) from descriptor", p.LenButtons, p.LenAxes)
	}
}
