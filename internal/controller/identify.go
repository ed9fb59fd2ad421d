package controller

import "strings"

// vendor ids as they appear in browser gamepad id strings.
const (
	vendorSony       = "054c"
	vendorMicrosoft  = "045e"
	vendorNintendo   = "057e"
	vendorEightBitDo = "2dc8"
	vendorValve      = "28de"
)

// Identify maps a raw gamepad id string and its reported button/axis counts
// to a registered controller name. The id strings come from the host's input
// layer and look like
//
//	"Xbox 360 Controller (XInput STANDARD GAMEPAD Vendor: 045e Product: 028e)"
//
// but vary wildly between browsers and platforms, so identification is a
// pile of substring heuristics. 8BitDo pads impersonate Xbox controllers
// unless detectEightBitDo is set. Returns false when nothing matches; the
// caller should fall back to StandardName.
func Identify(id string, buttons, axes int, detectEightBitDo bool) (string, bool) {
	s := strings.ToLower(id)

	if detectEightBitDo && (strings.Contains(s, "8bitdo") || strings.Contains(s, vendorEightBitDo)) {
		return "8BitDo Pro", true
	}

	switch {
	case strings.Contains(s, "dualsense"):
		return "DualSense", true
	case strings.Contains(s, "dualshock 4"), strings.Contains(s, "dualshock 3"):
		if strings.Contains(s, "dualshock 3") {
			return "DualShock 3", true
		}
		return "DualShock 4", true
	case strings.Contains(s, vendorSony):
		return sonyProduct(s), true
	case strings.Contains(s, "xbox series"):
		return "Xbox Series", true
	case strings.Contains(s, "xbox one"):
		return "Xbox One", true
	case strings.Contains(s, "xbox 360"), strings.Contains(s, "xinput"):
		return "Xbox 360", true
	case strings.Contains(s, vendorMicrosoft):
		return microsoftProduct(s), true
	case strings.Contains(s, "joy-con (l)"), strings.Contains(s, "joy-con l"):
		return "Joy-Con Left", true
	case strings.Contains(s, "joy-con (r)"), strings.Contains(s, "joy-con r"):
		return "Joy-Con Right", true
	case strings.Contains(s, "pro controller"), strings.Contains(s, "switch pro"):
		return "Switch Pro", true
	case strings.Contains(s, vendorNintendo):
		return nintendoProduct(s, buttons)
	case strings.Contains(s, "steam"), strings.Contains(s, vendorValve):
		return "Steam Controller", true
	case strings.Contains(s, "wii remote"), strings.Contains(s, "wiimote"):
		return "Wii Remote", true
	case strings.Contains(s, "snes"), strings.Contains(s, "super nintendo"):
		return "Super Nintendo", true
	}
	return "", false
}

func sonyProduct(s string) string {
	switch {
	case strings.Contains(s, "0ce6"):
		return "DualSense"
	case strings.Contains(s, "0268"):
		return "DualShock 3"
	default:
		// 05c4 and 09cc are both DualShock 4 revisions; also the safest
		// guess for unrecognised Sony product ids.
		return "DualShock 4"
	}
}

func microsoftProduct(s string) string {
	switch {
	case strings.Contains(s, "0b12"), strings.Contains(s, "0b13"):
		return "Xbox Series"
	case strings.Contains(s, "02d1"), strings.Contains(s, "02dd"), strings.Contains(s, "02ea"):
		return "Xbox One"
	default:
		return "Xbox 360"
	}
}

func nintendoProduct(s string, buttons int) (string, bool) {
	switch {
	case strings.Contains(s, "2006"):
		return "Joy-Con Left", true
	case strings.Contains(s, "2007"):
		return "Joy-Con Right", true
	case strings.Contains(s, "2009"):
		return "Switch Pro", true
	case buttons <= 13:
		// Joy-Cons report 13 buttons; without a product id the side is
		// unknowable, so pick the right one (the common single-con grip).
		return "Joy-Con Right", true
	default:
		return "Switch Pro", true
	}
}
