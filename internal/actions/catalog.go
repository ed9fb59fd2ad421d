// Package actions defines the action catalogue and the dispatch registry.
//
// Action names are opaque strings as far as binding resolution is
// concerned; the catalogue exists so hosts can populate pickers with the
// actions that make sense per state.
package actions

import "github.com/llehouerou/deckpad/internal/profile"

// commonActions are available in every state except dialogs.
var commonActions = []string{
	"Add", "Back", "Browser", "Enter",
	"Forward", "Fullscreen", "Hide Cursor", "Main Screen",
	"Overview", "Preferences", "Quit", "Redo",
	"Review", "Statistics", "Sync", "Undo",
	"Volume Down", "Volume Up", "Click", "Secondary Click",
	"Options", "Scroll Down", "Scroll Up", "Select Next",
	"Select Previous", "Select",
}

// reviewActions are available while a card is shown.
var reviewActions = []string{
	"Again", "Audio -5s", "Audio +5s", "Bury Card",
	"Bury Note", "Card Info", "Delete Note", "Easy",
	"Edit Note", "Flag", "Flip Card", "Good", "Hard",
	"Mark Note", "Pause Audio", "Record Voice", "Previous Card Info",
	"Replay Audio", "Replay Voice", "Set Due Date", "Suspend Card",
	"Suspend Note",
}

var deckBrowserActions = []string{
	"Check Database", "Check Media", "Collapse/Expand", "Empty Cards",
	"Manage Note Types", "Next Deck", "Next Due Deck", "Previous Deck",
	"Previous Due Deck", "Study Deck",
}

var overviewActions = []string{
	"Collapse/Expand", "Empty", "Filter", "Next Deck",
	"Next Due Deck", "Previous Deck", "Previous Due Deck", "Rebuild",
	"Custom Study",
}

var dialogActions = []string{
	"Enter", "Fullscreen", "Hide Cursor", "Quit",
	"Redo", "Undo", "Volume Down", "Volume Up",
	"Click", "Secondary Click", "Select Next", "Select Previous",
	"Select", "Switch Window", "Escape", "Up",
	"Down", "Up by 10", "Down by 10", "Scroll Up",
	"Scroll Down",
}

// ForState returns the actions selectable in a state, starting with the
// empty action (meaning unbound / fall through to inheritance).
func ForState(state profile.State) []string {
	out := []string{""}
	switch state {
	case profile.StateAll:
		out = append(out, commonActions...)
		out = append(out, "Check Database", "Check Media", "Empty Cards",
			"Manage Note Types", "Study Deck")
	case profile.StateDeckBrowser:
		out = append(out, commonActions...)
		out = append(out, deckBrowserActions...)
	case profile.StateOverview:
		out = append(out, commonActions...)
		out = append(out, overviewActions...)
	case profile.StateReview, profile.StateQuestion, profile.StateAnswer:
		out = append(out, commonActions...)
		out = append(out, reviewActions...)
	case profile.StateDialog:
		out = append(out, dialogActions...)
	}
	return out
}

// QuickSelectCandidates returns the actions offered for a state's quick
// select list.
func QuickSelectCandidates(state profile.State) []string {
	switch state {
	case profile.StateReview, profile.StateQuestion, profile.StateAnswer:
		return append([]string(nil), reviewActions...)
	case profile.StateDeckBrowser:
		return append([]string(nil), deckBrowserActions...)
	case profile.StateOverview:
		return append([]string(nil), overviewActions...)
	default:
		return nil
	}
}
