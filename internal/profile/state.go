// Package profile defines controller profiles and binding resolution.
package profile

// State is an application mode. Each state selects a binding layer; the
// "all" layer is the fallback for every other state, and the "review" layer
// additionally backs the question and answer states.
type State string

const (
	StateAll         State = "all"
	StateDeckBrowser State = "deckBrowser"
	StateOverview    State = "overview"
	StateReview      State = "review"
	StateQuestion    State = "question"
	StateAnswer      State = "answer"
	StateDialog      State = "dialog"
)

// stateOrder fixes the canonical ordering used by States() and by the
// serialized form.
var stateOrder = []State{
	StateAll,
	StateDeckBrowser,
	StateOverview,
	StateReview,
	StateQuestion,
	StateAnswer,
	StateDialog,
}

var stateNames = map[State]string{
	StateAll:         "Default",
	StateDeckBrowser: "Deck Browser",
	StateOverview:    "Overview",
	StateReview:      "Review",
	StateQuestion:    "Question",
	StateAnswer:      "Answer",
	StateDialog:      "Dialogs",
}

// States returns all states in canonical order.
func States() []State {
	states := make([]State, len(stateOrder))
	copy(states, stateOrder)
	return states
}

// Valid reports whether s is one of the closed set of states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// DisplayName returns the human-readable name for the state.
func (s State) DisplayName() string {
	return stateNames[s]
}

// ReviewLike reports whether the state inherits from the review layer in
// addition to the all layer.
func (s State) ReviewLike() bool {
	return s == StateQuestion || s == StateAnswer
}
