// Package game holds the battle domain: the race catalog, the two armies
// and battle resolution, plus the controller that ties them to persistence
// and music for the UI layer.
package game

// Alignment is the side of the conflict a race fights for.
type Alignment int

const (
	Benevolent Alignment = iota
	Malevolent
)

// String is stable and used as the persistence key.
func (a Alignment) String() string {
	if a == Malevolent {
		return "MALEVOLENT"
	}
	return "BENEVOLENT"
}

// Label is the short display name used by the UI.
func (a Alignment) Label() string {
	if a == Malevolent {
		return "Evil"
	}
	return "Good"
}
