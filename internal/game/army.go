package game

import "fmt"

// Army tracks unit counts per race name for one side. Counts are always
// positive; setting a race to zero drops it from the roster.
type Army struct {
	Alignment Alignment
	units     map[string]int
}

func NewArmy(a Alignment) *Army {
	return &Army{Alignment: a, units: map[string]int{}}
}

// SetUnits stores the unit count for a race, clamping negatives to zero.
func (a *Army) SetUnits(r Race, count int) error {
	if r.Alignment != a.Alignment {
		return fmt.Errorf("race %s does not fight for the %s side", r.Name, a.Alignment.Label())
	}
	if count < 0 {
		count = 0
	}
	if count == 0 {
		delete(a.units, r.Name)
		return nil
	}
	a.units[r.Name] = count
	return nil
}

// Units returns the current count for a race.
func (a *Army) Units(r Race) int { return a.units[r.Name] }

func (a *Army) TotalUnits() int {
	total := 0
	for _, count := range a.units {
		total += count
	}
	return total
}

func (a *Army) TotalPower() int {
	total := 0
	for name, count := range a.units {
		if r, ok := FindRace(name); ok {
			total += r.Power(count)
		}
	}
	return total
}

// Snapshot returns a serializable name to count view of the roster.
func (a *Army) Snapshot() map[string]int {
	out := make(map[string]int, len(a.units))
	for name, count := range a.units {
		out[name] = count
	}
	return out
}

// Clear empties the roster.
func (a *Army) Clear() {
	a.units = map[string]int{}
}
