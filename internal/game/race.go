package game

import "strings"

// Race is one catalog entry: a fixed per-unit battle value plus display
// attributes. Races are plain data; Races below is the complete set.
type Race struct {
	Name      string
	Alignment Alignment
	Value     int
	Color     string // hex swatch for the UI
}

// Power returns the total power of count units, treating negatives as zero.
func (r Race) Power(count int) int {
	if count < 0 {
		count = 0
	}
	return r.Value * count
}

// Races is the full catalog, five per side, in display order.
var Races = []Race{
	{Name: "Osito", Alignment: Benevolent, Value: 1, Color: "#f7c8d0"},
	{Name: "Principe", Alignment: Benevolent, Value: 2, Color: "#95c0ff"},
	{Name: "Enano", Alignment: Benevolent, Value: 3, Color: "#fbe29f"},
	{Name: "Cari", Alignment: Benevolent, Value: 4, Color: "#e87956"},
	{Name: "Fulo", Alignment: Benevolent, Value: 5, Color: "#8870ff"},
	{Name: "Lolo", Alignment: Malevolent, Value: 2, Color: "#ff6f91"},
	{Name: "Fulano", Alignment: Malevolent, Value: 2, Color: "#ff9671"},
	{Name: "Hoggin", Alignment: Malevolent, Value: 2, Color: "#ffc75f"},
	{Name: "Lurco", Alignment: Malevolent, Value: 3, Color: "#a17fe0"},
	{Name: "Trolli", Alignment: Malevolent, Value: 5, Color: "#5c5470"},
}

// RacesFor lists the catalog entries fighting for one side.
func RacesFor(a Alignment) []Race {
	out := make([]Race, 0, len(Races)/2)
	for _, r := range Races {
		if r.Alignment == a {
			out = append(out, r)
		}
	}
	return out
}

// FindRace looks a race up by name, ignoring case and surrounding space.
func FindRace(name string) (Race, bool) {
	name = strings.TrimSpace(name)
	for _, r := range Races {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Race{}, false
}
