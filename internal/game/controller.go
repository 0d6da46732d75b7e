package game

import (
	"fmt"
	"os"

	"centaurus/internal/store"
)

// MusicPlayer is the playback capability the controller drives. The audio
// session implements it; tests swap in fakes.
type MusicPlayer interface {
	Play() bool
	Stop()
	Available() bool
}

// Controller wires the two armies to persistence and music for the UI
// layer. Both store and music are optional.
type Controller struct {
	store  store.Store
	music  MusicPlayer
	armies map[Alignment]*Army
}

func NewController(st store.Store, music MusicPlayer) *Controller {
	c := &Controller{
		store: st,
		music: music,
		armies: map[Alignment]*Army{
			Benevolent: NewArmy(Benevolent),
			Malevolent: NewArmy(Malevolent),
		},
	}
	if st != nil {
		c.loadPersisted()
	}
	return c
}

// Races lists the catalog entries for one side.
func (c *Controller) Races(a Alignment) []Race { return RacesFor(a) }

func (c *Controller) SetUnits(r Race, count int) error {
	return c.armies[r.Alignment].SetUnits(r, count)
}

// Snapshot returns the name to count roster view for one side.
func (c *Controller) Snapshot(a Alignment) map[string]int {
	return c.armies[a].Snapshot()
}

// ArmyStats returns (units, power) for one side.
func (c *Controller) ArmyStats(a Alignment) (units, power int) {
	army := c.armies[a]
	return army.TotalUnits(), army.TotalPower()
}

// SimulateBattle resolves the standoff and persists both rosters.
func (c *Controller) SimulateBattle() (Result, error) {
	res, err := Resolve(c.armies[Benevolent], c.armies[Malevolent])
	if err != nil {
		return Result{}, err
	}
	c.persist()
	return res, nil
}

// ResetArmies empties both rosters and persists the empty state.
func (c *Controller) ResetArmies() {
	for _, a := range c.armies {
		a.Clear()
	}
	c.persist()
}

// PlayMusic starts the background loop if a device is around. A missing or
// unavailable player is not an error, just a false return.
func (c *Controller) PlayMusic() bool {
	if c.music == nil || !c.music.Available() {
		return false
	}
	return c.music.Play()
}

func (c *Controller) StopMusic() {
	if c.music != nil {
		c.music.Stop()
	}
}

func (c *Controller) persist() {
	if c.store == nil {
		return
	}
	for a, army := range c.armies {
		if err := c.store.Save(a.String(), army.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "save %s roster: %v\n", a.Label(), err)
		}
	}
}

func (c *Controller) loadPersisted() {
	for _, a := range []Alignment{Benevolent, Malevolent} {
		roster, err := c.store.Load(a.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "load %s roster: %v\n", a.Label(), err)
			continue
		}
		for name, count := range roster {
			if r, ok := FindRace(name); ok && r.Alignment == a {
				c.armies[a].SetUnits(r, count)
			}
		}
	}
}
