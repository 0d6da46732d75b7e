package game

import "errors"

// Outcome is the three-way result of a battle.
type Outcome int

const (
	GoodWins Outcome = iota
	EvilWins
	Stalemate
)

func (o Outcome) Message() string {
	switch o {
	case GoodWins:
		return "Good prevails!"
	case EvilWins:
		return "Evil takes the day..."
	default:
		return "The battle ends in a stalemate."
	}
}

// Result holds the final score of both armies.
type Result struct {
	GoodPower int
	EvilPower int
}

func (r Result) Outcome() Outcome {
	switch {
	case r.GoodPower > r.EvilPower:
		return GoodWins
	case r.EvilPower > r.GoodPower:
		return EvilWins
	default:
		return Stalemate
	}
}

// Winner returns the winning side, or false on a stalemate.
func (r Result) Winner() (Alignment, bool) {
	switch r.Outcome() {
	case GoodWins:
		return Benevolent, true
	case EvilWins:
		return Malevolent, true
	default:
		return Benevolent, false
	}
}

// Resolve compares the two armies' summed power.
func Resolve(good, evil *Army) (Result, error) {
	if good.Alignment != Benevolent {
		return Result{}, errors.New("good army must be benevolent")
	}
	if evil.Alignment != Malevolent {
		return Result{}, errors.New("evil army must be malevolent")
	}
	return Result{GoodPower: good.TotalPower(), EvilPower: evil.TotalPower()}, nil
}
