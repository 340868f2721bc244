package domain

import "errors"

// ErrInvalidSpeed is returned when a speed setting is not one of the
// three known policies.
var ErrInvalidSpeed = errors.New("speed must be accelerated, normal, or relaxed")

// Speed is the credit-load policy a student selects for optimization.
type Speed string

const (
	SpeedAccelerated Speed = "accelerated"
	SpeedNormal      Speed = "normal"
	SpeedRelaxed     Speed = "relaxed"
)

// MaxCredits returns the per-term credit cap for the policy.
func (s Speed) MaxCredits() float64 {
	switch s {
	case SpeedAccelerated:
		return 23
	case SpeedRelaxed:
		return 12
	default:
		return 18
	}
}

// Validate returns ErrInvalidSpeed unless s is a known policy.
func (s Speed) Validate() error {
	switch s {
	case SpeedAccelerated, SpeedNormal, SpeedRelaxed:
		return nil
	}
	return ErrInvalidSpeed
}

// ClassLevel is a student's class standing derived from cumulative credits.
type ClassLevel string

const (
	LevelFreshman  ClassLevel = "freshman"
	LevelSophomore ClassLevel = "sophomore"
	LevelJunior    ClassLevel = "junior"
	LevelSenior    ClassLevel = "senior"
)

// Rank orders class levels freshman < sophomore < junior < senior.
func (l ClassLevel) Rank() int {
	switch l {
	case LevelSophomore:
		return 1
	case LevelJunior:
		return 2
	case LevelSenior:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether l meets or exceeds the required level.
func (l ClassLevel) AtLeast(required ClassLevel) bool {
	return l.Rank() >= required.Rank()
}
