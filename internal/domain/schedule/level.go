package schedule

import "github.com/planwell/planwell-api/internal/domain"

// Credit thresholds for class standing.
const (
	seniorCredits    = 90
	juniorCredits    = 60
	sophomoreCredits = 30
)

// LevelFromCredits derives class standing from a cumulative credit total.
func LevelFromCredits(credits float64) domain.ClassLevel {
	switch {
	case credits >= seniorCredits:
		return domain.LevelSenior
	case credits >= juniorCredits:
		return domain.LevelJunior
	case credits >= sophomoreCredits:
		return domain.LevelSophomore
	default:
		return domain.LevelFreshman
	}
}
