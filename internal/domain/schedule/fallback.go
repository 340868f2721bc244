package schedule

import (
	"fmt"
	"sort"

	"github.com/planwell/planwell-api/internal/domain"
)

// placeFallback guarantees a slot for every course the greedy pass left
// behind (prerequisite cycles, term mismatches, caps too tight). Leftovers
// are walked in original-slot order through the same chronological slot
// sequence, starting from where the previous placement left off and never
// moving backward. A course that fits nowhere is forced into the final slot
// regardless of cap or term offering. Every placement made here produces a
// warning; this degradation is surfaced to the caller, never hidden.
func placeFallback(
	st *state,
	slots []domain.TermSlot,
	leftovers []*CourseInfo,
	maxCredits float64,
) []Warning {
	if len(leftovers) == 0 {
		return nil
	}

	sort.SliceStable(leftovers, func(i, j int) bool {
		return leftovers[i].OriginalSlot.Before(leftovers[j].OriginalSlot)
	})

	var warnings []Warning
	cursor := 0
	final := slots[len(slots)-1]

	for _, info := range leftovers {
		course := info.Course
		course.Status = domain.StatusPlanned
		key := CourseKey(&course)

		placed := false
		for idx := cursor; idx < len(slots); idx++ {
			slot := slots[idx]
			if !info.AllowedInTerm(slot.Term) {
				continue
			}
			if st.credits[slot]+course.Credits > maxCredits {
				continue
			}
			st.place(slot, course)
			st.scheduled[key] = true
			cursor = idx
			warnings = append(warnings, Warning{
				Kind:      WarnFallbackPlacement,
				CourseKey: key,
				Slot:      slot,
				Message:   fmt.Sprintf("%s placed in %s; could not be scheduled under normal constraints", key, slot),
			})
			placed = true
			break
		}
		if placed {
			continue
		}

		// Nothing fit anywhere: force into the final slot.
		st.place(final, course)
		st.scheduled[key] = true
		warnings = append(warnings, Warning{
			Kind:      WarnForcedPlacement,
			CourseKey: key,
			Slot:      final,
			Message:   fmt.Sprintf("%s forced into %s; credit cap or term offering ignored", key, final),
		})
	}

	return warnings
}
