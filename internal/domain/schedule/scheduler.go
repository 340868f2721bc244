package schedule

import (
	"errors"
	"sort"

	"github.com/planwell/planwell-api/internal/domain"
)

// ErrNilPlan is returned when Optimize receives a nil plan.
var ErrNilPlan = errors.New("plan cannot be nil")

// Optimize redistributes every schedulable course of the plan across its
// term slots so that prerequisite ordering, term availability, and the
// per-term credit cap of the speed policy hold. Courses the greedy pass
// cannot place are handed to the fallback placer, which guarantees full
// coverage at the cost of violating constraints; every such degradation is
// reported in the returned warnings.
//
// The input plan is never mutated. Already-taken courses stay fixed in their
// original slots, as do courses with no name or non-positive credits.
func Optimize(
	plan *domain.DegreePlan,
	catalog map[string]CatalogCourse,
	speed domain.Speed,
) (*domain.DegreePlan, []Warning, error) {
	if plan == nil {
		return nil, nil, ErrNilPlan
	}
	if err := plan.Validate(); err != nil {
		return nil, nil, err
	}
	if err := speed.Validate(); err != nil {
		return nil, nil, err
	}

	placed := plan.Courses()
	reqs := BuildRequirements(placed, catalog)
	slots := plan.Slots()

	st := newState(slots)

	// Seed fixed courses: already-taken courses never move and count toward
	// both the scheduled set and their slot's credit load. Courses that are
	// not real requirements (no name, non-positive credits) pass through
	// untouched so the output still covers the full input multiset.
	var remaining []*CourseInfo
	seen := make(map[string]bool, len(placed))
	for _, pc := range placed {
		key := CourseKey(&pc.Course)
		fixed := key == "" || !pc.Course.Schedulable() || pc.Course.Taken() || seen[key]
		if key != "" {
			seen[key] = true
		}
		if fixed {
			st.place(pc.Slot, pc.Course)
			if key != "" && pc.Course.Taken() {
				st.scheduled[key] = true
			}
			continue
		}
		remaining = append(remaining, reqs[key])
	}

	maxCredits := speed.MaxCredits()

	for _, slot := range slots {
		current := st.credits[slot]

		// Candidate eligibility is evaluated against the scheduled set as of
		// the start of the slot; courses added below only unlock courses in
		// strictly later slots.
		candidates := eligibleCourses(remaining, slot, st, reqs, plan.AchievedCredits)
		sortCandidates(candidates, slot.Term)

		for _, info := range candidates {
			if current+info.Course.Credits > maxCredits {
				continue
			}
			course := info.Course
			course.Status = domain.StatusPlanned
			st.place(slot, course)
			st.scheduled[CourseKey(&course)] = true
			current += course.Credits
			remaining = removeCourse(remaining, info)
		}
	}

	warnings := placeFallback(st, slots, remaining, maxCredits)

	return rebuildPlan(plan, st), warnings, nil
}

// state tracks the in-progress schedule: what sits in each slot, the credit
// load per slot, and which course keys count as completed for prerequisite
// checks. It is freshly built per optimization run and never shared.
type state struct {
	slots     []domain.TermSlot
	placed    map[domain.TermSlot][]domain.Course
	credits   map[domain.TermSlot]float64
	scheduled map[string]bool
}

func newState(slots []domain.TermSlot) *state {
	return &state{
		slots:     slots,
		placed:    make(map[domain.TermSlot][]domain.Course, len(slots)),
		credits:   make(map[domain.TermSlot]float64, len(slots)),
		scheduled: make(map[string]bool),
	}
}

func (st *state) place(slot domain.TermSlot, c domain.Course) {
	st.placed[slot] = append(st.placed[slot], c)
	st.credits[slot] += c.Credits
}

// creditsBefore sums the credits of every course placed strictly earlier
// than the given slot in chronological order.
func (st *state) creditsBefore(slot domain.TermSlot) float64 {
	var total float64
	for _, s := range st.slots {
		if !s.Before(slot) {
			break
		}
		total += st.credits[s]
	}
	return total
}

// eligibleCourses filters the remaining courses down to those that may be
// placed in the slot: offered this term, prerequisites satisfied, the
// cross-listing guard passed, and any class-level requirement met.
func eligibleCourses(
	remaining []*CourseInfo,
	slot domain.TermSlot,
	st *state,
	reqs Requirements,
	achievedCredits float64,
) []*CourseInfo {
	var out []*CourseInfo
	for _, info := range remaining {
		if !info.AllowedInTerm(slot.Term) {
			continue
		}
		if !prereqsSatisfied(info, st.scheduled) {
			continue
		}
		if !alternativesGuard(info, reqs) {
			continue
		}
		if info.MinLevel != "" {
			level := LevelFromCredits(achievedCredits + st.creditsBefore(slot))
			if !level.AtLeast(info.MinLevel) {
				continue
			}
		}
		out = append(out, info)
	}
	return out
}

// prereqsSatisfied checks every prerequisite group against the scheduled
// set. A course that allows concurrent enrollment satisfies its groups
// without a previously scheduled prerequisite.
func prereqsSatisfied(info *CourseInfo, scheduled map[string]bool) bool {
	if info.Concurrent {
		return true
	}
	for _, group := range info.Groups {
		satisfied := false
		for _, alt := range group {
			if scheduled[alt] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// alternativesGuard is the conservative cross-listing rule: a course that
// declares interchangeable alternatives is eligible early only when none of
// those alternatives carry declared prerequisite groups. The check is one
// level deep; alternatives of alternatives are not walked.
func alternativesGuard(info *CourseInfo, reqs Requirements) bool {
	for _, alt := range info.Course.Alternatives {
		if sibling, ok := reqs[domain.NormalizeCourseKey(alt)]; ok && len(sibling.Groups) > 0 {
			return false
		}
	}
	return true
}

// sortCandidates orders candidates by ascending original (year, term-rank),
// preserving the user's intended sequencing, and pushes summer-only courses
// behind everything else when the current slot is not summer.
func sortCandidates(candidates []*CourseInfo, current domain.Term) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.OriginalSlot != b.OriginalSlot {
			return a.OriginalSlot.Before(b.OriginalSlot)
		}
		if current != domain.TermSummer && a.SummerOnly() != b.SummerOnly() {
			return !a.SummerOnly()
		}
		return false
	})
}

func removeCourse(remaining []*CourseInfo, target *CourseInfo) []*CourseInfo {
	for i, info := range remaining {
		if info == target {
			return append(remaining[:i], remaining[i+1:]...)
		}
	}
	return remaining
}

// rebuildPlan materializes the schedule state into a new DegreePlan with the
// same identity and year structure as the input.
func rebuildPlan(plan *domain.DegreePlan, st *state) *domain.DegreePlan {
	out := plan.Clone()
	for i := range out.Years {
		y := &out.Years[i]
		for _, t := range domain.Terms {
			y.SetCoursesFor(t, st.placed[domain.TermSlot{Year: y.Year, Term: t}])
		}
	}
	return out
}
