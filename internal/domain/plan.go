package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Plan-specific validation errors
var (
	// ErrPlanIDEmpty is returned when a plan ID is empty or nil.
	ErrPlanIDEmpty = errors.New("plan ID cannot be empty")

	// ErrPlanOwnerIDEmpty is returned when a plan's owner ID is empty or nil.
	ErrPlanOwnerIDEmpty = errors.New("plan owner ID cannot be empty")

	// ErrPlanNameEmpty is returned when a plan's name is empty.
	ErrPlanNameEmpty = errors.New("plan name cannot be empty")

	// ErrPlanNoYears is returned when a plan declares no years.
	ErrPlanNoYears = errors.New("plan must declare at least one year")

	// ErrPlanDuplicateYear is returned when the same year id appears twice.
	ErrPlanDuplicateYear = errors.New("plan years must be unique")
)

// PlanYear holds the three term course lists for one plan year.
type PlanYear struct {
	Year   int      `json:"year"`
	Fall   []Course `json:"fall"`
	Spring []Course `json:"spring"`
	Summer []Course `json:"summer"`
}

// CoursesFor returns the course list for the given term.
func (y *PlanYear) CoursesFor(t Term) []Course {
	switch t {
	case TermFall:
		return y.Fall
	case TermSpring:
		return y.Spring
	case TermSummer:
		return y.Summer
	default:
		return nil
	}
}

// SetCoursesFor replaces the course list for the given term.
func (y *PlanYear) SetCoursesFor(t Term, courses []Course) {
	switch t {
	case TermFall:
		y.Fall = courses
	case TermSpring:
		y.Spring = courses
	case TermSummer:
		y.Summer = courses
	}
}

// DegreePlan is a student's multi-year course plan. Years are kept as an
// ordered slice rather than a map so term slots enumerate deterministically.
// AchievedCredits counts credits earned before the plan starts (transfer
// credit, AP, etc.) and feeds class-standing checks.
type DegreePlan struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Name            string     `json:"name"`
	AchievedCredits float64    `json:"achieved_credits"`
	Years           []PlanYear `json:"years"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewDegreePlan creates a DegreePlan with the given owner, name and years.
// It generates a new UUID for the plan ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewDegreePlan(ownerID uuid.UUID, name string, years []PlanYear) (*DegreePlan, error) {
	now := time.Now().UTC()
	plan := &DegreePlan{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Years:     years,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return plan, nil
}

// Validate checks if the DegreePlan has valid data.
// Returns an error if any field fails validation.
func (p *DegreePlan) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPlanIDEmpty
	}

	if p.OwnerID == uuid.Nil {
		return ErrPlanOwnerIDEmpty
	}

	if p.Name == "" {
		return ErrPlanNameEmpty
	}

	if len(p.Years) == 0 {
		return ErrPlanNoYears
	}

	seen := make(map[int]bool, len(p.Years))
	for _, y := range p.Years {
		if seen[y.Year] {
			return ErrPlanDuplicateYear
		}
		seen[y.Year] = true
	}

	return nil
}

// yearsChronological returns pointers to the plan's years sorted by year
// number. Clients may declare years in any order; chronological walks must
// not trust the declared order. The plan itself is not reordered.
func (p *DegreePlan) yearsChronological() []*PlanYear {
	years := make([]*PlanYear, len(p.Years))
	for i := range p.Years {
		years[i] = &p.Years[i]
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})
	return years
}

// Slots enumerates every term slot of the plan in chronological order:
// (year, fall), (year, spring), (year, summer) for each year, ascending by
// year number regardless of declaration order.
func (p *DegreePlan) Slots() []TermSlot {
	years := p.yearsChronological()
	slots := make([]TermSlot, 0, len(years)*len(Terms))
	for _, y := range years {
		for _, t := range Terms {
			slots = append(slots, TermSlot{Year: y.Year, Term: t})
		}
	}
	return slots
}

// Courses returns every course in the plan paired with its slot,
// in chronological slot order.
func (p *DegreePlan) Courses() []PlacedCourse {
	var out []PlacedCourse
	for _, y := range p.yearsChronological() {
		for _, t := range Terms {
			for _, c := range y.CoursesFor(t) {
				out = append(out, PlacedCourse{
					Course: c,
					Slot:   TermSlot{Year: y.Year, Term: t},
				})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the plan. The optimizer works on a copy and
// returns a new plan; callers atomically replace the old one.
func (p *DegreePlan) Clone() *DegreePlan {
	cp := *p
	cp.Years = make([]PlanYear, len(p.Years))
	for i, y := range p.Years {
		cp.Years[i] = PlanYear{
			Year:   y.Year,
			Fall:   cloneCourses(y.Fall),
			Spring: cloneCourses(y.Spring),
			Summer: cloneCourses(y.Summer),
		}
	}
	return &cp
}

// PlacedCourse pairs a course with the slot it occupies.
type PlacedCourse struct {
	Course Course
	Slot   TermSlot
}

func cloneCourses(in []Course) []Course {
	if in == nil {
		return nil
	}
	out := make([]Course, len(in))
	for i, c := range in {
		out[i] = c
		out[i].OfferedTerms = append([]Term(nil), c.OfferedTerms...)
		out[i].Footnotes = append([]string(nil), c.Footnotes...)
		out[i].Attributes = append([]string(nil), c.Attributes...)
		out[i].Alternatives = append([]string(nil), c.Alternatives...)
	}
	return out
}
