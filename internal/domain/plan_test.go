package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewDegreePlan(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	years := []PlanYear{{Year: 1}, {Year: 2}}

	plan, err := NewDegreePlan(ownerID, "cs degree", years)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if plan.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if plan.OwnerID != ownerID {
		t.Errorf("Expected owner ID %s, got %s", ownerID, plan.OwnerID)
	}
	if plan.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
	if plan.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Invalid owner
	_, err = NewDegreePlan(uuid.Nil, "cs degree", years)
	if !errors.Is(err, ErrPlanOwnerIDEmpty) {
		t.Errorf("Expected ErrPlanOwnerIDEmpty, got %v", err)
	}

	// Empty name
	_, err = NewDegreePlan(ownerID, "", years)
	if !errors.Is(err, ErrPlanNameEmpty) {
		t.Errorf("Expected ErrPlanNameEmpty, got %v", err)
	}

	// No years
	_, err = NewDegreePlan(ownerID, "cs degree", nil)
	if !errors.Is(err, ErrPlanNoYears) {
		t.Errorf("Expected ErrPlanNoYears, got %v", err)
	}

	// Duplicate years
	_, err = NewDegreePlan(ownerID, "cs degree", []PlanYear{{Year: 1}, {Year: 1}})
	if !errors.Is(err, ErrPlanDuplicateYear) {
		t.Errorf("Expected ErrPlanDuplicateYear, got %v", err)
	}
}

func TestDegreePlanSlots(t *testing.T) {
	t.Parallel()

	plan, err := NewDegreePlan(uuid.New(), "cs degree", []PlanYear{{Year: 1}, {Year: 2}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []TermSlot{
		{1, TermFall}, {1, TermSpring}, {1, TermSummer},
		{2, TermFall}, {2, TermSpring}, {2, TermSummer},
	}
	got := plan.Slots()
	if len(got) != len(want) {
		t.Fatalf("Expected %d slots, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDegreePlanSlotsOutOfOrderYears(t *testing.T) {
	t.Parallel()

	// Years arrive from clients as an arbitrary array; declaration order
	// must not leak into slot enumeration.
	plan, err := NewDegreePlan(uuid.New(), "cs degree", []PlanYear{{Year: 2}, {Year: 1}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []TermSlot{
		{1, TermFall}, {1, TermSpring}, {1, TermSummer},
		{2, TermFall}, {2, TermSpring}, {2, TermSummer},
	}
	got := plan.Slots()
	if len(got) != len(want) {
		t.Fatalf("Expected %d slots, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slot %d = %v, want %v", i, got[i], want[i])
		}
	}

	if plan.Years[0].Year != 2 {
		t.Error("Expected Slots not to reorder the declared years")
	}
}

func TestDegreePlanCoursesOutOfOrderYears(t *testing.T) {
	t.Parallel()

	years := []PlanYear{
		{
			Year: 2,
			Fall: []Course{{Key: "CPTS 223", Name: "Advanced Data Structures", Credits: 3}},
		},
		{
			Year: 1,
			Fall: []Course{{Key: "CPTS 121", Name: "Program Design", Credits: 4}},
		},
	}
	plan, err := NewDegreePlan(uuid.New(), "cs degree", years)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	placed := plan.Courses()
	if len(placed) != 2 {
		t.Fatalf("Expected 2 placed courses, got %d", len(placed))
	}
	if placed[0].Course.Key != "CPTS 121" || placed[0].Slot != (TermSlot{1, TermFall}) {
		t.Errorf("Expected year 1 course first, got %+v", placed[0])
	}
	if placed[1].Course.Key != "CPTS 223" || placed[1].Slot != (TermSlot{2, TermFall}) {
		t.Errorf("Expected year 2 course second, got %+v", placed[1])
	}
}

func TestDegreePlanCourses(t *testing.T) {
	t.Parallel()

	years := []PlanYear{
		{
			Year:   1,
			Fall:   []Course{{Key: "CPTS 121", Name: "Program Design", Credits: 4}},
			Spring: []Course{{Key: "CPTS 122", Name: "Data Structures", Credits: 4}},
		},
		{
			Year:   2,
			Summer: []Course{{Key: "MATH 171", Name: "Calculus I", Credits: 4}},
		},
	}
	plan, err := NewDegreePlan(uuid.New(), "cs degree", years)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	placed := plan.Courses()
	if len(placed) != 3 {
		t.Fatalf("Expected 3 placed courses, got %d", len(placed))
	}

	if placed[0].Course.Key != "CPTS 121" || placed[0].Slot != (TermSlot{1, TermFall}) {
		t.Errorf("Unexpected first placement: %+v", placed[0])
	}
	if placed[2].Course.Key != "MATH 171" || placed[2].Slot != (TermSlot{2, TermSummer}) {
		t.Errorf("Unexpected last placement: %+v", placed[2])
	}
}

func TestDegreePlanClone(t *testing.T) {
	t.Parallel()

	years := []PlanYear{
		{
			Year: 1,
			Fall: []Course{{
				Key:       "CPTS 121",
				Name:      "Program Design",
				Credits:   4,
				Footnotes: []string{"note"},
			}},
		},
	}
	plan, err := NewDegreePlan(uuid.New(), "cs degree", years)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	clone := plan.Clone()
	if clone.ID != plan.ID {
		t.Error("Expected clone to keep plan identity")
	}

	// Mutating the clone must not leak into the original.
	clone.Years[0].Fall[0].Name = "changed"
	clone.Years[0].Fall[0].Footnotes[0] = "changed"
	clone.Years[0].Spring = append(clone.Years[0].Spring, Course{Key: "NEW 100"})

	if plan.Years[0].Fall[0].Name != "Program Design" {
		t.Error("Expected original course name to be unchanged")
	}
	if plan.Years[0].Fall[0].Footnotes[0] != "note" {
		t.Error("Expected original footnotes to be unchanged")
	}
	if len(plan.Years[0].Spring) != 0 {
		t.Error("Expected original spring term to be unchanged")
	}
}
