package schedule

import (
	"reflect"
	"testing"

	"github.com/planwell/planwell-api/internal/domain"
)

func placedAt(year int, term domain.Term, c domain.Course) domain.PlacedCourse {
	return domain.PlacedCourse{Course: c, Slot: domain.TermSlot{Year: year, Term: term}}
}

func TestBuildRequirementsDropsSelfReference(t *testing.T) {
	t.Parallel()

	// The combined text always contains the course's own code; it must not
	// become its own prerequisite.
	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermFall, domain.Course{
			Key: "CPTS 121", Name: "Program Design", Credits: 4,
		}),
	}

	reqs := BuildRequirements(placed, nil)
	info := reqs["CPTS 121"]
	if info == nil {
		t.Fatal("Expected requirements entry for CPTS 121")
	}
	if len(info.Groups) != 0 {
		t.Errorf("Expected no prerequisite groups, got %v", info.Groups)
	}
}

func TestBuildRequirementsTextPrerequisites(t *testing.T) {
	t.Parallel()

	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermSpring, domain.Course{
			Key: "CPTS 122", Name: "Data Structures", Credits: 4,
			Footnotes: []string{"Prerequisite: CPTS 121 with a C or better"},
		}),
	}

	reqs := BuildRequirements(placed, nil)
	info := reqs["CPTS 122"]
	if info == nil {
		t.Fatal("Expected requirements entry for CPTS 122")
	}
	want := []Group{{"CPTS 121"}}
	if !reflect.DeepEqual(info.Groups, want) {
		t.Errorf("Groups = %v, want %v", info.Groups, want)
	}
	if info.OriginalSlot != (domain.TermSlot{Year: 1, Term: domain.TermSpring}) {
		t.Errorf("Unexpected original slot %v", info.OriginalSlot)
	}
}

func TestBuildRequirementsCatalogFallback(t *testing.T) {
	t.Parallel()

	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermFall, domain.Course{
			Key: "EE 214", Name: "Design of Logic Circuits", Credits: 3,
		}),
	}
	catalog := map[string]CatalogCourse{
		"EE 214": {
			PrerequisiteCodes: []string{"EE 114"},
			OfferedTerms:      []domain.Term{domain.TermFall},
		},
	}

	reqs := BuildRequirements(placed, catalog)
	info := reqs["EE 214"]
	if info == nil {
		t.Fatal("Expected requirements entry for EE 214")
	}
	want := []Group{{"EE 114"}}
	if !reflect.DeepEqual(info.Groups, want) {
		t.Errorf("Groups = %v, want %v", info.Groups, want)
	}
	if !reflect.DeepEqual(info.Offered, []domain.Term{domain.TermFall}) {
		t.Errorf("Offered = %v, want fall only", info.Offered)
	}
}

func TestBuildRequirementsOwnOfferedTermsWin(t *testing.T) {
	t.Parallel()

	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermFall, domain.Course{
			Key: "EE 214", Name: "Design of Logic Circuits", Credits: 3,
			OfferedTerms: []domain.Term{domain.TermSpring},
		}),
	}
	catalog := map[string]CatalogCourse{
		"EE 214": {OfferedTerms: []domain.Term{domain.TermFall}},
	}

	reqs := BuildRequirements(placed, catalog)
	if !reflect.DeepEqual(reqs["EE 214"].Offered, []domain.Term{domain.TermSpring}) {
		t.Errorf("Offered = %v, want spring only", reqs["EE 214"].Offered)
	}
}

func TestBuildRequirementsFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermFall, domain.Course{Key: "CPTS 101", Name: "Seminar", Credits: 1}),
		placedAt(2, domain.TermFall, domain.Course{Key: "CPTS 101", Name: "Seminar Repeat", Credits: 1}),
	}

	reqs := BuildRequirements(placed, nil)
	if len(reqs) != 1 {
		t.Fatalf("Expected one entry, got %d", len(reqs))
	}
	if reqs["CPTS 101"].Course.Name != "Seminar" {
		t.Errorf("Expected first occurrence to win, got %q", reqs["CPTS 101"].Course.Name)
	}
}

func TestBuildRequirementsHeuristicTerms(t *testing.T) {
	t.Parallel()

	placed := []domain.PlacedCourse{
		placedAt(1, domain.TermFall, domain.Course{
			Key: "GEOL 390", Name: "Field Camp", Credits: 6,
			Attributes: []string{"Summer only"},
		}),
		placedAt(1, domain.TermFall, domain.Course{
			Key: "HIST 105", Name: "Roots of Contemporary Issues", Credits: 3,
			Attributes: []string{"Not offered in summer"},
		}),
		placedAt(1, domain.TermSpring, domain.Course{
			Key: "ENGL 101", Name: "Introductory Writing", Credits: 3,
		}),
	}

	reqs := BuildRequirements(placed, nil)

	if !reqs["GEOL 390"].SummerOnly() {
		t.Error("Expected summer-only attribute to restrict offerings to summer")
	}
	if !reflect.DeepEqual(reqs["HIST 105"].Offered, []domain.Term{domain.TermFall, domain.TermSpring}) {
		t.Errorf("Offered = %v, want fall and spring", reqs["HIST 105"].Offered)
	}
	if reqs["ENGL 101"].Offered != nil {
		t.Errorf("Expected unrestricted offerings, got %v", reqs["ENGL 101"].Offered)
	}
}

func TestCourseKeyFallsBackToName(t *testing.T) {
	t.Parallel()

	c := domain.Course{Name: "Senior Capstone", Credits: 3}
	if got := CourseKey(&c); got != "SENIOR CAPSTONE" {
		t.Errorf("CourseKey = %q, want %q", got, "SENIOR CAPSTONE")
	}

	c = domain.Course{Key: "cpts  421", Name: "Capstone", Credits: 3}
	if got := CourseKey(&c); got != "CPTS 421" {
		t.Errorf("CourseKey = %q, want %q", got, "CPTS 421")
	}
}

func TestAllowedInTerm(t *testing.T) {
	t.Parallel()

	unrestricted := &CourseInfo{}
	for _, term := range domain.Terms {
		if !unrestricted.AllowedInTerm(term) {
			t.Errorf("Expected unrestricted course to be allowed in %s", term)
		}
	}

	fallOnly := &CourseInfo{Offered: []domain.Term{domain.TermFall}}
	if !fallOnly.AllowedInTerm(domain.TermFall) {
		t.Error("Expected fall-only course to be allowed in fall")
	}
	if fallOnly.AllowedInTerm(domain.TermSpring) {
		t.Error("Expected fall-only course to be rejected in spring")
	}
}
