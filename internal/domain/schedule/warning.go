package schedule

import "github.com/planwell/planwell-api/internal/domain"

// WarningKind classifies an optimizer warning.
type WarningKind string

const (
	// WarnFallbackPlacement marks a course the greedy pass could not place;
	// the fallback placer found it a slot with spare capacity, but
	// prerequisite ordering is no longer guaranteed.
	WarnFallbackPlacement WarningKind = "fallback_placement"

	// WarnForcedPlacement marks a course forced into the final slot because
	// no slot in the plan had both term availability and spare capacity.
	// Credit caps and term offerings may be violated.
	WarnForcedPlacement WarningKind = "forced_placement"

	// WarnCatalogUnavailable marks an optimization run that proceeded with
	// text-only prerequisite extraction because the catalog fetch failed.
	WarnCatalogUnavailable WarningKind = "catalog_unavailable"
)

// Warning reports a constraint the optimizer could not honor. Warnings are
// returned to the caller alongside the new plan; they are never fatal.
type Warning struct {
	Kind      WarningKind     `json:"kind"`
	CourseKey string          `json:"course_key,omitempty"`
	Slot      domain.TermSlot `json:"slot,omitempty"`
	Message   string          `json:"message"`
}

// HasFallback reports whether any warning indicates a degraded placement.
func HasFallback(warnings []Warning) bool {
	for _, w := range warnings {
		if w.Kind == WarnFallbackPlacement || w.Kind == WarnForcedPlacement {
			return true
		}
	}
	return false
}
