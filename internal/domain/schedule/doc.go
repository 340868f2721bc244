// Package schedule implements the multi-term course-schedule optimizer:
// free-text prerequisite extraction, catalog merging, and greedy placement
// of courses across term slots under credit-cap, term-availability, and
// prerequisite-ordering constraints, with a deterministic fallback for
// infeasible inputs.
//
// The package is pure: Optimize takes a plan, catalog metadata, and a speed
// policy, and returns a brand-new plan plus a warning list. It holds no
// locks, performs no I/O, and never mutates its inputs.
package schedule
