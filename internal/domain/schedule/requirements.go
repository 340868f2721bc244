package schedule

import (
	"strings"

	"github.com/planwell/planwell-api/internal/domain"
)

// CatalogCourse is the slice of catalog metadata the optimizer consumes.
// The catalog collaborator supplies these keyed by normalized "PREFIX NUM";
// a missing entry simply means the course graph is built from text alone.
type CatalogCourse struct {
	PrerequisiteCodes []string
	OfferedTerms      []domain.Term
	AllowConcurrent   bool
}

// CourseInfo is the canonical per-course record the scheduler works from:
// the course itself, its original slot, and the merged prerequisite and
// term-availability information.
type CourseInfo struct {
	Course domain.Course

	// OriginalSlot is where the course sat in the input plan. The scheduler
	// prefers earlier original slots to preserve user intent.
	OriginalSlot domain.TermSlot

	// Groups are the prerequisite groups; all must be satisfied.
	Groups []Group

	// MinLevel gates the course on class standing when non-empty.
	MinLevel domain.ClassLevel

	// Concurrent permits taking prerequisites in the same term.
	Concurrent bool

	// Offered restricts the course to these terms. Nil means no restriction
	// is known and every term is allowed.
	Offered []domain.Term
}

// Requirements maps normalized course keys to their canonical records.
type Requirements map[string]*CourseInfo

// BuildRequirements merges text-extracted prerequisites with catalog
// metadata for every course in the plan. Catalog offered terms are used only
// when the course does not declare its own; catalog prerequisite codes serve
// as a fallback when text extraction finds nothing.
func BuildRequirements(placed []domain.PlacedCourse, catalog map[string]CatalogCourse) Requirements {
	reqs := make(Requirements, len(placed))
	for _, pc := range placed {
		key := CourseKey(&pc.Course)
		if key == "" {
			continue
		}
		if _, exists := reqs[key]; exists {
			continue
		}

		text := pc.Course.CombinedText()
		cat, inCatalog := catalog[key]

		var fallback []string
		if inCatalog {
			fallback = cat.PrerequisiteCodes
		}
		ext := ExtractPrerequisites(text, fallback)

		info := &CourseInfo{
			Course:       pc.Course,
			OriginalSlot: pc.Slot,
			Groups:       dropSelfReferences(ext.Groups, key),
			MinLevel:     ext.MinLevel,
			Concurrent:   pc.Course.AllowConcurrent || ext.Concurrent,
		}
		if inCatalog && cat.AllowConcurrent {
			info.Concurrent = true
		}

		switch {
		case len(pc.Course.OfferedTerms) > 0:
			info.Offered = pc.Course.OfferedTerms
		case inCatalog && len(cat.OfferedTerms) > 0:
			info.Offered = cat.OfferedTerms
		default:
			info.Offered = heuristicTerms(text)
		}

		reqs[key] = info
	}
	return reqs
}

// CourseKey returns the normalized lookup key for a course: the canonical
// code when one is set, else the raw name.
func CourseKey(c *domain.Course) string {
	if k := domain.NormalizeCourseKey(c.Key); k != "" {
		return k
	}
	return domain.NormalizeCourseKey(c.Name)
}

// AllowedInTerm reports whether the course may be taken in the given term.
func (info *CourseInfo) AllowedInTerm(t domain.Term) bool {
	if info.Offered == nil {
		return true
	}
	for _, offered := range info.Offered {
		if offered == t {
			return true
		}
	}
	return false
}

// SummerOnly reports whether the course is offered exclusively in summer.
// Such courses stay eligible in every slot they are offered in but sort to
// the back of non-summer slots.
func (info *CourseInfo) SummerOnly() bool {
	return len(info.Offered) == 1 && info.Offered[0] == domain.TermSummer
}

// dropSelfReferences removes the course's own key from its prerequisite
// groups. The extraction text includes the course's label and name, so the
// lexer always rediscovers the course itself; keeping it would make every
// course its own unsatisfiable prerequisite.
func dropSelfReferences(groups []Group, self string) []Group {
	var out []Group
	for _, g := range groups {
		var kept Group
		for _, alt := range g {
			if alt != self {
				kept = append(kept, alt)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}

// Phrases that restrict or exclude summer offerings when no structured
// offered-terms data exists.
var (
	summerOnlyPhrases = []string{"summer only", "only in summer", "only offered in summer"}
	noSummerPhrases   = []string{"not offered summer", "not offered in summer", "not offered during summer", "no summer"}
)

// heuristicTerms derives term availability from attribute/footnote text.
// Returns nil when the text says nothing, which allows all terms; summer
// deprioritization is handled by candidate sort order, not exclusion.
func heuristicTerms(text string) []domain.Term {
	lower := strings.ToLower(text)
	for _, p := range summerOnlyPhrases {
		if strings.Contains(lower, p) {
			return []domain.Term{domain.TermSummer}
		}
	}
	for _, p := range noSummerPhrases {
		if strings.Contains(lower, p) {
			return []domain.Term{domain.TermFall, domain.TermSpring}
		}
	}
	return nil
}
