package domain

import (
	"encoding/json"
	"strings"
)

// CourseStatus tracks where a course sits in the student's progress.
type CourseStatus string

const (
	StatusNotTaken   CourseStatus = "not-taken"
	StatusPlanned    CourseStatus = "planned"
	StatusInProgress CourseStatus = "in-progress"
	StatusTaken      CourseStatus = "taken"
)

// StringList is a []string that also accepts a bare JSON string on input.
// Catalog exports emit footnotes and attributes either way.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler for StringList.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// Course is one entry in a degree plan. The Key is the canonical
// "PREFIX NUM" course code when one is known, or the raw course name
// otherwise. Everything except Status and plan position is treated as
// immutable input by the optimizer.
type Course struct {
	Key             string       `json:"key"`
	Name            string       `json:"name"`
	Credits         float64      `json:"credits"`
	Status          CourseStatus `json:"status"`
	Grade           string       `json:"grade,omitempty"`
	OfferedTerms    []Term       `json:"offered_terms,omitempty"`
	Footnotes       StringList   `json:"footnotes,omitempty"`
	Attributes      StringList   `json:"attributes,omitempty"`
	Alternatives    []string     `json:"alternatives,omitempty"`
	AllowConcurrent bool         `json:"allow_concurrent,omitempty"`
}

// Schedulable reports whether the course is a real scheduling requirement.
// Courses with no name or non-positive credits are carried through the plan
// untouched but never assigned by the optimizer.
func (c *Course) Schedulable() bool {
	return strings.TrimSpace(c.Name) != "" && c.Credits > 0
}

// Taken reports whether the course is already completed.
func (c *Course) Taken() bool {
	return c.Status == StatusTaken
}

// CombinedText concatenates every free-text field attached to the course.
// This is the input to prerequisite extraction: catalog footnotes,
// attributes, the raw key and the display name, in that order.
func (c *Course) CombinedText() string {
	parts := make([]string, 0, len(c.Footnotes)+len(c.Attributes)+2)
	parts = append(parts, c.Footnotes...)
	parts = append(parts, c.Attributes...)
	parts = append(parts, c.Key, c.Name)
	return strings.Join(parts, " ")
}

// NormalizeCourseKey canonicalizes a course code for map lookups:
// whitespace runs collapse to a single space and letters are uppercased,
// so "cpts  121" and "CPTS 121" compare equal.
func NormalizeCourseKey(key string) string {
	return strings.ToUpper(strings.Join(strings.Fields(key), " "))
}
