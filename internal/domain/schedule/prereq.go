package schedule

import (
	"regexp"
	"strings"

	"github.com/planwell/planwell-api/internal/domain"
)

// Group is one prerequisite requirement: a list of interchangeable course
// keys. The requirement is satisfied when any one alternative is already
// scheduled (OR within a group); a course's requirements are the conjunction
// of all its groups (AND across groups).
type Group []string

// Extraction is the parsed prerequisite information for one course's
// combined free text.
type Extraction struct {
	// Groups holds the prerequisite groups in the order they appear in the text.
	Groups []Group

	// MinLevel is the detected class-standing requirement ("junior" or
	// "senior"), or empty when the text declares none.
	MinLevel domain.ClassLevel

	// Concurrent is true when the text permits concurrent enrollment,
	// e.g. "or may be taken concurrently".
	Concurrent bool
}

// maxLookback bounds how far a bare course number may sit from the token it
// inherits a prefix from. Beyond this window the number is treated as
// unrelated text and discarded.
const maxLookback = 80

// token is one course-code candidate found by the lexer.
type token struct {
	prefix string // subject prefix, e.g. "CPTS"; empty for a bare number
	number string // catalog number, e.g. "121" or "121L"
	start  int    // byte offset of the token in the source text
	end    int    // byte offset just past the token
}

func (t token) key() string {
	return t.prefix + " " + t.number
}

// connector words that must never be mistaken for a subject prefix.
var prefixStopwords = map[string]bool{
	"or": true, "and": true, "of": true, "in": true,
	"to": true, "the": true, "with": true, "for": true,
}

var (
	orConnector   = regexp.MustCompile(`(?i)\bor\b`)
	listConnector = regexp.MustCompile(`(?i)\bor\b|\band\b|[,/;]`)
)

// ExtractPrerequisites parses free text (footnotes, attributes, raw label,
// name) into ordered prerequisite groups. When the text yields no course
// tokens, fallbackCodes (catalog-declared prerequisites) become one
// single-alternative group each.
func ExtractPrerequisites(text string, fallbackCodes []string) Extraction {
	var ext Extraction

	toks := resolveBareNumbers(text, scanCourseTokens(text))
	ext.Groups = groupTokens(text, toks)

	if len(ext.Groups) == 0 && len(fallbackCodes) > 0 {
		for _, code := range fallbackCodes {
			key := domain.NormalizeCourseKey(code)
			if key != "" {
				ext.Groups = append(ext.Groups, Group{key})
			}
		}
	}

	lower := strings.ToLower(text)
	// Senior wins when both appear; it is the stricter requirement.
	if strings.Contains(lower, "senior") {
		ext.MinLevel = domain.LevelSenior
	} else if strings.Contains(lower, "junior") {
		ext.MinLevel = domain.LevelJunior
	}
	ext.Concurrent = strings.Contains(lower, "concurrent")

	return ext
}

// scanCourseTokens walks the text and emits every course-code candidate:
// either PREFIX NUMBER (2-6 letters, optional separators, 3 digits plus an
// optional trailing letter) or a bare 3-digit number.
func scanCourseTokens(text string) []token {
	var toks []token
	n := len(text)
	i := 0
	for i < n {
		c := text[i]
		switch {
		case isLetter(c):
			start := i
			for i < n && isLetter(text[i]) {
				i++
			}
			word := text[start:i]
			if len(word) < 2 || len(word) > 6 || prefixStopwords[strings.ToLower(word)] {
				continue
			}
			// Optional separators between prefix and number.
			j := i
			for j < n && (text[j] == ' ' || text[j] == '\t' || text[j] == '-') {
				j++
			}
			num, end, ok := scanNumber(text, j)
			if !ok {
				continue
			}
			toks = append(toks, token{
				prefix: strings.ToUpper(word),
				number: strings.ToUpper(num),
				start:  start,
				end:    end,
			})
			i = end
		case isDigit(c):
			num, end, ok := scanNumber(text, i)
			if ok {
				toks = append(toks, token{number: num, start: i, end: end})
				i = end
				continue
			}
			// Skip the whole digit run so "1234" is not re-scanned as "234".
			for i < n && isDigit(text[i]) {
				i++
			}
		default:
			i++
		}
	}
	return toks
}

// scanNumber matches exactly three digits plus an optional trailing letter
// at position i, rejecting longer digit runs.
func scanNumber(text string, i int) (string, int, bool) {
	n := len(text)
	if i+3 > n {
		return "", 0, false
	}
	for k := i; k < i+3; k++ {
		if !isDigit(text[k]) {
			return "", 0, false
		}
	}
	end := i + 3
	if end < n && isDigit(text[end]) {
		return "", 0, false
	}
	// A single trailing letter is part of the number ("101L"); a second
	// letter means we ran into an ordinary word.
	if end < n && isLetter(text[end]) {
		if end+1 < n && isLetter(text[end+1]) {
			return "", 0, false
		}
		end++
	}
	return text[i:end], end, true
}

// resolveBareNumbers assigns each bare number the prefix of the nearest
// preceding prefixed token, but only when the connecting text is a short
// list continuation ("or", "and", comma, slash, semicolon). Bare numbers
// with no such link are ambiguous and dropped.
func resolveBareNumbers(text string, toks []token) []token {
	resolved := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.prefix != "" {
			resolved = append(resolved, t)
			continue
		}
		if len(resolved) == 0 {
			continue
		}
		prev := resolved[len(resolved)-1]
		gap := text[prev.end:t.start]
		if len(gap) > maxLookback || !listConnector.MatchString(gap) {
			continue
		}
		t.prefix = prev.prefix
		resolved = append(resolved, t)
	}
	return resolved
}

// groupTokens turns the resolved token stream into prerequisite groups.
// Adjacent tokens joined by "or" or "/" form an OR-chain; any other
// connector starts a new group.
func groupTokens(text string, toks []token) []Group {
	var groups []Group
	var current Group
	var prevEnd int

	for i, t := range toks {
		if i == 0 {
			current = Group{t.key()}
			prevEnd = t.end
			continue
		}
		gap := text[prevEnd:t.start]
		if orConnector.MatchString(gap) || strings.Contains(gap, "/") {
			current = appendAlternative(current, t.key())
		} else {
			groups = append(groups, current)
			current = Group{t.key()}
		}
		prevEnd = t.end
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// appendAlternative adds key to the group unless an equal alternative
// (case-insensitive, whitespace-normalized) is already present.
func appendAlternative(g Group, key string) Group {
	for _, existing := range g {
		if existing == key {
			return g
		}
	}
	return append(g, key)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
