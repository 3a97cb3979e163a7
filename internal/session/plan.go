package session

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultTimeBudget is used when the link has no usable time parameter.
const DefaultTimeBudget = 30 * 60

// AllQuestions is the NumQ value meaning "every candidate".
const AllQuestions = -1

// Params are the session parameters carried by a quiz link.
type Params struct {
	CourseCode string
	Weeks      []int // sorted, unique, positive
	NumQ       int   // AllQuestions when absent
	TimeBudget int   // seconds
}

// ParseLink extracts session parameters from a quiz link such as
// "https://host/quiz/CS101?weeks=1-2-5&numQ=10&time=003000". A bare
// path with query is accepted too.
func ParseLink(raw string) (Params, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	code, ok := courseCode(u.Path)
	if !ok {
		return Params{}, fmt.Errorf("%w: no /quiz/<course> segment in %q", ErrInvalidURL, u.Path)
	}

	q := u.Query()
	p := Params{
		CourseCode: code,
		Weeks:      ParseWeeks(q.Get("weeks")),
		NumQ:       AllQuestions,
		TimeBudget: ParseTimeBudget(q.Get("time")),
	}

	if v := strings.TrimSpace(q.Get("numQ")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Params{}, fmt.Errorf("%w: numQ must be a non-negative integer, got %q", ErrInvalidURL, v)
		}
		p.NumQ = n
	}

	return p, nil
}

// courseCode returns the path segment following the first "quiz" segment.
func courseCode(path string) (string, bool) {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if seg != "quiz" {
			continue
		}
		if i+1 < len(segs) && strings.TrimSpace(segs[i+1]) != "" {
			return segs[i+1], true
		}
		return "", false
	}
	return "", false
}

// ParseWeeks parses a dash-separated week list like "1-2-5". Tokens that
// are not positive integers are ignored.
func ParseWeeks(v string) []int {
	seen := make(map[int]bool)
	var weeks []int
	for _, tok := range strings.Split(v, "-") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n <= 0 || seen[n] {
			continue
		}
		seen[n] = true
		weeks = append(weeks, n)
	}
	sort.Ints(weeks)
	return weeks
}

// ParseTimeBudget converts a 6-digit HHMMSS string to seconds. Absent,
// malformed or zero budgets fall back to DefaultTimeBudget.
func ParseTimeBudget(v string) int {
	v = strings.TrimSpace(v)
	if len(v) != 6 {
		return DefaultTimeBudget
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return DefaultTimeBudget
		}
	}
	h, _ := strconv.Atoi(v[0:2])
	m, _ := strconv.Atoi(v[2:4])
	s, _ := strconv.Atoi(v[4:6])

	total := h*3600 + m*60 + s
	if total == 0 {
		return DefaultTimeBudget
	}
	return total
}

// FormatClock renders seconds as m:ss, or h:mm:ss past the hour.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
