package bank

import (
	"strconv"
	"strings"
)

// Bank is the full catalog of weeks and questions for a course.
type Bank struct {
	Title string `json:"title"`
	Weeks []Week `json:"weeks"`
}

// Week is a labeled group of questions within a bank.
type Week struct {
	// Name is the numeric week label, e.g. "3".
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question as served by the bank.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`

	// Answer lists the correct answers. Always has at least one entry.
	Answer []string `json:"answer"`
}

// Number parses the week label. Labels that are not positive integers
// report false and never match a week filter.
func (w Week) Number() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(w.Name))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Expected returns the answer honored for scoring: the first listed one.
func (q Question) Expected() string {
	if len(q.Answer) == 0 {
		return ""
	}
	return q.Answer[0]
}

// QuestionCount returns the total number of questions across all weeks.
func (b *Bank) QuestionCount() int {
	n := 0
	for _, w := range b.Weeks {
		n += len(w.Questions)
	}
	return n
}
