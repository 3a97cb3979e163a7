package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizzer/internal/bank"
)

// Initializer builds sessions from quiz links.
type Initializer struct {
	fetcher bank.Fetcher
	rng     *rand.Rand
}

// InitOption configures an Initializer.
type InitOption func(*Initializer)

// WithRand sets the random source used for sampling.
func WithRand(r *rand.Rand) InitOption {
	return func(i *Initializer) {
		if r != nil {
			i.rng = r
		}
	}
}

// NewInitializer creates an Initializer that fetches banks through f.
func NewInitializer(f bank.Fetcher, opts ...InitOption) *Initializer {
	now := uint64(time.Now().UnixNano())
	i := &Initializer{
		fetcher: f,
		rng:     rand.New(rand.NewPCG(now, now>>1|1)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Init parses the link, fetches the bank and samples a new session.
// Errors are terminal: no partial session is returned.
func (i *Initializer) Init(ctx context.Context, link string) (*Session, error) {
	params, err := ParseLink(link)
	if err != nil {
		return nil, err
	}

	b, err := i.fetcher.Fetch(ctx, params.CourseCode)
	if err != nil {
		return nil, err
	}

	s, err := Build(b, params, i.rng)
	if err != nil {
		return nil, err
	}
	s.Link = link
	return s, nil
}

// Build samples a session from a fetched bank.
func Build(b *bank.Bank, params Params, rng *rand.Rand) (*Session, error) {
	candidates := Candidates(b, params.Weeks)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: weeks %v of %q have no questions", ErrEmptySelection, params.Weeks, params.CourseCode)
	}

	count := len(candidates)
	if params.NumQ != AllQuestions && params.NumQ < count {
		count = params.NumQ
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: zero questions requested", ErrEmptySelection)
	}

	Shuffle(rng, candidates)

	s := New(uuid.New().String(), candidates[:count:count], params.TimeBudget)
	s.BankTitle = b.Title
	return s, nil
}

// Candidates flattens the questions of the requested weeks, in bank order.
func Candidates(b *bank.Bank, weeks []int) []Question {
	if b == nil {
		return nil
	}
	want := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		want[w] = true
	}

	var out []Question
	for _, w := range b.Weeks {
		n, ok := w.Number()
		if !ok || !want[n] {
			continue
		}
		for _, q := range w.Questions {
			out = append(out, NewQuestion(q, w.Name))
		}
	}
	return out
}

// Shuffle permutes s uniformly in place (Fisher-Yates, descending).
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
