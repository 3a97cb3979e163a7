package session

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizzer/internal/bank"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// testBank has week 1 with 3 questions, week 2 with 2, and a non-numeric week.
func testBank() *bank.Bank {
	mk := func(week, n int) []bank.Question {
		var qs []bank.Question
		for i := 1; i <= n; i++ {
			qs = append(qs, bank.Question{
				Question: fmt.Sprintf("w%d q%d", week, i),
				Options:  []string{"a", "b", "c"},
				Answer:   []string{"b", "c"},
			})
		}
		return qs
	}
	return &bank.Bank{
		Title: "Test Course",
		Weeks: []bank.Week{
			{Name: "1", Questions: mk(1, 3)},
			{Name: "2", Questions: mk(2, 2)},
			{Name: "bonus", Questions: mk(9, 4)},
		},
	}
}

// fakeFetcher implements bank.Fetcher for testing.
type fakeFetcher struct {
	bank  *bank.Bank
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, code string) (*bank.Bank, error) {
	f.calls = append(f.calls, code)
	if f.err != nil {
		return nil, f.err
	}
	return f.bank, nil
}

// testSession builds a 5-question session with every expected answer "b".
func testSession(timeBudget int) *Session {
	var qs []Question
	for i := 0; i < 5; i++ {
		qs = append(qs, Question{
			Text:     fmt.Sprintf("q%d", i),
			Options:  []string{"a", "b", "c"},
			Expected: "b",
			Week:     "1",
		})
	}
	return New("test-session-id", qs, timeBudget)
}
