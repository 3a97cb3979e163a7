package session

// ReviewItem is one row of the review list.
type ReviewItem struct {
	// Index is the position in Session.Questions.
	Index    int
	Question *Question
}

// Review coordinates post-submission filtering and expansion. Every
// operation is a no-op until the session is submitted.
type Review struct {
	session           *Session
	ShowOnlyIncorrect bool
	expanded          int // -1 when collapsed
}

// NewReview creates a review over s.
func NewReview(s *Session) *Review {
	return &Review{session: s, expanded: -1}
}

func (r *Review) active() bool {
	return r.session != nil && r.session.Submitted
}

// SetFilter switches between all questions and incorrect-only. Any
// expanded row collapses since display indices change.
func (r *Review) SetFilter(onlyIncorrect bool) {
	if !r.active() {
		return
	}
	if r.ShowOnlyIncorrect != onlyIncorrect {
		r.expanded = -1
	}
	r.ShowOnlyIncorrect = onlyIncorrect
}

// Displayed returns the visible rows in original order.
func (r *Review) Displayed() []ReviewItem {
	if !r.active() {
		return nil
	}
	qs := r.session.Questions
	items := make([]ReviewItem, 0, len(qs))
	for i := range qs {
		if r.ShowOnlyIncorrect && qs[i].Correct() {
			continue
		}
		items = append(items, ReviewItem{Index: i, Question: &qs[i]})
	}
	return items
}

// ToggleExpand expands the row at displayIndex, or collapses it if it is
// already expanded. At most one row is expanded.
func (r *Review) ToggleExpand(displayIndex int) {
	if !r.active() {
		return
	}
	if displayIndex < 0 || displayIndex >= len(r.Displayed()) {
		return
	}
	if r.expanded == displayIndex {
		r.expanded = -1
		return
	}
	r.expanded = displayIndex
}

// Expanded returns the expanded display index, if any.
func (r *Review) Expanded() (int, bool) {
	if !r.active() || r.expanded < 0 {
		return 0, false
	}
	return r.expanded, true
}
