package content

// Session is the explicit per-run state of an interactive session: the
// selected day, the context note, and the last generation results. It is
// passed around as a value; the controller that owns it resets the result
// fields on each new generate action instead of mutating them in place.
type Session struct {
	Day        string
	Context    string
	Ideas      []Idea
	Selected   int
	BriefPosts []string
}

// NewSession starts a session for the given day with nothing generated yet.
func NewSession(day string) Session {
	return Session{
		Day:      day,
		Selected: -1,
	}
}

// WithIdeas replaces the idea batch wholesale and clears the selection and
// any brief posts derived from the previous batch.
func (s Session) WithIdeas(ideas []Idea) Session {
	s.Ideas = ideas
	s.Selected = -1
	s.BriefPosts = nil

	return s
}

// WithSelection marks an idea as selected and clears stale brief posts.
// Out-of-range indexes clear the selection instead.
func (s Session) WithSelection(index int) Session {
	if index < 0 || index >= len(s.Ideas) {
		s.Selected = -1
	} else {
		s.Selected = index
	}

	s.BriefPosts = nil

	return s
}

// WithBriefPosts replaces the brief post batch wholesale.
func (s Session) WithBriefPosts(posts []string) Session {
	s.BriefPosts = posts
	return s
}

// SelectedIdea returns the currently selected idea, if any.
func (s Session) SelectedIdea() (Idea, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Ideas) {
		return Idea{}, false
	}

	return s.Ideas[s.Selected], true
}
