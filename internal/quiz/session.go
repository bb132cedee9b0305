package quiz

// Session is the mutable bookkeeping for one run of the quiz: which cards
// have been shown in the current cycle, the live card, score, streak and
// the round counter. It is only mutated through Controller.
type Session struct {
	used    map[int]struct{}
	current int
	score   int
	streak  int
	round   uint64
}

// NewSession returns an empty session with no live card.
func NewSession() *Session {
	return &Session{
		used:    make(map[int]struct{}),
		current: -1,
	}
}

// Score returns the number of correct answers in the current cycle.
func (s *Session) Score() int { return s.score }

// Streak returns the number of consecutive correct answers.
func (s *Session) Streak() int { return s.streak }

// Round returns the live round identifier. It only ever increases.
func (s *Session) Round() uint64 { return s.round }

// UsedCount returns how many cards have been shown in the current cycle.
func (s *Session) UsedCount() int { return len(s.used) }

// IsUsed reports whether the card at row position i was shown this cycle.
func (s *Session) IsUsed(i int) bool {
	_, ok := s.used[i]
	return ok
}

// Current returns the row position of the live card.
func (s *Session) Current() (int, bool) {
	return s.current, s.current >= 0
}

func (s *Session) begin(i int) uint64 {
	s.used[i] = struct{}{}
	s.current = i
	s.round++
	return s.round
}

// resetCycle clears the cycle state. The round counter is kept so timers
// from the previous cycle stay stale.
func (s *Session) resetCycle() {
	clear(s.used)
	s.score = 0
	s.streak = 0
}

// forget drops used positions that no longer exist in a collection of size n.
func (s *Session) forget(n int) {
	for i := range s.used {
		if i >= n {
			delete(s.used, i)
		}
	}
}
