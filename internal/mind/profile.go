package mind

import (
	"sort"

	"github.com/google/uuid"
)

// PointsPerLevel — points needed to advance one user level.
const PointsPerLevel = 500

// UserLevel converts accumulated points into a level, starting at 1.
func UserLevel(points int) int {
	return points/PointsPerLevel + 1
}

// TrackMessage records one message from a user, creating the profile on
// first sight and awarding message points.
func (s *Store) TrackMessage(id, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile(id, username)
	p.Messages++
	p.Points += s.cfg.MessagePoints
	s.saveUsers()
}

// profile fetches or creates the profile for id. Caller holds the lock.
func (s *Store) profile(id, username string) *UserProfile {
	p := s.users.Users[id]
	if p == nil {
		p = &UserProfile{Username: username, FirstSeen: s.now()}
		s.users.Users[id] = p
	}
	if username != "" {
		p.Username = username
	}
	return p
}

// AddTeaching awards teach points and records the teaching on the
// user's profile.
func (s *Store) AddTeaching(id, username, content string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile(id, username)
	p.Points += s.cfg.TeachPoints
	p.Teachings = append(p.Teachings, Teaching{
		Content: content, TaughtAt: s.now(), Value: s.cfg.TeachPoints,
	})
	switch len(p.Teachings) {
	case 1:
		s.awardEgg(p, "first_love")
	case 5:
		s.awardEgg(p, "teaching-spree")
	}
	if s.learned.Level >= 5 {
		s.awardEgg(p, "perfect-growth")
	}
	s.saveUsers()
	return p.Points
}

// AddPoints grants bonus points, as for easter eggs or won challenges.
func (s *Store) AddPoints(id, username string, points int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile(id, username)
	p.Points += points
	s.saveUsers()
	return p.Points
}

// IssueChallenge records a pending challenge for the user.
func (s *Store) IssueChallenge(id, username, prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profile(id, username)
	p.Challenges = append(p.Challenges, Challenge{
		ID: uuid.NewString(), Prompt: prompt, IssuedAt: s.now(), Status: "pending",
	})
	s.saveUsers()
}

// ResolveChallenge settles the oldest pending challenge. Winning pays
// 75 points. Returns false when nothing was pending.
func (s *Store) ResolveChallenge(id string, won bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.users.Users[id]
	if p == nil {
		return false
	}
	for i := range p.Challenges {
		if p.Challenges[i].Status != "pending" {
			continue
		}
		if won {
			p.Challenges[i].Status = "won"
			p.Points += 75
		} else {
			p.Challenges[i].Status = "lost"
		}
		s.saveUsers()
		return true
	}
	return false
}

// Profile returns a copy of the profile for id.
func (s *Store) Profile(id string) (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.users.Users[id]
	if p == nil {
		return UserProfile{}, false
	}
	out := *p
	out.Teachings = append([]Teaching(nil), p.Teachings...)
	out.Challenges = append([]Challenge(nil), p.Challenges...)
	out.Revealed = append([]string(nil), p.Revealed...)
	return out, true
}

// TopTeachers returns up to n profiles sorted by points, highest first.
func (s *Store) TopTeachers(n int) []UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]UserProfile, 0, len(s.users.Users))
	for _, p := range s.users.Users {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
