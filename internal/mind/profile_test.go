package mind

import "testing"

func TestUserLevel(t *testing.T) {
	cases := []struct{ points, want int }{
		{0, 1}, {499, 1}, {500, 2}, {999, 2}, {1000, 3},
	}
	for _, c := range cases {
		if got := UserLevel(c.points); got != c.want {
			t.Errorf("UserLevel(%d) = %d, want %d", c.points, got, c.want)
		}
	}
}

func TestTrackMessageAndTeaching(t *testing.T) {
	s, _ := newTestStore(t)
	s.TrackMessage("1", "ada")
	s.TrackMessage("1", "ada")
	points := s.AddTeaching("1", "ada", "la pazienza è una forma di affetto")

	// 2 message points + 50 teach points + 300 first_love milestone.
	if points != 2+50+300 {
		t.Fatalf("points = %d, want 352", points)
	}
	p, ok := s.Profile("1")
	if !ok {
		t.Fatal("profile missing")
	}
	if p.Messages != 2 {
		t.Fatalf("messages = %d", p.Messages)
	}
	if len(p.Teachings) != 1 || p.Teachings[0].Value != 50 {
		t.Fatalf("teachings = %+v", p.Teachings)
	}
	if !contains(p.Revealed, "egg:first_love") {
		t.Fatal("first teaching should award first_love")
	}
}

func TestTeachingMilestones(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 5; i++ {
		s.AddTeaching("1", "ada", "lezione")
	}
	p, _ := s.Profile("1")
	if !contains(p.Revealed, "egg:teaching-spree") {
		t.Fatal("fifth teaching should award teaching-spree")
	}
	// 5 teachings + first_love + teaching-spree, each once.
	if p.Points != 5*50+300+200 {
		t.Fatalf("points = %d, want 750", p.Points)
	}

	s.AddTeaching("1", "ada", "sesta lezione")
	p, _ = s.Profile("1")
	if p.Points != 750+50 {
		t.Fatalf("milestones must not repeat: points = %d", p.Points)
	}
}

func TestChallengeLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	if s.ResolveChallenge("1", true) {
		t.Fatal("no pending challenge should resolve")
	}
	s.IssueChallenge("1", "ada", "insegnami tre parole nuove")
	if !s.ResolveChallenge("1", true) {
		t.Fatal("pending challenge should resolve")
	}
	p, _ := s.Profile("1")
	if p.Points != 75 {
		t.Fatalf("points = %d, want 75", p.Points)
	}
	if p.Challenges[0].Status != "won" {
		t.Fatalf("status = %q", p.Challenges[0].Status)
	}

	s.IssueChallenge("1", "ada", "un'altra sfida")
	s.ResolveChallenge("1", false)
	p, _ = s.Profile("1")
	if p.Points != 75 || p.Challenges[1].Status != "lost" {
		t.Fatalf("lost challenge should pay nothing: %+v", p)
	}
}

func TestTopTeachers(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddPoints("1", "ada", 100)
	s.AddPoints("2", "bea", 300)
	s.AddPoints("3", "cleo", 200)

	top := s.TopTeachers(2)
	if len(top) != 2 || top[0].Username != "bea" || top[1].Username != "cleo" {
		t.Fatalf("top = %+v", top)
	}
}
