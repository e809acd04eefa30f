package engine

import (
	"testing"
)

// grantLevels pushes the character up by exactly n levels.
func grantLevels(t *testing.T, s *Store, n int) {
	t.Helper()
	start := s.Snapshot().Character.Level
	for i := 0; i < n; i++ {
		s.AddExperience(s.Snapshot().Character.XPToNextLevel - s.Snapshot().Character.XP)
	}
	if got := s.Snapshot().Character.Level; got != start+n {
		t.Fatalf("level = %d, want %d", got, start+n)
	}
}

func TestAvailableTemplatesGatedByLevel(t *testing.T) {
	s, _, _ := newTestStore(t)

	codes := func() map[string]bool {
		out := map[string]bool{}
		for _, tpl := range s.AvailableTemplates() {
			out[tpl.Code] = true
		}
		return out
	}

	at1 := codes()
	if !at1["habit_first_light"] || !at1["quest_first_trial"] {
		t.Fatalf("level-1 templates missing: %v", at1)
	}
	if at1["habit_deep_work"] || at1["quest_shadow_audit"] {
		t.Fatalf("locked templates visible at level 1: %v", at1)
	}

	grantLevels(t, s, 9)

	at10 := codes()
	if !at10["habit_deep_work"] || !at10["quest_shadow_audit"] {
		t.Fatalf("templates still locked at level 10: %v", at10)
	}
}

func TestAcceptTemplateInstantiatesQuest(t *testing.T) {
	s, _, _ := newTestStore(t)

	id, err := s.AcceptTemplate("quest_first_trial")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	snap := s.Snapshot()
	var found *Quest
	for i := range snap.Quests {
		if snap.Quests[i].ID == id {
			found = &snap.Quests[i]
		}
	}
	if found == nil {
		t.Fatalf("accepted quest %q not in collection", id)
	}
	if found.Title != "The First Trial" || found.XPReward != 100 {
		t.Fatalf("unexpected quest: %+v", found)
	}
	if found.Rewards.Currencies[CurrencyCodexPoints] != 25 {
		t.Fatalf("reward currencies not carried over: %+v", found.Rewards)
	}

	// Instantiated templates disappear from the available list and cannot be
	// accepted twice.
	for _, tpl := range s.AvailableTemplates() {
		if tpl.Code == "quest_first_trial" {
			t.Fatalf("accepted template still listed")
		}
	}
	if _, err := s.AcceptTemplate("quest_first_trial"); err == nil {
		t.Fatalf("expected error accepting template twice")
	}
}

func TestAcceptTemplateInstantiatesHabit(t *testing.T) {
	s, _, _ := newTestStore(t)

	id, err := s.AcceptTemplate("habit_first_light")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	snap := s.Snapshot()
	var found *Task
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == id {
			found = &snap.Tasks[i]
		}
	}
	if found == nil {
		t.Fatalf("accepted habit %q not in collection", id)
	}
	if found.Type != TaskKindHabit || found.Recurrence != RecurrenceDaily {
		t.Fatalf("unexpected task shape: %+v", found)
	}
}

func TestAcceptTemplateRespectsLevelGate(t *testing.T) {
	s, _, _ := newTestStore(t)

	if _, err := s.AcceptTemplate("quest_shadow_audit"); err == nil {
		t.Fatalf("expected level-gate error at level 1")
	}

	grantLevels(t, s, 9)
	if _, err := s.AcceptTemplate("quest_shadow_audit"); err != nil {
		t.Fatalf("accept at level 10: %v", err)
	}
}

func TestAcceptTemplateUnknownCode(t *testing.T) {
	s, _, _ := newTestStore(t)

	if _, err := s.AcceptTemplate("no_such_template"); err == nil {
		t.Fatalf("expected error for unknown code")
	}
	if _, err := s.AcceptTemplate("  "); err == nil {
		t.Fatalf("expected error for blank code")
	}
}
