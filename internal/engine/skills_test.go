package engine

import "testing"

func codexBalance(t *testing.T, s *Store) int {
	t.Helper()
	for _, c := range s.Snapshot().Currencies {
		if c.Name == CurrencyCodexPoints {
			return c.Amount
		}
	}
	t.Fatalf("codex points currency missing")
	return 0
}

func findSkill(t *testing.T, s *Store, id string) Skill {
	t.Helper()
	for _, sk := range s.Snapshot().Skills {
		if sk.ID == id {
			return sk
		}
	}
	t.Fatalf("skill %s missing", id)
	return Skill{}
}

func TestUnlockSkillInsufficientBalance(t *testing.T) {
	s, _, _ := newTestStore(t)

	// Default balance 100, Deep Work costs 120.
	if s.UnlockSkill("skill_deep_work") {
		t.Fatalf("unlock should fail on insufficient balance")
	}
	if got := codexBalance(t, s); got != 100 {
		t.Fatalf("balance = %d, want untouched 100", got)
	}
	if findSkill(t, s, "skill_deep_work").Unlocked {
		t.Fatalf("skill unexpectedly unlocked")
	}
}

func TestUnlockSkillDebitsAtomically(t *testing.T) {
	s, _, _ := newTestStore(t)

	if !s.UnlockSkill("skill_discipline") { // costs 50 of 100
		t.Fatalf("unlock should succeed")
	}
	if got := codexBalance(t, s); got != 50 {
		t.Fatalf("balance = %d, want 50", got)
	}
	if !findSkill(t, s, "skill_discipline").Unlocked {
		t.Fatalf("skill not unlocked")
	}

	// Repeat unlock must not debit again.
	if s.UnlockSkill("skill_discipline") {
		t.Fatalf("repeat unlock should be a no-op")
	}
	if got := codexBalance(t, s); got != 50 {
		t.Fatalf("balance = %d after repeat, want 50", got)
	}
}

func TestUnlockSkillAbsent(t *testing.T) {
	s, _, _ := newTestStore(t)
	if s.UnlockSkill("missing") {
		t.Fatalf("unlock of absent skill should be a no-op")
	}
}

func TestAddUpdateDeleteSkill(t *testing.T) {
	s, _, _ := newTestStore(t)

	sk, err := s.AddSkill(SkillInput{Name: "Cold Exposure", Tier: 9, Category: "body", Cost: 75})
	if err != nil {
		t.Fatalf("add skill: %v", err)
	}
	if sk.Tier != 7 {
		t.Fatalf("tier = %d, want clamped 7", sk.Tier)
	}

	desc := "Daily cold shower line."
	s.UpdateSkill(sk.ID, SkillPatch{Description: &desc})
	if got := findSkill(t, s, sk.ID); got.Description != desc {
		t.Fatalf("description not updated: %q", got.Description)
	}

	s.DeleteSkill(sk.ID)
	for _, got := range s.Snapshot().Skills {
		if got.ID == sk.ID {
			t.Fatalf("skill still present after delete")
		}
	}
}

func TestSubSkillLifecycle(t *testing.T) {
	s, _, _ := newTestStore(t)

	// Update/delete against a parent with no collection: no-ops.
	name := "X"
	s.UpdateSubSkill("skill_discipline", "nope", SkillPatch{Name: &name})
	s.DeleteSubSkill("skill_discipline", "nope")

	// First insert creates the collection.
	sub, err := s.AddSubSkill("skill_discipline", SubSkillInput{Name: "Streak Guard", Tier: 1, Cost: 20})
	if err != nil {
		t.Fatalf("add sub-skill: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.SubSkills["skill_discipline"]) != 1 {
		t.Fatalf("sub-skill collection = %+v", snap.SubSkills["skill_discipline"])
	}

	newName := "Streak Warden"
	s.UpdateSubSkill("skill_discipline", sub.ID, SkillPatch{Name: &newName})
	snap = s.Snapshot()
	if snap.SubSkills["skill_discipline"][0].Name != newName {
		t.Fatalf("name = %q, want %q", snap.SubSkills["skill_discipline"][0].Name, newName)
	}

	s.DeleteSubSkill("skill_discipline", sub.ID)
	snap = s.Snapshot()
	if len(snap.SubSkills["skill_discipline"]) != 0 {
		t.Fatalf("sub-skill not deleted: %+v", snap.SubSkills["skill_discipline"])
	}
}

func TestStructuralSkillOpsNeverTouchProficiency(t *testing.T) {
	s, _, _ := newTestStore(t)

	task, _ := s.CreateTask(TaskInput{Title: "Focus", Recurrence: RecurrenceDaily, SkillID: "skill_discipline", SkillXPReward: 10})
	s.CompleteTask(task.ID)

	before := s.Snapshot().Proficiency["skill_discipline"]
	s.UnlockSkill("skill_discipline")
	cost := 10
	s.UpdateSkill("skill_discipline", SkillPatch{Cost: &cost})
	after := s.Snapshot().Proficiency["skill_discipline"]

	if before != after {
		t.Fatalf("structural ops changed proficiency: %d -> %d", before, after)
	}
}
