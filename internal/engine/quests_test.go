package engine

import "testing"

func TestCompleteQuestResolvesRewardsAndDefersXP(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AdjustCurrency(CurrencyCodexPoints, 4900) // balance 5000

	q, err := s.CreateQuest(QuestInput{
		Title:    "File the incorporation papers",
		Type:     "milestone",
		XPReward: 250,
		Rewards: QuestRewards{
			Currencies: map[string]int{CurrencyCodexPoints: 100},
			Loot:       []LootReward{{Name: "Elixir of Clarity", Slot: "consumable", Tier: "Rare", Quantity: 2}},
			SkillIDs:   []string{"skill_discipline"},
			SkillXP:    40,
		},
	})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}

	res := s.CompleteQuest(q.ID)
	if res == nil {
		t.Fatalf("expected completion result")
	}

	snap := s.Snapshot()

	var codex int
	for _, c := range snap.Currencies {
		if c.Name == CurrencyCodexPoints {
			codex = c.Amount
		}
	}
	if codex != 5100 {
		t.Fatalf("codex points = %d, want 5100", codex)
	}

	var elixir *Item
	for i := range snap.Inventory {
		if snap.Inventory[i].Name == "Elixir of Clarity" {
			elixir = &snap.Inventory[i]
		}
	}
	if elixir == nil || elixir.Quantity != 2 {
		t.Fatalf("loot not merged: %+v", elixir)
	}

	if snap.Proficiency["skill_discipline"] != 40 {
		t.Fatalf("proficiency = %d, want 40", snap.Proficiency["skill_discipline"])
	}

	// Synchronous test scheduler: the deferred grant already landed as a
	// separate AddExperience mutation. 250 XP crosses level 1's threshold of
	// 200 and carries 50 into level 2.
	if snap.Character.Level != 2 {
		t.Fatalf("level = %d, want 2 after deferred grant", snap.Character.Level)
	}
	if snap.Character.XP != 50 {
		t.Fatalf("xp = %d, want 50 carried past the level-1 threshold", snap.Character.XP)
	}

	var quest *Quest
	for i := range snap.Quests {
		if snap.Quests[i].ID == q.ID {
			quest = &snap.Quests[i]
		}
	}
	if quest == nil || quest.Status != QuestCompleted {
		t.Fatalf("quest not completed: %+v", quest)
	}
}

func TestCompleteQuestTwiceIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)

	q, err := s.CreateQuest(QuestInput{
		Title:    "Morning run",
		XPReward: 50,
		Rewards:  QuestRewards{Currencies: map[string]int{CurrencyAetherShards: 10}},
	})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}

	if res := s.CompleteQuest(q.ID); res == nil {
		t.Fatalf("first completion should apply")
	}
	first := s.Snapshot()

	if res := s.CompleteQuest(q.ID); res != nil {
		t.Fatalf("second completion should be a no-op")
	}
	second := s.Snapshot()

	if first.Character.XP != second.Character.XP {
		t.Fatalf("xp changed on repeat completion: %d -> %d", first.Character.XP, second.Character.XP)
	}
	for i := range first.Currencies {
		if first.Currencies[i] != second.Currencies[i] {
			t.Fatalf("currency changed on repeat completion: %+v -> %+v", first.Currencies[i], second.Currencies[i])
		}
	}
}

func TestCompleteQuestAbsentIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	if res := s.CompleteQuest("nope"); res != nil {
		t.Fatalf("expected nil result for absent quest")
	}
}

func TestLootMergesByNameIntoExistingStack(t *testing.T) {
	s, _, _ := newTestStore(t)

	q, _ := s.CreateQuest(QuestInput{
		Title:   "Scavenge",
		Rewards: QuestRewards{Loot: []LootReward{{Name: "Focus Band", Quantity: 1}}},
	})
	s.CompleteQuest(q.ID)

	snap := s.Snapshot()
	count := 0
	for _, it := range snap.Inventory {
		if it.Name == "Focus Band" {
			count++
			if it.Quantity != 2 {
				t.Fatalf("quantity = %d, want 2", it.Quantity)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected a single Focus Band stack, got %d", count)
	}
}

func TestUpdateQuestProgress(t *testing.T) {
	s, _, _ := newTestStore(t)

	withProgress, _ := s.CreateQuest(QuestInput{
		Title:    "Read 12 books",
		Progress: &QuestProgress{Current: 0, Target: 12},
	})
	without, _ := s.CreateQuest(QuestInput{Title: "One-shot errand"})

	target := 20
	s.UpdateQuestProgress(withProgress.ID, 5, &target)
	s.UpdateQuestProgress(without.ID, 5, nil)
	s.UpdateQuestProgress("missing", 5, nil)

	snap := s.Snapshot()
	for _, q := range snap.Quests {
		switch q.ID {
		case withProgress.ID:
			if q.Progress == nil || q.Progress.Current != 5 || q.Progress.Target != 20 {
				t.Fatalf("progress not stored: %+v", q.Progress)
			}
		case without.ID:
			if q.Progress != nil {
				t.Fatalf("progress appeared on quest without one: %+v", q.Progress)
			}
		}
	}
}

func TestCreateQuestRequiresTitle(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.CreateQuest(QuestInput{Title: "   "}); err == nil {
		t.Fatalf("expected error for blank title")
	}
}

func TestDeleteQuest(t *testing.T) {
	s, _, _ := newTestStore(t)

	q, _ := s.CreateQuest(QuestInput{Title: "Temp"})
	s.DeleteQuest(q.ID)
	s.DeleteQuest(q.ID) // repeat delete is harmless

	for _, got := range s.Snapshot().Quests {
		if got.ID == q.ID {
			t.Fatalf("quest still present after delete")
		}
	}
}
