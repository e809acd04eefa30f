package engine

// RewardOutcome summarizes the deltas a completion granted.
type RewardOutcome struct {
	Currencies  map[string]int
	LootNames   []string
	SkillXP     map[string]int // proficiency key → xp
	XPScheduled int            // granted later through AddExperience
}

// resolveRewards applies a quest's declared reward fields to the state and
// reports what changed. It switches on which optional fields are present.
// Must be called with the lock held.
func (s *Store) resolveRewards(rewards QuestRewards) RewardOutcome {
	out := RewardOutcome{}

	for name, amount := range rewards.Currencies {
		s.addCurrency(name, amount)
		if out.Currencies == nil {
			out.Currencies = map[string]int{}
		}
		out.Currencies[name] += amount
	}

	for _, loot := range rewards.Loot {
		s.mergeLoot(loot)
		out.LootNames = append(out.LootNames, loot.Name)
	}

	if rewards.SkillXP > 0 {
		for _, skillID := range rewards.SkillIDs {
			key := ProficiencyKey(skillID, "")
			s.addProficiency(key, rewards.SkillXP)
			if out.SkillXP == nil {
				out.SkillXP = map[string]int{}
			}
			out.SkillXP[key] += rewards.SkillXP
		}
	}

	return out
}

// addCurrency credits an existing currency by name, creating it when absent.
func (s *Store) addCurrency(name string, amount int) {
	for i := range s.state.Currencies {
		if s.state.Currencies[i].Name == name {
			s.state.Currencies[i].Amount += amount
			return
		}
	}
	s.state.Currencies = append(s.state.Currencies, Currency{Name: name, Amount: amount})
}

// mergeLoot merges a loot grant into the inventory by name: quantity bump
// when the item exists, append otherwise.
func (s *Store) mergeLoot(loot LootReward) {
	qty := loot.Quantity
	if qty < 1 {
		qty = 1
	}
	for i := range s.state.Inventory {
		if s.state.Inventory[i].Name == loot.Name {
			s.state.Inventory[i].Quantity += qty
			return
		}
	}
	s.state.Inventory = append(s.state.Inventory, Item{
		Slot:     loot.Slot,
		Name:     loot.Name,
		Tier:     loot.Tier,
		Quantity: qty,
	})
}

func (s *Store) addProficiency(key string, xp int) {
	if xp <= 0 {
		return
	}
	if s.state.Proficiency == nil {
		s.state.Proficiency = map[string]int{}
	}
	s.state.Proficiency[key] += xp
}
