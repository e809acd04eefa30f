package engine

// levelUpGains are the per-level attribute increments applied on every
// level-up. Physical attributes grow slightly faster than mental ones.
var levelUpGains = Attributes{
	Strength:     2,
	Agility:      2,
	Vitality:     2,
	Intelligence: 1,
	Perception:   1,
	Willpower:    1,
	Charisma:     1,
}

// AddExperience grants experience to the character, looping across as many
// level thresholds as the amount covers. Experience is always left strictly
// below the (possibly recomputed) threshold. A zero amount is a no-op that
// still persists.
func (s *Store) AddExperience(amount int) {
	if amount < 0 {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.state.Character
	if c.Level < 1 {
		c.Level = 1
	}
	if c.XPToNextLevel <= 0 {
		c.XPToNextLevel = XPRequiredForLevel(c.Level)
	}

	c.XP += amount
	for c.XP >= c.XPToNextLevel {
		c.XP -= c.XPToNextLevel
		c.Level++
		applyLevelUpGains(&c.Attributes)
		c.XPToNextLevel = XPRequiredForLevel(c.Level)
		c.Rank = RankForLevel(c.Level)
	}

	s.persist()
}

func applyLevelUpGains(a *Attributes) {
	a.Strength += levelUpGains.Strength
	a.Agility += levelUpGains.Agility
	a.Vitality += levelUpGains.Vitality
	a.Intelligence += levelUpGains.Intelligence
	a.Perception += levelUpGains.Perception
	a.Willpower += levelUpGains.Willpower
	a.Charisma += levelUpGains.Charisma
}
