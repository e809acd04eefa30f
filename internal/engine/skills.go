package engine

import (
	"errors"
	"strings"
)

// SkillInput describes a top-level skill to add.
type SkillInput struct {
	Name        string
	Description string
	Tier        int
	Category    string
	EnergyType  string
	Cost        int
}

// SkillPatch updates individual skill fields; nil fields are left untouched.
// The unlock flag is never patched here: unlocking goes through UnlockSkill.
type SkillPatch struct {
	Name        *string
	Description *string
	Tier        *int
	Category    *string
	EnergyType  *string
	Cost        *int
}

// SubSkillInput describes a sub-skill to add under a parent skill.
type SubSkillInput struct {
	Name        string
	Description string
	Tier        int
	Cost        int
}

// UnlockSkill sets the unlock flag and debits Codex Points by the skill's
// cost in one atomic step. No-op when the skill is absent, already unlocked,
// or the balance is below the cost. Returns whether the unlock happened.
func (s *Store) UnlockSkill(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sk *Skill
	for i := range s.state.Skills {
		if s.state.Skills[i].ID == id {
			sk = &s.state.Skills[i]
			break
		}
	}
	if sk == nil || sk.Unlocked {
		return false
	}

	var cur *Currency
	for i := range s.state.Currencies {
		if s.state.Currencies[i].Name == CurrencyCodexPoints {
			cur = &s.state.Currencies[i]
			break
		}
	}
	if cur == nil || cur.Amount < sk.Cost {
		return false
	}

	cur.Amount -= sk.Cost
	sk.Unlocked = true
	s.persist()
	return true
}

// AddSkill appends a new locked skill with a fresh id.
func (s *Store) AddSkill(in SkillInput) (Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Skill{}, errors.New("name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sk := Skill{
		ID:          s.newID(),
		Name:        name,
		Description: in.Description,
		Tier:        clampTier(in.Tier),
		Category:    in.Category,
		EnergyType:  in.EnergyType,
		Cost:        in.Cost,
	}
	s.state.Skills = append(s.state.Skills, sk)
	s.persist()
	return sk, nil
}

// UpdateSkill patches skill fields. Silent no-op when absent.
func (s *Store) UpdateSkill(id string, patch SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Skills {
		if s.state.Skills[i].ID != id {
			continue
		}
		sk := &s.state.Skills[i]
		if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
			sk.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			sk.Description = *patch.Description
		}
		if patch.Tier != nil {
			sk.Tier = clampTier(*patch.Tier)
		}
		if patch.Category != nil {
			sk.Category = *patch.Category
		}
		if patch.EnergyType != nil {
			sk.EnergyType = *patch.EnergyType
		}
		if patch.Cost != nil {
			sk.Cost = *patch.Cost
		}
		s.persist()
		return
	}
}

// DeleteSkill removes a skill and its sub-skill tree.
func (s *Store) DeleteSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Skills {
		if s.state.Skills[i].ID == id {
			s.state.Skills = append(s.state.Skills[:i], s.state.Skills[i+1:]...)
			delete(s.state.SubSkills, id)
			s.persist()
			return
		}
	}
}

// AddSubSkill inserts a sub-skill under the parent, creating the parent's
// collection on first insert.
func (s *Store) AddSubSkill(parentID string, in SubSkillInput) (SubSkill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SubSkill{}, errors.New("name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := SubSkill{
		ID:          s.newID(),
		Name:        name,
		Description: in.Description,
		Tier:        clampTier(in.Tier),
		Cost:        in.Cost,
	}
	if s.state.SubSkills == nil {
		s.state.SubSkills = map[string][]SubSkill{}
	}
	s.state.SubSkills[parentID] = append(s.state.SubSkills[parentID], sub)
	s.persist()
	return sub, nil
}

// UpdateSubSkill patches a sub-skill under the parent key. Silent no-op when
// the parent has no collection or the sub-skill is absent.
func (s *Store) UpdateSubSkill(parentID, id string, patch SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, ok := s.state.SubSkills[parentID]
	if !ok {
		return
	}
	for i := range subs {
		if subs[i].ID != id {
			continue
		}
		if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
			subs[i].Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			subs[i].Description = *patch.Description
		}
		if patch.Tier != nil {
			subs[i].Tier = clampTier(*patch.Tier)
		}
		if patch.Cost != nil {
			subs[i].Cost = *patch.Cost
		}
		s.persist()
		return
	}
}

// DeleteSubSkill removes a sub-skill from the parent's collection.
func (s *Store) DeleteSubSkill(parentID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, ok := s.state.SubSkills[parentID]
	if !ok {
		return
	}
	for i := range subs {
		if subs[i].ID == id {
			s.state.SubSkills[parentID] = append(subs[:i], subs[i+1:]...)
			s.persist()
			return
		}
	}
}

func clampTier(tier int) int {
	if tier < 1 {
		return 1
	}
	if tier > 7 {
		return 7
	}
	return tier
}
