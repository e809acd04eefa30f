package engine

import (
	"errors"
	"strings"
)

// GaugePatch updates the character's bounded gauges; nil fields are left
// untouched. The engine does not clamp gauge values.
type GaugePatch struct {
	Fatigue   *int
	SyncRate  *int
	Integrity *int
}

// AttributePatch directly edits attribute scores; nil fields are left
// untouched.
type AttributePatch struct {
	Strength     *int
	Agility      *int
	Vitality     *int
	Intelligence *int
	Perception   *int
	Willpower    *int
	Charisma     *int
}

// VaultInput describes a vault/journal entry to append.
type VaultInput struct {
	Title    string
	Body     string
	Category string
	Mood     string
}

// SetCharacterName renames the character. Empty names are ignored.
func (s *Store) SetCharacterName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Character.Name = name
	s.persist()
}

// UpdateGauges patches the fatigue/sync/integrity gauges.
func (s *Store) UpdateGauges(patch GaugePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.state.Character
	if patch.Fatigue != nil {
		c.Fatigue = *patch.Fatigue
	}
	if patch.SyncRate != nil {
		c.SyncRate = *patch.SyncRate
	}
	if patch.Integrity != nil {
		c.Integrity = *patch.Integrity
	}
	s.persist()
}

// UpdateAttributes directly edits attribute scores.
func (s *Store) UpdateAttributes(patch AttributePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &s.state.Character.Attributes
	if patch.Strength != nil {
		a.Strength = *patch.Strength
	}
	if patch.Agility != nil {
		a.Agility = *patch.Agility
	}
	if patch.Vitality != nil {
		a.Vitality = *patch.Vitality
	}
	if patch.Intelligence != nil {
		a.Intelligence = *patch.Intelligence
	}
	if patch.Perception != nil {
		a.Perception = *patch.Perception
	}
	if patch.Willpower != nil {
		a.Willpower = *patch.Willpower
	}
	if patch.Charisma != nil {
		a.Charisma = *patch.Charisma
	}
	s.persist()
}

// AdjustCurrency credits or debits a named currency. The engine does not
// clamp the balance.
func (s *Store) AdjustCurrency(name string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCurrency(name, delta)
	s.persist()
}

// UpdateEnergySystem sets the current gauge and status label on a named
// energy system. Silent no-op when absent.
func (s *Store) UpdateEnergySystem(name string, current int, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.EnergySystems {
		if s.state.EnergySystems[i].Name != name {
			continue
		}
		s.state.EnergySystems[i].Current = current
		if status != "" {
			s.state.EnergySystems[i].Status = status
		}
		s.persist()
		return
	}
}

// AddVaultEntry appends a journal entry with a fresh id.
func (s *Store) AddVaultEntry(in VaultInput) (VaultEntry, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return VaultEntry{}, errors.New("title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := VaultEntry{
		ID:        s.newID(),
		Title:     title,
		Body:      in.Body,
		Category:  in.Category,
		Mood:      in.Mood,
		CreatedAt: s.clock().UTC(),
	}
	s.state.Vault = append(s.state.Vault, e)
	s.persist()
	return e, nil
}

// DeleteVaultEntry removes a journal entry unconditionally.
func (s *Store) DeleteVaultEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Vault {
		if s.state.Vault[i].ID == id {
			s.state.Vault = append(s.state.Vault[:i], s.state.Vault[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleRitual flips a ritual's active flag. Silent no-op when absent.
func (s *Store) ToggleRitual(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Rituals {
		if s.state.Rituals[i].ID == id {
			s.state.Rituals[i].Active = !s.state.Rituals[i].Active
			s.persist()
			return
		}
	}
}
