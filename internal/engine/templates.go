package engine

import (
	"fmt"
	"strings"
)

type TemplateKind string

const (
	TemplateKindQuest TemplateKind = "quest"
	TemplateKindTask  TemplateKind = "task"
	TemplateKindHabit TemplateKind = "habit"
)

// Template is a built-in quest or habit blueprint that unlocks as the
// character levels up. Accepting one instantiates it into the live
// collections.
type Template struct {
	Code        string
	Kind        TemplateKind
	Title       string
	Description string
	XPReward    int
	Recurrence  Recurrence
	SkillID     string
	SkillXP     int
	MinLevel    int
	Rewards     QuestRewards
}

func builtinTemplates() []Template {
	return []Template{
		{
			Code:        "habit_first_light",
			Kind:        TemplateKindHabit,
			Title:       "Morning Activation",
			Description: "Get up, hydrate, move for ten minutes.",
			XPReward:    10,
			Recurrence:  RecurrenceDaily,
			MinLevel:    1,
		},
		{
			Code:        "quest_first_trial",
			Kind:        TemplateKindQuest,
			Title:       "The First Trial",
			Description: "Finish one thing you have been putting off for a week.",
			XPReward:    100,
			MinLevel:    1,
			Rewards:     QuestRewards{Currencies: map[string]int{CurrencyCodexPoints: 25}},
		},
		{
			Code:        "habit_deep_work",
			Kind:        TemplateKindHabit,
			Title:       "Deep Work Block",
			Description: "Ninety uninterrupted minutes on the main objective.",
			XPReward:    25,
			Recurrence:  RecurrenceDaily,
			SkillID:     "skill_deep_work",
			SkillXP:     10,
			MinLevel:    5,
		},
		{
			Code:        "quest_shadow_audit",
			Kind:        TemplateKindQuest,
			Title:       "Shadow Audit",
			Description: "Review a full week of completions and cut one recurring drain.",
			XPReward:    250,
			MinLevel:    10,
			Rewards: QuestRewards{
				Currencies: map[string]int{CurrencyAetherShards: 5},
				Loot:       []LootReward{{Name: "Audit Ledger", Tier: "Rare"}},
			},
		},
	}
}

// AvailableTemplates lists templates the character's level has unlocked and
// that are not already instantiated (matched by title against the live
// quest and task collections).
func (s *Store) AvailableTemplates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Template
	for _, tpl := range builtinTemplates() {
		if s.state.Character.Level < tpl.MinLevel {
			continue
		}
		if s.hasTitle(tpl.Title) {
			continue
		}
		out = append(out, tpl)
	}
	return out
}

// AcceptTemplate instantiates an unlocked template into the live
// collections. Returns the new entity's id.
func (s *Store) AcceptTemplate(code string) (string, error) {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" {
		return "", fmt.Errorf("template code is required")
	}

	var def *Template
	for _, tpl := range builtinTemplates() {
		if tpl.Code == code {
			t := tpl
			def = &t
			break
		}
	}
	if def == nil {
		return "", fmt.Errorf("unknown template: %s", code)
	}

	s.mu.Lock()
	if s.state.Character.Level < def.MinLevel {
		s.mu.Unlock()
		return "", fmt.Errorf("template %s unlocks at level %d", code, def.MinLevel)
	}
	if s.hasTitle(def.Title) {
		s.mu.Unlock()
		return "", fmt.Errorf("template %s is already in play", code)
	}
	s.mu.Unlock()

	switch def.Kind {
	case TemplateKindQuest:
		q, err := s.CreateQuest(QuestInput{
			Title:       def.Title,
			Description: def.Description,
			Type:        "side",
			XPReward:    def.XPReward,
			Rewards:     def.Rewards,
		})
		if err != nil {
			return "", err
		}
		return q.ID, nil
	case TemplateKindTask, TemplateKindHabit:
		kind := TaskKindTask
		if def.Kind == TemplateKindHabit {
			kind = TaskKindHabit
		}
		t, err := s.CreateTask(TaskInput{
			Title:         def.Title,
			Description:   def.Description,
			Type:          kind,
			Recurrence:    def.Recurrence,
			XPReward:      def.XPReward,
			SkillID:       def.SkillID,
			SkillXPReward: def.SkillXP,
		})
		if err != nil {
			return "", err
		}
		return t.ID, nil
	default:
		return "", fmt.Errorf("invalid template kind: %s", def.Kind)
	}
}

// hasTitle reports whether any quest or task carries the title. Lock must be
// held.
func (s *Store) hasTitle(title string) bool {
	for i := range s.state.Quests {
		if s.state.Quests[i].Title == title {
			return true
		}
	}
	for i := range s.state.Tasks {
		if s.state.Tasks[i].Title == title {
			return true
		}
	}
	return false
}
