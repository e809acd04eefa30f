// Package seed holds the compiled-in default catalogs the engine merges into
// persisted state on load.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type catalog struct {
	Character struct {
		Name       string `yaml:"name"`
		Attributes struct {
			Strength     int `yaml:"strength"`
			Agility      int `yaml:"agility"`
			Vitality     int `yaml:"vitality"`
			Intelligence int `yaml:"intelligence"`
			Perception   int `yaml:"perception"`
			Willpower    int `yaml:"willpower"`
			Charisma     int `yaml:"charisma"`
		} `yaml:"attributes"`
		SyncRate  int `yaml:"sync_rate"`
		Integrity int `yaml:"integrity"`
		BPM       int `yaml:"bpm"`
	} `yaml:"character"`
	Currencies []struct {
		Name   string `yaml:"name"`
		Amount int    `yaml:"amount"`
	} `yaml:"currencies"`
	EnergySystems []struct {
		Name        string `yaml:"name"`
		Current     int    `yaml:"current"`
		Max         int    `yaml:"max"`
		Status      string `yaml:"status"`
		Description string `yaml:"description"`
	} `yaml:"energy_systems"`
	Transformations []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Range       string `yaml:"range"`
	} `yaml:"transformations"`
	Skills []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Tier        int    `yaml:"tier"`
		Category    string `yaml:"category"`
		EnergyType  string `yaml:"energy_type"`
		Cost        int    `yaml:"cost"`
	} `yaml:"skills"`
	SubSkills map[string][]struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Tier        int    `yaml:"tier"`
		Cost        int    `yaml:"cost"`
	} `yaml:"sub_skills"`
	Inventory []struct {
		Slot        string `yaml:"slot"`
		Name        string `yaml:"name"`
		Tier        string `yaml:"tier"`
		Description string `yaml:"description"`
		Quantity    int    `yaml:"quantity"`
		Effects     []struct {
			Label string `yaml:"label"`
			Value string `yaml:"value"`
			Unit  string `yaml:"unit"`
		} `yaml:"effects"`
	} `yaml:"inventory"`
	Roster []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Role     string `yaml:"role"`
		Affinity string `yaml:"affinity"`
	} `yaml:"roster"`
	Councils []struct {
		ID      string   `yaml:"id"`
		Name    string   `yaml:"name"`
		Purpose string   `yaml:"purpose"`
		Members []string `yaml:"members"`
	} `yaml:"councils"`
	Rituals []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Active      bool   `yaml:"active"`
	} `yaml:"rituals"`
}

// Defaults builds a fresh default state from the embedded catalog. Panics on
// a malformed catalog, which is a build defect, not a runtime condition.
func Defaults() engine.State {
	st, err := parse(defaultsYAML)
	if err != nil {
		panic(err)
	}
	return st
}

func parse(raw []byte) (engine.State, error) {
	var cat catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return engine.State{}, fmt.Errorf("parse default catalog: %w", err)
	}

	st := engine.State{
		Version: engine.SnapshotVersion,
		Character: engine.Character{
			Name:          cat.Character.Name,
			Level:         1,
			XP:            0,
			XPToNextLevel: engine.XPRequiredForLevel(1),
			Rank:          engine.RankForLevel(1),
			Attributes: engine.Attributes{
				Strength:     cat.Character.Attributes.Strength,
				Agility:      cat.Character.Attributes.Agility,
				Vitality:     cat.Character.Attributes.Vitality,
				Intelligence: cat.Character.Attributes.Intelligence,
				Perception:   cat.Character.Attributes.Perception,
				Willpower:    cat.Character.Attributes.Willpower,
				Charisma:     cat.Character.Attributes.Charisma,
			},
			SyncRate:   cat.Character.SyncRate,
			Integrity:  cat.Character.Integrity,
			CurrentBPM: cat.Character.BPM,
		},
		SubSkills:   map[string][]engine.SubSkill{},
		Proficiency: map[string]int{},
		Quests:      []engine.Quest{},
		Tasks:       []engine.Task{},
		Vault:       []engine.VaultEntry{},
	}

	for _, c := range cat.Currencies {
		st.Currencies = append(st.Currencies, engine.Currency{Name: c.Name, Amount: c.Amount})
	}
	for _, e := range cat.EnergySystems {
		st.EnergySystems = append(st.EnergySystems, engine.EnergySystem{
			Name: e.Name, Current: e.Current, Max: e.Max, Status: e.Status, Description: e.Description,
		})
	}
	for _, t := range cat.Transformations {
		st.Transformations = append(st.Transformations, engine.Transformation{
			ID: t.ID, Name: t.Name, Description: t.Description, RangeText: t.Range,
		})
	}
	for _, sk := range cat.Skills {
		st.Skills = append(st.Skills, engine.Skill{
			ID: sk.ID, Name: sk.Name, Description: sk.Description, Tier: sk.Tier,
			Category: sk.Category, EnergyType: sk.EnergyType, Cost: sk.Cost,
		})
	}
	for parent, subs := range cat.SubSkills {
		for _, sub := range subs {
			st.SubSkills[parent] = append(st.SubSkills[parent], engine.SubSkill{
				ID: sub.ID, Name: sub.Name, Description: sub.Description, Tier: sub.Tier, Cost: sub.Cost,
			})
		}
	}
	for _, it := range cat.Inventory {
		item := engine.Item{
			Slot: it.Slot, Name: it.Name, Tier: it.Tier, Description: it.Description, Quantity: it.Quantity,
		}
		for _, ef := range it.Effects {
			item.Effects = append(item.Effects, engine.ItemEffect{Label: ef.Label, Value: ef.Value, Unit: ef.Unit})
		}
		st.Inventory = append(st.Inventory, item)
	}
	for _, m := range cat.Roster {
		st.Roster = append(st.Roster, engine.RosterMember{ID: m.ID, Name: m.Name, Role: m.Role, Affinity: m.Affinity})
	}
	for _, c := range cat.Councils {
		st.Councils = append(st.Councils, engine.Council{ID: c.ID, Name: c.Name, Purpose: c.Purpose, Members: c.Members})
	}
	for _, r := range cat.Rituals {
		st.Rituals = append(st.Rituals, engine.Ritual{ID: r.ID, Name: r.Name, Description: r.Description, Active: r.Active})
	}

	return st, nil
}
