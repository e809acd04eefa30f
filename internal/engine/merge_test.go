package engine

import (
	"reflect"
	"testing"
)

func TestMergeWithDefaultsIdempotent(t *testing.T) {
	persisted := testDefaults()
	persisted.EnergySystems = persisted.EnergySystems[:1]
	persisted.Skills = append(persisted.Skills, Skill{ID: "skill_custom", Name: "Custom Line"})

	defaults := testDefaults()

	once := MergeWithDefaults(persisted, defaults)
	twice := MergeWithDefaults(once, defaults)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergePrefersPersistedEntries(t *testing.T) {
	persisted := testDefaults()
	persisted.Skills[0].Cost = 999
	persisted.Skills[0].Unlocked = true

	merged := MergeWithDefaults(persisted, testDefaults())
	if merged.Skills[0].Cost != 999 || !merged.Skills[0].Unlocked {
		t.Fatalf("persisted skill edit lost: %+v", merged.Skills[0])
	}
}

func TestMergeBackfillsMissingDefaults(t *testing.T) {
	persisted := testDefaults()
	persisted.Transformations = persisted.Transformations[:1] // user pruned forms
	persisted.SubSkills = map[string][]SubSkill{}             // never touched sub-skills

	defaults := testDefaults()
	merged := MergeWithDefaults(persisted, defaults)

	if len(merged.Transformations) != len(defaults.Transformations) {
		t.Fatalf("forms = %d, want %d backfilled", len(merged.Transformations), len(defaults.Transformations))
	}
	if len(merged.SubSkills["skill_deep_work"]) == 0 {
		t.Fatalf("default sub-skill tree not backfilled")
	}
}

func TestMergeBackfillsNewSubSkillUnderExistingParent(t *testing.T) {
	persisted := testDefaults()
	persisted.SubSkills = map[string][]SubSkill{
		"skill_deep_work": {{ID: "sub_custom", Name: "User Made"}},
	}

	merged := MergeWithDefaults(persisted, testDefaults())
	subs := merged.SubSkills["skill_deep_work"]

	ids := map[string]bool{}
	for _, sub := range subs {
		ids[sub.ID] = true
	}
	if !ids["sub_custom"] || !ids["sub_flow"] {
		t.Fatalf("expected union of persisted and default sub-skills, got %+v", subs)
	}
}

func TestMergeEmptyPersistedCollectionUsesDefaults(t *testing.T) {
	persisted := testDefaults()
	persisted.Roster = nil
	persisted.Councils = []Council{}

	defaults := testDefaults()
	merged := MergeWithDefaults(persisted, defaults)

	if len(merged.Roster) != len(defaults.Roster) {
		t.Fatalf("roster = %d, want %d", len(merged.Roster), len(defaults.Roster))
	}
	if len(merged.Councils) != len(defaults.Councils) {
		t.Fatalf("councils = %d, want %d", len(merged.Councils), len(defaults.Councils))
	}
}
