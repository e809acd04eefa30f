package engine

// MergeWithDefaults merges a persisted state with the compiled-in defaults.
// Seeded collections (energy systems, transformations, inventory, roster,
// skills, sub-skill trees, councils, currencies) keep the persisted entries
// and union in default entries whose identity key is absent, so new default
// content shows up after upgrades without clobbering user edits. The merge is
// deterministic and idempotent.
func MergeWithDefaults(persisted, defaults State) State {
	out := persisted

	if out.Character.Level < 1 {
		out.Character = defaults.Character
	}

	out.Currencies = unionByKey(out.Currencies, defaults.Currencies, func(c Currency) string { return c.Name })
	out.EnergySystems = unionByKey(out.EnergySystems, defaults.EnergySystems, func(e EnergySystem) string { return e.Name })
	out.Transformations = unionByKey(out.Transformations, defaults.Transformations, func(t Transformation) string { return t.ID })
	out.Inventory = unionByKey(out.Inventory, defaults.Inventory, func(i Item) string { return i.Name })
	out.Roster = unionByKey(out.Roster, defaults.Roster, func(m RosterMember) string { return m.ID })
	out.Skills = unionByKey(out.Skills, defaults.Skills, func(sk Skill) string { return sk.ID })
	out.Councils = unionByKey(out.Councils, defaults.Councils, func(c Council) string { return c.ID })
	out.SubSkills = mergeSubSkills(out.SubSkills, defaults.SubSkills)

	if out.Rituals == nil {
		out.Rituals = defaults.Rituals
	}

	ensureCollections(&out)
	return out
}

// ensureCollections replaces nil collections with empty ones so a loaded
// state always marshals and iterates uniformly.
func ensureCollections(st *State) {
	if st.SubSkills == nil {
		st.SubSkills = map[string][]SubSkill{}
	}
	if st.Proficiency == nil {
		st.Proficiency = map[string]int{}
	}
	if st.Quests == nil {
		st.Quests = []Quest{}
	}
	if st.Tasks == nil {
		st.Tasks = []Task{}
	}
	if st.Vault == nil {
		st.Vault = []VaultEntry{}
	}
	if st.Rituals == nil {
		st.Rituals = []Ritual{}
	}
}

// unionByKey prefers persisted entries by identity key and appends default
// entries whose key is missing. An empty persisted collection falls back to
// the defaults wholesale.
func unionByKey[T any](persisted, defaults []T, key func(T) string) []T {
	if len(persisted) == 0 {
		return defaults
	}

	seen := make(map[string]bool, len(persisted))
	for _, e := range persisted {
		seen[key(e)] = true
	}

	out := make([]T, 0, len(persisted)+len(defaults))
	out = append(out, persisted...)
	for _, e := range defaults {
		if !seen[key(e)] {
			out = append(out, e)
		}
	}
	return out
}

func mergeSubSkills(persisted, defaults map[string][]SubSkill) map[string][]SubSkill {
	if len(persisted) == 0 {
		if defaults == nil {
			return map[string][]SubSkill{}
		}
		return defaults
	}

	out := make(map[string][]SubSkill, len(persisted)+len(defaults))
	for parent, subs := range persisted {
		out[parent] = subs
	}
	for parent, subs := range defaults {
		out[parent] = unionByKey(out[parent], subs, func(s SubSkill) string { return s.ID })
	}
	return out
}
