package engine

import "time"

// SnapshotVersion identifies the persisted state schema ("V2" inventory).
const SnapshotVersion = 2

// CurrencyCodexPoints is the currency debited by skill unlocks.
const CurrencyCodexPoints = "Codex Points"

// CurrencyAetherShards is the secondary default currency.
const CurrencyAetherShards = "Aether Shards"

// Attributes are the seven character attribute scores.
type Attributes struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Vitality     int `json:"vitality"`
	Intelligence int `json:"intelligence"`
	Perception   int `json:"perception"`
	Willpower    int `json:"willpower"`
	Charisma     int `json:"charisma"`
}

// Character holds the mutable character sheet. Exactly one exists per state.
type Character struct {
	Name          string     `json:"name"`
	Level         int        `json:"level"`
	XP            int        `json:"xp"`
	XPToNextLevel int        `json:"xpToNextLevel"`
	Rank          Rank       `json:"rank"`
	Attributes    Attributes `json:"attributes"`

	Fatigue   int `json:"fatigue"`
	SyncRate  int `json:"syncRate"`
	Integrity int `json:"integrity"`

	ActiveFormID string `json:"activeFormId,omitempty"`
	CurrentBPM   int    `json:"currentBpm"`
}

// Currency is a named balance. The engine never clamps the amount.
type Currency struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// EnergySystem is a named resource gauge (unique by name).
type EnergySystem struct {
	Name        string `json:"name"`
	Current     int    `json:"current"`
	Max         int    `json:"max"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Transformation is a selectable form. RangeText carries the BPM band the
// form operates in (e.g. "140-160 BPM").
type Transformation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RangeText   string `json:"rangeText"`
}

// Skill is a top-level skill-tree node.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        int    `json:"tier"` // 1-7
	Category    string `json:"category"`
	EnergyType  string `json:"energyType"`
	Unlocked    bool   `json:"unlocked"`
	Cost        int    `json:"cost"`
}

// SubSkill is owned by exactly one parent skill; its identity is only
// meaningful relative to that parent.
type SubSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	Unlocked    bool   `json:"unlocked"`
	Cost        int    `json:"cost"`
}

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
)

// QuestProgress is an optional current/target pair on a quest.
type QuestProgress struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// LootReward is an inventory grant declared on a quest.
type LootReward struct {
	Name     string `json:"name"`
	Slot     string `json:"slot,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Quantity int    `json:"quantity"`
}

// QuestRewards is the optional-field reward descriptor the resolver switches
// on. Absent fields grant nothing.
type QuestRewards struct {
	Currencies map[string]int `json:"currencies,omitempty"`
	Loot       []LootReward   `json:"loot,omitempty"`
	SkillIDs   []string       `json:"skillIds,omitempty"`
	SkillXP    int            `json:"skillXp,omitempty"`
}

type Quest struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	Status      QuestStatus    `json:"status"`
	XPReward    int            `json:"xpReward"`
	Progress    *QuestProgress `json:"progress,omitempty"`
	Rewards     QuestRewards   `json:"rewards,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type TaskType string

const (
	TaskKindTask  TaskType = "task"
	TaskKindHabit TaskType = "habit"
)

type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
	TaskArchived  TaskStatus = "archived"
)

type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            TaskType   `json:"type"`
	Status          TaskStatus `json:"status"`
	Recurrence      Recurrence `json:"recurrence"`
	XPReward        int        `json:"xpReward"`
	SkillID         string     `json:"skillId,omitempty"`
	SubSkillID      string     `json:"subSkillId,omitempty"`
	SkillXPReward   int        `json:"skillXpReward,omitempty"`
	CompletedCount  int        `json:"completedCount"`
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ItemEffect is one named effect line on an inventory item.
type ItemEffect struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Item is a V2-schema inventory entry.
type Item struct {
	Slot        string       `json:"slot"`
	Name        string       `json:"name"`
	Tier        string       `json:"tier"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Effects     []ItemEffect `json:"effects,omitempty"`
}

type RosterMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Affinity string `json:"affinity"`
}

type Council struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Purpose string   `json:"purpose"`
	Members []string `json:"members,omitempty"`
}

type VaultEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Ritual struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// State is the single aggregate owned by the Store. Consumers only ever see
// copies of it.
type State struct {
	Version         int                   `json:"version"`
	Character       Character             `json:"character"`
	Currencies      []Currency            `json:"currencies"`
	EnergySystems   []EnergySystem        `json:"energySystems"`
	Transformations []Transformation      `json:"transformations"`
	Skills          []Skill               `json:"skills"`
	SubSkills       map[string][]SubSkill `json:"subSkills,omitempty"`
	Proficiency     map[string]int        `json:"proficiency,omitempty"`
	Quests          []Quest               `json:"quests"`
	Tasks           []Task                `json:"tasks"`
	Inventory       []Item                `json:"inventory"`
	Roster          []RosterMember        `json:"roster"`
	Councils        []Council             `json:"councils"`
	Vault           []VaultEntry          `json:"vault"`
	Rituals         []Ritual              `json:"rituals"`
}

// ProficiencyKey builds the proficiency map key for a skill or sub-skill.
// A sub-skill entry is keyed relative to its parent as "parentId:subId".
func ProficiencyKey(skillID, subSkillID string) string {
	if subSkillID == "" {
		return skillID
	}
	return skillID + ":" + subSkillID
}
