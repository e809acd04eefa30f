package engine

import (
	"errors"
	"strings"
	"time"
)

// TaskInput describes a task or habit to create.
type TaskInput struct {
	Title         string
	Description   string
	Type          TaskType
	Recurrence    Recurrence
	XPReward      int
	SkillID       string
	SubSkillID    string
	SkillXPReward int
}

// TaskPatch updates individual task fields; nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	XPReward    *int
	Recurrence  *Recurrence
}

// TaskCompletion reports the effects of completing a task.
type TaskCompletion struct {
	TaskID         string
	CompletedCount int
	Streak         int
	SkillXP        int
	XPScheduled    int
}

// CreateTask assigns a fresh id and stores the task with zeroed counters.
func (s *Store) CreateTask(in TaskInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, errors.New("title is required")
	}

	kind := in.Type
	if kind == "" {
		kind = TaskKindTask
	}
	recurrence := in.Recurrence
	if !recurrence.IsValid() {
		recurrence = RecurrenceOnce
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{
		ID:            s.newID(),
		Title:         title,
		Description:   in.Description,
		Type:          kind,
		Status:        TaskActive,
		Recurrence:    recurrence,
		XPReward:      in.XPReward,
		SkillID:       in.SkillID,
		SubSkillID:    in.SubSkillID,
		SkillXPReward: in.SkillXPReward,
		CreatedAt:     s.clock().UTC(),
	}
	s.state.Tasks = append(s.state.Tasks, t)
	s.persist()
	return t, nil
}

// CompleteTask processes one completion event. A `once` task transitions to
// completed and never re-triggers; recurring tasks stay active, bump their
// completion counter and recompute the streak. No-op when the task is absent,
// already completed or archived.
func (s *Store) CompleteTask(id string) *TaskCompletion {
	s.mu.Lock()

	t := s.findTask(id)
	if t == nil || t.Status != TaskActive {
		s.mu.Unlock()
		return nil
	}

	now := s.clock().UTC()
	t.Streak = nextStreak(t, now)
	t.CompletedCount++
	t.LastCompletedAt = &now
	if t.Recurrence == RecurrenceOnce {
		t.Status = TaskCompleted
	}

	skillXP := 0
	if t.SkillID != "" && t.SkillXPReward > 0 {
		skillXP = t.SkillXPReward
		s.addProficiency(ProficiencyKey(t.SkillID, t.SubSkillID), skillXP)
	}

	res := &TaskCompletion{
		TaskID:         id,
		CompletedCount: t.CompletedCount,
		Streak:         t.Streak,
		SkillXP:        skillXP,
		XPScheduled:    t.XPReward,
	}
	xp := t.XPReward
	s.persist()
	s.mu.Unlock()

	s.deferAddExperience(xp)
	return res
}

// nextStreak applies the calendar-day adjacency rule. Only daily habits get
// streak continuation; other recurrences always sit at 1 after a completion.
func nextStreak(t *Task, now time.Time) int {
	if t.Recurrence != RecurrenceDaily {
		return 1
	}
	if t.LastCompletedAt == nil {
		return 1
	}

	today := dayString(now)
	yesterday := dayString(now.AddDate(0, 0, -1))
	last := dayString(*t.LastCompletedAt)

	switch last {
	case yesterday:
		return t.Streak + 1
	case today:
		// Repeat completion on the same day keeps the streak.
		if t.Streak < 1 {
			return 1
		}
		return t.Streak
	default:
		return 1
	}
}

func dayString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// UpdateTask patches task fields. Silent no-op when absent.
func (s *Store) UpdateTask(id string, patch TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.XPReward != nil {
		t.XPReward = *patch.XPReward
	}
	if patch.Recurrence != nil && patch.Recurrence.IsValid() {
		t.Recurrence = *patch.Recurrence
	}
	s.persist()
}

// DeleteTask removes a task unconditionally.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleTaskArchived flips a task between archived and active. Archived tasks
// are hidden from listings but kept in the collection.
func (s *Store) ToggleTaskArchived(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTask(id)
	if t == nil {
		return
	}
	switch t.Status {
	case TaskArchived:
		t.Status = TaskActive
	default:
		t.Status = TaskArchived
	}
	s.persist()
}

func (s *Store) findTask(id string) *Task {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			return &s.state.Tasks[i]
		}
	}
	return nil
}
