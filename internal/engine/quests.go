package engine

import (
	"errors"
	"strings"
)

// QuestInput describes a quest to create. Status defaults to active.
type QuestInput struct {
	Title       string
	Description string
	Type        string
	Status      QuestStatus
	XPReward    int
	Progress    *QuestProgress
	Rewards     QuestRewards
}

// QuestCompletion reports the effects of completing a quest.
type QuestCompletion struct {
	QuestID string
	Rewards RewardOutcome
}

// CreateQuest assigns a fresh id and stores the quest.
func (s *Store) CreateQuest(in QuestInput) (Quest, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Quest{}, errors.New("title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = QuestActive
	}

	q := Quest{
		ID:          s.newID(),
		Title:       title,
		Description: in.Description,
		Type:        in.Type,
		Status:      status,
		XPReward:    in.XPReward,
		Progress:    in.Progress,
		Rewards:     in.Rewards,
		CreatedAt:   s.clock().UTC(),
	}
	s.state.Quests = append(s.state.Quests, q)
	s.persist()
	return q, nil
}

// UpdateQuestProgress stores a new current value (and optionally a new
// target) on a quest that already tracks progress. Silent no-op when the
// quest is absent or has no progress field.
func (s *Store) UpdateQuestProgress(id string, current int, target *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuest(id)
	if q == nil || q.Progress == nil {
		return
	}
	q.Progress.Current = current
	if target != nil {
		q.Progress.Target = *target
	}
	s.persist()
}

// CompleteQuest marks a quest completed, resolves its declared rewards and
// schedules the deferred experience grant. Completing an absent or already
// completed quest is a no-op and returns nil.
func (s *Store) CompleteQuest(id string) *QuestCompletion {
	s.mu.Lock()

	q := s.findQuest(id)
	if q == nil || q.Status == QuestCompleted {
		s.mu.Unlock()
		return nil
	}

	q.Status = QuestCompleted
	outcome := s.resolveRewards(q.Rewards)
	outcome.XPScheduled = q.XPReward
	xp := q.XPReward
	s.persist()
	s.mu.Unlock()

	s.deferAddExperience(xp)
	return &QuestCompletion{QuestID: id, Rewards: outcome}
}

// DeleteQuest removes a quest unconditionally.
func (s *Store) DeleteQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Quests {
		if s.state.Quests[i].ID == id {
			s.state.Quests = append(s.state.Quests[:i], s.state.Quests[i+1:]...)
			s.persist()
			return
		}
	}
}

// findQuest returns a pointer into the quest collection. Lock must be held.
func (s *Store) findQuest(id string) *Quest {
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == id {
			return &s.state.Quests[i]
		}
	}
	return nil
}
