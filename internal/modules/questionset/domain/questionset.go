package domain

import (
	"fmt"
	"strings"

	apperrors "examprep/internal/platform/errors"
)

// Key is the persisted key of the composite question-set state.
const Key = "past_questions_state"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonAutumn Season = "autumn"
)

func (s Season) Validate() error {
	switch s {
	case SeasonSpring, SeasonAutumn:
		return nil
	default:
		return fmt.Errorf("unsupported season %q", string(s))
	}
}

type Question struct {
	ID          int    `json:"id" yaml:"id"`
	Category    string `json:"category" yaml:"category"`
	Text        string `json:"text" yaml:"text"`
	Answer      bool   `json:"answer" yaml:"answer"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// QuestionSet is an imported past exam. Whether it is active is decided only
// by State.ActiveSets.
type QuestionSet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Year      int        `json:"year"`
	Season    Season     `json:"season"`
	Questions []Question `json:"questions"`
	CreatedAt string     `json:"createdAt"`
}

func (q QuestionSet) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("set id is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(q.Name) == "" {
		return fmt.Errorf("set name is required: %w", apperrors.ErrInvalidInput)
	}
	if err := q.Season.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	return nil
}

// State is the whole persisted document. Every id in ActiveSets refers to an
// entry of Sets.
type State struct {
	Sets       []QuestionSet `json:"sets"`
	ActiveSets []string      `json:"activeSets"`
}

func NewState() State {
	return State{Sets: []QuestionSet{}, ActiveSets: []string{}}
}

func (s State) index(id string) int {
	for i, set := range s.Sets {
		if set.ID == id {
			return i
		}
	}
	return -1
}

func (s State) Find(id string) (QuestionSet, bool) {
	if i := s.index(id); i >= 0 {
		return s.Sets[i], true
	}
	return QuestionSet{}, false
}

func (s State) IsActive(id string) bool {
	for _, a := range s.ActiveSets {
		if a == id {
			return true
		}
	}
	return false
}

// Upsert replaces the set with the same id in place, or appends it.
func (s State) Upsert(set QuestionSet) State {
	if i := s.index(set.ID); i >= 0 {
		s.Sets[i] = set
		return s
	}
	s.Sets = append(s.Sets, set)
	return s
}

// Delete removes the set and its active id together.
func (s State) Delete(id string) (State, error) {
	i := s.index(id)
	if i < 0 {
		return s, fmt.Errorf("question set %s: %w", id, apperrors.ErrNotFound)
	}
	s.Sets = append(s.Sets[:i:i], s.Sets[i+1:]...)
	s.ActiveSets = without(s.ActiveSets, id)
	return s, nil
}

func (s State) Activate(id string) (State, error) {
	if s.index(id) < 0 {
		return s, fmt.Errorf("question set %s: %w", id, apperrors.ErrNotFound)
	}
	if s.IsActive(id) {
		return s, nil
	}
	s.ActiveSets = append(s.ActiveSets, id)
	return s, nil
}

func (s State) Deactivate(id string) State {
	s.ActiveSets = without(s.ActiveSets, id)
	return s
}

// Active returns the active sets in set-list order.
func (s State) Active() []QuestionSet {
	out := []QuestionSet{}
	for _, set := range s.Sets {
		if s.IsActive(set.ID) {
			out = append(out, set)
		}
	}
	return out
}

// ActiveQuestions concatenates the questions of active sets, in set-list
// order then in-set order.
func (s State) ActiveQuestions() []Question {
	out := []Question{}
	for _, set := range s.Active() {
		out = append(out, set.Questions...)
	}
	return out
}

// Pruned drops active ids whose set no longer exists and duplicates.
func (s State) Pruned() State {
	kept := make([]string, 0, len(s.ActiveSets))
	seen := map[string]struct{}{}
	for _, id := range s.ActiveSets {
		if _, dup := seen[id]; dup || s.index(id) < 0 {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	s.ActiveSets = kept
	if s.Sets == nil {
		s.Sets = []QuestionSet{}
	}
	return s
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
