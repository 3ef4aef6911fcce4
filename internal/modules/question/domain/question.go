package domain

import (
	"fmt"
	"strings"
)

// Question is one record of the read-only dataset. Answer is the correct
// true/false answer.
type Question struct {
	ID          int    `json:"id" yaml:"id"`
	Category    string `json:"category" yaml:"category"`
	Text        string `json:"text" yaml:"text"`
	Answer      bool   `json:"answer" yaml:"answer"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

func (q Question) Validate() error {
	if q.ID <= 0 {
		return fmt.Errorf("question id must be positive, got %d", q.ID)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question %d: text is required", q.ID)
	}
	return nil
}

// ValidateAll rejects invalid records and duplicate ids.
func ValidateAll(questions []Question) error {
	seen := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}
