package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Key is the persisted key of the exam session log.
const Key = "mock_exam_sessions"

// DateLayout formats Session.Date.
const DateLayout = "2006-01-02"

// Session is one finished mock exam. Sessions are append-only.
type Session struct {
	ID             string       `json:"id"`
	StartTime      int64        `json:"startTime"`
	EndTime        *int64       `json:"endTime,omitempty"`
	Answers        map[int]bool `json:"answers"`
	TimeSpent      int64        `json:"timeSpent"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	CorrectAnswers int          `json:"correctAnswers"`
	Date           string       `json:"date"`
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if s.TotalQuestions <= 0 {
		return fmt.Errorf("total questions must be positive, got %d", s.TotalQuestions)
	}
	if s.CorrectAnswers < 0 || s.CorrectAnswers > s.TotalQuestions {
		return fmt.Errorf("correct answers %d out of range 0..%d", s.CorrectAnswers, s.TotalQuestions)
	}
	if s.TimeSpent < 0 {
		return fmt.Errorf("time spent must be non-negative")
	}
	return nil
}

// SortByEndTimeDesc orders sessions newest first. A session without an end
// time sorts as the earliest.
func SortByEndTimeDesc(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return endOrMin(sessions[i]) > endOrMin(sessions[j])
	})
}

func endOrMin(s Session) int64 {
	if s.EndTime == nil {
		return -1 << 63
	}
	return *s.EndTime
}
