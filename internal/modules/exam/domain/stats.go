package domain

import (
	"fmt"
	"math"
)

type Stats struct {
	TotalAttempts    int
	AverageScore     int
	BestScore        int
	WorstScore       int
	AverageTimeSpent int64
	Sessions         []Session
}

// Summarize derives Stats from sessions, which are kept in the given order.
// No sessions yields zero values and an empty, non-nil slice.
func Summarize(sessions []Session) Stats {
	if len(sessions) == 0 {
		return Stats{Sessions: []Session{}}
	}
	best, worst := sessions[0].Score, sessions[0].Score
	var scoreSum, timeSum float64
	for _, s := range sessions {
		if s.Score > best {
			best = s.Score
		}
		if s.Score < worst {
			worst = s.Score
		}
		scoreSum += float64(s.Score)
		timeSum += float64(s.TimeSpent)
	}
	n := float64(len(sessions))
	return Stats{
		TotalAttempts:    len(sessions),
		AverageScore:     int(roundHalfUp(scoreSum / n)),
		BestScore:        best,
		WorstScore:       worst,
		AverageTimeSpent: int64(roundHalfUp(timeSum / n)),
		Sessions:         sessions,
	}
}

// CalculateScore is the rounded percentage of correct over total; 0 when
// total is not positive.
func CalculateScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(roundHalfUp(float64(correct) / float64(total) * 100))
}

// FormatTime renders milliseconds as MM:SS. Minutes are not capped at 59.
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
