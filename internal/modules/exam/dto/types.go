package dto

import "time"

type SessionInput struct {
	ID             string
	StartTime      time.Time
	EndTime        *time.Time
	Answers        map[int]bool
	TimeSpent      time.Duration
	TotalQuestions int
	CorrectAnswers int
}

// FinishInput describes an exam that just ended; the end time, id, score and
// date are filled in on save.
type FinishInput struct {
	StartTime      time.Time
	Answers        map[int]bool
	TotalQuestions int
	CorrectAnswers int
}

type SessionOutput struct {
	ID             string
	StartTime      time.Time
	EndTime        *time.Time
	Answers        map[int]bool
	TimeSpent      time.Duration
	Score          int
	TotalQuestions int
	CorrectAnswers int
	Date           string
}

type StatsOutput struct {
	TotalAttempts    int
	AverageScore     int
	BestScore        int
	WorstScore       int
	AverageTimeSpent time.Duration
	Sessions         []SessionOutput
}
