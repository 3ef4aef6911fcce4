package dto

import "time"

type RecordInput struct {
	QuestionID int
	UserAnswer bool
}

type RecordOutput struct {
	QuestionID   int
	UserAnswer   bool
	RecordedAt   time.Time
	AttemptCount int
}

type ReviewOutput struct {
	RecordOutput
	Category      string
	Text          string
	CorrectAnswer bool
	InDataset     bool
}
