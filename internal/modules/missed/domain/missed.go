package domain

// Key is the persisted key of the missed-question collection.
const Key = "incorrectQuestions"

type Record struct {
	QuestionID   int   `json:"questionId"`
	UserAnswer   bool  `json:"userAnswer"`
	Timestamp    int64 `json:"timestamp"`
	AttemptCount int   `json:"attemptCount"`
}

// Upsert records another incorrect answer for questionID. An existing record
// has its attempt count incremented and its answer and timestamp replaced;
// otherwise a new record with one attempt is appended.
func Upsert(records []Record, questionID int, answer bool, nowMillis int64) []Record {
	for i := range records {
		if records[i].QuestionID == questionID {
			records[i].AttemptCount++
			records[i].UserAnswer = answer
			records[i].Timestamp = nowMillis
			return records
		}
	}
	return append(records, Record{
		QuestionID:   questionID,
		UserAnswer:   answer,
		Timestamp:    nowMillis,
		AttemptCount: 1,
	})
}

// Without returns records minus the one for questionID, and whether it was
// present.
func Without(records []Record, questionID int) ([]Record, bool) {
	out := make([]Record, 0, len(records))
	found := false
	for _, r := range records {
		if r.QuestionID == questionID {
			found = true
			continue
		}
		out = append(out, r)
	}
	return out, found
}

func Contains(records []Record, questionID int) bool {
	for _, r := range records {
		if r.QuestionID == questionID {
			return true
		}
	}
	return false
}
