package domain_test

import (
	"testing"

	"examprep/internal/modules/missed/domain"
)

func TestUpsertKeepsOneRecordPerQuestion(t *testing.T) {
	t.Parallel()
	var records []domain.Record
	answers := []bool{true, false, true, true}
	for i, a := range answers {
		records = domain.Upsert(records, 7, a, int64(1000+i))
	}
	records = domain.Upsert(records, 9, false, 5000)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	r := records[0]
	if r.QuestionID != 7 || r.AttemptCount != len(answers) {
		t.Fatalf("expected %d attempts for q7, got %+v", len(answers), r)
	}
	if r.Timestamp != 1003 || !r.UserAnswer {
		t.Fatalf("last call should win, got %+v", r)
	}
	if records[1].AttemptCount != 1 {
		t.Fatalf("new record should start at one attempt, got %+v", records[1])
	}
}

func TestWithout(t *testing.T) {
	t.Parallel()
	records := []domain.Record{{QuestionID: 1, AttemptCount: 1}, {QuestionID: 2, AttemptCount: 3}}
	rest, found := domain.Without(records, 1)
	if !found || len(rest) != 1 || rest[0].QuestionID != 2 {
		t.Fatalf("unexpected removal result %+v found=%v", rest, found)
	}
	same, found := domain.Without(rest, 42)
	if found || len(same) != 1 {
		t.Fatalf("absent key must be a no-op, got %+v found=%v", same, found)
	}
	if domain.Contains(same, 1) || !domain.Contains(same, 2) {
		t.Fatalf("contains mismatch")
	}
}
