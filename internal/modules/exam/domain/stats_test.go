package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"examprep/internal/modules/exam/domain"
)

func TestCalculateScore(t *testing.T) {
	t.Parallel()
	cases := []struct {
		correct, total, want int
	}{
		{30, 30, 100},
		{0, 30, 0},
		{23, 30, 77},
		{22, 30, 73},
		{1, 8, 13},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := domain.CalculateScore(tc.correct, tc.total); got != tc.want {
			t.Fatalf("CalculateScore(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()
	cases := map[int64]string{
		0:       "00:00",
		999:     "00:00",
		60000:   "01:00",
		65000:   "01:05",
		3661000: "61:01",
		-5:      "00:00",
	}
	for ms, want := range cases {
		if got := domain.FormatTime(ms); got != want {
			t.Fatalf("FormatTime(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	got := domain.Summarize(nil)
	want := domain.Stats{Sessions: []domain.Session{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("empty stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	sessions := []domain.Session{
		{ID: "a", Score: 80, TimeSpent: 60000},
		{ID: "b", Score: 45, TimeSpent: 90000},
		{ID: "c", Score: 91, TimeSpent: 30001},
	}
	got := domain.Summarize(sessions)
	if got.TotalAttempts != 3 || got.BestScore != 91 || got.WorstScore != 45 {
		t.Fatalf("unexpected extremes %+v", got)
	}
	// (80+45+91)/3 = 72
	if got.AverageScore != 72 {
		t.Fatalf("expected average 72, got %d", got.AverageScore)
	}
	// (60000+90000+30001)/3 = 60000.33
	if got.AverageTimeSpent != 60000 {
		t.Fatalf("expected average time 60000, got %d", got.AverageTimeSpent)
	}
	if len(got.Sessions) != 3 {
		t.Fatalf("sessions should be carried through")
	}
}

func TestSortByEndTimeDesc(t *testing.T) {
	t.Parallel()
	end := func(v int64) *int64 { return &v }
	sessions := []domain.Session{
		{ID: "old", EndTime: end(100)},
		{ID: "open"},
		{ID: "new", EndTime: end(300)},
		{ID: "mid", EndTime: end(200)},
	}
	domain.SortByEndTimeDesc(sessions)
	var ids []string
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	if diff := cmp.Diff([]string{"new", "mid", "old", "open"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	base := domain.Session{ID: "s1", TotalQuestions: 30, CorrectAnswers: 20}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}
	zero := base
	zero.TotalQuestions = 0
	zero.CorrectAnswers = 0
	if err := zero.Validate(); err == nil {
		t.Fatalf("zero total should fail")
	}
	over := base
	over.CorrectAnswers = 31
	if err := over.Validate(); err == nil {
		t.Fatalf("correct above total should fail")
	}
	noID := base
	noID.ID = " "
	if err := noID.Validate(); err == nil {
		t.Fatalf("blank id should fail")
	}
}
