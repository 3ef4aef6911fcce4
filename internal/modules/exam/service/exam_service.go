package service

import (
	"context"

	"examprep/internal/modules/exam/domain"
	examout "examprep/internal/modules/exam/port/out"
	"examprep/internal/platform/clock"
	"examprep/internal/platform/id"
)

type ExamService struct {
	clock clock.Clock
	idGen id.Generator
	log   examout.SessionLog
}

func NewExamService(clock clock.Clock, idGen id.Generator, log examout.SessionLog) *ExamService {
	return &ExamService{clock: clock, idGen: idGen, log: log}
}

// Save appends session to the log. The score is recomputed from the answer
// counts. Saving the same id twice appends twice.
func (s *ExamService) Save(ctx context.Context, session domain.Session) (domain.Session, error) {
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	session.Score = domain.CalculateScore(session.CorrectAnswers, session.TotalQuestions)
	if session.Answers == nil {
		session.Answers = map[int]bool{}
	}
	sessions, err := s.log.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	sessions = append(sessions, session)
	if err := s.log.Save(ctx, sessions); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Finish stamps a just-ended exam with an id, end time and date, then saves
// it. A zero total falls back to the number of answers.
func (s *ExamService) Finish(ctx context.Context, start int64, answers map[int]bool, total, correct int) (domain.Session, error) {
	now := s.clock.Now()
	end := clock.Millis(now)
	if total <= 0 {
		total = len(answers)
	}
	spent := end - start
	if spent < 0 {
		spent = 0
	}
	return s.Save(ctx, domain.Session{
		ID:             s.idGen.New(),
		StartTime:      start,
		EndTime:        &end,
		Answers:        answers,
		TimeSpent:      spent,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Date:           now.Format(domain.DateLayout),
	})
}

func (s *ExamService) ListAll(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.log.Load(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortByEndTimeDesc(sessions)
	return sessions, nil
}

func (s *ExamService) Clear(ctx context.Context) error {
	return s.log.Clear(ctx)
}
