package out

import (
	"context"

	cacheout "examprep/internal/modules/cache/port/out"
	questionin "examprep/internal/modules/question/port/in"
)

type QuestionSyncAdapter struct {
	questions questionin.Usecase
}

func NewQuestionSyncAdapter(questions questionin.Usecase) cacheout.QuestionSyncer {
	return &QuestionSyncAdapter{questions: questions}
}

func (a *QuestionSyncAdapter) SyncQuestions(ctx context.Context) (int, error) {
	out, err := a.questions.Sync(ctx)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}
