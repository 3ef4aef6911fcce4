package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"examprep/internal/modules/questionset/domain"
	questionsetout "examprep/internal/modules/questionset/port/out"
)

// YAMLQuestionReader reads a question list from a YAML or JSON file.
type YAMLQuestionReader struct{}

func NewYAMLQuestionReader() questionsetout.QuestionFileReader {
	return YAMLQuestionReader{}
}

func (YAMLQuestionReader) Read(_ context.Context, path string) ([]domain.Question, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	questions := []domain.Question{}
	if err := yaml.Unmarshal(payload, &questions); err != nil {
		return nil, fmt.Errorf("decode question file: %w", err)
	}
	return questions, nil
}
