package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"examprep/internal/modules/question/domain"
	questionout "examprep/internal/modules/question/port/out"
)

// FileDataset reads a YAML (or JSON, which YAML accepts) list of questions.
type FileDataset struct {
	path string
}

func NewFileDataset(path string) questionout.Dataset {
	return &FileDataset{path: path}
}

func (d *FileDataset) Load(_ context.Context) ([]domain.Question, error) {
	payload, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Question{}, nil
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	questions := []domain.Question{}
	if err := yaml.Unmarshal(payload, &questions); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return questions, nil
}

func (d *FileDataset) Replace(_ context.Context, questions []domain.Question) error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}
	payload, err := yaml.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".questions-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
