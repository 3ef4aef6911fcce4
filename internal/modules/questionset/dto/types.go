package dto

type QuestionOutput struct {
	ID          int
	Category    string
	Text        string
	Answer      bool
	Explanation string
}

type QuestionInput struct {
	ID          int
	Category    string
	Text        string
	Answer      bool
	Explanation string
}

type SaveInput struct {
	ID        string
	Name      string
	Year      int
	Season    string
	Questions []QuestionInput
}

type ImportInput struct {
	Path   string
	Name   string
	Year   int
	Season string
}

// SetOutput carries IsActive as a projection of the active-id set.
type SetOutput struct {
	ID            string
	Name          string
	Year          int
	Season        string
	CreatedAt     string
	QuestionCount int
	IsActive      bool
}
