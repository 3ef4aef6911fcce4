package dto

type QuestionOutput struct {
	ID          int
	Category    string
	Text        string
	Answer      bool
	Explanation string
}

type SyncOutput struct {
	Count int
}
