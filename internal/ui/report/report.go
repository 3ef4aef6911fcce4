package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	cachedto "examprep/internal/modules/cache/dto"
	examdto "examprep/internal/modules/exam/dto"
	misseddto "examprep/internal/modules/missed/dto"
	questionsetdto "examprep/internal/modules/questionset/dto"
	"examprep/internal/ui/theme"
)

// Clock renders d as MM:SS with minutes uncapped.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func row(label, value string) string {
	return theme.Label.Render(fmt.Sprintf("%-14s", label)) + " " + value
}

func Stats(s examdto.StatsOutput) string {
	if s.TotalAttempts == 0 {
		return theme.Pane.Render(theme.Title.Render("Mock exams") + "\n" + theme.Muted.Render("no attempts yet"))
	}
	lines := []string{
		theme.Title.Render("Mock exams"),
		row("attempts", fmt.Sprint(s.TotalAttempts)),
		row("average", theme.Score(s.AverageScore).Render(fmt.Sprintf("%d%%", s.AverageScore))),
		row("best", theme.Score(s.BestScore).Render(fmt.Sprintf("%d%%", s.BestScore))),
		row("worst", theme.Score(s.WorstScore).Render(fmt.Sprintf("%d%%", s.WorstScore))),
		row("avg time", Clock(s.AverageTimeSpent)),
	}
	if len(s.Sessions) > 0 {
		lines = append(lines, "", theme.Title.Render("Recent"))
		for _, sess := range s.Sessions {
			lines = append(lines, fmt.Sprintf("%s  %s  %d/%d  %s",
				sess.Date,
				theme.Score(sess.Score).Render(fmt.Sprintf("%3d%%", sess.Score)),
				sess.CorrectAnswers, sess.TotalQuestions,
				theme.Muted.Render(Clock(sess.TimeSpent))))
		}
	}
	return theme.Pane.Render(strings.Join(lines, "\n"))
}

func Review(items []misseddto.ReviewOutput) string {
	if len(items) == 0 {
		return theme.Muted.Render("no missed questions")
	}
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		head := theme.Hot.Render(fmt.Sprintf("#%d", it.QuestionID))
		if it.Category != "" {
			head += " " + theme.Muted.Render(it.Category)
		}
		head += " " + theme.Muted.Render(fmt.Sprintf("x%d", it.AttemptCount))
		text := it.Text
		if !it.InDataset {
			text = theme.Muted.Render("(question no longer in dataset)")
		}
		answer := fmt.Sprintf("you: %s", yesNo(it.UserAnswer))
		if it.InDataset {
			answer += fmt.Sprintf("  correct: %s", theme.Good.Render(yesNo(it.CorrectAnswer)))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, head, text, answer))
	}
	return theme.Pane.Render(strings.Join(blocks, "\n\n"))
}

func Sets(sets []questionsetdto.SetOutput) string {
	if len(sets) == 0 {
		return theme.Muted.Render("no question sets")
	}
	lines := make([]string, 0, len(sets))
	for _, s := range sets {
		mark := theme.Muted.Render("  ")
		if s.IsActive {
			mark = theme.Good.Render("* ")
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s %d %s  %s",
			mark, s.ID, s.Name, s.Year, s.Season,
			theme.Muted.Render(fmt.Sprintf("%d questions", s.QuestionCount))))
	}
	return strings.Join(lines, "\n")
}

func Namespaces(items []cachedto.NamespaceOutput) string {
	if len(items) == 0 {
		return theme.Muted.Render("no cache namespaces")
	}
	lines := make([]string, 0, len(items))
	for _, ns := range items {
		name := ns.Name
		if ns.Current {
			name = theme.Good.Render(name)
		} else {
			name = theme.Muted.Render(name + " (stale)")
		}
		lines = append(lines, fmt.Sprintf("%s\t%d", name, ns.Entries))
	}
	return strings.Join(lines, "\n")
}

func yesNo(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
