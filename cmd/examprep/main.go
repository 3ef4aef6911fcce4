package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"examprep/internal/bootstrap"
	"examprep/internal/platform/config"
	"examprep/internal/platform/logging"
	"examprep/internal/ui/report"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataPath string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "examprep",
		Short:         "Offline-first exam practice data tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataPath, "data", config.DefaultDataPath(), "data directory")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	root.AddCommand(newMissedCmd(opts))
	root.AddCommand(newExamCmd(opts))
	root.AddCommand(newSetsCmd(opts))
	root.AddCommand(newProfileCmd(opts))
	root.AddCommand(newQuestionsCmd(opts))
	root.AddCommand(newCacheCmd(opts))
	root.AddCommand(newServeCmd(opts))
	return root
}

// withApp loads configuration, builds the app, runs fn and releases the
// database afterwards.
func withApp(ctx context.Context, opts *rootOptions, fn func(context.Context, *bootstrap.App) error) (err error) {
	cfg, err := config.Load(opts.dataPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.Warn("close app", zap.Error(cerr))
			err = errors.Join(err, cerr)
		}
	}()
	return fn(ctx, app)
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("expected true or false, got %q", s)
	}
	return v, nil
}

func parseQuestionID(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("question id must be an integer, got %q", s)
	}
	return v, nil
}

func newMissedCmd(opts *rootOptions) *cobra.Command {
	missed := &cobra.Command{Use: "missed", Short: "Track incorrectly answered questions"}

	missed.AddCommand(&cobra.Command{
		Use:   "record <question-id> <answer>",
		Short: "Record an incorrect answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qid, err := parseQuestionID(args[0])
			if err != nil {
				return err
			}
			answer, err := parseBool(args[1])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.MissedCLI.Record(ctx, qid, answer) {
					return fmt.Errorf("could not record question %d", qid)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d (tracked: %d)\n", qid, app.MissedCLI.Count(ctx))
				return nil
			})
		},
	})

	missed.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List missed questions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				items := app.MissedCLI.List(ctx)
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no missed questions")
					return nil
				}
				for _, it := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\tanswer=%t\tattempts=%d\t%s\n",
						it.QuestionID, it.UserAnswer, it.AttemptCount, it.RecordedAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	})

	missed.AddCommand(&cobra.Command{
		Use:   "review",
		Short: "Show missed questions with their dataset text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Review(app.MissedCLI.Review(ctx)))
				return nil
			})
		},
	})

	missed.AddCommand(&cobra.Command{
		Use:   "remove <question-id>",
		Short: "Stop tracking a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qid, err := parseQuestionID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.MissedCLI.Remove(ctx, qid) {
					return fmt.Errorf("question %d is not tracked", qid)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", qid)
				return nil
			})
		},
	})

	missed.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget every missed question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.MissedCLI.Clear(ctx) {
					return fmt.Errorf("could not clear missed questions")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared")
				return nil
			})
		},
	})
	return missed
}

// parseAnswers reads "id=true" pairs.
func parseAnswers(pairs []string) (map[int]bool, error) {
	out := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q must look like <question-id>=<true|false>", p)
		}
		qid, err := parseQuestionID(k)
		if err != nil {
			return nil, err
		}
		correct, err := parseBool(v)
		if err != nil {
			return nil, err
		}
		out[qid] = correct
	}
	return out, nil
}

func newExamCmd(opts *rootOptions) *cobra.Command {
	exam := &cobra.Command{Use: "exam", Short: "Mock exam history and statistics"}

	var (
		total, correct int
		duration       time.Duration
		answerPairs    []string
	)
	finish := &cobra.Command{
		Use:   "finish",
		Short: "Log a finished mock exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if total <= 0 {
				return fmt.Errorf("--total must be positive")
			}
			if correct < 0 || correct > total {
				return fmt.Errorf("--correct must be between 0 and --total")
			}
			answers, err := parseAnswers(answerPairs)
			if err != nil {
				return err
			}
			started := time.Now().Add(-duration)
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				out, ok := app.ExamCLI.Finish(ctx, started, answers, total, correct)
				if !ok {
					return fmt.Errorf("could not save exam session")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s score=%d%% time=%s\n", out.ID, out.Score, report.Clock(out.TimeSpent))
				return nil
			})
		},
	}
	finish.Flags().IntVar(&total, "total", 0, "number of questions")
	finish.Flags().IntVar(&correct, "correct", 0, "number of correct answers")
	finish.Flags().DurationVar(&duration, "duration", 0, "time spent on the exam")
	finish.Flags().StringSliceVar(&answerPairs, "answer", nil, "per-question result as <id>=<true|false>")
	exam.AddCommand(finish)

	exam.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List logged sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				sessions := app.ExamCLI.ListAll(ctx)
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range sessions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d%%\t%d/%d\t%s\n",
						s.ID, s.Date, s.Score, s.CorrectAnswers, s.TotalQuestions, report.Clock(s.TimeSpent))
				}
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show aggregate exam statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Stats(app.ExamCLI.Stats(ctx)))
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every logged session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.ExamCLI.Clear(ctx) {
					return fmt.Errorf("could not clear exam sessions")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared")
				return nil
			})
		},
	})
	return exam
}

func newSetsCmd(opts *rootOptions) *cobra.Command {
	sets := &cobra.Command{Use: "sets", Short: "Manage past-exam question sets"}

	var (
		name, season string
		year         int
	)
	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a question set from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuestionSetCLI.Import(ctx, args[0], name, year, season)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s) questions=%d\n", out.Name, out.ID, out.QuestionCount)
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&name, "name", "", "set name (defaults to the file name)")
	importCmd.Flags().IntVar(&year, "year", 0, "exam year")
	importCmd.Flags().StringVar(&season, "season", "", "exam season: spring|autumn")
	sets.AddCommand(importCmd)

	var activeOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List question sets; active ones are starred",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				items := app.QuestionSetCLI.ListAll(ctx)
				if activeOnly {
					items = app.QuestionSetCLI.ListActive(ctx)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Sets(items))
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&activeOnly, "active", false, "only active sets")
	sets.AddCommand(listCmd)

	toggle := func(use, short, done string, apply func(context.Context, *bootstrap.App, string) bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <set-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
					if !apply(ctx, app, args[0]) {
						return fmt.Errorf("could not %s set %s", use, args[0])
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", done, args[0])
					return nil
				})
			},
		}
	}
	sets.AddCommand(toggle("activate", "Include a set in practice", "activated",
		func(ctx context.Context, app *bootstrap.App, setID string) bool { return app.QuestionSetCLI.Activate(ctx, setID) }))
	sets.AddCommand(toggle("deactivate", "Exclude a set from practice", "deactivated",
		func(ctx context.Context, app *bootstrap.App, setID string) bool { return app.QuestionSetCLI.Deactivate(ctx, setID) }))

	sets.AddCommand(&cobra.Command{
		Use:   "delete <set-id>",
		Short: "Delete a question set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.QuestionSetCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	sets.AddCommand(&cobra.Command{
		Use:   "questions",
		Short: "List questions from every active set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				qs := app.QuestionSetCLI.ActiveQuestions(ctx)
				if len(qs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active questions")
					return nil
				}
				for _, q := range qs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", q.ID, q.Category, q.Text)
				}
				return nil
			})
		},
	})

	sets.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Remove every question set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.QuestionSetCLI.Reset(ctx) {
					return fmt.Errorf("could not reset question sets")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reset")
				return nil
			})
		},
	})
	return sets
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Player profile"}

	profile.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the player name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.ProfileCLI.Get(ctx))
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Change the player name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProfileCLI.Set(ctx, args[0])
				if err != nil {
					return err
				}
				if !out.Validation.Valid {
					return errors.New(out.Validation.Error)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name set to %s\n", out.Name)
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "validate <name>",
		Short: "Check a name without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(_ context.Context, app *bootstrap.App) error {
				out := app.ProfileCLI.Validate(args[0])
				if !out.Valid {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", out.Error)
					return nil
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			})
		},
	})

	profile.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the player name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				if !app.ProfileCLI.Reset(ctx) {
					return fmt.Errorf("could not reset profile")
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.ProfileCLI.Get(ctx))
				return nil
			})
		},
	})
	return profile
}

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	questions := &cobra.Command{Use: "questions", Short: "Read the question dataset"}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				qs, err := app.QuestionCLI.List(ctx, category)
				if err != nil {
					return err
				}
				if len(qs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no questions")
					return nil
				}
				for _, q := range qs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", q.ID, q.Category, q.Text)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "only this category")
	questions.AddCommand(list)

	questions.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one question with its answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qid, err := parseQuestionID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				q, err := app.QuestionCLI.Get(ctx, qid)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\nanswer: %t\n", q.Category, q.Text, q.Answer)
				if q.Explanation != "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), q.Explanation)
				}
				return nil
			})
		},
	})

	questions.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				cats, err := app.QuestionCLI.Categories(ctx)
				if err != nil {
					return err
				}
				for _, c := range cats {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			})
		},
	})

	questions.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Download the dataset from the configured sync URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.QuestionCLI.Sync(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "synced %d questions\n", out.Count)
				return nil
			})
		},
	})
	return questions
}

func newCacheCmd(opts *rootOptions) *cobra.Command {
	cache := &cobra.Command{Use: "cache", Short: "Resource cache maintenance"}

	cache.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Precache the static manifest and delete stale namespaces",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				installed, err := app.CacheCLI.Install(ctx)
				if err != nil {
					return err
				}
				activated, err := app.CacheCLI.Activate(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "version=%s cached=%d failed=%d deleted=%d\n",
					installed.Version, len(installed.Cached), len(installed.Failed), len(activated.Deleted))
				for p, reason := range installed.Failed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "failed %s: %s\n", p, reason)
				}
				return nil
			})
		},
	})

	cache.AddCommand(&cobra.Command{
		Use:   "namespaces",
		Short: "List cache namespaces and entry counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.CacheCLI.Namespaces(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Namespaces(items))
				return nil
			})
		},
	})
	return cache
}
