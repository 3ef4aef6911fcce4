package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	questionsetout "examprep/internal/modules/questionset/adapter/out"
	"examprep/internal/modules/questionset/dto"
	questionsetin "examprep/internal/modules/questionset/port/in"
	"examprep/internal/modules/questionset/service"
	"examprep/internal/modules/questionset/usecase"
	"examprep/internal/platform/clock"
	apperrors "examprep/internal/platform/errors"
	"examprep/internal/platform/kv"
	"examprep/internal/platform/kv/kvtest"
)

type fixedID string

func (f fixedID) New() string { return string(f) }

func newUsecase(t *testing.T, store kv.Store) questionsetin.Usecase {
	t.Helper()
	svc := service.NewQuestionSetService(
		clock.Fixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		fixedID("generated"),
		questionsetout.NewKVStateStore(store),
		questionsetout.NewYAMLQuestionReader(),
	)
	return usecase.NewInteractor(svc, zaptest.NewLogger(t))
}

func saveSet(t *testing.T, uc questionsetin.Usecase, id string, qids ...int) {
	t.Helper()
	qs := make([]dto.QuestionInput, 0, len(qids))
	for _, q := range qids {
		qs = append(qs, dto.QuestionInput{ID: q, Text: "question"})
	}
	if _, err := uc.Save(context.Background(), dto.SaveInput{ID: id, Name: "Set " + id, Year: 2023, Season: "autumn", Questions: qs}); err != nil {
		t.Fatalf("save %s: %v", id, err)
	}
}

func TestDeleteRemovesSetAndActiveIDInOneWrite(t *testing.T) {
	t.Parallel()
	store := kv.NewMemoryStore()
	uc := newUsecase(t, store)
	ctx := context.Background()
	saveSet(t, uc, "r5a", 1, 2)
	saveSet(t, uc, "r5s", 3)
	if !uc.Activate(ctx, "r5a") || !uc.Activate(ctx, "r5s") {
		t.Fatalf("activate should succeed")
	}

	if err := uc.Delete(ctx, "r5a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, s := range uc.ListAll(ctx) {
		if s.ID == "r5a" {
			t.Fatalf("deleted set still listed")
		}
	}

	raw, _, err := store.Get(ctx, "past_questions_state")
	if err != nil {
		t.Fatalf("read raw state: %v", err)
	}
	var persisted struct {
		Sets       []json.RawMessage `json:"sets"`
		ActiveSets []string          `json:"activeSets"`
	}
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("decode raw state: %v", err)
	}
	if len(persisted.Sets) != 1 || len(persisted.ActiveSets) != 1 || persisted.ActiveSets[0] != "r5s" {
		t.Fatalf("unexpected persisted state %s", raw)
	}
	if err := uc.Delete(ctx, "r5a"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}

func TestActiveProjectionAndQuestions(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, kv.NewMemoryStore())
	ctx := context.Background()
	saveSet(t, uc, "a", 1, 2)
	saveSet(t, uc, "b", 3)
	saveSet(t, uc, "c", 4)
	uc.Activate(ctx, "c")
	uc.Activate(ctx, "a")
	uc.Activate(ctx, "a")

	active := uc.ListActive(ctx)
	if len(active) != 2 || active[0].ID != "a" || active[1].ID != "c" {
		t.Fatalf("active sets should follow list order, got %+v", active)
	}
	for _, s := range uc.ListAll(ctx) {
		if s.IsActive != (s.ID != "b") {
			t.Fatalf("IsActive projection wrong for %s", s.ID)
		}
	}
	var ids []int
	for _, q := range uc.ActiveQuestions(ctx) {
		ids = append(ids, q.ID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 4 {
		t.Fatalf("unexpected active questions %v", ids)
	}

	if !uc.Deactivate(ctx, "a") || !uc.Deactivate(ctx, "a") {
		t.Fatalf("deactivate should be idempotent")
	}
	if len(uc.ListActive(ctx)) != 1 {
		t.Fatalf("expected one active set")
	}
	if uc.Activate(ctx, "missing") {
		t.Fatalf("activating unknown set must fail")
	}
}

func TestSaveValidatesAndUpserts(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, kv.NewMemoryStore())
	ctx := context.Background()
	if _, err := uc.Save(ctx, dto.SaveInput{ID: "x", Name: "X", Season: "summer"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad season should fail, got %v", err)
	}
	saveSet(t, uc, "x", 1)
	saveSet(t, uc, "x", 1, 2, 3)
	all := uc.ListAll(ctx)
	if len(all) != 1 || all[0].QuestionCount != 3 {
		t.Fatalf("expected single upserted set with 3 questions, got %+v", all)
	}
	if all[0].CreatedAt != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected createdAt %s", all[0].CreatedAt)
	}
}

type dayClock struct {
	now time.Time
}

func (c *dayClock) Now() time.Time {
	return c.now
}

func TestResaveKeepsCreationTime(t *testing.T) {
	t.Parallel()
	clk := &dayClock{now: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	svc := service.NewQuestionSetService(clk, fixedID("generated"), questionsetout.NewKVStateStore(kv.NewMemoryStore()), questionsetout.NewYAMLQuestionReader())
	uc := usecase.NewInteractor(svc, zaptest.NewLogger(t))
	ctx := context.Background()

	first, err := uc.Save(ctx, dto.SaveInput{ID: "s1", Name: "S1", Season: "spring"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	clk.now = clk.now.AddDate(0, 0, 1)
	resaved, err := uc.Save(ctx, dto.SaveInput{ID: "s1", Name: "S1 renamed", Season: "spring"})
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	if first.CreatedAt != "2026-01-02T00:00:00Z" || resaved.CreatedAt != first.CreatedAt {
		t.Fatalf("createdAt changed on resave: first=%s resaved=%s", first.CreatedAt, resaved.CreatedAt)
	}
	other, err := uc.Save(ctx, dto.SaveInput{ID: "s2", Name: "S2", Season: "autumn"})
	if err != nil {
		t.Fatalf("save s2: %v", err)
	}
	if other.CreatedAt != "2026-01-03T00:00:00Z" {
		t.Fatalf("new set should use the clock, got %s", other.CreatedAt)
	}
	all := uc.ListAll(ctx)
	if len(all) != 2 || all[0].Name != "S1 renamed" || all[0].CreatedAt != first.CreatedAt {
		t.Fatalf("unexpected stored sets %+v", all)
	}
}

func TestImportFromYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "r6s.yaml")
	body := "- id: 101\n  category: management\n  text: PMBOK defines ten knowledge areas.\n  answer: true\n- id: 102\n  category: strategy\n  text: ROI ignores investment cost.\n  answer: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	uc := newUsecase(t, kv.NewMemoryStore())
	out, err := uc.Import(context.Background(), dto.ImportInput{Path: path, Name: "R6 spring", Year: 2024, Season: "spring"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if out.ID != "generated" || out.QuestionCount != 2 || out.IsActive {
		t.Fatalf("unexpected import output %+v", out)
	}
	unnamed, err := uc.Import(context.Background(), dto.ImportInput{Path: path, Year: 2024, Season: "autumn"})
	if err != nil {
		t.Fatalf("import without name: %v", err)
	}
	if unnamed.Name != "r6s" {
		t.Fatalf("expected name from file, got %q", unnamed.Name)
	}
	if _, err := uc.Import(context.Background(), dto.ImportInput{Path: filepath.Join(t.TempDir(), "none.yaml"), Name: "n", Season: "spring"}); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestStorageFailures(t *testing.T) {
	t.Parallel()
	backing := kv.NewMemoryStore()
	saveSet(t, newUsecase(t, backing), "a", 1)

	writeBroken := newUsecase(t, &kvtest.FailingStore{Store: backing, FailSet: true, FailRemove: true})
	ctx := context.Background()
	if _, err := writeBroken.Save(ctx, dto.SaveInput{ID: "b", Name: "B", Season: "spring"}); !errors.Is(err, kvtest.ErrUnavailable) {
		t.Fatalf("save should propagate storage failure, got %v", err)
	}
	if err := writeBroken.Delete(ctx, "a"); !errors.Is(err, kvtest.ErrUnavailable) {
		t.Fatalf("delete should propagate storage failure, got %v", err)
	}
	if writeBroken.Activate(ctx, "a") || writeBroken.Reset(ctx) {
		t.Fatalf("soft mutators should report false")
	}

	readBroken := newUsecase(t, &kvtest.FailingStore{Store: backing, FailGet: true})
	if got := readBroken.ListAll(ctx); got == nil || len(got) != 0 {
		t.Fatalf("reads should degrade to empty, got %+v", got)
	}
	if len(readBroken.ActiveQuestions(ctx)) != 0 {
		t.Fatalf("active questions should degrade to empty")
	}
}

func TestResetClearsState(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, kv.NewMemoryStore())
	saveSet(t, uc, "a", 1)
	if !uc.Reset(context.Background()) || len(uc.ListAll(context.Background())) != 0 {
		t.Fatalf("reset should clear everything")
	}
}
