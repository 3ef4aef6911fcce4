package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	cacheinadapter "examprep/internal/modules/cache/adapter/in"
	cacheoutadapter "examprep/internal/modules/cache/adapter/out"
	cachedto "examprep/internal/modules/cache/dto"
	cachein "examprep/internal/modules/cache/port/in"
	cacheservice "examprep/internal/modules/cache/service"
	cacheusecase "examprep/internal/modules/cache/usecase"
	examinadapter "examprep/internal/modules/exam/adapter/in"
	examoutadapter "examprep/internal/modules/exam/adapter/out"
	examservice "examprep/internal/modules/exam/service"
	examusecase "examprep/internal/modules/exam/usecase"
	missedinadapter "examprep/internal/modules/missed/adapter/in"
	missedoutadapter "examprep/internal/modules/missed/adapter/out"
	missedservice "examprep/internal/modules/missed/service"
	missedusecase "examprep/internal/modules/missed/usecase"
	profileinadapter "examprep/internal/modules/profile/adapter/in"
	profileoutadapter "examprep/internal/modules/profile/adapter/out"
	profileservice "examprep/internal/modules/profile/service"
	profileusecase "examprep/internal/modules/profile/usecase"
	questioninadapter "examprep/internal/modules/question/adapter/in"
	questionoutadapter "examprep/internal/modules/question/adapter/out"
	questionout "examprep/internal/modules/question/port/out"
	questionservice "examprep/internal/modules/question/service"
	questionusecase "examprep/internal/modules/question/usecase"
	questionsetinadapter "examprep/internal/modules/questionset/adapter/in"
	questionsetoutadapter "examprep/internal/modules/questionset/adapter/out"
	questionsetservice "examprep/internal/modules/questionset/service"
	questionsetusecase "examprep/internal/modules/questionset/usecase"
	"examprep/internal/platform/clock"
	"examprep/internal/platform/config"
	"examprep/internal/platform/id"
	"examprep/internal/platform/kv"
)

type App struct {
	Config config.Config
	Logger *zap.Logger

	MissedCLI      missedinadapter.CLIHandler
	ExamCLI        examinadapter.CLIHandler
	QuestionSetCLI questionsetinadapter.CLIHandler
	ProfileCLI     profileinadapter.CLIHandler
	QuestionCLI    questioninadapter.CLIHandler
	CacheCLI       cacheinadapter.CLIHandler
	Cache          cachein.Usecase

	store *kv.SQLiteStore
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new kv store: %w", err)
	}

	var remote questionout.Remote
	if cfg.SyncURL != "" {
		remote = questionoutadapter.NewHTTPRemote(cfg.SyncURL, &http.Client{Timeout: cfg.FetchTimeout})
	}
	questionUC := questionusecase.NewInteractor(questionservice.NewQuestionService(
		questionoutadapter.NewFileDataset(cfg.DatasetPath),
		remote,
	))

	missedUC := missedusecase.NewInteractor(
		missedservice.NewMissedService(clk, missedoutadapter.NewKVRecordStore(store)),
		questionUC,
		logger,
	)
	examUC := examusecase.NewInteractor(
		examservice.NewExamService(clk, ids, examoutadapter.NewKVSessionLog(store)),
		logger,
	)
	questionSetUC := questionsetusecase.NewInteractor(
		questionsetservice.NewQuestionSetService(clk, ids,
			questionsetoutadapter.NewKVStateStore(store),
			questionsetoutadapter.NewYAMLQuestionReader(),
		),
		logger,
	)
	profileUC := profileusecase.NewInteractor(
		profileservice.NewProfileService(profileoutadapter.NewKVNameStore(store)),
		logger,
	)

	cacheStorage, err := cacheoutadapter.NewSQLiteStorage(ctx, store.DB())
	if err != nil {
		return nil, errors.Join(fmt.Errorf("new cache storage: %w", err), store.Close())
	}
	ctrl, err := cacheservice.NewController(
		cacheservice.Options{
			Origin:      cfg.Origin,
			Version:     cfg.CacheVersion,
			Manifest:    cfg.Manifest,
			OfflinePath: cfg.OfflinePath,
		},
		cacheservice.Ports{
			Storage:  cacheStorage,
			Fetcher:  cacheoutadapter.NewHTTPFetcher(&http.Client{Timeout: cfg.FetchTimeout}),
			Notifier: cacheoutadapter.NewDesktopNotifier(os.Stderr, logger),
			Views:    cacheoutadapter.NewViewRegistry(ids, cacheoutadapter.OSLauncher),
			Syncer:   cacheoutadapter.NewQuestionSyncAdapter(questionUC),
		},
		logger.Named("controller"),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("new controller: %w", err), store.Close())
	}
	cacheUC := cacheusecase.NewInteractor(ctrl, logger)

	return &App{
		Config:         cfg,
		Logger:         logger,
		MissedCLI:      missedinadapter.NewCLIHandler(missedUC),
		ExamCLI:        examinadapter.NewCLIHandler(examUC),
		QuestionSetCLI: questionsetinadapter.NewCLIHandler(questionSetUC),
		ProfileCLI:     profileinadapter.NewCLIHandler(profileUC),
		QuestionCLI:    questioninadapter.NewCLIHandler(questionUC),
		CacheCLI:       cacheinadapter.NewCLIHandler(cacheUC),
		Cache:          cacheUC,
		store:          store,
	}, nil
}

// HTTPHandler returns the front that feeds requests into the controller
// loop through events.
func (a *App) HTTPHandler(events chan<- cachedto.Event) (http.Handler, error) {
	return cacheinadapter.NewHTTPHandler(events, a.Config.Origin, a.Logger.Named("http"))
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
