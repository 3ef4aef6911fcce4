package out

import (
	"context"

	"examprep/internal/modules/cache/domain"
)

// Storage holds named cache namespaces.
type Storage interface {
	Open(ctx context.Context, name string) (Cache, error)
	Names(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) (bool, error)
}

// Cache is one namespace keyed by request URL.
type Cache interface {
	Match(ctx context.Context, key string) (domain.Response, bool, error)
	Put(ctx context.Context, key string, resp domain.Response) error
	Keys(ctx context.Context) ([]string, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, req domain.Request) (domain.Response, error)
}

type Notifier interface {
	Show(ctx context.Context, n domain.Notification) error
}

// Views are the app windows the controller can focus or open.
type Views interface {
	List(ctx context.Context) ([]domain.View, error)
	Focus(ctx context.Context, id string) error
	Open(ctx context.Context, url string) (domain.View, error)
	// Track records a view that navigated through the controller without
	// launching anything. Tracking a URL twice returns the first view.
	Track(ctx context.Context, url string) (domain.View, error)
}

type QuestionSyncer interface {
	SyncQuestions(ctx context.Context) (int, error)
}
