package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	cacheout "examprep/internal/modules/cache/adapter/out"
	"examprep/internal/modules/cache/domain"
	"examprep/internal/modules/cache/dto"
	cachein "examprep/internal/modules/cache/port/in"
	"examprep/internal/modules/cache/service"
	"examprep/internal/modules/cache/usecase"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type staticFetcher struct{}

func (staticFetcher) Fetch(_ context.Context, req domain.Request) (domain.Response, error) {
	if strings.HasSuffix(req.URL.Path, "/down") {
		return domain.Response{}, errors.New("unreachable")
	}
	return domain.Response{Status: http.StatusOK, Header: http.Header{}, Body: []byte(req.URL.Path)}, nil
}

type countingSyncer struct{ n int }

func (s countingSyncer) SyncQuestions(context.Context) (int, error) { return s.n, nil }

type recordingNotifier struct {
	mu    sync.Mutex
	shown []domain.Notification
}

func (n *recordingNotifier) Show(_ context.Context, note domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, note)
	return nil
}

func newUsecase(t *testing.T, notifier *recordingNotifier) cachein.Usecase {
	t.Helper()
	ports := service.Ports{
		Storage: cacheout.NewMemoryStorage(),
		Fetcher: staticFetcher{},
		Syncer:  countingSyncer{n: 42},
	}
	if notifier != nil {
		ports.Notifier = notifier
	}
	ctrl, err := service.NewController(service.Options{Origin: "http://app.test", Version: "v1", Manifest: []string{"/"}}, ports, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	uc := usecase.NewInteractor(ctrl, zaptest.NewLogger(t))
	ctx := context.Background()
	if _, err := uc.Install(ctx); err != nil {
		t.Fatalf("install: %v", err)
	}
	if _, err := uc.Activate(ctx); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return uc
}

func TestRunRepliesOncePerEventAndStopsOnClose(t *testing.T) {
	uc := newUsecase(t, nil)
	events := make(chan dto.Event)
	done := make(chan error, 1)
	go func() { done <- uc.Run(context.Background(), events) }()

	const n = 25
	replies := make([]<-chan dto.Result, 0, n)
	for i := 0; i < n; i++ {
		ev, reply := dto.NewEvent(dto.EventFetch)
		ev.Request = dto.Request{Method: http.MethodGet, URL: "http://app.test/asset.js"}
		events <- ev
		replies = append(replies, reply)
	}
	for i, reply := range replies {
		select {
		case res := <-reply:
			if res.Response.Status != http.StatusOK {
				t.Fatalf("event %d: unexpected status %d", i, res.Response.Status)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d: no reply", i)
		}
	}
	close(events)
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	uc := newUsecase(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- uc.Run(ctx, make(chan dto.Event)) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("loop did not stop")
	}
}

func dispatch(t *testing.T, uc cachein.Usecase, ev dto.Event, reply <-chan dto.Result) dto.Response {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan dto.Event, 1)
	done := make(chan error, 1)
	go func() { done <- uc.Run(ctx, events) }()
	events <- ev
	res := <-reply
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	return res.Response
}

func TestSyncEventReportsCount(t *testing.T) {
	uc := newUsecase(t, nil)
	ev, reply := dto.NewEvent(dto.EventSync)
	ev.Tag = "questions"
	resp := dispatch(t, uc, ev, reply)
	if resp.Status != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Status)
	}
	var out dto.SyncOutput
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Synced != 42 || out.Error != "" {
		t.Fatalf("unexpected sync output %+v", out)
	}
}

func TestPushEventShowsNotification(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := newUsecase(t, notifier)
	ev, reply := dto.NewEvent(dto.EventPush)
	ev.Payload = []byte(`{"title":"Reminder","body":"Mock exam today"}`)
	if resp := dispatch(t, uc, ev, reply); resp.Status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Status)
	}
	if len(notifier.shown) != 1 || notifier.shown[0].Body != "Mock exam today" || notifier.shown[0].URL != "http://app.test/" {
		t.Fatalf("unexpected notifications %+v", notifier.shown)
	}
}

func TestUnknownEventStillReplies(t *testing.T) {
	uc := newUsecase(t, nil)
	ev, reply := dto.NewEvent("bogus")
	if resp := dispatch(t, uc, ev, reply); resp.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Status)
	}
}

func TestHandleRejectsBadURL(t *testing.T) {
	uc := newUsecase(t, nil)
	resp := uc.Handle(context.Background(), dto.Request{URL: "http://app.test/%zz"})
	if resp.Status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Status)
	}
}

func TestFailedFetchForUncachedAssetIsNotFound(t *testing.T) {
	uc := newUsecase(t, nil)
	resp := uc.Handle(context.Background(), dto.Request{URL: "http://app.test/down"})
	if resp.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Status)
	}
}

func TestNamespacesListsCurrent(t *testing.T) {
	uc := newUsecase(t, nil)
	got, err := uc.Namespaces(context.Background())
	if err != nil {
		t.Fatalf("namespaces: %v", err)
	}
	if len(got) != 1 || got[0].Name != "examprep-static-v1" || !got[0].Current || got[0].Entries != 1 {
		t.Fatalf("unexpected namespaces %+v", got)
	}
	if uc.State() != "active" {
		t.Fatalf("expected active, got %s", uc.State())
	}
}
