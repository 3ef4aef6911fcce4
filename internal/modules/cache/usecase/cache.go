package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"examprep/internal/modules/cache/domain"
	"examprep/internal/modules/cache/dto"
	cachein "examprep/internal/modules/cache/port/in"
	"examprep/internal/modules/cache/service"
)

type Interactor struct {
	ctrl   *service.Controller
	logger *zap.Logger
}

func NewInteractor(ctrl *service.Controller, logger *zap.Logger) cachein.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{ctrl: ctrl, logger: logger.Named("cache")}
}

func (i *Interactor) Install(ctx context.Context) (dto.InstallOutput, error) {
	report, err := i.ctrl.Install(ctx)
	if err != nil {
		return dto.InstallOutput{}, err
	}
	failed := make(map[string]string, len(report.Failed))
	for p, ferr := range report.Failed {
		failed[p] = ferr.Error()
	}
	return dto.InstallOutput{Version: i.ctrl.Namespaces().Version, Cached: report.Cached, Failed: failed}, nil
}

func (i *Interactor) Activate(ctx context.Context) (dto.ActivateOutput, error) {
	deleted, err := i.ctrl.Activate(ctx)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	return dto.ActivateOutput{Deleted: deleted}, nil
}

func (i *Interactor) Supersede() error { return i.ctrl.Supersede() }

func (i *Interactor) Terminate() error { return i.ctrl.Terminate() }

func (i *Interactor) State() string { return string(i.ctrl.State()) }

func (i *Interactor) Handle(ctx context.Context, req dto.Request) dto.Response {
	u, err := url.Parse(req.URL)
	if err != nil {
		i.logger.Debug("unparseable request url", zap.String("url", req.URL), zap.Error(err))
		return toResponse(domain.BadGateway())
	}
	header := req.Header
	if header == nil {
		header = http.Header{}
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	return toResponse(i.ctrl.Handle(ctx, domain.Request{Method: method, URL: u, Header: header, Body: req.Body}))
}

func (i *Interactor) Sync(ctx context.Context, tag string) dto.SyncOutput {
	n, err := i.ctrl.Sync(ctx, tag)
	if err != nil {
		return dto.SyncOutput{Error: err.Error()}
	}
	return dto.SyncOutput{Synced: n}
}

func (i *Interactor) Push(ctx context.Context, payload []byte) error {
	_, err := i.ctrl.Push(ctx, payload)
	return err
}

func (i *Interactor) NotificationClick(ctx context.Context) (dto.ClickOutput, error) {
	v, focused, err := i.ctrl.NotificationClick(ctx)
	if err != nil {
		return dto.ClickOutput{}, err
	}
	return dto.ClickOutput{ViewID: v.ID, URL: v.URL, Focused: focused}, nil
}

func (i *Interactor) Namespaces(ctx context.Context) ([]dto.NamespaceOutput, error) {
	infos, err := i.ctrl.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamespaceOutput, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.NamespaceOutput{Name: info.Name, Current: info.Current, Entries: info.Entries})
	}
	return out, nil
}

func (i *Interactor) Run(ctx context.Context, events <-chan dto.Event) error {
	g, gctx := errgroup.WithContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return g.Wait()
		case ev, ok := <-events:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				i.dispatch(gctx, ev)
				return nil
			})
		}
	}
}

// dispatch replies exactly once, whatever the event kind or outcome.
func (i *Interactor) dispatch(ctx context.Context, ev dto.Event) {
	var resp dto.Response
	defer func() {
		if ev.Reply != nil {
			ev.Reply <- dto.Result{Response: resp}
		}
	}()

	switch ev.Kind {
	case dto.EventFetch:
		resp = i.Handle(ctx, ev.Request)
	case dto.EventSync:
		resp = jsonResponse(http.StatusAccepted, i.Sync(ctx, ev.Tag))
	case dto.EventPush:
		if err := i.Push(ctx, ev.Payload); err != nil {
			resp = jsonResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		resp = dto.Response{Status: http.StatusNoContent, Header: http.Header{}}
	case dto.EventNotificationClick:
		out, err := i.NotificationClick(ctx)
		if err != nil {
			i.logger.Warn("notification click failed", zap.Error(err))
			resp = jsonResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		resp = jsonResponse(http.StatusOK, out)
	default:
		resp = jsonResponse(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown event kind %q", ev.Kind)})
	}
}

func toResponse(r domain.Response) dto.Response {
	return dto.Response{Status: r.Status, Header: r.Header, Body: r.Body}
}

func jsonResponse(status int, v any) dto.Response {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		return dto.Response{Status: http.StatusInternalServerError, Header: h, Body: []byte(`{"error":"encode response"}`)}
	}
	return dto.Response{Status: status, Header: h, Body: body}
}
