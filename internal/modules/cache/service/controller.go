package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
	apperrors "examprep/internal/platform/errors"
)

type Options struct {
	Origin      string
	Version     string
	Manifest    []string
	OfflinePath string
}

type Ports struct {
	Storage  cacheout.Storage
	Fetcher  cacheout.Fetcher
	Notifier cacheout.Notifier
	Views    cacheout.Views
	Syncer   cacheout.QuestionSyncer
}

type InstallReport struct {
	Cached []string
	Failed map[string]error
}

// Controller intercepts resource requests for one cache version. It moves
// through new -> installing -> installed -> active -> superseded ->
// terminated and only applies caching policies while active.
type Controller struct {
	mu    sync.RWMutex
	state domain.State

	origin      *url.URL
	manifest    []string
	offlinePath string
	lifecycle   *LifecycleManager
	ports       Ports
	logger      *zap.Logger
}

func NewController(opts Options, ports Ports, logger *zap.Logger) (*Controller, error) {
	origin, err := url.Parse(opts.Origin)
	if err != nil {
		return nil, fmt.Errorf("parse origin: %w", err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("origin %q must be absolute: %w", opts.Origin, apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(opts.Version) == "" {
		return nil, fmt.Errorf("cache version is required: %w", apperrors.ErrInvalidInput)
	}
	if ports.Storage == nil || ports.Fetcher == nil {
		return nil, fmt.Errorf("storage and fetcher are required: %w", apperrors.ErrInvalidInput)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	offline := opts.OfflinePath
	if offline == "" {
		offline = "/offline.html"
	}
	return &Controller{
		state:       domain.StateNew,
		origin:      &url.URL{Scheme: origin.Scheme, Host: origin.Host, Path: "/"},
		manifest:    append([]string(nil), opts.Manifest...),
		offlinePath: offline,
		lifecycle:   NewLifecycleManager(opts.Version, ports.Storage),
		ports:       ports,
		logger:      logger,
	}, nil
}

func (c *Controller) State() domain.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) Namespaces() domain.Namespaces {
	return c.lifecycle.Current()
}

func (c *Controller) Origin() *url.URL {
	u := *c.origin
	return &u
}

func (c *Controller) transition(to domain.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.Next(to)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Install precaches the manifest into the static namespace. A failed asset is
// logged and skipped; only an unusable static namespace aborts installation.
func (c *Controller) Install(ctx context.Context) (InstallReport, error) {
	if err := c.transition(domain.StateInstalling); err != nil {
		return InstallReport{}, err
	}
	static, err := c.ports.Storage.Open(ctx, c.lifecycle.Current().Static)
	if err != nil {
		_ = c.transition(domain.StateTerminated)
		return InstallReport{}, fmt.Errorf("open static namespace: %w", err)
	}
	report := InstallReport{Cached: []string{}, Failed: map[string]error{}}
	for _, p := range c.manifest {
		req := c.request(http.MethodGet, p)
		resp, err := c.ports.Fetcher.Fetch(ctx, req)
		if err == nil && !resp.OK() {
			err = fmt.Errorf("unexpected status %d", resp.Status)
		}
		if err == nil {
			err = static.Put(ctx, req.Key(), resp.Clone())
		}
		if err != nil {
			c.logger.Warn("precache asset failed", zap.String("path", p), zap.Error(err))
			report.Failed[p] = err
			continue
		}
		report.Cached = append(report.Cached, p)
	}
	if err := c.transition(domain.StateInstalled); err != nil {
		return report, err
	}
	c.logger.Info("controller installed",
		zap.String("version", c.lifecycle.Current().Version),
		zap.Int("cached", len(report.Cached)),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}

// Activate garbage-collects stale namespaces and takes control. Prune errors
// are logged; activation still proceeds.
func (c *Controller) Activate(ctx context.Context) ([]string, error) {
	if c.State() != domain.StateInstalled {
		return nil, fmt.Errorf("activate from %s: %w", c.State(), apperrors.ErrInvalidTransition)
	}
	deleted, err := c.lifecycle.Prune(ctx)
	if err != nil {
		c.logger.Warn("prune stale namespaces failed", zap.Error(err))
	}
	for _, name := range deleted {
		c.logger.Info("deleted stale namespace", zap.String("namespace", name))
	}
	if err := c.transition(domain.StateActive); err != nil {
		return deleted, err
	}
	return deleted, nil
}

func (c *Controller) Supersede() error {
	return c.transition(domain.StateSuperseded)
}

func (c *Controller) Terminate() error {
	if c.State() == domain.StateTerminated {
		return nil
	}
	return c.transition(domain.StateTerminated)
}

// Handle answers one request. It always returns a response: a network
// response, a cached copy, or a synthesized placeholder.
func (c *Controller) Handle(ctx context.Context, req domain.Request) domain.Response {
	if !c.State().Controls() || req.Method != http.MethodGet || !c.sameOrigin(req.URL) {
		return c.passthrough(ctx, req)
	}
	ns := c.lifecycle.Current()
	switch domain.Classify(req) {
	case domain.ClassImage:
		return c.cacheFirst(ctx, req, ns.Image)
	case domain.ClassDocument:
		c.track(ctx, req)
		return c.networkFirst(ctx, req, ns.Runtime)
	default:
		return c.cacheFirst(ctx, req, ns.Runtime)
	}
}

func (c *Controller) passthrough(ctx context.Context, req domain.Request) domain.Response {
	resp, err := c.ports.Fetcher.Fetch(ctx, req)
	if err != nil {
		c.logger.Debug("passthrough fetch failed", zap.String("url", req.Key()), zap.Error(err))
		return domain.BadGateway()
	}
	return resp
}

func (c *Controller) cacheFirst(ctx context.Context, req domain.Request, store string) domain.Response {
	if cached, ok := c.match(ctx, req.Key()); ok {
		return cached
	}
	resp, err := c.ports.Fetcher.Fetch(ctx, req)
	if err != nil {
		c.logger.Debug("fetch failed with nothing cached", zap.String("url", req.Key()), zap.Error(err))
		return domain.NotFound()
	}
	if resp.OK() {
		c.put(ctx, store, req.Key(), resp)
	}
	return resp
}

func (c *Controller) networkFirst(ctx context.Context, req domain.Request, store string) domain.Response {
	resp, err := c.ports.Fetcher.Fetch(ctx, req)
	if err == nil {
		if resp.OK() {
			c.put(ctx, store, req.Key(), resp)
		}
		return resp
	}
	c.logger.Debug("document fetch failed, falling back to cache", zap.String("url", req.Key()), zap.Error(err))
	if cached, ok := c.match(ctx, req.Key()); ok {
		return cached
	}
	if offline, ok := c.match(ctx, c.request(http.MethodGet, c.offlinePath).Key()); ok {
		return offline
	}
	return domain.OfflinePage()
}

// match looks key up in every current namespace, static first. Storage
// errors count as a miss.
func (c *Controller) match(ctx context.Context, key string) (domain.Response, bool) {
	for _, name := range c.lifecycle.Current().All() {
		cache, err := c.ports.Storage.Open(ctx, name)
		if err != nil {
			c.logger.Warn("open namespace failed", zap.String("namespace", name), zap.Error(err))
			continue
		}
		resp, ok, err := cache.Match(ctx, key)
		if err != nil {
			c.logger.Warn("cache match failed", zap.String("namespace", name), zap.String("url", key), zap.Error(err))
			continue
		}
		if ok {
			return resp, true
		}
	}
	return domain.Response{}, false
}

func (c *Controller) put(ctx context.Context, name, key string, resp domain.Response) {
	cache, err := c.ports.Storage.Open(ctx, name)
	if err == nil {
		err = cache.Put(ctx, key, resp.Clone())
	}
	if err != nil {
		c.logger.Warn("cache put failed", zap.String("namespace", name), zap.String("url", key), zap.Error(err))
	}
}

func (c *Controller) sameOrigin(u *url.URL) bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(u.Scheme, c.origin.Scheme) && strings.EqualFold(u.Host, c.origin.Host)
}

func (c *Controller) request(method, p string) domain.Request {
	ref := &url.URL{Path: p}
	if i := strings.IndexByte(p, '?'); i >= 0 {
		ref = &url.URL{Path: p[:i], RawQuery: p[i+1:]}
	}
	return domain.Request{Method: method, URL: c.origin.ResolveReference(ref), Header: http.Header{}}
}

// Sync runs a best-effort question sync. The error is returned for
// reporting only.
func (c *Controller) Sync(ctx context.Context, tag string) (int, error) {
	if c.ports.Syncer == nil {
		return 0, apperrors.ErrSyncDisabled
	}
	n, err := c.ports.Syncer.SyncQuestions(ctx)
	if err != nil {
		c.logger.Warn("background sync failed", zap.String("tag", tag), zap.Error(err))
		return 0, err
	}
	c.logger.Info("background sync done", zap.String("tag", tag), zap.Int("questions", n))
	return n, nil
}

func (c *Controller) Push(ctx context.Context, payload []byte) (domain.Notification, error) {
	n := domain.ParsePush(payload)
	if n.URL == "" {
		n.URL = c.origin.String()
	}
	if c.ports.Notifier == nil {
		return n, errors.New("no notifier configured")
	}
	if err := c.ports.Notifier.Show(ctx, n); err != nil {
		c.logger.Warn("show notification failed", zap.Error(err))
		return n, err
	}
	return n, nil
}

// NotificationClick focuses an open view at the app root, or opens one.
func (c *Controller) NotificationClick(ctx context.Context) (domain.View, bool, error) {
	if c.ports.Views == nil {
		return domain.View{}, false, errors.New("no view registry configured")
	}
	views, err := c.ports.Views.List(ctx)
	if err != nil {
		return domain.View{}, false, fmt.Errorf("list views: %w", err)
	}
	for _, v := range views {
		if c.isRoot(v.URL) {
			if err := c.ports.Views.Focus(ctx, v.ID); err != nil {
				return domain.View{}, false, fmt.Errorf("focus view: %w", err)
			}
			return v, true, nil
		}
	}
	v, err := c.ports.Views.Open(ctx, c.origin.String())
	if err != nil {
		return domain.View{}, false, fmt.Errorf("open view: %w", err)
	}
	return v, false, nil
}

// track remembers root navigations so a later notification click focuses
// that view instead of launching another.
func (c *Controller) track(ctx context.Context, req domain.Request) {
	if c.ports.Views == nil || !c.isRoot(req.Key()) {
		return
	}
	if _, err := c.ports.Views.Track(ctx, req.Key()); err != nil {
		c.logger.Debug("track view failed", zap.String("url", req.Key()), zap.Error(err))
	}
}

func (c *Controller) isRoot(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !c.sameOrigin(u) {
		return false
	}
	return u.Path == "" || u.Path == "/"
}

type NamespaceInfo struct {
	Name    string
	Current bool
	Entries int
}

func (c *Controller) Inventory(ctx context.Context) ([]NamespaceInfo, error) {
	names, err := c.ports.Storage.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	current := c.lifecycle.Current()
	out := make([]NamespaceInfo, 0, len(names))
	for _, name := range names {
		cache, err := c.ports.Storage.Open(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("open namespace %s: %w", name, err)
		}
		keys, err := cache.Keys(ctx)
		if err != nil {
			return nil, fmt.Errorf("list keys of %s: %w", name, err)
		}
		out = append(out, NamespaceInfo{Name: name, Current: current.Contains(name), Entries: len(keys)})
	}
	return out, nil
}
