package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
	"examprep/internal/platform/id"
)

// Launcher hands a URL to something that can display it.
type Launcher func(ctx context.Context, target string) error

// ViewRegistry tracks the views this process opened. Focusing a view
// relaunches its URL, which brings the existing browser tab forward on
// most desktops.
type ViewRegistry struct {
	mu     sync.Mutex
	views  []domain.View
	ids    id.Generator
	launch Launcher
}

func NewViewRegistry(ids id.Generator, launch Launcher) *ViewRegistry {
	if launch == nil {
		launch = OSLauncher
	}
	return &ViewRegistry{ids: ids, launch: launch}
}

var _ cacheout.Views = (*ViewRegistry)(nil)

func (r *ViewRegistry) List(_ context.Context) ([]domain.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.View(nil), r.views...), nil
}

func (r *ViewRegistry) Focus(ctx context.Context, viewID string) error {
	r.mu.Lock()
	var target string
	for _, v := range r.views {
		if v.ID == viewID {
			target = v.URL
			break
		}
	}
	r.mu.Unlock()
	if target == "" {
		return fmt.Errorf("view %s is not open", viewID)
	}
	return r.launch(ctx, target)
}

func (r *ViewRegistry) Open(ctx context.Context, target string) (domain.View, error) {
	if err := r.launch(ctx, target); err != nil {
		return domain.View{}, err
	}
	v := domain.View{ID: r.ids.New(), URL: target}
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()
	return v, nil
}

func (r *ViewRegistry) Track(_ context.Context, target string) (domain.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.views {
		if v.URL == target {
			return v, nil
		}
	}
	v := domain.View{ID: r.ids.New(), URL: target}
	r.views = append(r.views, v)
	return v, nil
}

func OSLauncher(_ context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("opening views is not supported on %s", runtime.GOOS)
	}
	if _, err := startDetached(cmd); err != nil {
		return fmt.Errorf("open view: %w", err)
	}
	return nil
}

// startDetached starts cmd and waits for it in the background so the child
// is reaped once it exits. The channel yields the exit result.
func startDetached(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
