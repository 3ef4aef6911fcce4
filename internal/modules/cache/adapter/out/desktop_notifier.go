package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"examprep/internal/modules/cache/domain"
	cacheout "examprep/internal/modules/cache/port/out"
)

// DesktopNotifier shows notifications through the platform notification
// tool. When none is available it writes a line to w.
type DesktopNotifier struct {
	w      io.Writer
	logger *zap.Logger
	run    func(ctx context.Context, name string, args ...string) error
}

func NewDesktopNotifier(w io.Writer, logger *zap.Logger) cacheout.Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DesktopNotifier{w: w, logger: logger, run: runCommand}
}

func (n *DesktopNotifier) Show(ctx context.Context, note domain.Notification) error {
	name, args, ok := notifyCommand(runtime.GOOS, note)
	if ok {
		err := n.run(ctx, name, args...)
		if err == nil {
			return nil
		}
		n.logger.Debug("desktop notification failed, using fallback", zap.String("command", name), zap.Error(err))
	}
	if n.w == nil {
		return fmt.Errorf("no notification target for %q", note.Title)
	}
	if _, err := fmt.Fprintf(n.w, "[%s] %s %s\n", note.Title, note.Body, note.URL); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}

func notifyCommand(goos string, note domain.Notification) (string, []string, bool) {
	switch goos {
	case "linux":
		return "notify-send", []string{note.Title, note.Body}, true
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", note.Body, note.Title)
		return "osascript", []string{"-e", script}, true
	default:
		return "", nil, false
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
