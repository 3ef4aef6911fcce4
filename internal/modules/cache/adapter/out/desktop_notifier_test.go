package out

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"examprep/internal/modules/cache/domain"
)

func TestNotifyCommand(t *testing.T) {
	t.Parallel()
	note := domain.Notification{Title: "Reminder", Body: "Mock exam today"}

	name, args, ok := notifyCommand("linux", note)
	require.True(t, ok)
	require.Equal(t, "notify-send", name)
	require.Equal(t, []string{"Reminder", "Mock exam today"}, args)

	name, args, ok = notifyCommand("darwin", note)
	require.True(t, ok)
	require.Equal(t, "osascript", name)
	require.Equal(t, []string{"-e", `display notification "Mock exam today" with title "Reminder"`}, args)

	_, _, ok = notifyCommand("plan9", note)
	require.False(t, ok)
}

func TestDesktopNotifierFallsBackToWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := &DesktopNotifier{w: &buf, logger: zaptest.NewLogger(t), run: func(context.Context, string, ...string) error {
		return errors.New("no display")
	}}
	err := n.Show(context.Background(), domain.Notification{Title: "examprep", Body: "10 new questions", URL: "http://app.test/"})
	require.NoError(t, err)
	require.Equal(t, "[examprep] 10 new questions http://app.test/\n", buf.String())
}
