package out

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartDetachedReapsChild(t *testing.T) {
	t.Parallel()
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true is not on PATH")
	}
	cmd := exec.Command(path)
	done, err := startDetached(cmd)
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("child was not reaped")
	}
	require.NotNil(t, cmd.ProcessState)
	require.True(t, cmd.ProcessState.Exited())
}

func TestStartDetachedReportsStartFailure(t *testing.T) {
	t.Parallel()
	done, err := startDetached(exec.Command("/nonexistent/examprep-launcher"))
	require.Error(t, err)
	require.Nil(t, done)
}
