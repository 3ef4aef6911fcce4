package out_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	cacheout "examprep/internal/modules/cache/adapter/out"
)

type countingIDs struct{ n int }

func (c *countingIDs) New() string {
	c.n++
	return "v" + strconv.Itoa(c.n)
}

func TestViewRegistryTrackIsIdempotentPerURL(t *testing.T) {
	t.Parallel()
	var launched []string
	reg := cacheout.NewViewRegistry(&countingIDs{}, func(_ context.Context, target string) error {
		launched = append(launched, target)
		return nil
	})
	ctx := context.Background()

	first, err := reg.Track(ctx, "http://localhost/")
	require.NoError(t, err)
	again, err := reg.Track(ctx, "http://localhost/")
	require.NoError(t, err)
	require.Equal(t, first, again)

	opened, err := reg.Open(ctx, "http://localhost/stats")
	require.NoError(t, err)
	views, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NoError(t, reg.Focus(ctx, first.ID))
	require.Error(t, reg.Focus(ctx, "missing"))
	require.Equal(t, []string{"http://localhost/stats", "http://localhost/"}, launched)
	require.NotEqual(t, first.ID, opened.ID)
}
