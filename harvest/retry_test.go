package harvest_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastDelays are short delays so retry tests don't sleep for real.
func fastDelays() []time.Duration {
	return []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html></html>", nil
		}

		html, err := harvest.FetchWithRetryDelays(context.Background(), "http://a.test", fetch, nil, fastDelays())

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "status 503")
			}
			return "ok", nil
		}

		html, err := harvest.FetchWithRetryDelays(context.Background(), "http://a.test", fetch, nil, fastDelays())

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "status 503")
		}

		_, err := harvest.FetchWithRetryDelays(context.Background(), "http://a.test", fetch, nil, fastDelays())

		require.Error(t, err)
		assert.Equal(t, newsclip.EUNAVAILABLE, newsclip.ErrorCode(err))
		assert.Equal(t, 4, attempts, "1 initial + 3 retries")
	})

	t.Run("empty delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "status 503")
		}

		_, err := harvest.FetchWithRetryDelays(context.Background(), "http://a.test", fetch, nil, []time.Duration{})

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "status 503")
		}

		_, err := harvest.FetchWithRetryDelays(ctx, "http://a.test", fetch, nil, fastDelays())

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		fetch := func(ctx context.Context, url string) (string, error) {
			return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "status 503")
		}

		_, err := harvest.FetchWithRetryDelays(context.Background(), "http://a.test", fetch, logger, fastDelays())

		require.Error(t, err)
		assert.Equal(t, 3, strings.Count(buf.String(), "fetch retry"))
	})
}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	// First-attempt success never sleeps, so default delays are safe here.
	fetch := func(ctx context.Context, url string) (string, error) {
		return "ok", nil
	}

	html, err := harvest.FetchWithRetry(context.Background(), "http://a.test", fetch, nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", html)
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := harvest.DefaultRetryDelays()
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
