package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sweeper/pkg/utils/async"
)

// safeBuffer is a thread-safe buffer for concurrent logging
type safeBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (sb *safeBuffer) Write(p []byte) (int, error) {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.Write(p)
}

func (sb *safeBuffer) String() string {
	sb.m.Lock()
	defer sb.m.Unlock()
	return sb.b.String()
}

// notifyHandler is a slog.Handler that signals when a record is written
type notifyHandler struct {
	handler slog.Handler
	done    chan struct{}
}

func newNotifyHandler(buf *safeBuffer) *notifyHandler {
	return &notifyHandler{
		handler: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelError,
		}),
		done: make(chan struct{}, 1),
	}
}

func (h *notifyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *notifyHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.handler.Handle(ctx, r)
	select {
	case h.done <- struct{}{}:
	default:
	}
	return err
}

func (h *notifyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &notifyHandler{handler: h.handler.WithAttrs(attrs), done: h.done}
}

func (h *notifyHandler) WithGroup(name string) slog.Handler {
	return &notifyHandler{handler: h.handler.WithGroup(name), done: h.done}
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		wg.Wait()
		gt.True(t, executed)
	})

	t.Run("handles errors without crashing", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return errors.New("test error")
		})

		wg.Wait()
	})

	t.Run("recovers from panic and logs stack trace", func(t *testing.T) {
		logBuf := &safeBuffer{}
		handler := newNotifyHandler(logBuf)

		ctx := ctxlog.With(context.Background(), slog.New(handler))

		done := make(chan bool, 1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer func() {
				done <- true
			}()
			panic("test panic with stack")
		})

		select {
		case <-done:
		case <-time.After(1 * time.Second):
			t.Fatal("handler did not complete within timeout")
		}

		select {
		case <-handler.done:
		case <-time.After(1 * time.Second):
			t.Fatal("log was not written within timeout")
		}

		logOutput := logBuf.String()
		gt.True(t, strings.Contains(logOutput, "panic in async handler"))
		gt.True(t, strings.Contains(logOutput, "test panic with stack"))
		gt.True(t, strings.Contains(logOutput, "goroutine"))
	})

	t.Run("preserves logger but not cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		ctx = ctxlog.With(ctx, slog.Default())

		var wg sync.WaitGroup
		wg.Add(1)

		async.Dispatch(ctx, func(newCtx context.Context) error {
			defer wg.Done()

			gt.NotNil(t, ctxlog.From(newCtx))

			cancel()
			select {
			case <-newCtx.Done():
				t.Error("new context was cancelled")
			default:
			}

			return nil
		})

		wg.Wait()
	})
}
