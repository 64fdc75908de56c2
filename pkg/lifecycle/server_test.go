package lifecycle

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	started  atomic.Bool
	stopped  atomic.Bool
	startErr error
	stopErr  error
}

func (f *fakeService) Start(context.Context) error {
	f.started.Store(true)
	return f.startErr
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped.Store(true)
	return f.stopErr
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func TestRunServerStopsOnCancel(t *testing.T) {
	svc := &fakeService{}
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{
			ListenAddr:  addr,
			ServiceName: "test",
			Service:     svc,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}),
			ShutdownTimeout: time.Second,
		})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}

		_ = resp.Body.Close()

		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}

	assert.True(t, svc.started.Load())
	assert.True(t, svc.stopped.Load())
}

func TestRunServerListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer l.Close()

	svc := &fakeService{}

	err = RunServer(context.Background(), &ServerOptions{
		ListenAddr:  l.Addr().String(),
		ServiceName: "test",
		Service:     svc,
		Handler:     http.NotFoundHandler(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
	assert.True(t, svc.stopped.Load())
}

func TestRunServerStartError(t *testing.T) {
	errBoom := errors.New("boom")
	svc := &fakeService{startErr: errBoom}

	err := RunServer(context.Background(), &ServerOptions{ListenAddr: freeAddr(t), Service: svc})

	require.ErrorIs(t, err, errBoom)
	assert.False(t, svc.stopped.Load())
}

func TestRunServerStopError(t *testing.T) {
	errStop := errors.New("stuck")
	svc := &fakeService{stopErr: errStop}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunServer(ctx, &ServerOptions{ListenAddr: freeAddr(t), Service: svc, Handler: http.NotFoundHandler()})

	require.ErrorIs(t, err, errStop)
}
