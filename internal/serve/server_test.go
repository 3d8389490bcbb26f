package serve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects log lines so tests can assert on them.
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) log(level, msg string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := level + " " + msg
	for i := 0; i+1 < len(args); i += 2 {
		line += fmt.Sprintf(" %v=%v", args[i], args[i+1])
	}

	r.lines = append(r.lines, line)
}

func (r *recorder) Debug(msg string, args ...any) { r.log("DEBUG", msg, args...) }
func (r *recorder) Info(msg string, args ...any)  { r.log("INFO", msg, args...) }
func (r *recorder) Warn(msg string, args ...any)  { r.log("WARN", msg, args...) }
func (r *recorder) Error(msg string, args ...any) { r.log("ERROR", msg, args...) }

func (r *recorder) contains(t *testing.T, want string) {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.lines {
		if strings.Contains(line, want) {
			return
		}
	}

	t.Fatalf("no log line contains %q, got:\n%s", want, strings.Join(r.lines, "\n"))
}

func siteDir(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o644)
	require.NoError(t, err)

	return root
}

func TestHandlerServesSiteFiles(t *testing.T) {
	logs := &recorder{}
	srv := httptest.NewServer(New("", siteDir(t), logs).handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/index.html")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>home</h1>", string(body))

	logs.contains(t, "request")
	logs.contains(t, "path=/index.html")
	logs.contains(t, "status=200")
}

func TestHandlerServesIndexAtRoot(t *testing.T) {
	srv := httptest.NewServer(New("", siteDir(t), nil).handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "home")
}

func TestHandlerLogsMissingFiles(t *testing.T) {
	logs := &recorder{}
	srv := httptest.NewServer(New("", siteDir(t), logs).handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope.html")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	logs.contains(t, "status=404")
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := New("127.0.0.1:0", siteDir(t), nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRunRejectsMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "docs")

	err := New("", missing, nil).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate the site first")
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New("", "docs", nil)

	assert.Equal(t, DefaultAddr, s.addr)
	assert.NotNil(t, s.logger)
}
