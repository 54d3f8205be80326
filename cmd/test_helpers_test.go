package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zaptest"
)

// setupTestAppContext installs a fresh AppContext and restores global state afterwards.
func setupTestAppContext(t *testing.T) *AppContext {
	t.Helper()

	originalCtx := globalAppContext
	originalConfig := *cliConfig
	originalNoColor := color.NoColor
	color.NoColor = true

	appCtx := &AppContext{
		Logger: zaptest.NewLogger(t).Sugar(),
		Config: newCLIConfig(),
	}
	globalAppContext = appCtx

	t.Cleanup(func() {
		globalAppContext = originalCtx
		*cliConfig = originalConfig
		color.NoColor = originalNoColor
	})
	return appCtx
}

func newTestCommand(input string) (*cobra.Command, *bytes.Buffer) {
	c := &cobra.Command{Use: "test"}
	buf := &bytes.Buffer{}
	c.SetIn(strings.NewReader(input))
	c.SetOut(buf)
	c.SetErr(buf)
	return c, buf
}

// newVulnerableServer serves a page that trips the content checks but sets no headers.
func newVulnerableServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "test-server/1.0")
		_, _ = w.Write([]byte(`<html><body><p>Select a product</p><form><input name="q"></form></body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func closedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
