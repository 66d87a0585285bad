package bootstrap

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"turnos-web/config"
	"turnos-web/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Port: "0", Env: "test", LogLevel: "info"},
		Assets: config.AssetsConfig{StaticDir: "/srv/build", IndexFile: "index.html"},
		HTTP:   config.HTTPConfig{AllowedOrigins: []string{"*"}, ShutdownTimeout: time.Second},
		Theme:  config.ThemeConfig{PreferenceTTL: time.Hour},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewAppFailsWithoutAssetRoot(t *testing.T) {
	_, err := newApp(testConfig(), quietLogger(), afero.NewMemMapFs())
	assert.ErrorIs(t, err, service.ErrAssetRootMissing)
}

func TestNewAppFailsWithoutEntryDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv/build", 0o755))

	_, err := newApp(testConfig(), quietLogger(), fs)
	assert.ErrorIs(t, err, service.ErrEntryDocumentMissing)
}

func TestNewAppUsesMemoryStoreWithoutRedis(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/srv/build/index.html", []byte("<html></html>"), 0o644))

	app, err := newApp(testConfig(), quietLogger(), fs)
	require.NoError(t, err)

	assert.Nil(t, app.RedisClient)
	assert.Equal(t, "0.0.0.0:0", app.Server.Addr)
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/srv/build/index.html", []byte("<html></html>"), 0o644))

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	app, err := newApp(testConfig(), log, fs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, buf.String(), "Server listening on 0.0.0.0:0")
}

func TestSetupLoggerFallsBackToInfo(t *testing.T) {
	log := setupLogger(config.AppConfig{LogLevel: "verbose"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log = setupLogger(config.AppConfig{LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}
