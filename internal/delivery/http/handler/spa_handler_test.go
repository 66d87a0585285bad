package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"turnos-web/internal/service"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = `<!doctype html><html><body><div id="root"></div></body></html>`

func newTestSPAHandler(t *testing.T) *SPAHandler {
	t.Helper()

	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/srv/build/index.html", []byte(testIndex), 0o644))
	require.NoError(t, afero.WriteFile(base, "/srv/build/static/js/main.js", []byte("console.log('turnos')"), 0o644))
	require.NoError(t, afero.WriteFile(base, "/srv/build/manifest", []byte(`{"name":"Turnos"}`), 0o644))
	require.NoError(t, afero.WriteFile(base, "/srv/secret.txt", []byte("secret"), 0o644))

	fs := afero.NewBasePathFs(base, "/srv/build")
	entry, err := service.NewEntryDocument(fs, "/index.html", quietLogger())
	require.NoError(t, err)

	return NewSPAHandler(fs, entry, quietLogger())
}

func TestSPAHandlerFallsBackToEntryDocument(t *testing.T) {
	h := newTestSPAHandler(t)

	for _, target := range []string{"/", "/tomar-turnos", "/mis-turnos/42/detalle", "/index.html"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.Equal(t, testIndex, rr.Body.String(), target)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"), target)
		assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"), target)
	}
}

func TestSPAHandlerServesStaticFiles(t *testing.T) {
	h := newTestSPAHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/js/main.js", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "console.log('turnos')", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "javascript")
}

func TestSPAHandlerSniffsExtensionlessFiles(t *testing.T) {
	h := newTestSPAHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/manifest", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"name":"Turnos"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestSPAHandlerDirectoryFallsBack(t *testing.T) {
	h := newTestSPAHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/js", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testIndex, rr.Body.String())
}

func TestSPAHandlerDoesNotEscapeRoot(t *testing.T) {
	h := newTestSPAHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret.txt"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
	assert.Equal(t, testIndex, rr.Body.String())
}

func TestSPAHandlerHead(t *testing.T) {
	h := newTestSPAHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/tomar-turnos", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestSPAHandlerRejectsOtherMethods(t *testing.T) {
	h := newTestSPAHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/tomar-turnos", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, HEAD", rr.Header().Get("Allow"))
}
