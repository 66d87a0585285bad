package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIdentityIssuesCookie(t *testing.T) {
	var seen string
	handler := ClientIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetClientIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, ClientIDCookie, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
}

func TestClientIdentityReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()

	var seen string
	handler := ClientIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetClientIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientIDCookie, Value: existing})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, existing, seen)
	assert.Empty(t, rr.Result().Cookies())
}

func TestClientIdentityReplacesForgedCookie(t *testing.T) {
	var seen string
	handler := ClientIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetClientIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientIDCookie, Value: "theme:preference:*"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "theme:preference:*", seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestLoggingMiddlewareLogsStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	handler := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := GetRequestIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "req-123", requestID)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tomar-turnos", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"client_ip":"203.0.113.7"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}

func TestLoggingMiddlewareKeepsFlusher(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	handler := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(http.Flusher)
		assert.True(t, ok)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	assert.Equal(t, "198.51.100.4", ClientIP(req))

	req.Header.Set("X-Real-IP", "192.0.2.9")
	assert.Equal(t, "192.0.2.9", ClientIP(req))
}

func TestRateLimiter(t *testing.T) {
	handler := NewRateLimiter(2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 3)
	for i := range codes {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil))
		codes[i] = rr.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORSMiddleware(t *testing.T) {
	handler := NewCORSMiddleware([]string{"https://turnos.example"}).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil)
	req.Header.Set("Origin", "https://turnos.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "https://turnos.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
