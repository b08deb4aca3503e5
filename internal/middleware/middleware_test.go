package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"smap-embeds/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestLogger(), m.Recovery(), CORS(DefaultCORSConfig()))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":500,"message":"Something went wrong"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), nil))

	tests := []struct {
		name   string
		header string
	}{
		{name: "generated"},
		{name: "propagated", header: "abc-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			assert.NotEmpty(t, got)
			if tt.header != "" {
				assert.Equal(t, tt.header, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), nil))

	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "https://editor.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://editor.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestIsOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{name: "empty origin", origin: "", allowed: []string{"*"}, want: false},
		{name: "wildcard", origin: "https://a.com", allowed: []string{"*"}, want: true},
		{name: "exact", origin: "https://a.com", allowed: []string{"https://a.com"}, want: true},
		{name: "subdomain", origin: "https://x.a.com", allowed: []string{"*.a.com"}, want: true},
		{name: "other", origin: "https://b.com", allowed: []string{"https://a.com"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOriginAllowed(tt.origin, tt.allowed))
		})
	}
}
