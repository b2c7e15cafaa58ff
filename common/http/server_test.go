package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestServer() *HttpServer {
	s := NewHttpServer(WithMode(gin.TestMode), WithPort(0))
	s.Use(CorsMiddleware(), RequestIDMiddleware(), LoggerMiddleware())
	s.GET("/ok", func(c *Context) error {
		c.Success(map[string]string{"requestID": c.GetString(RequestIDKey)})
		return nil
	})
	s.GET("/fail", func(c *Context) error {
		return errors.New("boom")
	})
	return s
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestHttpServer_SuccessEnvelopeAndRequestID(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp.Code != CodeSuccess || resp.Message != MsgSuccess {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	id := rec.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatalf("expected generated request id header")
	}
	if data, _ := resp.Data.(map[string]interface{}); data["requestID"] != id {
		t.Fatalf("expected request id %s in context, got %v", id, resp.Data)
	}
}

func TestHttpServer_KeepsIncomingRequestID(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestHttpServer_HandlerErrorBecomes500(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp.Code != CodeServerError || resp.Message != "boom" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestHttpServer_CorsPreflight(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header, got %q", got)
	}
}
