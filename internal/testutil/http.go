package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ErrorBody is the JSON error envelope written by the handlers.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

// Serve runs one request through h. A non-nil body is sent as JSON.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ServeRequest(h, req)
}

// ServeJSON marshals payload and sends it as the request body.
func ServeJSON(t *testing.T, h http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return Serve(h, method, path, bytes.NewReader(raw))
}

func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus fails with the response body attached so handler errors are visible.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON unmarshals the recorded body into dest without consuming it.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// DecodeError asserts want and returns the error envelope.
func DecodeError(t *testing.T, rr *httptest.ResponseRecorder, want int) ErrorBody {
	t.Helper()
	AssertStatus(t, rr, want)
	var body ErrorBody
	DecodeJSON(t, rr, &body)
	if body.Error == "" {
		t.Fatalf("expected error message in %s", rr.Body.String())
	}
	return body
}
