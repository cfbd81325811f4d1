package respond

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, 200, map[string]string{"message": "ok"})

	if w.Code != 200 {
		t.Errorf("code = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestJSON_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, 204, nil)

	if w.Code != 204 {
		t.Errorf("code = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestSafeError_PassesValidationMessages(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, 400, errors.New("title is required"))

	if !strings.Contains(w.Body.String(), "title is required") {
		t.Errorf("body = %q, want validation message passed through", w.Body.String())
	}
}

func TestSafeError_MasksInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, 500, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if strings.Contains(w.Body.String(), "10.0.0.5") {
		t.Errorf("body = %q, leaked internal detail", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Errorf("body = %q, want generic message", w.Body.String())
	}
}

func TestSafeError_500AlwaysMasked(t *testing.T) {
	w := httptest.NewRecorder()
	// Wording looks safe but the status makes it internal.
	SafeError(w, 500, errors.New("article not found"))

	if !strings.Contains(w.Body.String(), "internal server error") {
		t.Errorf("body = %q, want generic message for 5xx", w.Body.String())
	}
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "dsn password",
			in:   `connect "postgres://app:hunter2@db:5432/news": refused`,
			want: `connect "postgres://app:****@db:5432/news": refused`,
		},
		{
			name: "bearer token",
			in:   "unexpected response to Bearer eyJhbGciOiJIUzI1NiJ9.x.y",
			want: "unexpected response to Bearer ****",
		},
		{
			name: "plain message untouched",
			in:   "no rows in result set",
			want: "no rows in result set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeError(errors.New(tt.in)); got != tt.want {
				t.Errorf("SanitizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
