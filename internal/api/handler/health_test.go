package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Hello(t *testing.T) {
	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/"})

	if err := NewHealthHandler().Hello(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "Hello From Utilize!" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks map[string]Check
		want   int
	}{
		{"all healthy", map[string]Check{"mongo": ok, "redis": ok}, http.StatusOK},
		{"one down", map[string]Check{"mongo": ok, "redis": down}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/health/ready"})

			if err := NewHealthDependenciesHandler(tt.checks).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(resp.Dependencies) != len(tt.checks) {
				t.Fatalf("expected %d dependencies, got %+v", len(tt.checks), resp.Dependencies)
			}
		})
	}
}
