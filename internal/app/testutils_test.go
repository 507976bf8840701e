package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movie-theater-api/api"
	"github.com/metinatakli/movie-theater-api/internal/mocks"
	"github.com/metinatakli/movie-theater-api/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	swagger, err := api.GetSwagger()
	if err != nil {
		t.Fatalf("failed to load openapi document: %v", err)
	}

	metrics, err := newMovieMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	app := &Application{
		config:    Config{Env: "test", BasePath: "/theater"},
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		openapi:   swagger,
		metrics:   metrics,
		movieRepo: &mocks.MockMovieRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withMovieRepo(repo *mocks.MockMovieRepo) func(*Application) {
	return func(app *Application) {
		app.movieRepo = repo
	}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// checkErrorResponse decodes an error body and compares its detail. When
// wantField is set the body must also carry a validation error for that field.
func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantDetail, wantField string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, wantStatus, w.Body.String())
	}

	var resp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if wantDetail != "" && resp.Detail != wantDetail {
		t.Errorf("detail = %q, want %q", resp.Detail, wantDetail)
	}

	if resp.Timestamp.IsZero() {
		t.Error("timestamp is missing")
	}

	if wantField == "" {
		return
	}

	for _, vErr := range resp.ValidationErrors {
		if vErr.Field == wantField {
			return
		}
	}

	t.Errorf("no validation error for field %q in %+v", wantField, resp.ValidationErrors)
}

func ptr[T any](v T) *T {
	return &v
}
