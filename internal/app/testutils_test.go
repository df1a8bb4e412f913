package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinehall/booking-api/api"
	"github.com/cinehall/booking-api/internal/domain"
	"github.com/cinehall/booking-api/internal/ledger"
	"github.com/cinehall/booking-api/internal/validator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLayout() domain.Layout {
	return domain.Layout{
		Rows:          4,
		Cols:          3,
		VIPRows:       2,
		StandardPrice: decimal.NewFromInt(12),
		VIPPrice:      decimal.NewFromInt(18),
	}
}

func newTestApplication(t *testing.T, opts ...func(*application)) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	seatLedger, err := ledger.New(testLayout(), ledger.WithLogger(logger))
	require.NoError(t, err)

	app := &application{
		logger:         logger,
		validator:      validator.NewValidator(),
		sessionManager: newSessionManager(),
		ledger:         seatLedger,
	}

	app.config.env = "test"
	app.config.venue.rows = testLayout().Rows
	app.config.venue.cols = testLayout().Cols

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withURLParam injects a chi route parameter, since handler tests bypass the
// router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// setupTestSession starts a fresh session for the request and returns the
// minted token, which is the user identity handlers pass to the ledger.
func setupTestSession(t *testing.T, app *application, r *http.Request) (*http.Request, string) {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "")
	require.NoError(t, err)

	app.sessionManager.Put(ctx, SessionKeyGuest.String(), true)

	token, _, err := app.sessionManager.Commit(ctx)
	require.NoError(t, err)

	return r.WithContext(ctx), token
}

// resumeTestSession attaches an existing session to the request, simulating a
// follow-up call by the same user.
func resumeTestSession(t *testing.T, app *application, r *http.Request, token string) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), token)
	require.NoError(t, err)

	return r.WithContext(ctx)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
