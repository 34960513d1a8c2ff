package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"consentry/internal/consent"
	consenthandler "consentry/internal/consent/handler"
	"consentry/internal/jwttoken"
	"consentry/internal/location"
	locationhandler "consentry/internal/location/handler"
	"consentry/internal/user"
	"consentry/pkg/testutil"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := jwttoken.NewVerifierAdapter(jwttoken.NewService("test-signing-key", "test", "test"))
	consentService := consent.NewService(consent.NewInMemoryStore(), user.NewInMemoryStore())

	return NewRouter(Config{
		Logger:   logger,
		Consent:  consenthandler.New(consentService, logger, nil, verifier),
		Location: locationhandler.New(location.NewInMemoryStore(), logger, nil),
	})
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouter_MountsConsentRoutes(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/save",
		`{"userId":"u1","preferences":{"ads":true}}`)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndMessage(t, rr, http.StatusOK, "Preferences saved successfully.")
}

func TestRouter_MountsLocationRoutes(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/save-location",
		`{"consentId":"c1","city":"Berlin"}`)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouter_AcceptsJSONWithCharset(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/save",
		`{"userId":"u1","preferences":{"ads":true}}`)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndMessage(t, rr, http.StatusOK, "Preferences saved successfully.")
}

func TestRouter_RejectsNonJSONContentType(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/save", `{}`)
	req.Header.Set("Content-Type", "text/plain")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
}

func TestRouter_AuthGateOnDeleteData(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewRequestWithBody(t, http.MethodDelete, "/delete-data", `{"consentId":"c1"}`)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatusAndMessage(t, rr, http.StatusUnauthorized, "Access denied. No token provided.")
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter()

	req := testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil)
	rr := testutil.DoRequest(router, req)

	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
