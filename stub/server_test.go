package stub

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/octabyte/smartsaas-go/models"
	"github.com/octabyte/smartsaas-go/utils"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{JWTSecret: "handler-test-secret"})
}

func doJSON(t *testing.T, s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, s *Server, email string) string {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/auth/register",
		`{"email":"`+email+`","password":"pw123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	require.NoError(t, utils.BytesToStruct(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "dup@example.com")

	rec := doJSON(t, s, http.MethodPost, "/auth/register",
		`{"email":"dup@example.com","password":"other"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", gjson.Get(rec.Body.String(), "detail").String())
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"pw"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", gjson.Get(rec.Body.String(), "detail").String())
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "who@example.com")

	rec := doJSON(t, s, http.MethodPost, "/auth/login",
		`{"email":"who@example.com","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", gjson.Get(rec.Body.String(), "detail").String())
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	s := newTestServer(t)
	registerUser(t, s, "Mixed@Example.com")

	rec := doJSON(t, s, http.MethodPost, "/auth/login",
		`{"email":"mixed@example.com","password":"pw123"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/user-info", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", gjson.Get(rec.Body.String(), "detail").String())
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/user-info", "", "not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", gjson.Get(rec.Body.String(), "detail").String())
}

func TestProtectedRouteAcceptsCookieToken(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "cookie@example.com")

	req := httptest.NewRequest(http.MethodGet, "/user-info", nil)
	req.AddCookie(&http.Cookie{Name: "Authorization", Value: token})
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie@example.com", gjson.Get(rec.Body.String(), "email").String())
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	s := newTestServer(t)
	other := New(Config{JWTSecret: "different-secret"})
	token := registerUser(t, other, "forged@example.com")

	rec := doJSON(t, s, http.MethodGet, "/user-info", "", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownRouteKeepsDetailShape(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/no-such-route", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, gjson.Get(rec.Body.String(), "detail").String())
}

func TestExchangeBelowMinimum(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "xchg@example.com")

	rec := doJSON(t, s, http.MethodPost, "/tokens/exchange?amount=10", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Minimum 50 tokens required", gjson.Get(rec.Body.String(), "detail").String())
}

func TestReferSelfIsRejected(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "self@example.com")

	rec := doJSON(t, s, http.MethodPost, "/tokens/refer",
		`{"referred_email":"self@example.com"}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already referred", gjson.Get(rec.Body.String(), "detail").String())
}

func TestSyncTokensWithoutWallet(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "nowallet@example.com")

	rec := doJSON(t, s, http.MethodPost, "/web3/sync-tokens", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No wallet linked", gjson.Get(rec.Body.String(), "detail").String())
}

func TestCreateCheckoutUnknownPlan(t *testing.T) {
	s := newTestServer(t)
	token := registerUser(t, s, "plan@example.com")

	rec := doJSON(t, s, http.MethodPost, "/create-checkout",
		`{"plan_id":"enterprise"}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid plan", gjson.Get(rec.Body.String(), "detail").String())
}
