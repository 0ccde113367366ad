package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishdelight/backend/internal/auth"
	"github.com/dishdelight/backend/internal/handler"
	"github.com/dishdelight/backend/internal/repository/sqlite"
	"github.com/dishdelight/backend/internal/service"
)

// newTestAuthHandler wires a real AuthService over an in-memory SQLite
// database. Exercising the real stack (minus the router) keeps these tests
// honest about the status codes the full path produces.
func newTestAuthHandler(t *testing.T) *handler.AuthHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!")
	require.NoError(t, err)
	passwords := auth.NewPasswordServiceForTest(4)

	authService := service.NewAuthService(db, tokens, passwords, logger)
	return handler.NewAuthHandler(authService, logger)
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandleRegister(t *testing.T) {
	t.Run("valid registration returns 201 without password field", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"alice","email":"a@x.com","password":"Abcdef1!"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "a@x.com", body["email"])
		assert.NotEmpty(t, body["id"])

		// The hash must never appear in the response, under any key.
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, rr.Body.String(), "Abcdef1!")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"alice","password":"Abcdef1!"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("weak password returns 400 with the policy description", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"alice","email":"a@x.com","password":"weak"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "at least 6 characters")
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleRegister, "/api/register", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"alice","email":"a@x.com","password":"Abcdef1!"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		// Different username and password — only the email repeats.
		rr = postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"other","email":"a@x.com","password":"Ghijkl2@"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var body handler.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "conflict", body.Error)
	})
}

func TestHandleLogin(t *testing.T) {
	register := func(t *testing.T, h *handler.AuthHandler) {
		rr := postJSON(t, h.HandleRegister, "/api/register",
			`{"username":"alice","email":"a@x.com","password":"Abcdef1!"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	t.Run("correct credentials return 200 with a token", func(t *testing.T) {
		h := newTestAuthHandler(t)
		register(t, h)

		rr := postJSON(t, h.HandleLogin, "/api/login",
			`{"email":"a@x.com","password":"Abcdef1!"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "alice", body["user"])
	})

	t.Run("missing fields return 400 before touching the store", func(t *testing.T) {
		h := newTestAuthHandler(t)

		rr := postJSON(t, h.HandleLogin, "/api/login", `{"email":"a@x.com"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		h := newTestAuthHandler(t)
		register(t, h)

		unknown := postJSON(t, h.HandleLogin, "/api/login",
			`{"email":"nobody@x.com","password":"Abcdef1!"}`)
		wrong := postJSON(t, h.HandleLogin, "/api/login",
			`{"email":"a@x.com","password":"Wrongpw1!"}`)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		// Byte-identical bodies: nothing reveals which half failed.
		assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	})
}
