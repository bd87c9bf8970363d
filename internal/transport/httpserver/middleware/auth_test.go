package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menu-app-go/internal/config"
	"menu-app-go/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func captureUser(seen *User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		*seen = user
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthLocalJWT(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret}, logger.NewNop())
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":           "user-1",
		"email":         "owner@example.com",
		"exp":           time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]interface{}{"full_name": "Owner"},
	})

	var seen User
	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen.ID != "user-1" || seen.Email != "owner@example.com" || seen.Name != "Owner" {
		t.Fatalf("unexpected user %+v", seen)
	}
}

func TestAuthLocalJWTRejectsBadTokens(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret}, logger.NewNop())

	cases := map[string]string{
		"wrong secret": signToken(t, "other", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}),
		"expired":      signToken(t, testSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}),
		"no expiry":    signToken(t, testSecret, jwt.MapClaims{"sub": "u"}),
		"no subject":   signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
		"garbage":      "not-a-token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			var seen User
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			auth.Middleware(captureUser(&seen)).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMissingBearer(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{JWTSecret: testSecret}, logger.NewNop())

	var seen User
	rec := httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthSupabaseUserEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" || r.Header.Get("apikey") != "anon" || r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-2","email":"two@example.com"}`))
	}))
	defer upstream.Close()

	auth := NewSupabaseAuth(config.SupabaseConfig{URL: upstream.URL + "/", PublishableKey: "anon"}, logger.NewNop())

	var seen User
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || seen.ID != "user-2" {
		t.Fatalf("expected user-2, got status %d user %+v", rec.Code, seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec = httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthSkipUsesMockUser(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{SkipAuth: true, MockUserID: "mock-user"}, logger.NewNop())

	var seen User
	rec := httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK || seen.ID != "mock-user" {
		t.Fatalf("expected mock user, got status %d user %+v", rec.Code, seen)
	}
}

func TestAuthNotConfigured(t *testing.T) {
	auth := NewSupabaseAuth(config.SupabaseConfig{}, logger.NewNop())

	var seen User
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	auth.Middleware(captureUser(&seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
