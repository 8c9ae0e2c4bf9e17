package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/register", `{"full_name":"Pat Example","email":"pat@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var registered struct {
		Success bool   `json:"success"`
		UserID  string `json:"userId"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &registered)
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !registered.Success || registered.UserID == "" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}

	rec = postJSON(t, mux, "/login", `{"email":"pat@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var loggedIn struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID           string `json:"id"`
			Email        string `json:"email"`
			PasswordHash string `json:"password_hash"`
		} `json:"user"`
	}
	err = json.Unmarshal(rec.Body.Bytes(), &loggedIn)
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !loggedIn.Success || loggedIn.Token == "" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if loggedIn.User.ID != registered.UserID {
		t.Fatalf("login returned user %q, registered %q", loggedIn.User.ID, registered.UserID)
	}
	// The hash must never leave the server.
	if loggedIn.User.PasswordHash != "" || strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/register", `{"email":"pat@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/register", `{"full_name":"Pat","email":"not-an-email","password":"s3cret-pass"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/register", `{"full_name":"Pat","email":"pat@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, mux, "/register", `{"full_name":"Other Pat","email":"pat@example.com","password":"different"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "already registered") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// The two login failure modes must be byte-identical so accounts cannot be
// enumerated through the login endpoint.
func TestLoginFailureResponsesMatch(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/register", `{"full_name":"Pat","email":"pat@example.com","password":"s3cret-pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d %s", rec.Code, rec.Body.String())
	}

	wrongPassword := postJSON(t, mux, "/login", `{"email":"pat@example.com","password":"wrong"}`)
	unknownEmail := postJSON(t, mux, "/login", `{"email":"nobody@example.com","password":"s3cret-pass"}`)

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("failure responses differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginMalformedBody(t *testing.T) {
	mux := newTestMux(t)

	rec := postJSON(t, mux, "/login", `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
