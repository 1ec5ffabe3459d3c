package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/keyvanm/inventory-sales-api/internal/utils"
)

const guardSecret = "guard-test-secret"

func newGuardedEcho() *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"username": c.Get("username")})
	}, JWTAuth(guardSecret))
	return e
}

func doGet(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func detailOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Detail
}

func TestGuardAcceptsValidToken(t *testing.T) {
	e := newGuardedEcho()
	tok, err := utils.NewAccessToken(guardSecret, "bob", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	rr := doGet(e, "Bearer "+tok.Token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Username != "bob" {
		t.Fatalf("expected subject bob in context, got %q", body.Username)
	}
}

// Every failure mode must produce the same 401 body so the response never
// reveals which check failed.
func TestGuardFailureModesAreIndistinguishable(t *testing.T) {
	e := newGuardedEcho()

	expiredClaims := jwt.MapClaims{"sub": "bob", "exp": time.Now().UTC().Add(-time.Minute).Unix()}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(guardSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	otherSecret, err := utils.NewAccessToken("some-other-secret", "bob", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc123",
		"malformed token": "Bearer not-a-jwt",
		"expired token":   "Bearer " + expired,
		"wrong secret":    "Bearer " + otherSecret.Token,
	}

	want := ""
	for name, header := range cases {
		rr := doGet(e, header)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rr.Code)
		}
		detail := detailOf(t, rr)
		if detail == "" {
			t.Fatalf("%s: expected a detail message", name)
		}
		if want == "" {
			want = detail
			continue
		}
		if detail != want {
			t.Fatalf("%s: message %q differs from %q; failure modes must be indistinguishable", name, detail, want)
		}
	}
}
