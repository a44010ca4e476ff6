package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Greendayy/Ali-Express/guard"
	"github.com/Greendayy/Ali-Express/services"

	"github.com/gin-gonic/gin"
)

type fakeSessionVerifier struct {
	ok bool
}

func (f *fakeSessionVerifier) Verify(ctx context.Context, token string) (*services.Session, error) {
	if f.ok {
		return &services.Session{UserID: "user-1"}, nil
	}
	return nil, services.ErrInvalidSession
}

func newNavigationRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := &NavigationController{
		Policy:   guard.NewPolicy([]string{"/checkout"}, "/auth"),
		Sessions: &fakeSessionVerifier{ok: authenticated},
	}
	r := gin.New()
	r.GET("/navigate", controller.Decide)
	return r
}

func decide(t *testing.T, r *gin.Engine, target string, withToken bool) guard.Decision {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/navigate?to="+target, nil)
	if withToken {
		req.Header.Set("Authorization", "Bearer token")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var d guard.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid decision JSON: %v", err)
	}
	return d
}

func TestNavigateProtectedWithoutSession(t *testing.T) {
	d := decide(t, newNavigationRouter(false), "/checkout", false)
	if d.Allow || d.RedirectTo != "/auth" {
		t.Fatalf("expected redirect to /auth, got %+v", d)
	}
}

func TestNavigateProtectedWithSession(t *testing.T) {
	d := decide(t, newNavigationRouter(true), "/checkout", true)
	if !d.Allow {
		t.Fatalf("expected allow, got %+v", d)
	}
}

func TestNavigateUnprotected(t *testing.T) {
	d := decide(t, newNavigationRouter(false), "/products", false)
	if !d.Allow {
		t.Fatalf("expected allow, got %+v", d)
	}
}

func TestNavigateMissingDestination(t *testing.T) {
	r := newNavigationRouter(false)
	req := httptest.NewRequest(http.MethodGet, "/navigate", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
