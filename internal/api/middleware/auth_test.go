package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

type stubAuthService struct {
	identity *ports.Identity
	err      error
	token    string
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Authorize(token string) (*ports.Identity, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{identity: &ports.Identity{
		Email: "jean.dupont@christian-constantin.ch",
		Name:  "Jean Dupont",
		Role:  domain.RoleUser,
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(auth)(func(c echo.Context) error {
		called = true
		if c.Get("email") != "jean.dupont@christian-constantin.ch" {
			t.Fatalf("email not set")
		}
		if c.Get("name") != "Jean Dupont" {
			t.Fatalf("name not set")
		}
		if c.Get("role") != domain.RoleUser {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if auth.token != "some-token" {
		t.Fatalf("expected raw token to be passed, got %q", auth.token)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubAuthService{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubAuthService{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubAuthService{err: domain.ErrUnauthorized})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
