package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

type stubSettingsService struct {
	getFn       func(ctx context.Context) (*domain.Settings, error)
	updateFn    func(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
	testEmailFn func(ctx context.Context, to string) error
}

func (s *stubSettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.getFn(ctx)
}

func (s *stubSettingsService) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	return s.updateFn(ctx, settings)
}

func (s *stubSettingsService) SendTestEmail(ctx context.Context, to string) error {
	return s.testEmailFn(ctx, to)
}

func maskedSettings() *domain.Settings {
	return &domain.Settings{
		Company: domain.CompanySettings{Name: "Christian Constantin SA", EmailDomain: "@christian-constantin.ch"},
		Mail:    domain.MailSettings{Host: "smtp.christian-constantin.ch", Port: 587, Pass: domain.MaskedPassword},
	}
}

func TestSettingsHandler_Get(t *testing.T) {
	e := newEcho()
	stub := &stubSettingsService{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return maskedSettings(), nil
		},
	}
	handler := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	mail, ok := resp["email"].(map[string]any)
	if !ok {
		t.Fatalf("expected email section, got %+v", resp)
	}
	if mail["pass"] != domain.MaskedPassword {
		t.Fatalf("expected masked password, got %v", mail["pass"])
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	e := newEcho()
	stub := &stubSettingsService{
		updateFn: func(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
			if settings.Company.Name != "Christian Constantin SA" {
				t.Fatalf("unexpected payload: %+v", settings)
			}
			masked := settings.Masked()
			return &masked, nil
		},
	}
	handler := NewSettingsHandler(stub)

	body := strings.NewReader(`{"company":{"name":"Christian Constantin SA","emailDomain":"@christian-constantin.ch"},"email":{"host":"smtp.christian-constantin.ch","port":587,"pass":"nouveau-secret"}}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "nouveau-secret") {
		t.Fatalf("plaintext password echoed back")
	}
}

func TestSettingsHandler_Update_PropagatesValidation(t *testing.T) {
	e := newEcho()
	stub := &stubSettingsService{
		updateFn: func(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
			return nil, domain.ErrValidation
		},
	}
	handler := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Update(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation to propagate, got %v", err)
	}
}

func TestSettingsHandler_TestEmail(t *testing.T) {
	e := newEcho()
	stub := &stubSettingsService{
		testEmailFn: func(ctx context.Context, to string) error {
			if to != "admin@christian-constantin.ch" {
				t.Fatalf("expected the caller's own address, got %q", to)
			}
			return nil
		},
	}
	handler := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/test-email", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "admin@christian-constantin.ch")
	c.Set("role", domain.RoleAdmin)

	if err := handler.TestEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSettingsHandler_TestEmail_DispatchFailure(t *testing.T) {
	e := newEcho()
	stub := &stubSettingsService{
		testEmailFn: func(ctx context.Context, to string) error {
			return domain.ErrDispatchFailed
		},
	}
	handler := NewSettingsHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/admin/test-email", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "admin@christian-constantin.ch")

	if err := handler.TestEmail(c); !errors.Is(err, domain.ErrDispatchFailed) {
		t.Fatalf("expected ErrDispatchFailed to propagate, got %v", err)
	}
}
