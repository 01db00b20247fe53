package ports

import (
	"context"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// SettingsRepository persists the single system settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

// SettingsService exposes settings administration. All returned payloads
// mask the mail password.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
	// SendTestEmail dispatches a test message to the given address through
	// the configured transport so admins can verify the mail settings.
	SendTestEmail(ctx context.Context, to string) error
}
