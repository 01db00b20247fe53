package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// SettingsService manages the admin-editable system configuration.
type SettingsService struct {
	repo   ports.SettingsRepository
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, mailer ports.Mailer, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, mailer: mailer, log: log}
}

// Get returns the settings with the mail password masked.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	masked := settings.Masked()
	return &masked, nil
}

// Update validates and persists new settings. A password equal to the mask
// placeholder (or empty) means "keep the stored one" so that clients can
// round-trip the masked payload safely.
func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	if settings.Company.Name == "" || settings.Company.EmailDomain == "" {
		return nil, fmt.Errorf("%w: company name and email domain are required", domain.ErrValidation)
	}
	if settings.Mail.Host == "" || settings.Mail.Port == 0 {
		return nil, fmt.Errorf("%w: mail host and port are required", domain.ErrValidation)
	}

	if settings.Mail.Pass == "" || settings.Mail.Pass == domain.MaskedPassword {
		current, err := s.repo.Get(ctx)
		if err != nil {
			return nil, err
		}
		settings.Mail.Pass = current.Mail.Pass
	}

	if err := s.repo.Update(ctx, &settings); err != nil {
		return nil, err
	}

	s.log.Info().Str("company", settings.Company.Name).Msg("settings updated")
	masked := settings.Masked()
	return &masked, nil
}

// SendTestEmail dispatches a short test message so admins can verify the
// configured transport. Transport failures surface as a dispatch error with
// no credential detail.
func (s *SettingsService) SendTestEmail(ctx context.Context, to string) error {
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #f0f0f0; padding: 20px; text-align: center;">
    <h1 style="margin: 0; color: #333;">Test de Configuration Email</h1>
  </div>
  <div style="padding: 20px;">
    <p>Bonjour,</p>
    <p>Si vous recevez cet email, la configuration email du portail CommandIT est correcte.</p>
    <p>Date et heure du test: %s</p>
  </div>
</div>`, time.Now().Format("02.01.2006 15:04:05"))

	err := s.mailer.Send(ctx, ports.MailMessage{
		To:      []string{to},
		Subject: "Test de configuration email - CommandIT",
		HTML:    body,
	})
	if err != nil {
		s.log.Error().Err(err).Str("to", to).Msg("test mail dispatch failed")
		return fmt.Errorf("%w: test email could not be sent", domain.ErrDispatchFailed)
	}

	s.log.Info().Str("to", to).Msg("test mail sent")
	return nil
}
