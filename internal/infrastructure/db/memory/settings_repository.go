package memory

import (
	"context"
	"sync"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

// SettingsRepository holds the single settings document in memory.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewSettingsRepository(initial domain.Settings) *SettingsRepository {
	return &SettingsRepository{settings: cloneSettings(initial)}
}

func (r *SettingsRepository) Get(_ context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := cloneSettings(r.settings)
	return &s, nil
}

func (r *SettingsRepository) Update(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = cloneSettings(*settings)
	return nil
}

// cloneSettings copies the slice fields so the stored document is never
// aliased by a caller's value.
func cloneSettings(s domain.Settings) domain.Settings {
	out := s
	if s.Mail.NotificationEmails != nil {
		out.Mail.NotificationEmails = append([]string(nil), s.Mail.NotificationEmails...)
	}
	if s.Departments != nil {
		out.Departments = append([]string(nil), s.Departments...)
	}
	return out
}
