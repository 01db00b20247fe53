package domain

// MaskedPassword is the fixed placeholder returned in place of the real mail
// password. The stored value is never echoed back, not even to admins.
const MaskedPassword = "••••••••••"

// CompanySettings identifies the organisation the portal serves.
type CompanySettings struct {
	Name        string `json:"name"`
	EmailDomain string `json:"emailDomain"`
	Logo        string `json:"logo,omitempty"`
}

// MailSettings configures the outbound SMTP transport.
type MailSettings struct {
	Host               string   `json:"host"`
	Port               int      `json:"port"`
	Secure             bool     `json:"secure"`
	User               string   `json:"user"`
	Pass               string   `json:"pass"`
	NotificationEmails []string `json:"notificationEmails"`
}

// SecuritySettings holds authentication parameters.
type SecuritySettings struct {
	SessionDurationHours int `json:"sessionDuration"`
	MaxLoginAttempts     int `json:"maxLoginAttempts"`
}

// Settings is the full admin-editable system configuration.
type Settings struct {
	Company     CompanySettings  `json:"company"`
	Mail        MailSettings     `json:"email"`
	Security    SecuritySettings `json:"security"`
	Departments []string         `json:"departments"`
}

// Masked returns a copy safe to serialize: the mail password is replaced
// with the fixed placeholder when set, empty otherwise.
func (s Settings) Masked() Settings {
	out := s
	if out.Mail.Pass != "" {
		out.Mail.Pass = MaskedPassword
	}
	return out
}
