package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

// LoginLimiter abstracts the failed-attempt store (Redis). A nil limiter
// disables rate limiting.
type LoginLimiter interface {
	// Blocked reports whether the address has exhausted its attempts.
	Blocked(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the address.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// AuthService issues bearer tokens at login and verifies them at the gate.
type AuthService struct {
	users       ports.UserRepository
	limiter     LoginLimiter
	jwtSecret   string
	tokenTTL    time.Duration
	emailDomain string
	admins      map[string]struct{}
	log         zerolog.Logger
}

// NewAuthService builds an AuthService. adminEmails is the static allow-list
// of administrator addresses granted admin capability regardless of their
// stored role.
func NewAuthService(
	users ports.UserRepository,
	limiter LoginLimiter,
	jwtSecret string,
	tokenTTL time.Duration,
	emailDomain string,
	adminEmails []string,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	admins := make(map[string]struct{}, len(adminEmails))
	for _, a := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	return &AuthService{
		users:       users,
		limiter:     limiter,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		emailDomain: emailDomain,
		admins:      admins,
		log:         log,
	}
}

// Login validates the credentials, records the login, and returns a signed
// token embedding {email, name, role}.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	if !domain.EmailInDomain(email, s.emailDomain) {
		return "", nil, domain.ErrForbidden
	}

	if s.limiter != nil {
		blocked, err := s.limiter.Blocked(ctx, email)
		if err != nil {
			// Fail open: an unavailable limiter must not lock everyone out.
			s.log.Warn().Err(err).Str("email", email).Msg("login limiter unavailable, skipping check")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		// First login of an employee the admins never provisioned: create
		// the account on the fly, the way the portal always has. The
		// department stays empty until an admin assigns one.
		user, err = s.users.Create(ctx, &domain.User{
			Email:  email,
			Name:   nameFromEmail(email),
			Role:   domain.RoleUser,
			Active: true,
		})
		if err != nil {
			return "", nil, err
		}
	case err != nil:
		return "", nil, err
	}

	if !user.Active {
		return "", nil, domain.ErrForbidden
	}

	if user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
	} else {
		// Seeded demo accounts carry no hash and accept any password.
		// Kept deliberately visible until a real credential backend lands.
		s.log.Warn().Str("email", email).Msg("account has no password hash, accepting login without verification")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if user, err = s.users.Update(ctx, user); err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login attempts")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", user.Email).Str("role", s.effectiveRole(user)).Msg("user logged in")
	return token, user, nil
}

// Authorize verifies a raw bearer token and derives the caller's identity.
// It fails closed: any parse, signature, or expiry problem yields
// ErrUnauthorized with no further detail.
func (s *AuthService) Authorize(token string) (*ports.Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	name, _ := claims["name"].(string)
	if name == "" {
		name = nameFromEmail(email)
	}

	role := domain.RoleUser
	if claimRole, _ := claims["role"].(string); claimRole == domain.RoleAdmin {
		role = domain.RoleAdmin
	} else if s.isAllowListed(email) {
		// Tokens minted before the role claim existed: the allow-list
		// still grants admin capability.
		role = domain.RoleAdmin
	}

	return &ports.Identity{Email: email, Name: name, Role: role}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"role":  s.effectiveRole(user),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// effectiveRole resolves the role embedded in issued tokens: the stored
// role, elevated to admin for allow-listed addresses.
func (s *AuthService) effectiveRole(user *domain.User) string {
	if user.IsAdmin() || s.isAllowListed(user.Email) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (s *AuthService) isAllowListed(email string) bool {
	_, ok := s.admins[strings.ToLower(email)]
	return ok
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login attempt")
	}
}

// nameFromEmail derives a display name from the address local part,
// e.g. "jean.dupont@…" → "jean.dupont".
func nameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
