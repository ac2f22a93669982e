package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
	"github.com/faveomobile/helpdesk-client/internal/metrics"
)

// AuthService implements login, signup, password reset and logout against the
// remote gateway, persisting the bearer token in the Key-Value Store.
type AuthService struct {
	gateway  ports.Gateway
	store    ports.KeyValueStore
	validate *validator.Validate
	log      zerolog.Logger

	mu      sync.Mutex
	session domain.Session
}

func NewAuthService(gateway ports.Gateway, store ports.KeyValueStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		gateway:  gateway,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerInput struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// Login validates credentials locally, then exchanges them for a bearer
// token. Validation failures never reach the network. Any gateway failure is
// reported as ErrInvalidCredentials and leaves the prior session untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return domain.Session{}, domain.ErrFieldsRequired
	}
	if err := s.validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return domain.Session{}, domain.ErrInvalidEmail
	}

	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		s.log.Warn().Err(err).Str("email", email).Msg("login rejected by gateway")
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	if err := s.store.Set(ctx, domain.SessionKey, token); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		s.log.Error().Err(err).Msg("failed to persist session token")
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	session := domain.Session{Token: token}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
	s.log.Info().Str("email", email).Msg("login succeeded")
	return session, nil
}

// Register creates a requester account. HTTP 200/201 count as success; a
// non-2xx with a server message is surfaced verbatim via the wrapped
// GatewayError.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password, confirmPassword string) error {
	if firstName == "" || lastName == "" || email == "" || password == "" || confirmPassword == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return domain.ErrFieldsRequired
	}
	in := registerInput{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	if err := s.validate.Struct(in); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return domain.ErrInvalidEmail
	}
	if password != confirmPassword {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
		return domain.ErrPasswordMismatch
	}

	err := s.gateway.Register(ctx, ports.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		s.log.Warn().Err(err).Str("email", email).Msg("registration failed")
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	s.log.Info().Str("email", email).Msg("account created")
	return nil
}

// ForgotPassword requests a password-reset email for the given address.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("forgot_password", "rejected").Inc()
		return domain.ErrFieldsRequired
	}
	if err := s.validate.Var(email, "email"); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("forgot_password", "rejected").Inc()
		return domain.ErrInvalidEmail
	}

	if err := s.gateway.ForgotPassword(ctx, email); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("forgot_password", "error").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("forgot_password", "ok").Inc()
	return nil
}

// Logout clears the token from the store and the in-memory session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, domain.SessionKey); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "error").Inc()
		s.log.Error().Err(err).Msg("failed to clear session token")
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	metrics.AuthAttemptsTotal.WithLabelValues("logout", "ok").Inc()
	s.log.Info().Msg("logged out")
	return nil
}

// Restore loads a previously persisted token into the in-memory session so a
// restarted client can skip the login screen. An absent token is not an error.
func (s *AuthService) Restore(ctx context.Context) error {
	token, err := s.store.Get(ctx, domain.SessionKey)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	s.mu.Lock()
	s.session = domain.Session{Token: token}
	s.mu.Unlock()
	return nil
}

// Session returns a copy of the current session.
func (s *AuthService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token satisfies ports.TokenSource.
func (s *AuthService) Token() string {
	return s.Session().Token
}
