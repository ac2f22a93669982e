package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
)

// authStubGateway counts calls so tests can assert that local validation
// failures never reach the network.
type authStubGateway struct {
	mu sync.Mutex

	loginToken string
	loginErr   error
	loginCalls int

	registerErr   error
	registerCalls int

	forgotErr   error
	forgotCalls int
}

func (g *authStubGateway) Login(_ context.Context, _, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loginCalls++
	return g.loginToken, g.loginErr
}

func (g *authStubGateway) Register(_ context.Context, _ ports.RegisterInput) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.registerCalls++
	return g.registerErr
}

func (g *authStubGateway) ForgotPassword(_ context.Context, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.forgotCalls++
	return g.forgotErr
}

func (g *authStubGateway) ListUsers(_ context.Context, _ ports.ListUsersInput) ([]domain.UserRecord, error) {
	return nil, errors.New("unexpected ListUsers call")
}

func (g *authStubGateway) GetUser(_ context.Context, _ string, _ int64) (*domain.UserRecord, error) {
	return nil, errors.New("unexpected GetUser call")
}

func TestAuthService_Login_Success(t *testing.T) {
	gw := &authStubGateway{loginToken: "tok-123"}
	store := newMemStore()
	svc := NewAuthService(gw, store, testLogger())

	session, err := svc.Login(context.Background(), "user@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token != "tok-123" {
		t.Fatalf("unexpected session token: %q", session.Token)
	}
	if got := store.value(domain.SessionKey); got != "tok-123" {
		t.Fatalf("token not persisted, store holds %q", got)
	}
	if !svc.Session().Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if svc.Token() != "tok-123" {
		t.Fatalf("Token() = %q, want tok-123", svc.Token())
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	gw := &authStubGateway{loginToken: "tok"}
	svc := NewAuthService(gw, newMemStore(), testLogger())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrFieldsRequired {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); err != domain.ErrFieldsRequired {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if gw.loginCalls != 0 {
		t.Fatalf("gateway called %d times for empty input", gw.loginCalls)
	}
}

func TestAuthService_Login_MalformedEmailNeverReachesGateway(t *testing.T) {
	gw := &authStubGateway{loginToken: "tok"}
	svc := NewAuthService(gw, newMemStore(), testLogger())

	if _, err := svc.Login(context.Background(), "not-an-email", "pass"); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if gw.loginCalls != 0 {
		t.Fatalf("gateway called %d times for malformed email", gw.loginCalls)
	}
}

func TestAuthService_Login_GatewayRejection(t *testing.T) {
	gw := &authStubGateway{loginErr: &domain.GatewayError{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}}
	svc := NewAuthService(gw, newMemStore(), testLogger())

	if _, err := svc.Login(context.Background(), "user@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.Session().Authenticated() {
		t.Fatalf("failed login must not establish a session")
	}
}

func TestAuthService_Login_PersistFailure(t *testing.T) {
	gw := &authStubGateway{loginToken: "tok"}
	store := newMemStore()
	store.setErr = errStoreBroken
	svc := NewAuthService(gw, store, testLogger())

	_, err := svc.Login(context.Background(), "user@example.com", "pass")
	if !errors.Is(err, errStoreBroken) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestAuthService_LoginThenLogout_LeavesStoreEmpty(t *testing.T) {
	gw := &authStubGateway{loginToken: "tok"}
	store := newMemStore()
	svc := NewAuthService(gw, store, testLogger())

	if _, err := svc.Login(context.Background(), "user@example.com", "pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if got := store.value(domain.SessionKey); got != "" {
		t.Fatalf("token still in store after logout: %q", got)
	}
	if svc.Session().Authenticated() {
		t.Fatalf("session still authenticated after logout")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	gw := &authStubGateway{}
	svc := NewAuthService(gw, newMemStore(), testLogger())
	ctx := context.Background()

	if err := svc.Register(ctx, "", "Doe", "a@b.com", "p", "p"); err != domain.ErrFieldsRequired {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if err := svc.Register(ctx, "Jane", "Doe", "bad-email", "p", "p"); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if err := svc.Register(ctx, "Jane", "Doe", "a@b.com", "p1", "p2"); err != domain.ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if gw.registerCalls != 0 {
		t.Fatalf("gateway called %d times for invalid input", gw.registerCalls)
	}
}

func TestAuthService_Register_SurfacesServerMessage(t *testing.T) {
	gw := &authStubGateway{registerErr: &domain.GatewayError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "This email address is already registered.",
	}}
	svc := NewAuthService(gw, newMemStore(), testLogger())

	err := svc.Register(context.Background(), "Jane", "Doe", "a@b.com", "p", "p")
	msg, ok := domain.ServerMessage(err)
	if !ok {
		t.Fatalf("expected a server message, got %v", err)
	}
	if msg != "This email address is already registered." {
		t.Fatalf("unexpected server message: %q", msg)
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	gw := &authStubGateway{}
	svc := NewAuthService(gw, newMemStore(), testLogger())
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, ""); err != domain.ErrFieldsRequired {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if err := svc.ForgotPassword(ctx, "nope"); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if gw.forgotCalls != 0 {
		t.Fatalf("gateway called %d times for invalid input", gw.forgotCalls)
	}
	if err := svc.ForgotPassword(ctx, "user@example.com"); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}
	if gw.forgotCalls != 1 {
		t.Fatalf("expected exactly one gateway call, got %d", gw.forgotCalls)
	}
}

func TestAuthService_Restore(t *testing.T) {
	store := newMemStore()
	if err := store.Set(context.Background(), domain.SessionKey, "persisted"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	svc := NewAuthService(&authStubGateway{}, store, testLogger())

	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if svc.Token() != "persisted" {
		t.Fatalf("Token() = %q after restore", svc.Token())
	}
}

func TestAuthService_Restore_EmptyStoreIsNotAnError(t *testing.T) {
	svc := NewAuthService(&authStubGateway{}, newMemStore(), testLogger())

	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("Restore returned error for empty store: %v", err)
	}
	if svc.Session().Authenticated() {
		t.Fatalf("empty store must not yield an authenticated session")
	}
}
