package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
	"github.com/faveomobile/helpdesk-client/internal/fakegateway"
	"github.com/faveomobile/helpdesk-client/internal/fakegateway/store"
)

// TestClient_AgainstFakeGateway exercises the whole HTTP contract end to end:
// the real client against the local backend stand-in. The router is built once
// because its prometheus middleware registers in the default registry.
func TestClient_AgainstFakeGateway(t *testing.T) {
	directory := store.NewMemoryDirectory()
	if err := directory.Seed(25); err != nil {
		t.Fatalf("seed: %v", err)
	}
	srv := httptest.NewServer(fakegateway.NewRouter(directory, "integration-secret", zerolog.Nop()))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second, zerolog.Nop())
	ctx := context.Background()

	token, err := client.Login(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned an empty token")
	}

	t.Run("bad credentials", func(t *testing.T) {
		_, err := client.Login(ctx, "user@example.com", "wrong")
		var gwErr *domain.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 GatewayError, got %v", err)
		}
	})

	t.Run("list first and second page", func(t *testing.T) {
		page1, err := client.ListUsers(ctx, ports.ListUsersInput{Token: token, Page: 1})
		if err != nil {
			t.Fatalf("ListUsers page 1: %v", err)
		}
		// 25 seeded plus the demo account; a full first page of 10.
		if len(page1) != 10 {
			t.Fatalf("page 1 holds %d records, want 10", len(page1))
		}
		if page1[0].ID < page1[9].ID {
			t.Fatalf("page not sorted descending")
		}

		page2, err := client.ListUsers(ctx, ports.ListUsersInput{Token: token, Page: 2})
		if err != nil {
			t.Fatalf("ListUsers page 2: %v", err)
		}
		if len(page2) != 10 {
			t.Fatalf("page 2 holds %d records, want 10", len(page2))
		}
		if page2[0].ID >= page1[9].ID {
			t.Fatalf("page 2 overlaps page 1: %d vs %d", page2[0].ID, page1[9].ID)
		}
	})

	t.Run("list requires token", func(t *testing.T) {
		_, err := client.ListUsers(ctx, ports.ListUsersInput{Token: "", Page: 1})
		var gwErr *domain.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 GatewayError, got %v", err)
		}
	})

	t.Run("search narrows the list", func(t *testing.T) {
		users, err := client.ListUsers(ctx, ports.ListUsersInput{Token: token, Page: 1, SearchQuery: "seed01"})
		if err != nil {
			t.Fatalf("ListUsers with search: %v", err)
		}
		if len(users) != 1 || users[0].Username != "seed01" {
			t.Fatalf("unexpected search result: %+v", users)
		}
	})

	t.Run("get user by id", func(t *testing.T) {
		user, err := client.GetUser(ctx, token, 1)
		if err != nil {
			t.Fatalf("GetUser: %v", err)
		}
		if user.ID != 1 || user.Email != "user@example.com" {
			t.Fatalf("unexpected record: %+v", user)
		}

		_, err = client.GetUser(ctx, token, 424242)
		var gwErr *domain.GatewayError
		if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 GatewayError, got %v", err)
		}
		if gwErr.Message != "user not found" {
			t.Fatalf("message = %q", gwErr.Message)
		}
	})

	t.Run("register and duplicate", func(t *testing.T) {
		in := ports.RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "machine1"}
		if err := client.Register(ctx, in); err != nil {
			t.Fatalf("Register: %v", err)
		}
		if _, err := client.Login(ctx, "ada@example.com", "machine1"); err != nil {
			t.Fatalf("login after register: %v", err)
		}

		err := client.Register(ctx, in)
		msg, ok := domain.ServerMessage(err)
		if !ok || msg != "This email address is already registered." {
			t.Fatalf("expected duplicate-email message, got %v", err)
		}
	})

	t.Run("forgot password", func(t *testing.T) {
		if err := client.ForgotPassword(ctx, "user@example.com"); err != nil {
			t.Fatalf("ForgotPassword: %v", err)
		}
	})
}
