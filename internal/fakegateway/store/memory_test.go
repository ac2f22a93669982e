package store

import (
	"context"
	"testing"
)

func TestMemoryDirectory_SeedAndAuthenticate(t *testing.T) {
	d := NewMemoryDirectory()
	if err := d.Seed(12); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	ctx := context.Background()

	user, err := d.Authenticate(ctx, "user@example.com", "password123")
	if err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	if user.Email != "user@example.com" || user.Role != RoleUser {
		t.Fatalf("unexpected demo account: %+v", user)
	}

	if _, err := d.Authenticate(ctx, "user@example.com", "wrong"); err != ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := d.Authenticate(ctx, "nobody@example.com", "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDirectory_CreateRequester(t *testing.T) {
	d := NewMemoryDirectory()
	ctx := context.Background()

	user, err := d.CreateRequester(ctx, "Jane", "Doe", "Jane.Doe@Example.COM", "secret1")
	if err != nil {
		t.Fatalf("CreateRequester: %v", err)
	}
	if user.Email != "jane.doe@example.com" {
		t.Fatalf("email not normalised: %q", user.Email)
	}
	if user.Username != "jane.doe" {
		t.Fatalf("username = %q", user.Username)
	}
	if user.Role != RoleUser {
		t.Fatalf("role = %q", user.Role)
	}

	// Case-insensitive duplicate.
	if _, err := d.CreateRequester(ctx, "J", "D", "jane.doe@example.com", "x"); err != ErrExists {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	if _, err := d.Authenticate(ctx, "jane.doe@example.com", "secret1"); err != nil {
		t.Fatalf("login with created account failed: %v", err)
	}
}

func TestMemoryDirectory_ListPagination(t *testing.T) {
	d := NewMemoryDirectory()
	if err := d.Seed(25); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	ctx := context.Background()
	q := ListQuery{Roles: []string{RoleUser, RoleAgent}, SortDesc: true, Limit: 10}

	q.Page = 1
	page1, err := d.List(ctx, q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page1) != 10 {
		t.Fatalf("page 1 holds %d, want 10", len(page1))
	}
	for i := 1; i < len(page1); i++ {
		if page1[i].ID > page1[i-1].ID {
			t.Fatalf("not sorted descending at %d", i)
		}
	}

	q.Page = 3
	page3, err := d.List(ctx, q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// 26 accounts in total: 10 + 10 + 6.
	if len(page3) != 6 {
		t.Fatalf("page 3 holds %d, want 6", len(page3))
	}

	q.Page = 4
	page4, err := d.List(ctx, q)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page4) != 0 {
		t.Fatalf("page past the end holds %d records", len(page4))
	}
}

func TestMemoryDirectory_ListRoleFilter(t *testing.T) {
	d := NewMemoryDirectory()
	if err := d.Seed(8); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	agents, err := d.List(context.Background(), ListQuery{Roles: []string{RoleAgent}, Limit: 50, Page: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(agents) == 0 {
		t.Fatalf("expected seeded agents")
	}
	for _, u := range agents {
		if u.Role != RoleAgent {
			t.Fatalf("role filter leaked %q", u.Role)
		}
	}
}

func TestMemoryDirectory_ListSearch(t *testing.T) {
	d := NewMemoryDirectory()
	if err := d.Seed(15); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	hits, err := d.List(context.Background(), ListQuery{Limit: 50, Page: 1, Query: "SEED03"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(hits) != 1 || hits[0].Username != "seed03" {
		t.Fatalf("unexpected search hits: %+v", hits)
	}
}

func TestMemoryDirectory_FindByID(t *testing.T) {
	d := NewMemoryDirectory()
	if err := d.Seed(3); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	ctx := context.Background()

	user, err := d.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("id = %d, want 1", user.ID)
	}

	if _, err := d.FindByID(ctx, 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
