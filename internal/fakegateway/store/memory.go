package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MemoryDirectory is the default, process-local Directory. Safe for
// concurrent use.
type MemoryDirectory struct {
	mu     sync.RWMutex
	users  map[int64]User
	byMail map[string]int64
	nextID int64
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users:  make(map[int64]User),
		byMail: make(map[string]int64),
		nextID: 1,
	}
}

// Seed fills the directory with a deterministic set of users and agents so
// pagination and by-id lookups are exercisable out of the box. The demo
// account user@example.com / password123 can log in.
func (d *MemoryDirectory) Seed(count int) error {
	if _, err := d.CreateRequester(context.Background(), "Demo", "Requester", "user@example.com", "password123"); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < count; i++ {
		role, last := RoleUser, "User"
		if i%4 == 0 {
			role, last = RoleAgent, "Agent"
		}
		id := d.nextID
		d.nextID++
		u := User{
			ID:        id,
			FirstName: fmt.Sprintf("Seed%02d", i+1),
			LastName:  last,
			Email:     fmt.Sprintf("seed%02d@example.com", i+1),
			Username:  fmt.Sprintf("seed%02d", i+1),
			Role:      role,
			CreatedAt: time.Now().UTC(),
		}
		d.users[id] = u
		d.byMail[u.Email] = id
	}
	return nil
}

func (d *MemoryDirectory) Authenticate(_ context.Context, email, password string) (*User, error) {
	d.mu.RLock()
	id, ok := d.byMail[strings.ToLower(email)]
	u := d.users[id]
	d.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	out := u
	return &out, nil
}

func (d *MemoryDirectory) CreateRequester(_ context.Context, first, last, email, password string) (*User, error) {
	email = strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.byMail[email]; exists {
		return nil, ErrExists
	}
	id := d.nextID
	d.nextID++
	u := User{
		ID:           id,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		Role:         RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	d.users[id] = u
	d.byMail[email] = id
	out := u
	return &out, nil
}

func (d *MemoryDirectory) List(_ context.Context, q ListQuery) ([]User, error) {
	roles := make(map[string]struct{}, len(q.Roles))
	for _, r := range q.Roles {
		roles[r] = struct{}{}
	}

	d.mu.RLock()
	matched := make([]User, 0, len(d.users))
	for _, u := range d.users {
		if len(roles) > 0 {
			if _, ok := roles[u.Role]; !ok {
				continue
			}
		}
		if q.Query != "" && !matches(u, q.Query) {
			continue
		}
		matched = append(matched, u)
	}
	d.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if q.SortDesc {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].ID < matched[j].ID
	})

	return paginate(matched, q.Limit, q.Page), nil
}

func (d *MemoryDirectory) FindByID(_ context.Context, id int64) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func matches(u User, query string) bool {
	query = strings.ToLower(query)
	for _, field := range []string{u.FirstName, u.LastName, u.Email, u.Username} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func paginate(users []User, limit, page int) []User {
	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(users) {
		return []User{}
	}
	end := start + limit
	if end > len(users) {
		end = len(users)
	}
	return users[start:end]
}
