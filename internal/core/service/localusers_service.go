package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
	"github.com/faveomobile/helpdesk-client/internal/metrics"
)

// UsersKey is the fixed Key-Value Store key holding the JSON-encoded list of
// locally managed user records.
const UsersKey = "users"

// LocalUserService owns the on-device user list. Every mutation is a full
// read-modify-write of the stored list: there is no partial-field patch at
// the storage layer, and no rollback beyond not committing the write.
// Creates and deletes are two-step (stage, then confirm).
type LocalUserService struct {
	store    ports.KeyValueStore
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time

	mu           sync.Mutex
	stagedCreate *domain.UserRecord
	stagedDelete *int64
	lastID       int64
}

func NewLocalUserService(store ports.KeyValueStore, log zerolog.Logger) *LocalUserService {
	return &LocalUserService{
		store:    store,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

type stagedUserInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Username  string `validate:"required"`
	Email     string `validate:"omitempty,email"`
}

// List returns the stored records. An empty store yields an empty list.
func (s *LocalUserService) List(ctx context.Context) ([]domain.UserRecord, error) {
	return s.readAll(ctx)
}

// StageCreate validates the display fields, assigns an id from the current
// clock (kept strictly increasing so two rapid creates never collide) plus
// cosmetic follower counters, and holds the record pending ConfirmCreate.
func (s *LocalUserService) StageCreate(record domain.UserRecord) (domain.UserRecord, error) {
	in := stagedUserInput{
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Username:  record.Username,
		Email:     record.Email,
	}
	if err := s.validate.Struct(in); err != nil {
		return domain.UserRecord{}, domain.ErrFieldsRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	record.ID = id
	record.Followers = 1 + rand.IntN(1500)
	record.Following = 1 + rand.IntN(100)

	staged := record
	s.stagedCreate = &staged
	s.log.Debug().Int64("id", id).Str("username", record.Username).Msg("create staged")
	return record, nil
}

// ConfirmCreate commits the staged record to storage.
func (s *LocalUserService) ConfirmCreate(ctx context.Context) error {
	s.mu.Lock()
	staged := s.stagedCreate
	s.mu.Unlock()
	if staged == nil {
		return domain.ErrNothingStaged
	}

	users, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *staged)
	if err := s.writeAll(ctx, users); err != nil {
		return err
	}

	s.mu.Lock()
	s.stagedCreate = nil
	s.mu.Unlock()

	metrics.LocalWritesTotal.WithLabelValues("create").Inc()
	s.log.Info().Int64("id", staged.ID).Msg("local user created")
	return nil
}

// StageDelete holds a pending delete of the record with the given id.
func (s *LocalUserService) StageDelete(id int64) {
	s.mu.Lock()
	s.stagedDelete = &id
	s.mu.Unlock()
}

// ConfirmDelete commits the staged delete. Deleting an id that is not stored
// returns ErrRecordNotFound and writes nothing.
func (s *LocalUserService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	staged := s.stagedDelete
	s.mu.Unlock()
	if staged == nil {
		return domain.ErrNothingStaged
	}
	id := *staged

	users, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return domain.ErrRecordNotFound
	}
	if err := s.writeAll(ctx, kept); err != nil {
		return err
	}

	s.mu.Lock()
	s.stagedDelete = nil
	s.mu.Unlock()

	metrics.LocalWritesTotal.WithLabelValues("delete").Inc()
	s.log.Info().Int64("id", id).Msg("local user deleted")
	return nil
}

// Discard drops any staged create or delete without touching storage.
func (s *LocalUserService) Discard() {
	s.mu.Lock()
	s.stagedCreate = nil
	s.stagedDelete = nil
	s.mu.Unlock()
}

// Update replaces the record matching id and writes the full list back in a
// single overwrite.
func (s *LocalUserService) Update(ctx context.Context, id int64, record domain.UserRecord) error {
	in := stagedUserInput{
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Username:  record.Username,
		Email:     record.Email,
	}
	if err := s.validate.Struct(in); err != nil {
		return domain.ErrFieldsRequired
	}

	users, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range users {
		if users[i].ID == id {
			record.ID = id
			users[i] = record
			found = true
			break
		}
	}
	if !found {
		return domain.ErrRecordNotFound
	}
	if err := s.writeAll(ctx, users); err != nil {
		return err
	}

	metrics.LocalWritesTotal.WithLabelValues("update").Inc()
	s.log.Info().Int64("id", id).Msg("local user updated")
	return nil
}

func (s *LocalUserService) readAll(ctx context.Context) ([]domain.UserRecord, error) {
	raw, err := s.store.Get(ctx, UsersKey)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read local user list")
		return nil, fmt.Errorf("read users: %w", err)
	}
	if raw == "" {
		return []domain.UserRecord{}, nil
	}
	var users []domain.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Error().Err(err).Msg("stored user list is corrupt")
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *LocalUserService) writeAll(ctx context.Context, users []domain.UserRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.store.Set(ctx, UsersKey, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("failed to write local user list")
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}
