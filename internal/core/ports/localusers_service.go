package ports

import (
	"context"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// LocalUserService owns create/update/delete of user records held entirely in
// the on-device Key-Value Store. Creates and deletes are two-step: stage,
// then confirm — nothing touches storage until the confirm.
type LocalUserService interface {
	List(ctx context.Context) ([]domain.UserRecord, error)
	// StageCreate validates the record, assigns id and cosmetic counters, and
	// holds it pending confirmation. Returns the staged record.
	StageCreate(record domain.UserRecord) (domain.UserRecord, error)
	ConfirmCreate(ctx context.Context) error
	// StageDelete holds a pending delete of the record with the given id.
	StageDelete(id int64)
	ConfirmDelete(ctx context.Context) error
	// Discard drops any staged create or delete without touching storage.
	Discard()
	Update(ctx context.Context, id int64, record domain.UserRecord) error
}
