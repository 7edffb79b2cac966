package unitofwork

import (
	"context"

	"edutrack-advisor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InteractionLogRepository() contract.InteractionLogRepository
}
