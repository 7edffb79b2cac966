package contract

import (
	"context"

	"edutrack-advisor-be/internal/entity"
	"edutrack-advisor-be/internal/repository/specification"
)

type InteractionLogRepository interface {
	Create(ctx context.Context, log *entity.InteractionLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InteractionLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InteractionLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
