package port

import (
	"context"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

// EventPublisher announces committed sales to downstream consumers.
// Publishing is best-effort: failures are logged, never surfaced to the
// caller who created the sale.
type EventPublisher interface {
	PublishSaleCreated(ctx context.Context, sale domain.Sale) error
}
