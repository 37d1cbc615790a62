package port

import (
	"context"

	"edu-dashboard/internal/core/domain"
)

// EventPublisher delivers course lifecycle events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.CourseEvent) error
}
