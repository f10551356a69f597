package secondary

import "context"

// LogWriter defines the interface for writing audit log entries.
// Implementations extract actor from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, entityType, entityID string) error

	// LogStatusChange logs a status transition for an entity.
	LogStatusChange(ctx context.Context, entityType, entityID, oldStatus, newStatus string) error
}
