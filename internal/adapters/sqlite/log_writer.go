package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/kwonka/internal/ctxutil"
)

// LogWriterAdapter implements secondary.LogWriter against the order_log table.
type LogWriterAdapter struct {
	db *sql.DB
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(db *sql.DB) *LogWriterAdapter {
	return &LogWriterAdapter{db: db}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.writeLog(ctx, entityType, entityID, "create", "", "")
}

// LogStatusChange logs a status transition for an entity.
func (w *LogWriterAdapter) LogStatusChange(ctx context.Context, entityType, entityID, oldStatus, newStatus string) error {
	return w.writeLog(ctx, entityType, entityID, "status_change", oldStatus, newStatus)
}

func (w *LogWriterAdapter) writeLog(ctx context.Context, entityType, entityID, action, oldStatus, newStatus string) error {
	actor := ctxutil.ActorFromContext(ctx)

	_, err := w.db.ExecContext(ctx,
		`INSERT INTO order_log (entity_type, entity_id, action, old_status, new_status, actor) VALUES (?, ?, ?, ?, ?, ?)`,
		entityType, entityID, action, oldStatus, newStatus, actor,
	)
	if err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	return nil
}
